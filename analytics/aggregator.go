package analytics

import (
	"sort"

	"app/models"
	"app/utils"
)

// BuildDailyAggregates reduces raw sales rows to one aggregate per calendar
// date and left-joins the weather snapshot and event presence onto each date.
// Dates with no sales rows are absent from the result, not zero-filled.
func BuildDailyAggregates(sales []models.SalesRow, weather []models.WeatherRow, events []models.EventRow) []models.DailyAggregate {
	if len(sales) == 0 {
		return []models.DailyAggregate{}
	}

	weatherByDate := make(map[string]models.WeatherRow, len(weather))
	for _, w := range weather {
		weatherByDate[utils.DateKey(w.Date)] = w
	}

	eventDates := make(map[string]bool, len(events))
	for _, ev := range events {
		eventDates[utils.DateKey(ev.Date)] = true
	}

	byDate := make(map[string]*models.DailyAggregate)
	for _, row := range sales {
		key := utils.DateKey(row.Date)
		agg, ok := byDate[key]
		if !ok {
			agg = &models.DailyAggregate{
				Date:      row.Date,
				DayOfWeek: int(row.Date.Weekday()),
			}
			if w, found := weatherByDate[key]; found {
				agg.Weather = &models.WeatherSnapshot{
					TempAvg:       w.TempAvg,
					Humidity:      w.Humidity,
					Precipitation: w.Precipitation,
					Condition:     w.Condition,
				}
			}
			agg.HasEvent = eventDates[key]
			byDate[key] = agg
		}
		agg.TotalRevenue += row.RevenueExTax
		agg.TotalFootfall += row.Footfall
		agg.TotalTransactions += row.Transactions
	}

	aggregates := make([]models.DailyAggregate, 0, len(byDate))
	for _, agg := range byDate {
		aggregates = append(aggregates, *agg)
	}
	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].Date.Before(aggregates[j].Date)
	})

	return aggregates
}
