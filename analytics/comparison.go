package analytics

import (
	"app/models"
	"app/utils"
)

// BuildComparison emits one point per analyzed day, comparing it against the
// same weekday one week earlier and the same calendar date one year earlier.
// Anchors outside the aggregate set resolve to 0, never null, so downstream
// charting stays numerically uniform.
func BuildComparison(aggregates []models.DailyAggregate) []models.ComparisonPoint {
	revenueByDate := make(map[string]float64, len(aggregates))
	for _, agg := range aggregates {
		revenueByDate[utils.DateKey(agg.Date)] = agg.TotalRevenue
	}

	points := make([]models.ComparisonPoint, 0, len(aggregates))
	for _, agg := range aggregates {
		weekAgo := revenueByDate[utils.DateKey(agg.Date.AddDate(0, 0, -7))]
		yearAgo := revenueByDate[utils.DateKey(agg.Date.AddDate(-1, 0, 0))]
		points = append(points, models.ComparisonPoint{
			Date:         agg.Date,
			Current:      agg.TotalRevenue,
			PreviousDay:  weekAgo,
			PreviousYear: yearAgo,
			DayOfWeek:    agg.DayOfWeek,
		})
	}
	return points
}
