package analytics

import (
	"sort"
	"time"

	"app/models"
)

// unknownCondition buckets days whose weather row is missing or carries no
// condition, so their revenue still shows up on the grid.
const unknownCondition = "unknown"

// BuildHeatmap projects the aggregates onto a day-of-week x weather-condition
// grid. Cell value is the average daily revenue of contributing days; cells
// with no contributing days are omitted entirely.
func BuildHeatmap(aggregates []models.DailyAggregate) []models.HeatmapCell {
	type bucket struct {
		total float64
		days  int
	}
	type key struct {
		day       int
		condition string
	}

	buckets := make(map[key]*bucket)
	for _, agg := range aggregates {
		condition := unknownCondition
		if agg.Weather != nil && agg.Weather.Condition != nil && *agg.Weather.Condition != "" {
			condition = *agg.Weather.Condition
		}
		k := key{day: agg.DayOfWeek, condition: condition}
		b, ok := buckets[k]
		if !ok {
			b = &bucket{}
			buckets[k] = b
		}
		b.total += agg.TotalRevenue
		b.days++
	}

	keys := make([]key, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].day != keys[j].day {
			return keys[i].day < keys[j].day
		}
		return keys[i].condition < keys[j].condition
	})

	cells := make([]models.HeatmapCell, 0, len(keys))
	for _, k := range keys {
		b := buckets[k]
		cells = append(cells, models.HeatmapCell{
			X:     time.Weekday(k.day).String(),
			Y:     k.condition,
			Value: b.total / float64(b.days),
		})
	}
	return cells
}
