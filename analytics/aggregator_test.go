package analytics

import (
	"testing"
	"time"

	"app/models"
)

func date(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func salesRow(dateStr, storeID string, revenue float64, footfall, transactions int) models.SalesRow {
	return models.SalesRow{
		Date:         date(dateStr),
		StoreID:      storeID,
		RevenueExTax: revenue,
		Footfall:     footfall,
		Transactions: transactions,
	}
}

func TestBuildDailyAggregatesEmptySales(t *testing.T) {
	aggregates := BuildDailyAggregates(nil, []models.WeatherRow{{Date: date("2024-01-01")}}, nil)
	if len(aggregates) != 0 {
		t.Fatalf("expected no aggregates for empty sales, got %d", len(aggregates))
	}
}

func TestBuildDailyAggregatesGroupsAndSums(t *testing.T) {
	sales := []models.SalesRow{
		salesRow("2024-01-01", "S1", 60000, 100, 40),
		salesRow("2024-01-01", "S2", 40000, 80, 30),
		salesRow("2024-01-02", "S1", 120000, 150, 70),
	}

	aggregates := BuildDailyAggregates(sales, nil, nil)
	if len(aggregates) != 2 {
		t.Fatalf("expected 2 aggregates, got %d", len(aggregates))
	}

	first := aggregates[0]
	if first.TotalRevenue != 100000 || first.TotalFootfall != 180 || first.TotalTransactions != 70 {
		t.Fatalf("bad sums for first day: %+v", first)
	}
	if first.DayOfWeek != int(time.Monday) {
		t.Fatalf("2024-01-01 is a Monday, got weekday %d", first.DayOfWeek)
	}
	if first.Weather != nil {
		t.Fatalf("expected nil weather snapshot when no weather row matches")
	}
}

func TestBuildDailyAggregatesSortedByDate(t *testing.T) {
	sales := []models.SalesRow{
		salesRow("2024-01-03", "S1", 1, 0, 0),
		salesRow("2024-01-01", "S1", 2, 0, 0),
		salesRow("2024-01-02", "S1", 3, 0, 0),
	}

	aggregates := BuildDailyAggregates(sales, nil, nil)
	for i := 1; i < len(aggregates); i++ {
		if !aggregates[i-1].Date.Before(aggregates[i].Date) {
			t.Fatalf("aggregates not sorted by date")
		}
	}
}

func TestBuildDailyAggregatesJoinsWeatherAndEvents(t *testing.T) {
	condition := "rain"
	sales := []models.SalesRow{
		salesRow("2024-01-01", "S1", 100000, 0, 0),
		salesRow("2024-01-02", "S1", 120000, 0, 0),
	}
	weather := []models.WeatherRow{
		{Date: date("2024-01-01"), TempAvg: 4.5, Humidity: 85, Precipitation: 12, Condition: &condition},
	}
	events := []models.EventRow{
		{Date: date("2024-01-02"), Title: "Street market", DistanceKM: 1.2},
	}

	aggregates := BuildDailyAggregates(sales, weather, events)

	first := aggregates[0]
	if first.Weather == nil {
		t.Fatalf("expected weather snapshot on first day")
	}
	if first.Weather.TempAvg != 4.5 || *first.Weather.Condition != "rain" {
		t.Fatalf("bad weather snapshot: %+v", first.Weather)
	}
	if first.HasEvent {
		t.Fatalf("first day has no event")
	}

	second := aggregates[1]
	if second.Weather != nil {
		t.Fatalf("second day has no weather row")
	}
	if !second.HasEvent {
		t.Fatalf("second day should flag the event")
	}
}
