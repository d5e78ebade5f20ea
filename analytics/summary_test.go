package analytics

import (
	"testing"

	"app/models"
)

func TestBuildSummaryEmpty(t *testing.T) {
	summary := BuildSummary(nil, nil)
	if summary.TotalAnalyzedDays != 0 {
		t.Fatalf("expected 0 analyzed days, got %d", summary.TotalAnalyzedDays)
	}
	if summary.AverageDailySales != 0 {
		t.Fatalf("expected 0 average, got %f", summary.AverageDailySales)
	}
	if summary.StrongestPositive != nil || summary.StrongestNegative != nil {
		t.Fatalf("expected no strongest correlations for empty input")
	}
}

func TestBuildSummaryAverage(t *testing.T) {
	aggregates := []models.DailyAggregate{
		day("2024-01-01", 100000, nil, false),
		day("2024-01-02", 120000, nil, false),
		day("2024-01-03", 80000, nil, false),
	}

	summary := BuildSummary(aggregates, nil)
	if summary.TotalAnalyzedDays != 3 {
		t.Fatalf("expected 3 analyzed days, got %d", summary.TotalAnalyzedDays)
	}
	if summary.AverageDailySales != 100000 {
		t.Fatalf("expected average 100000, got %f", summary.AverageDailySales)
	}
}

func TestBuildSummaryStrongestCorrelations(t *testing.T) {
	correlations := []models.CorrelationResult{
		{Factor: "temp_avg", Correlation: 0.6},
		{Factor: "humidity", Correlation: -0.3},
		{Factor: "precipitation", Correlation: -0.8},
		{Factor: "has_event", Correlation: 0.9},
		{Factor: "is_weekend", Correlation: 0, Significance: SignificanceInsufficient},
	}

	summary := BuildSummary(nil, correlations)
	if summary.StrongestPositive == nil || summary.StrongestPositive.Factor != "has_event" {
		t.Fatalf("expected has_event as strongest positive, got %+v", summary.StrongestPositive)
	}
	if summary.StrongestNegative == nil || summary.StrongestNegative.Factor != "precipitation" {
		t.Fatalf("expected precipitation as strongest negative, got %+v", summary.StrongestNegative)
	}
}

func TestBuildSummaryIgnoresDegenerateZeros(t *testing.T) {
	correlations := []models.CorrelationResult{
		{Factor: "temp_avg", Correlation: 0, Significance: SignificanceInsufficient},
		{Factor: "humidity", Correlation: 0, Significance: SignificanceInsufficient},
	}

	summary := BuildSummary(nil, correlations)
	if summary.StrongestPositive != nil {
		t.Fatalf("degenerate zero must never be strongest positive")
	}
	if summary.StrongestNegative != nil {
		t.Fatalf("degenerate zero must never be strongest negative")
	}
}
