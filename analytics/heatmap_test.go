package analytics

import (
	"testing"

	"app/models"
)

func conditionSnapshot(condition string) *models.WeatherSnapshot {
	return &models.WeatherSnapshot{Condition: &condition}
}

func TestBuildHeatmapEmpty(t *testing.T) {
	cells := BuildHeatmap(nil)
	if len(cells) != 0 {
		t.Fatalf("expected no cells for empty input, got %d", len(cells))
	}
}

func TestBuildHeatmapAveragesPerCell(t *testing.T) {
	// Two Mondays with rain, one Tuesday with sun.
	aggregates := []models.DailyAggregate{
		day("2024-01-01", 100000, conditionSnapshot("rain"), false),
		day("2024-01-08", 140000, conditionSnapshot("rain"), false),
		day("2024-01-02", 90000, conditionSnapshot("sun"), false),
	}

	cells := BuildHeatmap(aggregates)
	if len(cells) != 2 {
		t.Fatalf("expected 2 cells, got %d", len(cells))
	}

	var rainMonday *models.HeatmapCell
	for i := range cells {
		if cells[i].X == "Monday" && cells[i].Y == "rain" {
			rainMonday = &cells[i]
		}
	}
	if rainMonday == nil {
		t.Fatalf("missing Monday/rain cell: %+v", cells)
	}
	if rainMonday.Value != 120000 {
		t.Fatalf("expected averaged value 120000, got %f", rainMonday.Value)
	}
}

func TestBuildHeatmapMissingConditionBucketsUnknown(t *testing.T) {
	aggregates := []models.DailyAggregate{
		day("2024-01-01", 50000, nil, false),
	}

	cells := BuildHeatmap(aggregates)
	if len(cells) != 1 {
		t.Fatalf("expected 1 cell, got %d", len(cells))
	}
	if cells[0].Y != unknownCondition {
		t.Fatalf("expected unknown condition bucket, got %q", cells[0].Y)
	}
}

func TestBuildHeatmapOnlyObservedCells(t *testing.T) {
	aggregates := []models.DailyAggregate{
		day("2024-01-01", 100000, conditionSnapshot("rain"), false),
	}

	cells := BuildHeatmap(aggregates)
	for _, cell := range cells {
		if cell.Value <= 0 {
			t.Fatalf("emitted cell must carry observed revenue, got %f", cell.Value)
		}
	}
	if len(cells) != 1 {
		t.Fatalf("unobserved combinations must be omitted, got %d cells", len(cells))
	}
}

func TestBuildHeatmapDeterministicOrder(t *testing.T) {
	aggregates := []models.DailyAggregate{
		day("2024-01-02", 90000, conditionSnapshot("sun"), false),
		day("2024-01-01", 100000, conditionSnapshot("rain"), false),
		day("2024-01-07", 80000, conditionSnapshot("cloud"), false),
	}

	first := BuildHeatmap(aggregates)
	for i := 0; i < 10; i++ {
		again := BuildHeatmap(aggregates)
		for j := range first {
			if first[j] != again[j] {
				t.Fatalf("cell order not deterministic")
			}
		}
	}
	// Sunday (0) sorts before Monday (1) and Tuesday (2).
	if first[0].X != "Sunday" || first[1].X != "Monday" || first[2].X != "Tuesday" {
		t.Fatalf("unexpected order: %+v", first)
	}
}
