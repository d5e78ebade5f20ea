package analytics

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"app/models"
	"app/utils"
)

// Repository is the data access gateway the engine reads through. An adapter
// implements it against the persistent store; the engine never sees a query
// builder or a connection.
type Repository interface {
	FetchSales(ctx context.Context, start, end time.Time, filters models.AnalysisFilters) ([]models.SalesRow, error)
	FetchWeather(ctx context.Context, start, end time.Time) ([]models.WeatherRow, error)
	FetchEvents(ctx context.Context, start, end time.Time) ([]models.EventRow, error)
}

// Engine runs the correlation analysis pipeline. It is stateless and
// re-entrant: every call owns its working data, so concurrent calls need no
// coordination here.
type Engine struct {
	repo Repository
}

func NewEngine(repo Repository) *Engine {
	return &Engine{repo: repo}
}

// AnalyzeCorrelations runs the full pipeline for one date range: validate,
// fetch the three sources in parallel, aggregate per day, then compute
// correlations, heatmap, comparisons and the summary. Any fetch failure fails
// the whole call - partial results are never returned.
func (e *Engine) AnalyzeCorrelations(ctx context.Context, filters models.AnalysisFilters) (*models.AnalysisResult, error) {
	start, end, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	sales, weather, events, err := e.fetchAll(ctx, start, end, filters)
	if err != nil {
		return nil, err
	}

	return compute(sales, weather, events), nil
}

// validateFilters checks the date range before any fetch happens.
func validateFilters(filters models.AnalysisFilters) (time.Time, time.Time, error) {
	if filters.StartDate == "" {
		return time.Time{}, time.Time{}, &ValidationError{Field: "startDate", Message: "is required"}
	}
	if filters.EndDate == "" {
		return time.Time{}, time.Time{}, &ValidationError{Field: "endDate", Message: "is required"}
	}

	start, err := utils.ParseDate(filters.StartDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "startDate", Message: "must be an ISO date"}
	}
	end, err := utils.ParseDate(filters.EndDate)
	if err != nil {
		return time.Time{}, time.Time{}, &ValidationError{Field: "endDate", Message: "must be an ISO date"}
	}
	if end.Before(start) {
		return time.Time{}, time.Time{}, &ValidationError{Field: "endDate", Message: "must not be before startDate"}
	}
	return start, end, nil
}

// fetchAll issues the three independent fetches concurrently and waits for
// all of them. The aggregator is the synchronization point downstream.
func (e *Engine) fetchAll(ctx context.Context, start, end time.Time, filters models.AnalysisFilters) ([]models.SalesRow, []models.WeatherRow, []models.EventRow, error) {
	var (
		sales   []models.SalesRow
		weather []models.WeatherRow
		events  []models.EventRow
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		sales, err = e.repo.FetchSales(ctx, start, end, filters)
		return err
	})
	g.Go(func() error {
		var err error
		weather, err = e.repo.FetchWeather(ctx, start, end)
		return err
	})
	g.Go(func() error {
		var err error
		events, err = e.repo.FetchEvents(ctx, start, end)
		return err
	})

	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return sales, weather, events, nil
}

// compute is the pure part of the pipeline. Every output slice is
// deterministically ordered so identical inputs yield identical payloads.
func compute(sales []models.SalesRow, weather []models.WeatherRow, events []models.EventRow) *models.AnalysisResult {
	aggregates := BuildDailyAggregates(sales, weather, events)
	correlations := ComputeCorrelations(aggregates)

	return &models.AnalysisResult{
		Correlations:   correlations,
		HeatmapData:    BuildHeatmap(aggregates),
		ComparisonData: BuildComparison(aggregates),
		Summary:        BuildSummary(aggregates, correlations),
	}
}
