package analytics

import (
	"context"
	"encoding/json"
	"time"

	"app/models"
)

// PerformanceTest runs the full pipeline once, reporting wall-clock duration
// and the serialized size of the raw inputs. Instrumentation only: the
// computation itself is the same one AnalyzeCorrelations performs, and timing
// is reported even when the pipeline output is empty.
func (e *Engine) PerformanceTest(ctx context.Context, filters models.AnalysisFilters) (*models.PerformanceResult, error) {
	started := time.Now()

	start, end, err := validateFilters(filters)
	if err != nil {
		return nil, err
	}

	sales, weather, events, err := e.fetchAll(ctx, start, end, filters)
	if err != nil {
		return nil, err
	}

	dataSize := jsonSize(sales) + jsonSize(weather) + jsonSize(events)

	_ = compute(sales, weather, events)

	return &models.PerformanceResult{
		ResponseTime: time.Since(started).Milliseconds(),
		DataSize:     dataSize,
	}, nil
}

func jsonSize(v interface{}) int {
	b, err := json.Marshal(v)
	if err != nil {
		return 0
	}
	return len(b)
}
