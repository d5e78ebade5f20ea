package analytics

import (
	"fmt"
	"math"
	"time"

	"app/models"
)

// Significance labels for correlation results.
const (
	SignificanceStrong       = "strong"
	SignificanceModerate     = "moderate"
	SignificanceWeak         = "weak"
	SignificanceInsufficient = "insufficient_data"
)

// factor is one candidate explanatory variable. extract returns the factor's
// value for a day and whether it is defined for that day.
type factor struct {
	name    string
	label   string
	extract func(models.DailyAggregate) (float64, bool)
}

// candidateFactors is the fixed factor set. Callers rely on one result per
// entry, in this order, regardless of data volume.
var candidateFactors = []factor{
	{
		name:  "temp_avg",
		label: "average temperature",
		extract: func(a models.DailyAggregate) (float64, bool) {
			if a.Weather == nil {
				return 0, false
			}
			return a.Weather.TempAvg, true
		},
	},
	{
		name:  "humidity",
		label: "humidity",
		extract: func(a models.DailyAggregate) (float64, bool) {
			if a.Weather == nil {
				return 0, false
			}
			return a.Weather.Humidity, true
		},
	},
	{
		name:  "precipitation",
		label: "precipitation",
		extract: func(a models.DailyAggregate) (float64, bool) {
			if a.Weather == nil {
				return 0, false
			}
			return a.Weather.Precipitation, true
		},
	},
	{
		name:  "has_event",
		label: "nearby events",
		extract: func(a models.DailyAggregate) (float64, bool) {
			if a.HasEvent {
				return 1, true
			}
			return 0, true
		},
	},
	{
		name:  "is_weekend",
		label: "weekends",
		extract: func(a models.DailyAggregate) (float64, bool) {
			if a.DayOfWeek == int(time.Saturday) || a.DayOfWeek == int(time.Sunday) {
				return 1, true
			}
			return 0, true
		},
	},
}

// ComputeCorrelations evaluates every candidate factor against daily revenue.
// The result always has one entry per factor, even when degenerate.
func ComputeCorrelations(aggregates []models.DailyAggregate) []models.CorrelationResult {
	results := make([]models.CorrelationResult, 0, len(candidateFactors))
	for _, f := range candidateFactors {
		results = append(results, correlateFactor(f, aggregates))
	}
	return results
}

func correlateFactor(f factor, aggregates []models.DailyAggregate) models.CorrelationResult {
	xs := make([]float64, 0, len(aggregates))
	ys := make([]float64, 0, len(aggregates))
	for _, agg := range aggregates {
		x, ok := f.extract(agg)
		if !ok {
			continue
		}
		xs = append(xs, x)
		ys = append(ys, agg.TotalRevenue)
	}

	n := len(xs)
	r, ok := pearson(xs, ys)
	if !ok {
		return models.CorrelationResult{
			Factor:       f.name,
			Correlation:  0,
			Significance: SignificanceInsufficient,
			SampleSize:   n,
			Description:  fmt.Sprintf("Not enough data to relate %s to daily revenue (%d usable days)", f.label, n),
		}
	}

	sig := significance(r, n)
	return models.CorrelationResult{
		Factor:       f.name,
		Correlation:  r,
		Significance: sig,
		SampleSize:   n,
		Description:  describeCorrelation(f.label, r, sig, n),
	}
}

// pearson computes the Pearson correlation coefficient of the paired series.
// Returns ok=false when fewer than two pairs exist or either side has zero
// variance, so degenerate inputs never produce NaN.
func pearson(xs, ys []float64) (float64, bool) {
	n := len(xs)
	if n < 2 {
		return 0, false
	}

	var sumX, sumY float64
	for i := 0; i < n; i++ {
		sumX += xs[i]
		sumY += ys[i]
	}
	meanX := sumX / float64(n)
	meanY := sumY / float64(n)

	var sxx, syy, sxy float64
	for i := 0; i < n; i++ {
		dx := xs[i] - meanX
		dy := ys[i] - meanY
		sxx += dx * dx
		syy += dy * dy
		sxy += dx * dy
	}
	if sxx == 0 || syy == 0 {
		return 0, false
	}

	r := sxy / math.Sqrt(sxx*syy)
	// Clamp to absorb floating-point overshoot.
	if r > 1 {
		r = 1
	}
	if r < -1 {
		r = -1
	}
	return r, true
}

// significance maps (|r|, n) into a qualitative tier. Thresholds are
// monotonic in both magnitude and sample size.
func significance(r float64, n int) string {
	abs := math.Abs(r)
	switch {
	case abs >= 0.7 && n >= 10:
		return SignificanceStrong
	case abs >= 0.4 && n >= 5:
		return SignificanceModerate
	default:
		return SignificanceWeak
	}
}

func describeCorrelation(label string, r float64, sig string, n int) string {
	direction := "positive"
	if r < 0 {
		direction = "negative"
	}
	return fmt.Sprintf("Daily revenue shows a %s %s relationship with %s (r=%.2f over %d days)", sig, direction, label, r, n)
}
