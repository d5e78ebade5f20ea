package analytics

import "app/models"

// BuildSummary rolls the run up into headline numbers and picks the strongest
// positive and negative correlations. Degenerate zero correlations are never
// selected as strongest.
func BuildSummary(aggregates []models.DailyAggregate, correlations []models.CorrelationResult) models.AnalysisSummary {
	summary := models.AnalysisSummary{
		TotalAnalyzedDays: len(aggregates),
	}

	if len(aggregates) > 0 {
		var total float64
		for _, agg := range aggregates {
			total += agg.TotalRevenue
		}
		summary.AverageDailySales = total / float64(len(aggregates))
	}

	for i := range correlations {
		c := correlations[i]
		if c.Correlation > 0 {
			if summary.StrongestPositive == nil || c.Correlation > summary.StrongestPositive.Correlation {
				result := c
				summary.StrongestPositive = &result
			}
		}
		if c.Correlation < 0 {
			if summary.StrongestNegative == nil || c.Correlation < summary.StrongestNegative.Correlation {
				result := c
				summary.StrongestNegative = &result
			}
		}
	}

	return summary
}
