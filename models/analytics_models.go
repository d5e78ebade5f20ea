package models

import "time"

// AnalysisFilters carries the query parameters of one analysis request.
// StartDate and EndDate are ISO dates and required; the rest are optional
// equality filters applied in the sales query.
type AnalysisFilters struct {
	StartDate  string `json:"startDate"`
	EndDate    string `json:"endDate"`
	StoreID    string `json:"storeId,omitempty"`
	Department string `json:"department,omitempty"`
	Category   string `json:"category,omitempty"`
}

// WeatherSnapshot is the weather attached to one analyzed day. Nil on a
// DailyAggregate means no weather row existed for that date.
type WeatherSnapshot struct {
	TempAvg       float64 `json:"temp_avg"`
	Humidity      float64 `json:"humidity"`
	Precipitation float64 `json:"precipitation"`
	Condition     *string `json:"condition,omitempty"`
}

// DailyAggregate is one calendar day of summed sales with weather and event
// presence joined on. Days without any sales row are simply absent.
type DailyAggregate struct {
	Date              time.Time        `json:"date"`
	DayOfWeek         int              `json:"dayOfWeek"`
	TotalRevenue      float64          `json:"totalRevenue"`
	TotalFootfall     int              `json:"totalFootfall"`
	TotalTransactions int              `json:"totalTransactions"`
	Weather           *WeatherSnapshot `json:"weather,omitempty"`
	HasEvent          bool             `json:"hasEvent"`
}

// CorrelationResult is the Pearson correlation of one candidate factor
// against daily revenue.
type CorrelationResult struct {
	Factor       string  `json:"factor"`
	Correlation  float64 `json:"correlation"`
	Significance string  `json:"significance"`
	SampleSize   int     `json:"sampleSize"`
	Description  string  `json:"description"`
}

// HeatmapCell is one intensity value at the intersection of two categorical
// axes (day-of-week name x weather condition).
type HeatmapCell struct {
	X     string  `json:"x"`
	Y     string  `json:"y"`
	Value float64 `json:"value"`
}

// ComparisonPoint compares one analyzed day against the same weekday a week
// earlier and the same calendar date a year earlier. Missing anchors are 0.
type ComparisonPoint struct {
	Date         time.Time `json:"date"`
	Current      float64   `json:"current"`
	PreviousDay  float64   `json:"previousDay"`
	PreviousYear float64   `json:"previousYear"`
	DayOfWeek    int       `json:"dayOfWeek"`
}

// AnalysisSummary rolls the whole run up into headline numbers.
type AnalysisSummary struct {
	TotalAnalyzedDays int                `json:"totalAnalyzedDays"`
	AverageDailySales float64            `json:"averageDailySales"`
	StrongestPositive *CorrelationResult `json:"strongestPositive,omitempty"`
	StrongestNegative *CorrelationResult `json:"strongestNegative,omitempty"`
}

// AnalysisResult is the full payload of one analyzeCorrelations call.
type AnalysisResult struct {
	Correlations   []CorrelationResult `json:"correlations"`
	HeatmapData    []HeatmapCell       `json:"heatmapData"`
	ComparisonData []ComparisonPoint   `json:"comparisonData"`
	Summary        AnalysisSummary     `json:"summary"`
}

// PerformanceResult reports the timing of one full pipeline run and the
// serialized size of the raw inputs it consumed.
type PerformanceResult struct {
	ResponseTime int64 `json:"responseTime"` // milliseconds
	DataSize     int   `json:"dataSize"`     // bytes
}
