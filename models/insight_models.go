package models

import "time"

// InsightRequest defines the structure for AI insight requests.
type InsightRequest struct {
	Filters AnalysisFilters `json:"filters"`
}

// InsightPeriod defines the date range an insight covers.
type InsightPeriod struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

// AnalysisInsightResponse is the complete structure for the AI insight API response.
type AnalysisInsightResponse struct {
	ReportName      string        `json:"reportName"`
	GeneratedAt     time.Time     `json:"generatedAt"`
	Period          InsightPeriod `json:"period"`
	Summary         string        `json:"summary"`
	KeyDrivers      []string      `json:"key_drivers"`
	Recommendations []string      `json:"recommendations"`
}
