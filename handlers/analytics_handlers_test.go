package handlers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
)

func analyticsTestApp() *fiber.App {
	app := fiber.New()
	app.Get("/api/v1/analytics/correlations", HandleAnalyzeCorrelations)
	app.Get("/api/v1/analytics/correlations/export", HandleExportAnalysis)
	app.Get("/api/v1/analytics/performance", HandlePerformanceTest)
	return app
}

// Validation happens before any fetch, so these requests never touch the
// database and can run against the bare handler.

func TestAnalyzeCorrelationsMissingDates(t *testing.T) {
	app := analyticsTestApp()

	req := httptest.NewRequest("GET", "/api/v1/analytics/correlations", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	var body struct {
		Success bool   `json:"success"`
		Message string `json:"message"`
	}
	assert.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.False(t, body.Success)
	assert.Contains(t, body.Message, "startDate")
}

func TestAnalyzeCorrelationsEndBeforeStart(t *testing.T) {
	app := analyticsTestApp()

	req := httptest.NewRequest("GET", "/api/v1/analytics/correlations?startDate=2024-02-01&endDate=2024-01-01", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestPerformanceTestMalformedDate(t *testing.T) {
	app := analyticsTestApp()

	req := httptest.NewRequest("GET", "/api/v1/analytics/performance?startDate=notadate&endDate=2024-01-31", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestExportAnalysisRejectsBadDatesBeforeFormatCheck(t *testing.T) {
	app := analyticsTestApp()

	req := httptest.NewRequest("GET", "/api/v1/analytics/correlations/export?format=pdf", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}
