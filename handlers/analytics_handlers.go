package handlers

import (
	"context"
	"errors"
	"log"

	"app/analytics"
	"app/database"
	"app/models"
	"app/repository"

	"github.com/gofiber/fiber/v2"
)

// newEngine wires the analytics engine to the shared database pool. The
// engine is stateless, so building one per request costs nothing.
func newEngine() *analytics.Engine {
	return analytics.NewEngine(repository.NewPostgresAnalytics(database.GetDB()))
}

func filtersFromQuery(c *fiber.Ctx) models.AnalysisFilters {
	return models.AnalysisFilters{
		StartDate:  c.Query("startDate"),
		EndDate:    c.Query("endDate"),
		StoreID:    c.Query("storeId"),
		Department: c.Query("department"),
		Category:   c.Query("category"),
	}
}

// respondEngineError maps engine error types onto HTTP statuses.
func respondEngineError(c *fiber.Ctx, err error) error {
	var validationErr *analytics.ValidationError
	if errors.As(err, &validationErr) {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": validationErr.Error()})
	}

	var dataErr *analytics.DataAccessError
	if errors.As(err, &dataErr) {
		log.Printf("❌ [ANALYTICS] Data access error: %v", dataErr)
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{"success": false, "message": "Failed to fetch analysis data"})
	}

	log.Printf("❌ [ANALYTICS] Unexpected error: %v", err)
	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Analysis failed"})
}

// HandleAnalyzeCorrelations runs the correlation analysis for a date range.
// GET /api/v1/analytics/correlations
func HandleAnalyzeCorrelations(c *fiber.Ctx) error {
	filters := filtersFromQuery(c)

	log.Printf("📊 [CORRELATIONS] Request - StartDate: %s, EndDate: %s, StoreID: %s, Department: %s, Category: %s",
		filters.StartDate, filters.EndDate, filters.StoreID, filters.Department, filters.Category)

	result, err := newEngine().AnalyzeCorrelations(context.Background(), filters)
	if err != nil {
		return respondEngineError(c, err)
	}

	log.Printf("✅ [CORRELATIONS] Analyzed %d days", result.Summary.TotalAnalyzedDays)
	return c.JSON(fiber.Map{"success": true, "data": result})
}

// HandlePerformanceTest runs the pipeline once and reports timing and input
// size, for SLA verification.
// GET /api/v1/analytics/performance
func HandlePerformanceTest(c *fiber.Ctx) error {
	filters := filtersFromQuery(c)

	result, err := newEngine().PerformanceTest(context.Background(), filters)
	if err != nil {
		return respondEngineError(c, err)
	}

	log.Printf("⏱️  [PERFORMANCE] Pipeline ran in %dms over %d bytes of input", result.ResponseTime, result.DataSize)
	return c.JSON(fiber.Map{"success": true, "data": result})
}
