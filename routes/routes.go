package routes

import (
	"app/handlers"
	"app/middleware"

	"github.com/gofiber/fiber/v2"
)

// SetupRoutes defines all the routes for the application.
func SetupRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	// --- Authentication Routes ---
	auth := api.Group("/auth")
	auth.Post("/login", handlers.HandleLogin)

	// --- Analytics Routes ---
	// RBAC and audit logging happen here, before the engine runs.
	analytics := api.Group("/analytics",
		middleware.JWTMiddleware,
		middleware.CheckRole("admin", "analyst"),
		middleware.AuditAnalytics,
	)

	analytics.Get("/correlations", handlers.HandleAnalyzeCorrelations)
	analytics.Get("/correlations/export", handlers.HandleExportAnalysis)
	analytics.Get("/performance", handlers.HandlePerformanceTest)
	analytics.Post("/insight", handlers.HandleGetAnalysisInsight)
	analytics.Get("/events", handlers.HandleListEvents)
}
