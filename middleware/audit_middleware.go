package middleware

import (
	"context"
	"log"

	"app/database"

	"github.com/gofiber/fiber/v2"
)

// AuditAnalytics records who ran which analytics query before the handler
// executes. An audit write failure is logged but never blocks the request.
func AuditAnalytics(c *fiber.Ctx) error {
	userID, _ := c.Locals("userID").(string)

	query := `
		INSERT INTO audit_logs (user_id, action, query_params, created_at)
		VALUES ($1, $2, $3, NOW())
	`
	_, err := database.GetDB().Exec(context.Background(), query,
		userID, c.Path(), string(c.Request().URI().QueryString()))
	if err != nil {
		log.Printf("⚠️  [AUDIT] Failed to record analytics access for user %s: %v", userID, err)
	}

	return c.Next()
}
