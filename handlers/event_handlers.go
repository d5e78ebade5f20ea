package handlers

import (
	"context"
	"fmt"
	"log"

	"app/database"
	"app/models"
	"app/utils"

	"github.com/gofiber/fiber/v2"
)

// HandleListEvents lists the local events the analysis joins against, so
// operators can inspect the event source behind a result.
// GET /api/v1/analytics/events
func HandleListEvents(c *fiber.Ctx) error {
	db := database.GetDB()
	ctx := context.Background()

	page := c.QueryInt("page", 1)
	pageSize := c.QueryInt("pageSize", 10)
	startDate := c.Query("startDate")
	endDate := c.Query("endDate")

	countQuery := `SELECT COUNT(*) FROM local_events`
	listQuery := `
		SELECT event_date, title, category, location, distance_km
		FROM local_events
	`
	args := []interface{}{}

	if startDate != "" && endDate != "" {
		start, err := utils.ParseDate(startDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid startDate format"})
		}
		end, err := utils.ParseDate(endDate)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"success": false, "message": "Invalid endDate format"})
		}
		args = append(args, start, end)
		rangeClause := " WHERE event_date BETWEEN $1 AND $2"
		countQuery += rangeClause
		listQuery += rangeClause
	}

	var totalItems int
	if err := db.QueryRow(ctx, countQuery, args...).Scan(&totalItems); err != nil {
		log.Printf("❌ [EVENTS] Count query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch events"})
	}

	pagination := utils.CreatePagination(totalItems, page, pageSize)
	args = append(args, pagination.PageSize, (pagination.CurrentPage-1)*pagination.PageSize)
	listQuery += fmt.Sprintf(" ORDER BY event_date DESC LIMIT $%d OFFSET $%d", len(args)-1, len(args))

	rows, err := db.Query(ctx, listQuery, args...)
	if err != nil {
		log.Printf("❌ [EVENTS] Query error: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to fetch events"})
	}
	defer rows.Close()

	events := make([]models.EventRow, 0)
	for rows.Next() {
		var ev models.EventRow
		if err := rows.Scan(&ev.Date, &ev.Title, &ev.Category, &ev.Location, &ev.DistanceKM); err != nil {
			log.Printf("❌ [EVENTS] Scan error: %v", err)
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"success": false, "message": "Failed to process events"})
		}
		events = append(events, ev)
	}

	return c.JSON(fiber.Map{"success": true, "data": events, "pagination": pagination})
}
