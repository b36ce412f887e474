// handlers/summary_routes.go
package handlers

import (
	"event-match-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupSummaryRoutes(app *fiber.App, summaryService *services.SummaryService) {
	app.Post("/summary", summaryService.Summarize)
}
