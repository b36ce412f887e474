// handlers/event_routes.go
package handlers

import (
	"event-match-system/middleware"
	"event-match-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupEventRoutes(app *fiber.App, eventService *services.EventService) {
	// 🔓 Public read — the UI polls this while participants wait
	app.Post("/event/phase", eventService.GetPhase)

	// 🔒 Admin-only phase control
	admin := app.Group("/admin", middleware.AdminAuthMiddleware())
	admin.Post("/event/phase", eventService.SetPhase)
	admin.Post("/event/phase/schedule", eventService.SchedulePhase)
	admin.Post("/event/phase/schedule/cancel", eventService.CancelScheduledPhase)
}
