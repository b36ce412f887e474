// handlers/participant_routes.go
package handlers

import (
	"event-match-system/middleware"
	"event-match-system/services"

	"github.com/gofiber/fiber/v2"
)

func SetupParticipantRoutes(app *fiber.App, participantService *services.ParticipantService) {
	// 🔓 Public — the token itself is the credential
	app.Post("/token/resolve", participantService.ResolveToken)

	// 🔒 Admin-only mutations
	admin := app.Group("/admin", middleware.AdminAuthMiddleware())
	// Legacy clients still POST to /delete; newer ones use the DELETE verb.
	// Both resolve the event id through the same startup config value now
	// (see DESIGN.md on the historical divergence).
	admin.Post("/participants/delete", participantService.DeleteParticipant)
	admin.Delete("/participants", participantService.DeleteParticipant)
	admin.Post("/participants/table", participantService.UpdateTableAssignment)
}
