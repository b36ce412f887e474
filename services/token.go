// services/token.go
package services

import (
	"errors"
	"log"

	"event-match-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ResolveToken maps a secure token to the participant's assigned number within
// the active event. The token itself is the credential — this route carries no
// other authentication, so tokens must be unguessable.
func (s *ParticipantService) ResolveToken(c *fiber.Ctx) error {
	var req struct {
		SecureToken string `json:"secure_token"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.SecureToken == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "secure_token is required"})
	}

	var participant models.Participant
	err := s.DB.First(&participant, "match_id = ? AND secure_token = ?", s.MatchID, req.SecureToken).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"success": false,
			"error":   "No participant found for this token",
		})
	}
	if err != nil {
		log.Printf("[TOKEN] lookup failed: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"success": false,
			"error":   err.Error(),
		})
	}

	return c.JSON(fiber.Map{
		"success":         true,
		"assigned_number": participant.AssignedNumber,
	})
}
