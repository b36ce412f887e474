package services

import (
	"log"

	"event-match-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ParticipantService struct {
	DB      *gorm.DB
	MatchID string // active event instance, resolved once at startup
}

func NewParticipantService(db *gorm.DB, matchID string) *ParticipantService {
	return &ParticipantService{DB: db, MatchID: matchID}
}

// DeleteParticipant removes a participant by assigned number, scoped to the
// active event. Deletion is idempotent: a missing row is not an error and
// still answers 200, callers cannot tell the two apart.
func (s *ParticipantService) DeleteParticipant(c *fiber.Ctx) error {
	var req struct {
		AssignedNumber *int `json:"assigned_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AssignedNumber == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "assigned_number is required"})
	}

	res := s.DB.Where("match_id = ? AND assigned_number = ?", s.MatchID, *req.AssignedNumber).
		Delete(&models.Participant{})
	if res.Error != nil {
		log.Printf("[PARTICIPANT] delete failed (assigned_number=%d): %v", *req.AssignedNumber, res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}

	return c.JSON(fiber.Map{"message": "Participant deleted successfully"})
}

// UpdateTableAssignment seats a participant. table_number must be a JSON
// number and 0 is a valid table, so only nil is rejected there.
// assigned_number keeps the legacy truthy check: 0 is rejected.
func (s *ParticipantService) UpdateTableAssignment(c *fiber.Ctx) error {
	var req struct {
		AssignedNumber *int `json:"assigned_number"`
		TableNumber    *int `json:"table_number"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.AssignedNumber == nil || *req.AssignedNumber == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "assigned_number is required"})
	}
	if req.TableNumber == nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "table_number must be a number"})
	}

	res := s.DB.Model(&models.Participant{}).
		Where("match_id = ? AND assigned_number = ?", s.MatchID, *req.AssignedNumber).
		Update("table_number", *req.TableNumber)
	if res.Error != nil {
		log.Printf("[PARTICIPANT] table update failed (assigned_number=%d): %v", *req.AssignedNumber, res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}

	// Zero rows matched is still a success — same soft semantics as delete.
	return c.JSON(fiber.Map{"message": "Table assignment updated"})
}
