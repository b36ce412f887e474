package services

import (
	"errors"
	"log"
	"time"

	"event-match-system/models"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type EventService struct {
	DB      *gorm.DB
	MatchID string // active event instance, resolved once at startup
}

func NewEventService(db *gorm.DB, matchID string) *EventService {
	return &EventService{DB: db, MatchID: matchID}
}

// GetPhase reads the current phase for any event instance. An event with no
// state row yet reads as models.PhaseWaiting — the row is only created once
// someone sets a phase.
func (s *EventService) GetPhase(c *fiber.Ctx) error {
	var req struct {
		MatchID string `json:"match_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.MatchID == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "match_id is required"})
	}

	var state models.EventState
	err := s.DB.First(&state, "match_id = ?", req.MatchID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return c.JSON(fiber.Map{"phase": models.PhaseWaiting})
	}
	if err != nil {
		log.Printf("[EVENT] phase read failed (match_id=%s): %v", req.MatchID, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"phase": state.Phase})
}

// SetPhase upserts the state row for the active event. Any string is stored
// verbatim; phase semantics live in the frontend.
func (s *EventService) SetPhase(c *fiber.Ctx) error {
	var req struct {
		Phase string `json:"phase"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Phase == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "phase is required"})
	}

	state := models.EventState{MatchID: s.MatchID, Phase: req.Phase}
	err := s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"phase", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		log.Printf("[EVENT] phase write failed (phase=%q): %v", req.Phase, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Phase updated successfully"})
}

// SchedulePhase stores a pending phase transition for the active event. The
// phase scheduler applies it once apply_at has passed. Scheduling a second
// transition replaces the first.
func (s *EventService) SchedulePhase(c *fiber.Ctx) error {
	var req struct {
		Phase   string `json:"phase"`
		ApplyAt string `json:"apply_at"`
	}
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid request body"})
	}
	if req.Phase == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "phase is required"})
	}
	applyAt, err := time.Parse(time.RFC3339, req.ApplyAt)
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "invalid apply_at (use RFC3339)"})
	}

	state := models.EventState{
		MatchID:          s.MatchID,
		Phase:            models.PhaseWaiting, // only used when the row does not exist yet
		ScheduledPhase:   &req.Phase,
		PhaseScheduledAt: &applyAt,
	}
	err = s.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "match_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"scheduled_phase", "phase_scheduled_at", "updated_at"}),
	}).Create(&state).Error
	if err != nil {
		log.Printf("[EVENT] phase schedule failed (phase=%q): %v", req.Phase, err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return c.JSON(fiber.Map{"message": "Phase transition scheduled"})
}

// CancelScheduledPhase clears any pending transition for the active event.
// Nothing scheduled is still a success.
func (s *EventService) CancelScheduledPhase(c *fiber.Ctx) error {
	res := s.DB.Model(&models.EventState{}).
		Where("match_id = ?", s.MatchID).
		Updates(map[string]interface{}{"scheduled_phase": nil, "phase_scheduled_at": nil})
	if res.Error != nil {
		log.Printf("[EVENT] phase schedule cancel failed: %v", res.Error)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}

	return c.JSON(fiber.Map{"message": "Scheduled phase transition cancelled"})
}
