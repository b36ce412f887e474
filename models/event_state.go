package models

import (
	"time"
)

// PhaseWaiting is the phase reported for an event instance that has no
// event_state row yet. The default is applied at read time, not as a column
// default, so a fresh event needs no seeding.
const PhaseWaiting = "waiting"

// EventState is the single coordination row per event instance. Phase is an
// open string tag: which phases exist and which transitions are legal is
// decided by the frontend, this service stores whatever it is told verbatim.
type EventState struct {
	MatchID string `json:"match_id" gorm:"primaryKey;type:uuid"`
	Phase   string `json:"phase" gorm:"not null"`

	// Pending transition, applied by the phase scheduler once
	// PhaseScheduledAt has passed. Both nil when nothing is scheduled.
	ScheduledPhase   *string    `json:"scheduled_phase,omitempty"`
	PhaseScheduledAt *time.Time `json:"phase_scheduled_at,omitempty"`

	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
