package models

import (
	"time"
)

// Participant is one attendee of an event instance. Rows are created by the
// onboarding flow outside this service; the admin endpoints here only mutate
// or remove them.
type Participant struct {
	ID             string `json:"id" gorm:"primaryKey;type:uuid"`
	MatchID        string `json:"match_id" gorm:"not null;uniqueIndex:idx_match_assigned"`
	AssignedNumber int    `json:"assigned_number" gorm:"not null;uniqueIndex:idx_match_assigned"`

	// SecureToken is the unauthenticated bearer handle a participant uses to
	// look up their own assigned number. Assumed unguessable; never rotated.
	SecureToken string `json:"secure_token" gorm:"uniqueIndex;not null"`

	// TableNumber stays nil until an admin seats the participant. 0 is a real
	// table, not "unassigned".
	TableNumber *int `json:"table_number,omitempty"`

	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	UpdatedAt time.Time `json:"updated_at" gorm:"autoUpdateTime"`
}
