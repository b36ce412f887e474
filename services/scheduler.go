// services/scheduler.go
package services

import (
	"log"
	"time"

	"event-match-system/models"

	"github.com/go-co-op/gocron/v2"
)

func (s *EventService) StartPhaseScheduler() {
	sched, _ := gocron.NewScheduler()
	sched.Start()

	// Every minute: apply due phase transitions
	_, _ = sched.NewJob(
		gocron.DurationJob(1*time.Minute),
		gocron.NewTask(func() {
			s.ApplyScheduledPhases(time.Now())
		}),
	)
}

// ApplyScheduledPhases promotes every pending phase whose time has passed and
// clears the schedule. Called by the scheduler job; exported so it can be
// driven directly in tests.
func (s *EventService) ApplyScheduledPhases(now time.Time) {
	var states []models.EventState
	err := s.DB.Where("scheduled_phase IS NOT NULL AND phase_scheduled_at <= ?", now).
		Find(&states).Error
	if err != nil {
		log.Printf("[Scheduler] DB error: %v", err)
		return
	}

	for _, st := range states {
		st.Phase = *st.ScheduledPhase
		st.ScheduledPhase = nil
		st.PhaseScheduledAt = nil
		if err := s.DB.Save(&st).Error; err != nil {
			log.Printf("[Scheduler] Failed to apply phase for event %s: %v", st.MatchID, err)
		} else {
			log.Printf("✅ Applied scheduled phase %q for event %s", st.Phase, st.MatchID)
		}
	}
}
