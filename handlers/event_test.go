package handlers

import (
	"net/http"
	"testing"
	"time"

	"event-match-system/models"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetPhaseRequiresMatchID(t *testing.T) {
	env := setupTestEnv(t)

	resp := doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestGetPhaseDefaultsToWaiting(t *testing.T) {
	env := setupTestEnv(t)

	// No event_state row exists — the read substitutes the default
	resp := doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, models.PhaseWaiting, decodeBody(t, resp)["phase"])
}

func TestSetPhaseRequiresPhase(t *testing.T) {
	env := setupTestEnv(t)

	resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestPhaseRoundTrip(t *testing.T) {
	env := setupTestEnv(t)

	resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{"phase": "active"})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp = doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "active", decodeBody(t, resp)["phase"])
}

func TestSetPhaseIsIdempotent(t *testing.T) {
	env := setupTestEnv(t)

	for i := 0; i < 2; i++ {
		resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{"phase": "active"})
		require.Equal(t, http.StatusOK, resp.StatusCode)
	}

	// Upsert semantics: still exactly one row
	var count int64
	require.NoError(t, env.db.Model(&models.EventState{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSetPhaseOverwritesPrevious(t *testing.T) {
	env := setupTestEnv(t)

	doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{"phase": "active"})
	doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{"phase": "dinner"})

	resp := doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	assert.Equal(t, "dinner", decodeBody(t, resp)["phase"])
}

func TestGetPhaseWrongMethod(t *testing.T) {
	env := setupTestEnv(t)

	resp := doRequest(t, env.app, http.MethodGet, "/event/phase", nil)
	require.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
}

func TestSchedulePhaseAppliesWhenDue(t *testing.T) {
	env := setupTestEnv(t)

	applyAt := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
	resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule",
		fiber.Map{"phase": "dinner", "apply_at": applyAt})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env.events.ApplyScheduledPhases(time.Now())

	resp = doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	assert.Equal(t, "dinner", decodeBody(t, resp)["phase"])

	var state models.EventState
	require.NoError(t, env.db.First(&state, "match_id = ?", testMatchID).Error)
	assert.Nil(t, state.ScheduledPhase)
	assert.Nil(t, state.PhaseScheduledAt)
}

func TestSchedulePhaseNotDueYet(t *testing.T) {
	env := setupTestEnv(t)

	applyAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule",
		fiber.Map{"phase": "dinner", "apply_at": applyAt})

	env.events.ApplyScheduledPhases(time.Now())

	resp := doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	assert.Equal(t, models.PhaseWaiting, decodeBody(t, resp)["phase"])
}

func TestSchedulePhaseKeepsCurrentPhase(t *testing.T) {
	env := setupTestEnv(t)

	doRequest(t, env.app, http.MethodPost, "/admin/event/phase", fiber.Map{"phase": "active"})

	applyAt := time.Now().Add(time.Hour).UTC().Format(time.RFC3339)
	doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule",
		fiber.Map{"phase": "dinner", "apply_at": applyAt})

	// Scheduling must not touch the live phase
	resp := doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	assert.Equal(t, "active", decodeBody(t, resp)["phase"])
}

func TestSchedulePhaseInvalidTime(t *testing.T) {
	env := setupTestEnv(t)

	resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule",
		fiber.Map{"phase": "dinner", "apply_at": "tomorrow"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestCancelScheduledPhase(t *testing.T) {
	env := setupTestEnv(t)

	applyAt := time.Now().Add(-time.Minute).UTC().Format(time.RFC3339)
	doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule",
		fiber.Map{"phase": "dinner", "apply_at": applyAt})

	resp := doRequest(t, env.app, http.MethodPost, "/admin/event/phase/schedule/cancel", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)

	env.events.ApplyScheduledPhases(time.Now())

	resp = doRequest(t, env.app, http.MethodPost, "/event/phase", fiber.Map{"match_id": testMatchID})
	assert.Equal(t, models.PhaseWaiting, decodeBody(t, resp)["phase"])
}
