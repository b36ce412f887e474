package handlers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"event-match-system/models"
	"event-match-system/services"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const testMatchID = "00000000-0000-0000-0000-000000000000"

type testEnv struct {
	app          *fiber.App
	db           *gorm.DB
	participants *services.ParticipantService
	events       *services.EventService
}

// setupTestEnv builds an app with a fresh in-memory database. The DSN is
// keyed on the test name so gorm's connection pool shares one database per
// test without tests bleeding into each other.
func setupTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.Participant{}, &models.EventState{}))

	app := fiber.New() // fiber v2 answers 405 for wrong verbs by default
	participants := services.NewParticipantService(db, testMatchID)
	events := services.NewEventService(db, testMatchID)
	SetupParticipantRoutes(app, participants)
	SetupEventRoutes(app, events)

	return &testEnv{app: app, db: db, participants: participants, events: events}
}

func doRequest(t *testing.T, app *fiber.App, method, target string, body interface{}) *http.Response {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, target, &buf)
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	return resp
}

func decodeBody(t *testing.T, resp *http.Response) map[string]interface{} {
	t.Helper()

	var out map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func seedParticipant(t *testing.T, db *gorm.DB, assignedNumber int, token string) models.Participant {
	t.Helper()

	p := models.Participant{
		ID:             uuid.NewString(),
		MatchID:        testMatchID,
		AssignedNumber: assignedNumber,
		SecureToken:    token,
	}
	require.NoError(t, db.Create(&p).Error)
	return p
}

func countParticipants(t *testing.T, db *gorm.DB) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Participant{}).Count(&count).Error)
	return count
}
