// config/config.go
package config

import (
	"log"
	"os"
)

// PlaceholderMatchID is the all-zero event id baked into the first
// deployments. CURRENT_MATCH_ID overrides it.
const PlaceholderMatchID = "00000000-0000-0000-0000-000000000000"

// CurrentMatchID resolves the active event instance once at startup. Every
// handler that scopes to "the event" goes through this single value — the old
// per-endpoint mix of hardcoded literal vs. env fallback is gone.
func CurrentMatchID() string {
	if id := os.Getenv("CURRENT_MATCH_ID"); id != "" {
		return id
	}
	log.Printf("⚠️  CURRENT_MATCH_ID not set, using placeholder event id %s", PlaceholderMatchID)
	return PlaceholderMatchID
}
