// Package config provides centralized configuration loaded from environment
// variables. Shared by the scan and notify phases of the alert pipeline.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"
)

// --------------------------------------------------------------------------
// Fixed defaults
// --------------------------------------------------------------------------

const (
	// DefaultThreshold is the minimum single-game point total that
	// triggers an alert.
	DefaultThreshold = 50

	// DefaultRequestDelay is the pause between successive box-score
	// fetches, to stay under the stats provider's rate policy.
	DefaultRequestDelay = 600 * time.Millisecond

	// DefaultStatsBaseURL is the stats provider root.
	DefaultStatsBaseURL = "https://stats.nba.com/api/v3"

	defaultDataDir   = "data"
	defaultStateFile = "alert_state.json"
	defaultPreview   = "email_preview.html"
)

// Promo window bounds (Pacific Time), carried as metadata on every alert
// state write. The window is advertised, not enforced.
const (
	PromoStart = "9:00 AM PT"
	PromoEnd   = "11:59 PM PT"
)

// --------------------------------------------------------------------------
// Config struct — populated from environment variables
// --------------------------------------------------------------------------

type Config struct {
	// Stats provider
	StatsBaseURL string
	StatsTimeout time.Duration
	RequestDelay time.Duration

	// Detection
	PointsThreshold int

	// Handoff state
	DataDir     string
	StateFile   string
	PreviewFile string

	// Promo window
	PromoStart string
	PromoEnd   string

	// Resend (notify phase)
	ResendAPIKey     string
	ResendAudienceID string
	EmailFrom        string
	EmailSubject     string
}

// Load reads configuration from environment variables with sensible
// defaults. It never fails: the scan phase has no required credentials,
// and the notify phase validates its own with RequireNotifyCreds.
func Load() *Config {
	dataDir := envOr("ALERT_DATA_DIR", defaultDataDir)

	return &Config{
		StatsBaseURL: envOr("NBA_STATS_BASE_URL", DefaultStatsBaseURL),
		StatsTimeout: envDuration("NBA_STATS_TIMEOUT", 30*time.Second),
		RequestDelay: envDuration("NBA_API_DELAY", DefaultRequestDelay),

		PointsThreshold: envInt("POINTS_THRESHOLD", DefaultThreshold),

		DataDir:     dataDir,
		StateFile:   envOr("ALERT_STATE_FILE", filepath.Join(dataDir, defaultStateFile)),
		PreviewFile: envOr("EMAIL_PREVIEW_FILE", filepath.Join(dataDir, defaultPreview)),

		PromoStart: PromoStart,
		PromoEnd:   PromoEnd,

		ResendAPIKey:     os.Getenv("RESEND_API_KEY"),
		ResendAudienceID: os.Getenv("RESEND_AUDIENCE_ID"),
		EmailFrom:        envOr("EMAIL_FROM", "DoorDash Alerts <alerts@yourdomain.com>"),
		EmailSubject:     envOr("EMAIL_SUBJECT", "🏀 50% OFF DoorDash - LIVE NOW until 11 AM PT!"),
	}
}

// RequireNotifyCreds is the notify-phase pre-flight check. Missing
// credentials abort the phase before any network call.
func (c *Config) RequireNotifyCreds() error {
	if c.ResendAPIKey == "" {
		return fmt.Errorf("RESEND_API_KEY must be set")
	}
	if c.ResendAudienceID == "" {
		return fmt.Errorf("RESEND_AUDIENCE_ID must be set")
	}
	return nil
}

// --------------------------------------------------------------------------
// Env helpers
// --------------------------------------------------------------------------

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if v := os.Getenv(key); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			return n
		}
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	if v := os.Getenv(key); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			return d
		}
	}
	return fallback
}
