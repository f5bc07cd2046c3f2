package config

import (
	"path/filepath"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg := Load()

	if cfg.PointsThreshold != 50 {
		t.Errorf("PointsThreshold = %d, want 50", cfg.PointsThreshold)
	}
	if cfg.RequestDelay != 600*time.Millisecond {
		t.Errorf("RequestDelay = %v, want 600ms", cfg.RequestDelay)
	}
	if cfg.StateFile != filepath.Join("data", "alert_state.json") {
		t.Errorf("StateFile = %q, want data/alert_state.json", cfg.StateFile)
	}
	if cfg.PromoStart != "9:00 AM PT" || cfg.PromoEnd != "11:59 PM PT" {
		t.Errorf("promo window = (%q, %q)", cfg.PromoStart, cfg.PromoEnd)
	}
	if cfg.EmailFrom == "" {
		t.Error("EmailFrom should have a default")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("POINTS_THRESHOLD", "60")
	t.Setenv("NBA_API_DELAY", "1s")
	t.Setenv("ALERT_DATA_DIR", "/tmp/alerts")
	t.Setenv("NBA_STATS_BASE_URL", "http://localhost:9999")

	cfg := Load()

	if cfg.PointsThreshold != 60 {
		t.Errorf("PointsThreshold = %d, want 60", cfg.PointsThreshold)
	}
	if cfg.RequestDelay != time.Second {
		t.Errorf("RequestDelay = %v, want 1s", cfg.RequestDelay)
	}
	if cfg.StateFile != filepath.Join("/tmp/alerts", "alert_state.json") {
		t.Errorf("StateFile = %q, want /tmp/alerts/alert_state.json", cfg.StateFile)
	}
	if cfg.StatsBaseURL != "http://localhost:9999" {
		t.Errorf("StatsBaseURL = %q", cfg.StatsBaseURL)
	}
}

func TestLoadIgnoresMalformedOverrides(t *testing.T) {
	t.Setenv("POINTS_THRESHOLD", "not-a-number")
	t.Setenv("NBA_API_DELAY", "soon")

	cfg := Load()

	if cfg.PointsThreshold != 50 {
		t.Errorf("PointsThreshold = %d, want default 50", cfg.PointsThreshold)
	}
	if cfg.RequestDelay != 600*time.Millisecond {
		t.Errorf("RequestDelay = %v, want default 600ms", cfg.RequestDelay)
	}
}

func TestRequireNotifyCreds(t *testing.T) {
	cfg := &Config{}
	if err := cfg.RequireNotifyCreds(); err == nil {
		t.Error("RequireNotifyCreds() with nothing set: want error")
	}

	cfg.ResendAPIKey = "re_test_key"
	if err := cfg.RequireNotifyCreds(); err == nil {
		t.Error("RequireNotifyCreds() without audience: want error")
	}

	cfg.ResendAudienceID = "aud_123"
	if err := cfg.RequireNotifyCreds(); err != nil {
		t.Errorf("RequireNotifyCreds() with both set: %v", err)
	}
}
