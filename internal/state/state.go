// Package state owns the persisted handoff contract between the scan and
// notify phases. The two phases never share process memory; the JSON state
// file written here is the only channel between them.
//
// Lifecycle: the scan phase overwrites the slot wholesale once per run; the
// notify phase reads it, dispatches if an alert is pending, and clears it.
// A failed or skipped notify run leaves the pending state in place for the
// next scheduled attempt.
package state

import "time"

// PerformanceRecord is one threshold-crossing box-score row. Immutable
// once created; Points is the sole admission criterion.
type PerformanceRecord struct {
	Player   string `json:"player"`
	Team     string `json:"team"`
	Points   int    `json:"points"`
	Rebounds int    `json:"rebounds"`
	Assists  int    `json:"assists"`
	Minutes  string `json:"minutes"`
	GameID   string `json:"game_id"`
}

// PromoWindow is the advertised validity interval of the promo, carried
// as metadata on every state write.
type PromoWindow struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// AlertState is the single source of truth handed across the process
// boundary. Invariant: AlertNeeded == (len(Performances) > 0).
type AlertState struct {
	AlertNeeded  bool                `json:"alert_needed"`
	Performances []PerformanceRecord `json:"performances"`
	CheckDate    string              `json:"check_date,omitempty"`
	CheckedAt    string              `json:"checked_at,omitempty"`
	PromoWindow  *PromoWindow        `json:"promo_window,omitempty"`
	ClearedAt    string              `json:"cleared_at,omitempty"`
}

// Empty returns the canonical no-alert state.
func Empty() AlertState {
	return AlertState{
		AlertNeeded:  false,
		Performances: []PerformanceRecord{},
	}
}

// timestamp formats t the way every stamp in the state file is formatted.
func timestamp(t time.Time) string {
	return t.Format(time.RFC3339)
}
