// Package scan implements the daily detection phase: resolve the target
// date, discover that date's games, walk their box scores for
// threshold-crossing point totals, and persist the result as the handoff
// state the notify phase consumes.
package scan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

// GameDiscovery is the slice of the stats client used to list a date's
// games.
type GameDiscovery interface {
	GamesForDate(ctx context.Context, date string) ([]string, error)
}

// Provider combines the two stats-provider calls the scan phase makes.
type Provider interface {
	GameDiscovery
	BoxScoreProvider
}

// Run executes the scan phase for the given date: discover games, scan
// box scores, write the alert state. The state slot is always overwritten,
// including when the slate is empty — a no-alert write retires nothing but
// keeps the slot fresh.
//
// A discovery failure degrades to an empty slate: the pipeline treats
// "provider unreachable" and "no games scheduled" identically, so an
// outage suppresses alerting rather than failing the phase.
func Run(ctx context.Context, provider Provider, scanner *Scanner, store *state.Store, date string, logger *slog.Logger) (Result, error) {
	logger.Info("Scanning for threshold performances", "date", date)

	gameIDs, err := provider.GamesForDate(ctx, date)
	if err != nil {
		logger.Error("scoreboard fetch failed, treating as empty slate", "date", date, "error", err)
		gameIDs = nil
	}

	if len(gameIDs) == 0 {
		logger.Info("No games found", "date", date)
		if _, err := store.Write(nil, date); err != nil {
			return Result{}, fmt.Errorf("save alert state: %w", err)
		}
		return Result{}, nil
	}

	logger.Info("Checking box scores", "games", len(gameIDs))
	result := scanner.Scan(ctx, gameIDs)

	st, err := store.Write(result.Performances, date)
	if err != nil {
		return result, fmt.Errorf("save alert state: %w", err)
	}

	logger.Info("Scan complete",
		"summary", result.Summary(),
		"alert_needed", st.AlertNeeded,
		"state_file", store.Path())
	return result, nil
}
