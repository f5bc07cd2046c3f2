package scan

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/urielgre/doordash-fifty-alert/internal/names"
	"github.com/urielgre/doordash-fifty-alert/internal/provider/nba"
	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

// BoxScoreProvider is the slice of the stats client the scanner uses.
type BoxScoreProvider interface {
	BoxScore(ctx context.Context, gameID string) ([]nba.PlayerRow, error)
}

// Result tracks the outcome of one scan pass. SkippedGames counts games
// whose box score could not be fetched or decoded; their rows are absent
// from Performances.
type Result struct {
	Performances []state.PerformanceRecord
	GamesScanned int
	SkippedGames int
}

// Summary returns a human-readable summary of the scan.
func (r *Result) Summary() string {
	return fmt.Sprintf("games=%d skipped=%d performances=%d",
		r.GamesScanned, r.SkippedGames, len(r.Performances))
}

// Scanner walks box scores looking for threshold-crossing point totals.
type Scanner struct {
	provider  BoxScoreProvider
	threshold int
	logger    *slog.Logger
}

// NewScanner creates a scanner that admits rows with at least threshold
// points.
func NewScanner(provider BoxScoreProvider, threshold int, logger *slog.Logger) *Scanner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Scanner{
		provider:  provider,
		threshold: threshold,
		logger:    logger,
	}
}

// Scan fetches each game's box score strictly in the given order (request
// pacing is enforced inside the provider client) and emits a record for
// every row at or above the threshold, player names folded to ASCII.
// A fetch or decode error on one game is logged, counted, and skipped;
// scanning continues with the remaining games. Output order is game order,
// then row order as returned by the provider.
func (s *Scanner) Scan(ctx context.Context, gameIDs []string) Result {
	var result Result

	for i, gameID := range gameIDs {
		s.logger.Info("Checking game", "game_id", gameID, "n", i+1, "total", len(gameIDs))

		rows, err := s.provider.BoxScore(ctx, gameID)
		if err != nil {
			s.logger.Error("box score fetch failed, skipping game", "game_id", gameID, "error", err)
			result.SkippedGames++
			continue
		}
		result.GamesScanned++

		for _, row := range rows {
			if row.Points < s.threshold {
				continue
			}
			perf := state.PerformanceRecord{
				Player:   names.Normalize(row.FirstName + " " + row.FamilyName),
				Team:     row.TeamCode,
				Points:   row.Points,
				Rebounds: row.Rebounds,
				Assists:  row.Assists,
				Minutes:  row.Minutes,
				GameID:   gameID,
			}
			result.Performances = append(result.Performances, perf)
			s.logger.Info("Found threshold performance",
				"player", perf.Player, "team", perf.Team, "points", perf.Points)
		}
	}
	return result
}
