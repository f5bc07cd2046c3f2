package nba

import (
	"context"
	"fmt"
	"net/url"
)

// scoreboardRaw is the scoreboard response envelope.
type scoreboardRaw struct {
	Scoreboard struct {
		GameDate string `json:"gameDate"`
		Games    []struct {
			GameID string `json:"gameId"`
		} `json:"games"`
	} `json:"scoreboard"`
}

// GamesForDate returns the IDs of every game played on the given date
// (YYYY-MM-DD), in the order the provider lists them. A date with no
// games yields an empty slice.
func (c *Client) GamesForDate(ctx context.Context, date string) ([]string, error) {
	params := url.Values{"gameDate": {date}}

	var raw scoreboardRaw
	if err := c.get(ctx, "/scoreboard", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch scoreboard for %s: %w", date, err)
	}

	ids := make([]string, 0, len(raw.Scoreboard.Games))
	for _, g := range raw.Scoreboard.Games {
		ids = append(ids, g.GameID)
	}
	return ids, nil
}
