package nba

import (
	"context"
	"fmt"
	"net/url"
)

// PlayerRow is one participant line from a box score, flattened from the
// provider's nested team/statistics layout.
type PlayerRow struct {
	FirstName  string
	FamilyName string
	TeamCode   string
	Minutes    string
	Points     int
	Rebounds   int
	Assists    int
}

// boxScoreRaw mirrors the traditional box-score response: one object per
// side, each with a team code and a player list carrying a nested
// statistics block.
type boxScoreRaw struct {
	BoxScore struct {
		GameID   string     `json:"gameId"`
		HomeTeam boxTeamRaw `json:"homeTeam"`
		AwayTeam boxTeamRaw `json:"awayTeam"`
	} `json:"boxScoreTraditional"`
}

type boxTeamRaw struct {
	TeamTricode string         `json:"teamTricode"`
	Players     []boxPlayerRaw `json:"players"`
}

type boxPlayerRaw struct {
	FirstName  string `json:"firstName"`
	FamilyName string `json:"familyName"`
	Statistics struct {
		Minutes       string  `json:"minutes"`
		Points        float64 `json:"points"`
		ReboundsTotal float64 `json:"reboundsTotal"`
		Assists       float64 `json:"assists"`
	} `json:"statistics"`
}

// BoxScore returns every participant row for a game, home side first,
// preserving the provider's row order within each side.
func (c *Client) BoxScore(ctx context.Context, gameID string) ([]PlayerRow, error) {
	params := url.Values{"gameId": {gameID}}

	var raw boxScoreRaw
	if err := c.get(ctx, "/boxscore", params, &raw); err != nil {
		return nil, fmt.Errorf("fetch box score %s: %w", gameID, err)
	}

	rows := make([]PlayerRow, 0,
		len(raw.BoxScore.HomeTeam.Players)+len(raw.BoxScore.AwayTeam.Players))
	rows = appendTeamRows(rows, raw.BoxScore.HomeTeam)
	rows = appendTeamRows(rows, raw.BoxScore.AwayTeam)
	return rows, nil
}

func appendTeamRows(rows []PlayerRow, team boxTeamRaw) []PlayerRow {
	for _, p := range team.Players {
		minutes := p.Statistics.Minutes
		if minutes == "" {
			minutes = "N/A"
		}
		rows = append(rows, PlayerRow{
			FirstName:  p.FirstName,
			FamilyName: p.FamilyName,
			TeamCode:   team.TeamTricode,
			Minutes:    minutes,
			Points:     int(p.Statistics.Points),
			Rebounds:   int(p.Statistics.ReboundsTotal),
			Assists:    int(p.Statistics.Assists),
		})
	}
	return rows
}
