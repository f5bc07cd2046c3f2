// Package testutils provides a fake NBA stats provider for tests.
package testutils

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"sync"

	"github.com/go-chi/chi/v5"
)

// FakePlayer is one box-score row served by the fake provider.
type FakePlayer struct {
	FirstName  string
	FamilyName string
	Minutes    string
	Points     int
	Rebounds   int
	Assists    int
}

// FakeTeam is one side of a fake box score.
type FakeTeam struct {
	Tricode string
	Players []FakePlayer
}

// FakeStatsServer serves scoreboard and box-score responses in the shape
// the provider client expects, with per-game failure injection.
type FakeStatsServer struct {
	s *httptest.Server

	mu             sync.Mutex
	games          map[string][]string    // date -> ordered game ids
	boxScores      map[string][2]FakeTeam // game id -> home, away
	failGames      map[string]bool        // game id -> respond 500
	failScoreboard bool
	requests       int
}

// NewFakeStatsServer starts a fake provider with no scheduled games.
func NewFakeStatsServer() *FakeStatsServer {
	f := &FakeStatsServer{
		games:     make(map[string][]string),
		boxScores: make(map[string][2]FakeTeam),
		failGames: make(map[string]bool),
	}

	r := chi.NewRouter()
	r.Get("/scoreboard", f.scoreboardHandler)
	r.Get("/boxscore", f.boxScoreHandler)

	f.s = httptest.NewServer(r)
	return f
}

func (f *FakeStatsServer) Close() {
	f.s.Close()
}

func (f *FakeStatsServer) URL() string {
	return f.s.URL
}

// AddGame schedules a game on a date and registers its box score.
func (f *FakeStatsServer) AddGame(date, gameID string, home, away FakeTeam) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.games[date] = append(f.games[date], gameID)
	f.boxScores[gameID] = [2]FakeTeam{home, away}
}

// FailGame makes the box-score endpoint return 500 for a game.
func (f *FakeStatsServer) FailGame(gameID string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failGames[gameID] = true
}

// FailScoreboard makes the scoreboard endpoint return 500.
func (f *FakeStatsServer) FailScoreboard() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.failScoreboard = true
}

// Requests returns how many requests the server has handled.
func (f *FakeStatsServer) Requests() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.requests
}

func (f *FakeStatsServer) scoreboardHandler(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	f.requests++
	fail := f.failScoreboard
	ids := f.games[r.URL.Query().Get("gameDate")]
	f.mu.Unlock()

	if fail {
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
		return
	}

	type gameEntry struct {
		GameID string `json:"gameId"`
	}
	games := make([]gameEntry, 0, len(ids))
	for _, id := range ids {
		games = append(games, gameEntry{GameID: id})
	}

	writeJSON(w, map[string]any{
		"scoreboard": map[string]any{
			"gameDate": r.URL.Query().Get("gameDate"),
			"games":    games,
		},
	})
}

func (f *FakeStatsServer) boxScoreHandler(w http.ResponseWriter, r *http.Request) {
	gameID := r.URL.Query().Get("gameId")

	f.mu.Lock()
	f.requests++
	fail := f.failGames[gameID]
	teams, ok := f.boxScores[gameID]
	f.mu.Unlock()

	if fail {
		http.Error(w, "upstream unavailable", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "game not found", http.StatusNotFound)
		return
	}

	writeJSON(w, map[string]any{
		"boxScoreTraditional": map[string]any{
			"gameId":   gameID,
			"homeTeam": teamJSON(teams[0]),
			"awayTeam": teamJSON(teams[1]),
		},
	})
}

func teamJSON(t FakeTeam) map[string]any {
	players := make([]map[string]any, 0, len(t.Players))
	for _, p := range t.Players {
		players = append(players, map[string]any{
			"firstName":  p.FirstName,
			"familyName": p.FamilyName,
			"statistics": map[string]any{
				"minutes":       p.Minutes,
				"points":        p.Points,
				"reboundsTotal": p.Rebounds,
				"assists":       p.Assists,
			},
		})
	}
	return map[string]any{
		"teamTricode": t.Tricode,
		"players":     players,
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}
