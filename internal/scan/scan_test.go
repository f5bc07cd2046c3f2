package scan

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/urielgre/doordash-fifty-alert/internal/provider/nba"
	"github.com/urielgre/doordash-fifty-alert/internal/state"
	"github.com/urielgre/doordash-fifty-alert/testutils"
)

func newRunFixtures(t *testing.T, fake *testutils.FakeStatsServer) (*nba.Client, *Scanner, *state.Store) {
	t.Helper()
	client := nba.NewClient(fake.URL(), 0, 5*time.Second, discard())
	scanner := NewScanner(client, 50, discard())
	store := state.NewStore(
		filepath.Join(t.TempDir(), "alert_state.json"),
		state.PromoWindow{Start: "9:00 AM PT", End: "11:59 PM PT"},
	)
	return client, scanner, store
}

func TestRunNoGamesWritesEmptyState(t *testing.T) {
	fake := testutils.NewFakeStatsServer()
	defer fake.Close()

	client, scanner, store := newRunFixtures(t, fake)

	result, err := Run(context.Background(), client, scanner, store, "2024-07-04", discard())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Performances) != 0 {
		t.Errorf("Run() found %d performances on an empty slate", len(result.Performances))
	}

	st, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if st.AlertNeeded || len(st.Performances) != 0 {
		t.Errorf("state = %+v, want empty no-alert state", st)
	}
	if st.CheckDate != "2024-07-04" {
		t.Errorf("CheckDate = %q, want 2024-07-04", st.CheckDate)
	}
}

func TestRunDiscoveryFailureDegradesToEmptySlate(t *testing.T) {
	fake := testutils.NewFakeStatsServer()
	defer fake.Close()
	fake.FailScoreboard()

	client, scanner, store := newRunFixtures(t, fake)

	result, err := Run(context.Background(), client, scanner, store, "2024-01-26", discard())
	if err != nil {
		t.Fatalf("Run() on provider outage: %v (outage must not fail the phase)", err)
	}
	if len(result.Performances) != 0 {
		t.Errorf("Run() found performances during outage: %+v", result)
	}

	st, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if st.AlertNeeded {
		t.Error("outage wrote a pending alert")
	}
}

func TestRunOneQualifyingPerformance(t *testing.T) {
	fake := testutils.NewFakeStatsServer()
	defer fake.Close()

	fake.AddGame("2024-01-26", "0022300619",
		testutils.FakeTeam{
			Tricode: "ATL",
			Players: []testutils.FakePlayer{
				{FirstName: "Trae", FamilyName: "Young", Minutes: "36:05", Points: 30},
			},
		},
		testutils.FakeTeam{
			Tricode: "DAL",
			Players: []testutils.FakePlayer{
				{FirstName: "Luka", FamilyName: "Dončić", Minutes: "37:12", Points: 73, Rebounds: 10, Assists: 7},
			},
		})

	client, scanner, store := newRunFixtures(t, fake)

	result, err := Run(context.Background(), client, scanner, store, "2024-01-26", discard())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Performances) != 1 {
		t.Fatalf("got %d performances, want 1", len(result.Performances))
	}

	st, err := store.Read()
	if err != nil {
		t.Fatalf("Read() error: %v", err)
	}
	if !st.AlertNeeded {
		t.Error("AlertNeeded = false, want true")
	}
	p := st.Performances[0]
	if p.Player != "Luka Doncic" || p.Team != "DAL" || p.Points != 73 {
		t.Errorf("persisted record = %+v", p)
	}
}

func TestRunMultipleGamesInDiscoveryOrder(t *testing.T) {
	fake := testutils.NewFakeStatsServer()
	defer fake.Close()

	fake.AddGame("2024-02-02", "g1",
		testutils.FakeTeam{
			Tricode: "MIL",
			Players: []testutils.FakePlayer{
				{FirstName: "Giannis", FamilyName: "Antetokounmpo", Points: 55},
			},
		},
		testutils.FakeTeam{Tricode: "NOP"})
	fake.AddGame("2024-02-02", "g2",
		testutils.FakeTeam{Tricode: "IND"},
		testutils.FakeTeam{
			Tricode: "PHX",
			Players: []testutils.FakePlayer{
				{FirstName: "Devin", FamilyName: "Booker", Points: 55},
			},
		})

	client, scanner, store := newRunFixtures(t, fake)

	result, err := Run(context.Background(), client, scanner, store, "2024-02-02", discard())
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if len(result.Performances) != 2 {
		t.Fatalf("got %d performances, want 2", len(result.Performances))
	}
	if result.Performances[0].Player != "Giannis Antetokounmpo" ||
		result.Performances[1].Player != "Devin Booker" {
		t.Errorf("discovery order not preserved: %+v", result.Performances)
	}
}
