package notify

import (
	"strings"
	"testing"

	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

func perf(player, team string, points int) state.PerformanceRecord {
	return state.PerformanceRecord{
		Player:   player,
		Team:     team,
		Points:   points,
		Rebounds: 10,
		Assists:  7,
		Minutes:  "37:12",
		GameID:   "0022300619",
	}
}

func TestRenderSingularPhrasing(t *testing.T) {
	html, text, err := Render([]state.PerformanceRecord{perf("Luka Doncic", "DAL", 73)})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	if !strings.Contains(html, "Luka Doncic") || !strings.Contains(html, "73 POINTS") {
		t.Error("html body missing singular player headline")
	}
	if !strings.Contains(text, "Luka Doncic DROPPED 73 POINTS last night!") {
		t.Errorf("text body missing singular headline:\n%s", text)
	}
	if strings.Contains(html, "Multiple ballers") || strings.Contains(text, "Multiple ballers") {
		t.Error("single record rendered with collective phrasing")
	}
	if !strings.Contains(html, "Luka Doncic (DAL)") || !strings.Contains(html, "73 PTS") {
		t.Error("html stats block missing the record")
	}
}

func TestRenderCollectivePhrasing(t *testing.T) {
	perfs := []state.PerformanceRecord{
		perf("Giannis Antetokounmpo", "MIL", 55),
		perf("Devin Booker", "PHX", 55),
	}
	html, text, err := Render(perfs)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}

	for _, body := range []string{html, text} {
		if !strings.Contains(body, "Multiple ballers went off") {
			t.Error("body missing collective phrasing")
		}
		if strings.Count(body, "Giannis Antetokounmpo (MIL)") != 1 {
			t.Errorf("Giannis listed %d times in stats section, want 1",
				strings.Count(body, "Giannis Antetokounmpo (MIL)"))
		}
		if strings.Count(body, "Devin Booker (PHX)") != 1 {
			t.Errorf("Booker listed %d times in stats section, want 1",
				strings.Count(body, "Devin Booker (PHX)"))
		}
	}

	// Itemized listing preserves scanner order.
	if strings.Index(text, "Giannis") > strings.Index(text, "Booker") {
		t.Error("itemized listing out of order")
	}
}

func TestRenderZeroRecords(t *testing.T) {
	html, text, err := Render(nil)
	if err != nil {
		t.Fatalf("Render(nil) error: %v", err)
	}
	if html == "" || text == "" {
		t.Error("Render(nil) produced empty bodies")
	}
	if !strings.Contains(html, "50% OFF") || !strings.Contains(text, "50% OFF") {
		t.Error("promo shell missing from zero-record rendering")
	}
}

func TestRenderEmbedsUnsubscribePlaceholder(t *testing.T) {
	html, text, err := Render([]state.PerformanceRecord{perf("Luka Doncic", "DAL", 73)})
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if !strings.Contains(html, UnsubscribePlaceholder) {
		t.Error("html body missing unsubscribe placeholder")
	}
	if !strings.Contains(text, UnsubscribePlaceholder) {
		t.Error("text body missing unsubscribe placeholder")
	}
}

func TestRenderDeterministic(t *testing.T) {
	perfs := []state.PerformanceRecord{perf("Luka Doncic", "DAL", 73)}

	h1, t1, err := Render(perfs)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	h2, t2, err := Render(perfs)
	if err != nil {
		t.Fatalf("Render() error: %v", err)
	}
	if h1 != h2 || t1 != t2 {
		t.Error("Render() is not deterministic")
	}
}
