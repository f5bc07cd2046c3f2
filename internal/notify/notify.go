// Package notify implements the delivery phase: read the persisted alert
// state the scan phase wrote, render the promo content, dispatch it via
// the email provider, and clear the state.
//
// The phase acts on whatever state is currently persisted; freshness is
// the scheduler's contract (scan runs hours before notify), not checked
// here. A dispatch failure leaves the pending state intact so the next
// scheduled run retries the whole phase.
package notify

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/urielgre/doordash-fifty-alert/internal/config"
	"github.com/urielgre/doordash-fifty-alert/internal/state"
)

// sampleGame is the canned performance used by the test and preview paths
// when no real state is pending.
var sampleGame = []state.PerformanceRecord{{
	Player:   "Luka Doncic",
	Team:     "DAL",
	Points:   73,
	Rebounds: 10,
	Assists:  7,
	Minutes:  "37:12",
	GameID:   "0022300619",
}}

// Run executes the notify phase. With testAddr set, content (real pending
// performances, or the canned sample when none are pending) is sent to
// that single address and the state is left untouched. In production mode
// a non-pending state is a logged no-op; a pending one is rendered and
// dispatched, and only an actual delivery (non-empty message reference)
// clears the slot — the zero-subscriber no-op keeps the alert pending.
func Run(ctx context.Context, store *state.Store, dispatcher *Dispatcher, testAddr string, logger *slog.Logger) error {
	st, err := store.Read()
	if err != nil {
		return fmt.Errorf("load alert state: %w", err)
	}
	logger.Info("Loaded alert state",
		"state_file", store.Path(),
		"alert_needed", st.AlertNeeded,
		"performances", len(st.Performances),
		"check_date", st.CheckDate)

	if testAddr != "" {
		perfs := st.Performances
		if len(perfs) == 0 {
			logger.Info("No pending performances, using sample data for test send")
			perfs = sampleGame
		}
		html, text, err := Render(perfs)
		if err != nil {
			return err
		}
		_, err = dispatcher.Dispatch(ctx, html, text, testAddr)
		return err
	}

	if !st.AlertNeeded {
		logger.Info("No alert needed today")
		return nil
	}

	html, text, err := Render(st.Performances)
	if err != nil {
		return err
	}

	ref, err := dispatcher.Dispatch(ctx, html, text, "")
	if err != nil {
		return fmt.Errorf("dispatch alert: %w", err)
	}
	if ref == "" {
		// Nothing was delivered (empty subscriber set); keep the alert
		// pending for the next run.
		return nil
	}

	if err := store.Clear(); err != nil {
		return fmt.Errorf("clear alert state: %w", err)
	}
	logger.Info("Alert dispatched and state cleared", "message_ref", ref)
	return nil
}

// Preview renders the current (or sample) performances without
// dispatching: the plain-text body goes to stdout and the rich body is
// written to cfg.PreviewFile for inspection in a browser.
func Preview(cfg *config.Config, store *state.Store, logger *slog.Logger) error {
	st, err := store.Read()
	if err != nil {
		return fmt.Errorf("load alert state: %w", err)
	}

	perfs := st.Performances
	if len(perfs) == 0 {
		perfs = sampleGame
	}

	html, text, err := Render(perfs)
	if err != nil {
		return err
	}

	fmt.Println(text)

	if err := os.MkdirAll(filepath.Dir(cfg.PreviewFile), 0o755); err != nil {
		return fmt.Errorf("create preview dir: %w", err)
	}
	if err := os.WriteFile(cfg.PreviewFile, []byte(html), 0o644); err != nil {
		return fmt.Errorf("write preview file: %w", err)
	}
	logger.Info("HTML preview saved", "path", cfg.PreviewFile)
	return nil
}
