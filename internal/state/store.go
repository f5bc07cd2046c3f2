package state

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Store persists AlertState to a single JSON file slot. Every write
// replaces the whole slot via a temp file + rename, so a reader never
// observes a half-written state. No cross-process locking is done: the
// scan and notify phases are scheduled hours apart and are assumed never
// to overlap.
type Store struct {
	path   string
	window PromoWindow
	now    func() time.Time
}

// NewStore creates a store over the given file path with the fixed promo
// window stamped onto every write.
func NewStore(path string, window PromoWindow) *Store {
	return &Store{
		path:   path,
		window: window,
		now:    time.Now,
	}
}

// Path returns the location of the persisted slot.
func (s *Store) Path() string {
	return s.path
}

// Write overwrites the slot with a state built from the scan result.
// AlertNeeded is derived from non-emptiness; a scan that found nothing
// persists the canonical no-alert state. Returns the state written.
func (s *Store) Write(performances []PerformanceRecord, checkDate string) (AlertState, error) {
	if performances == nil {
		performances = []PerformanceRecord{}
	}
	w := s.window
	st := AlertState{
		AlertNeeded:  len(performances) > 0,
		Performances: performances,
		CheckDate:    checkDate,
		CheckedAt:    timestamp(s.now()),
		PromoWindow:  &w,
	}
	if err := s.save(st); err != nil {
		return AlertState{}, err
	}
	return st, nil
}

// Read returns the persisted state verbatim. If no state has ever been
// written, the canonical empty state is returned; absence is never an
// error.
func (s *Store) Read() (AlertState, error) {
	raw, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return Empty(), nil
	}
	if err != nil {
		return AlertState{}, fmt.Errorf("read alert state: %w", err)
	}

	var st AlertState
	if err := json.Unmarshal(raw, &st); err != nil {
		return AlertState{}, fmt.Errorf("decode alert state: %w", err)
	}
	if st.Performances == nil {
		st.Performances = []PerformanceRecord{}
	}
	return st, nil
}

// Clear overwrites the slot with the empty state stamped with a clear
// timestamp. This is the only operation that retires a pending alert.
func (s *Store) Clear() error {
	st := Empty()
	st.ClearedAt = timestamp(s.now())
	return s.save(st)
}

// save writes the state atomically: marshal to a temp file in the same
// directory, then rename over the slot.
func (s *Store) save(st AlertState) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create state dir: %w", err)
	}

	data, err := json.MarshalIndent(st, "", "  ")
	if err != nil {
		return fmt.Errorf("encode alert state: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".alert_state-*.json")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("write temp state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("close temp state file: %w", err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("replace state file: %w", err)
	}
	return nil
}
