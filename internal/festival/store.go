package festival

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rs/zerolog"
)

const reloadDebounce = 100 * time.Millisecond

// Store holds the active calendar and swaps it on reload.
type Store struct {
	mu  sync.RWMutex
	cal *Calendar
}

// NewStore returns a store serving cal, or the default calendar when cal is
// nil.
func NewStore(cal *Calendar) *Store {
	if cal == nil {
		cal = Default()
	}
	return &Store{cal: cal}
}

// Calendar returns the active calendar.
func (s *Store) Calendar() *Calendar {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cal
}

// Set replaces the active calendar.
func (s *Store) Set(cal *Calendar) {
	s.mu.Lock()
	s.cal = cal
	s.mu.Unlock()
}

// Upcoming returns the active calendar's festivals for now's month.
func (s *Store) Upcoming(now time.Time, limit int) []Festival {
	return s.Calendar().Upcoming(now, limit)
}

// Watch reloads the calendar from path whenever the file changes, until ctx
// is cancelled. The parent directory is watched so editors that replace the
// file by rename are seen. A file that fails to load leaves the previous
// calendar in place.
func (s *Store) Watch(ctx context.Context, path string, log zerolog.Logger) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating festival watcher: %w", err)
	}
	defer fw.Close()

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}

	log = log.With().Str("component", "festival").Str("path", abs).Logger()
	log.Debug().Msg("watching festival calendar")

	var pending time.Time
	ticker := time.NewTicker(reloadDebounce)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				pending = time.Now()
			}

		case <-ticker.C:
			if pending.IsZero() || time.Since(pending) < reloadDebounce {
				continue
			}
			pending = time.Time{}

			cal, err := LoadFile(abs)
			if err != nil {
				log.Warn().Err(err).Msg("festival reload failed, keeping previous calendar")
				continue
			}
			s.Set(cal)
			log.Info().Int("festivals", len(cal.Rules)).Msg("festival calendar reloaded")

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			log.Warn().Err(err).Msg("festival watcher error")
		}
	}
}
