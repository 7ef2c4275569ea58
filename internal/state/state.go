// Package state provides thread-safe state management for the application.
package state

import (
	"sync"
	"time"

	"github.com/litescript/ls-jyotish/internal/festival"
	"github.com/litescript/ls-jyotish/internal/panchang"
)

// EventType represents the type of state change event.
type EventType string

const (
	EventWindowOpened     EventType = "WINDOW_OPENED"
	EventWindowClosed     EventType = "WINDOW_CLOSED"
	EventTithiChanged     EventType = "TITHI_CHANGED"
	EventNakshatraChanged EventType = "NAKSHATRA_CHANGED"
)

// Event represents a change detected between two refreshes.
type Event struct {
	Type      EventType `json:"type"`
	Timestamp time.Time `json:"timestamp"`
	Window    string    `json:"window,omitempty"`
	Start     string    `json:"start,omitempty"`
	End       string    `json:"end,omitempty"`
	Old       string    `json:"old,omitempty"`
	New       string    `json:"new,omitempty"`
}

// Manager handles all shared application state with thread-safe access.
type Manager struct {
	mu sync.RWMutex

	// Current state
	current         *panchang.Day
	festivals       []festival.Festival
	active          []panchang.MuhuratWindow
	lastRefresh     time.Time
	lastError       error
	refreshDuration time.Duration

	// Windows active at the previous refresh, by name
	prevActive map[string]bool

	// Event log (ring buffer)
	events       []Event
	maxEvents    int
	eventWriteAt int

	// Configuration
	refreshInterval time.Duration
}

// Config holds configuration for the state manager.
type Config struct {
	MaxEvents       int
	RefreshInterval time.Duration
}

// DefaultConfig returns sensible default configuration.
func DefaultConfig() Config {
	return Config{
		MaxEvents:       50,
		RefreshInterval: time.Minute,
	}
}

// NewManager creates a new state manager.
func NewManager(cfg Config) *Manager {
	maxEvents := cfg.MaxEvents
	if maxEvents <= 0 {
		maxEvents = 50
	}
	return &Manager{
		maxEvents:       maxEvents,
		events:          make([]Event, 0, maxEvents),
		refreshInterval: cfg.RefreshInterval,
		prevActive:      make(map[string]bool),
	}
}

// Update atomically replaces the current day. now is the refresh time used
// to decide which windows are active. A nil day records only the error.
func (m *Manager) Update(day *panchang.Day, festivals []festival.Festival, now time.Time, took time.Duration, err error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.lastRefresh = now
	m.lastError = err
	m.refreshDuration = took

	if day == nil {
		return
	}

	active := day.ActiveWindows(now)

	// Detect events before updating current state
	m.detectEvents(day, active, now)

	m.current = day
	m.festivals = festivals
	m.active = active

	m.prevActive = make(map[string]bool, len(active))
	for _, w := range active {
		m.prevActive[w.Name] = true
	}
}

// detectEvents compares the new day with the previous refresh.
func (m *Manager) detectEvents(day *panchang.Day, active []panchang.MuhuratWindow, now time.Time) {
	if prev := m.current; prev != nil {
		if prev.Tithi.Number != day.Tithi.Number {
			m.addEvent(Event{
				Type:      EventTithiChanged,
				Timestamp: now,
				Old:       tithiLabel(prev.Tithi),
				New:       tithiLabel(day.Tithi),
			})
		}
		if prev.Nakshatra.Index != day.Nakshatra.Index {
			m.addEvent(Event{
				Type:      EventNakshatraChanged,
				Timestamp: now,
				Old:       prev.Nakshatra.Name,
				New:       day.Nakshatra.Name,
			})
		}
	}

	nowActive := make(map[string]bool, len(active))
	for _, w := range active {
		nowActive[w.Name] = true
		if !m.prevActive[w.Name] {
			m.addEvent(Event{
				Type:      EventWindowOpened,
				Timestamp: now,
				Window:    w.Name,
				Start:     w.StartTime,
				End:       w.EndTime,
			})
		}
	}

	// Closed windows in display order
	for _, w := range day.Windows() {
		if m.prevActive[w.Name] && !nowActive[w.Name] {
			m.addEvent(Event{
				Type:      EventWindowClosed,
				Timestamp: now,
				Window:    w.Name,
			})
		}
	}
}

func tithiLabel(t panchang.TithiInfo) string {
	return string(t.Paksha) + " " + t.Name
}

// addEvent adds an event to the ring buffer.
func (m *Manager) addEvent(e Event) {
	if len(m.events) < m.maxEvents {
		m.events = append(m.events, e)
	} else {
		m.events[m.eventWriteAt] = e
		m.eventWriteAt = (m.eventWriteAt + 1) % m.maxEvents
	}
}

// Snapshot represents an immutable snapshot of current state.
type Snapshot struct {
	Day             *panchang.Day
	Festivals       []festival.Festival
	ActiveWindows   []panchang.MuhuratWindow
	LastRefresh     time.Time
	LastError       error
	RefreshDuration time.Duration
	Events          []Event
}

// Snapshot returns a consistent snapshot of current state.
func (m *Manager) Snapshot() Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var day *panchang.Day
	if m.current != nil {
		d := *m.current
		day = &d
	}

	fests := make([]festival.Festival, len(m.festivals))
	copy(fests, m.festivals)

	active := make([]panchang.MuhuratWindow, len(m.active))
	copy(active, m.active)

	return Snapshot{
		Day:             day,
		Festivals:       fests,
		ActiveWindows:   active,
		LastRefresh:     m.lastRefresh,
		LastError:       m.lastError,
		RefreshDuration: m.refreshDuration,
		Events:          m.getEventsOrdered(),
	}
}

// getEventsOrdered returns events in chronological order.
func (m *Manager) getEventsOrdered() []Event {
	if len(m.events) == 0 {
		return nil
	}

	// If buffer isn't full yet, just copy
	if len(m.events) < m.maxEvents {
		result := make([]Event, len(m.events))
		copy(result, m.events)
		return result
	}

	// Ring buffer is full, reorder from oldest to newest
	result := make([]Event, m.maxEvents)
	for i := 0; i < m.maxEvents; i++ {
		idx := (m.eventWriteAt + i) % m.maxEvents
		result[i] = m.events[idx]
	}
	return result
}

// RecentEvents returns the last n events.
func (m *Manager) RecentEvents(n int) []Event {
	m.mu.RLock()
	defer m.mu.RUnlock()

	all := m.getEventsOrdered()
	if len(all) <= n {
		return all
	}
	return all[len(all)-n:]
}

// RefreshInterval returns the configured refresh interval.
func (m *Manager) RefreshInterval() time.Duration {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.refreshInterval
}

// SetRefreshInterval updates the refresh interval.
func (m *Manager) SetRefreshInterval(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.refreshInterval = d
}

// HasData returns true once a day has been computed.
func (m *Manager) HasData() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current != nil
}
