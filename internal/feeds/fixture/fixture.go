// Package fixture provides deterministic in-memory feeds for local
// development and for wiring the server without upstream credentials.
package fixture

import (
	"context"
	"fmt"
	"sync"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/timeutil"
)

// Scoreboard is an in-memory ScoreboardFeed keyed by calendar date.
type Scoreboard struct {
	name string

	mu      sync.RWMutex
	events  map[string][]feeds.Event
	details map[string]feeds.EventDetail
}

// NewScoreboard returns an empty fixture scoreboard with the given feed name.
func NewScoreboard(name string) *Scoreboard {
	return &Scoreboard{
		name:    name,
		events:  make(map[string][]feeds.Event),
		details: make(map[string]feeds.EventDetail),
	}
}

// Name identifies the feed in logs and metrics.
func (s *Scoreboard) Name() string {
	return s.name
}

// AddEvent registers an event under its own Date.
func (s *Scoreboard) AddEvent(event feeds.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := timeutil.FormatDate(event.Date)
	s.events[key] = append(s.events[key], event)
}

// SetDetail registers the detail payload returned for an external id.
func (s *Scoreboard) SetDetail(externalID string, detail feeds.EventDetail) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.details[externalID] = detail
}

// ListEvents returns the events registered for the given calendar date.
func (s *Scoreboard) ListEvents(_ context.Context, date time.Time) ([]feeds.Event, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.events[timeutil.FormatDate(date)]
	out := make([]feeds.Event, len(stored))
	copy(out, stored)
	return out, nil
}

// EventDetail returns the registered detail for an external id.
func (s *Scoreboard) EventDetail(_ context.Context, externalID string) (feeds.EventDetail, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	detail, ok := s.details[externalID]
	if !ok {
		return feeds.EventDetail{}, fmt.Errorf("fixture: no detail for %s: %w", externalID, domain.ErrNotFound)
	}
	return detail, nil
}

// Broadcasts is an in-memory BroadcastFeed keyed by calendar date.
type Broadcasts struct {
	mu      sync.RWMutex
	entries map[string][]domain.BroadcastEntry
}

// NewBroadcasts returns an empty fixture broadcast listing.
func NewBroadcasts() *Broadcasts {
	return &Broadcasts{entries: make(map[string][]domain.BroadcastEntry)}
}

// Add registers a listing row under its own Date.
func (b *Broadcasts) Add(entry domain.BroadcastEntry) {
	b.mu.Lock()
	defer b.mu.Unlock()
	key := timeutil.FormatDate(entry.Date)
	b.entries[key] = append(b.entries[key], entry)
}

// ListBroadcasts returns the rows registered for the given calendar date.
func (b *Broadcasts) ListBroadcasts(_ context.Context, date time.Time) ([]domain.BroadcastEntry, error) {
	b.mu.RLock()
	defer b.mu.RUnlock()
	stored := b.entries[timeutil.FormatDate(date)]
	out := make([]domain.BroadcastEntry, len(stored))
	copy(out, stored)
	return out, nil
}

// Series is an in-memory SeriesFeed keyed by season.
type Series struct {
	mu      sync.RWMutex
	records map[string][]domain.PlayoffSeriesRecord
}

// NewSeries returns an empty fixture series feed.
func NewSeries() *Series {
	return &Series{records: make(map[string][]domain.PlayoffSeriesRecord)}
}

// Add registers a series record under its own Season.
func (s *Series) Add(record domain.PlayoffSeriesRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[record.Season] = append(s.records[record.Season], record)
}

// ListSeries returns the records registered for a season.
func (s *Series) ListSeries(_ context.Context, season string) ([]domain.PlayoffSeriesRecord, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	stored := s.records[season]
	out := make([]domain.PlayoffSeriesRecord, len(stored))
	copy(out, stored)
	return out, nil
}
