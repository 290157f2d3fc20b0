package feeds

import (
	"context"
	"time"

	"gamecast-service/internal/domain"
)

// Competitor is one side of a provider event, identified in the provider's
// own id and naming space.
type Competitor struct {
	ExternalID string
	Name       string
	Code       string
	Home       bool
	Score      int
}

// Event is the provider-shaped record returned by a list-by-date call. It is
// transient: consumed immediately to update a canonical record, then dropped.
type Event struct {
	ExternalID  string
	Date        time.Time
	RawStatus   string
	RawPeriod   int
	RawClock    string
	Competitors []Competitor
}

// Side returns the home or away competitor.
func (e Event) Side(home bool) (Competitor, bool) {
	for _, c := range e.Competitors {
		if c.Home == home {
			return c, true
		}
	}
	return Competitor{}, false
}

// HasCompetitor reports whether any side carries the given external id.
func (e Event) HasCompetitor(externalID string) bool {
	for _, c := range e.Competitors {
		if c.ExternalID == externalID {
			return true
		}
	}
	return false
}

// EventDetail is the provider-shaped record returned by a detail-by-id call.
type EventDetail struct {
	RawStatus            string
	RawPeriod            int
	RawClock             string
	Competitors          []Competitor
	PeriodScores         []domain.PeriodScore
	PossessionExternalID string
}

// EventFeed lists a provider's events for one calendar date.
type EventFeed interface {
	Name() string
	ListEvents(ctx context.Context, date time.Time) ([]Event, error)
}

// DetailFeed fetches the live summary for a single event.
type DetailFeed interface {
	EventDetail(ctx context.Context, externalID string) (EventDetail, error)
}

// ScoreboardFeed combines listing and detail, the shape of a live scoreboard API.
type ScoreboardFeed interface {
	EventFeed
	DetailFeed
}

// BroadcastFeed lists broadcast-network entries for one calendar date.
type BroadcastFeed interface {
	ListBroadcasts(ctx context.Context, date time.Time) ([]domain.BroadcastEntry, error)
}

// SeriesFeed lists playoff-series records for a season.
type SeriesFeed interface {
	ListSeries(ctx context.Context, season string) ([]domain.PlayoffSeriesRecord, error)
}
