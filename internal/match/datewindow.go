package match

import (
	"context"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/timeutil"
)

// TeamResolver resolves a provider-native team reference to a canonical team.
// *teams.Directory satisfies it.
type TeamResolver interface {
	Resolve(reference string) (domain.CanonicalTeam, error)
}

// FindEvent scans the ordered date window [nominal-1, nominal, nominal+1]
// against the feed and returns the first event accepted by the predicate.
// The window absorbs calendar-date skew between the caller and the provider;
// the search short-circuits, so at most three feed calls are made. Feed
// errors abort the search. No acceptable event yields ErrNotFound.
func FindEvent(ctx context.Context, feed feeds.EventFeed, nominal time.Time, accept func(feeds.Event) bool) (feeds.Event, error) {
	for _, candidate := range timeutil.Window(nominal) {
		events, err := feed.ListEvents(ctx, candidate)
		if err != nil {
			return feeds.Event{}, err
		}
		for _, event := range events {
			if accept(event) {
				return event, nil
			}
		}
	}
	return feeds.Event{}, domain.ErrNotFound
}

// FindMatchingEvent locates the event whose two competitors resolve to the
// same canonical teams as homeRef and awayRef. Competitor orientation is not
// trusted: providers occasionally disagree on which side is home, so a
// swapped pairing still matches. Competitors that fail to resolve make the
// event a non-match rather than an error.
func FindMatchingEvent(ctx context.Context, feed feeds.EventFeed, resolver TeamResolver, homeRef, awayRef string, nominal time.Time) (feeds.Event, error) {
	home, err := resolver.Resolve(homeRef)
	if err != nil {
		return feeds.Event{}, err
	}
	away, err := resolver.Resolve(awayRef)
	if err != nil {
		return feeds.Event{}, err
	}

	return FindEvent(ctx, feed, nominal, func(event feeds.Event) bool {
		return eventMatchesPair(event, resolver, home.ID, away.ID)
	})
}

func eventMatchesPair(event feeds.Event, resolver TeamResolver, homeID, awayID string) bool {
	eventHome, ok := event.Side(true)
	if !ok {
		return false
	}
	eventAway, ok := event.Side(false)
	if !ok {
		return false
	}

	resolvedHome, err := resolver.Resolve(competitorRef(eventHome))
	if err != nil {
		return false
	}
	resolvedAway, err := resolver.Resolve(competitorRef(eventAway))
	if err != nil {
		return false
	}

	if resolvedHome.ID == homeID && resolvedAway.ID == awayID {
		return true
	}
	return resolvedHome.ID == awayID && resolvedAway.ID == homeID
}

func competitorRef(c feeds.Competitor) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Code
}
