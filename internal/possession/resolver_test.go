package possession

import (
	"context"
	"errors"
	"testing"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/timeutil"
)

// stubScoreboard serves canned events by date and one detail payload.
type stubScoreboard struct {
	eventsByDate map[string][]feeds.Event
	detail       feeds.EventDetail
	detailErr    error
	detailCalls  []string
	listErr      error
}

func (s *stubScoreboard) Name() string { return "stub-scoreboard" }

func (s *stubScoreboard) ListEvents(ctx context.Context, date time.Time) ([]feeds.Event, error) {
	_ = ctx
	if s.listErr != nil {
		return nil, s.listErr
	}
	return s.eventsByDate[timeutil.FormatDate(date)], nil
}

func (s *stubScoreboard) EventDetail(ctx context.Context, externalID string) (feeds.EventDetail, error) {
	_ = ctx
	s.detailCalls = append(s.detailCalls, externalID)
	if s.detailErr != nil {
		return feeds.EventDetail{}, s.detailErr
	}
	return s.detail, nil
}

func footballEvent(externalID string, competitorIDs ...string) feeds.Event {
	e := feeds.Event{ExternalID: externalID}
	for i, id := range competitorIDs {
		e.Competitors = append(e.Competitors, feeds.Competitor{ExternalID: id, Home: i == 0})
	}
	return e
}

func newTestResolver(t *testing.T, feed feeds.ScoreboardFeed) *Resolver {
	t.Helper()
	ids, err := NewIDMap(DefaultFootballPairs())
	if err != nil {
		t.Fatalf("unexpected error building id map: %v", err)
	}
	return NewResolver(feed, ids, nil)
}

func TestResolvePossessingTeam(t *testing.T) {
	// Chiefs (101 -> 12) at home against the Bills (103 -> 2); the feed says
	// external id 2 has the ball.
	feed := &stubScoreboard{
		eventsByDate: map[string][]feeds.Event{
			"2024-09-15": {footballEvent("nfl-77", "12", "2")},
		},
		detail: feeds.EventDetail{PossessionExternalID: "2"},
	}
	r := newTestResolver(t, feed)

	nominal := time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC)
	state, err := r.Resolve(context.Background(), "101", "103", nominal)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TeamID != "103" {
		t.Fatalf("expected canonical id 103 to possess, got %q", state.TeamID)
	}
	if state.AsOf.IsZero() {
		t.Fatal("expected AsOf timestamp to be set")
	}
	if len(feed.detailCalls) != 1 || feed.detailCalls[0] != "nfl-77" {
		t.Fatalf("expected one detail call for nfl-77, got %v", feed.detailCalls)
	}
}

func TestResolveUnmappedTeamIsNotFound(t *testing.T) {
	r := newTestResolver(t, &stubScoreboard{})

	_, err := r.Resolve(context.Background(), "999", "103", time.Now())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for unmapped team, got %v", err)
	}

	// Either side unmapped fails the whole call; no partial result.
	_, err = r.Resolve(context.Background(), "101", "999", time.Now())
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound for unmapped away team, got %v", err)
	}
}

func TestResolveNoEventInWindow(t *testing.T) {
	feed := &stubScoreboard{eventsByDate: map[string][]feeds.Event{}}
	r := newTestResolver(t, feed)

	_, err := r.Resolve(context.Background(), "101", "103", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC))
	if !domain.IsNotFound(err) {
		t.Fatalf("expected NotFound when no event matches, got %v", err)
	}
	if len(feed.detailCalls) != 0 {
		t.Fatal("expected no detail fetch without a located event")
	}
}

func TestResolveDetailFailureIsTransient(t *testing.T) {
	feed := &stubScoreboard{
		eventsByDate: map[string][]feeds.Event{
			"2024-09-15": {footballEvent("nfl-77", "12", "2")},
		},
		detailErr: feeds.Transient("stub-scoreboard", errors.New("summary 502")),
	}
	r := newTestResolver(t, feed)

	_, err := r.Resolve(context.Background(), "101", "103", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC))
	if !feeds.IsTransient(err) {
		t.Fatalf("expected transient error from detail fetch, got %v", err)
	}
}

func TestResolveNoPossessionMarker(t *testing.T) {
	feed := &stubScoreboard{
		eventsByDate: map[string][]feeds.Event{
			"2024-09-15": {footballEvent("nfl-77", "12", "2")},
		},
		detail: feeds.EventDetail{},
	}
	r := newTestResolver(t, feed)

	state, err := r.Resolve(context.Background(), "101", "103", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TeamID != "" {
		t.Fatalf("expected no possessing team, got %q", state.TeamID)
	}
}

func TestResolveUnknownPossessorFailsSoft(t *testing.T) {
	feed := &stubScoreboard{
		eventsByDate: map[string][]feeds.Event{
			"2024-09-15": {footballEvent("nfl-77", "12", "2")},
		},
		detail: feeds.EventDetail{PossessionExternalID: "555"},
	}
	r := newTestResolver(t, feed)

	state, err := r.Resolve(context.Background(), "101", "103", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TeamID != "" {
		t.Fatalf("expected empty possession for unknown external id, got %q", state.TeamID)
	}
}

func TestResolveUsesDateWindowForSkewedDate(t *testing.T) {
	// Event stored a day earlier than the caller's nominal date.
	feed := &stubScoreboard{
		eventsByDate: map[string][]feeds.Event{
			"2024-09-14": {footballEvent("nfl-77", "12", "2")},
		},
		detail: feeds.EventDetail{PossessionExternalID: "12"},
	}
	r := newTestResolver(t, feed)

	state, err := r.Resolve(context.Background(), "101", "103", time.Date(2024, 9, 15, 0, 0, 0, 0, time.UTC))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if state.TeamID != "101" {
		t.Fatalf("expected home team possession, got %q", state.TeamID)
	}
}
