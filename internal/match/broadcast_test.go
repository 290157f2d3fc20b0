package match

import (
	"testing"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/teams"
)

func broadcastGame() domain.Game {
	return domain.Game{
		ID:            "game-1",
		HomeTeamID:    "2",  // Boston Celtics
		AwayTeamID:    "14", // Los Angeles Lakers
		ScheduledTime: time.Date(2024, 6, 6, 20, 30, 0, 0, time.UTC),
		League:        domain.LeagueBasketball,
	}
}

func TestMatchBroadcastsSimulcast(t *testing.T) {
	day := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	candidates := []domain.BroadcastEntry{
		{Network: "ABC", HomeRef: "Celtics", AwayRef: "Lakers", Date: day},
		{Network: "ESPN", HomeRef: "Boston Celtics", AwayRef: "Los Angeles Lakers", Date: day},
		{Network: "TNT", HomeRef: "Bucks", AwayRef: "Heat", Date: day},
	}

	networks := MatchBroadcasts(broadcastGame(), candidates, teams.DefaultDirectory())
	if len(networks) != 2 {
		t.Fatalf("expected 2 networks, got %v", networks)
	}
	if networks[0] != "ABC" || networks[1] != "ESPN" {
		t.Fatalf("unexpected networks %v", networks)
	}
}

func TestMatchBroadcastsRejectsDifferentDay(t *testing.T) {
	candidates := []domain.BroadcastEntry{
		{Network: "ABC", HomeRef: "Celtics", AwayRef: "Lakers", Date: time.Date(2024, 6, 7, 0, 0, 0, 0, time.UTC)},
	}

	networks := MatchBroadcasts(broadcastGame(), candidates, teams.DefaultDirectory())
	if len(networks) != 0 {
		t.Fatalf("expected no networks across calendar days, got %v", networks)
	}
}

func TestMatchBroadcastsRejectsSwappedOrientation(t *testing.T) {
	day := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	candidates := []domain.BroadcastEntry{
		{Network: "ABC", HomeRef: "Lakers", AwayRef: "Celtics", Date: day},
	}

	networks := MatchBroadcasts(broadcastGame(), candidates, teams.DefaultDirectory())
	if len(networks) != 0 {
		t.Fatalf("expected orientation-strict matching, got %v", networks)
	}
}

func TestMatchBroadcastsEmptyForNoCandidates(t *testing.T) {
	networks := MatchBroadcasts(broadcastGame(), nil, teams.DefaultDirectory())
	if networks == nil || len(networks) != 0 {
		t.Fatalf("expected empty non-nil slice, got %v", networks)
	}
}

func TestMatchBroadcastsSkipsUnresolvableRefs(t *testing.T) {
	day := time.Date(2024, 6, 6, 0, 0, 0, 0, time.UTC)
	candidates := []domain.BroadcastEntry{
		{Network: "ABC", HomeRef: "Mystery Squad", AwayRef: "Lakers", Date: day},
	}

	networks := MatchBroadcasts(broadcastGame(), candidates, teams.DefaultDirectory())
	if len(networks) != 0 {
		t.Fatalf("expected unresolvable candidate to be skipped, got %v", networks)
	}
}
