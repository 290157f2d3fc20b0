package http

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/feeds/fixture"
	"gamecast-service/internal/metrics"
	"gamecast-service/internal/status"
	"gamecast-service/internal/store"
	"gamecast-service/internal/teams"
	"gamecast-service/internal/view"
)

var testDay = time.Date(2024, 4, 14, 19, 0, 0, 0, time.UTC)

func newTestHandler(t testing.TB) (*Handler, *store.MemoryStore) {
	t.Helper()

	scoreboard := fixture.NewScoreboard("fixture")
	scoreboard.AddEvent(feeds.Event{
		ExternalID: "9001",
		Date:       testDay,
		RawStatus:  "Final",
		RawPeriod:  4,
		Competitors: []feeds.Competitor{
			{ExternalID: "2", Name: "Boston Celtics", Code: "BOS", Home: true, Score: 109},
			{ExternalID: "14", Name: "Los Angeles Lakers", Code: "LAL", Home: false, Score: 102},
		},
	})

	directory := teams.DefaultDirectory()
	st := store.NewMemoryStore()
	rec := metrics.NewRecorder()

	assembler, err := view.New(view.Config{
		Directory:  directory,
		Scoreboard: scoreboard,
		Machine:    status.NewDefaultMachine(nil, rec),
		Store:      st,
		Metrics:    rec,
	})
	if err != nil {
		t.Fatalf("view.New: %v", err)
	}

	h := NewHandler(assembler, st, directory, "", nil)
	h.now = func() time.Time { return testDay }
	return h, st
}

func TestHealth(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/health", nil)
	rr := httptest.NewRecorder()

	h.Health(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp map[string]string
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding health response: %v", err)
	}
	if resp["status"] != "ok" {
		t.Fatalf("expected status ok, got %s", resp["status"])
	}
}

func TestReadyFollowsReadinessCheck(t *testing.T) {
	h, _ := newTestHandler(t)

	// No check installed: always ready.
	rr := httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest("GET", "/ready", nil))
	if rr.Code != 200 {
		t.Fatalf("expected 200 without a readiness check, got %d", rr.Code)
	}

	ready := false
	h.SetReadiness(func() bool { return ready })

	rr = httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest("GET", "/ready", nil))
	if rr.Code != 503 {
		t.Fatalf("expected 503 while not ready, got %d", rr.Code)
	}

	ready = true
	rr = httptest.NewRecorder()
	h.Ready(rr, httptest.NewRequest("GET", "/ready", nil))
	if rr.Code != 200 {
		t.Fatalf("expected 200 once ready, got %d", rr.Code)
	}
}

func TestGameViewSuccess(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/view?home=Celtics&away=Lakers&date=2024-04-14", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d: %s", rr.Code, rr.Body.String())
	}

	var resp domain.GameView
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding view response: %v", err)
	}
	if resp.Status != domain.StatusFinal {
		t.Fatalf("expected FINAL, got %s", resp.Status)
	}
	if resp.Winner != "home" {
		t.Fatalf("expected home winner, got %q", resp.Winner)
	}
}

func TestGameViewMissingRefs(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/view?home=Celtics", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGameViewAmbiguousRefIncludesCandidates(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/view?home=Los+Angeles&away=Celtics&date=2024-04-14", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}

	var resp struct {
		Error      string   `json:"error"`
		Candidates []string `json:"candidates"`
	}
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed decoding error response: %v", err)
	}
	if len(resp.Candidates) < 2 {
		t.Fatalf("expected candidate list, got %+v", resp)
	}
}

func TestGameViewNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	// Both refs resolve but no event exists anywhere near that date.
	req := httptest.NewRequest("GET", "/games/view?home=Celtics&away=Knicks&date=2024-04-14", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGameViewBadDate(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/view?home=Celtics&away=Lakers&date=tomorrow", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGameViewUnknownLeague(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/view?home=Celtics&away=Lakers&league=cricket", nil)
	rr := httptest.NewRecorder()

	h.GameView(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGameByIDNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/unknown", nil)
	rr := httptest.NewRecorder()

	h.GameByID(rr, req)

	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}

func TestGameByIDMissingID(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/games/", nil)
	rr := httptest.NewRecorder()

	h.GameByID(rr, req)

	if rr.Code != 400 {
		t.Fatalf("expected 400, got %d", rr.Code)
	}
}

func TestGameByIDSuccess(t *testing.T) {
	h, st := newTestHandler(t)
	st.SetGames([]domain.Game{{ID: "fixture:9001", HomeTeamID: "2", AwayTeamID: "14", Status: domain.StatusFinal}})

	req := httptest.NewRequest("GET", "/games/fixture:9001", nil)
	rr := httptest.NewRecorder()

	h.GameByID(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp domain.Game
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "fixture:9001" {
		t.Fatalf("unexpected game id %s", resp.ID)
	}
}

func TestResolveTeam(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/teams/resolve?ref=Lakers", nil)
	rr := httptest.NewRecorder()

	h.ResolveTeam(rr, req)

	if rr.Code != 200 {
		t.Fatalf("expected 200, got %d", rr.Code)
	}

	var resp domain.CanonicalTeam
	if err := json.NewDecoder(rr.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.ID != "14" {
		t.Fatalf("expected Lakers id 14, got %s", resp.ID)
	}
}

func TestResolveTeamNotFound(t *testing.T) {
	h, _ := newTestHandler(t)

	req := httptest.NewRequest("GET", "/teams/resolve?ref=Zephyrs", nil)
	rr := httptest.NewRecorder()

	h.ResolveTeam(rr, req)

	if rr.Code != 404 {
		t.Fatalf("expected 404, got %d", rr.Code)
	}
}
