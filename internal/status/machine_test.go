package status

import (
	"context"
	"log/slog"
	"sync"
	"testing"

	"gamecast-service/internal/domain"
)

type countingHandler struct {
	mu    sync.Mutex
	warns int
}

func (h *countingHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= slog.LevelWarn
}

func (h *countingHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()
	if record.Level == slog.LevelWarn {
		h.warns++
	}
	return nil
}

func (h *countingHandler) WithAttrs([]slog.Attr) slog.Handler { return h }
func (h *countingHandler) WithGroup(string) slog.Handler      { return h }

func (h *countingHandler) count() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.warns
}

type stubTokenRecorder struct {
	unknown []string
}

func (s *stubTokenRecorder) RecordUnknownToken(league string) {
	s.unknown = append(s.unknown, league)
}

func TestMapFootballTokens(t *testing.T) {
	m := NewDefaultMachine(nil, nil)

	cases := []struct {
		token string
		want  domain.GameStatus
	}{
		{"NS", domain.StatusScheduled},
		{"Q1", domain.StatusInProgress},
		{"Q3", domain.StatusInProgress},
		{"HT", domain.StatusHalftime},
		{"OT", domain.StatusInProgress},
		{"FT", domain.StatusFinal},
		{"AOT", domain.StatusFinal},
		{"CANC", domain.StatusCanceled},
		{"PST", domain.StatusPostponed},
		{"SUSP", domain.StatusDelayed},
	}
	for _, tc := range cases {
		if got := m.Map(domain.LeagueFootball, tc.token); got != tc.want {
			t.Fatalf("Map(football, %q): expected %s, got %s", tc.token, tc.want, got)
		}
	}
}

func TestMapBasketballTokens(t *testing.T) {
	m := NewDefaultMachine(nil, nil)

	cases := []struct {
		token string
		want  domain.GameStatus
	}{
		{"Final", domain.StatusFinal},
		{"ended", domain.StatusFinal},
		{"In Progress", domain.StatusInProgress},
		{"Halftime", domain.StatusHalftime},
		{"End of Period", domain.StatusInProgress},
		{"Postponed", domain.StatusPostponed},
		{"Cancelled", domain.StatusCanceled},
	}
	for _, tc := range cases {
		if got := m.Map(domain.LeagueBasketball, tc.token); got != tc.want {
			t.Fatalf("Map(basketball, %q): expected %s, got %s", tc.token, tc.want, got)
		}
	}
}

func TestHalftimeDistinctFromInProgress(t *testing.T) {
	m := NewDefaultMachine(nil, nil)
	if got := m.Map(domain.LeagueFootball, "HT"); got == domain.StatusInProgress {
		t.Fatal("HT must map to Halftime, not InProgress")
	}
}

func TestMapUnknownTokenDegradesWithOneWarning(t *testing.T) {
	handler := &countingHandler{}
	recorder := &stubTokenRecorder{}
	m := NewDefaultMachine(slog.New(handler), recorder)

	got := m.Map(domain.LeagueFootball, "WEIRD_TOKEN")
	if got != domain.StatusScheduled {
		t.Fatalf("expected fail-soft Scheduled, got %s", got)
	}
	if handler.count() != 1 {
		t.Fatalf("expected exactly one warning, got %d", handler.count())
	}
	if len(recorder.unknown) != 1 || recorder.unknown[0] != "football" {
		t.Fatalf("expected one unknown-token metric for football, got %v", recorder.unknown)
	}
}

func TestMapUnknownLeagueDegrades(t *testing.T) {
	handler := &countingHandler{}
	m := NewDefaultMachine(slog.New(handler), nil)

	if got := m.Map(domain.League("cricket"), "FT"); got != domain.StatusScheduled {
		t.Fatalf("expected Scheduled for unknown league, got %s", got)
	}
	if handler.count() != 1 {
		t.Fatalf("expected exactly one warning, got %d", handler.count())
	}
}

func TestMapNormalizesCaseAndSpace(t *testing.T) {
	m := NewDefaultMachine(nil, nil)
	if got := m.Map(domain.LeagueFootball, " ft "); got != domain.StatusFinal {
		t.Fatalf("expected Final for ' ft ', got %s", got)
	}
}

func TestTerminalStates(t *testing.T) {
	if !domain.StatusFinal.Terminal() || !domain.StatusCanceled.Terminal() {
		t.Fatal("expected Final and Canceled to be terminal")
	}
	for _, s := range []domain.GameStatus{
		domain.StatusScheduled, domain.StatusInProgress, domain.StatusHalftime,
		domain.StatusPostponed, domain.StatusDelayed,
	} {
		if s.Terminal() {
			t.Fatalf("expected %s to be non-terminal", s)
		}
	}
}
