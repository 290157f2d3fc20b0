package http

import (
	"encoding/json"
	"log/slog"
	nethttp "net/http"
	"strings"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/store"
	"gamecast-service/internal/teams"
	"gamecast-service/internal/timeutil"
	"gamecast-service/internal/view"
)

type nowFunc func() time.Time

// Handler wires HTTP routes to the view assembler and the game store.
type Handler struct {
	assembler *view.Assembler
	store     *store.MemoryStore
	directory *teams.Directory
	season    string
	logger    *slog.Logger
	now       nowFunc
	ready     func() bool
}

// NewHandler constructs a Handler with defaults. Season, when non-empty, is
// used for playoff series enrichment on every view request that does not
// carry its own.
func NewHandler(assembler *view.Assembler, st *store.MemoryStore, directory *teams.Directory, season string, logger *slog.Logger) *Handler {
	return &Handler{
		assembler: assembler,
		store:     st,
		directory: directory,
		season:    season,
		logger:    logger,
		now:       time.Now,
	}
}

// Health reports the service health.
func (h *Handler) Health(w nethttp.ResponseWriter, r *nethttp.Request) {
	resp := map[string]string{"status": "ok"}
	h.writeJSON(w, nethttp.StatusOK, resp)
}

// SetReadiness installs a readiness check consulted by Ready. Without one
// the handler reports ready as soon as it serves traffic.
func (h *Handler) SetReadiness(check func() bool) {
	h.ready = check
}

// Ready reports readiness to take traffic.
func (h *Handler) Ready(w nethttp.ResponseWriter, r *nethttp.Request) {
	if h.ready != nil && !h.ready() {
		h.writeJSON(w, nethttp.StatusServiceUnavailable, map[string]string{"status": "not ready"})
		return
	}
	h.writeJSON(w, nethttp.StatusOK, map[string]string{"status": "ready"})
}

// GameView resolves both team refs and returns the merged live view.
// Query parameters: home, away (required team refs), date (YYYY-MM-DD,
// defaults to today), league (defaults to basketball), season (optional).
func (h *Handler) GameView(w nethttp.ResponseWriter, r *nethttp.Request) {
	homeRef := strings.TrimSpace(r.URL.Query().Get("home"))
	awayRef := strings.TrimSpace(r.URL.Query().Get("away"))
	if homeRef == "" || awayRef == "" {
		h.writeError(w, nethttp.StatusBadRequest, "home and away team refs are required")
		return
	}

	date := h.now()
	if raw := r.URL.Query().Get("date"); raw != "" {
		parsed, err := timeutil.ParseDate(raw)
		if err != nil {
			h.writeError(w, nethttp.StatusBadRequest, "date must be YYYY-MM-DD")
			return
		}
		date = parsed
	}

	league := domain.LeagueBasketball
	switch r.URL.Query().Get("league") {
	case "", string(domain.LeagueBasketball):
	case string(domain.LeagueFootball):
		league = domain.LeagueFootball
	default:
		h.writeError(w, nethttp.StatusBadRequest, "unknown league")
		return
	}

	season := r.URL.Query().Get("season")
	if season == "" {
		season = h.season
	}

	gameView, err := h.assembler.Assemble(r.Context(), view.Request{
		HomeRef: homeRef,
		AwayRef: awayRef,
		Date:    date,
		League:  league,
		Season:  season,
	})
	if err != nil {
		h.writeViewError(w, err)
		return
	}

	h.writeJSON(w, nethttp.StatusOK, gameView)
}

// Games returns the current snapshot of canonical game records.
func (h *Handler) Games(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"games": h.store.ListGames(),
	})
}

// GameByID returns a specific canonical record if present.
func (h *Handler) GameByID(w nethttp.ResponseWriter, r *nethttp.Request) {
	// Expect path: /games/{id}
	id := strings.TrimPrefix(r.URL.Path, "/games/")
	if id == "" || id == "games" {
		h.writeError(w, nethttp.StatusBadRequest, "missing game id")
		return
	}

	game, ok := h.store.GetGame(id)
	if !ok {
		h.writeError(w, nethttp.StatusNotFound, "game not found")
		return
	}

	h.writeJSON(w, nethttp.StatusOK, game)
}

// Teams returns the canonical team directory.
func (h *Handler) Teams(w nethttp.ResponseWriter, r *nethttp.Request) {
	h.writeJSON(w, nethttp.StatusOK, map[string]any{
		"teams": h.directory.Teams(),
	})
}

// ResolveTeam resolves a free-form team ref to its canonical team.
func (h *Handler) ResolveTeam(w nethttp.ResponseWriter, r *nethttp.Request) {
	ref := strings.TrimSpace(r.URL.Query().Get("ref"))
	if ref == "" {
		h.writeError(w, nethttp.StatusBadRequest, "ref is required")
		return
	}

	team, err := h.directory.Resolve(ref)
	if err != nil {
		h.writeViewError(w, err)
		return
	}
	h.writeJSON(w, nethttp.StatusOK, team)
}

// writeViewError maps resolution failures onto HTTP statuses. Ambiguity is a
// caller problem and includes the candidates; expected absence is 404; a
// transient upstream failure is 502 so callers know to retry.
func (h *Handler) writeViewError(w nethttp.ResponseWriter, err error) {
	if ambErr, ok := domain.AsAmbiguousReferenceError(err); ok {
		h.writeJSON(w, nethttp.StatusBadRequest, map[string]any{
			"error":      ambErr.Error(),
			"candidates": ambErr.Candidates,
		})
		return
	}
	if domain.IsNotFound(err) {
		h.writeError(w, nethttp.StatusNotFound, "game not found")
		return
	}
	if feeds.IsTransient(err) {
		h.writeError(w, nethttp.StatusBadGateway, "upstream feed unavailable")
		return
	}
	h.writeError(w, nethttp.StatusInternalServerError, "internal error")
}

func (h *Handler) writeJSON(w nethttp.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(payload); err != nil && h.logger != nil {
		h.logger.Error("failed to encode response", "error", err)
	}
}

func (h *Handler) writeError(w nethttp.ResponseWriter, status int, message string) {
	h.writeJSON(w, status, map[string]string{"error": message})
}
