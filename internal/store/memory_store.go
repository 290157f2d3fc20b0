package store

import (
	"sync"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/timeutil"
)

// MemoryStore keeps a thread-safe snapshot of canonical games in memory.
// Records are re-derived from feeds each session and never persisted.
type MemoryStore struct {
	mu    sync.RWMutex
	games map[string]domain.Game
}

// NewMemoryStore constructs an empty MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		games: make(map[string]domain.Game),
	}
}

// ListGames returns a copy of the current games.
func (s *MemoryStore) ListGames() []domain.Game {
	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]domain.Game, 0, len(s.games))
	for _, g := range s.games {
		result = append(result, g)
	}
	return result
}

// GetGame retrieves a game by ID.
func (s *MemoryStore) GetGame(id string) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	g, ok := s.games[id]
	return g, ok
}

// FindByTeamsAndDate locates a stored game by its canonical team pair and
// calendar date, accepting either home/away orientation.
func (s *MemoryStore) FindByTeamsAndDate(teamA, teamB string, date time.Time) (domain.Game, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, g := range s.games {
		if !timeutil.SameDay(date, g.ScheduledTime) {
			continue
		}
		if (g.HomeTeamID == teamA && g.AwayTeamID == teamB) ||
			(g.HomeTeamID == teamB && g.AwayTeamID == teamA) {
			return g, true
		}
	}
	return domain.Game{}, false
}

// Upsert stores a game, refusing to regress a terminal record to a
// non-terminal status. It reports whether the record was written.
func (s *MemoryStore) Upsert(game domain.Game) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if existing, ok := s.games[game.ID]; ok {
		if existing.Status.Terminal() && !game.Status.Terminal() {
			return false
		}
	}
	s.games[game.ID] = game
	return true
}

// SetGames replaces the existing games with a new snapshot.
func (s *MemoryStore) SetGames(games []domain.Game) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.games = make(map[string]domain.Game, len(games))
	for _, g := range games {
		s.games[g.ID] = g
	}
}
