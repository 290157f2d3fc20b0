package match

import "gamecast-service/internal/domain"

// Update is a fresh provider observation about a game, already reduced to the
// canonical status vocabulary.
type Update struct {
	Status       domain.GameStatus
	Period       int
	Clock        string
	HomeScore    int
	AwayScore    int
	PeriodScores []domain.PeriodScore
}

// ApplyUpdate merges an observation into an existing record in place and
// reports whether it was applied. Once a record reaches a terminal state
// within a session, a stale poll must not drag it back: a non-terminal
// incoming status against a terminal record is rejected.
func ApplyUpdate(game *domain.Game, update Update) bool {
	if game.Status.Terminal() && !update.Status.Terminal() {
		return false
	}

	game.Status = update.Status
	game.Period = update.Period
	game.Clock = update.Clock
	game.HomeScore = update.HomeScore
	game.AwayScore = update.AwayScore
	if len(update.PeriodScores) > 0 {
		game.PeriodScores = update.PeriodScores
	}
	return true
}
