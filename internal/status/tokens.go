package status

import (
	"strings"

	"gamecast-service/internal/domain"
)

// TokenTable maps one provider vocabulary onto the canonical lifecycle.
// Vocabularies differ per league: the football feed uses short period codes
// (Q1..Q4, HT, FT, AOT), the basketball feed uses status phrases. Adding a
// league means adding a table here, not branching at call sites.
type TokenTable struct {
	league domain.League
	tokens map[string]domain.GameStatus
}

// League reports which league the table covers.
func (t TokenTable) League() domain.League {
	return t.league
}

func (t TokenTable) lookup(token string) (domain.GameStatus, bool) {
	s, ok := t.tokens[normalizeToken(token)]
	return s, ok
}

func normalizeToken(token string) string {
	return strings.ToUpper(strings.TrimSpace(token))
}

// FootballTokens covers the possession feed's short status codes.
func FootballTokens() TokenTable {
	return TokenTable{
		league: domain.LeagueFootball,
		tokens: map[string]domain.GameStatus{
			"NS":      domain.StatusScheduled,
			"TBD":     domain.StatusScheduled,
			"Q1":      domain.StatusInProgress,
			"Q2":      domain.StatusInProgress,
			"Q3":      domain.StatusInProgress,
			"Q4":      domain.StatusInProgress,
			"OT":      domain.StatusInProgress,
			"HT":      domain.StatusHalftime,
			"FT":      domain.StatusFinal,
			"AOT":     domain.StatusFinal, // ended after overtime
			"PST":     domain.StatusPostponed,
			"CANC":    domain.StatusCanceled,
			"SUSP":    domain.StatusDelayed,
			"DELAYED": domain.StatusDelayed,
		},
	}
}

// BasketballTokens covers the schedule store's status phrases.
func BasketballTokens() TokenTable {
	return TokenTable{
		league: domain.LeagueBasketball,
		tokens: map[string]domain.GameStatus{
			"SCHEDULED":     domain.StatusScheduled,
			"IN PROGRESS":   domain.StatusInProgress,
			"END OF PERIOD": domain.StatusInProgress,
			"HALFTIME":      domain.StatusHalftime,
			"FINAL":         domain.StatusFinal,
			"ENDED":         domain.StatusFinal,
			"POSTPONED":     domain.StatusPostponed,
			"CANCELED":      domain.StatusCanceled,
			"CANCELLED":     domain.StatusCanceled,
			"DELAYED":       domain.StatusDelayed,
		},
	}
}
