package status

import "gamecast-service/internal/domain"

// Side names the winning side of a final game.
type Side string

const (
	SideNone Side = ""
	SideHome Side = "home"
	SideAway Side = "away"
)

// Evaluation carries leader/tie emphasis flags and, for final games, the winner.
type Evaluation struct {
	HomeIsLeader bool
	AwayIsLeader bool
	IsTie        bool
	Winner       Side
}

// Evaluate derives emphasis flags from raw scores and the canonical status.
// Leader and tie flags are always score-derived so live games get emphasis.
// Winner is defined only at Final; equal scores in a terminal state are a
// data anomaly and produce no winner rather than asserting a false result.
func Evaluate(homeScore, awayScore int, s domain.GameStatus) Evaluation {
	eval := Evaluation{
		HomeIsLeader: homeScore > awayScore,
		AwayIsLeader: awayScore > homeScore,
		IsTie:        homeScore == awayScore,
	}

	if s != domain.StatusFinal {
		return eval
	}

	switch {
	case eval.HomeIsLeader:
		eval.Winner = SideHome
	case eval.AwayIsLeader:
		eval.Winner = SideAway
	}
	return eval
}
