package status

import (
	"fmt"

	"gamecast-service/internal/domain"
)

const regulationPeriods = 4

// Label renders a period number as a human ordinal: 1..4 become "1st".."4th",
// anything past regulation becomes "OT", "OT2", "OT3", ...
func Label(period int) string {
	switch {
	case period <= 0:
		return ""
	case period <= regulationPeriods:
		return ordinal(period)
	default:
		return overtimeLabel(period - regulationPeriods)
	}
}

// CompactLabel renders the short form used by dense score strips: "Q1".."Q4"
// for regulation, the same overtime labels otherwise.
func CompactLabel(period int) string {
	switch {
	case period <= 0:
		return ""
	case period <= regulationPeriods:
		return fmt.Sprintf("Q%d", period)
	default:
		return overtimeLabel(period - regulationPeriods)
	}
}

// EffectivePeriods returns the period count to label a game with. For a
// terminal game the per-period score list is the source of truth: a stale
// current-period counter that stopped advancing would mislabel a finished
// double-overtime game.
func EffectivePeriods(rawPeriod int, periodScores []domain.PeriodScore, s domain.GameStatus) int {
	if s.Terminal() && len(periodScores) > 0 {
		return len(periodScores)
	}
	return rawPeriod
}

func overtimeLabel(index int) string {
	if index == 1 {
		return "OT"
	}
	return fmt.Sprintf("OT%d", index)
}

func ordinal(n int) string {
	switch n {
	case 1:
		return "1st"
	case 2:
		return "2nd"
	case 3:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", n)
	}
}
