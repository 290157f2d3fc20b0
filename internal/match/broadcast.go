package match

import (
	"gamecast-service/internal/domain"
	"gamecast-service/internal/timeutil"
)

// MatchBroadcasts returns the network names carrying the game, zero or more
// since games simulcast. A candidate matches when both of its team refs
// resolve to the game's canonical ids in the same orientation AND its date is
// the same calendar day as the game's scheduled time. Broadcast listings are
// assumed same-day-accurate, so no multi-day window applies here.
func MatchBroadcasts(game domain.Game, candidates []domain.BroadcastEntry, resolver TeamResolver) []string {
	networks := make([]string, 0)
	for _, candidate := range candidates {
		if !timeutil.SameDay(game.ScheduledTime, candidate.Date) {
			continue
		}

		home, err := resolver.Resolve(candidate.HomeRef)
		if err != nil || home.ID != game.HomeTeamID {
			continue
		}
		away, err := resolver.Resolve(candidate.AwayRef)
		if err != nil || away.ID != game.AwayTeamID {
			continue
		}

		networks = append(networks, candidate.Network)
	}
	return networks
}
