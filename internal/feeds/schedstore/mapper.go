package schedstore

import (
	"strconv"
	"strings"
	"time"

	"gamecast-service/internal/feeds"
)

func mapGame(g gameResponse) feeds.Event {
	event := feeds.Event{
		ExternalID: strconv.Itoa(g.ID),
		RawStatus:  strings.TrimSpace(g.Status),
		RawPeriod:  g.Period,
		RawClock:   strings.TrimSpace(g.Time),
		Competitors: []feeds.Competitor{
			mapTeam(g.HomeTeam, true, g.HomeTeamScore),
			mapTeam(g.VisitorTeam, false, g.VisitorTeamScore),
		},
	}
	if parsed, err := parseGameDate(g.Date); err == nil {
		event.Date = parsed
	}
	return event
}

func mapTeam(t teamResponse, home bool, score int) feeds.Competitor {
	return feeds.Competitor{
		ExternalID: strconv.Itoa(t.ID),
		Name:       t.FullName,
		Code:       t.Abbreviation,
		Home:       home,
		Score:      score,
	}
}

// The store serves either a bare date or a full RFC3339 timestamp depending
// on the endpoint vintage.
func parseGameDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02", raw)
}
