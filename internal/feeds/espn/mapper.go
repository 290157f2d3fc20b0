package espn

import (
	"strconv"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
)

func mapEvent(e eventResponse) feeds.Event {
	event := feeds.Event{
		ExternalID: e.ID,
		RawStatus:  statusToken(e.Status),
		RawPeriod:  e.Status.Period,
		RawClock:   e.Status.DisplayClock,
	}
	if parsed, err := parseEventDate(e.Date); err == nil {
		event.Date = parsed
	}
	if len(e.Competitions) > 0 {
		event.Competitors = mapCompetitors(e.Competitions[0].Competitors)
	}
	return event
}

func mapDetail(c competitionResponse) feeds.EventDetail {
	detail := feeds.EventDetail{
		RawStatus:    statusToken(c.Status),
		RawPeriod:    c.Status.Period,
		RawClock:     c.Status.DisplayClock,
		Competitors:  mapCompetitors(c.Competitors),
		PeriodScores: mapPeriodScores(c.Competitors),
	}
	if c.Situation != nil {
		detail.PossessionExternalID = c.Situation.Possession
	}
	return detail
}

func mapCompetitors(competitors []competitorResponse) []feeds.Competitor {
	mapped := make([]feeds.Competitor, 0, len(competitors))
	for _, c := range competitors {
		mapped = append(mapped, feeds.Competitor{
			ExternalID: c.Team.ID,
			Name:       c.Team.DisplayName,
			Code:       c.Team.Abbreviation,
			Home:       c.HomeAway == "home",
			Score:      parseScore(c.Score),
		})
	}
	return mapped
}

// mapPeriodScores zips both competitors' linescores into per-period totals.
// Only present once periods complete, which makes it the trustworthy period
// count for finished games.
func mapPeriodScores(competitors []competitorResponse) []domain.PeriodScore {
	var home, away []linescoreResponse
	for _, c := range competitors {
		if c.HomeAway == "home" {
			home = c.Linescores
		} else {
			away = c.Linescores
		}
	}

	n := len(home)
	if len(away) < n {
		n = len(away)
	}
	if n == 0 {
		return nil
	}

	scores := make([]domain.PeriodScore, n)
	for i := 0; i < n; i++ {
		scores[i] = domain.PeriodScore{
			Home: int(home[i].Value),
			Away: int(away[i].Value),
		}
	}
	return scores
}

// statusToken reduces the upstream status object to the short token
// vocabulary this feed is known by (NS, Q1..Q4, HT, OT, FT, AOT, ...).
func statusToken(s statusResponse) string {
	switch s.Type.Name {
	case "STATUS_SCHEDULED":
		return "NS"
	case "STATUS_IN_PROGRESS":
		if s.Period > 4 {
			return "OT"
		}
		if s.Period >= 1 {
			return "Q" + strconv.Itoa(s.Period)
		}
		return "Q1"
	case "STATUS_HALFTIME":
		return "HT"
	case "STATUS_FINAL":
		if s.Period > 4 {
			return "AOT"
		}
		return "FT"
	case "STATUS_POSTPONED":
		return "PST"
	case "STATUS_CANCELED":
		return "CANC"
	case "STATUS_SUSPENDED", "STATUS_DELAYED":
		return "SUSP"
	default:
		// Pass the raw name through; the state machine degrades unknown
		// tokens to Scheduled with a warning.
		return s.Type.Name
	}
}

// Event timestamps arrive without seconds ("2023-11-12T18:00Z"), which the
// strict RFC3339 layout rejects.
func parseEventDate(raw string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, raw); err == nil {
		return parsed, nil
	}
	return time.Parse("2006-01-02T15:04Z07:00", raw)
}

func parseScore(raw string) int {
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0
	}
	return n
}
