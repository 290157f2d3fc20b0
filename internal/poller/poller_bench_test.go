package poller

import (
	"context"
	"fmt"
	"testing"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/feeds/fixture"
	"gamecast-service/internal/metrics"
	"gamecast-service/internal/status"
	"gamecast-service/internal/store"
	"gamecast-service/internal/teams"
	"gamecast-service/internal/testutil"
)

func BenchmarkRefreshOnce(b *testing.B) {
	day := testutil.MustParseRFC3339("2024-04-14T19:00:00Z")
	scoreboard := fixture.NewScoreboard("fixture")
	for i := 0; i < 8; i++ {
		scoreboard.AddEvent(feeds.Event{
			ExternalID: fmt.Sprintf("evt-%d", i),
			Date:       day,
			RawStatus:  "In Progress",
			RawPeriod:  2,
			Competitors: []feeds.Competitor{
				{ExternalID: "2", Name: "Boston Celtics", Code: "BOS", Home: true, Score: 50 + i},
				{ExternalID: "14", Name: "Los Angeles Lakers", Code: "LAL", Home: false, Score: 48},
			},
		})
	}

	recorder := metrics.NewRecorder()
	st := store.NewMemoryStore()
	machine := status.NewDefaultMachine(nil, recorder)
	p := New(scoreboard, teams.DefaultDirectory(), machine, st, domain.LeagueBasketball, nil, recorder, time.Hour)
	p.now = testutil.NowAt(day)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		p.refreshOnce(context.Background())
	}
	_ = st.ListGames()
}
