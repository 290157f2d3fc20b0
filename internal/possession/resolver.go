package possession

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/logging"
	"gamecast-service/internal/match"
)

// Resolver derives which team currently holds the ball for a live game. The
// possession feed knows nothing about canonical ids, so the resolver bridges
// through the static IDMap on the way in and back out.
type Resolver struct {
	feed   feeds.ScoreboardFeed
	ids    *IDMap
	logger *slog.Logger
	now    func() time.Time
}

// NewResolver constructs a possession resolver over the given scoreboard feed.
func NewResolver(feed feeds.ScoreboardFeed, ids *IDMap, logger *slog.Logger) *Resolver {
	return &Resolver{
		feed:   feed,
		ids:    ids,
		logger: logger,
		now:    time.Now,
	}
}

// Resolve maps both canonical ids to the feed's ids, locates the event within
// the bounded date window, fetches its live summary, and inverts the table to
// a canonical possessing team. An unmapped team is fatal for the call (no
// partial result); no event in the window is NotFound; a failed summary fetch
// surfaces as transient so the caller may fall back to its last known state.
func (r *Resolver) Resolve(ctx context.Context, homeID, awayID string, nominal time.Time) (domain.PossessionState, error) {
	homeExt, ok := r.ids.External(homeID)
	if !ok {
		return domain.PossessionState{}, fmt.Errorf("possession: team %s has no feed mapping: %w", homeID, domain.ErrNotFound)
	}
	awayExt, ok := r.ids.External(awayID)
	if !ok {
		return domain.PossessionState{}, fmt.Errorf("possession: team %s has no feed mapping: %w", awayID, domain.ErrNotFound)
	}

	event, err := match.FindEvent(ctx, r.feed, nominal, func(e feeds.Event) bool {
		return e.HasCompetitor(homeExt) && e.HasCompetitor(awayExt)
	})
	if err != nil {
		return domain.PossessionState{}, err
	}

	detail, err := r.feed.EventDetail(ctx, event.ExternalID)
	if err != nil {
		return domain.PossessionState{}, err
	}

	state := domain.PossessionState{AsOf: r.now()}
	if detail.PossessionExternalID == "" {
		// Between plays or the feed has no possession marker yet.
		return state, nil
	}

	canonical, ok := r.ids.Canonical(detail.PossessionExternalID)
	if !ok {
		// The feed reported an id outside the static table; the table is
		// maintained out-of-band, so surface it and report no possession.
		logging.Warn(r.logger, "possessing team missing from id mapping",
			slog.String(logging.FieldFeed, r.feed.Name()),
			slog.String("external_id", detail.PossessionExternalID),
		)
		return state, nil
	}

	state.TeamID = canonical
	return state, nil
}
