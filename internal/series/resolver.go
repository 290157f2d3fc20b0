package series

import (
	"context"
	"log/slog"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
)

// PairKey normalizes two canonical team ids into the unordered pair a series
// record is keyed by. A series spans several games whose home side
// alternates, so order must never matter.
func PairKey(a, b string) [2]string {
	if b < a {
		a, b = b, a
	}
	return [2]string{a, b}
}

// Resolver locates playoff-series records by team pair and season.
type Resolver struct {
	feed   feeds.SeriesFeed
	logger *slog.Logger
}

// NewResolver constructs a series resolver over the given feed.
func NewResolver(feed feeds.SeriesFeed, logger *slog.Logger) *Resolver {
	return &Resolver{feed: feed, logger: logger}
}

// Resolve returns the series record for the unordered team pair within a
// season. Most games have no playoff context, so NotFound is the common case.
func (r *Resolver) Resolve(ctx context.Context, teamA, teamB, season string) (domain.PlayoffSeriesRecord, error) {
	records, err := r.feed.ListSeries(ctx, season)
	if err != nil {
		return domain.PlayoffSeriesRecord{}, err
	}

	key := PairKey(teamA, teamB)
	for _, record := range records {
		if PairKey(record.TeamIDs[0], record.TeamIDs[1]) == key {
			return record, nil
		}
	}
	return domain.PlayoffSeriesRecord{}, domain.ErrNotFound
}

// GameNumberAndSummary locates a specific game inside a series record by the
// series feed's external game id.
func GameNumberAndSummary(record domain.PlayoffSeriesRecord, externalGameID string) (domain.SeriesContext, error) {
	for _, game := range record.Games {
		if game.ExternalGameID == externalGameID {
			return domain.SeriesContext{
				GameNumber: game.GameNumber,
				Summary:    record.Summary,
			}, nil
		}
	}
	return domain.SeriesContext{}, domain.ErrNotFound
}
