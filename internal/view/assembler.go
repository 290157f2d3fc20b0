// Package view assembles the merged game view handed to display surfaces.
// Identity resolution and the live game record are required; broadcast,
// possession, and series enrichments are best-effort and degrade to absence.
package view

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gamecast-service/internal/cache"
	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/logging"
	"gamecast-service/internal/match"
	"gamecast-service/internal/metrics"
	"gamecast-service/internal/possession"
	"gamecast-service/internal/series"
	"gamecast-service/internal/status"
	"gamecast-service/internal/store"
	"gamecast-service/internal/timeutil"
)

// Resolution outcomes recorded per assembly.
const (
	outcomeResolved  = "resolved"
	outcomeAmbiguous = "ambiguous"
	outcomeNotFound  = "not_found"
	outcomeTransient = "transient"
)

// Request identifies the game a caller wants a view for. Team refs are
// provider-native strings; Date is the caller's nominal calendar date.
type Request struct {
	HomeRef string
	AwayRef string
	Date    time.Time
	League  domain.League
	Season  string // non-empty enables playoff series enrichment
}

// Config wires an Assembler. Scoreboard, Directory, Machine, and Store are
// required; the enrichment feeds are optional and simply disable their
// view fields when absent.
type Config struct {
	Directory  match.TeamResolver
	Scoreboard feeds.EventFeed
	Machine    *status.Machine
	Store      *store.MemoryStore

	// Detail, when the scoreboard's provider exposes per-event summaries,
	// supplies the per-period score list for finished games.
	Detail feeds.DetailFeed

	BroadcastFeed feeds.BroadcastFeed
	Possession    *possession.Resolver
	Series        *series.Resolver

	CacheSize int
	Logger    *slog.Logger
	Metrics   *metrics.Recorder
}

// Assembler derives a GameView from the live feeds for one request.
type Assembler struct {
	directory  match.TeamResolver
	scoreboard feeds.EventFeed
	detail     feeds.DetailFeed
	machine    *status.Machine
	store      *store.MemoryStore

	broadcastFeed feeds.BroadcastFeed
	possession    *possession.Resolver
	series        *series.Resolver

	broadcastCache  *cache.Cache[[]domain.BroadcastEntry]
	possessionCache *cache.Cache[domain.PossessionState]
	seriesCache     *cache.Cache[domain.PlayoffSeriesRecord]

	logger  *slog.Logger
	metrics *metrics.Recorder
}

// New constructs an Assembler and its enrichment caches.
func New(cfg Config) (*Assembler, error) {
	if cfg.Directory == nil || cfg.Scoreboard == nil || cfg.Machine == nil || cfg.Store == nil {
		return nil, fmt.Errorf("view: directory, scoreboard, machine, and store are required")
	}

	broadcastCache, err := cache.New[[]domain.BroadcastEntry](cfg.CacheSize, cfg.Metrics)
	if err != nil {
		return nil, err
	}
	possessionCache, err := cache.New[domain.PossessionState](cfg.CacheSize, cfg.Metrics)
	if err != nil {
		return nil, err
	}
	seriesCache, err := cache.New[domain.PlayoffSeriesRecord](cfg.CacheSize, cfg.Metrics)
	if err != nil {
		return nil, err
	}

	return &Assembler{
		directory:       cfg.Directory,
		scoreboard:      cfg.Scoreboard,
		detail:          cfg.Detail,
		machine:         cfg.Machine,
		store:           cfg.Store,
		broadcastFeed:   cfg.BroadcastFeed,
		possession:      cfg.Possession,
		series:          cfg.Series,
		broadcastCache:  broadcastCache,
		possessionCache: possessionCache,
		seriesCache:     seriesCache,
		logger:          cfg.Logger,
		metrics:         cfg.Metrics,
	}, nil
}

// Assemble resolves both team refs, locates the live event within the date
// window, merges it into the canonical record, and attaches whatever
// enrichments succeed. Identity or event failures are fatal for the call;
// enrichment failures only log.
func (a *Assembler) Assemble(ctx context.Context, req Request) (domain.GameView, error) {
	home, err := a.directory.Resolve(req.HomeRef)
	if err != nil {
		a.recordOutcome(err)
		return domain.GameView{}, err
	}
	away, err := a.directory.Resolve(req.AwayRef)
	if err != nil {
		a.recordOutcome(err)
		return domain.GameView{}, err
	}

	start := time.Now()
	event, err := match.FindMatchingEvent(ctx, a.scoreboard, a.directory, req.HomeRef, req.AwayRef, req.Date)
	a.metrics.RecordFeedCall(a.scoreboard.Name(), time.Since(start), err)
	if err != nil {
		a.recordOutcome(err)
		return domain.GameView{}, err
	}

	game := a.buildGame(req, event, home.ID, away.ID)
	a.attachPeriodScores(ctx, &game, event.ExternalID)
	game = a.mergeIntoStore(game)

	view := a.renderView(game)
	a.enrich(ctx, req, &view, game, event.ExternalID)

	a.metrics.RecordResolution("gameview", outcomeResolved)
	return view, nil
}

// buildGame reduces a provider event to the canonical record, reorienting
// scores when the provider disagrees about which side is home.
func (a *Assembler) buildGame(req Request, event feeds.Event, homeID, awayID string) domain.Game {
	eventHome, _ := event.Side(true)
	eventAway, _ := event.Side(false)

	homeScore, awayScore := eventHome.Score, eventAway.Score
	if resolved, err := a.directory.Resolve(competitorRef(eventHome)); err == nil && resolved.ID == awayID {
		homeScore, awayScore = awayScore, homeScore
	}

	scheduled := event.Date
	if scheduled.IsZero() {
		scheduled = req.Date
	}

	return domain.Game{
		ID:            a.scoreboard.Name() + ":" + event.ExternalID,
		HomeTeamID:    homeID,
		AwayTeamID:    awayID,
		ScheduledTime: scheduled,
		League:        req.League,
		Status:        a.machine.Map(req.League, event.RawStatus),
		Period:        event.RawPeriod,
		Clock:         event.RawClock,
		HomeScore:     homeScore,
		AwayScore:     awayScore,
	}
}

// attachPeriodScores fetches the event summary for a finished game and copies
// its per-period score list onto the record. The list, not the raw period
// counter, decides how many periods a terminal game is labeled with; a fetch
// failure only means falling back to the counter, so it is not fatal.
func (a *Assembler) attachPeriodScores(ctx context.Context, game *domain.Game, externalID string) {
	if a.detail == nil || !game.Status.Terminal() {
		return
	}

	start := time.Now()
	detail, err := a.detail.EventDetail(ctx, externalID)
	a.metrics.RecordFeedCall(a.scoreboard.Name(), time.Since(start), err)
	if err != nil {
		logging.Warn(a.logger, "event detail unavailable, labeling from raw period",
			slog.String(logging.FieldFeed, a.scoreboard.Name()),
			slog.String("external_id", externalID),
			slog.Any("error", err),
		)
		return
	}

	if len(detail.PeriodScores) > 0 {
		game.PeriodScores = detail.PeriodScores
	}
}

// mergeIntoStore applies the fresh observation to any existing record. A
// terminal record wins over a stale non-terminal poll; the stored record is
// always what gets rendered.
func (a *Assembler) mergeIntoStore(game domain.Game) domain.Game {
	existing, ok := a.store.GetGame(game.ID)
	if !ok {
		a.store.Upsert(game)
		return game
	}

	applied := match.ApplyUpdate(&existing, match.Update{
		Status:       game.Status,
		Period:       game.Period,
		Clock:        game.Clock,
		HomeScore:    game.HomeScore,
		AwayScore:    game.AwayScore,
		PeriodScores: game.PeriodScores,
	})
	if !applied {
		logging.Info(a.logger, "stale non-terminal update ignored",
			slog.String("game_id", game.ID),
		)
	}
	a.store.Upsert(existing)
	return existing
}

func (a *Assembler) renderView(game domain.Game) domain.GameView {
	eval := status.Evaluate(game.HomeScore, game.AwayScore, game.Status)
	periods := status.EffectivePeriods(game.Period, game.PeriodScores, game.Status)

	view := domain.GameView{
		HomeTeamID: game.HomeTeamID,
		AwayTeamID: game.AwayTeamID,
		Status:     game.Status,
		Clock:      game.Clock,
		HomeScore:  game.HomeScore,
		AwayScore:  game.AwayScore,
		Winner:     string(eval.Winner),
	}

	switch game.Status {
	case domain.StatusInProgress, domain.StatusHalftime, domain.StatusFinal:
		view.PeriodLabel = status.Label(periods)
	}
	return view
}

// enrich attaches broadcast, possession, and series context. Each enrichment
// fails independently: a dead listing service must not take the score down
// with it.
func (a *Assembler) enrich(ctx context.Context, req Request, view *domain.GameView, game domain.Game, externalID string) {
	date := timeutil.FormatDate(game.ScheduledTime)

	if a.broadcastFeed != nil {
		key := cache.Key{Resolver: "broadcast", Provider: "broadcast", Date: date}
		entries, err := a.broadcastCache.Do(key, func() ([]domain.BroadcastEntry, error) {
			return a.broadcastFeed.ListBroadcasts(ctx, game.ScheduledTime)
		})
		if err != nil {
			logging.Warn(a.logger, "broadcast enrichment unavailable",
				slog.String(logging.FieldResolver, "broadcast"),
				slog.String(logging.FieldDate, date),
				slog.Any("error", err),
			)
		} else {
			view.BroadcastNetworks = match.MatchBroadcasts(game, entries, a.directory)
		}
	}

	if a.possession != nil && game.League == domain.LeagueFootball && game.Status == domain.StatusInProgress {
		key := cache.Key{
			Resolver: "possession",
			HomeID:   game.HomeTeamID,
			AwayID:   game.AwayTeamID,
			Date:     date,
		}
		state, err := a.possessionCache.Do(key, func() (domain.PossessionState, error) {
			return a.possession.Resolve(ctx, game.HomeTeamID, game.AwayTeamID, game.ScheduledTime)
		})
		if err != nil {
			logging.Warn(a.logger, "possession enrichment unavailable",
				slog.String(logging.FieldResolver, "possession"),
				slog.Any("error", err),
			)
		} else {
			view.PossessingTeamID = state.TeamID
		}
	}

	if a.series != nil && req.Season != "" {
		pair := series.PairKey(game.HomeTeamID, game.AwayTeamID)
		key := cache.Key{
			Resolver: "series",
			HomeID:   pair[0],
			AwayID:   pair[1],
			Date:     req.Season,
		}
		record, err := a.seriesCache.Do(key, func() (domain.PlayoffSeriesRecord, error) {
			return a.series.Resolve(ctx, game.HomeTeamID, game.AwayTeamID, req.Season)
		})
		switch {
		case domain.IsNotFound(err):
			// Most games have no playoff context.
		case err != nil:
			logging.Warn(a.logger, "series enrichment unavailable",
				slog.String(logging.FieldResolver, "series"),
				slog.Any("error", err),
			)
		default:
			if sc, scErr := series.GameNumberAndSummary(record, externalID); scErr == nil {
				view.Series = &sc
			}
		}
	}
}

func (a *Assembler) recordOutcome(err error) {
	switch {
	case isAmbiguous(err):
		a.metrics.RecordResolution("gameview", outcomeAmbiguous)
	case domain.IsNotFound(err):
		a.metrics.RecordResolution("gameview", outcomeNotFound)
	case feeds.IsTransient(err):
		a.metrics.RecordResolution("gameview", outcomeTransient)
	}
}

func isAmbiguous(err error) bool {
	_, ok := domain.AsAmbiguousReferenceError(err)
	return ok
}

func competitorRef(c feeds.Competitor) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Code
}
