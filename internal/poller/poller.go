// Package poller keeps the canonical game store warm by refreshing it from
// the scoreboard feed on an interval, independently of view requests.
package poller

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/logging"
	"gamecast-service/internal/match"
	"gamecast-service/internal/metrics"
	"gamecast-service/internal/status"
	"gamecast-service/internal/store"
)

const defaultInterval = 30 * time.Second

// Poller fetches today's events on an interval and merges them into the game
// store. The store's terminal guard applies, so a stale poll never regresses
// a finished game.
type Poller struct {
	scoreboard feeds.EventFeed
	directory  match.TeamResolver
	machine    *status.Machine
	store      *store.MemoryStore
	league     domain.League
	logger     *slog.Logger
	metrics    *metrics.Recorder
	interval   time.Duration
	now        func() time.Time

	ticker   *time.Ticker
	done     chan struct{}
	stopOnce sync.Once
	startMu  sync.Mutex
	started  bool

	statusMu sync.RWMutex
	status   Status
}

// Status describes the recent health of the refresh loop.
type Status struct {
	ConsecutiveFailures int
	LastError           string
	LastAttempt         time.Time
	LastSuccess         time.Time
}

// IsReady reports whether the poller has had a recent success and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < 3
}

// New constructs a Poller with sane defaults.
func New(scoreboard feeds.EventFeed, directory match.TeamResolver, machine *status.Machine, st *store.MemoryStore, league domain.League, logger *slog.Logger, recorder *metrics.Recorder, interval time.Duration) *Poller {
	if interval <= 0 {
		interval = defaultInterval
	}
	return &Poller{
		scoreboard: scoreboard,
		directory:  directory,
		machine:    machine,
		store:      st,
		league:     league,
		logger:     logger,
		metrics:    recorder,
		interval:   interval,
		now:        time.Now,
		done:       make(chan struct{}),
	}
}

// Start begins refreshing until the context is cancelled or Stop is called.
func (p *Poller) Start(ctx context.Context) {
	p.startMu.Lock()
	if p.started {
		p.startMu.Unlock()
		return
	}
	p.started = true
	p.startMu.Unlock()

	p.ticker = time.NewTicker(p.interval)

	go func() {
		logging.Info(p.logger, "poller started", slog.Int64(logging.FieldDurationMS, p.interval.Milliseconds()))
		// Initial refresh to warm the store on boot.
		p.refreshOnce(ctx)

		for {
			select {
			case <-ctx.Done():
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.done:
				p.stopTicker()
				logging.Info(p.logger, "poller stopped")
				return
			case <-p.ticker.C:
				p.refreshOnce(ctx)
			}
		}
	}()
}

// Stop halts the refresh loop.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.done)
		p.stopTicker()
	})
}

func (p *Poller) refreshOnce(ctx context.Context) {
	start := time.Now()
	p.recordAttempt(start)

	events, err := p.scoreboard.ListEvents(ctx, p.now().UTC())
	p.metrics.RecordFeedCall(p.scoreboard.Name(), time.Since(start), err)
	if err != nil {
		logging.Error(p.logger, "poller refresh failed", err,
			slog.String(logging.FieldFeed, p.scoreboard.Name()),
			slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
		)
		p.recordFailure(err, start)
		return
	}

	stored := 0
	for _, event := range events {
		game, ok := p.buildGame(event)
		if !ok {
			continue
		}
		if p.store.Upsert(game) {
			stored++
		}
	}

	p.recordSuccess(start)
	logging.Info(p.logger, "poller refreshed games",
		slog.Int(logging.FieldCount, stored),
		slog.Int64(logging.FieldDurationMS, time.Since(start).Milliseconds()),
	)
}

// buildGame reduces a provider event to a canonical record. Events whose
// competitors do not resolve in the directory are skipped rather than stored
// under a provider-native identity.
func (p *Poller) buildGame(event feeds.Event) (domain.Game, bool) {
	eventHome, okHome := event.Side(true)
	eventAway, okAway := event.Side(false)
	if !okHome || !okAway {
		return domain.Game{}, false
	}

	home, err := p.directory.Resolve(competitorRef(eventHome))
	if err != nil {
		return domain.Game{}, false
	}
	away, err := p.directory.Resolve(competitorRef(eventAway))
	if err != nil {
		return domain.Game{}, false
	}

	return domain.Game{
		ID:            p.scoreboard.Name() + ":" + event.ExternalID,
		HomeTeamID:    home.ID,
		AwayTeamID:    away.ID,
		ScheduledTime: event.Date,
		League:        p.league,
		Status:        p.machine.Map(p.league, event.RawStatus),
		Period:        event.RawPeriod,
		Clock:         event.RawClock,
		HomeScore:     eventHome.Score,
		AwayScore:     eventAway.Score,
	}, true
}

func competitorRef(c feeds.Competitor) string {
	if c.Name != "" {
		return c.Name
	}
	return c.Code
}

func (p *Poller) stopTicker() {
	if p.ticker != nil {
		p.ticker.Stop()
	}
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

// Status returns a snapshot of the poller's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}
