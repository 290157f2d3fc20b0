package server

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"gamecast-service/internal/config"
	"gamecast-service/internal/domain"
	"gamecast-service/internal/feeds"
	"gamecast-service/internal/feeds/broadcast"
	"gamecast-service/internal/feeds/espn"
	"gamecast-service/internal/feeds/fixture"
	"gamecast-service/internal/feeds/schedstore"
	"gamecast-service/internal/feeds/seriesfeed"
	httpserver "gamecast-service/internal/http"
	"gamecast-service/internal/logging"
	"gamecast-service/internal/metrics"
	"gamecast-service/internal/poller"
	"gamecast-service/internal/possession"
	"gamecast-service/internal/series"
	"gamecast-service/internal/status"
	"gamecast-service/internal/store"
	"gamecast-service/internal/teams"
	"gamecast-service/internal/view"
)

var metricsSetup = metrics.Setup

type Server struct {
	cfg           config.Config
	logger        *slog.Logger
	metrics       *metrics.Recorder
	store         *store.MemoryStore
	directory     *teams.Directory
	poller        *poller.Poller
	httpServer    httpServer
	metricsServer httpServer
	metricsStop   func(context.Context) error
	feedClosers   []func()
}

// New wires the full service: metrics, the team directory, the feed stack,
// the view assembler, and the HTTP surface.
func New(cfg config.Config, logger *slog.Logger) (*Server, error) {
	recorder, metricsSrv, metricsShutdown := buildMetrics(cfg, logger)

	directory, err := buildDirectory(cfg)
	if err != nil {
		return nil, err
	}

	memoryStore := store.NewMemoryStore()
	machine := status.NewDefaultMachine(logger, recorder)

	scoreboard, detail, closers := buildScoreboard(cfg, logger)

	possessionResolver, err := buildPossession(cfg, logger)
	if err != nil {
		return nil, err
	}

	var broadcastFeed feeds.BroadcastFeed
	if cfg.Broadcast.BaseURL != "" {
		broadcastFeed = broadcast.NewClient(broadcast.Config{BaseURL: cfg.Broadcast.BaseURL})
	}

	var seriesResolver *series.Resolver
	if cfg.Series.BaseURL != "" {
		seriesClient := seriesfeed.NewClient(seriesfeed.Config{BaseURL: cfg.Series.BaseURL})
		seriesResolver = series.NewResolver(seriesClient, logger)
	}

	assembler, err := view.New(view.Config{
		Directory:     directory,
		Scoreboard:    scoreboard,
		Detail:        detail,
		Machine:       machine,
		Store:         memoryStore,
		BroadcastFeed: broadcastFeed,
		Possession:    possessionResolver,
		Series:        seriesResolver,
		CacheSize:     cfg.CacheSize,
		Logger:        logger,
		Metrics:       recorder,
	})
	if err != nil {
		return nil, err
	}

	gamePoller := poller.New(scoreboard, directory, machine, memoryStore, domain.LeagueBasketball, logger, recorder, cfg.PollInterval)

	httpSrv := buildHTTPServer(cfg, assembler, memoryStore, directory, gamePoller, logger, recorder)

	return &Server{
		cfg:           cfg,
		logger:        logger,
		metrics:       recorder,
		store:         memoryStore,
		directory:     directory,
		poller:        gamePoller,
		httpServer:    httpSrv,
		metricsServer: metricsSrv,
		metricsStop:   metricsShutdown,
		feedClosers:   closers,
	}, nil
}

func buildDirectory(cfg config.Config) (*teams.Directory, error) {
	if cfg.TeamsFile == "" {
		return teams.DefaultDirectory(), nil
	}
	loaded, err := config.LoadTeams(cfg.TeamsFile)
	if err != nil {
		return nil, err
	}
	return teams.NewDirectory(loaded), nil
}

// buildScoreboard assembles the primary event feed with retry and rate-limit
// decorators. The fixture feed serves local development without credentials
// and doubles as its own detail feed; the schedule store exposes no per-event
// summary, so detail is nil there and period labels fall back to the raw
// counter.
func buildScoreboard(cfg config.Config, logger *slog.Logger) (feeds.EventFeed, feeds.DetailFeed, []func()) {
	if cfg.ScoreboardFeed != "schedstore" {
		scoreboard := seededFixture()
		return scoreboard, scoreboard, nil
	}

	client := schedstore.NewClient(schedstore.Config{
		BaseURL:  cfg.ScheduleStore.BaseURL,
		APIKey:   cfg.ScheduleStore.APIKey,
		MaxPages: cfg.ScheduleStore.MaxPages,
	})
	retried := feeds.NewRetryingFeed(client, logger, 0, 0)
	limited := feeds.NewRateLimitedFeed(retried, cfg.FeedRateLimit, logger)

	var closers []func()
	if closer, ok := limited.(interface{ Close() }); ok {
		closers = append(closers, closer.Close)
	}
	return limited, nil, closers
}

func buildPossession(cfg config.Config, logger *slog.Logger) (*possession.Resolver, error) {
	pairs := possession.DefaultFootballPairs()
	if cfg.PossessionMapFile != "" {
		loaded, err := config.LoadPossessionPairs(cfg.PossessionMapFile)
		if err != nil {
			return nil, err
		}
		pairs = loaded
	}

	ids, err := possession.NewIDMap(pairs)
	if err != nil {
		return nil, err
	}

	client := espn.NewClient(espn.Config{
		BaseURL:    cfg.Possession.BaseURL,
		LeaguePath: cfg.Possession.LeaguePath,
	})
	return possession.NewResolver(client, ids, logger), nil
}

// seededFixture returns an in-memory scoreboard preloaded with one game for
// today, so a credential-less process still answers view requests.
func seededFixture() *fixture.Scoreboard {
	scoreboard := fixture.NewScoreboard("fixture")
	scoreboard.AddEvent(feeds.Event{
		ExternalID: "demo-1",
		Date:       time.Now(),
		RawStatus:  "In Progress",
		RawPeriod:  2,
		RawClock:   "5:42",
		Competitors: []feeds.Competitor{
			{ExternalID: "2", Name: "Boston Celtics", Code: "BOS", Home: true, Score: 54},
			{ExternalID: "14", Name: "Los Angeles Lakers", Code: "LAL", Home: false, Score: 51},
		},
	})
	return scoreboard
}

func buildHTTPServer(cfg config.Config, assembler *view.Assembler, memoryStore *store.MemoryStore, directory *teams.Directory, gamePoller *poller.Poller, logger *slog.Logger, recorder *metrics.Recorder) httpServer {
	handler := httpserver.NewHandler(assembler, memoryStore, directory, cfg.Season, logger)
	handler.SetReadiness(func() bool { return gamePoller.Status().IsReady() })
	router := httpserver.NewRouter(handler)

	if logger == nil {
		logger = logging.NewLogger(logging.Config{})
	}
	wrapped := httpserver.LoggingMiddleware(logger, httpserver.MetricsMiddleware(recorder, router))

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      wrapped,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		IdleTimeout:  idleTimeout,
	}

	return netHTTPServer{srv: srv}
}

// Run starts the HTTP server, then waits for context cancellation to shut
// down gracefully.
func (s *Server) Run(ctx context.Context, stop context.CancelFunc) {
	s.startMetrics()
	s.poller.Start(ctx)
	s.startServer(stop)

	<-ctx.Done()
	if s.logger != nil {
		s.logger.Info("shutdown signal received")
	}

	s.gracefulShutdown()
}

func (s *Server) startServer(stop context.CancelFunc) {
	if s.logger != nil {
		s.logger.Info("http server starting", slog.String("addr", s.httpServer.Addr()))
	}
	launchServer("http", s.httpServer, s.logger, func(err error) {
		if stop != nil {
			stop()
		}
	})
}

func (s *Server) startMetrics() {
	if s.metricsServer == nil {
		return
	}
	if s.logger != nil {
		s.logger.Info("metrics server starting", slog.String("addr", s.metricsServer.Addr()))
	}
	launchServer("metrics", s.metricsServer, s.logger, nil)
}

func (s *Server) gracefulShutdown() {
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	s.poller.Stop()

	if s.metricsStop != nil {
		if err := s.metricsStop(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics shutdown failed", "error", err)
		}
	}

	if s.metricsServer != nil {
		if err := s.metricsServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
			s.logger.Warn("metrics server shutdown failed", "error", err)
		}
	}

	if err := s.httpServer.Shutdown(shutdownCtx); err != nil && s.logger != nil {
		s.logger.Error("graceful shutdown failed", "error", err)
	}

	// Stop rate-limited feed tickers.
	for _, closeFeed := range s.feedClosers {
		closeFeed()
	}

	if s.logger != nil {
		s.logger.Info("shutdown complete")
	}
}

func buildMetrics(cfg config.Config, logger *slog.Logger) (*metrics.Recorder, httpServer, func(context.Context) error) {
	recCfg := metrics.TelemetryConfig{
		Enabled:      cfg.Metrics.Enabled,
		Port:         cfg.Metrics.Port,
		ServiceName:  cfg.Metrics.ServiceName,
		OtlpEndpoint: cfg.Metrics.OtlpEndpoint,
		OtlpInsecure: cfg.Metrics.OtlpInsecure,
	}

	rec, handler, shutdown, err := metricsSetup(context.Background(), recCfg)
	if err != nil {
		if logger != nil {
			logger.Warn("metrics setup failed, continuing without telemetry", "error", err)
		}
		return metrics.NewRecorder(), nil, nil
	}

	var metricsSrv httpServer
	if handler != nil && recCfg.Enabled {
		metricsSrv = netHTTPServer{
			srv: &http.Server{
				Addr:    ":" + recCfg.Port,
				Handler: handler,
			},
		}
	}

	return rec, metricsSrv, shutdown
}

func launchServer(name string, srv httpServer, logger *slog.Logger, onError func(error)) {
	go func() {
		if logger != nil {
			logger.Info("starting "+name+" server", slog.String("addr", srv.Addr()))
		}
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			if logger != nil {
				logger.Warn(name+" server failed", "error", err)
			}
			if onError != nil {
				onError(err)
			}
		}
	}()
}

// Handler exposes the HTTP handler (useful for tests).
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler()
}

// Store exposes the canonical game store (useful for tests).
func (s *Server) Store() *store.MemoryStore {
	return s.store
}
