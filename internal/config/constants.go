package config

import "time"

const (
	envPort            = "PORT"
	envLogLevel        = "LOG_LEVEL"
	envLogFormat       = "LOG_FORMAT"
	envSeason          = "SEASON"
	envCacheSize       = "CACHE_SIZE"
	envPollInterval    = "POLL_INTERVAL"
	envFeedRateLimit   = "FEED_RATE_LIMIT"
	envTeamsFile       = "TEAMS_FILE"
	envPossessionFile  = "POSSESSION_MAP_FILE"
	envScoreboardMode  = "SCOREBOARD_FEED"
	envMetricsPort     = "METRICS_PORT"
	envMetricsOn       = "METRICS_ENABLED"
	envOtelEndpoint    = "OTEL_EXPORTER_OTLP_ENDPOINT"
	envOtelService     = "OTEL_SERVICE_NAME"
	envOtelInsecure    = "OTEL_EXPORTER_OTLP_INSECURE"

	defaultPort           = "4000"
	defaultLogLevel       = "info"
	defaultLogFormat      = "json"
	defaultScoreboardMode = "fixture"
	defaultCacheSize      = 256
	defaultMetricsPort    = "9090"
	defaultPollInterval   = 30 * Duration(time.Second)
	// Conservative default spacing between feed calls to respect upstream quotas.
	defaultFeedRateLimit = 2 * Duration(time.Second)
)
