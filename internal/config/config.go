package config

// Config holds runtime configuration for the server.
type Config struct {
	Port          string
	LogLevel      string
	LogFormat     string
	Season        string
	CacheSize     int
	PollInterval  Duration
	FeedRateLimit Duration

	// ScoreboardFeed selects the primary event feed: "schedstore" or "fixture".
	ScoreboardFeed string

	// TeamsFile and PossessionMapFile point at optional YAML tables that
	// replace the built-in defaults.
	TeamsFile         string
	PossessionMapFile string

	ScheduleStore ScheduleStoreConfig
	Possession    PossessionFeedConfig
	Broadcast     BroadcastFeedConfig
	Series        SeriesFeedConfig
	Metrics       MetricsConfig
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		Port:              envOrDefault(envPort, defaultPort),
		LogLevel:          envOrDefault(envLogLevel, defaultLogLevel),
		LogFormat:         envOrDefault(envLogFormat, defaultLogFormat),
		Season:            envOrDefault(envSeason, ""),
		CacheSize:         intEnvOrDefault(envCacheSize, defaultCacheSize),
		PollInterval:      durationEnvOrDefault(envPollInterval, defaultPollInterval),
		FeedRateLimit:     durationEnvOrDefault(envFeedRateLimit, defaultFeedRateLimit),
		ScoreboardFeed:    envOrDefault(envScoreboardMode, defaultScoreboardMode),
		TeamsFile:         envOrDefault(envTeamsFile, ""),
		PossessionMapFile: envOrDefault(envPossessionFile, ""),
		ScheduleStore:     loadScheduleStore(),
		Possession:        loadPossessionFeed(),
		Broadcast:         loadBroadcastFeed(),
		Series:            loadSeriesFeed(),
		Metrics:           loadMetrics(),
	}
}
