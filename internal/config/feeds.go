package config

const (
	envSchedBaseURL = "SCHEDSTORE_BASE_URL"
	envSchedAPIKey  = "SCHEDSTORE_API_KEY"
	envSchedPages   = "SCHEDSTORE_MAX_PAGES"

	envPossessionBaseURL = "POSSESSION_FEED_BASE_URL"
	envPossessionLeague  = "POSSESSION_FEED_LEAGUE_PATH"

	envBroadcastBaseURL = "BROADCAST_FEED_BASE_URL"
	envSeriesBaseURL    = "SERIES_FEED_BASE_URL"

	defaultSchedBaseURL      = "https://api.balldontlie.io/v1"
	defaultPossessionBaseURL = "https://site.api.espn.com/apis/site/v2/sports"
	defaultPossessionLeague  = "football/nfl"
)

// ScheduleStoreConfig controls how we talk to the schedule store API.
type ScheduleStoreConfig struct {
	BaseURL  string
	APIKey   string
	MaxPages int
}

func loadScheduleStore() ScheduleStoreConfig {
	return ScheduleStoreConfig{
		BaseURL:  envOrDefault(envSchedBaseURL, defaultSchedBaseURL),
		APIKey:   envOrDefault(envSchedAPIKey, ""),
		MaxPages: intEnvOrDefault(envSchedPages, 0),
	}
}

// PossessionFeedConfig controls how we talk to the live scoreboard that
// carries the possession marker.
type PossessionFeedConfig struct {
	BaseURL    string
	LeaguePath string
}

func loadPossessionFeed() PossessionFeedConfig {
	return PossessionFeedConfig{
		BaseURL:    envOrDefault(envPossessionBaseURL, defaultPossessionBaseURL),
		LeaguePath: envOrDefault(envPossessionLeague, defaultPossessionLeague),
	}
}

// BroadcastFeedConfig controls how we talk to the broadcast listing API.
// An empty base URL disables the enrichment.
type BroadcastFeedConfig struct {
	BaseURL string
}

func loadBroadcastFeed() BroadcastFeedConfig {
	return BroadcastFeedConfig{
		BaseURL: envOrDefault(envBroadcastBaseURL, ""),
	}
}

// SeriesFeedConfig controls how we talk to the playoff series API.
// An empty base URL disables the enrichment.
type SeriesFeedConfig struct {
	BaseURL string
}

func loadSeriesFeed() SeriesFeedConfig {
	return SeriesFeedConfig{
		BaseURL: envOrDefault(envSeriesBaseURL, ""),
	}
}
