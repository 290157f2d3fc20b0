package espn

import "time"

const (
	providerName       = "espn"
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports"
	defaultLeaguePath  = "football/nfl"
	defaultHTTPTimeout = 10 * time.Second

	// The scoreboard endpoint takes compact dates.
	scoreboardDateLayout = "20060102"
)
