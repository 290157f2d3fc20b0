package metrics

// Common metric attribute keys to keep telemetry consistent/searchable.
const (
	AttrMethod   = "method"
	AttrPath     = "path"
	AttrStatus   = "status"
	AttrFeed     = "feed"
	AttrResolver = "resolver"
	AttrOutcome  = "outcome"
	AttrLeague   = "league"
)
