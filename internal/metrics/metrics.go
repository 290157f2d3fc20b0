package metrics

import (
	"sync"
	"time"
)

type feedStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type cacheStats struct {
	hits   int
	misses int
}

// Recorder captures lightweight, in-memory metrics about feed calls and
// resolver outcomes. It is intentionally simple so it can be swapped for a
// real backend later.
type Recorder struct {
	mu            sync.Mutex
	feeds         map[string]*feedStats
	caches        map[string]*cacheStats
	resolutions   map[string]map[string]int
	unknownTokens map[string]int
	otel          *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		feeds:         make(map[string]*feedStats),
		caches:        make(map[string]*cacheStats),
		resolutions:   make(map[string]map[string]int),
		unknownTokens: make(map[string]int),
		otel:          otel,
	}
}

// RecordFeedCall increments counters for a feed call and stores the last observed latency.
func (r *Recorder) RecordFeedCall(feed string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	stats := r.ensureFeed(feed)
	r.mu.Lock()
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordFeedCall(feed, duration, err)
	}
}

// RecordRateLimit tracks that a feed response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(feed string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	stats := r.ensureFeed(feed)
	r.mu.Lock()
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(feed, retryAfter)
	}
}

// RecordResolution counts one resolver run by outcome ("resolved",
// "ambiguous", "not_found", "transient").
func (r *Recorder) RecordResolution(resolver, outcome string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	byOutcome, ok := r.resolutions[resolver]
	if !ok {
		byOutcome = make(map[string]int)
		r.resolutions[resolver] = byOutcome
	}
	byOutcome[outcome]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordResolution(resolver, outcome)
	}
}

// RecordCache counts a cache lookup outcome for a resolver.
func (r *Recorder) RecordCache(resolver string, hit bool) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.caches[resolver]
	if !ok {
		stats = &cacheStats{}
		r.caches[resolver] = stats
	}
	if hit {
		stats.hits++
	} else {
		stats.misses++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordCache(resolver, hit)
	}
}

// RecordUnknownToken counts a provider status token no table recognizes.
func (r *Recorder) RecordUnknownToken(league string) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.unknownTokens[league]++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordUnknownToken(league)
	}
}

// FeedCalls returns the total attempts recorded for a feed.
func (r *Recorder) FeedCalls(feed string) int {
	return r.Snapshot(feed).Calls
}

// FeedErrors returns the total failed attempts recorded for a feed.
func (r *Recorder) FeedErrors(feed string) int {
	return r.Snapshot(feed).Errors
}

// RateLimitHits returns the number of rate limit events seen for a feed.
func (r *Recorder) RateLimitHits(feed string) int {
	return r.Snapshot(feed).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a feed.
func (r *Recorder) LastRetryAfter(feed string) time.Duration {
	return r.Snapshot(feed).LastRetryAfter
}

// LastCallLatency returns the last recorded latency for a feed call.
func (r *Recorder) LastCallLatency(feed string) time.Duration {
	return r.Snapshot(feed).LastCallLatency
}

// Resolutions returns the count recorded for a resolver and outcome.
func (r *Recorder) Resolutions(resolver, outcome string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.resolutions[resolver][outcome]
}

// CacheHits returns hit/miss counts for a resolver's cache.
func (r *Recorder) CacheHits(resolver string) (hits, misses int) {
	if r == nil {
		return 0, 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if stats, ok := r.caches[resolver]; ok {
		return stats.hits, stats.misses
	}
	return 0, 0
}

// UnknownTokens returns the count of unrecognized tokens seen for a league.
func (r *Recorder) UnknownTokens(league string) int {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.unknownTokens[league]
}

// Snapshot is a copy of the current stats for one feed.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(feed string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	stats := r.snapshot(feed)
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

func (r *Recorder) ensureFeed(feed string) *feedStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.feeds[feed]
	if !ok {
		stats = &feedStats{}
		r.feeds[feed] = stats
	}
	return stats
}

func (r *Recorder) snapshot(feed string) feedStats {
	r.mu.Lock()
	defer r.mu.Unlock()

	if stats, ok := r.feeds[feed]; ok && stats != nil {
		return *stats
	}
	return feedStats{}
}
