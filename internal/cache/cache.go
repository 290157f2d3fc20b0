package cache

import (
	"fmt"
	"strings"

	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/singleflight"

	"gamecast-service/internal/feeds"
)

const defaultSize = 256

// Key identifies one resolution request. Every resolver call with the same
// inputs shares a cache slot.
type Key struct {
	Resolver string
	Provider string
	HomeID   string
	AwayID   string
	Date     string
}

func (k Key) String() string {
	return strings.Join([]string{k.Resolver, k.Provider, k.HomeID, k.AwayID, k.Date}, "|")
}

// Metrics receives cache outcome counts.
type Metrics interface {
	RecordCache(resolver string, hit bool)
}

// Cache is a bounded, request-keyed, last-known-good cache. It holds only
// successfully resolved values: on a transient feed failure the previous
// value for the same key is served when present. There is no TTL; a fresh
// resolution simply overwrites the slot. Size bounds come from the LRU so a
// long-lived process cannot grow it without bound.
type Cache[V any] struct {
	entries *lru.Cache[Key, V]
	group   singleflight.Group
	metrics Metrics
}

// New builds a cache holding at most size entries (defaultSize when <= 0).
func New[V any](size int, metrics Metrics) (*Cache[V], error) {
	if size <= 0 {
		size = defaultSize
	}
	entries, err := lru.New[Key, V](size)
	if err != nil {
		return nil, fmt.Errorf("cache: %w", err)
	}
	return &Cache[V]{entries: entries, metrics: metrics}, nil
}

// Do resolves the value for key, coalescing duplicate concurrent requests
// into a single fetch. Success overwrites the cache entry. A transient
// failure falls back to the last cached value for the key; every other error
// (including expected absence) passes through untouched.
func (c *Cache[V]) Do(key Key, fetch func() (V, error)) (V, error) {
	result, err, _ := c.group.Do(key.String(), func() (any, error) {
		value, fetchErr := fetch()
		if fetchErr == nil {
			c.entries.Add(key, value)
			c.record(key.Resolver, false)
			return value, nil
		}

		if feeds.IsTransient(fetchErr) {
			if cached, ok := c.entries.Get(key); ok {
				c.record(key.Resolver, true)
				return cached, nil
			}
		}
		return nil, fetchErr
	})
	if err != nil {
		var zero V
		return zero, err
	}
	return result.(V), nil
}

// Peek returns the cached value without touching recency or fetching.
func (c *Cache[V]) Peek(key Key) (V, bool) {
	return c.entries.Peek(key)
}

// Len reports how many entries the cache currently holds.
func (c *Cache[V]) Len() int {
	return c.entries.Len()
}

func (c *Cache[V]) record(resolver string, hit bool) {
	if c.metrics != nil {
		c.metrics.RecordCache(resolver, hit)
	}
}
