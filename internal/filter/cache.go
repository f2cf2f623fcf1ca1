package filter

import (
	"context"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v3"

	"github.com/gruntwork-io/listfilter/internal/errors"
	"github.com/gruntwork-io/listfilter/pkg/log"
	"github.com/gruntwork-io/listfilter/telemetry"
)

const (
	DefaultCacheMaxEntries = 1024

	TelemetryOpFilterCacheHit  = "filter_cache_hit"
	TelemetryOpFilterCacheMiss = "filter_cache_miss"
)

// Cache memoizes successful parses by query for a fixed config. Filters are immutable, so a
// cached filter is returned to every caller as is. Errors are never cached.
type Cache struct {
	config     *Config
	entries    *xsync.MapOf[string, *Filter]
	hits       atomic.Int64
	misses     atomic.Int64
	maxEntries int
}

// CacheStats is a snapshot of cache usage.
type CacheStats struct {
	Hits    int64
	Misses  int64
	Entries int
}

// NewCache creates a cache holding at most maxEntries filters. Zero or negative means
// DefaultCacheMaxEntries. Once full, parsed filters are returned but not stored.
func NewCache(cfg *Config, maxEntries int) *Cache {
	if maxEntries <= 0 {
		maxEntries = DefaultCacheMaxEntries
	}

	return &Cache{
		config:     cfg,
		entries:    xsync.NewMapOf[string, *Filter](),
		maxEntries: maxEntries,
	}
}

// Parse returns the cached filter for the query, parsing and storing it on a miss.
func (c *Cache) Parse(ctx context.Context, query string) (*Filter, error) {
	tlm := telemetry.TelemeterFromContext(ctx)

	if filter, ok := c.entries.Load(query); ok {
		c.hits.Add(1)
		tlm.Count(ctx, TelemetryOpFilterCacheHit, 1)

		return filter, nil
	}

	c.misses.Add(1)
	tlm.Count(ctx, TelemetryOpFilterCacheMiss, 1)

	l := log.LoggerFromContext(ctx).WithField(log.FieldKeyQuery, query)
	l.Debugf("Filter cache miss")

	filter, err := ParseContext(ctx, query, c.config)
	if err != nil {
		l.Debugf("Filter rejected, not caching: %v", err)

		return nil, err
	}

	if c.entries.Size() >= c.maxEntries {
		l.Debugf("Filter cache is full (%d entries), not caching", c.maxEntries)

		return filter, nil
	}

	// Concurrent misses for the same query all return the first stored filter.
	filter, _ = c.entries.LoadOrStore(query, filter)

	return filter, nil
}

// ParseAll parses every query through the cache, so a query repeated in the batch is parsed
// once. Failures are collected as in the package level ParseAll.
func (c *Cache) ParseAll(ctx context.Context, queries []string) (Filters, error) {
	if len(queries) == 0 {
		return Filters{}, nil
	}

	if err := c.config.Validate(); err != nil {
		return nil, errors.New(err)
	}

	var filters Filters

	err := TraceFilterParseAll(ctx, len(queries), func(ctx context.Context) error {
		var err error

		filters, err = parseAll(queries, func(query string) (*Filter, error) {
			return c.Parse(ctx, query)
		})

		return err
	})

	return filters, err
}

// Len returns the number of cached filters.
func (c *Cache) Len() int {
	return c.entries.Size()
}

// Clear removes every cached filter.
func (c *Cache) Clear() {
	c.entries.Clear()
}

// Stats returns the hit and miss counters and the number of entries.
func (c *Cache) Stats() CacheStats {
	return CacheStats{
		Hits:    c.hits.Load(),
		Misses:  c.misses.Load(),
		Entries: c.entries.Size(),
	}
}
