// Package cache holds time-boxed in-process projections of the record
// store. The store stays the single source of truth; an entry here is
// disposable and rebuilt by a full refetch.
package cache

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

const (
	// DefaultRefreshInterval is how long fetched data counts as fresh.
	DefaultRefreshInterval = 15 * time.Minute
	// DefaultInactivityTimeout evicts a fresh but idle entry, bounding
	// memory and guaranteeing eventual re-sync under light traffic.
	DefaultInactivityTimeout = 30 * time.Minute
)

// Fetch pulls the full collection from the record store.
type Fetch[T any] func(ctx context.Context) ([]T, error)

type entry[T any] struct {
	records      []T
	lastFetched  time.Time
	lastAccessed time.Time
}

// Collection caches one tracked collection. Concurrent refetches are
// de-duplicated through a singleflight group keyed by the collection name.
type Collection[T any] struct {
	name              string
	fetch             Fetch[T]
	refreshInterval   time.Duration
	inactivityTimeout time.Duration
	now               func() time.Time

	mu    sync.Mutex
	entry *entry[T]
	group singleflight.Group
}

func New[T any](name string, fetch Fetch[T], refreshInterval, inactivityTimeout time.Duration) *Collection[T] {
	return &Collection[T]{
		name:              name,
		fetch:             fetch,
		refreshInterval:   refreshInterval,
		inactivityTimeout: inactivityTimeout,
		now:               time.Now,
	}
}

// Get serves the cached snapshot while it is fresh and recently accessed,
// otherwise refetches. On refetch failure a previous entry, if any, is
// served as a degraded fallback; the error only propagates on a cold cache.
func (c *Collection[T]) Get(ctx context.Context) ([]T, error) {
	now := c.now()

	c.mu.Lock()
	if e := c.entry; e != nil &&
		now.Sub(e.lastFetched) < c.refreshInterval &&
		now.Sub(e.lastAccessed) < c.inactivityTimeout {
		e.lastAccessed = now
		records := e.records
		c.mu.Unlock()
		return records, nil
	}
	stale := c.entry
	c.mu.Unlock()

	v, err, _ := c.group.Do(c.name, func() (interface{}, error) {
		records, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		fetched := c.now()
		c.entry = &entry[T]{records: records, lastFetched: fetched, lastAccessed: fetched}
		c.mu.Unlock()
		return records, nil
	})
	if err != nil {
		if stale != nil {
			zap.L().Warn("refetch failed, serving stale cache entry",
				zap.String("collection", c.name),
				zap.Time("lastFetched", stale.lastFetched),
				zap.Error(err))
			return stale.records, nil
		}
		zap.L().Error("refetch failed with cold cache", zap.String("collection", c.name), zap.Error(err))
		return nil, err
	}
	return v.([]T), nil
}

// Invalidate unconditionally discards the entry. Called after every
// successful write so the next read sees the store's current state.
func (c *Collection[T]) Invalidate() {
	c.mu.Lock()
	c.entry = nil
	c.mu.Unlock()
}
