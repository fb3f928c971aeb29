// Package querycache implements the invalidate-and-refetch consistency
// model for the experiences resource: mutations never patch cached data,
// they mark it stale so the next read refetches from the store.
package querycache

import (
	"context"
	"sync"

	"golang.org/x/sync/singleflight"

	"github.com/LGuichet/CareerForge/internal/experience"
)

// resourceKey is the single cache key; the engine caches exactly one
// resource, the full experience list.
const resourceKey = "experiences"

// ListFunc fetches the authoritative experience list from the store.
type ListFunc func(ctx context.Context) ([]experience.RawExperience, error)

// Cache holds the last fetched experience list and its freshness. Reads on
// a stale cache trigger one refetch; concurrent reads collapse onto it.
type Cache struct {
	fetch ListFunc
	group singleflight.Group

	mu    sync.Mutex
	data  []experience.RawExperience
	fresh bool
}

// New creates a cache backed by the given fetch function.
func New(fetch ListFunc) *Cache {
	return &Cache{fetch: fetch}
}

// Get returns the cached list, refetching first when the cache is stale or
// has never been filled. A failed refetch leaves the cache stale, so the
// next read retries; the error is returned to the caller untouched.
func (c *Cache) Get(ctx context.Context) ([]experience.RawExperience, error) {
	c.mu.Lock()
	if c.fresh {
		data := c.data
		c.mu.Unlock()
		return data, nil
	}
	c.mu.Unlock()

	v, err, _ := c.group.Do(resourceKey, func() (any, error) {
		data, err := c.fetch(ctx)
		if err != nil {
			return nil, err
		}
		c.mu.Lock()
		c.data = data
		c.fresh = true
		c.mu.Unlock()
		return data, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]experience.RawExperience), nil
}

// Invalidate marks the cached list stale. It never blocks and is always
// safe to call, even with a refetch in flight; the last invalidation wins.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	c.fresh = false
	c.mu.Unlock()
}
