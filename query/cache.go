package query

import (
	"context"
	"strings"
	"sync"
	"time"
)

// FetchFunc produces a fresh value for one query key.
type FetchFunc func(ctx context.Context) (any, error)

type entry struct {
	mu        sync.Mutex // serializes fetches for this key
	value     any
	fetchedAt time.Time
	valid     bool
}

// Cache scopes fetched results by query key. A cached value is served until
// it is invalidated or its stale time passes; fetches for the same key are
// serialized, so a fetch that finds a fresh value written while it waited
// reuses that value instead of issuing its own request. Different keys are
// independent and unordered with respect to each other.
type Cache struct {
	mu         sync.Mutex
	entries    map[string]*entry
	staleAfter time.Duration
}

// NewCache creates a cache whose values go stale after the given duration.
// Zero means values stay fresh until explicitly invalidated.
func NewCache(staleAfter time.Duration) *Cache {
	return &Cache{
		entries:    make(map[string]*entry),
		staleAfter: staleAfter,
	}
}

func (c *Cache) entryFor(key string) *entry {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok {
		e = &entry{}
		c.entries[key] = e
	}
	return e
}

func (c *Cache) fresh(e *entry) bool {
	if !e.valid {
		return false
	}
	if c.staleAfter <= 0 {
		return true
	}
	return time.Since(e.fetchedAt) < c.staleAfter
}

// Get returns the cached value for key, fetching it first when the entry is
// missing, invalidated, or stale.
func (c *Cache) Get(ctx context.Context, key string, fetch FetchFunc) (any, error) {
	e := c.entryFor(key)

	e.mu.Lock()
	defer e.mu.Unlock()

	if c.fresh(e) {
		return e.value, nil
	}

	value, err := fetch(ctx)
	if err != nil {
		return nil, err
	}
	e.value = value
	e.fetchedAt = time.Now()
	e.valid = true
	return value, nil
}

// Invalidate marks the key's cached value stale so the next Get refetches.
func (c *Cache) Invalidate(key string) {
	c.mu.Lock()
	e, ok := c.entries[key]
	c.mu.Unlock()
	if !ok {
		return
	}
	e.mu.Lock()
	e.valid = false
	e.mu.Unlock()
}

// InvalidatePrefix invalidates every key starting with prefix. Used for
// parameterized keys such as per-post response lists.
func (c *Cache) InvalidatePrefix(prefix string) {
	c.mu.Lock()
	matched := make([]*entry, 0, len(c.entries))
	for key, e := range c.entries {
		if strings.HasPrefix(key, prefix) {
			matched = append(matched, e)
		}
	}
	c.mu.Unlock()

	for _, e := range matched {
		e.mu.Lock()
		e.valid = false
		e.mu.Unlock()
	}
}

// Clear drops every cached entry. Used on logout.
func (c *Cache) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]*entry)
}

// PruneExpired removes entries whose stale time has passed and returns how
// many were dropped. The background scheduler calls this periodically.
func (c *Cache) PruneExpired() int {
	if c.staleAfter <= 0 {
		return 0
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	pruned := 0
	for key, e := range c.entries {
		e.mu.Lock()
		expired := e.valid && time.Since(e.fetchedAt) >= c.staleAfter
		e.mu.Unlock()
		if expired {
			delete(c.entries, key)
			pruned++
		}
	}
	return pruned
}

// Fetch is a typed wrapper around Cache.Get.
func Fetch[T any](ctx context.Context, c *Cache, key string, fetch func(ctx context.Context) (T, error)) (T, error) {
	value, err := c.Get(ctx, key, func(ctx context.Context) (any, error) {
		return fetch(ctx)
	})
	if err != nil {
		var zero T
		return zero, err
	}
	typed, ok := value.(T)
	if !ok {
		var zero T
		return zero, nil
	}
	return typed, nil
}
