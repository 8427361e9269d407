// Package cache provides a small in-memory TTL memo cache for upstream results.
//
// The cache is explicit rather than a transparent decorator: callers build a
// key from the operation name and its arguments, and the refresh action purges
// everything. Access is read-mostly with a single writer, but the mutex keeps
// it safe regardless.
package cache

import (
	"strings"
	"sync"
	"time"
)

type entry struct {
	value    interface{}
	storedAt time.Time
}

// Cache memoizes operation results for a fixed time-to-live.
type Cache struct {
	mu      sync.RWMutex
	entries map[string]entry
	ttl     time.Duration
	now     func() time.Time
}

// New creates a cache with the given TTL. A non-positive TTL disables
// caching entirely: Get never hits.
func New(ttl time.Duration) *Cache {
	return &Cache{
		entries: make(map[string]entry),
		ttl:     ttl,
		now:     time.Now,
	}
}

// Key builds a cache key from an operation name and its arguments.
func Key(op string, args ...string) string {
	if len(args) == 0 {
		return op
	}
	return op + ":" + strings.Join(args, ":")
}

// Get returns the cached value for key if present and not expired.
func (c *Cache) Get(key string) (interface{}, bool) {
	if c.ttl <= 0 {
		return nil, false
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	e, ok := c.entries[key]
	if !ok || c.now().Sub(e.storedAt) > c.ttl {
		return nil, false
	}
	return e.value, true
}

// Set stores a value under key with the current insertion time.
func (c *Cache) Set(key string, value interface{}) {
	if c.ttl <= 0 {
		return
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry{value: value, storedAt: c.now()}
}

// Purge drops every entry. Wired to the manual refresh action.
func (c *Cache) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry)
}

// Len reports the number of entries, expired or not. Used by the status endpoint.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
