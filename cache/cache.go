// Package cache memoizes the more expensive derived-metric results.
// Entries are stamped with the source store's revision at write time, so
// any mutation invalidates them on the next read, including updates that
// leave the collection the same size.
package cache

import (
	"sync"
	"time"
)

type entry[V any] struct {
	value    V
	storedAt time.Time
	revision uint64
}

// Cache is a keyed memo table for one metric family. A ttl of zero means
// entries never expire by age and are invalidated by revision alone.
type Cache[V any] struct {
	mu      sync.RWMutex
	ttl     time.Duration
	entries map[string]entry[V]
}

func New[V any](ttl time.Duration) *Cache[V] {
	return &Cache[V]{ttl: ttl, entries: make(map[string]entry[V])}
}

// Get returns the cached value for key if it was written at the given
// source revision and has not aged out.
func (c *Cache[V]) Get(key string, revision uint64) (V, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	var zero V
	if !ok || e.revision != revision {
		return zero, false
	}
	if c.ttl > 0 && time.Since(e.storedAt) > c.ttl {
		c.mu.Lock()
		// recheck under the write lock; another writer may have refreshed it
		if cur, still := c.entries[key]; still && cur.storedAt.Equal(e.storedAt) {
			delete(c.entries, key)
		}
		c.mu.Unlock()
		return zero, false
	}
	return e.value, true
}

// Put stores value under key, stamped with the source revision.
func (c *Cache[V]) Put(key string, revision uint64, value V) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[V]{value: value, storedAt: time.Now(), revision: revision}
}

// Purge drops every entry.
func (c *Cache[V]) Purge() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[V])
}

// Len reports the number of live entries, expired or not.
func (c *Cache[V]) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}
