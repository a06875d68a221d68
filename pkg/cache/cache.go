// Package cache keeps the refreshable snapshot of the current user's
// entries. It is the single source of truth for the list screen; the
// engine replaces it wholesale after every successful mutation instead
// of patching rendered state in place.
package cache

import (
	"sync"

	"github.com/Ikhwanand/diary-tui/pkg/entry"
)

// Cache holds one generation-tagged snapshot. Replacement is atomic:
// readers never observe a partially applied refresh.
type Cache struct {
	mu      sync.RWMutex
	entries []*entry.Entry
	issued  uint64
	applied uint64
}

// New returns an empty cache.
func New() *Cache {
	return &Cache{}
}

// Begin registers a new refresh attempt and returns its generation.
// A later Begin supersedes all earlier outstanding refreshes.
func (c *Cache) Begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.issued++
	return c.issued
}

// Replace installs a snapshot if gen is still the latest issued
// generation. Completions of superseded refreshes are dropped whole,
// never merged. Returns whether the snapshot was applied.
func (c *Cache) Replace(gen uint64, entries []*entry.Entry) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.issued || gen <= c.applied {
		return false
	}
	c.entries = append([]*entry.Entry(nil), entries...)
	c.applied = gen
	return true
}

// All returns the cached entries in backend order.
func (c *Cache) All() []*entry.Entry {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return append([]*entry.Entry(nil), c.entries...)
}

// Len reports the number of cached entries.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Invalidate discards the snapshot. Called on logout so entries are never
// carried across sessions.
func (c *Cache) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = nil
}
