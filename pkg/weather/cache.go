package weather

import (
	"fmt"
	"sync"
	"time"
)

// cacheTTL determines how long a weather report is served before a fresh
// upstream fetch is made
const cacheTTL = 10 * time.Minute

type cacheEntry struct {
	report    *Report
	expiresAt time.Time
}

// Cache is a size-unbounded, time-expiring in-memory map keyed by the
// literal coordinate-string pair. Expired entries are swept on the next
// write rather than by a background timer. The key is deliberately not
// bucketed, so near-duplicate coordinates never share an entry.
type Cache struct {
	mu      sync.Mutex
	entries map[string]cacheEntry
	ttl     time.Duration
	now     func() time.Time // Injected for tests
}

// NewCache creates a cache with the default TTL
func NewCache() *Cache {
	return &Cache{
		entries: make(map[string]cacheEntry),
		ttl:     cacheTTL,
		now:     time.Now,
	}
}

// Key builds the cache key from the literal coordinate strings
func Key(lat, lon string) string {
	return fmt.Sprintf("%s,%s", lat, lon)
}

// Get returns the cached report for a key, treating expired entries as
// misses without deleting them (eviction happens lazily in Set).
func (c *Cache) Get(key string) (*Report, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	entry, ok := c.entries[key]
	if !ok || c.now().After(entry.expiresAt) {
		return nil, false
	}

	return entry.report, true
}

// Set stores a fresh report and sweeps any expired entries
func (c *Cache) Set(key string, report *Report) {
	c.mu.Lock()
	defer c.mu.Unlock()

	now := c.now()
	for k, entry := range c.entries {
		if now.After(entry.expiresAt) {
			delete(c.entries, k)
		}
	}

	c.entries[key] = cacheEntry{
		report:    report,
		expiresAt: now.Add(c.ttl),
	}
}
