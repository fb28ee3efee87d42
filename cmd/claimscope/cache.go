// cmd/claimscope/cache.go
package main

import (
	"strings"
	"sync"
	"time"
)

type cachedCheck struct {
	result   *CheckResult
	expireAt time.Time
}

// ResultCache remembers recent checks so repeated claims skip the whole
// pipeline. TTL- and size-bounded.
type ResultCache struct {
	entries map[string]*cachedCheck
	mutex   sync.RWMutex
	ttl     time.Duration
	maxSize int
	hits    int64
	misses  int64
}

// NewResultCache creates a result cache
func NewResultCache(ttl time.Duration, maxSize int) *ResultCache {
	return &ResultCache{
		entries: make(map[string]*cachedCheck),
		ttl:     ttl,
		maxSize: maxSize,
	}
}

func cacheKey(claim string) string {
	return strings.ToLower(strings.TrimSpace(claim))
}

// Get returns the cached result for a claim, if present and fresh
func (c *ResultCache) Get(claim string) (*CheckResult, bool) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	entry, exists := c.entries[cacheKey(claim)]
	if !exists || time.Now().After(entry.expireAt) {
		c.misses++
		return nil, false
	}

	c.hits++
	return entry.result, true
}

// Set stores a completed check
func (c *ResultCache) Set(claim string, result *CheckResult) {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	c.entries[cacheKey(claim)] = &cachedCheck{
		result:   result,
		expireAt: time.Now().Add(c.ttl),
	}

	if c.maxSize > 0 && len(c.entries) > c.maxSize {
		c.evictOldest()
	}
}

// evictOldest removes the entry closest to expiry. Caller holds the lock.
func (c *ResultCache) evictOldest() {
	var oldestKey string
	var oldestExpire time.Time
	for key, entry := range c.entries {
		if oldestKey == "" || entry.expireAt.Before(oldestExpire) {
			oldestKey = key
			oldestExpire = entry.expireAt
		}
	}
	if oldestKey != "" {
		delete(c.entries, oldestKey)
	}
}

// Prune removes expired entries and returns how many were dropped
func (c *ResultCache) Prune() int {
	c.mutex.Lock()
	defer c.mutex.Unlock()

	now := time.Now()
	removed := 0
	for key, entry := range c.entries {
		if now.After(entry.expireAt) {
			delete(c.entries, key)
			removed++
		}
	}
	return removed
}

// Len returns the number of cached entries, expired or not
func (c *ResultCache) Len() int {
	c.mutex.RLock()
	defer c.mutex.RUnlock()
	return len(c.entries)
}

// HitRate returns the fraction of lookups served from cache
func (c *ResultCache) HitRate() float64 {
	c.mutex.RLock()
	defer c.mutex.RUnlock()

	total := c.hits + c.misses
	if total == 0 {
		return 0
	}
	return float64(c.hits) / float64(total)
}
