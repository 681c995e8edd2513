package llm

import (
	"sync"
	"time"

	"github.com/Veraticus/nestegg/internal/service"
)

type cacheEntry struct {
	expiry      time.Time
	suggestions []service.Suggestion
}

// suggestionCache keeps model replies for identical spending profiles.
type suggestionCache struct {
	entries map[string]cacheEntry
	stopCh  chan struct{}
	ttl     time.Duration
	mu      sync.RWMutex
}

func newSuggestionCache(ttl time.Duration) *suggestionCache {
	if ttl == 0 {
		ttl = 15 * time.Minute
	}

	cache := &suggestionCache{
		entries: make(map[string]cacheEntry),
		ttl:     ttl,
		stopCh:  make(chan struct{}),
	}
	go cache.cleanup()

	return cache
}

func (c *suggestionCache) get(key string) ([]service.Suggestion, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	entry, exists := c.entries[key]
	if !exists || time.Now().After(entry.expiry) {
		return nil, false
	}
	return entry.suggestions, true
}

func (c *suggestionCache) set(key string, suggestions []service.Suggestion) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.entries[key] = cacheEntry{
		suggestions: suggestions,
		expiry:      time.Now().Add(c.ttl),
	}
}

// cleanup periodically removes expired entries.
func (c *suggestionCache) cleanup() {
	ticker := time.NewTicker(5 * time.Minute)
	defer ticker.Stop()

	for {
		select {
		case <-c.stopCh:
			return
		case <-ticker.C:
			c.evictExpired(time.Now())
		}
	}
}

func (c *suggestionCache) evictExpired(now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	for key, entry := range c.entries {
		if now.After(entry.expiry) {
			delete(c.entries, key)
		}
	}
}

func (c *suggestionCache) clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]cacheEntry)
}

func (c *suggestionCache) size() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.entries)
}

// Close stops the cleanup goroutine.
func (c *suggestionCache) Close() {
	close(c.stopCh)
}
