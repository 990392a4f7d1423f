package user

import (
	"sync/atomic"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// CacheConfig controls the size and entry lifetime of the user cache.
type CacheConfig struct {
	Size int
	TTL  time.Duration
}

// DefaultCacheConfig returns the cache settings used when no environment
// overrides are set.
func DefaultCacheConfig() CacheConfig {
	return CacheConfig{
		Size: DefaultCacheSize,
		TTL:  DefaultCacheTTL,
	}
}

// CacheStats reports cache occupancy and lookup counters.
type CacheStats struct {
	Hits   int64 `json:"hits"`
	Misses int64 `json:"misses"`
	Size   int   `json:"size"`
}

// cachedUserEntry wraps a user with version metadata for cache invalidation
type cachedUserEntry struct {
	Version  string       `json:"version"`
	User     *domain.User `json:"user"`
	CachedAt time.Time    `json:"cached_at"`
}

// userCache provides an in-memory LRU cache for user lookups
// with time-based expiration and version-based invalidation to prevent stale data.
type userCache struct {
	lru    *expirable.LRU[string, *cachedUserEntry]
	hits   atomic.Int64
	misses atomic.Int64
}

// newUserCache creates a new user cache with the given size and TTL.
func newUserCache(config CacheConfig) *userCache {
	return &userCache{
		lru: expirable.NewLRU[string, *cachedUserEntry](config.Size, nil, config.TTL),
	}
}

// Get retrieves a user from the cache.
// Returns (user, true) if found and version matches.
// Returns (nil, false) if not in cache, expired, or version mismatch.
// Automatically invalidates entries with mismatched versions.
func (c *userCache) Get(platform, platformID string) (*domain.User, bool) {
	key := platform + ":" + platformID
	entry, found := c.lru.Get(key)
	if !found {
		c.misses.Add(1)
		return nil, false
	}

	// Check version - auto-invalidate if mismatch
	if entry.Version != CacheSchemaVersion {
		c.lru.Remove(key)
		c.misses.Add(1)
		return nil, false
	}

	c.hits.Add(1)
	return entry.User, true
}

// Set stores a user in the cache with current schema version.
func (c *userCache) Set(platform, platformID string, user *domain.User) {
	key := platform + ":" + platformID
	entry := &cachedUserEntry{
		Version:  CacheSchemaVersion,
		User:     user,
		CachedAt: time.Now(),
	}
	c.lru.Add(key, entry)
}

// Invalidate removes a user from the cache.
// Useful when user data is updated.
func (c *userCache) Invalidate(platform, platformID string) {
	key := platform + ":" + platformID
	c.lru.Remove(key)
}

// Clear removes all entries from the cache.
func (c *userCache) Clear() {
	c.lru.Purge()
}

// GetStats returns a snapshot of the cache counters.
func (c *userCache) GetStats() CacheStats {
	return CacheStats{
		Hits:   c.hits.Load(),
		Misses: c.misses.Load(),
		Size:   c.lru.Len(),
	}
}
