package user

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

func TestCacheInvalidation(t *testing.T) {
	// Setup
	config := CacheConfig{Size: 10, TTL: 1 * time.Minute}
	cache := newUserCache(config)

	user := &domain.User{
		ID:       "user-1",
		Username: "testuser",
		TwitchID: "twitch-123",
	}

	// 1. Set user in cache
	cache.Set(domain.PlatformTwitch, "twitch-123", user)

	// 2. Verify retrieval
	retrieved, found := cache.Get(domain.PlatformTwitch, "twitch-123")
	assert.True(t, found)
	assert.Equal(t, user, retrieved)

	// 3. Invalidate
	cache.Invalidate(domain.PlatformTwitch, "twitch-123")

	// 4. Verify miss
	retrieved, found = cache.Get(domain.PlatformTwitch, "twitch-123")
	assert.False(t, found)
	assert.Nil(t, retrieved)
}

func TestCacheStats(t *testing.T) {
	config := CacheConfig{Size: 10, TTL: 1 * time.Minute}
	cache := newUserCache(config)

	user := &domain.User{
		ID:       "user-1",
		Username: "testuser",
	}

	// Initial stats
	stats := cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(0), stats.Misses)
	assert.Equal(t, 0, stats.Size)

	// Miss
	cache.Get("platform", "id")
	stats = cache.GetStats()
	assert.Equal(t, int64(0), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)

	// Set and Hit
	cache.Set("platform", "id", user)
	cache.Get("platform", "id")
	stats = cache.GetStats()
	assert.Equal(t, int64(1), stats.Hits)
	assert.Equal(t, int64(1), stats.Misses)
	assert.Equal(t, 1, stats.Size)
}

func TestCacheSchemaVersionMismatch(t *testing.T) {
	config := CacheConfig{Size: 10, TTL: 1 * time.Minute}
	cache := newUserCache(config)

	user := &domain.User{ID: "user-1", Username: "testuser"}

	// Simulate an entry written by an older build
	cache.lru.Add("twitch:stale", &cachedUserEntry{
		Version:  "0.0",
		User:     user,
		CachedAt: time.Now(),
	})

	retrieved, found := cache.Get("twitch", "stale")
	assert.False(t, found)
	assert.Nil(t, retrieved)

	// The stale entry was evicted, not just skipped
	assert.Equal(t, 0, cache.lru.Len())
}

func TestCacheExpiry(t *testing.T) {
	config := CacheConfig{Size: 10, TTL: 10 * time.Millisecond}
	cache := newUserCache(config)

	user := &domain.User{ID: "user-1", Username: "testuser"}
	cache.Set(domain.PlatformTwitch, "twitch-123", user)

	time.Sleep(100 * time.Millisecond)

	_, found := cache.Get(domain.PlatformTwitch, "twitch-123")
	assert.False(t, found)
}

func TestCacheConfig(t *testing.T) {
	// Test Default
	cfg := DefaultCacheConfig()
	assert.Equal(t, 1000, cfg.Size)
	assert.Equal(t, 5*time.Minute, cfg.TTL)
}

func TestLoadCacheConfig(t *testing.T) {
	t.Run("env overrides", func(t *testing.T) {
		t.Setenv(EnvUserCacheSize, "50")
		t.Setenv(EnvUserCacheTTL, "30s")

		cfg := loadCacheConfig()
		assert.Equal(t, 50, cfg.Size)
		assert.Equal(t, 30*time.Second, cfg.TTL)
	})

	t.Run("invalid values fall back to defaults", func(t *testing.T) {
		t.Setenv(EnvUserCacheSize, "not-a-number")
		t.Setenv(EnvUserCacheTTL, "-5s")

		cfg := loadCacheConfig()
		assert.Equal(t, DefaultCacheSize, cfg.Size)
		assert.Equal(t, DefaultCacheTTL, cfg.TTL)
	})
}
