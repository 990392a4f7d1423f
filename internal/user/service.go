package user

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// validPlatforms defines the supported platform values
var validPlatforms = map[string]bool{
	domain.PlatformTwitch:  true,
	domain.PlatformYoutube: true,
	domain.PlatformDiscord: true,
}

// Service defines the interface for user identity operations
type Service interface {
	// RegisterUser creates a user linked to the given platform identity.
	// Registering an identity that is already linked returns the existing
	// user unchanged.
	RegisterUser(ctx context.Context, platform, platformID, username string) (domain.User, error)

	// FindUserByPlatformID finds a user by their platform-specific ID.
	// Returns domain.ErrUserNotFound when no link exists.
	FindUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error)

	// GetUserByPlatformUsername retrieves a user by platform and username.
	// Usernames match ignoring case.
	GetUserByPlatformUsername(ctx context.Context, platform, username string) (*domain.User, error)

	// UpdateUsername renames the user linked to the given platform identity.
	UpdateUsername(ctx context.Context, platform, platformID, newUsername string) (*domain.User, error)

	// ResolveDisplayName maps a platform identity to the stored username,
	// auto-registering the identity under fallbackUsername when unknown.
	ResolveDisplayName(ctx context.Context, platform, platformID, fallbackUsername string) (string, error)

	// GetCacheStats reports user cache occupancy and hit counters.
	GetCacheStats() CacheStats
}

type service struct {
	repo      repository.User
	userCache *userCache // In-memory cache for user lookups
}

// NewService creates a new user service
func NewService(repo repository.User) Service {
	return &service{
		repo:      repo,
		userCache: newUserCache(loadCacheConfig()),
	}
}

func loadCacheConfig() CacheConfig {
	config := DefaultCacheConfig()

	if val := os.Getenv(EnvUserCacheSize); val != "" {
		if size, err := strconv.Atoi(val); err == nil && size > 0 {
			config.Size = size
		}
	}

	if val := os.Getenv(EnvUserCacheTTL); val != "" {
		if ttl, err := time.ParseDuration(val); err == nil && ttl > 0 {
			config.TTL = ttl
		}
	}

	return config
}

func getPlatformKeysFromUser(user domain.User) map[string]string {
	keys := make(map[string]string)
	if user.TwitchID != "" {
		keys[domain.PlatformTwitch] = user.TwitchID
	}
	if user.YoutubeID != "" {
		keys[domain.PlatformYoutube] = user.YoutubeID
	}
	if user.DiscordID != "" {
		keys[domain.PlatformDiscord] = user.DiscordID
	}
	return keys
}

func (s *service) GetCacheStats() CacheStats {
	return s.userCache.GetStats()
}
