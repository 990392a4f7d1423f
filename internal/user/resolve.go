package user

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// ResolveDisplayName maps a platform identity to the stored username.
// Unknown identities are auto-registered under fallbackUsername, so a
// stream of chat messages lazily populates the user table.
func (s *service) ResolveDisplayName(ctx context.Context, platform, platformID, fallbackUsername string) (string, error) {
	user, err := s.getUserOrRegister(ctx, platform, platformID, fallbackUsername)
	if err != nil {
		return "", err
	}
	return user.Username, nil
}

// getUserOrRegister gets a user by platform ID, or auto-registers them if not found
func (s *service) getUserOrRegister(ctx context.Context, platform, platformID, username string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	username = strings.TrimSpace(username)
	if username == "" || platformID == "" || !validPlatforms[platform] {
		log.Error("Invalid platform or username", "platform", platform, "username", username)
		return nil, domain.ErrInvalidInput
	}

	// Try cache first
	if user, ok := s.userCache.Get(platform, platformID); ok {
		log.Debug(LogMsgUserCacheHit, "userID", user.ID, "platform", platform)
		return user, nil
	}

	// Cache miss - fetch from database
	user, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Error("Failed to get user by platform ID", "error", err, "platform", platform, "platformID", platformID)
		return nil, domain.ErrFailedToGetUser
	}

	if user != nil {
		log.Debug(LogMsgFoundExistingUser, "userID", user.ID, "platform", platform)
		// Cache the user for future lookups
		s.userCache.Set(platform, platformID, user)
		return user, nil
	}

	// User not found, auto-register
	log.Info(LogMsgAutoRegisteringUser, "platform", platform, "platformID", platformID, "username", username)
	registered, err := s.RegisterUser(ctx, platform, platformID, username)
	if err != nil {
		log.Error("Failed to auto-register user", "error", err)
		return nil, domain.ErrFailedToRegisterUser
	}

	log.Info(LogMsgUserAutoRegistered, "userID", registered.ID)
	return &registered, nil
}
