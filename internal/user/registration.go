package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

func validatePlatformIdentity(platform, platformID string) error {
	if !validPlatforms[platform] {
		return fmt.Errorf("%w: %q", domain.ErrInvalidPlatform, platform)
	}
	if platformID == "" {
		return fmt.Errorf("%w: platform id is required", domain.ErrInvalidInput)
	}
	return nil
}

func validateUsername(username string) error {
	if username == "" {
		return fmt.Errorf("%w: username is required", domain.ErrInvalidInput)
	}
	if len(username) > domain.UsernameMaxLen {
		return fmt.Errorf("%w: username exceeds %d characters", domain.ErrInvalidInput, domain.UsernameMaxLen)
	}
	for _, r := range username {
		if unicode.IsControl(r) {
			return fmt.Errorf("%w: username contains control characters", domain.ErrInvalidInput)
		}
	}
	return nil
}

// RegisterUser registers a new user for a platform identity
func (s *service) RegisterUser(ctx context.Context, platform, platformID, username string) (domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRegisterUserCalled, "platform", platform, "username", username)

	if err := validatePlatformIdentity(platform, platformID); err != nil {
		return domain.User{}, err
	}
	username = strings.TrimSpace(username)
	if err := validateUsername(username); err != nil {
		return domain.User{}, err
	}

	existing, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	if err != nil && !errors.Is(err, domain.ErrUserNotFound) {
		log.Error("Failed to check for existing user", "error", err, "platform", platform, "platformID", platformID)
		return domain.User{}, err
	}
	if existing != nil {
		s.userCache.Set(platform, platformID, existing)
		log.Info(LogMsgUserAlreadyRegistered, "user_id", existing.ID, "username", existing.Username)
		return *existing, nil
	}

	user := domain.User{Username: username}
	user.SetPlatformID(platform, platformID)
	if err := s.repo.UpsertUser(ctx, &user); err != nil {
		log.Error(LogErrFailedToUpsertUser, "error", err, "username", user.Username)
		return domain.User{}, err
	}

	// Cache the newly registered user for all their platforms
	for p, id := range getPlatformKeysFromUser(user) {
		s.userCache.Set(p, id, &user)
	}

	log.Info(LogMsgUserRegistered, "user_id", user.ID, "username", user.Username)
	return user, nil
}

// FindUserByPlatformID finds a user by their platform-specific ID
func (s *service) FindUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgFindUserByPlatformIDCalled, "platform", platform, "platformID", platformID)
	user, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Error("Failed to find user by platform ID", "error", err, "platform", platform, "platformID", platformID)
		}
		return nil, err
	}
	log.Info(LogMsgUserFound, "userID", user.ID, "username", user.Username)
	return user, nil
}

// GetUserByPlatformUsername retrieves a user by platform and username
func (s *service) GetUserByPlatformUsername(ctx context.Context, platform, username string) (*domain.User, error) {
	return s.repo.GetUserByPlatformUsername(ctx, platform, username)
}

// UpdateUsername renames the user linked to the given platform identity
func (s *service) UpdateUsername(ctx context.Context, platform, platformID, newUsername string) (*domain.User, error) {
	log := logger.FromContext(ctx)

	if err := validatePlatformIdentity(platform, platformID); err != nil {
		return nil, err
	}
	newUsername = strings.TrimSpace(newUsername)
	if err := validateUsername(newUsername); err != nil {
		return nil, err
	}

	user, err := s.repo.GetUserByPlatformID(ctx, platform, platformID)
	if err != nil {
		if !errors.Is(err, domain.ErrUserNotFound) {
			log.Error("Failed to find user for rename", "error", err, "platform", platform, "platformID", platformID)
		}
		return nil, err
	}

	user.Username = newUsername
	if err := s.repo.UpsertUser(ctx, user); err != nil {
		log.Error(LogErrFailedToUpsertUser, "error", err, "userID", user.ID)
		return nil, err
	}

	// Invalidate cache for all platforms to force refresh on next lookup
	for p, id := range getPlatformKeysFromUser(*user) {
		s.userCache.Invalidate(p, id)
	}

	log.Info(LogMsgUsernameUpdated, "user_id", user.ID, "username", user.Username)
	return user, nil
}
