package user

import (
	"context"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// FakeRepository is a stateful in-memory implementation of repository.User
// for integration-style unit tests.
//
// IMPORTANT: This fake must remain in the user package to avoid import cycles.
// The mockery-generated mock is for cross-package testing only.
type FakeRepository struct {
	users map[string]*domain.User // keyed by user ID
}

func NewFakeRepository() *FakeRepository {
	return &FakeRepository{
		users: make(map[string]*domain.User),
	}
}

func (f *FakeRepository) UpsertUser(ctx context.Context, user *domain.User) error {
	if user.ID == "" {
		user.ID = "user-" + user.Username
	}
	f.users[user.ID] = user
	return nil
}

func (f *FakeRepository) GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	for _, u := range f.users {
		if platformID != "" && u.PlatformID(platform) == platformID {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (f *FakeRepository) GetUserByPlatformUsername(ctx context.Context, platform, username string) (*domain.User, error) {
	// Case-insensitive username lookup among users linked to the platform
	for _, u := range f.users {
		if u.PlatformID(platform) != "" && strings.EqualFold(u.Username, username) {
			return u, nil
		}
	}
	return nil, domain.ErrUserNotFound
}
