package repository

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// User defines the interface for user persistence
type User interface {
	// UpsertUser inserts the user or updates it in place, writing any
	// platform links carried on the struct. A missing ID is filled in.
	UpsertUser(ctx context.Context, user *domain.User) error

	// GetUserByPlatformID finds a user by an external platform identifier.
	// Returns domain.ErrUserNotFound when no link exists.
	GetUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error)

	// GetUserByPlatformUsername finds a user by username among users linked
	// to the given platform. Returns domain.ErrUserNotFound when absent.
	GetUserByPlatformUsername(ctx context.Context, platform, username string) (*domain.User, error)
}
