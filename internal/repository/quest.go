package repository

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Quest defines the interface for quest log persistence
type Quest interface {
	// CreateQuest inserts a quest and fills in its ID and timestamps.
	// Titles are unique ignoring case; a duplicate returns
	// domain.ErrQuestAlreadyExists.
	CreateQuest(ctx context.Context, quest *domain.Quest) error

	// GetQuestByID returns domain.ErrQuestNotFound when the id is unknown.
	GetQuestByID(ctx context.Context, id int) (*domain.Quest, error)

	// GetQuestByTitle matches the title case-insensitively. Returns
	// domain.ErrQuestNotFound when absent.
	GetQuestByTitle(ctx context.Context, title string) (*domain.Quest, error)

	// UpdateQuest writes the quest's mutable fields and refreshes
	// updated_at. Returns domain.ErrQuestNotFound for an unknown id.
	UpdateQuest(ctx context.Context, quest *domain.Quest) error

	// CompleteQuest marks the quest inactive and stamps completed_at.
	// Returns domain.ErrQuestNotFound for an unknown id and
	// domain.ErrQuestAlreadyComplete when it was completed before.
	CompleteQuest(ctx context.Context, id int) (*domain.Quest, error)

	// ListQuests returns quests ordered per the filter, newest first for
	// the default filter. A limit <= 0 means no limit.
	ListQuests(ctx context.Context, filter string, limit int) ([]domain.Quest, error)
}
