package quest

import (
	"context"
	"fmt"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// Service manages the campaign quest log
type Service interface {
	// Quest log management
	Create(ctx context.Context, title, description, questGiver, locationGiven string) (*domain.Quest, error)
	Modify(ctx context.Context, id int, update domain.QuestUpdate) (*domain.Quest, error)
	AddDetail(ctx context.Context, id int, detail string) (*domain.Quest, error)
	Complete(ctx context.Context, id int) (*domain.Quest, error)

	// Lookups
	GetByID(ctx context.Context, id int) (*domain.Quest, error)
	GetByTitle(ctx context.Context, title string) (*domain.Quest, error)

	// Listings (limits are clamped to domain.DefaultQuestListLimit)
	List(ctx context.Context, filter string, limit int) ([]domain.Quest, error)
	ListNewest(ctx context.Context, limit int) ([]domain.Quest, error)
	ListLastUpdated(ctx context.Context, limit int) ([]domain.Quest, error)
	ListActive(ctx context.Context, limit int) ([]domain.Quest, error)
	ListInactive(ctx context.Context) ([]domain.Quest, error)
	ListAll(ctx context.Context) ([]domain.Quest, error)
}

type service struct {
	repo      repository.Quest
	publisher *event.ResilientPublisher
}

// NewService creates a new quest log service. The publisher may be nil, in
// which case lifecycle events are skipped.
func NewService(repo repository.Quest, publisher *event.ResilientPublisher) Service {
	return &service{
		repo:      repo,
		publisher: publisher,
	}
}

// Create adds a new active quest to the log
func (s *service) Create(ctx context.Context, title, description, questGiver, locationGiven string) (*domain.Quest, error) {
	log := logger.FromContext(ctx)

	quest := &domain.Quest{
		Title:         strings.TrimSpace(title),
		Description:   strings.TrimSpace(description),
		QuestGiver:    strings.TrimSpace(questGiver),
		LocationGiven: strings.TrimSpace(locationGiven),
	}
	if err := validateQuestFields(quest.Title, quest.Description, quest.QuestGiver, quest.LocationGiven); err != nil {
		return nil, err
	}

	if err := s.repo.CreateQuest(ctx, quest); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCreateQuest, err)
	}

	log.Info(LogMsgQuestCreated, "quest_id", quest.ID, "title", quest.Title)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewQuestCreatedEvent(quest.ID, quest.Title))
	}

	return quest, nil
}

// Modify applies a partial update to a quest's fields
func (s *service) Modify(ctx context.Context, id int, update domain.QuestUpdate) (*domain.Quest, error) {
	log := logger.FromContext(ctx)

	if update.Empty() {
		return nil, fmt.Errorf("%w: no fields to update", domain.ErrInvalidInput)
	}

	quest, err := s.repo.GetQuestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetQuest, err)
	}

	if update.Title != nil {
		quest.Title = strings.TrimSpace(*update.Title)
	}
	if update.Description != nil {
		quest.Description = strings.TrimSpace(*update.Description)
	}
	if update.QuestGiver != nil {
		quest.QuestGiver = strings.TrimSpace(*update.QuestGiver)
	}
	if update.LocationGiven != nil {
		quest.LocationGiven = strings.TrimSpace(*update.LocationGiven)
	}
	if err := validateQuestFields(quest.Title, quest.Description, quest.QuestGiver, quest.LocationGiven); err != nil {
		return nil, err
	}

	if err := s.repo.UpdateQuest(ctx, quest); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToModifyQuest, err)
	}

	log.Info(LogMsgQuestModified, "quest_id", quest.ID, "title", quest.Title)
	return quest, nil
}

// AddDetail appends a detail line to the quest's description
func (s *service) AddDetail(ctx context.Context, id int, detail string) (*domain.Quest, error) {
	log := logger.FromContext(ctx)

	detail = strings.TrimSpace(detail)
	if detail == "" {
		return nil, fmt.Errorf("%w: detail is required", domain.ErrInvalidInput)
	}

	quest, err := s.repo.GetQuestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetQuest, err)
	}

	if quest.Description == "" {
		quest.Description = detail
	} else {
		quest.Description = quest.Description + domain.QuestDetailSeparator + detail
	}
	if len(quest.Description) > domain.QuestDescriptionMaxLen {
		return nil, fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidInput, domain.QuestDescriptionMaxLen)
	}

	if err := s.repo.UpdateQuest(ctx, quest); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToAddDetail, err)
	}

	log.Info(LogMsgQuestDetailAdded, "quest_id", quest.ID, "title", quest.Title)
	return quest, nil
}

// Complete marks a quest as finished
func (s *service) Complete(ctx context.Context, id int) (*domain.Quest, error) {
	log := logger.FromContext(ctx)

	quest, err := s.repo.CompleteQuest(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToCompleteQuest, err)
	}

	log.Info(LogMsgQuestCompleted, "quest_id", quest.ID, "title", quest.Title)

	if s.publisher != nil {
		s.publisher.PublishWithRetry(ctx, event.NewQuestCompletedEvent(quest.ID, quest.Title))
	}

	return quest, nil
}

// GetByID returns a single quest by its numeric ID
func (s *service) GetByID(ctx context.Context, id int) (*domain.Quest, error) {
	quest, err := s.repo.GetQuestByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetQuest, err)
	}
	return quest, nil
}

// GetByTitle returns a single quest by exact title, ignoring case
func (s *service) GetByTitle(ctx context.Context, title string) (*domain.Quest, error) {
	title = strings.TrimSpace(title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}

	quest, err := s.repo.GetQuestByTitle(ctx, title)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToGetQuest, err)
	}
	return quest, nil
}

// List routes a filter string to the matching listing
func (s *service) List(ctx context.Context, filter string, limit int) ([]domain.Quest, error) {
	if !domain.IsValidQuestFilter(filter) {
		return nil, fmt.Errorf("%w: unknown quest filter %q", domain.ErrInvalidInput, filter)
	}

	switch filter {
	case domain.QuestFilterUpdated:
		return s.ListLastUpdated(ctx, limit)
	case domain.QuestFilterActive:
		return s.ListActive(ctx, limit)
	case domain.QuestFilterInactive:
		return s.ListInactive(ctx)
	case domain.QuestFilterAll:
		return s.ListAll(ctx)
	default:
		return s.ListNewest(ctx, limit)
	}
}

// ListNewest returns the most recently created quests
func (s *service) ListNewest(ctx context.Context, limit int) ([]domain.Quest, error) {
	return s.list(ctx, domain.QuestFilterNewest, clampLimit(limit))
}

// ListLastUpdated returns the most recently touched quests
func (s *service) ListLastUpdated(ctx context.Context, limit int) ([]domain.Quest, error) {
	return s.list(ctx, domain.QuestFilterUpdated, clampLimit(limit))
}

// ListActive returns open quests in the order they were logged
func (s *service) ListActive(ctx context.Context, limit int) ([]domain.Quest, error) {
	return s.list(ctx, domain.QuestFilterActive, clampLimit(limit))
}

// ListInactive returns completed quests in completion order
func (s *service) ListInactive(ctx context.Context) ([]domain.Quest, error) {
	return s.list(ctx, domain.QuestFilterInactive, 0)
}

// ListAll returns the whole quest log, newest first
func (s *service) ListAll(ctx context.Context) ([]domain.Quest, error) {
	return s.list(ctx, domain.QuestFilterAll, 0)
}

func (s *service) list(ctx context.Context, filter string, limit int) ([]domain.Quest, error) {
	quests, err := s.repo.ListQuests(ctx, filter, limit)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToListQuests, err)
	}
	return quests, nil
}

// clampLimit bounds a requested limit to the default listing size
func clampLimit(limit int) int {
	if limit <= 0 || limit > domain.DefaultQuestListLimit {
		return domain.DefaultQuestListLimit
	}
	return limit
}

// validateQuestFields enforces the field length limits shared with the schema
func validateQuestFields(title, description, questGiver, locationGiven string) error {
	if title == "" {
		return fmt.Errorf("%w: title is required", domain.ErrInvalidInput)
	}
	if len(title) > domain.QuestTitleMaxLen {
		return fmt.Errorf("%w: title exceeds %d characters", domain.ErrInvalidInput, domain.QuestTitleMaxLen)
	}
	if len(description) > domain.QuestDescriptionMaxLen {
		return fmt.Errorf("%w: description exceeds %d characters", domain.ErrInvalidInput, domain.QuestDescriptionMaxLen)
	}
	if len(questGiver) > domain.QuestGiverMaxLen {
		return fmt.Errorf("%w: quest giver exceeds %d characters", domain.ErrInvalidInput, domain.QuestGiverMaxLen)
	}
	if len(locationGiven) > domain.QuestLocationMaxLen {
		return fmt.Errorf("%w: location exceeds %d characters", domain.ErrInvalidInput, domain.QuestLocationMaxLen)
	}
	return nil
}
