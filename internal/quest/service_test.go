package quest

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
)

// newTestPublisher wraps a bus in a ResilientPublisher that is shut down
// with the test
func newTestPublisher(t *testing.T, bus event.Bus) *event.ResilientPublisher {
	t.Helper()

	publisher, err := event.NewResilientPublisher(bus, 1, time.Millisecond, filepath.Join(t.TempDir(), "dead_letter.jsonl"))
	require.NoError(t, err)
	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = publisher.Shutdown(ctx)
	})
	return publisher
}

// ============================================================================
// Create
// ============================================================================

func TestCreate_Success(t *testing.T) {
	repo := new(MockQuestRepository)
	bus := new(MockBus)
	svc := NewService(repo, newTestPublisher(t, bus))

	repo.On("CreateQuest", mock.Anything, mock.AnythingOfType("*domain.Quest")).
		Run(func(args mock.Arguments) {
			quest := args.Get(1).(*domain.Quest)
			quest.ID = 7
			quest.Active = true
			quest.CreatedAt = time.Now()
			quest.UpdatedAt = quest.CreatedAt
		}).
		Return(nil)
	bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
		payload, ok := evt.Payload.(domain.QuestCreatedPayload)
		return evt.Type == domain.EventTypeQuestCreated &&
			evt.Version == event.EventSchemaVersion &&
			ok && payload.QuestID == 7 && payload.Title == "the sunken crypt"
	})).Return(nil)

	quest, err := svc.Create(context.Background(), "  the sunken crypt  ", " first noticed on the jobs board ", "Elder Maren", "Hollowbrook")

	require.NoError(t, err)
	assert.Equal(t, 7, quest.ID)
	assert.Equal(t, "the sunken crypt", quest.Title)
	assert.Equal(t, "first noticed on the jobs board", quest.Description)
	assert.True(t, quest.Active)
	repo.AssertExpectations(t)
	bus.AssertExpectations(t)
}

func TestCreate_Validation(t *testing.T) {
	tests := []struct {
		name          string
		title         string
		description   string
		questGiver    string
		locationGiven string
	}{
		{name: "empty title"},
		{name: "blank title", title: "   "},
		{name: "title too long", title: strings.Repeat("a", domain.QuestTitleMaxLen+1)},
		{name: "description too long", title: "ok", description: strings.Repeat("a", domain.QuestDescriptionMaxLen+1)},
		{name: "quest giver too long", title: "ok", questGiver: strings.Repeat("a", domain.QuestGiverMaxLen+1)},
		{name: "location too long", title: "ok", locationGiven: strings.Repeat("a", domain.QuestLocationMaxLen+1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockQuestRepository)
			svc := NewService(repo, nil)

			_, err := svc.Create(context.Background(), tt.title, tt.description, tt.questGiver, tt.locationGiven)

			assert.ErrorIs(t, err, domain.ErrInvalidInput)
			repo.AssertNotCalled(t, "CreateQuest", mock.Anything, mock.Anything)
		})
	}
}

func TestCreate_DuplicateTitle(t *testing.T) {
	repo := new(MockQuestRepository)
	svc := NewService(repo, nil)

	repo.On("CreateQuest", mock.Anything, mock.Anything).Return(domain.ErrQuestAlreadyExists)

	_, err := svc.Create(context.Background(), "fetch the relic", "", "", "")

	assert.ErrorIs(t, err, domain.ErrQuestAlreadyExists)
}

func TestCreate_NilPublisherSkipsEvents(t *testing.T) {
	repo := new(MockQuestRepository)
	svc := NewService(repo, nil)

	repo.On("CreateQuest", mock.Anything, mock.Anything).Return(nil)

	_, err := svc.Create(context.Background(), "escort duty", "", "", "")

	assert.NoError(t, err)
}

func TestCreate_PublishFailureDoesNotFailTheCreate(t *testing.T) {
	repo := new(MockQuestRepository)
	bus := new(MockBus)
	publisher := newTestPublisher(t, bus)
	svc := NewService(repo, publisher)

	repo.On("CreateQuest", mock.Anything, mock.Anything).Return(nil)
	bus.On("Publish", mock.Anything, mock.Anything).Return(errors.New("bus down"))

	_, err := svc.Create(context.Background(), "escort duty", "", "", "")

	assert.NoError(t, err)
}

// ============================================================================
// Modify
// ============================================================================

func TestModify(t *testing.T) {
	existing := func() *domain.Quest {
		return &domain.Quest{
			ID:            3,
			Title:         "escort duty",
			Description:   "meet at the gate",
			QuestGiver:    "Captain Rolfe",
			LocationGiven: "Eastgate",
			Active:        true,
		}
	}
	strPtr := func(s string) *string { return &s }

	t.Run("updates only the provided fields", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 3).Return(existing(), nil)
		repo.On("UpdateQuest", mock.Anything, mock.MatchedBy(func(quest *domain.Quest) bool {
			return quest.Title == "escort the caravan" &&
				quest.Description == "meet at the gate" &&
				quest.LocationGiven == "Westgate"
		})).Return(nil)

		quest, err := svc.Modify(context.Background(), 3, domain.QuestUpdate{
			Title:         strPtr("  escort the caravan "),
			LocationGiven: strPtr("Westgate"),
		})

		require.NoError(t, err)
		assert.Equal(t, "escort the caravan", quest.Title)
		assert.Equal(t, "Captain Rolfe", quest.QuestGiver)
		repo.AssertExpectations(t)
	})

	t.Run("empty update is rejected", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		_, err := svc.Modify(context.Background(), 3, domain.QuestUpdate{})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "GetQuestByID", mock.Anything, mock.Anything)
	})

	t.Run("clearing the title is rejected", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 3).Return(existing(), nil)

		_, err := svc.Modify(context.Background(), 3, domain.QuestUpdate{Title: strPtr("  ")})

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdateQuest", mock.Anything, mock.Anything)
	})

	t.Run("unknown quest", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 42).Return(nil, domain.ErrQuestNotFound)

		_, err := svc.Modify(context.Background(), 42, domain.QuestUpdate{Title: strPtr("ghost quest")})

		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})
}

// ============================================================================
// AddDetail
// ============================================================================

func TestAddDetail(t *testing.T) {
	t.Run("appends with the separator", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 3).Return(&domain.Quest{
			ID: 3, Title: "escort duty", Description: "meet at the gate", Active: true,
		}, nil)
		repo.On("UpdateQuest", mock.Anything, mock.MatchedBy(func(quest *domain.Quest) bool {
			return quest.Description == "meet at the gate"+domain.QuestDetailSeparator+"bandits seen near the ford"
		})).Return(nil)

		quest, err := svc.AddDetail(context.Background(), 3, " bandits seen near the ford ")

		require.NoError(t, err)
		assert.Contains(t, quest.Description, domain.QuestDetailSeparator)
		repo.AssertExpectations(t)
	})

	t.Run("first detail needs no separator", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 3).Return(&domain.Quest{ID: 3, Title: "escort duty", Active: true}, nil)
		repo.On("UpdateQuest", mock.Anything, mock.MatchedBy(func(quest *domain.Quest) bool {
			return quest.Description == "bandits seen near the ford"
		})).Return(nil)

		_, err := svc.AddDetail(context.Background(), 3, "bandits seen near the ford")

		require.NoError(t, err)
		repo.AssertExpectations(t)
	})

	t.Run("empty detail is rejected", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		_, err := svc.AddDetail(context.Background(), 3, "   ")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "GetQuestByID", mock.Anything, mock.Anything)
	})

	t.Run("overflowing the description is rejected", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("GetQuestByID", mock.Anything, 3).Return(&domain.Quest{
			ID: 3, Title: "escort duty",
			Description: strings.Repeat("a", domain.QuestDescriptionMaxLen-5),
			Active:      true,
		}, nil)

		_, err := svc.AddDetail(context.Background(), 3, "this detail does not fit")

		assert.ErrorIs(t, err, domain.ErrInvalidInput)
		repo.AssertNotCalled(t, "UpdateQuest", mock.Anything, mock.Anything)
	})
}

// ============================================================================
// Complete
// ============================================================================

func TestComplete(t *testing.T) {
	t.Run("publishes the completion", func(t *testing.T) {
		repo := new(MockQuestRepository)
		bus := new(MockBus)
		svc := NewService(repo, newTestPublisher(t, bus))

		completedAt := time.Now()
		repo.On("CompleteQuest", mock.Anything, 3).Return(&domain.Quest{
			ID: 3, Title: "escort duty", Active: false, CompletedAt: &completedAt,
		}, nil)
		bus.On("Publish", mock.Anything, mock.MatchedBy(func(evt event.Event) bool {
			payload, ok := evt.Payload.(domain.QuestCompletedPayload)
			return evt.Type == domain.EventTypeQuestCompleted &&
				ok && payload.QuestID == 3 && payload.Title == "escort duty"
		})).Return(nil)

		quest, err := svc.Complete(context.Background(), 3)

		require.NoError(t, err)
		assert.False(t, quest.Active)
		require.NotNil(t, quest.CompletedAt)
		bus.AssertExpectations(t)
	})

	t.Run("already complete", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("CompleteQuest", mock.Anything, 3).Return(nil, domain.ErrQuestAlreadyComplete)

		_, err := svc.Complete(context.Background(), 3)

		assert.ErrorIs(t, err, domain.ErrQuestAlreadyComplete)
	})

	t.Run("unknown quest", func(t *testing.T) {
		repo := new(MockQuestRepository)
		svc := NewService(repo, nil)

		repo.On("CompleteQuest", mock.Anything, 42).Return(nil, domain.ErrQuestNotFound)

		_, err := svc.Complete(context.Background(), 42)

		assert.ErrorIs(t, err, domain.ErrQuestNotFound)
	})
}

// ============================================================================
// Lookups & Listings
// ============================================================================

func TestGetByTitle(t *testing.T) {
	repo := new(MockQuestRepository)
	svc := NewService(repo, nil)

	repo.On("GetQuestByTitle", mock.Anything, "the sunken crypt").Return(&domain.Quest{ID: 3, Title: "The Sunken Crypt"}, nil)

	quest, err := svc.GetByTitle(context.Background(), "  the sunken crypt ")

	require.NoError(t, err)
	assert.Equal(t, 3, quest.ID)

	_, err = svc.GetByTitle(context.Background(), "   ")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestList_FilterRouting(t *testing.T) {
	tests := []struct {
		name       string
		filter     string
		limit      int
		wantFilter string
		wantLimit  int
	}{
		{name: "empty filter lists newest", filter: "", limit: 0, wantFilter: domain.QuestFilterNewest, wantLimit: domain.DefaultQuestListLimit},
		{name: "newest keeps small limits", filter: domain.QuestFilterNewest, limit: 3, wantFilter: domain.QuestFilterNewest, wantLimit: 3},
		{name: "oversized limits are clamped", filter: domain.QuestFilterNewest, limit: 99, wantFilter: domain.QuestFilterNewest, wantLimit: domain.DefaultQuestListLimit},
		{name: "updated", filter: domain.QuestFilterUpdated, limit: 0, wantFilter: domain.QuestFilterUpdated, wantLimit: domain.DefaultQuestListLimit},
		{name: "active", filter: domain.QuestFilterActive, limit: 2, wantFilter: domain.QuestFilterActive, wantLimit: 2},
		{name: "inactive is unbounded", filter: domain.QuestFilterInactive, limit: 3, wantFilter: domain.QuestFilterInactive, wantLimit: 0},
		{name: "all is unbounded", filter: domain.QuestFilterAll, limit: 3, wantFilter: domain.QuestFilterAll, wantLimit: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := new(MockQuestRepository)
			svc := NewService(repo, nil)

			repo.On("ListQuests", mock.Anything, tt.wantFilter, tt.wantLimit).Return([]domain.Quest{}, nil)

			_, err := svc.List(context.Background(), tt.filter, tt.limit)

			require.NoError(t, err)
			repo.AssertExpectations(t)
		})
	}
}

func TestList_UnknownFilter(t *testing.T) {
	repo := new(MockQuestRepository)
	svc := NewService(repo, nil)

	_, err := svc.List(context.Background(), "bogus", 5)

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	repo.AssertNotCalled(t, "ListQuests", mock.Anything, mock.Anything, mock.Anything)
}
