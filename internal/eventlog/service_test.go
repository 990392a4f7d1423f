package eventlog

import (
	"context"
	"errors"
	"testing"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockEventBus is a mock implementation of event.Bus
type MockEventBus struct {
	mock.Mock
}

func (m *MockEventBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockEventBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}

func TestService_Subscribe(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	mockBus := new(MockEventBus)

	// Expect subscription to all event types
	eventTypes := []event.Type{
		domain.EventTypeRollPerformed,
		domain.EventTypeQuestCreated,
		domain.EventTypeQuestCompleted,
		domain.EventTypeMessageHandled,
	}

	for _, et := range eventTypes {
		mockBus.On("Subscribe", et, mock.Anything).Return()
	}

	err := service.Subscribe(mockBus)
	assert.NoError(t, err)
	mockBus.AssertExpectations(t)
}

func TestService_HandleEvent_AttributesUsername(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.Event{
		Version: event.EventSchemaVersion,
		Type:    domain.EventTypeRollPerformed,
		Payload: domain.RollPerformedPayload{
			Username:    "brynn",
			Platform:    domain.PlatformTwitch,
			ClauseCount: 1,
			DiceRolled:  2,
			Total:       9,
			ParseOK:     true,
			Timestamp:   1700000000,
		},
	}

	username := "brynn"
	mockRepo.On("LogEvent", ctx, string(domain.EventTypeRollPerformed), &username,
		mock.MatchedBy(func(payload map[string]interface{}) bool {
			// JSON round-trip turns the typed payload into a map with float64 numbers
			return payload[PayloadKeyUsername] == "brynn" && payload["parse_ok"] == true
		}), mock.Anything).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_NoUsernameInPayload(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewQuestCreatedEvent(7, "Clear the rat cellar")

	mockRepo.On("LogEvent", ctx, string(domain.EventTypeQuestCreated), (*string)(nil),
		mock.MatchedBy(func(payload map[string]interface{}) bool {
			return payload["title"] == "Clear the rat cellar"
		}), mock.Anything).Return(nil)

	err := svc.handleEvent(ctx, evt)
	assert.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestService_HandleEvent_RepositoryError(t *testing.T) {
	mockRepo := new(MockRepository)
	svc := NewService(mockRepo).(*service)
	ctx := context.Background()

	evt := event.NewMessageHandledEvent(domain.PlatformDiscord, "roll")

	repoErr := errors.New("insert failed")
	mockRepo.On("LogEvent", ctx, string(domain.EventTypeMessageHandled), (*string)(nil),
		mock.Anything, mock.Anything).Return(repoErr)

	err := svc.handleEvent(ctx, evt)
	assert.ErrorIs(t, err, repoErr)
	mockRepo.AssertExpectations(t)
}

func TestService_CleanupOldEvents(t *testing.T) {
	mockRepo := new(MockRepository)
	service := NewService(mockRepo)
	ctx := context.Background()

	mockRepo.On("CleanupOldEvents", ctx, 10).Return(int64(5), nil)

	count, err := service.CleanupOldEvents(ctx, 10)
	assert.NoError(t, err)
	assert.Equal(t, int64(5), count)
	mockRepo.AssertExpectations(t)
}
