package handler

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/user"
)

// =============================================================================
// Local service mocks for handler tests
// =============================================================================

// MockDispatchService mocks dispatch.Service
type MockDispatchService struct {
	mock.Mock
}

func (m *MockDispatchService) Handle(ctx context.Context, msg domain.IncomingMessage) (*domain.DispatchResult, error) {
	args := m.Called(ctx, msg)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.DispatchResult), args.Error(1)
}

// MockDiceService mocks dice.Service
type MockDiceService struct {
	mock.Mock
}

func (m *MockDiceService) Roll(ctx context.Context, platform, platformID, username, argument string) (*domain.RollReport, error) {
	args := m.Called(ctx, platform, platformID, username, argument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollReport), args.Error(1)
}

// MockUserService mocks user.Service
type MockUserService struct {
	mock.Mock
}

func (m *MockUserService) RegisterUser(ctx context.Context, platform, platformID, username string) (domain.User, error) {
	args := m.Called(ctx, platform, platformID, username)
	return args.Get(0).(domain.User), args.Error(1)
}

func (m *MockUserService) FindUserByPlatformID(ctx context.Context, platform, platformID string) (*domain.User, error) {
	args := m.Called(ctx, platform, platformID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) GetUserByPlatformUsername(ctx context.Context, platform, username string) (*domain.User, error) {
	args := m.Called(ctx, platform, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) UpdateUsername(ctx context.Context, platform, platformID, newUsername string) (*domain.User, error) {
	args := m.Called(ctx, platform, platformID, newUsername)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *MockUserService) ResolveDisplayName(ctx context.Context, platform, platformID, fallbackUsername string) (string, error) {
	args := m.Called(ctx, platform, platformID, fallbackUsername)
	return args.String(0), args.Error(1)
}

func (m *MockUserService) GetCacheStats() user.CacheStats {
	args := m.Called()
	return args.Get(0).(user.CacheStats)
}

// MockQuestService mocks quest.Service
type MockQuestService struct {
	mock.Mock
}

func (m *MockQuestService) Create(ctx context.Context, title, description, questGiver, locationGiven string) (*domain.Quest, error) {
	args := m.Called(ctx, title, description, questGiver, locationGiven)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) Modify(ctx context.Context, id int, update domain.QuestUpdate) (*domain.Quest, error) {
	args := m.Called(ctx, id, update)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) AddDetail(ctx context.Context, id int, detail string) (*domain.Quest, error) {
	args := m.Called(ctx, id, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) Complete(ctx context.Context, id int) (*domain.Quest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) GetByID(ctx context.Context, id int) (*domain.Quest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) GetByTitle(ctx context.Context, title string) (*domain.Quest, error) {
	args := m.Called(ctx, title)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Quest), args.Error(1)
}

func (m *MockQuestService) List(ctx context.Context, filter string, limit int) ([]domain.Quest, error) {
	args := m.Called(ctx, filter, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) ListNewest(ctx context.Context, limit int) ([]domain.Quest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) ListLastUpdated(ctx context.Context, limit int) ([]domain.Quest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) ListActive(ctx context.Context, limit int) ([]domain.Quest, error) {
	args := m.Called(ctx, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) ListInactive(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}

func (m *MockQuestService) ListAll(ctx context.Context) ([]domain.Quest, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Quest), args.Error(1)
}
