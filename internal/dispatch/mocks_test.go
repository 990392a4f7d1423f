package dispatch

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
)

// ============================================================================
// Mock Roller
// ============================================================================

// MockRoller is a testify mock for the Roller interface
type MockRoller struct {
	mock.Mock
}

func (m *MockRoller) Roll(ctx context.Context, platform, platformID, username, argument string) (*domain.RollReport, error) {
	args := m.Called(ctx, platform, platformID, username, argument)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.RollReport), args.Error(1)
}

// ============================================================================
// Mock Help Provider
// ============================================================================

// MockHelpProvider is a testify mock for the HelpProvider interface
type MockHelpProvider struct {
	mock.Mock
}

func (m *MockHelpProvider) Describe(topicName, platform string) string {
	args := m.Called(topicName, platform)
	return args.String(0)
}

// ============================================================================
// Mock User Resolver
// ============================================================================

// MockUserResolver is a testify mock for the UserResolver interface
type MockUserResolver struct {
	mock.Mock
}

func (m *MockUserResolver) ResolveDisplayName(ctx context.Context, platform, platformID, username string) (string, error) {
	args := m.Called(ctx, platform, platformID, username)
	return args.String(0), args.Error(1)
}

// ============================================================================
// Mock Event Bus
// ============================================================================

// MockBus is a testify mock for event.Bus
type MockBus struct {
	mock.Mock
}

func (m *MockBus) Publish(ctx context.Context, evt event.Event) error {
	args := m.Called(ctx, evt)
	return args.Error(0)
}

func (m *MockBus) Subscribe(eventType event.Type, handler event.Handler) {
	m.Called(eventType, handler)
}
