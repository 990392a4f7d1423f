package dice

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/stretchr/testify/mock"
)

// scriptedSource replays queued draws. The values are Intn results, so a
// die face f is scripted as f-1. Exhausted scripts return 0. Every n passed
// to Intn is recorded for assertions.
type scriptedSource struct {
	values []int
	pos    int
	ns     []int
}

func (s *scriptedSource) Intn(n int) int {
	s.ns = append(s.ns, n)
	if s.pos >= len(s.values) {
		return 0
	}
	v := s.values[s.pos]
	s.pos++
	return v
}

// countingSource counts draws without consuming a script
type countingSource struct {
	calls int
}

func (s *countingSource) Intn(n int) int {
	s.calls++
	return 0
}

// MockUserResolver
type MockUserResolver struct {
	mock.Mock
}

func (m *MockUserResolver) ResolveDisplayName(ctx context.Context, platform, platformID, username string) (string, error) {
	args := m.Called(ctx, platform, platformID, username)
	return args.String(0), args.Error(1)
}

// MockBus
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
