package event

import (
	"context"
	"encoding/json"
	"errors"
	"os"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// flakyBus fails publishes according to shouldFail and records every call
type flakyBus struct {
	mu           sync.Mutex
	calls        []Event
	shouldFail   func(call int) bool
	publishDelay time.Duration
}

func (b *flakyBus) Publish(ctx context.Context, evt Event) error {
	b.mu.Lock()
	b.calls = append(b.calls, evt)
	call := len(b.calls)
	b.mu.Unlock()

	if b.publishDelay > 0 {
		time.Sleep(b.publishDelay)
	}
	if b.shouldFail != nil && b.shouldFail(call) {
		return errors.New("bus rejected event")
	}
	return nil
}

func (b *flakyBus) Subscribe(eventType Type, handler Handler) {}

func (b *flakyBus) CallCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.calls)
}

func (b *flakyBus) Calls() []Event {
	b.mu.Lock()
	defer b.mu.Unlock()
	return append([]Event{}, b.calls...)
}

func TestResilientPublisher_PublishFirstTry(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"
	bus := &flakyBus{}

	rp, err := NewResilientPublisher(bus, 3, 100*time.Millisecond, deadLetterPath)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewQuestCompletedEvent(7, "The Sunken Crypt"))

	time.Sleep(50 * time.Millisecond)

	require.Equal(t, 1, bus.CallCount(), "A clean publish needs exactly one attempt")
	assert.Equal(t, Type("quest.completed"), bus.Calls()[0].Type)

	content, _ := os.ReadFile(deadLetterPath)
	assert.Empty(t, content, "No dead-letter entries expected")
}

func TestResilientPublisher_RetryAfterFailure(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	// First attempt fails, the retry succeeds
	bus := &flakyBus{
		shouldFail: func(call int) bool { return call == 1 },
	}

	rp, err := NewResilientPublisher(bus, 3, 100*time.Millisecond, deadLetterPath)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewMessageHandledEvent("twitch", "roll"))

	// Initial attempt plus one backoff interval
	time.Sleep(300 * time.Millisecond)

	assert.Equal(t, 2, bus.CallCount(), "Expected the initial attempt plus one retry")

	content, _ := os.ReadFile(deadLetterPath)
	assert.Empty(t, content, "A recovered event must not reach the dead letter")
}

func TestResilientPublisher_DeadLetterAfterExhaustion(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	bus := &flakyBus{
		shouldFail: func(call int) bool { return true },
	}

	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, deadLetterPath)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewQuestCreatedEvent(12, "Clear the Old Mine"))

	// Backoff ladder: 50ms + 100ms + 200ms plus processing slack
	time.Sleep(500 * time.Millisecond)

	assert.GreaterOrEqual(t, bus.CallCount(), 4, "Initial attempt plus three retries expected")

	content, err := os.ReadFile(deadLetterPath)
	require.NoError(t, err)
	require.NotEmpty(t, content, "Exhausted event must land in the dead letter")

	var entry DeadLetterEntry
	require.NoError(t, json.Unmarshal(content, &entry), "Dead-letter lines are JSON")

	assert.Equal(t, DeadLetterSchemaVersion, entry.SchemaVersion)
	assert.Equal(t, Type("quest.created"), entry.Event.Type)
	assert.NotEmpty(t, entry.LastError)
	assert.GreaterOrEqual(t, entry.Attempts, 1)
}

func TestResilientPublisher_QueueOverflowGoesToDeadLetter(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	// Always failing and slow, so the retry queue backs up
	bus := &flakyBus{
		shouldFail:   func(call int) bool { return true },
		publishDelay: 50 * time.Millisecond,
	}

	// Hand-built publisher with a tiny queue to force overflow
	rp := &ResilientPublisher{
		bus:        bus,
		retryQueue: make(chan retryEntry, 5),
		maxRetries: 3,
		retryDelay: 50 * time.Millisecond,
		shutdown:   make(chan struct{}),
	}
	dl, err := NewDeadLetterWriter(deadLetterPath)
	require.NoError(t, err)
	rp.deadLetter = dl

	rp.wg.Add(1)
	go rp.retryWorker()
	defer rp.Shutdown(context.Background())

	for i := 0; i < 10; i++ {
		rp.PublishWithRetry(context.Background(), NewMessageHandledEvent("discord", "help"))
	}

	time.Sleep(200 * time.Millisecond)

	content, err := os.ReadFile(deadLetterPath)
	require.NoError(t, err)
	assert.NotEmpty(t, content, "Overflowed events must go straight to the dead letter")
}

func TestResilientPublisher_ShutdownDrainsQueue(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	var calls int32
	// First two publishes fail so events queue up, then the bus recovers
	bus := &flakyBus{
		shouldFail: func(call int) bool {
			return atomic.AddInt32(&calls, 1) <= 2
		},
	}

	rp, err := NewResilientPublisher(bus, 5, 50*time.Millisecond, deadLetterPath)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		rp.PublishWithRetry(context.Background(), NewQuestCompletedEvent(i+1, "Escort the Caravan"))
	}

	time.Sleep(100 * time.Millisecond)

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	require.NoError(t, rp.Shutdown(ctx), "Shutdown must finish inside the deadline")
	assert.GreaterOrEqual(t, bus.CallCount(), 3, "Queued events get a final attempt during shutdown")
}

func TestResilientPublisher_BackoffDoubles(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	var mu sync.Mutex
	var attempts []time.Time

	bus := &flakyBus{
		shouldFail: func(call int) bool {
			mu.Lock()
			attempts = append(attempts, time.Now())
			mu.Unlock()
			return call < 4
		},
	}

	baseDelay := 100 * time.Millisecond
	rp, err := NewResilientPublisher(bus, 5, baseDelay, deadLetterPath)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	rp.PublishWithRetry(context.Background(), NewQuestCreatedEvent(3, "Light the Harbor Beacon"))

	time.Sleep(time.Second)

	mu.Lock()
	defer mu.Unlock()
	require.GreaterOrEqual(t, len(attempts), 3, "Expected at least three attempts")

	// Generous tolerance, timers under CI load drift
	firstGap := attempts[1].Sub(attempts[0])
	secondGap := attempts[2].Sub(attempts[1])
	assert.InDelta(t, baseDelay.Milliseconds(), firstGap.Milliseconds(), 50)
	assert.InDelta(t, (2 * baseDelay).Milliseconds(), secondGap.Milliseconds(), 50)
}

func TestResilientPublisher_ConcurrentPublishes(t *testing.T) {
	deadLetterPath := t.TempDir() + "/deadletter.jsonl"

	bus := &flakyBus{}
	rp, err := NewResilientPublisher(bus, 3, 50*time.Millisecond, deadLetterPath)
	require.NoError(t, err)
	defer rp.Shutdown(context.Background())

	const goroutines = 10
	const perGoroutine = 5

	var wg sync.WaitGroup
	wg.Add(goroutines)
	for i := 0; i < goroutines; i++ {
		go func(id int) {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				rp.PublishWithRetry(context.Background(), NewQuestCompletedEvent(id*perGoroutine+j, "concurrent"))
			}
		}(i)
	}
	wg.Wait()

	time.Sleep(100 * time.Millisecond)

	assert.Equal(t, goroutines*perGoroutine, bus.CallCount())
}
