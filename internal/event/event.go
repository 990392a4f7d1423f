package event

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// Type represents the type of an event
type Type string

// Metadata defines the type for event metadata
type Metadata interface{}

// Event represents a generic event in the system
type Event struct {
	Version  string      `json:"version"` // Event schema version (e.g., "1.0")
	Type     Type        `json:"type"`
	Payload  interface{} `json:"payload"`
	Metadata Metadata    `json:"metadata"`
}

// GetMetadataValue extracts a value from the event metadata safely
func (e Event) GetMetadataValue(key string) interface{} {
	if e.Metadata == nil {
		return nil
	}

	if m, ok := e.Metadata.(map[string]interface{}); ok {
		return m[key]
	}

	return nil
}

// Type-safe event constructors

// NewQuestCreatedEvent creates a quest.created event with a typed payload
func NewQuestCreatedEvent(questID int, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeQuestCreated,
		Payload: domain.QuestCreatedPayload{
			QuestID:   questID,
			Title:     title,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewQuestCompletedEvent creates a quest.completed event with a typed payload
func NewQuestCompletedEvent(questID int, title string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeQuestCompleted,
		Payload: domain.QuestCompletedPayload{
			QuestID:   questID,
			Title:     title,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// NewMessageHandledEvent creates a message.handled event with a typed payload
func NewMessageHandledEvent(platform, command string) Event {
	return Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeMessageHandled,
		Payload: domain.MessageHandledPayload{
			Platform:  platform,
			Command:   command,
			Timestamp: time.Now().Unix(),
		},
		Metadata: nil,
	}
}

// Handler is a function that handles an event
type Handler func(ctx context.Context, event Event) error

// Bus defines the interface for an event bus
type Bus interface {
	Publish(ctx context.Context, event Event) error
	Subscribe(eventType Type, handler Handler)
}

// MemoryBus is an in-memory implementation of the Event Bus
type MemoryBus struct {
	handlers       map[Type][]Handler
	onHandlerError func(eventType Type, err error)
	mu             sync.RWMutex
}

// NewMemoryBus creates a new MemoryBus
func NewMemoryBus() *MemoryBus {
	return &MemoryBus{
		handlers: make(map[Type][]Handler),
	}
}

// OnHandlerError registers a callback invoked once per handler failure
func (b *MemoryBus) OnHandlerError(fn func(eventType Type, err error)) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.onHandlerError = fn
}

// Publish publishes an event to all subscribers
func (b *MemoryBus) Publish(ctx context.Context, event Event) error {
	b.mu.RLock()
	handlers, ok := b.handlers[event.Type]
	onErr := b.onHandlerError
	b.mu.RUnlock()

	if !ok {
		return nil
	}

	// Handlers run synchronously. With configuration these could be
	// dispatched to a worker pool or run in goroutines.
	var errs []error
	for _, handler := range handlers {
		if err := handler(ctx, event); err != nil {
			if onErr != nil {
				onErr(event.Type, err)
			}
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf(LogMsgHandlerErrorFormat, len(errs), event.Type, errs)
	}

	return nil
}

// Subscribe subscribes a handler to an event type
func (b *MemoryBus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}
