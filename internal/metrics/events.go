package metrics

import (
	"context"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// EventMetricsCollector subscribes to events and records metrics
type EventMetricsCollector struct{}

// NewEventMetricsCollector creates a new event metrics collector
func NewEventMetricsCollector() *EventMetricsCollector {
	return &EventMetricsCollector{}
}

// Register subscribes to all events
func (e *EventMetricsCollector) Register(bus event.Bus) error {
	// Subscribe to all event types we care about
	eventTypes := []event.Type{
		domain.EventTypeRollPerformed,
		domain.EventTypeQuestCreated,
		domain.EventTypeQuestCompleted,
		domain.EventTypeMessageHandled,
	}

	for _, eventType := range eventTypes {
		bus.Subscribe(eventType, e.HandleEvent)
	}

	return nil
}

// HandleEvent processes events and updates metrics
func (e *EventMetricsCollector) HandleEvent(ctx context.Context, evt event.Event) error {
	log := logger.FromContext(ctx)

	// Always increment event counter
	EventsPublished.WithLabelValues(string(evt.Type)).Inc()

	// Record business metrics based on event type
	switch evt.Type {
	case domain.EventTypeRollPerformed:
		payload, err := event.DecodePayload[domain.RollPerformedPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		if !payload.ParseOK {
			RollParseFailures.Inc()
			break
		}
		RollsPerformed.Inc()
		DiceRolled.Add(float64(payload.DiceRolled))

	case domain.EventTypeQuestCreated:
		QuestsCreated.Inc()

	case domain.EventTypeQuestCompleted:
		QuestsCompleted.Inc()

	case domain.EventTypeMessageHandled:
		payload, err := event.DecodePayload[domain.MessageHandledPayload](evt.Payload)
		if err != nil {
			log.Debug(LogMsgPayloadDecodeFailed, "type", evt.Type, "error", err)
			return nil
		}
		CommandsHandled.WithLabelValues(payload.Command).Inc()
	}

	log.Debug(LogMsgMetricsRecorded, "type", evt.Type)
	return nil
}
