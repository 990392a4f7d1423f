package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/eventlog"
	"github.com/osse101/DungeonBot_Go/internal/metrics"
)

// EventHandlerDependencies carries what RegisterEventHandlers needs wired up.
type EventHandlerDependencies struct {
	EventBus        event.Bus
	EventLogService eventlog.Service
}

// RegisterEventHandlers attaches the standing subscribers to the bus: the
// Prometheus event metrics collector and the event log service that
// persists published events.
func RegisterEventHandlers(deps EventHandlerDependencies) error {
	collector := metrics.NewEventMetricsCollector()
	if err := collector.Register(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedRegisterMetrics, err)
	}
	slog.Info(LogMsgMetricsCollectorRegistered)

	if err := deps.EventLogService.Subscribe(deps.EventBus); err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedSubscribeEventLogger, err)
	}
	slog.Info(LogMsgEventLoggerInitialized)

	return nil
}
