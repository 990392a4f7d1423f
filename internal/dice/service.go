package dice

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// Service defines the interface for dice rolling operations
type Service interface {
	// Roll parses and evaluates a roll argument such as "2d6+3" or
	// "1d20 and 2d4-1" and returns the rendered report. Parse failures
	// unwrap to domain.ErrRollParse or domain.ErrRollOutOfRange.
	Roll(ctx context.Context, platform, platformID, username, argument string) (*domain.RollReport, error)
}

// UserResolver defines the user service methods needed by dice
type UserResolver interface {
	// ResolveDisplayName returns the name to show for a platform user,
	// registering the user on first contact.
	ResolveDisplayName(ctx context.Context, platform, platformID, username string) (string, error)
}

type service struct {
	resolver UserResolver
	source   Source
	eventBus event.Bus
}

// NewService creates a new dice service. A nil source falls back to the
// production randomness source.
func NewService(resolver UserResolver, source Source, eventBus event.Bus) Service {
	if source == nil {
		source = NewSource()
	}
	return &service{
		resolver: resolver,
		source:   source,
		eventBus: eventBus,
	}
}

// Roll handles a roll command end to end. The display name is resolved
// exactly once, after parsing and before any randomness is drawn, so a
// failed lookup never consumes entropy.
func (s *service) Roll(ctx context.Context, platform, platformID, username, argument string) (*domain.RollReport, error) {
	log := logger.FromContext(ctx)
	log.Info(LogMsgRollCalled, "platform", platform, "username", username, "argument", argument)

	expressions, err := ParseCommand(argument)
	if err != nil {
		s.publishRollPerformedEvent(ctx, domain.RollPerformedPayload{
			Username:  username,
			Platform:  platform,
			Timestamp: time.Now().Unix(),
		})
		return nil, err
	}

	displayName, err := s.resolver.ResolveDisplayName(ctx, platform, platformID, username)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToResolveName, err)
	}

	outcomes, err := Combine(expressions, s.source)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrContextFailedToEvaluate, err)
	}

	diceRolled := 0
	total := 0
	for _, outcome := range outcomes {
		diceRolled += outcome.Expression.Count
		total += outcome.ModifiedTotal
	}
	log.Info(LogMsgRollEvaluated, "username", displayName, "clauses", len(outcomes), "dice", diceRolled, "total", total)

	s.publishRollPerformedEvent(ctx, domain.RollPerformedPayload{
		Username:    displayName,
		Platform:    platform,
		ClauseCount: len(outcomes),
		DiceRolled:  diceRolled,
		Total:       total,
		ParseOK:     true,
		Timestamp:   time.Now().Unix(),
	})

	return &domain.RollReport{
		Username: displayName,
		Message:  FormatCombined(displayName, outcomes),
		Outcomes: outcomes,
	}, nil
}

func (s *service) publishRollPerformedEvent(ctx context.Context, payload domain.RollPerformedPayload) {
	if s.eventBus == nil {
		logger.FromContext(ctx).Error("Failed to publish "+LogContextRollPerformedEvent, "reason", LogReasonEventBusNil)
		return
	}
	err := s.eventBus.Publish(ctx, event.Event{
		Version: EventSchemaVersion,
		Type:    domain.EventTypeRollPerformed,
		Payload: payload,
	})
	if err != nil {
		logger.FromContext(ctx).Error("Failed to publish "+LogContextRollPerformedEvent, "error", err)
	}
}
