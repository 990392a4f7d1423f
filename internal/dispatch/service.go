package dispatch

import (
	"context"
	"errors"
	"strings"

	"github.com/osse101/DungeonBot_Go/internal/domain"
	"github.com/osse101/DungeonBot_Go/internal/event"
	"github.com/osse101/DungeonBot_Go/internal/logger"
)

// Roller defines the dice service methods needed by the dispatcher
type Roller interface {
	Roll(ctx context.Context, platform, platformID, username, argument string) (*domain.RollReport, error)
}

// HelpProvider defines the help service methods needed by the dispatcher
type HelpProvider interface {
	Describe(topicName, platform string) string
}

// UserResolver defines the user service methods needed by the dispatcher
type UserResolver interface {
	ResolveDisplayName(ctx context.Context, platform, platformID, username string) (string, error)
}

// Service defines the interface for chat message dispatching
type Service interface {
	// Handle routes one incoming chat message. Recognized commands return
	// Handled=true with the reply the gateway should post; plain chat and
	// unknown commands return Handled=false and no reply, but the sender
	// is still registered as seen.
	Handle(ctx context.Context, msg domain.IncomingMessage) (*domain.DispatchResult, error)
}

type service struct {
	roller   Roller
	help     HelpProvider
	resolver UserResolver
	eventBus event.Bus
}

// NewService creates a new dispatch service
func NewService(roller Roller, help HelpProvider, resolver UserResolver, eventBus event.Bus) Service {
	return &service{
		roller:   roller,
		help:     help,
		resolver: resolver,
		eventBus: eventBus,
	}
}

func (s *service) Handle(ctx context.Context, msg domain.IncomingMessage) (*domain.DispatchResult, error) {
	log := logger.FromContext(ctx)

	text := strings.TrimSpace(msg.Text)
	if !strings.HasPrefix(text, domain.CommandPrefix) {
		s.registerSighting(ctx, msg)
		return &domain.DispatchResult{Handled: false}, nil
	}

	command, argument := splitCommand(strings.TrimPrefix(text, domain.CommandPrefix))

	var reply string
	switch command {
	case domain.CommandRoll:
		// The roll path resolves (and so registers) the sender inside
		// the dice service.
		report, err := s.roller.Roll(ctx, msg.Platform, msg.PlatformID, msg.Username, argument)
		switch {
		case err == nil:
			reply = report.Message
		case errors.Is(err, domain.ErrRollOutOfRange):
			reply = ReplyRollOutOfRange
		case errors.Is(err, domain.ErrRollParse):
			reply = ReplyRollUsage
		default:
			return nil, err
		}

	case domain.CommandHelp:
		s.registerSighting(ctx, msg)
		topic := ""
		if fields := strings.Fields(argument); len(fields) > 0 {
			topic = fields[0]
		}
		reply = s.help.Describe(topic, msg.Platform)

	default:
		s.registerSighting(ctx, msg)
		return &domain.DispatchResult{Handled: false}, nil
	}

	log.Info(LogMsgMessageDispatched, "platform", msg.Platform, "command", command)
	s.publishMessageHandledEvent(ctx, msg.Platform, command)

	return &domain.DispatchResult{
		Handled: true,
		Command: command,
		Reply:   reply,
	}, nil
}

// splitCommand separates the command word from its argument.
// Commands match ignoring case.
func splitCommand(text string) (string, string) {
	parts := strings.SplitN(text, " ", 2)
	command := strings.ToLower(parts[0])
	if len(parts) == 1 {
		return command, ""
	}
	return command, strings.TrimSpace(parts[1])
}

// registerSighting records that the sender was seen chatting. Failures are
// logged and swallowed; dispatching plain chat must never fail.
func (s *service) registerSighting(ctx context.Context, msg domain.IncomingMessage) {
	if _, err := s.resolver.ResolveDisplayName(ctx, msg.Platform, msg.PlatformID, msg.Username); err != nil {
		logger.FromContext(ctx).Debug(LogMsgSightingFailed, "error", err, "platform", msg.Platform, "platformID", msg.PlatformID)
	}
}

func (s *service) publishMessageHandledEvent(ctx context.Context, platform, command string) {
	if s.eventBus == nil {
		return
	}
	evt := event.NewMessageHandledEvent(platform, command)
	if err := s.eventBus.Publish(ctx, evt); err != nil {
		logger.FromContext(ctx).Error("Failed to publish "+LogContextMessageHandledEvent, "error", err)
	}
}
