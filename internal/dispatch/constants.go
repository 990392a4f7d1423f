package dispatch

import (
	"fmt"

	"github.com/osse101/DungeonBot_Go/internal/domain"
)

// ============================================================================
// Log Messages
// ============================================================================

const (
	LogMsgMessageDispatched = "Message dispatched"
	LogMsgSightingFailed    = "Failed to register user sighting"
)

// Log context for message events
const (
	LogContextMessageHandledEvent = "MessageHandled event"
)

// ============================================================================
// Chat Replies
// ============================================================================

// Replies posted when a roll command is recognized but rejected.
var (
	ReplyRollUsage = fmt.Sprintf(
		"That roll didn't parse. Usage: %s%s <count>d<sides>[+/-modifier], for example %s%s 2d6+1.",
		domain.CommandPrefix, domain.CommandRoll, domain.CommandPrefix, domain.CommandRoll)
	ReplyRollOutOfRange = fmt.Sprintf(
		"That roll is out of range. Keep it to %d dice of %d sides, with modifiers up to %d.",
		domain.MaxRollCount, domain.MaxRollSides, domain.MaxRollModifier)
)
