package dice

// ============================================================================
// Parse Failure Reasons
// ============================================================================

// Reasons carried inside ParseError. Kept as constants so tests and the
// handler layer can match on exact wording.
const (
	ReasonEmptyArgument       = "empty roll argument"
	ReasonEmptyClause         = "empty clause"
	ReasonMissingCount        = "missing dice count"
	ReasonMissingSeparator    = "missing 'd' separator"
	ReasonMissingSides        = "missing die sides"
	ReasonMissingModifier     = "missing modifier value"
	ReasonMultipleSigns       = "more than one modifier sign"
	ReasonNonPositiveCount    = "dice count must be positive"
	ReasonNonPositiveSides    = "die sides must be positive"
	ReasonUnexpectedSeparator = "unexpected clause separator"
)

// ReasonUnexpectedTokenFmt formats the reason for a leftover token after a
// complete clause, e.g. a second 'd' separator.
const ReasonUnexpectedTokenFmt = "unexpected %s"

// ============================================================================
// Event Publishing
// ============================================================================

// EventSchemaVersion is the version of the event schema used for roll events
const EventSchemaVersion = "1.0"

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgRollCalled    = "Roll called"
	LogMsgRollEvaluated = "Roll evaluated"
)

// Log context for roll events
const (
	LogContextRollPerformedEvent = "RollPerformed event"
)

// Log reasons and error contexts
const (
	LogReasonEventBusNil = "eventBus is nil"
)

// ============================================================================
// Error Messages (local to dice service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToResolveName = "failed to resolve display name"
	ErrContextFailedToEvaluate    = "failed to evaluate roll"
)
