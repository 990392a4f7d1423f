package quest

// ============================================================================
// Log Messages
// ============================================================================

// Log operation identifiers
const (
	LogMsgQuestCreated     = "Quest created"
	LogMsgQuestModified    = "Quest modified"
	LogMsgQuestDetailAdded = "Quest detail added"
	LogMsgQuestCompleted   = "Quest completed"
)

// ============================================================================
// Error Messages (local to quest service)
// ============================================================================

// Error context messages for wrapped errors
const (
	ErrContextFailedToCreateQuest   = "failed to create quest"
	ErrContextFailedToModifyQuest   = "failed to modify quest"
	ErrContextFailedToAddDetail     = "failed to add quest detail"
	ErrContextFailedToCompleteQuest = "failed to complete quest"
	ErrContextFailedToListQuests    = "failed to list quests"
	ErrContextFailedToGetQuest      = "failed to get quest"
)

// ============================================================================
// Formatting
// ============================================================================

// Quest log status labels
const (
	StatusActive    = "active"
	StatusCompleted = "completed"
)

// EmptyQuestLogMessage is returned when a listing matches no quests
const EmptyQuestLogMessage = "The quest log is empty."
