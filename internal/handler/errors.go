package handler

// Generic HTTP error messages for client responses.
// These messages intentionally do not expose internal error details for security reasons.
// Both handlers and tests should reference these constants to maintain consistency.
const (
	// HTTP status messages
	ErrMsgMethodNotAllowed      = "Method not allowed"
	ErrMsgInvalidRequest        = "Invalid request body"
	ErrMsgInvalidRequestSummary = "Invalid request"

	// Query parameter error messages
	ErrMsgMissingQueryParam = "Missing %s query parameter"
	ErrMsgInvalidLimit      = "Invalid limit parameter"
	ErrMsgInvalidQuestID    = "Invalid quest id"

	// Message dispatch error messages
	ErrMsgHandleMessageFailed = "Failed to handle message"

	// Dice error messages
	ErrMsgRollFailed = "Failed to roll dice"

	// User management error messages
	ErrMsgRegisterUserFailed   = "Failed to register user"
	ErrMsgGetUserFailed        = "Failed to get user"
	ErrMsgUpdateUsernameFailed = "Failed to update username"

	// Quest log error messages
	ErrMsgCreateQuestFailed   = "Failed to create quest"
	ErrMsgGetQuestFailed      = "Failed to get quest"
	ErrMsgModifyQuestFailed   = "Failed to modify quest"
	ErrMsgDetailQuestFailed   = "Failed to add quest detail"
	ErrMsgCompleteQuestFailed = "Failed to complete quest"
	ErrMsgListQuestsFailed    = "Failed to list quests"
)
