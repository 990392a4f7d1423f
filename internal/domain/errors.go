package domain

import "errors"

// Error message string constants - single source of truth for error messages
// Use these in assert.Contains() checks when testing error messages
const (
	// User errors
	ErrMsgUserNotFound         = "user not found"
	ErrMsgFailedToGetUser      = "failed to get user"
	ErrMsgFailedToRegisterUser = "failed to register user"

	// Roll errors
	ErrMsgRollParse      = "invalid roll notation"
	ErrMsgRollOutOfRange = "roll notation out of range"
	ErrMsgRollInvalid    = "invalid roll expression"

	// Quest errors
	ErrMsgQuestNotFound        = "quest not found"
	ErrMsgQuestAlreadyExists   = "quest already exists"
	ErrMsgQuestAlreadyComplete = "quest already completed"

	// Help errors
	ErrMsgHelpTopicNotFound = "help topic not found"

	// Database/System errors
	ErrMsgConnectionTimeout = "connection timeout"
	ErrMsgDatabaseError     = "database error"

	// Validation errors
	ErrMsgInvalidInput    = "invalid input"
	ErrMsgInvalidPlatform = "invalid platform"
)

// Common domain errors
// These errors should be used consistently across all layers of the application.
// Wrap these errors with fmt.Errorf("%w: %s", domain.ErrXxx, details) for additional context.
var (
	// User errors
	ErrUserNotFound         = errors.New(ErrMsgUserNotFound)
	ErrFailedToGetUser      = errors.New(ErrMsgFailedToGetUser)
	ErrFailedToRegisterUser = errors.New(ErrMsgFailedToRegisterUser)

	// Roll errors
	ErrRollParse      = errors.New(ErrMsgRollParse)
	ErrRollOutOfRange = errors.New(ErrMsgRollOutOfRange)
	ErrRollInvalid    = errors.New(ErrMsgRollInvalid)

	// Quest errors
	ErrQuestNotFound        = errors.New(ErrMsgQuestNotFound)
	ErrQuestAlreadyExists   = errors.New(ErrMsgQuestAlreadyExists)
	ErrQuestAlreadyComplete = errors.New(ErrMsgQuestAlreadyComplete)

	// Help errors
	ErrHelpTopicNotFound = errors.New(ErrMsgHelpTopicNotFound)

	// Database/System errors
	ErrConnectionTimeout = errors.New(ErrMsgConnectionTimeout)
	ErrDatabaseError     = errors.New(ErrMsgDatabaseError)

	// Validation errors
	ErrInvalidInput = errors.New(ErrMsgInvalidInput)

	// Platform errors
	ErrInvalidPlatform = errors.New(ErrMsgInvalidPlatform)
)
