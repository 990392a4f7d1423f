package postgres

// PostgreSQL Error Codes
const (
	// PgErrorCodeUniqueViolation is the PostgreSQL error code for unique constraint violations
	PgErrorCodeUniqueViolation = "23505"
)

// Error Messages - Transaction Operations
const (
	ErrMsgFailedToBeginTransaction  = "failed to begin transaction"
	ErrMsgFailedToCommitTransaction = "failed to commit transaction"
)

// Error Messages - User Operations
const (
	ErrMsgFailedToInsertUser        = "failed to insert user"
	ErrMsgFailedToUpdateUser        = "failed to update user"
	ErrMsgFailedToGetUserCoreData   = "failed to get user core data"
	ErrMsgFailedToGetUserByUsername = "failed to get user by username"
	ErrMsgFailedToGetUserLinks      = "failed to get user links"
	ErrMsgFailedToScanUserLink      = "failed to scan link"
)

// Error Messages - Platform Operations
const (
	ErrMsgFailedToGetPlatformIDFor = "failed to get platform id for %s"
	ErrMsgFailedToUpsertLinkFor    = "failed to upsert link for %s"
)

// Error Messages - Quest Operations
const (
	ErrMsgFailedToInsertQuest     = "failed to insert quest"
	ErrMsgFailedToGetQuest        = "failed to get quest"
	ErrMsgFailedToGetQuestByTitle = "failed to get quest by title"
	ErrMsgFailedToUpdateQuest     = "failed to update quest"
	ErrMsgFailedToCompleteQuest   = "failed to complete quest"
	ErrMsgFailedToQueryQuests     = "failed to query quests"
	ErrMsgFailedToScanQuest       = "failed to scan quest"
)
