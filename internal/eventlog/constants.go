package eventlog

// DefaultRetentionDays is used when the cleanup job is built with a
// non-positive retention. Retention 0 would delete every logged event.
const DefaultRetentionDays = 30

// JSON payload field keys
const (
	PayloadKeyUsername = "username"
)

// Log messages - service events
const (
	LogMsgPayloadNotSerializable = "Event payload not serializable, skipping log"
	LogMsgFailedToLogEvent       = "Failed to log event to database"
	LogMsgEventLogged            = "Event logged to database"
)

// Log messages - cleanup job
const (
	LogMsgCleanupJobStarting  = "Starting event log cleanup job"
	LogMsgCleanupJobFailed    = "Event log cleanup failed"
	LogMsgCleanupJobCompleted = "Event log cleanup completed"
)

// Log field keys - structured logging fields
const (
	LogFieldType          = "type"
	LogFieldUsername      = "username"
	LogFieldError         = "error"
	LogFieldRetentionDays = "retentionDays"
	LogFieldDuration      = "duration"
	LogFieldDeletedCount  = "deletedCount"
)
