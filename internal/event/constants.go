package event

import "time"

// EventSchemaVersion is stamped on every event envelope so consumers can
// detect payload shape changes.
const EventSchemaVersion = "1.0"

// RetryQueueBufferSize caps the in-flight retry queue. Overflow goes
// straight to the dead-letter file instead of blocking publishers.
const RetryQueueBufferSize = 1000

// DeadLetterFilePermissions is the mode for newly created dead-letter files
const DeadLetterFilePermissions = 0644

// Log messages for the retry pipeline
const (
	LogMsgEventPublishFailed     = "Event publish failed, queuing for retry"
	LogMsgRetryQueueFull         = "Retry queue full, event dropped to dead-letter"
	LogMsgDeadLetterWriteFailed  = "Failed to write to dead letter"
	LogMsgEventRetryExhausted    = "Event retry exhausted, writing to dead-letter"
	LogMsgEventRetryFailed       = "Event retry failed, scheduling next attempt"
	LogMsgEventRetrySucceeded    = "Event retry succeeded"
	LogMsgEventDroppedShutdown   = "Event dropped during shutdown"
	LogMsgQueueDrainedShutdown   = "Drained retry queue during shutdown"
	LogMsgShutdownTimeout        = "Resilient publisher shutdown timed out"
	LogMsgDeadLetterWriteFailedS = "Failed to write to dead letter shutdown"

	LogMsgHandlerErrorFormat = "encountered %d errors while handling event %s: %v"
)

// CalculateRetryDelay returns the exponential backoff delay for the given
// attempt: baseDelay, 2x, 4x, 8x and so on.
func CalculateRetryDelay(baseDelay time.Duration, attempt int) time.Duration {
	return baseDelay * time.Duration(1<<(attempt-1))
}
