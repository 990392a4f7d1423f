package bootstrap

import "time"

// File system permissions for directories and log files created at startup.
const (
	DirPermission     = 0755
	LogFilePermission = 0666
)

// Log file naming and retention.
const (
	LogFileTimestampFormat = "2006-01-02_15-04-05"
	LogFileNamePattern     = "session_%s.log"
	LogFileExtension       = ".log"

	// Cleanup runs once the limit is reached and trims back to the
	// retention count.
	LogFileRetentionLimit = 10
	LogFileRetentionCount = 9
)

// Startup log messages.
const (
	LogMsgLoggingInitialized  = "Logging initialized"
	LogMsgStartingDungeonBot  = "Starting DungeonBot"
	LogMsgConfigurationLoaded = "Configuration loaded"
	LogMsgFailedCreateLogsDir = "failed to create logs directory"
	LogMsgFailedOpenLogFile   = "failed to open log file"
	LogMsgFailedDeleteOldLog  = "Failed to delete old log file %s: %v\n"
)

// Event publishing defaults, applied when the config leaves them unset.
const (
	EventDefaultMaxRetries     = 5
	EventDefaultRetryDelay     = 2 * time.Second
	EventDefaultDeadLetterPath = "logs/event_deadletter.jsonl"
)

const (
	LogMsgEventSystemInitialized         = "Event system initialized"
	LogMsgFailedCreateDeadLetterDir      = "failed to create dead-letter directory"
	LogMsgFailedCreateResilientPublisher = "failed to create resilient publisher"
)

// Help topic loading.
const (
	LogMsgLoadingHelpTopics    = "Loading help topics..."
	LogMsgHelpTopicsLoaded     = "Help topics loaded"
	ErrMsgFailedLoadHelpTopics = "failed to load help topics"
)

// Event handler registration.
const (
	LogMsgMetricsCollectorRegistered = "Metrics collector registered"
	LogMsgEventLoggerInitialized     = "Event logger initialized"
	ErrMsgFailedRegisterMetrics      = "failed to register metrics collector"
	ErrMsgFailedSubscribeEventLogger = "failed to subscribe event logger"
)

// Shutdown sequence messages.
const (
	LogMsgShuttingDownServer         = "Shutting down server..."
	LogMsgStoppingScheduler          = "Stopping scheduler..."
	LogMsgStoppingWorkerPool         = "Stopping worker pool..."
	LogMsgShuttingDownEventPublisher = "Shutting down event publisher..."
	LogMsgServerStopped              = "Server stopped"
	LogMsgServerForcedShutdown       = "Server forced to shutdown"
	LogMsgResilientPublisherFailed   = "Resilient publisher shutdown failed"
)
