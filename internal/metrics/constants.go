package metrics

// ============================================================================
// Metric Names
// ============================================================================

// HTTP metric names
const (
	MetricNameHTTPRequestsTotal    = "http_requests_total"
	MetricNameHTTPRequestDuration  = "http_request_duration_seconds"
	MetricNameHTTPRequestsInFlight = "http_requests_in_flight"
)

// Event metric names
const (
	MetricNameEventsPublished    = "events_published_total"
	MetricNameEventHandlerErrors = "event_handler_errors_total"
)

// Business metric names
const (
	MetricNameRollsPerformed    = "rolls_total"
	MetricNameDiceRolled        = "dice_rolled_total"
	MetricNameRollParseFailures = "roll_parse_failures_total"
	MetricNameQuestsCreated     = "quests_created_total"
	MetricNameQuestsCompleted   = "quests_completed_total"
	MetricNameCommandsHandled   = "commands_handled_total"
)

// ============================================================================
// Metric Help Text
// ============================================================================

// HTTP metric help text
const (
	HelpTextHTTPRequestsTotal    = "Total number of HTTP requests"
	HelpTextHTTPRequestDuration  = "HTTP request latency in seconds"
	HelpTextHTTPRequestsInFlight = "Current number of HTTP requests being served"
)

// Event metric help text
const (
	HelpTextEventsPublished    = "Total number of events published"
	HelpTextEventHandlerErrors = "Total number of event handler errors"
)

// Business metric help text
const (
	HelpTextRollsPerformed    = "Total number of rolls performed"
	HelpTextDiceRolled        = "Total number of individual dice rolled"
	HelpTextRollParseFailures = "Total number of roll arguments rejected by the parser"
	HelpTextQuestsCreated     = "Total number of quests created"
	HelpTextQuestsCompleted   = "Total number of quests completed"
	HelpTextCommandsHandled   = "Total number of chat commands handled by the dispatcher"
)

// ============================================================================
// Metric Label Names
// ============================================================================

// Common label names used across metrics
const (
	LabelMethod  = "method"
	LabelPath    = "path"
	LabelStatus  = "status"
	LabelType    = "type"
	LabelCommand = "command"
)

// ============================================================================
// Event Types
// ============================================================================

// Event types are defined in internal/domain/events.go
// Import github.com/osse101/DungeonBot_Go/internal/domain to use:
//   - domain.EventTypeRollPerformed
//   - domain.EventTypeQuestCreated, domain.EventTypeQuestCompleted
//   - domain.EventTypeMessageHandled

// ============================================================================
// Histogram Buckets
// ============================================================================

// HTTPLatencyBuckets defines the histogram buckets for HTTP request duration
// in seconds. These buckets range from 1ms to 10s to capture various latency
// patterns: fast (1-10ms), normal (10-100ms), slow (100ms-1s), very slow (1-10s)
var HTTPLatencyBuckets = []float64{.001, .005, .01, .025, .05, .1, .25, .5, 1, 2.5, 5, 10}

// ============================================================================
// Log Messages
// ============================================================================

// Debug log messages
const (
	LogMsgPayloadDecodeFailed = "Failed to decode event payload"
	LogMsgMetricsRecorded     = "Metrics recorded for event"
)
