package logger

// Recognized log level names
const (
	LogLevelDebug   = "debug"
	LogLevelInfo    = "info"
	LogLevelWarn    = "warn"
	LogLevelWarning = "warning"
	LogLevelError   = "error"
)

// Recognized output formats
const (
	LogFormatJSON = "json"
	LogFormatText = "text"
)

// Service identity defaults
const (
	DefaultServiceName = "dungeon-bot"
	DefaultVersion     = "dev"
	ProductionVersion  = "1.0.0"
)

// Recognized environment names
const (
	EnvironmentDev        = "dev"
	EnvironmentStaging    = "staging"
	EnvironmentProduction = "prod"
	EnvironmentTest       = "test"
)

// Attribute keys attached to log records
const (
	AttrKeyService     = "service"
	AttrKeyVersion     = "version"
	AttrKeyEnvironment = "environment"
	AttrKeyRequestID   = "request_id"
)
