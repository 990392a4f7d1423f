package database

import "time"

// Connection pool settings
const (
	// DefaultMinConnections is the floor of open connections the pool maintains
	DefaultMinConnections = 2

	// ConnectTimeout bounds pool creation and the initial connectivity check
	ConnectTimeout = 10 * time.Second
)

// Error Messages - Database Operations
const (
	ErrMsgFailedToParseConnString = "failed to parse connection string"
	ErrMsgFailedToCreatePool      = "failed to create connection pool"
	ErrMsgFailedToPingDatabase    = "failed to ping database"
)

// Log Messages
const (
	LogMsgConnectedToDatabase = "Successfully connected to the database"
)
