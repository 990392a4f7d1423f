package main

import (
	"database/sql"
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type WaitForDBCommand struct{}

func (c *WaitForDBCommand) Name() string {
	return "wait-for-db"
}

func (c *WaitForDBCommand) Description() string {
	return "Wait for database to be ready (with retries)"
}

func (c *WaitForDBCommand) Run(args []string) error {
	PrintHeader("Waiting for database...")

	// Open validates the DSN but does not connect; each Ping dials fresh
	db, err := sql.Open("pgx", dbURLFromEnv())
	if err != nil {
		return fmt.Errorf("invalid database URL: %w", err)
	}
	defer db.Close()

	const maxRetries = 30
	retryInterval := 2 * time.Second

	for i := 1; i <= maxRetries; i++ {
		if err = db.Ping(); err == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Database not ready (%d/%d): %v\n", i, maxRetries, err)
		time.Sleep(retryInterval)
	}

	return fmt.Errorf("database failed to become ready after %d attempts: %w", maxRetries, err)
}
