package main

import (
	"fmt"
	"strings"
	"time"
)

type CheckDBCommand struct{}

func (c *CheckDBCommand) Name() string {
	return "check-db"
}

func (c *CheckDBCommand) Description() string {
	return "Check if database is running and ready"
}

func (c *CheckDBCommand) Run(args []string) error {
	PrintHeader("Checking Docker database status...")

	if err := runCommand("docker", "compose", "version"); err != nil {
		return fmt.Errorf("docker compose not found. Please install Docker Compose")
	}

	if composeDBRunning() {
		PrintSuccess("Database is already running")
		return nil
	}

	PrintInfo("Starting database...")
	if err := runCommandVerbose("docker", "compose", "up", "-d", "db"); err != nil {
		return fmt.Errorf("error starting database: %v", err)
	}

	dbUser := getEnv("DB_USER", "postgres")
	dbName := getEnv("DB_NAME", "dungeonbot")

	const maxAttempts = 30
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		if runCommand("docker", "compose", "exec", "-T", "db", "pg_isready", "-U", dbUser, "-d", dbName) == nil {
			PrintSuccess("Database is ready")
			return nil
		}
		fmt.Printf("Waiting for database... (%d/%d)\n", attempt, maxAttempts)
		time.Sleep(1 * time.Second)
	}

	PrintError("Database failed to start in time")
	_ = runCommandVerbose("docker", "compose", "logs", "db")
	return fmt.Errorf("database failed to start")
}

// composeDBRunning reports whether the compose db service is already up.
func composeDBRunning() bool {
	out, err := getCommandOutput("docker", "compose", "ps", "db")
	if err != nil {
		return false
	}
	status := strings.ToLower(out)
	return strings.Contains(status, "up") || strings.Contains(status, "running")
}
