package main

import (
	"database/sql"
	"fmt"
	"os"
	"strings"

	_ "github.com/jackc/pgx/v5/stdlib"
)

type SeedCommand struct{}

func (c *SeedCommand) Name() string {
	return "seed"
}

func (c *SeedCommand) Description() string {
	return "Seed database with data (test, staging)"
}

// seedSuites maps a suite name to the files it applies, in order. Staging
// gets users only; quests accumulate from real usage there.
var seedSuites = map[string][]string{
	"test": {
		"internal/database/seeds/test_user.sql",
		"internal/database/seeds/test_quest.sql",
	},
	"staging": {
		"internal/database/seeds/test_user.sql",
	},
}

func (c *SeedCommand) Run(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("subcommand required: %s", strings.Join(suiteNames(), ", "))
	}

	files, ok := seedSuites[args[0]]
	if !ok {
		return fmt.Errorf("unknown subcommand: %s", args[0])
	}

	dbURL := dbURLFromEnv()
	PrintInfo("Connecting to database: %s", redactPassword(dbURL))

	db, err := sql.Open("pgx", dbURL)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to ping database: %w", err)
	}

	PrintInfo("Running %s seeds...", args[0])
	for _, file := range files {
		if err := c.executeFile(db, file); err != nil {
			return err
		}
	}

	PrintSuccess("Seeds completed successfully")
	return nil
}

func suiteNames() []string {
	names := make([]string, 0, len(seedSuites))
	for name := range seedSuites {
		names = append(names, name)
	}
	return names
}

func (c *SeedCommand) executeFile(db *sql.DB, filepath string) error {
	PrintInfo("Executing %s...", filepath)

	content, err := os.ReadFile(filepath)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", filepath, err)
	}

	if _, err := db.Exec(string(content)); err != nil {
		return fmt.Errorf("failed to execute seed file %s: %w", filepath, err)
	}

	return nil
}
