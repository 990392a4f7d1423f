package main

import (
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"strings"
)

type TestMigrationsCommand struct{}

func (c *TestMigrationsCommand) Name() string {
	return "test-migrations"
}

func (c *TestMigrationsCommand) Description() string {
	return "Test database migrations (up/down/idempotency)"
}

func (c *TestMigrationsCommand) Run(args []string) error {
	PrintHeader("Testing database migrations...")

	dbName := appName + "_test_migrations"
	dbUser := getEnv("DB_USER", "postgres")
	dbPass := getEnv("DB_PASSWORD", "postgres")
	dbHost := getEnv("DB_HOST", "localhost")
	dbPort := getEnv("DB_PORT", "5432")

	if _, err := exec.LookPath("goose"); err != nil {
		PrintError("goose is not installed")
		fmt.Println("Install with: go install github.com/pressly/goose/v3/cmd/goose@latest")
		return fmt.Errorf("goose not installed")
	}

	// psql and goose both authenticate through the environment so the
	// password stays out of process listings
	os.Setenv("PGPASSWORD", dbPass)
	os.Setenv("GOOSE_DRIVER", "postgres")
	os.Setenv("GOOSE_DBSTRING", fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable",
		dbUser, dbPass, dbHost, dbPort, dbName))

	psql := func(stmt string) error {
		return runCommand("psql", "-h", dbHost, "-p", dbPort, "-U", dbUser, "-c", stmt)
	}

	// Scratch database, dropped again on the way out
	PrintInfo("Creating test database: %s", dbName)
	_ = psql("DROP DATABASE IF EXISTS " + dbName + ";")
	if err := psql("CREATE DATABASE " + dbName + ";"); err != nil {
		PrintError("Error creating database: %v", err)
		return fmt.Errorf("database creation failed")
	}
	defer func() {
		PrintInfo("Cleaning up test database...")
		_ = psql("DROP DATABASE IF EXISTS " + dbName + ";")
	}()

	PrintInfo("Applying all migrations...")
	if err := runCommandVerbose("goose", "-dir", "migrations", "up"); err != nil {
		return fmt.Errorf("migrations up failed: %w", err)
	}
	upVersion, err := gooseDBVersion()
	if err != nil {
		return err
	}
	if upVersion == 0 {
		return fmt.Errorf("up migrations left the version at 0")
	}
	PrintSuccess("Up migrations completed (version %d)", upVersion)

	PrintInfo("Rolling all migrations back...")
	if err := runCommandVerbose("goose", "-dir", "migrations", "down-to", "0"); err != nil {
		return fmt.Errorf("migrations down failed: %w", err)
	}
	downVersion, err := gooseDBVersion()
	if err != nil {
		return err
	}
	if downVersion != 0 {
		return fmt.Errorf("down migrations left the version at %d", downVersion)
	}
	PrintSuccess("Down migrations completed")

	PrintInfo("Re-applying all migrations...")
	if err := runCommandVerbose("goose", "-dir", "migrations", "up"); err != nil {
		return fmt.Errorf("migrations re-up failed: %w", err)
	}
	reUpVersion, err := gooseDBVersion()
	if err != nil {
		return err
	}
	if reUpVersion != upVersion {
		return fmt.Errorf("re-applied version %d does not match first pass %d", reUpVersion, upVersion)
	}
	PrintSuccess("Re-up migrations completed (version %d)", reUpVersion)

	PrintSuccess("All migration tests passed!")
	return nil
}

// gooseDBVersion parses the numeric version out of "goose: version N".
func gooseDBVersion() (int, error) {
	out, err := getCommandOutput("goose", "-dir", "migrations", "version")
	if err != nil {
		return 0, fmt.Errorf("failed to get goose version: %w", err)
	}
	fields := strings.Fields(out)
	if len(fields) == 0 {
		return 0, fmt.Errorf("unexpected goose version output: %q", out)
	}
	version, err := strconv.Atoi(fields[len(fields)-1])
	if err != nil {
		return 0, fmt.Errorf("unexpected goose version output: %q", out)
	}
	return version, nil
}
