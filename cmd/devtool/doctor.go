package main

import (
	"fmt"
	"path/filepath"
)

type DoctorCommand struct{}

func (c *DoctorCommand) Name() string {
	return "doctor"
}

func (c *DoctorCommand) Description() string {
	return "Diagnose environment issues (deps, db, help topics)"
}

func (c *DoctorCommand) Run(args []string) error {
	PrintHeader("Running Doctor...")

	hasError := false

	// Run Check Deps
	depsCmd := &CheckDepsCommand{}
	if err := depsCmd.Run(nil); err != nil {
		PrintError("Dependencies check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Dependencies OK")
	}

	// Run Check DB
	dbCmd := &CheckDBCommand{}
	if err := dbCmd.Run(nil); err != nil {
		PrintError("Database check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Database OK")
	}

	// The app refuses to start without help topics
	if err := c.checkHelpTopics(); err != nil {
		PrintError("Help topics check failed: %v", err)
		hasError = true
	} else {
		PrintSuccess("Help topics OK")
	}

	if hasError {
		return fmt.Errorf("doctor found issues")
	}

	PrintSuccess("All systems operational!")
	return nil
}

func (c *DoctorCommand) checkHelpTopics() error {
	dir := getEnv("HELP_TOPICS_DIR", "configs/help")

	topics, err := filepath.Glob(filepath.Join(dir, "*.yaml"))
	if err != nil {
		return fmt.Errorf("scanning %s: %w", dir, err)
	}
	if len(topics) == 0 {
		return fmt.Errorf("no help topic files in %s", dir)
	}

	PrintInfo("Found %d help topic files in %s", len(topics), dir)
	return nil
}
