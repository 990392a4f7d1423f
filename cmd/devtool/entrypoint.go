package main

import (
	"fmt"
	"os"
	"os/exec"
	"syscall"
	"time"
)

type EntrypointCommand struct{}

func (c *EntrypointCommand) Name() string {
	return "entrypoint"
}

func (c *EntrypointCommand) Description() string {
	return "Container entrypoint (wait-for-db, backup, migrate, exec)"
}

func (c *EntrypointCommand) Run(args []string) error {
	// Inside compose the database service is named "db"
	if os.Getenv("DB_HOST") == "" {
		_ = os.Setenv("DB_HOST", "db")
	}

	wait := &WaitForDBCommand{}
	if err := wait.Run(nil); err != nil {
		return fmt.Errorf("wait-for-db failed: %w", err)
	}

	c.backupIfNeeded()

	if err := c.migrateWithRetries(); err != nil {
		return err
	}

	return c.execApp(args)
}

// backupIfNeeded dumps the database before migrating. Backups run in
// production always and elsewhere only when CREATE_BACKUP=true. A failed
// backup warns but never blocks startup.
func (c *EntrypointCommand) backupIfNeeded() {
	wanted := os.Getenv("ENVIRONMENT") == envProduction || os.Getenv("CREATE_BACKUP") == "true"
	if !wanted {
		return
	}

	PrintHeader("Creating pre-migration backup...")

	if _, err := exec.LookPath("pg_dump"); err != nil {
		PrintWarning("pg_dump not found, skipping backup")
		return
	}

	backupFile := fmt.Sprintf("/tmp/backup_%s.sql", time.Now().Format("20060102_150405"))
	f, err := os.Create(backupFile)
	if err != nil {
		PrintWarning("Could not create backup file: %v", err)
		return
	}
	defer f.Close()

	cmd := exec.Command("pg_dump",
		"-h", os.Getenv("DB_HOST"),
		"-U", os.Getenv("DB_USER"),
		"-d", os.Getenv("DB_NAME"))
	cmd.Stdout = f
	cmd.Stderr = os.Stderr

	if err := cmd.Run(); err != nil {
		PrintWarning("Backup failed: %v", err)
		// Leave no truncated dump behind
		os.Remove(backupFile)
		return
	}
	PrintSuccess("Backup created: %s", backupFile)
}

// migrateWithRetries runs goose up, retrying a few times because the
// database accepting TCP connections does not always mean it is ready to
// take DDL yet.
func (c *EntrypointCommand) migrateWithRetries() error {
	PrintHeader("Running migrations...")
	migrate := &MigrateCommand{}

	const maxRetries = 3
	var err error
	for attempt := 1; attempt <= maxRetries; attempt++ {
		if err = migrate.Run([]string{"up"}); err == nil {
			PrintSuccess("Migrations completed successfully")
			return nil
		}
		PrintWarning("Migration attempt %d failed: %v", attempt, err)
		if attempt < maxRetries {
			PrintInfo("Retrying in 5 seconds...")
			time.Sleep(5 * time.Second)
		}
	}
	return fmt.Errorf("migrations failed after %d attempts: %w", maxRetries, err)
}

func (c *EntrypointCommand) execApp(args []string) error {
	// Tolerate the conventional "--" separator before the command
	if len(args) > 0 && args[0] == "--" {
		args = args[1:]
	}
	if len(args) == 0 {
		return fmt.Errorf("no command to execute")
	}

	PrintHeader("Starting application...")
	cmdPath, err := exec.LookPath(args[0])
	if err != nil {
		return fmt.Errorf("executable not found: %w", err)
	}

	// Exec replaces this process on success, so reaching the return
	// means it failed
	err = syscall.Exec(cmdPath, args, os.Environ())
	return fmt.Errorf("exec failed: %w", err)
}
