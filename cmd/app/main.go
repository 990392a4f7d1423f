package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/osse101/DungeonBot_Go/internal/bootstrap"
	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/database"
	"github.com/osse101/DungeonBot_Go/internal/dice"
	"github.com/osse101/DungeonBot_Go/internal/dispatch"
	"github.com/osse101/DungeonBot_Go/internal/eventlog"
	"github.com/osse101/DungeonBot_Go/internal/handler"
	"github.com/osse101/DungeonBot_Go/internal/quest"
	"github.com/osse101/DungeonBot_Go/internal/scheduler"
	"github.com/osse101/DungeonBot_Go/internal/server"
	"github.com/osse101/DungeonBot_Go/internal/user"
	"github.com/osse101/DungeonBot_Go/internal/worker"
)

const (
	// ShutdownTimeout bounds the graceful shutdown sequence
	ShutdownTimeout = 30 * time.Second
	// EventLogCleanupInterval is how often old audit events are purged
	EventLogCleanupInterval = 24 * time.Hour
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Setup logging (session file + stdout)
	logFile, err := bootstrap.SetupLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to setup logger: %v", err)
	}
	defer logFile.Close()

	// Validate environment
	warnings, err := config.ValidateEnvWithWarnings()
	if err != nil {
		slog.Error("Environment validation failed", "error", err)
		os.Exit(1)
	}
	for _, warning := range warnings {
		slog.Warn(warning)
	}

	// Initialize request validator
	handler.InitValidator()

	// Connect to database
	dbPool, err := database.NewPool(cfg.GetDBConnString(), cfg.DBMaxConns, cfg.DBMaxConnIdleTime, cfg.DBMaxConnLifetime)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// Initialize event system
	eventBus, resilientPublisher, err := bootstrap.InitializeEventSystem(cfg)
	if err != nil {
		slog.Error("Failed to initialize event system", "error", err)
		os.Exit(1)
	}

	// Initialize repositories and services
	repos := bootstrap.InitializeRepositories(dbPool)

	userService := user.NewService(repos.User)
	questService := quest.NewService(repos.Quest, resilientPublisher)
	diceService := dice.NewService(userService, dice.NewSource(), resilientPublisher)
	eventLogService := eventlog.NewService(repos.EventLog)

	helpService, err := bootstrap.InitializeHelp(cfg)
	if err != nil {
		slog.Error("Failed to initialize help topics", "error", err)
		os.Exit(1)
	}

	dispatchService := dispatch.NewService(diceService, helpService, userService, resilientPublisher)

	// Register event handlers (metrics collection, audit log)
	if err := bootstrap.RegisterEventHandlers(bootstrap.EventHandlerDependencies{
		EventBus:        eventBus,
		EventLogService: eventLogService,
	}); err != nil {
		slog.Error("Failed to register event handlers", "error", err)
		os.Exit(1)
	}

	// Start background workers
	pool := worker.NewPool(cfg.WorkerCount, cfg.WorkerQueueSize)
	pool.Start()

	sched := scheduler.New(pool)
	sched.Schedule(EventLogCleanupInterval, eventlog.NewCleanupJob(eventLogService, cfg.EventLogRetentionDays))

	// Create and start HTTP server
	srv := server.NewServer(cfg.Port, cfg.APIKey, cfg.TrustedProxies, dbPool, dispatchService, diceService, userService, questService, helpService)

	serverErrors := make(chan error, 1)
	go func() {
		serverErrors <- srv.Start()
	}()

	// Wait for shutdown signal or server failure
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-serverErrors:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			os.Exit(1)
		}
	case sig := <-quit:
		slog.Info("Shutdown signal received", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()

	bootstrap.GracefulShutdown(ctx, bootstrap.ShutdownComponents{
		Server:             srv,
		Scheduler:          sched,
		WorkerPool:         pool,
		ResilientPublisher: resilientPublisher,
	})
}
