package bootstrap

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/osse101/DungeonBot_Go/internal/database/postgres"
	"github.com/osse101/DungeonBot_Go/internal/eventlog"
	"github.com/osse101/DungeonBot_Go/internal/repository"
)

// Repositories holds all repository implementations used by the application.
// This provides a centralized location for repository initialization and
// makes dependency injection clearer.
type Repositories struct {
	User     repository.User
	Quest    repository.Quest
	EventLog eventlog.Repository
}

// InitializeRepositories creates all repository implementations.
func InitializeRepositories(dbPool *pgxpool.Pool) *Repositories {
	return &Repositories{
		User:     postgres.NewUserRepository(dbPool),
		Quest:    postgres.NewQuestRepository(dbPool),
		EventLog: postgres.NewEventLogRepository(dbPool),
	}
}
