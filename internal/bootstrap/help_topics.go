package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/osse101/DungeonBot_Go/internal/config"
	"github.com/osse101/DungeonBot_Go/internal/help"
)

// InitializeHelp loads the help topic registry from the configured directory
// and wraps it in a help service. Topic files are YAML; edits on disk take
// effect after Reload.
func InitializeHelp(cfg *config.Config) (*help.Service, error) {
	slog.Info(LogMsgLoadingHelpTopics, "dir", cfg.HelpTopicsDir)

	registry := help.NewRegistry(cfg.HelpTopicsDir)
	if err := registry.Load(); err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadHelpTopics, err)
	}

	slog.Info(LogMsgHelpTopicsLoaded, "topics", len(registry.TopicNames()))
	return help.NewService(registry), nil
}
