package service

import (
	"github.com/xolan/devjournal/internal/config"
	"github.com/xolan/devjournal/internal/logging"
	"github.com/xolan/devjournal/internal/storage"
	"go.uber.org/zap"
)

// Services holds all service instances used by the application
type Services struct {
	Entry   *EntryService
	Search  *SearchService
	Stats   *StatsService
	Storage *StorageService
	Export  *ExportService
	Config  *ConfigService
}

// NewServices creates the services for cfg.
// The journal lives at cfg.JournalFile; configPath is where `config init` writes.
func NewServices(configPath string, cfg config.Config, logger *zap.Logger) *Services {
	if logger == nil {
		logger = logging.Nop()
	}
	store := storage.NewStore(cfg.JournalFile,
		storage.WithBackups(cfg.Backups),
		storage.WithLogger(logger),
	)
	return NewServicesWithStore(store, configPath, cfg)
}

// NewServicesWithPaths creates a new Services instance with custom paths (useful for testing)
func NewServicesWithPaths(journalPath, configPath string, cfg config.Config) *Services {
	cfg.JournalFile = journalPath
	return NewServices(configPath, cfg, nil)
}

// NewServicesWithStore wires every service to the same store
func NewServicesWithStore(store *storage.Store, configPath string, cfg config.Config) *Services {
	entries := NewEntryService(store, cfg)
	return &Services{
		Entry:   entries,
		Search:  NewSearchService(store),
		Stats:   NewStatsService(store),
		Storage: NewStorageService(store),
		Export:  NewExportService(entries),
		Config:  NewConfigService(configPath, cfg),
	}
}
