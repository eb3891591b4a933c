// Package bootstrap wires configuration, storage, repositories and
// services into a runnable application.
package bootstrap

import (
	"fmt"

	"github.com/rs/zerolog"

	"github.com/uniconnect/uniconnect/internal/app/repositories"
	"github.com/uniconnect/uniconnect/internal/app/services"
	"github.com/uniconnect/uniconnect/internal/config"
	"github.com/uniconnect/uniconnect/internal/pkg/logger"
	"github.com/uniconnect/uniconnect/internal/storage"
	"github.com/uniconnect/uniconnect/internal/storage/sqlite"
)

// App holds all the application dependencies.
type App struct {
	Config    *config.Config
	Store     storage.Store
	Repos     *repositories.Repositories
	Sessions  *services.SessionService
	Community *services.CommunityService
	Notices   *services.NoticeService
	Logger    zerolog.Logger

	closeStore func() error
}

// New loads configuration, opens the configured store and constructs the
// service graph.
func New(configPath string) (*App, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  cfg.Logging.Level,
		Pretty: cfg.Logging.Format != "json",
	})
	lgr := logger.Default()

	store, closeStore, err := openStore(cfg)
	if err != nil {
		return nil, err
	}

	repos := repositories.NewRepositories(store)
	sessions := services.NewSessionService(repos, services.SessionConfig{
		AllowedDomains:    cfg.Auth.AllowedDomains,
		MinPasswordLength: cfg.Auth.MinPasswordLength,
	}, lgr.With().Str("component", "sessions").Logger())
	community := services.NewCommunityService(repos, sessions,
		lgr.With().Str("component", "community").Logger())
	notices := services.NewNoticeService(repos)

	return &App{
		Config:     cfg,
		Store:      store,
		Repos:      repos,
		Sessions:   sessions,
		Community:  community,
		Notices:    notices,
		Logger:     lgr,
		closeStore: closeStore,
	}, nil
}

// Close releases the storage backend, if it holds resources.
func (a *App) Close() error {
	if a.closeStore == nil {
		return nil
	}
	return a.closeStore()
}

func openStore(cfg *config.Config) (storage.Store, func() error, error) {
	switch cfg.Storage.Backend {
	case "memory":
		return storage.NewMemoryStore(), nil, nil
	case "file":
		store, err := storage.OpenFileStore(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open file store: %w", err)
		}
		return store, nil, nil
	case "sqlite":
		store, err := sqlite.Open(cfg.Storage.Path)
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite store: %w", err)
		}
		return store, store.Close, nil
	default:
		return nil, nil, fmt.Errorf("unknown storage backend %q", cfg.Storage.Backend)
	}
}
