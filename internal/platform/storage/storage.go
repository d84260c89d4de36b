// Package storage opens the configured state backend for the server and the CLI.
package storage

import (
	"context"
	"fmt"
	"log/slog"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/repositories/database/pgsql"
	"github.com/SscSPs/event_split_app/internal/repositories/memory"
	"github.com/SscSPs/event_split_app/internal/repositories/mongostore"
	"github.com/SscSPs/event_split_app/internal/repositories/redisstore"
	"github.com/SscSPs/event_split_app/internal/repositories/resilient"
	"github.com/SscSPs/event_split_app/pkg/database"
)

// Open connects to cfg.StateBackend and wraps it in the circuit breaker. The memory
// backend is returned unwrapped. Migrations run only when migrate is set.
func Open(ctx context.Context, cfg *config.Config, logger *slog.Logger, migrate bool) (portsrepo.RepositoryProvider, error) {
	var repos portsrepo.RepositoryProvider

	switch cfg.StateBackend {
	case config.BackendMemory:
		return portsrepo.RepositoryProvider{State: memory.NewStateStore()}, nil

	case config.BackendPostgres:
		if migrate {
			logger.Info("Running database migrations...")
			if err := database.RunMigrations(cfg.DatabaseURL, cfg.MigrationsPath); err != nil {
				return repos, err
			}
		}
		pool, err := database.NewPgxPool(ctx, cfg.DatabaseURL, cfg.EnableDBCheck)
		if err != nil {
			return repos, err
		}
		repos = pgsql.NewRepositoryProvider(pool)

	case config.BackendRedis:
		store, err := redisstore.New(ctx, redisstore.Options{
			Addr:      cfg.RedisAddr,
			Password:  cfg.RedisPassword,
			DB:        cfg.RedisDB,
			KeyPrefix: cfg.StateKeyPrefix,
		})
		if err != nil {
			return repos, err
		}
		repos = portsrepo.RepositoryProvider{State: store, Close: store.Close}

	case config.BackendMongo:
		store, err := mongostore.New(ctx, cfg.MongoURI, cfg.MongoDatabase)
		if err != nil {
			return repos, err
		}
		repos = portsrepo.RepositoryProvider{State: store, Close: store.Close}

	default:
		return repos, fmt.Errorf("unknown state backend %q", cfg.StateBackend)
	}

	repos.State = resilient.New(repos.State, resilient.Config{
		Name:          cfg.StateBackend,
		Timeout:       cfg.PersistenceTimeout,
		MaxRequests:   cfg.BreakerMaxRequests,
		Interval:      cfg.BreakerInterval,
		OpenTimeout:   cfg.BreakerTimeout,
		FailThreshold: cfg.BreakerFailThreshold,
	}, logger)
	logger.Info("State store ready", slog.String("backend", cfg.StateBackend))
	return repos, nil
}
