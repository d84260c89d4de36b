package pgsql

import (
	"context"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

// NewRepositoryProvider builds the Postgres-backed persistence for the service container.
func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		State: newPgxStateRepository(dbPool),
		Close: func(context.Context) error {
			dbPool.Close()
			return nil
		},
	}
}
