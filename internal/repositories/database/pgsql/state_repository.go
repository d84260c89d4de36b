package pgsql

import (
	"context"
	"errors"
	"fmt"

	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PgxStateRepository stores each named store as a jsonb document in app_state.
type PgxStateRepository struct {
	BaseRepository
}

// newPgxStateRepository creates a new repository for state blobs.
func newPgxStateRepository(pool *pgxpool.Pool) *PgxStateRepository {
	return &PgxStateRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

// Ensure implementation matches interface
var _ portsrepo.StateStore = (*PgxStateRepository)(nil)

// LoadState returns the saved document for storeName, or nil if none exists.
func (r *PgxStateRepository) LoadState(ctx context.Context, storeName string) ([]byte, error) {
	query := `
		SELECT state
		FROM app_state
		WHERE store_name = $1;
	`
	var state []byte
	err := r.Pool.QueryRow(ctx, query, storeName).Scan(&state)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to load state %s: %w", storeName, err)
	}
	return state, nil
}

// SaveState upserts the document for storeName and bumps its version.
func (r *PgxStateRepository) SaveState(ctx context.Context, storeName string, state []byte) error {
	tx, err := r.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = r.Rollback(ctx, tx) }()

	query := `
		INSERT INTO app_state (store_name, state, version, updated_at)
		VALUES ($1, $2, 1, NOW())
		ON CONFLICT (store_name) DO UPDATE SET
			state = EXCLUDED.state,
			version = app_state.version + 1,
			updated_at = EXCLUDED.updated_at;
	`
	if _, err := tx.Exec(ctx, query, storeName, string(state)); err != nil {
		return fmt.Errorf("failed to save state %s: %w", storeName, err)
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit state %s: %w", storeName, err)
	}
	return nil
}
