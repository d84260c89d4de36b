package repositories

import "context"

// RepositoryProvider holds the persistence dependencies needed by the service container.
type RepositoryProvider struct {
	State StateStore
	// Close releases backend resources. May be nil.
	Close func(ctx context.Context) error
}
