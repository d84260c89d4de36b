package repositories

import (
	"context"
)

// Store names used by the core services.
const (
	StoreEvents       = "events"
	StoreParticipants = "participants"
	StoreTransactions = "transactions"
	StoreJoinRequests = "join_requests"
)

// StateReader loads previously saved state.
type StateReader interface {
	// LoadState returns the last saved blob for storeName, or (nil, nil) if none exists.
	LoadState(ctx context.Context, storeName string) ([]byte, error)
}

// StateWriter saves state.
type StateWriter interface {
	// SaveState replaces the durable copy of storeName with state.
	SaveState(ctx context.Context, storeName string, state []byte) error
}

// StateStore is the persistence collaborator every core store writes through.
type StateStore interface {
	StateReader
	StateWriter
}
