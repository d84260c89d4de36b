package services

import (
	"context"
)

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	Event       EventSvcFacade
	Participant ParticipantSvcFacade
	Ledger      LedgerSvcFacade
	JoinRequest JoinRequestSvcFacade
	Balance     BalanceSvcFacade
	Token       TokenSvcFacade
	State       StateSyncSvc
}

// StateSyncSvc manages the in-memory state as a whole.
type StateSyncSvc interface {
	// Load replaces in-memory state with what the state store holds.
	Load(ctx context.Context) error
	// Sync re-saves stores to the state store. With force=false only stores whose
	// last save failed are written. It returns the names of the stores written.
	Sync(ctx context.Context, force bool) ([]string, error)
	// Dirty lists the stores whose last save failed.
	Dirty() []string
}
