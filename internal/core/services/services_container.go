package services

import (
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/platform/config"
)

// NewServiceContainer wires every core service around one shared coordinator so that
// all stores observe a single writer. Call State.Load before serving traffic.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, opts ...CoordinatorOption) *portssvc.ServiceContainer {
	c := newCoordinator(repos.State, opts...)

	return &portssvc.ServiceContainer{
		Event:       &eventService{c: c},
		Participant: &participantService{c: c},
		Ledger:      &ledgerService{c: c},
		JoinRequest: &joinRequestService{c: c},
		Balance:     &balanceService{c: c},
		Token:       NewTokenService(cfg),
		State:       c,
	}
}

// Helper to check interface implementations at compile time
var (
	_ portssvc.StateSyncSvc = (*coordinator)(nil)
)
