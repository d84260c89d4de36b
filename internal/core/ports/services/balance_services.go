package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// BalanceSvcFacade derives balances from the ledger and registry. It never mutates state.
type BalanceSvcFacade interface {
	// ComputeBalances returns the net balance of every participant of the event.
	ComputeBalances(ctx context.Context, eventID string) (map[string]int64, error)

	// ComputeSettlements returns transfers that bring every balance to zero.
	ComputeSettlements(ctx context.Context, eventID string) ([]domain.Settlement, error)

	// Summary combines per-participant totals with the settlement plan.
	Summary(ctx context.Context, eventID string) (*domain.EventSummary, error)
}
