package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/utils/accounting"
)

// balanceService derives balances on demand from the ledger and registry.
type balanceService struct {
	BaseService
	c *coordinator
}

var _ portssvc.BalanceSvcFacade = (*balanceService)(nil)

func (s *balanceService) ComputeBalances(ctx context.Context, eventID string) (map[string]int64, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.balancesLocked(ctx, eventID)
}

func (s *balanceService) ComputeSettlements(ctx context.Context, eventID string) ([]domain.Settlement, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	balances, err := s.balancesLocked(ctx, eventID)
	if err != nil {
		return nil, err
	}
	return accounting.ComputeSettlements(balances)
}

// Summary reports paid, owed and net amounts per participant, in registration order.
func (s *balanceService) Summary(ctx context.Context, eventID string) (*domain.EventSummary, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	if s.c.eventByIDLocked(eventID) == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
	}

	participants := s.c.participantsOfEventLocked(eventID)
	ids := make([]string, len(participants))
	names := make(map[string]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ParticipantID
		names[p.ParticipantID] = p.Name
	}

	rows, total, err := accounting.Summarize(ids, names, s.c.transactionsOfEventLocked(eventID))
	if err != nil {
		s.LogError(ctx, err, "Ledger references unknown participant", slog.String("event_id", eventID))
		return nil, err
	}

	balances := make(map[string]int64, len(rows))
	for _, r := range rows {
		balances[r.ParticipantID] = r.Net
	}
	settlements, err := accounting.ComputeSettlements(balances)
	if err != nil {
		return nil, err
	}

	return &domain.EventSummary{
		EventID:      eventID,
		TotalSpent:   total,
		Participants: rows,
		Settlements:  settlements,
	}, nil
}

func (s *balanceService) balancesLocked(ctx context.Context, eventID string) (map[string]int64, error) {
	if s.c.eventByIDLocked(eventID) == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
	}

	participants := s.c.participantsOfEventLocked(eventID)
	ids := make([]string, len(participants))
	for i, p := range participants {
		ids[i] = p.ParticipantID
	}

	balances, err := accounting.ComputeBalances(ids, s.c.transactionsOfEventLocked(eventID))
	if err != nil {
		s.LogError(ctx, err, "Ledger references unknown participant", slog.String("event_id", eventID))
		return nil, err
	}
	return balances, nil
}
