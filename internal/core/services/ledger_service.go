package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"
	"time"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/utils/accounting"
)

type ledgerService struct {
	BaseService
	c *coordinator
}

var _ portssvc.LedgerSvcFacade = (*ledgerService)(nil)

// AddTransaction records a new expense at the head of the event's ledger.
func (s *ledgerService) AddTransaction(ctx context.Context, eventID string, req dto.CreateTransactionRequest) (*domain.Transaction, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	if s.c.eventByIDLocked(eventID) == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
	}

	source := req.Source
	if source == "" {
		source = domain.SourceManual
	}
	now := s.c.transactionTimeLocked()
	txn := domain.Transaction{
		TransactionID: s.c.newID(),
		EventID:       eventID,
		PayerID:       req.PayerID,
		Participants:  accounting.NormalizeParticipants(req.Participants),
		Amount:        req.Amount,
		Source:        source,
		Description:   strings.TrimSpace(req.Description),
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}
	if err := s.c.checkTransactionLocked(txn); err != nil {
		return nil, err
	}

	next := append([]domain.Transaction{txn}, s.c.transactions.items...)
	if err := s.c.transactions.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction", slog.String("event_id", eventID))
		return nil, err
	}

	s.LogInfo(ctx, "Transaction added",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("event_id", eventID),
		slog.Int64("amount", txn.Amount))
	s.c.notify(ctx, portsrepo.StoreTransactions, domain.ChangeCreated, txn.TransactionID, eventID)
	out := txn.Clone()
	return &out, nil
}

// UpdateTransaction applies a partial update in place, keeping the transaction's position.
func (s *ledgerService) UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx := s.c.transactionIndexLocked(transactionID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}

	updated := s.c.transactions.items[idx].Clone()
	if req.PayerID != nil {
		updated.PayerID = *req.PayerID
	}
	if req.Participants != nil {
		updated.Participants = accounting.NormalizeParticipants(req.Participants)
	}
	if req.Amount != nil {
		updated.Amount = *req.Amount
	}
	if req.Source != nil {
		updated.Source = *req.Source
	}
	if req.Description != nil {
		updated.Description = strings.TrimSpace(*req.Description)
	}
	updated.UpdatedAt = s.c.now()

	if err := s.c.checkTransactionLocked(updated); err != nil {
		return nil, err
	}

	next := s.c.transactions.snapshot()
	next[idx] = updated
	if err := s.c.transactions.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction update", slog.String("transaction_id", transactionID))
		return nil, err
	}

	s.c.notify(ctx, portsrepo.StoreTransactions, domain.ChangeUpdated, transactionID, updated.EventID)
	out := updated.Clone()
	return &out, nil
}

// DeleteTransaction removes a transaction; unknown ids are ignored.
func (s *ledgerService) DeleteTransaction(ctx context.Context, transactionID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx := s.c.transactionIndexLocked(transactionID)
	if idx < 0 {
		s.LogDebug(ctx, "Transaction already absent", slog.String("transaction_id", transactionID))
		return nil
	}
	eventID := s.c.transactions.items[idx].EventID

	next := slices.Delete(s.c.transactions.snapshot(), idx, idx+1)
	if err := s.c.transactions.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist transaction deletion", slog.String("transaction_id", transactionID))
		return err
	}

	s.c.notify(ctx, portsrepo.StoreTransactions, domain.ChangeDeleted, transactionID, eventID)
	return nil
}

func (s *ledgerService) GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	idx := s.c.transactionIndexLocked(transactionID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("transaction %s not found", transactionID))
	}
	out := s.c.transactions.items[idx].Clone()
	return &out, nil
}

func (s *ledgerService) ListByEvent(ctx context.Context, eventID string) ([]domain.Transaction, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.transactionsOfEventLocked(eventID), nil
}

// checkTransactionLocked enforces the transaction's own invariants and that the payer
// and every sharer are participants of its event.
func (c *coordinator) checkTransactionLocked(txn domain.Transaction) error {
	if err := txn.Validate(); err != nil {
		return fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	members := make(map[string]struct{})
	for _, p := range c.participants.items {
		if p.EventID == txn.EventID {
			members[p.ParticipantID] = struct{}{}
		}
	}
	if _, ok := members[txn.PayerID]; !ok {
		return fmt.Errorf("%w: payer %s is not a participant of event %s", apperrors.ErrValidation, txn.PayerID, txn.EventID)
	}
	for _, id := range txn.Participants {
		if _, ok := members[id]; !ok {
			return fmt.Errorf("%w: %s is not a participant of event %s", apperrors.ErrValidation, id, txn.EventID)
		}
	}
	return nil
}

func (c *coordinator) transactionIndexLocked(transactionID string) int {
	return slices.IndexFunc(c.transactions.items, func(t domain.Transaction) bool {
		return t.TransactionID == transactionID
	})
}

// transactionTimeLocked returns a creation time strictly after the newest transaction's,
// so the ledger stays strictly ordered by CreatedAt even if the clock repeats or steps back.
func (c *coordinator) transactionTimeLocked() time.Time {
	now := c.now()
	if len(c.transactions.items) > 0 {
		if newest := c.transactions.items[0].CreatedAt; !now.After(newest) {
			now = newest.Add(time.Nanosecond)
		}
	}
	return now
}

func (c *coordinator) transactionsOfEventLocked(eventID string) []domain.Transaction {
	out := make([]domain.Transaction, 0)
	for _, t := range c.transactions.items {
		if t.EventID == eventID {
			out = append(out, t.Clone())
		}
	}
	return out
}
