package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/dto"
)

// LedgerReaderSvc defines read operations for the transaction ledger.
type LedgerReaderSvc interface {
	GetTransaction(ctx context.Context, transactionID string) (*domain.Transaction, error)
	// ListByEvent returns an event's transactions, newest first.
	ListByEvent(ctx context.Context, eventID string) ([]domain.Transaction, error)
}

// LedgerWriterSvc defines write operations for the transaction ledger.
type LedgerWriterSvc interface {
	AddTransaction(ctx context.Context, eventID string, req dto.CreateTransactionRequest) (*domain.Transaction, error)
	// UpdateTransaction applies the non-nil fields of req. The transaction keeps its position.
	UpdateTransaction(ctx context.Context, transactionID string, req dto.UpdateTransactionRequest) (*domain.Transaction, error)
	// DeleteTransaction removes a transaction. Deleting an unknown id is a no-op.
	DeleteTransaction(ctx context.Context, transactionID string) error
}

// LedgerSvcFacade combines all ledger-related service interfaces.
type LedgerSvcFacade interface {
	LedgerReaderSvc
	LedgerWriterSvc
}
