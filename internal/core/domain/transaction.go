package domain

import (
	"errors"
	"fmt"
)

// TransactionSource records how an expense was paid.
type TransactionSource string

const (
	SourceManual TransactionSource = "manual"
	SourceCash   TransactionSource = "cash"
	SourceCard   TransactionSource = "card"
)

// IsValid reports whether s is one of the known sources.
func (s TransactionSource) IsValid() bool {
	switch s {
	case SourceManual, SourceCash, SourceCard:
		return true
	}
	return false
}

// MaxTransactionAmount bounds a single expense in minor units.
const MaxTransactionAmount int64 = 1_000_000_000_000

// Transaction is one expense: the payer paid Amount on behalf of Participants, split equally.
type Transaction struct {
	TransactionID string            `json:"transactionID"`
	EventID       string            `json:"eventID"`
	PayerID       string            `json:"payerID"`
	Participants  []string          `json:"participants"` // ascending, no duplicates
	Amount        int64             `json:"amount"`       // minor units, > 0
	Source        TransactionSource `json:"source"`
	Description   string            `json:"description,omitempty"`
	AuditFields
}

// Involves reports whether participantID paid for or shares in the transaction.
func (t Transaction) Involves(participantID string) bool {
	if t.PayerID == participantID {
		return true
	}
	for _, p := range t.Participants {
		if p == participantID {
			return true
		}
	}
	return false
}

// Validate checks the self-contained invariants of a transaction. Membership of
// the payer and sharers in the event is checked by the ledger.
func (t Transaction) Validate() error {
	if t.EventID == "" {
		return errors.New("event ID is required")
	}
	if t.PayerID == "" {
		return errors.New("payer is required")
	}
	if t.Amount <= 0 {
		return fmt.Errorf("amount must be positive, got %d", t.Amount)
	}
	if t.Amount > MaxTransactionAmount {
		return fmt.Errorf("amount must not exceed %d, got %d", MaxTransactionAmount, t.Amount)
	}
	if len(t.Participants) == 0 {
		return errors.New("at least one participant is required")
	}
	if !t.Source.IsValid() {
		return fmt.Errorf("unknown source %q", t.Source)
	}
	return nil
}

// Clone returns a copy that shares no slices with t.
func (t Transaction) Clone() Transaction {
	t.Participants = append([]string(nil), t.Participants...)
	return t
}
