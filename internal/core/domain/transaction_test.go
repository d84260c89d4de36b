package domain_test

import (
	"testing"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Involves(t *testing.T) {
	tx := domain.Transaction{PayerID: "a", Participants: []string{"b", "c"}}

	assert.True(t, tx.Involves("a"))
	assert.True(t, tx.Involves("c"))
	assert.False(t, tx.Involves("d"))
}

func TestTransaction_Validate(t *testing.T) {
	valid := domain.Transaction{
		TransactionID: "txn_123",
		EventID:       "evt_1",
		PayerID:       "a",
		Participants:  []string{"a", "b"},
		Amount:        300,
		Source:        domain.SourceManual,
	}

	tests := []struct {
		name    string
		mutate  func(tx *domain.Transaction)
		wantErr bool
		errMsg  string
	}{
		{name: "valid transaction", mutate: func(tx *domain.Transaction) {}},
		{name: "card source", mutate: func(tx *domain.Transaction) { tx.Source = domain.SourceCard }},
		{
			name:    "zero amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = 0 },
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{
			name:    "negative amount",
			mutate:  func(tx *domain.Transaction) { tx.Amount = -5 },
			wantErr: true,
			errMsg:  "amount must be positive",
		},
		{name: "maximum amount", mutate: func(tx *domain.Transaction) { tx.Amount = domain.MaxTransactionAmount }},
		{
			name:    "amount above maximum",
			mutate:  func(tx *domain.Transaction) { tx.Amount = domain.MaxTransactionAmount + 1 },
			wantErr: true,
			errMsg:  "must not exceed",
		},
		{
			name:    "no participants",
			mutate:  func(tx *domain.Transaction) { tx.Participants = nil },
			wantErr: true,
			errMsg:  "at least one participant",
		},
		{
			name:    "missing payer",
			mutate:  func(tx *domain.Transaction) { tx.PayerID = "" },
			wantErr: true,
			errMsg:  "payer is required",
		},
		{
			name:    "unknown source",
			mutate:  func(tx *domain.Transaction) { tx.Source = "crypto" },
			wantErr: true,
			errMsg:  "unknown source",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := valid.Clone()
			tt.mutate(&tx)
			err := tx.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), tt.errMsg)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestTransaction_CloneDoesNotShareParticipants(t *testing.T) {
	tx := domain.Transaction{Participants: []string{"a", "b"}}
	cp := tx.Clone()
	cp.Participants[0] = "z"

	assert.Equal(t, "a", tx.Participants[0])
}

func TestEventCode(t *testing.T) {
	assert.Equal(t, "ABCDEFGH", domain.NormalizeEventCode("  abcdefgh "))
	assert.True(t, domain.IsValidEventCode("ABCDEFGH"))
	assert.False(t, domain.IsValidEventCode("ABCDEFG"))
	assert.False(t, domain.IsValidEventCode("ABCDEFG1"))
	assert.False(t, domain.IsValidEventCode("abcdefgh"))
}
