package dto

import (
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/utils"
)

// CreateTransactionRequest defines data for recording an expense.
type CreateTransactionRequest struct {
	PayerID      string                   `json:"payerID" binding:"required"`
	Participants []string                 `json:"participants" binding:"required,min=1,dive,required"`
	Amount       int64                    `json:"amount" binding:"required,gt=0,lte=1000000000000"` // minor units
	Source       domain.TransactionSource `json:"source" binding:"omitempty,oneof=manual cash card"`
	Description  string                   `json:"description" binding:"max=500"`
}

// UpdateTransactionRequest defines a partial update. Nil fields are left untouched.
type UpdateTransactionRequest struct {
	PayerID      *string                   `json:"payerID,omitempty"`
	Participants []string                  `json:"participants,omitempty" binding:"omitempty,min=1,dive,required"`
	Amount       *int64                    `json:"amount,omitempty" binding:"omitempty,gt=0,lte=1000000000000"`
	Source       *domain.TransactionSource `json:"source,omitempty" binding:"omitempty,oneof=manual cash card"`
	Description  *string                   `json:"description,omitempty" binding:"omitempty,max=500"`
}

// TransactionResponse defines data returned for a transaction.
type TransactionResponse struct {
	TransactionID   string                   `json:"transactionID"`
	EventID         string                   `json:"eventID"`
	PayerID         string                   `json:"payerID"`
	Participants    []string                 `json:"participants"`
	Amount          int64                    `json:"amount"`
	AmountFormatted string                   `json:"amountFormatted"`
	Source          domain.TransactionSource `json:"source"`
	Description     string                   `json:"description,omitempty"`
	CreatedAt       time.Time                `json:"createdAt"`
	UpdatedAt       time.Time                `json:"updatedAt"`
}

// ToTransactionResponse converts a domain.Transaction to TransactionResponse DTO.
func ToTransactionResponse(txn *domain.Transaction) TransactionResponse {
	return TransactionResponse{
		TransactionID:   txn.TransactionID,
		EventID:         txn.EventID,
		PayerID:         txn.PayerID,
		Participants:    append([]string(nil), txn.Participants...),
		Amount:          txn.Amount,
		AmountFormatted: utils.FormatMinorUnits(txn.Amount, utils.DefaultMinorUnitDigits),
		Source:          txn.Source,
		Description:     txn.Description,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.UpdatedAt,
	}
}

// ToTransactionResponses converts a slice of domain.Transaction to []TransactionResponse.
func ToTransactionResponses(txns []domain.Transaction) []TransactionResponse {
	responses := make([]TransactionResponse, len(txns))
	for i, txn := range txns {
		responses[i] = ToTransactionResponse(&txn)
	}
	return responses
}

// ListTransactionsParams holds query parameters for listing an event's transactions.
type ListTransactionsParams struct {
	Limit     int    `form:"limit,default=20" binding:"omitempty,min=1,max=100"`
	NextToken string `form:"nextToken"`
}

// ListTransactionsResponse is a page of transactions, newest first.
type ListTransactionsResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	NextToken    *string               `json:"nextToken,omitempty"`
}
