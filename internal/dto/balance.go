package dto

import (
	"sort"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/utils"
)

// BalanceResponse is one participant's net position.
type BalanceResponse struct {
	ParticipantID   string `json:"participantID"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
}

// BalancesResponse lists net balances ordered by participant id.
type BalancesResponse struct {
	EventID  string            `json:"eventID"`
	Balances []BalanceResponse `json:"balances"`
}

// ToBalancesResponse converts a balance map into a deterministic list.
func ToBalancesResponse(eventID string, balances map[string]int64) BalancesResponse {
	ids := make([]string, 0, len(balances))
	for id := range balances {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	list := make([]BalanceResponse, len(ids))
	for i, id := range ids {
		list[i] = BalanceResponse{
			ParticipantID:   id,
			Amount:          balances[id],
			AmountFormatted: utils.FormatMinorUnits(balances[id], utils.DefaultMinorUnitDigits),
		}
	}
	return BalancesResponse{EventID: eventID, Balances: list}
}

// SettlementResponse is one transfer in a settling plan.
type SettlementResponse struct {
	FromID          string `json:"fromID"`
	ToID            string `json:"toID"`
	Amount          int64  `json:"amount"`
	AmountFormatted string `json:"amountFormatted"`
}

// SettlementsResponse wraps a settling plan.
type SettlementsResponse struct {
	EventID     string               `json:"eventID"`
	Settlements []SettlementResponse `json:"settlements"`
}

// ToSettlementResponses converts domain settlements to DTOs.
func ToSettlementResponses(ss []domain.Settlement) []SettlementResponse {
	list := make([]SettlementResponse, len(ss))
	for i, s := range ss {
		list[i] = SettlementResponse{
			FromID:          s.FromID,
			ToID:            s.ToID,
			Amount:          s.Amount,
			AmountFormatted: utils.FormatMinorUnits(s.Amount, utils.DefaultMinorUnitDigits),
		}
	}
	return list
}

// EventSummaryResponse is the organizer's balance sheet for an event.
type EventSummaryResponse struct {
	EventID             string                      `json:"eventID"`
	TotalSpent          int64                       `json:"totalSpent"`
	TotalSpentFormatted string                      `json:"totalSpentFormatted"`
	Participants        []domain.ParticipantSummary `json:"participants"`
	Settlements         []SettlementResponse        `json:"settlements"`
}

// ToEventSummaryResponse converts domain.EventSummary to DTO.
func ToEventSummaryResponse(s *domain.EventSummary) EventSummaryResponse {
	return EventSummaryResponse{
		EventID:             s.EventID,
		TotalSpent:          s.TotalSpent,
		TotalSpentFormatted: utils.FormatMinorUnits(s.TotalSpent, utils.DefaultMinorUnitDigits),
		Participants:        s.Participants,
		Settlements:         ToSettlementResponses(s.Settlements),
	}
}
