package domain

// Balance is a participant's net position: positive is owed money, negative owes money.
type Balance struct {
	ParticipantID string `json:"participantID"`
	Amount        int64  `json:"amount"`
}

// Settlement is a single transfer that moves Amount from a debtor to a creditor.
type Settlement struct {
	FromID string `json:"fromID"`
	ToID   string `json:"toID"`
	Amount int64  `json:"amount"`
}

// ParticipantSummary aggregates what a participant paid and consumed in an event.
type ParticipantSummary struct {
	ParticipantID string `json:"participantID"`
	Name          string `json:"name"`
	Paid          int64  `json:"paid"`
	Owed          int64  `json:"owed"`
	Net           int64  `json:"net"`
}

// EventSummary is the balance view of one event.
type EventSummary struct {
	EventID      string               `json:"eventID"`
	TotalSpent   int64                `json:"totalSpent"`
	Participants []ParticipantSummary `json:"participants"`
	Settlements  []Settlement         `json:"settlements"`
}
