package domain

// Participant is a person attending an event. A participant belongs to exactly one event.
type Participant struct {
	ParticipantID string `json:"participantID"`
	EventID       string `json:"eventID"`
	Name          string `json:"name"`
	Email         string `json:"email"`
	Mobile        string `json:"mobile"`
	HasValidated  bool   `json:"hasValidated"`
	AuditFields
}
