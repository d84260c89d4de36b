package dto

import (
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// CreateParticipantRequest defines data for adding a participant to an event directly.
type CreateParticipantRequest struct {
	Name   string `json:"name" binding:"required,max=100"`
	Email  string `json:"email" binding:"omitempty,email"`
	Mobile string `json:"mobile" binding:"omitempty,max=32"`
}

// ParticipantResponse defines data returned for a participant.
type ParticipantResponse struct {
	ParticipantID string    `json:"participantID"`
	EventID       string    `json:"eventID"`
	Name          string    `json:"name"`
	Email         string    `json:"email,omitempty"`
	Mobile        string    `json:"mobile,omitempty"`
	HasValidated  bool      `json:"hasValidated"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// ToParticipantResponse converts domain.Participant to DTO.
func ToParticipantResponse(p *domain.Participant) ParticipantResponse {
	return ParticipantResponse{
		ParticipantID: p.ParticipantID,
		EventID:       p.EventID,
		Name:          p.Name,
		Email:         p.Email,
		Mobile:        p.Mobile,
		HasValidated:  p.HasValidated,
		CreatedAt:     p.CreatedAt,
		UpdatedAt:     p.UpdatedAt,
	}
}

// ListParticipantsResponse wraps a list of participants.
type ListParticipantsResponse struct {
	Participants []ParticipantResponse `json:"participants"`
}

// ToListParticipantsResponse converts a slice of domain.Participant to DTO.
func ToListParticipantsResponse(ps []domain.Participant) ListParticipantsResponse {
	list := make([]ParticipantResponse, len(ps))
	for i, p := range ps {
		list[i] = ToParticipantResponse(&p)
	}
	return ListParticipantsResponse{Participants: list}
}
