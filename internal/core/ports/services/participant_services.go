package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/dto"
)

// ParticipantReaderSvc defines read operations for the participant registry.
type ParticipantReaderSvc interface {
	GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error)
	// ListByEvent returns the participants of an event in registration order.
	ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error)
}

// ParticipantWriterSvc defines write operations for the participant registry.
type ParticipantWriterSvc interface {
	// AddParticipant registers a participant directly, bypassing the join-request queue.
	AddParticipant(ctx context.Context, eventID string, req dto.CreateParticipantRequest) (*domain.Participant, error)

	// ValidateParticipant sets HasValidated. Calling it again is harmless.
	ValidateParticipant(ctx context.Context, participantID string) (*domain.Participant, error)

	// RemoveParticipant deletes a participant. It fails with a conflict while any
	// transaction of the event still references the participant.
	RemoveParticipant(ctx context.Context, participantID string) error
}

// ParticipantSvcFacade combines all participant-related service interfaces.
type ParticipantSvcFacade interface {
	ParticipantReaderSvc
	ParticipantWriterSvc
}
