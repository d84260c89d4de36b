package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/dto"
)

// EventReaderSvc defines read operations for the event directory.
type EventReaderSvc interface {
	// FindEventByCode resolves a join code, case-insensitively.
	FindEventByCode(ctx context.Context, code string) (*domain.Event, error)
	FindEventByID(ctx context.Context, eventID string) (*domain.Event, error)
	ListEvents(ctx context.Context) ([]domain.Event, error)
}

// EventWriterSvc defines write operations for the event directory.
type EventWriterSvc interface {
	// CreateEvent persists a new event with a freshly generated unique code.
	CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorID string) (*domain.Event, error)
}

// EventSvcFacade combines all event-related service interfaces.
type EventSvcFacade interface {
	EventReaderSvc
	EventWriterSvc
}
