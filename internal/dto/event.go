package dto

import (
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// --- Event DTOs ---

// CreateEventRequest defines data for creating a new event.
type CreateEventRequest struct {
	Title string `json:"title" binding:"required,max=200"`
}

// EventResponse defines data returned for an event.
type EventResponse struct {
	EventID   string    `json:"eventID"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	CreatedBy string    `json:"createdBy"`
	CreatedAt time.Time `json:"createdAt"`
}

// ToEventResponse converts domain.Event to DTO.
func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		EventID:   e.EventID,
		Code:      e.Code,
		Title:     e.Title,
		CreatedBy: e.CreatedBy,
		CreatedAt: e.CreatedAt,
	}
}

// PublicEventResponse is what an unauthenticated guest sees when looking up a code.
type PublicEventResponse struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

// ToPublicEventResponse strips organizer-only fields.
func ToPublicEventResponse(e *domain.Event) PublicEventResponse {
	return PublicEventResponse{Code: e.Code, Title: e.Title}
}

// ListEventsResponse wraps a list of events.
type ListEventsResponse struct {
	Events []EventResponse `json:"events"`
}

// ToListEventsResponse converts a slice of domain.Event to DTO.
func ToListEventsResponse(es []domain.Event) ListEventsResponse {
	list := make([]EventResponse, len(es))
	for i, e := range es {
		list[i] = ToEventResponse(&e)
	}
	return ListEventsResponse{Events: list}
}
