package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
	"github.com/SscSPs/event_split_app/internal/utils"
)

const maxCodeAttempts = 16

type eventService struct {
	BaseService
	c *coordinator
}

var _ portssvc.EventSvcFacade = (*eventService)(nil)

// CreateEvent stores a new event under a freshly generated code.
func (s *eventService) CreateEvent(ctx context.Context, req dto.CreateEventRequest, creatorID string) (*domain.Event, error) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, fmt.Errorf("%w: title is required", apperrors.ErrValidation)
	}

	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	code, err := s.uniqueCodeLocked()
	if err != nil {
		s.LogError(ctx, err, "Failed to generate event code")
		return nil, err
	}

	event := domain.Event{
		EventID:   s.c.newID(),
		Code:      code,
		Title:     title,
		CreatedBy: creatorID,
		CreatedAt: s.c.now(),
	}

	next := append(s.c.events.snapshot(), event)
	if err := s.c.events.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist event", slog.String("event_code", code))
		return nil, err
	}

	s.LogInfo(ctx, "Event created", slog.String("event_id", event.EventID), slog.String("event_code", code))
	s.c.notify(ctx, portsrepo.StoreEvents, domain.ChangeCreated, event.EventID, event.EventID)
	return &event, nil
}

func (s *eventService) uniqueCodeLocked() (string, error) {
	for i := 0; i < maxCodeAttempts; i++ {
		code, err := utils.GenerateEventCode(domain.EventCodeLength)
		if err != nil {
			return "", fmt.Errorf("%w: %v", apperrors.ErrInternal, err)
		}
		if s.c.eventByCodeLocked(code) == nil {
			return code, nil
		}
	}
	return "", fmt.Errorf("%w: could not find a free event code after %d attempts", apperrors.ErrInternal, maxCodeAttempts)
}

// FindEventByCode resolves a code, ignoring case and surrounding whitespace.
func (s *eventService) FindEventByCode(ctx context.Context, code string) (*domain.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	event := s.c.eventByCodeLocked(domain.NormalizeEventCode(code))
	if event == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event with code %q not found", code))
	}
	cp := *event
	return &cp, nil
}

func (s *eventService) FindEventByID(ctx context.Context, eventID string) (*domain.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	event := s.c.eventByIDLocked(eventID)
	if event == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
	}
	cp := *event
	return &cp, nil
}

func (s *eventService) ListEvents(ctx context.Context) ([]domain.Event, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.events.snapshot(), nil
}

func (c *coordinator) eventByCodeLocked(code string) *domain.Event {
	if !domain.IsValidEventCode(code) {
		return nil
	}
	for i := range c.events.items {
		if c.events.items[i].Code == code {
			return &c.events.items[i]
		}
	}
	return nil
}

func (c *coordinator) eventByIDLocked(eventID string) *domain.Event {
	for i := range c.events.items {
		if c.events.items[i].EventID == eventID {
			return &c.events.items[i]
		}
	}
	return nil
}
