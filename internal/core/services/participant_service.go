package services

import (
	"context"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/SscSPs/event_split_app/internal/core/domain"
	portsrepo "github.com/SscSPs/event_split_app/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/dto"
)

type participantService struct {
	BaseService
	c *coordinator
}

var _ portssvc.ParticipantSvcFacade = (*participantService)(nil)

// AddParticipant registers a participant directly with an existing event.
func (s *participantService) AddParticipant(ctx context.Context, eventID string, req dto.CreateParticipantRequest) (*domain.Participant, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	p, err := s.c.addParticipantLocked(ctx, eventID, req.Name, req.Email, req.Mobile)
	if err != nil {
		s.LogError(ctx, err, "Failed to add participant", slog.String("event_id", eventID))
		return nil, err
	}
	s.LogInfo(ctx, "Participant added", slog.String("participant_id", p.ParticipantID), slog.String("event_id", eventID))
	s.c.notify(ctx, portsrepo.StoreParticipants, domain.ChangeCreated, p.ParticipantID, eventID)
	return p, nil
}

// addParticipantLocked validates and persists a new participant. Callers announce it
// once their last commit has succeeded.
func (c *coordinator) addParticipantLocked(ctx context.Context, eventID, name, email, mobile string) (*domain.Participant, error) {
	if c.eventByIDLocked(eventID) == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event %s not found", eventID))
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, fmt.Errorf("%w: participant name is required", apperrors.ErrValidation)
	}

	now := c.now()
	p := domain.Participant{
		ParticipantID: c.newID(),
		EventID:       eventID,
		Name:          name,
		Email:         strings.TrimSpace(email),
		Mobile:        strings.TrimSpace(mobile),
		AuditFields:   domain.AuditFields{CreatedAt: now, UpdatedAt: now},
	}

	next := append(c.participants.snapshot(), p)
	if err := c.participants.commit(ctx, c.store, next); err != nil {
		return nil, err
	}
	return &p, nil
}

// discardParticipantLocked undoes addParticipantLocked. Memory is always updated;
// a failed save leaves the participants store dirty.
func (c *coordinator) discardParticipantLocked(ctx context.Context, participantID string) error {
	next := slices.DeleteFunc(c.participants.snapshot(), func(p domain.Participant) bool {
		return p.ParticipantID == participantID
	})
	return c.participants.force(ctx, c.store, next)
}

// ValidateParticipant marks a participant as validated. Validating twice is a no-op.
func (s *participantService) ValidateParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx := s.c.participantIndexLocked(participantID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("participant %s not found", participantID))
	}
	current := s.c.participants.items[idx]
	if current.HasValidated {
		return &current, nil
	}

	updated := current
	updated.HasValidated = true
	updated.UpdatedAt = s.c.now()

	next := s.c.participants.snapshot()
	next[idx] = updated
	if err := s.c.participants.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist participant validation", slog.String("participant_id", participantID))
		return nil, err
	}

	s.c.notify(ctx, portsrepo.StoreParticipants, domain.ChangeUpdated, participantID, updated.EventID)
	return &updated, nil
}

// RemoveParticipant deletes a participant that no transaction references.
func (s *participantService) RemoveParticipant(ctx context.Context, participantID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx := s.c.participantIndexLocked(participantID)
	if idx < 0 {
		return apperrors.NewNotFoundError(fmt.Sprintf("participant %s not found", participantID))
	}
	p := s.c.participants.items[idx]

	for _, txn := range s.c.transactions.items {
		if txn.EventID == p.EventID && txn.Involves(participantID) {
			return apperrors.NewConflictError(fmt.Sprintf(
				"participant %s is referenced by transaction %s", participantID, txn.TransactionID))
		}
	}

	next := slices.Delete(s.c.participants.snapshot(), idx, idx+1)
	if err := s.c.participants.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist participant removal", slog.String("participant_id", participantID))
		return err
	}

	s.LogInfo(ctx, "Participant removed", slog.String("participant_id", participantID))
	s.c.notify(ctx, portsrepo.StoreParticipants, domain.ChangeDeleted, participantID, p.EventID)
	return nil
}

func (s *participantService) GetParticipant(ctx context.Context, participantID string) (*domain.Participant, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	idx := s.c.participantIndexLocked(participantID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("participant %s not found", participantID))
	}
	p := s.c.participants.items[idx]
	return &p, nil
}

func (s *participantService) ListByEvent(ctx context.Context, eventID string) ([]domain.Participant, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	return s.c.participantsOfEventLocked(eventID), nil
}

func (c *coordinator) participantIndexLocked(participantID string) int {
	return slices.IndexFunc(c.participants.items, func(p domain.Participant) bool {
		return p.ParticipantID == participantID
	})
}

func (c *coordinator) participantsOfEventLocked(eventID string) []domain.Participant {
	out := make([]domain.Participant, 0)
	for _, p := range c.participants.items {
		if p.EventID == eventID {
			out = append(out, p)
		}
	}
	return out
}
