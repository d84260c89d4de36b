package services

import (
	"context"
	"errors"
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

type joinRequestService struct {
	BaseService
	c *coordinator
}

var _ portssvc.JoinRequestSvcFacade = (*joinRequestService)(nil)

// AddRequest queues a guest's request to join the event identified by its code.
func (s *joinRequestService) AddRequest(ctx context.Context, req dto.CreateJoinRequestRequest) (string, error) {
	code := domain.NormalizeEventCode(req.EventCode)
	if !domain.IsValidEventCode(code) {
		return "", fmt.Errorf("%w: event code must be %d letters", apperrors.ErrValidation, domain.EventCodeLength)
	}
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return "", fmt.Errorf("%w: name is required", apperrors.ErrValidation)
	}

	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	event := s.c.eventByCodeLocked(code)
	if event == nil {
		return "", apperrors.NewNotFoundError(fmt.Sprintf("event with code %q not found", code))
	}

	jr := domain.JoinRequest{
		JoinRequestID: s.c.newID(),
		EventCode:     code,
		Name:          name,
		Email:         strings.TrimSpace(req.Email),
		Mobile:        strings.TrimSpace(req.Mobile),
		Status:        domain.JoinRequestPending,
		CreatedAt:     s.c.now(),
	}

	next := append(s.c.joinRequests.snapshot(), jr)
	if err := s.c.joinRequests.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist join request", slog.String("event_code", code))
		return "", err
	}

	s.LogInfo(ctx, "Join request queued", slog.String("join_request_id", jr.JoinRequestID), slog.String("event_code", code))
	s.c.notify(ctx, portsrepo.StoreJoinRequests, domain.ChangeCreated, jr.JoinRequestID, event.EventID)
	return jr.JoinRequestID, nil
}

// GetPendingByEventCode lists the pending requests for a code, oldest first.
func (s *joinRequestService) GetPendingByEventCode(ctx context.Context, code string) ([]domain.JoinRequest, error) {
	code = domain.NormalizeEventCode(code)

	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	out := make([]domain.JoinRequest, 0)
	for _, jr := range s.c.joinRequests.items {
		if jr.EventCode == code && jr.IsPending() {
			out = append(out, jr)
		}
	}
	slices.SortStableFunc(out, func(a, b domain.JoinRequest) int {
		return a.CreatedAt.Compare(b.CreatedAt)
	})
	return out, nil
}

func (s *joinRequestService) GetRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error) {
	s.c.mu.RLock()
	defer s.c.mu.RUnlock()

	idx := s.c.joinRequestIndexLocked(requestID)
	if idx < 0 {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("join request %s not found", requestID))
	}
	jr := s.c.joinRequests.items[idx]
	return &jr, nil
}

// AcceptRequest registers the requester as a participant and closes the request.
// The participant is saved first; if the queue then fails to save, the participant
// is discarded again so that a retry cannot produce a second one. Listeners hear
// about neither change unless both are committed.
func (s *joinRequestService) AcceptRequest(ctx context.Context, requestID string) (*domain.Participant, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx, err := s.c.pendingRequestLocked(requestID)
	if err != nil {
		return nil, err
	}
	jr := s.c.joinRequests.items[idx]

	event := s.c.eventByCodeLocked(jr.EventCode)
	if event == nil {
		return nil, apperrors.NewNotFoundError(fmt.Sprintf("event with code %q not found", jr.EventCode))
	}

	participant, err := s.c.addParticipantLocked(ctx, event.EventID, jr.Name, jr.Email, jr.Mobile)
	if err != nil {
		s.LogError(ctx, err, "Failed to create participant for join request", slog.String("join_request_id", requestID))
		return nil, err
	}

	decidedAt := s.c.now()
	jr.Status = domain.JoinRequestAccepted
	jr.DecidedAt = &decidedAt
	jr.ParticipantID = participant.ParticipantID

	next := s.c.joinRequests.snapshot()
	next[idx] = jr
	if err := s.c.joinRequests.commit(ctx, s.c.store, next); err != nil {
		compErr := s.c.discardParticipantLocked(ctx, participant.ParticipantID)
		if compErr != nil {
			s.LogError(ctx, compErr, "Failed to persist participant compensation; sync required",
				slog.String("participant_id", participant.ParticipantID))
		}
		s.LogError(ctx, err, "Failed to persist join request acceptance", slog.String("join_request_id", requestID))
		return nil, errors.Join(err, compErr)
	}

	s.LogInfo(ctx, "Join request accepted",
		slog.String("join_request_id", requestID),
		slog.String("participant_id", participant.ParticipantID))
	s.c.notify(ctx, portsrepo.StoreParticipants, domain.ChangeCreated, participant.ParticipantID, event.EventID)
	s.c.notify(ctx, portsrepo.StoreJoinRequests, domain.ChangeUpdated, requestID, event.EventID)
	return participant, nil
}

// RejectRequest closes a pending request without creating a participant.
func (s *joinRequestService) RejectRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error) {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx, err := s.c.pendingRequestLocked(requestID)
	if err != nil {
		return nil, err
	}

	jr := s.c.joinRequests.items[idx]
	decidedAt := s.c.now()
	jr.Status = domain.JoinRequestRejected
	jr.DecidedAt = &decidedAt

	next := s.c.joinRequests.snapshot()
	next[idx] = jr
	if err := s.c.joinRequests.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist join request rejection", slog.String("join_request_id", requestID))
		return nil, err
	}

	var eventID string
	if event := s.c.eventByCodeLocked(jr.EventCode); event != nil {
		eventID = event.EventID
	}
	s.LogInfo(ctx, "Join request rejected", slog.String("join_request_id", requestID))
	s.c.notify(ctx, portsrepo.StoreJoinRequests, domain.ChangeUpdated, requestID, eventID)
	return &jr, nil
}

// DeleteRequest removes a request whatever its status; unknown ids are ignored.
func (s *joinRequestService) DeleteRequest(ctx context.Context, requestID string) error {
	s.c.mu.Lock()
	defer s.c.mu.Unlock()

	idx := s.c.joinRequestIndexLocked(requestID)
	if idx < 0 {
		return nil
	}
	code := s.c.joinRequests.items[idx].EventCode

	next := slices.Delete(s.c.joinRequests.snapshot(), idx, idx+1)
	if err := s.c.joinRequests.commit(ctx, s.c.store, next); err != nil {
		s.LogError(ctx, err, "Failed to persist join request deletion", slog.String("join_request_id", requestID))
		return err
	}

	var eventID string
	if event := s.c.eventByCodeLocked(code); event != nil {
		eventID = event.EventID
	}
	s.c.notify(ctx, portsrepo.StoreJoinRequests, domain.ChangeDeleted, requestID, eventID)
	return nil
}

func (c *coordinator) joinRequestIndexLocked(requestID string) int {
	return slices.IndexFunc(c.joinRequests.items, func(jr domain.JoinRequest) bool {
		return jr.JoinRequestID == requestID
	})
}

func (c *coordinator) pendingRequestLocked(requestID string) (int, error) {
	idx := c.joinRequestIndexLocked(requestID)
	if idx < 0 {
		return -1, apperrors.NewNotFoundError(fmt.Sprintf("join request %s not found", requestID))
	}
	if jr := c.joinRequests.items[idx]; !jr.IsPending() {
		return -1, apperrors.NewConflictError(fmt.Sprintf("join request %s is already %s", requestID, jr.Status))
	}
	return idx, nil
}
