package services

import (
	"context"

	"github.com/SscSPs/event_split_app/internal/core/domain"
	"github.com/SscSPs/event_split_app/internal/dto"
)

// JoinRequestReaderSvc defines read operations for the join-request queue.
type JoinRequestReaderSvc interface {
	GetRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error)
	// GetPendingByEventCode lists pending requests for a code, oldest first.
	GetPendingByEventCode(ctx context.Context, code string) ([]domain.JoinRequest, error)
}

// JoinRequestWriterSvc defines write operations for the join-request queue.
type JoinRequestWriterSvc interface {
	// AddRequest queues a request for an existing event and returns its id.
	AddRequest(ctx context.Context, req dto.CreateJoinRequestRequest) (string, error)

	// AcceptRequest marks a pending request accepted and registers exactly one participant for it.
	AcceptRequest(ctx context.Context, requestID string) (*domain.Participant, error)

	// RejectRequest marks a pending request rejected.
	RejectRequest(ctx context.Context, requestID string) (*domain.JoinRequest, error)

	// DeleteRequest removes a request in any status. Deleting an unknown id is a no-op.
	DeleteRequest(ctx context.Context, requestID string) error
}

// JoinRequestSvcFacade combines all join-request service interfaces.
type JoinRequestSvcFacade interface {
	JoinRequestReaderSvc
	JoinRequestWriterSvc
}
