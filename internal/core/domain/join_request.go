package domain

import "time"

// JoinRequestStatus is the lifecycle state of a join request.
type JoinRequestStatus string

const (
	JoinRequestPending  JoinRequestStatus = "pending"
	JoinRequestAccepted JoinRequestStatus = "accepted"
	JoinRequestRejected JoinRequestStatus = "rejected"
)

// JoinRequest is a pending application to join an event, identified by the event's code.
// Once accepted or rejected it never changes status again.
type JoinRequest struct {
	JoinRequestID string            `json:"joinRequestID"`
	EventCode     string            `json:"eventCode"`
	Name          string            `json:"name"`
	Email         string            `json:"email"`
	Mobile        string            `json:"mobile"`
	Status        JoinRequestStatus `json:"status"`
	CreatedAt     time.Time         `json:"createdAt"`
	DecidedAt     *time.Time        `json:"decidedAt,omitempty"`
	ParticipantID string            `json:"participantID,omitempty"` // set on accept
}

// IsPending reports whether the request can still be decided.
func (r JoinRequest) IsPending() bool {
	return r.Status == JoinRequestPending
}
