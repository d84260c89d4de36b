package dto

import (
	"time"

	"github.com/SscSPs/event_split_app/internal/core/domain"
)

// CreateJoinRequestRequest is what a guest submits to ask to join an event.
type CreateJoinRequestRequest struct {
	EventCode string `json:"eventCode" binding:"required,eventcode"`
	Name      string `json:"name" binding:"required,max=100"`
	Email     string `json:"email" binding:"omitempty,email"`
	Mobile    string `json:"mobile" binding:"omitempty,max=32"`
}

// CreateJoinRequestResponse returns the id of the queued request.
type CreateJoinRequestResponse struct {
	JoinRequestID string `json:"joinRequestID"`
}

// JoinRequestResponse defines data returned for a join request.
type JoinRequestResponse struct {
	JoinRequestID string                   `json:"joinRequestID"`
	EventCode     string                   `json:"eventCode"`
	Name          string                   `json:"name"`
	Email         string                   `json:"email,omitempty"`
	Mobile        string                   `json:"mobile,omitempty"`
	Status        domain.JoinRequestStatus `json:"status"`
	CreatedAt     time.Time                `json:"createdAt"`
	DecidedAt     *time.Time               `json:"decidedAt,omitempty"`
	ParticipantID string                   `json:"participantID,omitempty"`
}

// ToJoinRequestResponse converts domain.JoinRequest to DTO.
func ToJoinRequestResponse(r *domain.JoinRequest) JoinRequestResponse {
	return JoinRequestResponse{
		JoinRequestID: r.JoinRequestID,
		EventCode:     r.EventCode,
		Name:          r.Name,
		Email:         r.Email,
		Mobile:        r.Mobile,
		Status:        r.Status,
		CreatedAt:     r.CreatedAt,
		DecidedAt:     r.DecidedAt,
		ParticipantID: r.ParticipantID,
	}
}

// ListJoinRequestsResponse wraps a list of join requests.
type ListJoinRequestsResponse struct {
	JoinRequests []JoinRequestResponse `json:"joinRequests"`
}

// ToListJoinRequestsResponse converts a slice of domain.JoinRequest to DTO.
func ToListJoinRequestsResponse(rs []domain.JoinRequest) ListJoinRequestsResponse {
	list := make([]JoinRequestResponse, len(rs))
	for i, r := range rs {
		list[i] = ToJoinRequestResponse(&r)
	}
	return ListJoinRequestsResponse{JoinRequests: list}
}
