package domain

import "time"

// ChangeAction describes what happened to an entity.
type ChangeAction string

const (
	ChangeCreated ChangeAction = "created"
	ChangeUpdated ChangeAction = "updated"
	ChangeDeleted ChangeAction = "deleted"
)

// ChangeEvent is emitted after a mutation has been committed.
type ChangeEvent struct {
	Store      string       `json:"store"`
	Action     ChangeAction `json:"action"`
	EntityID   string       `json:"entityID"`
	EventID    string       `json:"eventID,omitempty"`
	OccurredAt time.Time    `json:"occurredAt"`
}
