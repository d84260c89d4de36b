package dto

// LoginRequest carries the organizer's shared password.
type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string `json:"token"`
	ExpiresAt int64  `json:"expiresAt"`
}

// SyncResponse reports which stores were re-saved.
type SyncResponse struct {
	Synced []string `json:"synced"`
}

// StateStatusResponse lists stores whose durable copy may be stale.
type StateStatusResponse struct {
	Dirty []string `json:"dirty"`
}
