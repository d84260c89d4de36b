package services

import (
	"context"
	"time"
)

// TokenSvcFacade issues and verifies organizer tokens.
type TokenSvcFacade interface {
	// Login checks the organizer password and returns a signed token and its expiry.
	Login(ctx context.Context, password string) (string, time.Time, error)
	// ValidateToken returns the token subject if the token is valid.
	ValidateToken(ctx context.Context, token string) (string, error)
}
