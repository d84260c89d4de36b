package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	portssvc "github.com/SscSPs/event_split_app/internal/core/ports/services"
	"github.com/SscSPs/event_split_app/internal/platform/config"
	"github.com/SscSPs/event_split_app/internal/utils"
)

// organizerSubject is the JWT subject for the shared organizer account.
const organizerSubject = "organizer"

// tokenService implements TokenSvcFacade for the organizer login. The organizer
// password is configured as a bcrypt hash.
type tokenService struct {
	BaseService
	cfg *config.Config
}

var _ portssvc.TokenSvcFacade = (*tokenService)(nil)

// NewTokenService creates a new instance of tokenService.
func NewTokenService(cfg *config.Config) portssvc.TokenSvcFacade {
	return &tokenService{cfg: cfg}
}

// Login checks the password against the configured hash and issues an access token.
func (s *tokenService) Login(ctx context.Context, password string) (string, time.Time, error) {
	if s.cfg.OrganizerPasswordHash == "" {
		s.LogInfo(ctx, "Organizer login attempted but no password hash is configured")
		return "", time.Time{}, fmt.Errorf("%w: organizer login is disabled", apperrors.ErrUnauthorized)
	}
	if !utils.CheckPasswordHash(password, s.cfg.OrganizerPasswordHash) {
		s.GetLogger(ctx).Warn("Organizer login failed")
		return "", time.Time{}, fmt.Errorf("%w: invalid credentials", apperrors.ErrUnauthorized)
	}

	token, expiresAt, err := utils.GenerateJWT(organizerSubject, s.cfg.JWTSecret, s.cfg.JWTExpiryDuration, s.cfg.JWTIssuer)
	if err != nil {
		s.LogError(ctx, err, "Failed to sign organizer token")
		return "", time.Time{}, fmt.Errorf("%w: failed to sign token", apperrors.ErrInternal)
	}

	s.LogInfo(ctx, "Organizer logged in", slog.Time("expires_at", expiresAt))
	return token, expiresAt, nil
}

// ValidateToken returns the subject of a valid organizer token.
func (s *tokenService) ValidateToken(ctx context.Context, token string) (string, error) {
	claims, err := utils.ParseAndValidateJWT(token, s.cfg.JWTSecret)
	if err != nil {
		return "", fmt.Errorf("%w: %v", apperrors.ErrUnauthorized, err)
	}
	return claims.Subject, nil
}
