package apperrors_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/SscSPs/event_split_app/internal/apperrors"
	"github.com/stretchr/testify/assert"
)

func TestAppError_MatchesKindAndCause(t *testing.T) {
	cause := errors.New("redis: connection refused")
	err := apperrors.NewPersistenceError("failed to save transactions", cause)

	assert.ErrorIs(t, err, apperrors.ErrPersistence)
	assert.ErrorIs(t, err, cause)
	assert.Contains(t, err.Error(), "connection refused")

	var appErr *apperrors.AppError
	assert.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.Code)
}

func TestNewAppError_KindFromCode(t *testing.T) {
	tests := []struct {
		code int
		want error
	}{
		{http.StatusBadRequest, apperrors.ErrValidation},
		{http.StatusNotFound, apperrors.ErrNotFound},
		{http.StatusConflict, apperrors.ErrConflict},
		{http.StatusServiceUnavailable, apperrors.ErrPersistence},
		{http.StatusInternalServerError, apperrors.ErrInternal},
	}

	for _, tt := range tests {
		t.Run(fmt.Sprint(tt.code), func(t *testing.T) {
			err := apperrors.NewAppError(tt.code, "boom", nil)
			assert.ErrorIs(t, err, tt.want)
			assert.Equal(t, "boom", err.Error())
		})
	}
}

func TestWrappedSentinels(t *testing.T) {
	err := fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	assert.ErrorIs(t, err, apperrors.ErrValidation)
	assert.NotErrorIs(t, err, apperrors.ErrConflict)

	assert.ErrorIs(t, apperrors.NewConflictError("request already decided"), apperrors.ErrConflict)
	assert.ErrorIs(t, apperrors.NewIntegrityError("unknown participant"), apperrors.ErrIntegrity)
	assert.ErrorIs(t, apperrors.NewNotFoundError("event not found"), apperrors.ErrNotFound)
	assert.ErrorIs(t, apperrors.NewValidationFailedError("name required"), apperrors.ErrValidation)
}
