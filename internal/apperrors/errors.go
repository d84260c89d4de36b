package apperrors

import (
	"errors"
	"net/http"
)

// ErrNotFound indicates that a requested resource could not be found.
var ErrNotFound = errors.New("resource not found")

// ErrValidation indicates that input data failed validation checks.
var ErrValidation = errors.New("validation error")

// ErrDuplicate indicates that an attempt was made to create a resource that already exists.
var ErrDuplicate = errors.New("resource already exists")

// ErrConflict indicates a state-machine violation, e.g. deciding a request that is no longer pending.
var ErrConflict = errors.New("conflict with current state")

// ErrIntegrity indicates that a derived computation found a referential inconsistency.
var ErrIntegrity = errors.New("integrity violation")

// ErrPersistence indicates that the external state store could not be read or written.
// The durable copy may be stale; callers should retry the sync.
var ErrPersistence = errors.New("persistence failure")

// ErrUnauthorized indicates missing or invalid credentials.
var ErrUnauthorized = errors.New("unauthorized")

// ErrForbidden indicates the caller is authenticated but not allowed to act.
var ErrForbidden = errors.New("forbidden")

// ErrInternal is a generic internal failure.
var ErrInternal = errors.New("internal error")

// AppError carries an HTTP-ish status code, a message, the error kind (one of the
// sentinels above) and an optional underlying cause.
type AppError struct {
	Code    int
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap exposes both the kind and the cause so errors.Is matches either.
func (e *AppError) Unwrap() []error {
	errs := make([]error, 0, 2)
	if e.Kind != nil {
		errs = append(errs, e.Kind)
	}
	if e.Err != nil {
		errs = append(errs, e.Err)
	}
	return errs
}

// NewAppError builds an AppError whose kind is derived from the status code.
func NewAppError(code int, message string, err error) *AppError {
	return &AppError{Code: code, Message: message, Kind: kindForCode(code), Err: err}
}

// NewNotFoundError creates a not found error with the given message.
func NewNotFoundError(message string) error {
	return &AppError{Code: http.StatusNotFound, Message: message, Kind: ErrNotFound}
}

// NewValidationFailedError creates a validation error with the given message.
func NewValidationFailedError(message string) error {
	return &AppError{Code: http.StatusBadRequest, Message: message, Kind: ErrValidation}
}

// NewConflictError creates a conflict error with the given message.
func NewConflictError(message string) error {
	return &AppError{Code: http.StatusConflict, Message: message, Kind: ErrConflict}
}

// NewIntegrityError creates an integrity error with the given message.
func NewIntegrityError(message string) error {
	return &AppError{Code: http.StatusInternalServerError, Message: message, Kind: ErrIntegrity}
}

// NewPersistenceError wraps a state store failure.
func NewPersistenceError(message string, err error) error {
	return &AppError{Code: http.StatusServiceUnavailable, Message: message, Kind: ErrPersistence, Err: err}
}

func kindForCode(code int) error {
	switch code {
	case http.StatusBadRequest:
		return ErrValidation
	case http.StatusUnauthorized:
		return ErrUnauthorized
	case http.StatusForbidden:
		return ErrForbidden
	case http.StatusNotFound:
		return ErrNotFound
	case http.StatusConflict:
		return ErrConflict
	case http.StatusServiceUnavailable:
		return ErrPersistence
	default:
		return ErrInternal
	}
}
