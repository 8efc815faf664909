package domain

import (
	"errors"
	"fmt"
)

// Authentication failures. All of them wrap ErrUnauthorized so the boundary can
// collapse them into one response while logs keep the specific branch.
var (
	ErrUnauthorized       = errors.New("unauthorized")
	ErrInvalidToken       = fmt.Errorf("%w: invalid or expired token", ErrUnauthorized)
	ErrMissingSubject     = fmt.Errorf("%w: token has no subject", ErrUnauthorized)
	ErrUserNotFound       = fmt.Errorf("%w: user not found", ErrUnauthorized)
	ErrUserInactive       = fmt.Errorf("%w: user is inactive", ErrUnauthorized)
	ErrInvalidCredentials = fmt.Errorf("%w: invalid email or password", ErrUnauthorized)
)

var (
	// ErrValidation matches every *ValidationError via errors.Is.
	ErrValidation = errors.New("validation failed")
	// ErrMovieNotFound is returned when the movie does not exist for the requesting user.
	ErrMovieNotFound = errors.New("movie not found")
	// ErrUpstreamUnavailable wraps any failure talking to the movie metadata API.
	ErrUpstreamUnavailable = errors.New("movie metadata service unavailable")
)

// ValidationError is a client mistake with a message safe to show to the user.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

func (e *ValidationError) Is(target error) bool { return target == ErrValidation }

// NewValidationError builds a ValidationError.
func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

var (
	ErrEmailTaken     = &ValidationError{Message: "Email already registered"}
	ErrUsernameTaken  = &ValidationError{Message: "Username already taken"}
	ErrEmptyUpdate    = &ValidationError{Message: "No fields to update"}
	ErrDuplicateMovie = &ValidationError{Message: "Movie is already in your watchlist"}
	ErrEmptyQuery     = &ValidationError{Message: "Search query must not be empty"}
)

// UpstreamError carries the HTTP status returned by the metadata API (0 for transport failures).
type UpstreamError struct {
	StatusCode int
	Err        error
}

func (e *UpstreamError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: status %d", ErrUpstreamUnavailable.Error(), e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", ErrUpstreamUnavailable.Error(), e.Err)
}

func (e *UpstreamError) Is(target error) bool { return target == ErrUpstreamUnavailable }

func (e *UpstreamError) Unwrap() error { return e.Err }
