package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Session errors
var (
	ErrSessionNotFound = errors.New("session not found")
	ErrSessionExpired  = errors.New("session has expired")
)

// Authentication errors
var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrTokenInvalid       = errors.New("invalid token")
)

// Authorization errors
var (
	ErrUnauthorized     = errors.New("unauthorized access")
	ErrInsufficientRole = errors.New("insufficient role permissions")
)

// Workflow errors
var (
	ErrActionNotAllowed     = errors.New("action not allowed in current status")
	ErrNoStagedFile         = errors.New("no signed contract file staged")
	ErrConfirmationRequired = errors.New("explicit confirmation required")
)

// AuthError is a rejected login, carrying the server-provided message when
// one was present in the response payload.
type AuthError struct {
	Message string
}

func (e *AuthError) Error() string {
	if e.Message == "" {
		return ErrInvalidCredentials.Error()
	}
	return e.Message
}

func (e *AuthError) Unwrap() error { return ErrInvalidCredentials }

// ValidationError is a locally detected incomplete submission. It is raised
// before any network call and lists the missing fields.
type ValidationError struct {
	Missing []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("missing required fields: %s", strings.Join(e.Missing, ", "))
}

// APIError is a non-2xx backend response. Message holds the server error
// payload when it was decodable, else a generic fallback.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("backend request failed with status %d", e.Status)
	}
	return fmt.Sprintf("backend request failed with status %d: %s", e.Status, e.Message)
}
