package errors

import (
	"errors"
	"fmt"
	"strings"
)

// ErrorCode represents a unique error identifier
type ErrorCode string

// Error categories
const (
	// Authentication errors (AUTH-001 to AUTH-099)
	ErrCodeInvalidCredentials ErrorCode = "AUTH-001"
	ErrCodeRegistrationFailed ErrorCode = "AUTH-002"
	ErrCodeNotAuthenticated   ErrorCode = "AUTH-003"

	// Session errors (SESSION-001 to SESSION-099)
	ErrCodeSessionExpired    ErrorCode = "SESSION-001"
	ErrCodeSessionCorrupt    ErrorCode = "SESSION-002"
	ErrCodeSessionIncomplete ErrorCode = "SESSION-003"

	// API errors (API-001 to API-099)
	ErrCodeValidation ErrorCode = "API-001"
	ErrCodeNotFound   ErrorCode = "API-002"
	ErrCodeServer     ErrorCode = "API-003"
	ErrCodeTransport  ErrorCode = "API-004"
	ErrCodeDecode     ErrorCode = "API-005"

	// Configuration errors (CONFIG-001 to CONFIG-099)
	ErrCodeConfigInvalid ErrorCode = "CONFIG-001"
	ErrCodeConfigLoad    ErrorCode = "CONFIG-002"

	// File I/O errors (IO-001 to IO-099)
	ErrCodeFileReadFailed  ErrorCode = "IO-001"
	ErrCodeFileWriteFailed ErrorCode = "IO-002"
)

// LudexError represents an enhanced error with code, suggestions, and detail
type LudexError struct {
	Code        ErrorCode
	Message     string
	Suggestions []string
	Detail      string
	Cause       error
}

// Error implements the error interface
func (e *LudexError) Error() string {
	var b strings.Builder

	b.WriteString(fmt.Sprintf("[%s] %s", e.Code, e.Message))

	if e.Detail != "" {
		b.WriteString(fmt.Sprintf(" (%s)", e.Detail))
	}

	if e.Cause != nil {
		b.WriteString(fmt.Sprintf(": %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		b.WriteString("\n\nSuggestions:")
		for _, suggestion := range e.Suggestions {
			b.WriteString(fmt.Sprintf("\n  • %s", suggestion))
		}
	}

	return b.String()
}

// Unwrap implements error unwrapping for errors.Is and errors.As
func (e *LudexError) Unwrap() error {
	return e.Cause
}

// Is matches LudexErrors by code so errors.Is works with sentinel-style
// comparisons against constructor output.
func (e *LudexError) Is(target error) bool {
	var other *LudexError
	if !errors.As(target, &other) {
		return false
	}
	return e.Code == other.Code
}

// New creates a new LudexError
func New(code ErrorCode, message string) *LudexError {
	return &LudexError{
		Code:    code,
		Message: message,
	}
}

// Wrap creates a new LudexError wrapping an existing error
func Wrap(code ErrorCode, message string, cause error) *LudexError {
	return &LudexError{
		Code:    code,
		Message: message,
		Cause:   cause,
	}
}

// WithSuggestion adds a suggestion to the error
func (e *LudexError) WithSuggestion(suggestion string) *LudexError {
	e.Suggestions = append(e.Suggestions, suggestion)
	return e
}

// WithSuggestions adds multiple suggestions to the error
func (e *LudexError) WithSuggestions(suggestions ...string) *LudexError {
	e.Suggestions = append(e.Suggestions, suggestions...)
	return e
}

// WithDetail attaches server-reported detail text verbatim
func (e *LudexError) WithDetail(detail string) *LudexError {
	e.Detail = detail
	return e
}

// CodeOf returns the error code of err, or the empty code when err is not a
// LudexError.
func CodeOf(err error) ErrorCode {
	var le *LudexError
	if errors.As(err, &le) {
		return le.Code
	}
	return ""
}

// Common error constructors for frequently used errors

// NewInvalidCredentialsError creates a bad-credentials login error
func NewInvalidCredentialsError() *LudexError {
	return New(ErrCodeInvalidCredentials, "invalid email or password").
		WithSuggestion("Check the email address and password and try again").
		WithSuggestion("Use 'ludex auth register' if you do not have an account yet")
}

// NewRegistrationFailedError creates a generic registration failure
func NewRegistrationFailedError() *LudexError {
	return New(ErrCodeRegistrationFailed, "registration failed").
		WithSuggestion("Check that the email is not already registered").
		WithSuggestion("Try again in a few moments")
}

// NewNotAuthenticatedError creates an error for actions that require login
func NewNotAuthenticatedError(action string) *LudexError {
	return New(ErrCodeNotAuthenticated, fmt.Sprintf("login required: %s", action)).
		WithSuggestion("Run 'ludex auth login' to authenticate")
}

// NewSessionExpiredError creates an expired-session error
func NewSessionExpiredError() *LudexError {
	return New(ErrCodeSessionExpired, "session has expired").
		WithSuggestion("Run 'ludex auth login' to start a new session")
}

// NewValidationError creates a validation error carrying server detail
func NewValidationError(detail string) *LudexError {
	err := New(ErrCodeValidation, "request rejected by the server").
		WithSuggestion("Check the submitted fields and try again")
	if detail != "" {
		err = err.WithDetail(detail)
	}
	return err
}

// NewNotFoundError creates an entity-absent error
func NewNotFoundError(entity string) *LudexError {
	return New(ErrCodeNotFound, fmt.Sprintf("%s not found", entity))
}

// NewServerError creates an unexpected-server-failure error
func NewServerError(status int) *LudexError {
	return New(ErrCodeServer, fmt.Sprintf("server returned status %d", status)).
		WithSuggestion("Try again later").
		WithSuggestion("Check https://status.ludex.gg for incidents")
}

// NewTransportError creates a no-response network failure error
func NewTransportError(cause error) *LudexError {
	return Wrap(ErrCodeTransport, "could not reach the Ludex API", cause).
		WithSuggestion("Check your network connection").
		WithSuggestion("Verify LUDEX_API_URL points at a reachable host")
}
