package errors

import (
	stderrors "errors"
	"fmt"
)

// Error codes
const (
	ErrCodeInput               = "INPUT_ERROR"
	ErrCodeDataIntegrity       = "DATA_INTEGRITY"
	ErrCodeUpstreamUnavailable = "UPSTREAM_UNAVAILABLE"
	ErrCodeNotFound            = "NOT_FOUND"
	ErrCodeInsufficientHistory = "INSUFFICIENT_HISTORY"
	ErrCodeInternal            = "INTERNAL_ERROR"
)

// AppError represents an application error with HTTP status code and error code
type AppError struct {
	Code    string // Error code (e.g., "INPUT_ERROR", "DATA_INTEGRITY")
	Message string // Human-readable error message
	Status  int    // HTTP status code
	Err     error  // Wrapped underlying error (optional)
}

// Error implements the error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s (%v)", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

// Unwrap returns the underlying error for error wrapping support
func (e *AppError) Unwrap() error {
	return e.Err
}

// NewInputError reports malformed or out-of-range caller input.
// It is user-correctable and never retried.
func NewInputError(field string, reason string) *AppError {
	return &AppError{
		Code:    ErrCodeInput,
		Message: fmt.Sprintf("invalid %s: %s", field, reason),
		Status:  400,
	}
}

// NewDataIntegrityError reports upstream data that breaks an invariant the
// engine relies on, e.g. a player missing from a match in their own window.
func NewDataIntegrityError(format string, args ...any) *AppError {
	return &AppError{
		Code:    ErrCodeDataIntegrity,
		Message: fmt.Sprintf(format, args...),
		Status:  502,
	}
}

// NewUpstreamUnavailableError wraps a data source failure. Callers may retry the
// whole request.
func NewUpstreamUnavailableError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeUpstreamUnavailable,
		Message: "match data source unavailable",
		Status:  503,
		Err:     err,
	}
}

// NewNotFoundError creates a new NOT_FOUND error
func NewNotFoundError(resource string, id interface{}) *AppError {
	return &AppError{
		Code:    ErrCodeNotFound,
		Message: fmt.Sprintf("%s not found: %v", resource, id),
		Status:  404,
	}
}

func NewInsufficientHistoryError(player any, want, have int) *AppError {
	return &AppError{
		Code:    ErrCodeInsufficientHistory,
		Message: fmt.Sprintf("insufficient match history for %v: want %d matches, have %d", player, want, have),
		Status:  404,
	}
}

// NewInternalError creates a new INTERNAL_ERROR
func NewInternalError(err error) *AppError {
	return &AppError{
		Code:    ErrCodeInternal,
		Message: "internal server error",
		Status:  500,
		Err:     err,
	}
}

// CodeOf returns the AppError code found in err's chain, or "" if there is none.
func CodeOf(err error) string {
	var appErr *AppError
	if stderrors.As(err, &appErr) {
		return appErr.Code
	}
	return ""
}

// Is reports whether err carries an AppError with the given code.
func Is(err error, code string) bool {
	return err != nil && CodeOf(err) == code
}

// WithPlayer prefixes err's message with the player it concerns, keeping its
// code and status so callers still see the original error kind.
func WithPlayer(err error, player fmt.Stringer) error {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if !stderrors.As(err, &appErr) {
		appErr = NewUpstreamUnavailableError(err)
	}
	return &AppError{
		Code:    appErr.Code,
		Message: fmt.Sprintf("player %s: %s", player, appErr.Message),
		Status:  appErr.Status,
		Err:     appErr.Err,
	}
}
