// Package apperror defines the error taxonomy handlers translate to HTTP
// statuses: validation (400), unauthorized (401), not found (404), conflict
// (409), unavailable (503) and internal (500).
package apperror

import (
	"errors"
	"net/http"
)

// Error carries an HTTP status alongside a client-facing message.
type Error struct {
	Status  int
	Message string
	Err     error // optional cause, not exposed to clients
}

func (e *Error) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

func (e *Error) Unwrap() error { return e.Err }

// BadRequest builds a 400 validation error.
func BadRequest(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Unauthorized builds a 401 error.
func Unauthorized(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// NotFound builds a 404 error.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Conflict builds a 409 error.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusConflict, Message: msg}
}

// Unavailable builds a 503 error for storage that is not configured.
func Unavailable(msg string) *Error {
	return &Error{Status: http.StatusServiceUnavailable, Message: msg}
}

// Internal wraps an unexpected error as a 500 with a generic message.
func Internal(err error) *Error {
	return &Error{Status: http.StatusInternalServerError, Message: "Internal server error", Err: err}
}

// StatusOf extracts the HTTP status for err. Untyped errors map to 500.
func StatusOf(err error) (int, string) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae.Status, ae.Message
	}
	return http.StatusInternalServerError, "Internal server error"
}
