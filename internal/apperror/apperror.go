// Package apperror defines the domain error taxonomy and its mapping onto
// HTTP status codes. Services return these; handlers translate them without
// inspecting messages.
package apperror

import (
	"errors"
	"net/http"
)

// Error is a domain error with an HTTP status. The message is safe to show
// to clients verbatim.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string { return e.Message }

// Validation reports missing or malformed input.
func Validation(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Auth reports bad credentials or an unusable token.
func Auth(msg string) *Error {
	return &Error{Status: http.StatusUnauthorized, Message: msg}
}

// Forbidden reports a role that is not allowed the operation.
func Forbidden(msg string) *Error {
	return &Error{Status: http.StatusForbidden, Message: msg}
}

// NotFound reports a missing resource.
func NotFound(msg string) *Error {
	return &Error{Status: http.StatusNotFound, Message: msg}
}

// Conflict reports a uniqueness violation.
func Conflict(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// Capacity reports a course with no seats left.
func Capacity(msg string) *Error {
	return &Error{Status: http.StatusBadRequest, Message: msg}
}

// As unwraps err into an *Error if it is one.
func As(err error) (*Error, bool) {
	var ae *Error
	if errors.As(err, &ae) {
		return ae, true
	}
	return nil, false
}
