package errors

import (
	"errors"
	"net/http"
)

// HTTPError represents an error with an associated HTTP status code.
type HTTPError struct {
	Code    int
	Reason  string
	Message string
}

func (e *HTTPError) Error() string {
	return e.Message
}

// NewHTTPError creates a new HTTPError with the given code and message.
func NewHTTPError(code int, message string) *HTTPError {
	return &HTTPError{
		Code:    code,
		Message: message,
	}
}

// Helper for common errors
var (
	ErrUnauthorized = func(msg string) *HTTPError { return NewHTTPError(http.StatusUnauthorized, msg) }
	ErrBadRequest   = func(msg string) *HTTPError { return NewHTTPError(http.StatusBadRequest, msg) }
	ErrNotFound     = func(msg string) *HTTPError { return NewHTTPError(http.StatusNotFound, msg) }
)

// FromError converts a service error into an HTTPError. Rule rejections become 422 with a
// reason code, lookups that miss become 404, anything else is a 500.
func FromError(err error) *HTTPError {
	var httpErr *HTTPError
	if errors.As(err, &httpErr) {
		return httpErr
	}
	if reason := ReasonCode(err); reason != "" {
		return &HTTPError{Code: http.StatusUnprocessableEntity, Reason: reason, Message: err.Error()}
	}
	if errors.Is(err, ErrRecordNotFound) {
		return ErrNotFound(err.Error())
	}
	return NewHTTPError(http.StatusInternalServerError, "internal error")
}
