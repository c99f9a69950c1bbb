// Package errors defines the service-layer error taxonomy and its mapping to
// HTTP responses. Every detected error condition maps one-to-one to a
// terminal response; nothing is retried or recovered locally.
package errors

import (
	"errors"
	"net/http"
)

var (
	// ErrInvalidCredentials is returned when the email is unknown or the
	// password does not match. The two cases are deliberately
	// indistinguishable to avoid user enumeration.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrUserAlreadyExists is returned when registering with an email that is
	// already taken.
	ErrUserAlreadyExists = errors.New("user already exists")
	// ErrUserIDRequired is returned when a hazard report is submitted without
	// an identifying user.
	ErrUserIDRequired = errors.New("user id required")
	// ErrUnknownUser is returned when a hazard report names a user id that
	// does not exist.
	ErrUnknownUser = errors.New("unknown user")
)

// FieldError describes a single failed validation constraint.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ErrorResponse is the body of every error response.
type ErrorResponse struct {
	Message string       `json:"message"`
	Errors  []FieldError `json:"errors,omitempty"`
}

// HTTPError pairs an ErrorResponse with its status code. Handlers return it
// and the router's error handler serializes it.
type HTTPError struct {
	Status   int
	Response ErrorResponse
}

func (e *HTTPError) Error() string {
	return e.Response.Message
}

// NewHTTPError creates an HTTPError with the given status and message.
func NewHTTPError(status int, message string) *HTTPError {
	return &HTTPError{Status: status, Response: ErrorResponse{Message: message}}
}

// NewValidationError creates the 400 response for a request body that failed
// schema validation, carrying field-level detail.
func NewValidationError(fields []FieldError) *HTTPError {
	return &HTTPError{
		Status:   http.StatusBadRequest,
		Response: ErrorResponse{Message: "Invalid data", Errors: fields},
	}
}

// MapErrorToHTTP maps service errors to HTTP errors. Unrecognized errors
// surface as a generic 500 so internals never leak.
func MapErrorToHTTP(err error) *HTTPError {
	switch {
	case errors.Is(err, ErrInvalidCredentials):
		return NewHTTPError(http.StatusUnauthorized, "Invalid credentials")
	case errors.Is(err, ErrUserAlreadyExists):
		return NewHTTPError(http.StatusBadRequest, "User already exists")
	case errors.Is(err, ErrUserIDRequired):
		return NewHTTPError(http.StatusUnauthorized, "User ID required")
	case errors.Is(err, ErrUnknownUser):
		return NewHTTPError(http.StatusUnauthorized, "Invalid user")
	default:
		return NewHTTPError(http.StatusInternalServerError, "Internal server error")
	}
}
