package schema

import (
	"errors"
	"fmt"
	"net/http"
)

// ErrAuthenticationRequired marks a 401 that survived the refresh cycle.
// Callers are expected to redirect the user to a login flow.
var ErrAuthenticationRequired = errors.New("authentication required")

// APIError carries the HTTP status and raw response body of a failed call.
// The body is kept verbatim so callers can surface backend validation
// messages without this package interpreting them.
type APIError struct {
	Status int
	Body   string
}

func (e *APIError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("api error: status %d", e.Status)
	}
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Body)
}

// Unwrap makes errors.Is(err, ErrAuthenticationRequired) hold for any
// unauthorized response that reached the caller.
func (e *APIError) Unwrap() error {
	if e.Status == http.StatusUnauthorized {
		return ErrAuthenticationRequired
	}
	return nil
}

// NewAPIError creates an APIError for the given status and body.
func NewAPIError(status int, body string) *APIError {
	return &APIError{Status: status, Body: body}
}

// AsAPIError extracts an *APIError from err, if any.
func AsAPIError(err error) (*APIError, bool) {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr, true
	}
	return nil, false
}
