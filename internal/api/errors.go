package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// ErrUnavailable marks transport-level failures: the request never produced
// an HTTP response. Callers match it with errors.Is.
var ErrUnavailable = errors.New("server unavailable")

// genericMessage is shown to the user when the server response carries no
// usable detail.
const genericMessage = "request failed, please try again"

// Error is a non-2xx response from the backend.
type Error struct {
	StatusCode int
	Detail     string
}

func (e *Error) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Detail)
	}
	return fmt.Sprintf("api error %d", e.StatusCode)
}

// Message returns a user-displayable message, falling back to a generic one
// when the response body had no detail.
func (e *Error) Message() string {
	if e.Detail != "" {
		return e.Detail
	}
	return genericMessage
}

// IsUnauthorized reports an invalid or missing credential.
func (e *Error) IsUnauthorized() bool { return e.StatusCode == http.StatusUnauthorized }

// IsForbidden reports an authenticated but insufficient credential.
func (e *Error) IsForbidden() bool { return e.StatusCode == http.StatusForbidden }

// IsNotFound reports a missing resource.
func (e *Error) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// parseError builds an *Error from a non-2xx response body. The backend
// reports failures as {"detail": "..."}; anything else yields an Error with
// only the status code.
func parseError(statusCode int, body []byte) error {
	var payload struct {
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil && payload.Detail != "" {
		return &Error{StatusCode: statusCode, Detail: payload.Detail}
	}
	return &Error{StatusCode: statusCode}
}
