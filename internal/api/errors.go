package api

import (
	"fmt"
	"net/http"

	"github.com/tidwall/gjson"
)

// APIError is returned when the server responds with a non-2xx status.
// Message is extracted from the response body where possible so callers
// can show it to the user directly.
type APIError struct {
	Status  int
	Message string
	Body    []byte
}

func (e *APIError) Error() string {
	return fmt.Sprintf("api error: status %d: %s", e.Status, e.Message)
}

// TransportError is returned when no HTTP response was obtained at all,
// for example on connection failures or a cancelled context.
type TransportError struct {
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("transport error: %v", e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

// errorMessage extracts a human-readable message from an error response
// body. It checks a top-level "message" field, then the "message" of the
// first element of an "errors" array, and falls back to the status text.
// Non-JSON bodies are tolerated and simply yield the fallback.
func errorMessage(body []byte, status int) string {
	if m := gjson.GetBytes(body, "message"); m.Type == gjson.String && m.Str != "" {
		return m.Str
	}
	if m := gjson.GetBytes(body, "errors.0.message"); m.Type == gjson.String && m.Str != "" {
		return m.Str
	}
	return http.StatusText(status)
}
