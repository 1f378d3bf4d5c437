// Package response provides helpers for writing consistent JSON HTTP responses.
//
// Every JSON endpoint in this application answers with the same envelope,
// so browser scripts and API clients always know where to find the status
// and, on a failed validation, the per-field messages.
package response

import (
	"encoding/json"
	"net/http"

	"github.com/aanand-mishra/registration-form/internal/validation"
)

// ─────────────────────────────────────────────────────────────────────────────
// Response is the standard envelope.
//
// A general failure (bad JSON, submit failure) looks like:
//
//	{ "status": "error", "error": "request body is empty" }
//
// A validation failure carries one message per offending field, keyed by
// the same names as the form controls:
//
//	{ "status": "error", "error": "invalid registration: ...",
//	  "errors": { "firstName": "First Name is required!" } }
//
// ─────────────────────────────────────────────────────────────────────────────
type Response struct {
	Status string            `json:"status"`
	Error  string            `json:"error,omitempty"`
	Errors map[string]string `json:"errors,omitempty"`
}

// Status string constants — use these instead of raw string literals so
// a typo is caught by the compiler rather than silently sending "eroor".
const (
	StatusOK    = "ok"
	StatusError = "error"
)

// WriteJSON writes a JSON-encoded response with the given HTTP status code.
//
// IMPORTANT ORDER: Header() → WriteHeader() → body writes.
// Once WriteHeader is called (or the first Write), headers are locked.
func WriteJSON(w http.ResponseWriter, status int, data any) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	return json.NewEncoder(w).Encode(data)
}

// OK is the envelope for a request that passed.
func OK() Response {
	return Response{Status: StatusOK}
}

// GeneralError wraps any Go error into the standard Response shape.
// Use this for unexpected errors (decode failures, submit failures, etc.)
func GeneralError(err error) Response {
	return Response{
		Status: StatusError,
		Error:  err.Error(),
	}
}

// ValidationError turns an ErrorMap into a Response the UI can place
// field by field.
func ValidationError(errs validation.ErrorMap) Response {
	return Response{
		Status: StatusError,
		Error:  errs.Error(),
		Errors: errs,
	}
}
