// Package submit defines the Submitter interface — the collaborator that
// receives a registration once it has passed validation.
//
// WHY AN INTERFACE?
// ─────────────────
// The form and the HTTP handlers should not know or care where an accepted
// registration goes. Today it is written to the structured log; a real
// backend only has to implement this interface and be wired in main.go.
// Tests pass a fake that records what it was given.
package submit

import (
	"context"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// Submitter receives accepted registrations.
type Submitter interface {
	// Submit hands over a record that has passed validation. The record
	// must be forwarded unchanged. A non-nil error means the hand-off
	// failed and the form should stay open.
	Submit(ctx context.Context, record types.FormRecord) error
}
