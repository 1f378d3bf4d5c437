// Package form models the registration form as a sequence of immutable
// snapshots.
//
// A snapshot is Pending after an edit, Validated once the rules have run
// against its input, and Accepted once a valid record has been handed to
// the submitter. Every operation takes a snapshot by value and returns a
// new one; nothing is mutated in place.
package form

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/registration-form/internal/submit"
	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/validation"
)

// ErrUnknownField is returned when an edit names a field the form lacks.
var ErrUnknownField = errors.New("form: unknown field")

// Status is the position of a snapshot in the form lifecycle.
type Status int

const (
	Pending Status = iota
	Validated
	Accepted
)

func (s Status) String() string {
	switch s {
	case Pending:
		return "pending"
	case Validated:
		return "validated"
	case Accepted:
		return "accepted"
	default:
		return fmt.Sprintf("status(%d)", int(s))
	}
}

// Snapshot is the full state of the form at one moment.
type Snapshot struct {
	Input  types.Input
	Record types.FormRecord
	// Errors is the latest error map. It is empty once the input is valid
	// and stale while the snapshot is Pending.
	Errors validation.ErrorMap
	Status Status
}

// Valid reports whether the snapshot was validated without errors.
func (s Snapshot) Valid() bool {
	return s.Status != Pending && len(s.Errors) == 0
}

// Form runs validation and submission over snapshots.
type Form struct {
	validator *validation.Validator
	submitter submit.Submitter
	log       *slog.Logger
}

// New returns a Form. A nil log falls back to slog.Default().
func New(v *validation.Validator, s submit.Submitter, log *slog.Logger) *Form {
	if log == nil {
		log = slog.Default()
	}
	return &Form{validator: v, submitter: s, log: log}
}

// Edit replaces one field value. The result is Pending and keeps the
// previous errors until it is validated again.
func (f *Form) Edit(s Snapshot, field, value string) (Snapshot, error) {
	if !types.IsField(field) {
		return s, fmt.Errorf("%w: %q", ErrUnknownField, field)
	}
	return Snapshot{
		Input:  s.Input.With(field, value),
		Record: s.Record,
		Errors: s.Errors,
		Status: Pending,
	}, nil
}

// Validate builds a fresh record from the snapshot input and evaluates
// it. The result is Validated.
func (f *Form) Validate(s Snapshot) Snapshot {
	record, err := f.validator.ValidateInput(s.Input)

	next := Snapshot{Input: s.Input, Record: record, Status: Validated}
	if errs, ok := validation.AsErrorMap(err); ok {
		next.Errors = errs
	}
	return next
}

// Change is what happens on every keystroke: Edit followed by Validate.
func (f *Form) Change(s Snapshot, field, value string) (Snapshot, error) {
	edited, err := f.Edit(s, field, value)
	if err != nil {
		return s, err
	}
	return f.Validate(edited), nil
}

// Submit validates the snapshot and, if it has no errors, hands the record
// to the submitter. On success the result is Accepted. With validation
// errors the result is Validated and the submitter is not called. If the
// submitter fails the error is returned and the result stays Validated.
func (f *Form) Submit(ctx context.Context, s Snapshot) (Snapshot, error) {
	validated := f.Validate(s)
	if len(validated.Errors) > 0 {
		f.log.Debug("submit rejected",
			slog.Int("errors", len(validated.Errors)))
		return validated, nil
	}

	if err := f.submitter.Submit(ctx, validated.Record); err != nil {
		f.log.Error("submit failed", slog.String("error", err.Error()))
		return validated, fmt.Errorf("form.Submit: %w", err)
	}

	validated.Status = Accepted
	return validated, nil
}
