package form

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aanand-mishra/registration-form/internal/types"
	"github.com/aanand-mishra/registration-form/internal/validation"
)

type recordingSubmitter struct {
	records []types.FormRecord
	err     error
}

func (r *recordingSubmitter) Submit(_ context.Context, rec types.FormRecord) error {
	if r.err != nil {
		return r.err
	}
	r.records = append(r.records, rec)
	return nil
}

func newForm(t *testing.T, s *recordingSubmitter) *Form {
	t.Helper()
	v, err := validation.New()
	if err != nil {
		t.Fatalf("validation.New() error = %v", err)
	}
	return New(v, s, slog.New(slog.NewTextHandler(io.Discard, nil)))
}

func janeInput() types.Input {
	return types.Input{
		types.FieldFirstName:       "Jane",
		types.FieldLastName:        "Doe",
		types.FieldEmail:           "jane@doe.com",
		types.FieldAge:             "20",
		types.FieldPassword:        "secret1",
		types.FieldConfirmPassword: "secret1",
	}
}

func TestEditIsPendingAndDoesNotMutate(t *testing.T) {
	f := newForm(t, &recordingSubmitter{})

	start := f.Validate(Snapshot{Input: janeInput()})
	if start.Status != Validated {
		t.Fatalf("status = %v, want validated", start.Status)
	}

	edited, err := f.Edit(start, types.FieldFirstName, "A")
	if err != nil {
		t.Fatalf("Edit() error = %v", err)
	}
	if edited.Status != Pending {
		t.Fatalf("status = %v, want pending", edited.Status)
	}
	if edited.Valid() {
		t.Fatalf("pending snapshot reported valid")
	}
	if got := start.Input[types.FieldFirstName]; got != "Jane" {
		t.Fatalf("previous snapshot mutated: firstName = %q", got)
	}
}

func TestEditUnknownField(t *testing.T) {
	f := newForm(t, &recordingSubmitter{})

	_, err := f.Change(Snapshot{}, "nickname", "JD")
	if !errors.Is(err, ErrUnknownField) {
		t.Fatalf("Change() error = %v, want ErrUnknownField", err)
	}
}

func TestChangeRevalidates(t *testing.T) {
	f := newForm(t, &recordingSubmitter{})

	s := f.Validate(Snapshot{Input: janeInput()})
	s, err := f.Change(s, types.FieldFirstName, "A")
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	if s.Status != Validated {
		t.Fatalf("status = %v, want validated", s.Status)
	}
	want := validation.ErrorMap{"firstName": "First Name is required!"}
	if diff := cmp.Diff(want, s.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}

	s, err = f.Change(s, types.FieldFirstName, "Al")
	if err != nil {
		t.Fatalf("Change() error = %v", err)
	}
	if !s.Valid() {
		t.Fatalf("errors = %v, want none", s.Errors)
	}
}

func TestSubmitAcceptsAndForwardsUnchanged(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newForm(t, sub)

	s, err := f.Submit(context.Background(), Snapshot{Input: janeInput()})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if s.Status != Accepted {
		t.Fatalf("status = %v, want accepted", s.Status)
	}

	want := []types.FormRecord{{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@doe.com",
		Age:             20,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}}
	if diff := cmp.Diff(want, sub.records); diff != "" {
		t.Fatalf("submitted records mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitWithErrorsSkipsSubmitter(t *testing.T) {
	sub := &recordingSubmitter{}
	f := newForm(t, sub)

	in := janeInput().With(types.FieldConfirmPassword, "secret2")
	s, err := f.Submit(context.Background(), Snapshot{Input: in})
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if s.Status != Validated {
		t.Fatalf("status = %v, want validated", s.Status)
	}
	want := validation.ErrorMap{"confirmPassword": "Passwords do not match!"}
	if diff := cmp.Diff(want, s.Errors); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
	if len(sub.records) != 0 {
		t.Fatalf("submitter called with %v", sub.records)
	}
}

func TestSubmitterFailure(t *testing.T) {
	boom := errors.New("backend down")
	f := newForm(t, &recordingSubmitter{err: boom})

	s, err := f.Submit(context.Background(), Snapshot{Input: janeInput()})
	if !errors.Is(err, boom) {
		t.Fatalf("Submit() error = %v, want %v", err, boom)
	}
	if s.Status != Validated {
		t.Fatalf("status = %v, want validated", s.Status)
	}
}

func TestStatusString(t *testing.T) {
	for s, want := range map[Status]string{Pending: "pending", Validated: "validated", Accepted: "accepted", Status(9): "status(9)"} {
		if got := s.String(); got != want {
			t.Errorf("Status(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
