package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/aanand-mishra/registration-form/internal/submit"
	"github.com/aanand-mishra/registration-form/internal/types"
)

var _ submit.Submitter = (*Logger)(nil)

func TestSubmitLogsRedactedRecord(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, nil)))

	rec := types.FormRecord{
		FirstName:       "Jane",
		LastName:        "Doe",
		Email:           "jane@doe.com",
		Age:             20,
		Password:        "secret1",
		ConfirmPassword: "secret1",
	}
	if err := l.Submit(context.Background(), rec); err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	if strings.Contains(buf.String(), "secret1") {
		t.Fatalf("log output leaks password: %s", buf.String())
	}

	var entry struct {
		Msg  string         `json:"msg"`
		Data map[string]any `json:"data"`
	}
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("decode log line: %v", err)
	}
	if entry.Msg != "registration submitted" {
		t.Fatalf("msg = %q", entry.Msg)
	}
	want := map[string]any{
		"firstName":       "Jane",
		"lastName":        "Doe",
		"email":           "jane@doe.com",
		"age":             float64(20),
		"password":        "[REDACTED]",
		"confirmPassword": "[REDACTED]",
	}
	if diff := cmp.Diff(want, entry.Data); diff != "" {
		t.Fatalf("logged data mismatch (-want +got):\n%s", diff)
	}
}

func TestSubmitCanceledContext(t *testing.T) {
	var buf bytes.Buffer
	l := New(slog.New(slog.NewJSONHandler(&buf, nil)))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := l.Submit(ctx, types.FormRecord{})
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("Submit() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("expected nothing logged, got %s", buf.String())
	}
}
