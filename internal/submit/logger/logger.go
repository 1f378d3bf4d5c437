// Package logger provides a Submitter that writes accepted registrations to
// a structured log. It stands in for "submit to backend".
package logger

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// Logger is the log-backed implementation of submit.Submitter.
type Logger struct {
	log *slog.Logger
}

// New returns a Logger writing to log. A nil log falls back to
// slog.Default().
func New(log *slog.Logger) *Logger {
	if log == nil {
		log = slog.Default()
	}
	return &Logger{log: log}
}

// Submit logs the record at INFO. Passwords are redacted by the record's
// LogValue method.
func (l *Logger) Submit(ctx context.Context, record types.FormRecord) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("logger.Submit: %w", err)
	}

	l.log.InfoContext(ctx, "registration submitted", slog.Any("data", record))
	return nil
}
