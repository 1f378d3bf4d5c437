// Package types holds the shared data structures used across the
// application. Keeping them in one place prevents import cycles —
// validation, form state, handlers and the submitter can all import types
// without depending on each other.
package types

import (
	"log/slog"
	"strconv"
)

// Field names. They are the JSON keys, the HTML form control names and the
// keys of every error map, so the UI can place a message next to its input.
const (
	FieldFirstName       = "firstName"
	FieldLastName        = "lastName"
	FieldEmail           = "email"
	FieldAge             = "age"
	FieldPassword        = "password"
	FieldConfirmPassword = "confirmPassword"
)

// Fields lists every form field in display order.
var Fields = []string{
	FieldFirstName,
	FieldLastName,
	FieldEmail,
	FieldAge,
	FieldPassword,
	FieldConfirmPassword,
}

// IsField reports whether name is one of the six form fields.
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}

// FormRecord is one snapshot of the registration form.
//
// Struct tags serve two purposes:
//
//  1. json:"..."  — the field name on the wire and in error maps.
//
//  2. validate:"..." — per-field rules checked by go-playground/validator.
//     min/max bound the length of strings (in runes) and the value of
//     numbers. The password equality rule is not a tag: it spans two
//     fields and lives in the validation package as a struct-level rule.
type FormRecord struct {
	FirstName       string `json:"firstName"       validate:"min=2,max=30"`
	LastName        string `json:"lastName"        validate:"min=2,max=30"`
	Email           string `json:"email"           validate:"email"`
	Age             int    `json:"age"             validate:"min=15,max=30"`
	Password        string `json:"password"        validate:"min=5,max=20"`
	ConfirmPassword string `json:"confirmPassword" validate:"min=5,max=20"`
}

// LogValue keeps passwords out of log output. The record handed to the
// submitter is unchanged; only its log rendering is redacted.
func (r FormRecord) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String(FieldFirstName, r.FirstName),
		slog.String(FieldLastName, r.LastName),
		slog.String(FieldEmail, r.Email),
		slog.Int(FieldAge, r.Age),
		slog.String(FieldPassword, redact(r.Password)),
		slog.String(FieldConfirmPassword, redact(r.ConfirmPassword)),
	)
}

func redact(s string) string {
	if s == "" {
		return ""
	}
	return "[REDACTED]"
}

// Input holds the raw control values of the form keyed by field name,
// exactly as a browser posts them. A missing key reads as "".
type Input map[string]string

// InputFromRecord renders a record back into raw control values.
func InputFromRecord(r FormRecord) Input {
	return Input{
		FieldFirstName:       r.FirstName,
		FieldLastName:        r.LastName,
		FieldEmail:           r.Email,
		FieldAge:             strconv.Itoa(r.Age),
		FieldPassword:        r.Password,
		FieldConfirmPassword: r.ConfirmPassword,
	}
}

// With returns a copy of in with field set to value. in is not modified.
func (in Input) With(field, value string) Input {
	out := make(Input, len(in)+1)
	for k, v := range in {
		out[k] = v
	}
	out[field] = value
	return out
}
