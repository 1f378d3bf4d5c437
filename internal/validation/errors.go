package validation

import (
	"fmt"
	"sort"
	"strings"
)

// Kind classifies a rule violation.
type Kind string

// Field constraint violations come from a rule on a single field; the
// mismatch kind is the only cross-field violation.
const (
	KindTooShort       Kind = "too_short"
	KindTooLong        Kind = "too_long"
	KindOutOfRange     Kind = "out_of_range"
	KindMalformedEmail Kind = "malformed_email"
	KindNotANumber     Kind = "not_a_number"
	KindInvalid        Kind = "invalid"
	KindMismatch       Kind = "mismatch"
)

// Violation is one failed rule.
type Violation struct {
	Field   string
	Kind    Kind
	Message string
}

// CrossField reports whether the violation came from a rule spanning
// several fields.
func (v Violation) CrossField() bool {
	return v.Kind == KindMismatch
}

// String is handy in logs.
func (v Violation) String() string {
	if v.Field == "" {
		return fmt.Sprintf("%s: %s", v.Kind, v.Message)
	}
	return fmt.Sprintf("%s (%s): %s", v.Field, v.Kind, v.Message)
}

// ErrorMap maps a field name to the message shown next to that field.
type ErrorMap map[string]string

// NewErrorMap folds violations into an ErrorMap. Later violations for the
// same field overwrite earlier ones, which is how the password mismatch
// replaces a length message on confirmPassword.
func NewErrorMap(violations []Violation) ErrorMap {
	if len(violations) == 0 {
		return nil
	}
	m := make(ErrorMap, len(violations))
	for _, v := range violations {
		m[v.Field] = v.Message
	}
	return m
}

// Error joins the messages in field-name order so the string is stable.
func (m ErrorMap) Error() string {
	fields := make([]string, 0, len(m))
	for f := range m {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	parts := make([]string, 0, len(fields))
	for _, f := range fields {
		parts = append(parts, f+": "+m[f])
	}
	return "invalid registration: " + strings.Join(parts, ", ")
}
