// Package validation holds the registration rule set and evaluates it.
//
// Per-field rules are declared as validate:"..." tags on types.FormRecord
// and checked by go-playground/validator. The one cross-field rule
// (password equality) is registered as a struct-level validation, which the
// library runs after every field rule, so its message on confirmPassword
// lands last and wins.
//
// All violations are collected; nothing short-circuits.
package validation

import (
	"errors"
	"reflect"
	"strings"

	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// Validator evaluates FormRecords. A Validator is read-only after New and
// safe for concurrent use.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New builds a Validator with the registration rules and messages.
func New() (*Validator, error) {
	v := validator.New()

	// Report fields by their JSON name so error maps line up with the
	// form controls: "firstName", not "FirstName".
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterStructValidation(passwordsMatch, types.FormRecord{})

	trans, err := newTranslator(v)
	if err != nil {
		return nil, err
	}

	return &Validator{validate: v, trans: trans}, nil
}

func passwordsMatch(sl validator.StructLevel) {
	rec := sl.Current().Interface().(types.FormRecord)
	if rec.Password != rec.ConfirmPassword {
		sl.ReportError(rec.ConfirmPassword, types.FieldConfirmPassword,
			"ConfirmPassword", tagPasswordsMatch, "")
	}
}

// Check returns every violated rule in evaluation order: the per-field
// rules in field order, then the cross-field rule.
func (v *Validator) Check(record types.FormRecord) []Violation {
	err := v.validate.Struct(record)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		// Only reachable if the record stops being a struct.
		return []Violation{{Kind: KindInvalid, Message: err.Error()}}
	}

	violations := make([]Violation, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		violations = append(violations, Violation{
			Field:   fe.Field(),
			Kind:    kindOf(fe),
			Message: fe.Translate(v.trans),
		})
	}
	return violations
}

// Validate returns record unchanged when it is acceptable for submission.
// Otherwise the error is an ErrorMap with one message per offending field.
func (v *Validator) Validate(record types.FormRecord) (types.FormRecord, error) {
	if errs := NewErrorMap(v.Check(record)); errs != nil {
		return record, errs
	}
	return record, nil
}

// ValidateInput parses raw control values and validates the result. An age
// that is not a whole number is reported as such instead of as out of range.
func (v *Validator) ValidateInput(in types.Input) (types.FormRecord, error) {
	record, parseErrs := ParseInput(in)

	violations := v.Check(record)
	if len(parseErrs) > 0 {
		violations = mergeParseViolations(violations, parseErrs)
	}

	if errs := NewErrorMap(violations); errs != nil {
		return record, errs
	}
	return record, nil
}

// mergeParseViolations drops rule violations on fields that failed to
// parse, since the rule saw a placeholder zero rather than the input, and
// appends the parse violations in their place. The cross-field rule only
// involves text fields, so it is never dropped.
func mergeParseViolations(violations, parseErrs []Violation) []Violation {
	unparsed := make(map[string]struct{}, len(parseErrs))
	for _, pv := range parseErrs {
		unparsed[pv.Field] = struct{}{}
	}

	out := make([]Violation, 0, len(violations)+len(parseErrs))
	for _, rv := range violations {
		if _, skip := unparsed[rv.Field]; skip {
			continue
		}
		out = append(out, rv)
	}
	return append(out, parseErrs...)
}

// Errors is a convenience returning only the ErrorMap, nil when valid.
func (v *Validator) Errors(record types.FormRecord) ErrorMap {
	return NewErrorMap(v.Check(record))
}

// AsErrorMap extracts the ErrorMap from an error returned by Validate.
func AsErrorMap(err error) (ErrorMap, bool) {
	var m ErrorMap
	if errors.As(err, &m) {
		return m, true
	}
	return nil, false
}

