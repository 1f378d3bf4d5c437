package validation

import (
	"fmt"
	"reflect"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// Messages shown to the user. The generic texts match what browser clients
// of this form have always displayed, so they are kept word for word.
const (
	MsgFirstNameRequired = "First Name is required!"
	MsgLastNameRequired  = "Last Name is required!"
	MsgPasswordsMismatch = "Passwords do not match!"
	MsgInvalidEmail      = "Invalid email"
	MsgNotANumber        = "Expected number, received nan"
)

// tagPasswordsMatch is the tag reported by the struct-level password rule.
const tagPasswordsMatch = "passwords_match"

type fieldRule struct {
	field string
	tag   string
}

// fieldMessages replaces the generic message for one rule on one field.
var fieldMessages = map[fieldRule]string{
	{types.FieldFirstName, "min"}: MsgFirstNameRequired,
	{types.FieldLastName, "min"}:  MsgLastNameRequired,
}

// catalogue holds the generic texts, keyed apart from the validator's own
// English keys so both can live in one translator.
var catalogue = map[string]string{
	"form.min-string": "String must contain at least {0} character(s)",
	"form.max-string": "String must contain at most {0} character(s)",
	"form.min-number": "Number must be greater than or equal to {0}",
	"form.max-number": "Number must be less than or equal to {0}",
	"form.email":      MsgInvalidEmail,
	"form.mismatch":   MsgPasswordsMismatch,
}

// newTranslator builds the English translator and registers the
// validator's stock messages on v as a fallback for any tag the catalogue
// doesn't cover.
func newTranslator(v *validator.Validate) (ut.Translator, error) {
	english := en.New()
	uni := ut.New(english, english)

	trans, ok := uni.GetTranslator("en")
	if !ok {
		return nil, fmt.Errorf("validation: english translator not found")
	}

	if err := en_translations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("validation: register default translations: %w", err)
	}

	register := func(t ut.Translator) error {
		for key, text := range catalogue {
			if err := t.Add(key, text, true); err != nil {
				return fmt.Errorf("add %s: %w", key, err)
			}
		}
		return nil
	}
	if err := register(trans); err != nil {
		return nil, fmt.Errorf("validation: register catalogue: %w", err)
	}

	overrides := map[string]validator.TranslationFunc{
		"min":             boundTranslation("form.min-string", "form.min-number"),
		"max":             boundTranslation("form.max-string", "form.max-number"),
		"email":           keyTranslation("form.email"),
		tagPasswordsMatch: keyTranslation("form.mismatch"),
	}
	noop := func(ut.Translator) error { return nil }
	for tag, fn := range overrides {
		if err := v.RegisterTranslation(tag, trans, noop, fn); err != nil {
			return nil, fmt.Errorf("validation: register %s translation: %w", tag, err)
		}
	}

	return trans, nil
}

// boundTranslation picks the string or number text for a min/max rule.
func boundTranslation(stringKey, numberKey string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		if msg, ok := fieldMessages[fieldRule{fe.Field(), fe.Tag()}]; ok {
			return msg
		}
		key := numberKey
		if fe.Kind() == reflect.String {
			key = stringKey
		}
		msg, err := trans.T(key, fe.Param())
		if err != nil {
			return fe.Error()
		}
		return msg
	}
}

func keyTranslation(key string) validator.TranslationFunc {
	return func(trans ut.Translator, fe validator.FieldError) string {
		if msg, ok := fieldMessages[fieldRule{fe.Field(), fe.Tag()}]; ok {
			return msg
		}
		msg, err := trans.T(key)
		if err != nil {
			return fe.Error()
		}
		return msg
	}
}

// kindOf maps a failed tag to its violation kind.
func kindOf(fe validator.FieldError) Kind {
	switch fe.Tag() {
	case "min":
		if fe.Kind() == reflect.String {
			return KindTooShort
		}
		return KindOutOfRange
	case "max":
		if fe.Kind() == reflect.String {
			return KindTooLong
		}
		return KindOutOfRange
	case "email":
		return KindMalformedEmail
	case tagPasswordsMatch:
		return KindMismatch
	default:
		return KindInvalid
	}
}
