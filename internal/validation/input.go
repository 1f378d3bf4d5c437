package validation

import (
	"strconv"
	"strings"

	"github.com/aanand-mishra/registration-form/internal/types"
)

// ParseInput builds a FormRecord from raw control values. Text fields are
// taken verbatim. Age must be a whole number; anything else (including an
// empty control) leaves Age at zero and yields a not-a-number violation.
func ParseInput(in types.Input) (types.FormRecord, []Violation) {
	record := types.FormRecord{
		FirstName:       in[types.FieldFirstName],
		LastName:        in[types.FieldLastName],
		Email:           in[types.FieldEmail],
		Password:        in[types.FieldPassword],
		ConfirmPassword: in[types.FieldConfirmPassword],
	}

	var violations []Violation
	age, err := strconv.Atoi(strings.TrimSpace(in[types.FieldAge]))
	if err != nil {
		violations = append(violations, Violation{
			Field:   types.FieldAge,
			Kind:    KindNotANumber,
			Message: MsgNotANumber,
		})
	} else {
		record.Age = age
	}

	return record, violations
}
