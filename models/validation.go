// validation.go - Declarative field validation shared by all models
// Rules live in `validate` struct tags, messages in a per-model table keyed by "Field.tag".

package models

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidationError carries one human readable message per violated rule,
// in the order the fields are declared on the model.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return "validation failed: " + strings.Join(e.Messages, "; ")
}

// NewValidationError builds a ValidationError from one or more messages.
func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}

// check runs the struct tag rules on v and translates every failure through
// messages. Rules without an entry fall back to a generic "<field> is invalid".
func check(v any, messages map[string]string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err // InvalidValidationError: a programming fault, not bad input
	}
	out := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		msg, ok := messages[fe.StructField()+"."+fe.Tag()]
		if !ok {
			msg = fe.StructField() + " is invalid."
		}
		out = append(out, msg)
	}
	return &ValidationError{Messages: out}
}
