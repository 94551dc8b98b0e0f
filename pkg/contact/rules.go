package contact

import (
	"github.com/go-playground/validator/v10"
)

// ErrorPrefix is prepended to rule messages when they are displayed.
const ErrorPrefix = "Error: "

type rule struct {
	tag     string
	message string
}

var rules = map[Field]rule{
	FieldFirstName: {tag: "required,min=5", message: "firstName must have at least 5 characters."},
	FieldLastName:  {tag: "required", message: "lastName is a required field."},
	FieldEmail:     {tag: "required,email", message: "email must be a valid email address."},
}

var validate = validator.New()

// Check evaluates the rule attached to field against value. It returns the
// rule message on failure and an empty string when the value passes or the
// field has no rule.
func Check(field Field, value string) string {
	r, ok := rules[field]
	if !ok {
		return ""
	}
	if err := validate.Var(value, r.tag); err != nil {
		return r.message
	}
	return ""
}

// DisplayError formats a rule message the way it is shown next to a control.
func DisplayError(message string) string {
	if message == "" {
		return ""
	}
	return ErrorPrefix + message
}
