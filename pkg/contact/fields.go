package contact

import (
	"errors"
	"fmt"
	"strings"
)

// ErrUnknownField is returned when an event names a field the form does not own.
var ErrUnknownField = errors.New("contact: unknown field")

// Field identifies one of the form controls. The string value matches the
// name used in error messages and submitted payloads.
type Field string

const (
	FieldFirstName Field = "firstName"
	FieldLastName  Field = "lastName"
	FieldEmail     Field = "email"
	FieldMessage   Field = "message"
)

// Fields lists the controls in display order.
var Fields = []Field{FieldFirstName, FieldLastName, FieldEmail, FieldMessage}

var fieldLabels = map[Field]string{
	FieldFirstName: "First Name",
	FieldLastName:  "Last Name",
	FieldEmail:     "Email",
	FieldMessage:   "Message",
}

// ParseField resolves a field name as submitted by a client. Matching is
// case-insensitive and ignores surrounding whitespace.
func ParseField(name string) (Field, error) {
	trimmed := strings.TrimSpace(name)
	for _, field := range Fields {
		if strings.EqualFold(trimmed, string(field)) {
			return field, nil
		}
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownField, name)
}

// Title is the human readable name used in the summary block.
func (f Field) Title() string {
	return fieldLabels[f]
}

// Label is the text of the control label. Required fields carry a trailing
// asterisk.
func (f Field) Label() string {
	if f.Required() {
		return fieldLabels[f] + "*"
	}
	return fieldLabels[f]
}

// Required reports whether the field has a validation rule.
func (f Field) Required() bool {
	_, ok := rules[f]
	return ok
}

// Valid reports whether f names one of the form controls.
func (f Field) Valid() bool {
	_, ok := fieldLabels[f]
	return ok
}

func (f Field) String() string {
	return string(f)
}
