package contact

import (
	"github.com/samber/lo"
)

// FormState carries the controlled values of every field.
type FormState struct {
	FirstName string `json:"firstName" yaml:"firstName"`
	LastName  string `json:"lastName" yaml:"lastName"`
	Email     string `json:"email" yaml:"email"`
	Message   string `json:"message,omitempty" yaml:"message,omitempty"`
}

// Get returns the value bound to field.
func (s FormState) Get(field Field) string {
	switch field {
	case FieldFirstName:
		return s.FirstName
	case FieldLastName:
		return s.LastName
	case FieldEmail:
		return s.Email
	case FieldMessage:
		return s.Message
	default:
		return ""
	}
}

func (s *FormState) set(field Field, value string) {
	switch field {
	case FieldFirstName:
		s.FirstName = value
	case FieldLastName:
		s.LastName = value
	case FieldEmail:
		s.Email = value
	case FieldMessage:
		s.Message = value
	}
}

// Map returns the values keyed by field name. Empty values are kept so
// callers can tell an untouched field from an unknown one.
func (s FormState) Map() map[string]string {
	out := make(map[string]string, len(Fields))
	for _, field := range Fields {
		out[string(field)] = s.Get(field)
	}
	return out
}

// ErrorState maps a field to its current rule message. Fields without a
// failing rule are absent.
type ErrorState map[Field]string

// Has reports whether field currently fails its rule.
func (e ErrorState) Has(field Field) bool {
	return e[field] != ""
}

// Fields returns the failing fields in display order.
func (e ErrorState) Fields() []Field {
	return lo.Filter(Fields, func(field Field, _ int) bool {
		return e.Has(field)
	})
}

// Messages returns the display text of every error in field order.
func (e ErrorState) Messages() []string {
	return lo.Map(e.Fields(), func(field Field, _ int) string {
		return DisplayError(e[field])
	})
}

// Empty reports whether no field has an error.
func (e ErrorState) Empty() bool {
	return len(e.Fields()) == 0
}

func (e ErrorState) clone() ErrorState {
	if len(e) == 0 {
		return ErrorState{}
	}
	out := make(ErrorState, len(e))
	for field, message := range e {
		if message != "" {
			out[field] = message
		}
	}
	return out
}

// Submission is the snapshot taken when a submit passes every rule.
type Submission struct {
	FormState
}

// SummaryLine is one row of the summary block.
type SummaryLine struct {
	Field Field  `json:"field"`
	Label string `json:"label"`
	Value string `json:"value"`
}

func (l SummaryLine) String() string {
	return l.Label + ": " + l.Value
}

// Lines returns the summary rows. The message row is only present when a
// message was submitted.
func (s Submission) Lines() []SummaryLine {
	lines := make([]SummaryLine, 0, len(Fields))
	for _, field := range Fields {
		value := s.Get(field)
		if field == FieldMessage && value == "" {
			continue
		}
		lines = append(lines, SummaryLine{Field: field, Label: field.Title(), Value: value})
	}
	return lines
}
