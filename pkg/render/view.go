package render

import (
	"net/http"
	"strings"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// FieldView is the render-ready description of one labelled control.
type FieldView struct {
	Name      string `json:"name"`
	Label     string `json:"label"`
	ControlID string `json:"controlId"`
	ErrorID   string `json:"errorId"`
	InputType string `json:"inputType"`
	Multiline bool   `json:"multiline"`
	Required  bool   `json:"required"`
	Value     string `json:"value"`
	Error     string `json:"error,omitempty"`
}

// View is the data handed to templates.
type View struct {
	Title     string                `json:"title"`
	Action    string                `json:"action"`
	Method    string                `json:"method"`
	Fields    []FieldView           `json:"fields"`
	Errors    []string              `json:"errors,omitempty"`
	Hidden    []HiddenField         `json:"hidden,omitempty"`
	Submitted bool                  `json:"submitted"`
	Summary   []contact.SummaryLine `json:"summary,omitempty"`
}

// BuildView snapshots the form into a View. Error texts carry the display
// prefix.
func BuildView(form *contact.Form, opts RenderOptions) View {
	if form == nil {
		form = contact.New()
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = DefaultTitle
	}
	method := strings.ToUpper(strings.TrimSpace(opts.Method))
	if method == "" {
		method = http.MethodPost
	}

	errs := form.Errors()
	view := View{
		Title:  title,
		Action: strings.TrimSpace(opts.Action),
		Method: method,
		Fields: make([]FieldView, 0, len(contact.Fields)),
		Errors: errs.Messages(),
		Hidden: SortedHiddenFields(opts.Hidden),
	}

	for _, field := range contact.Fields {
		view.Fields = append(view.Fields, FieldView{
			Name:      field.String(),
			Label:     field.Label(),
			ControlID: ControlID(field),
			ErrorID:   ControlID(field) + "-error",
			InputType: inputType(field),
			Multiline: field == contact.FieldMessage,
			Required:  field.Required(),
			Value:     form.Value(field),
			Error:     contact.DisplayError(errs[field]),
		})
	}

	if submission, ok := form.Submitted(); ok {
		view.Submitted = true
		view.Summary = submission.Lines()
	}
	return view
}

// ControlID returns the DOM id used for a field's control. Labels point at
// it through their for attribute.
func ControlID(field contact.Field) string {
	name := strings.TrimSpace(field.String())
	if name == "" {
		return ""
	}
	return "contact-" + name
}

func inputType(field contact.Field) string {
	switch field {
	case contact.FieldEmail:
		return "email"
	case contact.FieldMessage:
		return "textarea"
	default:
		return "text"
	}
}
