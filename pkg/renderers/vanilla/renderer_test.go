package vanilla_test

import (
	"errors"
	"strings"
	"testing"
	"testing/fstest"

	"github.com/google/go-cmp/cmp"
	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/testsupport"
)

func renderForm(t *testing.T, form *contact.Form, options ...vanilla.Option) string {
	t.Helper()
	renderer, err := vanilla.New(options...)
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	out, err := renderer.Render(testsupport.Context(), form, render.RenderOptions{Action: "/contact"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	return string(out)
}

func TestRenderer_Header(t *testing.T) {
	out := renderForm(t, contact.New())
	if !testsupport.HasText(t, out, "Contact Form") {
		t.Fatalf("expected header in output:\n%s", out)
	}
}

func TestRenderer_LabelsAreAssociated(t *testing.T) {
	out := renderForm(t, contact.New())

	for _, field := range contact.Fields {
		id := render.ControlID(field)
		label := `<label for="` + id + `">` + field.Label() + `</label>`
		if !strings.Contains(out, label) {
			t.Fatalf("missing label %q in output:\n%s", label, out)
		}
		if !strings.Contains(out, `id="`+id+`"`) {
			t.Fatalf("missing control with id %q", id)
		}
	}
	if !strings.Contains(out, `data-testid="submitButton"`) {
		t.Fatalf("missing submit control")
	}
	if !strings.Contains(out, `<textarea id="contact-message" name="message">`) {
		t.Fatalf("message should render as a textarea:\n%s", out)
	}
}

func TestRenderer_SubmitScenarios(t *testing.T) {
	tests := []struct {
		name       string
		typed      contact.FormState
		submit     bool
		wantErrors []string
	}{
		{
			name:       "no values",
			submit:     true,
			wantErrors: []string{testsupport.FirstNameError, testsupport.LastNameError, testsupport.EmailError},
		},
		{
			name: "first name under five characters",
			typed: contact.FormState{
				FirstName: "Wes",
				LastName:  "Woodard",
				Email:     "westonwoodard28@gmail.com",
				Message:   "abra kadabra alakazam",
			},
			submit:     true,
			wantErrors: []string{testsupport.FirstNameError},
		},
		{
			name:       "no email",
			typed:      contact.FormState{FirstName: "Weston", LastName: "Woodard"},
			submit:     true,
			wantErrors: []string{testsupport.EmailError},
		},
		{
			name:       "invalid email typed",
			typed:      contact.FormState{Email: "wubbalubbadubdub"},
			wantErrors: []string{testsupport.EmailError},
		},
		{
			name: "no last name",
			typed: contact.FormState{
				FirstName: "Weston",
				Email:     "westonwoodard28@gmail.com",
				Message:   "abra kadabra alakazam",
			},
			submit:     true,
			wantErrors: []string{testsupport.LastNameError},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := contact.New()
			form.Fill(tt.typed)
			if tt.submit {
				form.Submit()
			}

			out := renderForm(t, form)
			if diff := cmp.Diff(tt.wantErrors, testsupport.ErrorTexts(t, out)); diff != "" {
				t.Fatalf("errors mismatch (-want +got):\n%s", diff)
			}
			if got := strings.Count(out, `data-testid="error"`); got != len(tt.wantErrors) {
				t.Fatalf("error nodes = %d, want %d", got, len(tt.wantErrors))
			}
			if strings.Contains(out, `data-testid="summary"`) {
				t.Fatalf("summary must not render with errors")
			}
		})
	}
}

func TestRenderer_SummaryWithoutMessage(t *testing.T) {
	form := contact.New()
	form.Fill(contact.FormState{
		FirstName: "Weston",
		LastName:  "Woodard",
		Email:     "westonwoodard28@gmail.com",
	})
	if _, ok := form.Submit(); !ok {
		t.Fatalf("expected valid submit")
	}

	out := renderForm(t, form)
	for _, pattern := range []string{"First Name:", "Last Name:", "Email:"} {
		if !testsupport.HasText(t, out, pattern) {
			t.Fatalf("expected %q in output:\n%s", pattern, out)
		}
	}
	if testsupport.HasText(t, out, "Message:") {
		t.Fatalf("message line must be absent:\n%s", out)
	}
}

func TestRenderer_SummaryWithAllFields(t *testing.T) {
	form := contact.New()
	form.Fill(testsupport.ValidContact)
	if _, ok := form.Submit(); !ok {
		t.Fatalf("expected valid submit")
	}

	out := renderForm(t, form)
	for _, pattern := range []string{"First Name: Weston", "Last Name: Woodard", "Email: westonwoodard28@gmail.com", "Message: abra kadabra alakazam"} {
		if !testsupport.HasText(t, out, pattern) {
			t.Fatalf("expected %q in output:\n%s", pattern, out)
		}
	}
}

func TestRenderer_SummaryShowsValuesLiterally(t *testing.T) {
	form := contact.New()
	form.Fill(contact.FormState{
		FirstName: "<b>Wes</b>",
		LastName:  "Woodard",
		Email:     "westonwoodard28@gmail.com",
		Message:   "Reach me at <weston@gmail.com> please",
	})
	if _, ok := form.Submit(); !ok {
		t.Fatalf("expected valid submit, errors: %v", form.Errors())
	}

	out := renderForm(t, form)
	summary := out[strings.Index(out, `data-testid="summary"`):]
	for _, want := range []string{
		"First Name: &lt;b&gt;Wes&lt;/b&gt;",
		"Message: Reach me at &lt;weston@gmail.com&gt; please",
	} {
		if !strings.Contains(summary, want) {
			t.Fatalf("expected %q in summary:\n%s", want, summary)
		}
	}
	if strings.Contains(summary, "<b>") {
		t.Fatalf("summary emitted raw markup:\n%s", summary)
	}
}

func TestRenderer_SummaryMarkupOnlyMessage(t *testing.T) {
	form := contact.New()
	state := testsupport.ValidContact
	state.Message = "<br>"
	form.Fill(state)
	if _, ok := form.Submit(); !ok {
		t.Fatalf("expected valid submit")
	}

	out := renderForm(t, form)
	if !strings.Contains(out, `<p data-testid="messageDisplay">Message: &lt;br&gt;</p>`) {
		t.Fatalf("expected escaped message line:\n%s", out)
	}
}

func TestRenderer_WithSanitizer(t *testing.T) {
	form := contact.New()
	state := testsupport.ValidContact
	state.Message = `hi <script>alert("x")</script><b>there</b>`
	form.Fill(state)
	if _, ok := form.Submit(); !ok {
		t.Fatalf("expected valid submit")
	}

	out := renderForm(t, form, vanilla.WithSanitizer(bluemonday.StrictPolicy()))
	summary := out[strings.Index(out, `data-testid="summary"`):]
	if strings.Contains(summary, "<script") || strings.Contains(summary, "<b>") || strings.Contains(summary, "&lt;b&gt;") {
		t.Fatalf("summary carries markup:\n%s", summary)
	}
	if !strings.Contains(summary, "Message: hi there") {
		t.Fatalf("summary lost text content:\n%s", summary)
	}
}

func TestRenderer_PageWrapper(t *testing.T) {
	out := renderForm(t, contact.New(), vanilla.WithPage(), vanilla.WithStylesheet("/assets/contactform.css"))
	if !strings.HasPrefix(out, "<!doctype html>") {
		t.Fatalf("expected document wrapper, got:\n%s", out)
	}
	if !strings.Contains(out, `<link rel="stylesheet" href="/assets/contactform.css">`) {
		t.Fatalf("expected stylesheet link")
	}
	if !strings.Contains(out, `<section class="contact-form"`) {
		t.Fatalf("form fragment must not be escaped:\n%s", out)
	}
}

func TestRenderer_Theme(t *testing.T) {
	selector := &stubThemeSelector{selection: &theme.Selection{
		Theme:   "acme",
		Variant: "dark",
		Manifest: &theme.Manifest{
			Name:   "acme",
			Tokens: map[string]string{"brand": "#123456", "danger": "#ff0000"},
			Variants: map[string]theme.Variant{
				"dark": {Tokens: map[string]string{"brand": "#654321"}},
			},
		},
	}}

	out := renderForm(t, contact.New(), vanilla.WithThemeSelector(selector, "acme", "dark"))

	if diff := cmp.Diff([]selectorCall{{name: "acme", variant: "dark"}}, selector.calls, cmp.AllowUnexported(selectorCall{})); diff != "" {
		t.Fatalf("selector calls mismatch (-want +got):\n%s", diff)
	}
	if !strings.Contains(out, `style="--brand: #654321; --danger: #ff0000;"`) {
		t.Fatalf("expected css vars from variant tokens:\n%s", out)
	}
	if !strings.Contains(out, `data-theme="acme"`) {
		t.Fatalf("expected theme name attribute")
	}
}

func TestRenderer_ThemeError(t *testing.T) {
	selector := &stubThemeSelector{err: errors.New("missing")}
	renderer, err := vanilla.New(vanilla.WithThemeSelector(selector, "acme", ""))
	if err != nil {
		t.Fatalf("new renderer: %v", err)
	}
	if _, err := renderer.Render(testsupport.Context(), contact.New(), render.RenderOptions{}); err == nil {
		t.Fatalf("expected theme selection error")
	}
}

func TestRenderer_WithTemplatesFS(t *testing.T) {
	files := fstest.MapFS{
		"templates/contact.tmpl": {Data: []byte(`{{ view.title }}|{% for field in view.fields %}{{ field.name }},{% endfor %}`)},
	}
	out := renderForm(t, contact.New(), vanilla.WithTemplatesFS(files))
	if diff := testsupport.CompareText("Contact Form|firstName,lastName,email,message,", out); diff != "" {
		t.Fatalf("custom template mismatch (-want +got):\n%s", diff)
	}
}

func TestRenderer_WithTemplateRenderer(t *testing.T) {
	stub := &stubTemplateRenderer{}
	out := renderForm(t, contact.New(), vanilla.WithTemplateRenderer(stub))
	if out != "custom-output" {
		t.Fatalf("output = %q", out)
	}
	if diff := cmp.Diff([]string{"templates/contact.tmpl"}, stub.names); diff != "" {
		t.Fatalf("template names mismatch (-want +got):\n%s", diff)
	}
}

type selectorCall struct {
	name    string
	variant string
}

type stubThemeSelector struct {
	selection *theme.Selection
	err       error
	calls     []selectorCall
}

func (s *stubThemeSelector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	s.calls = append(s.calls, selectorCall{name: name, variant: variant})
	return s.selection, s.err
}

type stubTemplateRenderer struct {
	names []string
}

func (s *stubTemplateRenderer) RenderTemplate(name string, _ any) (string, error) {
	s.names = append(s.names, name)
	return "custom-output", nil
}

func (s *stubTemplateRenderer) RenderString(string, any) (string, error) {
	return "", nil
}
