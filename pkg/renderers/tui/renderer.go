package tui

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/url"
	"strings"

	"github.com/olekukonko/tablewriter"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
)

// Renderer implements render.Renderer for terminal sessions. Each answer is
// applied to the form as a change event; a failing rule prints its error and
// asks again.
type Renderer struct {
	driver       PromptDriver
	outputFormat OutputFormat
	confirm      bool
	theme        Theme
	infoWriter   io.Writer
}

// New constructs a TUI renderer with defaults (survey driver, JSON output).
func New(options ...Option) (*Renderer, error) {
	r := &Renderer{
		outputFormat: OutputFormatJSON,
	}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(r)
	}
	if _, ok := ParseOutputFormat(string(r.outputFormat)); !ok {
		return nil, fmt.Errorf("tui: unsupported output format %q", r.outputFormat)
	}
	if r.driver == nil {
		r.driver = newSurveyDriver(r.infoWriter)
	}
	return r, nil
}

// Name reports the renderer identifier.
func (r *Renderer) Name() string {
	return "tui"
}

// ContentType reports the serialization format used by Render.
func (r *Renderer) ContentType() string {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		return "application/x-www-form-urlencoded"
	case OutputFormatPrettyText:
		return "text/plain; charset=utf-8"
	default:
		return "application/json"
	}
}

// Render prompts for every field, submits the form and serializes the
// submission.
func (r *Renderer) Render(ctx context.Context, form *contact.Form, opts render.RenderOptions) ([]byte, error) {
	if ctx == nil {
		return nil, errors.New("tui: context is required")
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if form == nil {
		return nil, errors.New("tui: form is required")
	}

	title := strings.TrimSpace(opts.Title)
	if title == "" {
		title = render.DefaultTitle
	}
	if err := r.driver.Info(ctx, r.theme.InfoPrefix+title); err != nil {
		return nil, err
	}

	for _, field := range contact.Fields {
		if err := r.promptField(ctx, form, field); err != nil {
			return nil, err
		}
	}

	if r.confirm {
		ok, err := r.driver.Confirm(ctx, ConfirmConfig{Message: "Submit?", Default: true})
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, ErrAborted
		}
	}

	submission, ok := form.Submit()
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrSubmitRejected, strings.Join(form.Errors().Messages(), "; "))
	}
	return r.serialize(submission)
}

func (r *Renderer) promptField(ctx context.Context, form *contact.Form, field contact.Field) error {
	for {
		value, err := r.ask(ctx, field, form.Value(field))
		if err != nil {
			return err
		}
		if err := form.Change(field, value); err != nil {
			return err
		}

		message := form.Error(field)
		if message == "" {
			return nil
		}
		if err := r.driver.Info(ctx, r.theme.ErrorPrefix+contact.DisplayError(message)); err != nil {
			return err
		}
	}
}

func (r *Renderer) ask(ctx context.Context, field contact.Field, current string) (string, error) {
	if field == contact.FieldMessage {
		return r.driver.TextArea(ctx, TextAreaConfig{
			Message: field.Label(),
			Default: current,
			Help:    "Optional",
		})
	}
	return r.driver.Input(ctx, InputConfig{
		Message: field.Label(),
		Default: current,
	})
}

func (r *Renderer) serialize(submission contact.Submission) ([]byte, error) {
	switch r.outputFormat {
	case OutputFormatFormURLEncoded:
		values := url.Values{}
		for _, line := range submission.Lines() {
			values.Set(line.Field.String(), line.Value)
		}
		return []byte(values.Encode()), nil
	case OutputFormatPrettyText:
		return prettyPrint(submission), nil
	default:
		return json.Marshal(submission.FormState)
	}
}

func prettyPrint(submission contact.Submission) []byte {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetHeader([]string{"Field", "Value"})
	table.SetAutoWrapText(false)
	for _, line := range submission.Lines() {
		table.Append([]string{line.Label, line.Value})
	}
	table.Render()
	return buf.Bytes()
}
