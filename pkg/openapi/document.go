package openapi

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/getkin/kin-openapi/openapi3"
	"gopkg.in/yaml.v3"

	"github.com/goliatone/go-contactform/pkg/contact"
)

const (
	// RenderOperationID identifies the empty form.
	RenderOperationID = "contact:render"
	// SubmitOperationID identifies the form post.
	SubmitOperationID = "contact:submit"
	// ValidateOperationID identifies the per-field change check.
	ValidateOperationID = "contact:validate"
)

// SubmitContentTypes are the request encodings accepted by the form post.
var SubmitContentTypes = []string{"application/x-www-form-urlencoded", "multipart/form-data"}

// Options tunes the generated document.
type Options struct {
	Title      string
	Version    string
	SubmitPath string
	ServerURL  string
}

func (o Options) withDefaults() Options {
	if o.Title == "" {
		o.Title = "Contact Form"
	}
	if o.Version == "" {
		o.Version = "1.0.0"
	}
	if o.SubmitPath == "" {
		o.SubmitPath = "/contact"
	}
	return o
}

// Document builds and validates the OpenAPI description.
func Document(ctx context.Context, opts Options) (*openapi3.T, error) {
	opts = opts.withDefaults()

	render := openapi3.NewOperation()
	render.OperationID = RenderOperationID
	render.Summary = "Render the empty contact form"
	render.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, htmlResponse("Empty form")),
	)

	submit := openapi3.NewOperation()
	submit.OperationID = SubmitOperationID
	submit.Summary = "Submit the contact form"
	submit.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithContent(openapi3.NewContentWithSchema(ContactSchema(), SubmitContentTypes)),
	}
	submit.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, htmlResponse("Form rendered with the submission summary")),
		openapi3.WithStatus(http.StatusUnprocessableEntity, htmlResponse("Form rendered with inline errors")),
	)

	validate := openapi3.NewOperation()
	validate.OperationID = ValidateOperationID
	validate.Summary = "Evaluate the rule of a single field"
	validate.RequestBody = &openapi3.RequestBodyRef{
		Value: openapi3.NewRequestBody().
			WithRequired(true).
			WithJSONSchema(changeSchema()),
	}
	validate.Responses = openapi3.NewResponses(
		openapi3.WithStatus(http.StatusOK, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().
				WithDescription("Rule outcome for the field").
				WithJSONSchema(changeResultSchema()),
		}),
		openapi3.WithStatus(http.StatusBadRequest, &openapi3.ResponseRef{
			Value: openapi3.NewResponse().WithDescription("Unknown field or malformed body"),
		}),
	)

	doc := &openapi3.T{
		OpenAPI: "3.0.3",
		Info: &openapi3.Info{
			Title:   opts.Title,
			Version: opts.Version,
		},
		Paths: openapi3.NewPaths(
			openapi3.WithPath(opts.SubmitPath, &openapi3.PathItem{Get: render, Post: submit}),
			openapi3.WithPath(opts.SubmitPath+"/validate", &openapi3.PathItem{Post: validate}),
		),
	}
	if opts.ServerURL != "" {
		doc.Servers = openapi3.Servers{{URL: opts.ServerURL}}
	}

	if err := doc.Validate(ctx); err != nil {
		return nil, fmt.Errorf("openapi: validate document: %w", err)
	}
	return doc, nil
}

// ContactSchema is the request body of a form submission.
func ContactSchema() *openapi3.Schema {
	schema := openapi3.NewObjectSchema()
	required := make([]string, 0, len(contact.Fields))
	for _, field := range contact.Fields {
		schema.WithProperty(field.String(), fieldSchema(field))
		if field.Required() {
			required = append(required, field.String())
		}
	}
	return schema.WithRequired(required)
}

func fieldSchema(field contact.Field) *openapi3.Schema {
	schema := openapi3.NewStringSchema()
	schema.Title = field.Title()
	switch field {
	case contact.FieldFirstName:
		schema.WithMinLength(5)
	case contact.FieldLastName:
		schema.WithMinLength(1)
	case contact.FieldEmail:
		schema.WithFormat("email")
	}
	return schema
}

func changeSchema() *openapi3.Schema {
	names := make([]any, 0, len(contact.Fields))
	for _, field := range contact.Fields {
		names = append(names, field.String())
	}
	return openapi3.NewObjectSchema().
		WithProperty("field", openapi3.NewStringSchema().WithEnum(names...)).
		WithProperty("value", openapi3.NewStringSchema()).
		WithRequired([]string{"field"})
}

func changeResultSchema() *openapi3.Schema {
	return openapi3.NewObjectSchema().
		WithProperty("field", openapi3.NewStringSchema()).
		WithProperty("valid", openapi3.NewBoolSchema()).
		WithProperty("error", openapi3.NewStringSchema())
}

func htmlResponse(description string) *openapi3.ResponseRef {
	response := openapi3.NewResponse().WithDescription(description)
	response.Content = openapi3.Content{
		"text/html": openapi3.NewMediaType().WithSchema(openapi3.NewStringSchema()),
	}
	return &openapi3.ResponseRef{Value: response}
}

// MarshalJSON encodes the document as indented JSON.
func MarshalJSON(doc *openapi3.T) ([]byte, error) {
	return json.MarshalIndent(doc, "", "  ")
}

// MarshalYAML encodes the document as block-style YAML, keeping the key
// order of the JSON encoding.
func MarshalYAML(doc *openapi3.T) ([]byte, error) {
	raw, err := json.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("openapi: encode document: %w", err)
	}
	var node yaml.Node
	if err := yaml.Unmarshal(raw, &node); err != nil {
		return nil, fmt.Errorf("openapi: convert to yaml: %w", err)
	}
	blockStyle(&node)
	return yaml.Marshal(&node)
}

// blockStyle drops the flow and quoting styles the JSON source left on the
// tree. The encoder re-quotes scalars whose plain form would change type.
func blockStyle(node *yaml.Node) {
	if node == nil {
		return
	}
	node.Style &^= yaml.FlowStyle | yaml.DoubleQuotedStyle
	for _, child := range node.Content {
		blockStyle(child)
	}
}

// Load parses a document produced by MarshalJSON or MarshalYAML.
func Load(ctx context.Context, data []byte) (*openapi3.T, error) {
	loader := &openapi3.Loader{Context: ctx}
	doc, err := loader.LoadFromData(data)
	if err != nil {
		return nil, fmt.Errorf("openapi: load document: %w", err)
	}
	return doc, nil
}
