package pongo

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"path"
	"sync"

	"github.com/flosch/pongo2/v6"

	"github.com/goliatone/go-contactform/pkg/render/template"
)

const defaultExtension = ".tmpl"

// Option configures the engine.
type Option func(*Engine)

// WithExtension sets the suffix appended to template names given without
// one.
func WithExtension(ext string) Option {
	return func(e *Engine) {
		if ext == "" {
			return
		}
		if ext[0] != '.' {
			ext = "." + ext
		}
		e.ext = ext
	}
}

// Engine renders pongo2 templates read from an fs.FS. Parsed templates are
// kept for the lifetime of the engine; autoescaping stays on.
type Engine struct {
	set *pongo2.TemplateSet
	ext string

	mu     sync.RWMutex
	parsed map[string]*pongo2.Template
}

var _ template.TemplateRenderer = (*Engine)(nil)

// New builds an engine over files.
func New(files fs.FS, options ...Option) (*Engine, error) {
	if files == nil {
		return nil, errors.New("pongo: template fs is required")
	}
	e := &Engine{
		set:    pongo2.NewSet("contactform", pongo2.NewFSLoader(files)),
		ext:    defaultExtension,
		parsed: make(map[string]*pongo2.Template),
	}
	for _, opt := range options {
		if opt != nil {
			opt(e)
		}
	}
	return e, nil
}

// RenderTemplate executes the named template.
func (e *Engine) RenderTemplate(name string, data any) (string, error) {
	if path.Ext(name) == "" {
		name += e.ext
	}
	tmpl, err := e.lookup(name)
	if err != nil {
		return "", err
	}
	out, err := execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute %q: %w", name, err)
	}
	return out, nil
}

// RenderString parses and executes an inline template. The result is not
// cached.
func (e *Engine) RenderString(content string, data any) (string, error) {
	tmpl, err := e.set.FromString(content)
	if err != nil {
		return "", fmt.Errorf("pongo: parse inline template: %w", err)
	}
	out, err := execute(tmpl, data)
	if err != nil {
		return "", fmt.Errorf("pongo: execute inline template: %w", err)
	}
	return out, nil
}

func (e *Engine) lookup(name string) (*pongo2.Template, error) {
	e.mu.RLock()
	tmpl, ok := e.parsed[name]
	e.mu.RUnlock()
	if ok {
		return tmpl, nil
	}

	tmpl, err := e.set.FromFile(name)
	if err != nil {
		return nil, fmt.Errorf("pongo: load %q: %w", name, err)
	}

	e.mu.Lock()
	e.parsed[name] = tmpl
	e.mu.Unlock()
	return tmpl, nil
}

func execute(tmpl *pongo2.Template, data any) (string, error) {
	ctx, err := toContext(data)
	if err != nil {
		return "", err
	}
	return tmpl.Execute(ctx)
}

// toContext re-encodes data through JSON so structs expose their json tag
// names to templates, the same shape a client-side renderer would see.
func toContext(data any) (pongo2.Context, error) {
	if data == nil {
		return pongo2.Context{}, nil
	}
	if ctx, ok := data.(pongo2.Context); ok {
		return ctx, nil
	}
	raw, err := json.Marshal(data)
	if err != nil {
		return nil, fmt.Errorf("pongo: encode data: %w", err)
	}
	var ctx pongo2.Context
	if err := json.Unmarshal(raw, &ctx); err != nil {
		return nil, fmt.Errorf("pongo: template data must be an object, got %T", data)
	}
	return ctx, nil
}
