package vanilla

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"strings"

	theme "github.com/goliatone/go-theme"
	"github.com/microcosm-cc/bluemonday"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
	rendertemplate "github.com/goliatone/go-contactform/pkg/render/template"
	"github.com/goliatone/go-contactform/pkg/render/template/pongo"
)

const (
	formTemplate = "templates/contact.tmpl"
	pageTemplate = "templates/page.tmpl"
)

type Option func(*config)

type config struct {
	templateFS       fs.FS
	templateRenderer rendertemplate.TemplateRenderer
	themes           theme.ThemeSelector
	defaultTheme     string
	defaultVariant   string
	page             bool
	stylesheet       string
	policy           *bluemonday.Policy
}

// WithTemplatesFS supplies an alternate template bundle via fs.FS.
func WithTemplatesFS(files fs.FS) Option {
	return func(cfg *config) {
		cfg.templateFS = files
	}
}

// WithTemplatesDir loads templates from a directory on disk.
func WithTemplatesDir(path string) Option {
	return func(cfg *config) {
		if path == "" {
			return
		}
		cfg.templateFS = os.DirFS(path)
	}
}

// WithTemplateRenderer injects a custom template renderer implementation.
func WithTemplateRenderer(renderer rendertemplate.TemplateRenderer) Option {
	return func(cfg *config) {
		if renderer != nil {
			cfg.templateRenderer = renderer
		}
	}
}

// WithThemeSelector resolves go-theme manifests per render. defaultTheme and
// defaultVariant apply when RenderOptions leave them empty.
func WithThemeSelector(selector theme.ThemeSelector, defaultTheme, defaultVariant string) Option {
	return func(cfg *config) {
		cfg.themes = selector
		cfg.defaultTheme = strings.TrimSpace(defaultTheme)
		cfg.defaultVariant = strings.TrimSpace(defaultVariant)
	}
}

// WithPage wraps the form fragment in a complete HTML document.
func WithPage() Option {
	return func(cfg *config) {
		cfg.page = true
	}
}

// WithStylesheet links a stylesheet from the page wrapper.
func WithStylesheet(href string) Option {
	return func(cfg *config) {
		cfg.stylesheet = strings.TrimSpace(href)
	}
}

// WithSanitizer runs summary values through policy and emits the result as
// markup. Without it values are shown literally, escaped by the template.
func WithSanitizer(policy *bluemonday.Policy) Option {
	return func(cfg *config) {
		if policy != nil {
			cfg.policy = policy
		}
	}
}

// Renderer produces server-rendered HTML for the contact form.
type Renderer struct {
	templates      rendertemplate.TemplateRenderer
	themes         theme.ThemeSelector
	defaultTheme   string
	defaultVariant string
	page           bool
	stylesheet     string
	policy         *bluemonday.Policy
}

// New constructs the vanilla renderer applying any provided options.
func New(options ...Option) (*Renderer, error) {
	cfg := config{templateFS: TemplatesFS()}
	for _, opt := range options {
		if opt == nil {
			continue
		}
		opt(&cfg)
	}

	if cfg.templateFS == nil {
		cfg.templateFS = TemplatesFS()
	}

	renderer := cfg.templateRenderer
	if renderer == nil {
		engine, err := pongo.New(cfg.templateFS, pongo.WithExtension(".tmpl"))
		if err != nil {
			return nil, fmt.Errorf("vanilla renderer: configure template renderer: %w", err)
		}
		renderer = engine
	}

	return &Renderer{
		templates:      renderer,
		themes:         cfg.themes,
		defaultTheme:   cfg.defaultTheme,
		defaultVariant: cfg.defaultVariant,
		page:           cfg.page,
		stylesheet:     cfg.stylesheet,
		policy:         cfg.policy,
	}, nil
}

func (r *Renderer) Name() string {
	return "vanilla"
}

func (r *Renderer) ContentType() string {
	return "text/html; charset=utf-8"
}

// Render writes the form, its inline errors and, after a valid submit, the
// summary block.
func (r *Renderer) Render(ctx context.Context, form *contact.Form, opts render.RenderOptions) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if r.templates == nil {
		return nil, fmt.Errorf("vanilla renderer: template renderer is nil")
	}

	view := render.BuildView(form, opts)
	themeCtx, err := r.resolveTheme(opts.ThemeName, opts.ThemeVariant)
	if err != nil {
		return nil, err
	}

	body, err := r.templates.RenderTemplate(formTemplate, map[string]any{
		"view":      view,
		"summary":   r.sanitizeSummary(view.Summary),
		"sanitized": r.policy != nil,
		"theme":     themeCtx,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render template: %w", err)
	}
	if !r.page {
		return []byte(body), nil
	}

	page, err := r.templates.RenderTemplate(pageTemplate, map[string]any{
		"title":      view.Title,
		"stylesheet": r.stylesheet,
		"body":       body,
	})
	if err != nil {
		return nil, fmt.Errorf("vanilla renderer: render page: %w", err)
	}
	return []byte(page), nil
}

func (r *Renderer) sanitizeSummary(lines []contact.SummaryLine) []contact.SummaryLine {
	if r.policy == nil || len(lines) == 0 {
		return lines
	}
	out := make([]contact.SummaryLine, 0, len(lines))
	for _, line := range lines {
		line.Value = r.policy.Sanitize(line.Value)
		out = append(out, line)
	}
	return out
}
