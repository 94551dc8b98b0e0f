// Package contactform is the quick-start entry point: it wires the contact
// component to the HTML renderer and the HTTP surface with their defaults.
package contactform

import (
	"context"
	"io/fs"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
	"github.com/goliatone/go-contactform/pkg/server"
)

// FormState aliases contact.FormState for callers prefilling values.
type FormState = contact.FormState

// RenderOptions aliases render.RenderOptions.
type RenderOptions = render.RenderOptions

// RenderHTML fills a new form with state, optionally submits it, and renders
// it with the vanilla renderer.
func RenderHTML(ctx context.Context, state FormState, submit bool, opts RenderOptions, options ...vanilla.Option) ([]byte, error) {
	renderer, err := vanilla.New(options...)
	if err != nil {
		return nil, err
	}
	form := contact.New()
	form.Fill(state)
	if submit {
		form.Submit()
	}
	return renderer.Render(ctx, form, opts)
}

// NewServer returns an HTTP surface backed by the vanilla renderer in page
// mode, serving the bundled stylesheet under /assets/.
func NewServer(ctx context.Context, options ...server.Option) (*server.Server, error) {
	renderer, err := vanilla.New(vanilla.WithPage(), vanilla.WithStylesheet("/assets/"+vanilla.StylesheetName))
	if err != nil {
		return nil, err
	}
	options = append([]server.Option{server.WithAssets(AssetsFS())}, options...)
	return server.New(ctx, renderer, options...)
}

// EmbeddedTemplates exposes the built-in templates so callers can copy or
// extend them before passing their own set via vanilla.WithTemplatesFS.
func EmbeddedTemplates() fs.FS {
	return vanilla.TemplatesFS()
}

// AssetsFS exposes the bundled stylesheet.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(contactform.AssetsFS()),
//	  ),
//	)
func AssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
