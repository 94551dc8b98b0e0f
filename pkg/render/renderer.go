package render

import (
	"context"

	"github.com/goliatone/go-contactform/pkg/contact"
)

// Renderer turns the contact form into a byte representation (HTML, a
// terminal session transcript, JSON). Interactive renderers may drive the
// form through Change and Submit while rendering.
type Renderer interface {
	Name() string
	ContentType() string
	Render(ctx context.Context, form *contact.Form, options RenderOptions) ([]byte, error)
}
