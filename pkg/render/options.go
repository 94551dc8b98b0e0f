package render

// RenderOptions describe per-request data renderers use to customise their
// output without touching the form state.
type RenderOptions struct {
	// Title overrides the header text. Defaults to DefaultTitle.
	Title string
	// Action is the URL the HTML form posts to.
	Action string
	// Method is the HTTP method of the HTML form. Defaults to POST.
	Method string
	// Hidden carries extra inputs (CSRF tokens, version markers) emitted
	// alongside the visible controls.
	Hidden map[string]string
	// ThemeName and ThemeVariant select a go-theme manifest when the renderer
	// has a selector configured.
	ThemeName    string
	ThemeVariant string
}

// DefaultTitle is the header shown above the form.
const DefaultTitle = "Contact Form"
