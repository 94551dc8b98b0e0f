package template

// TemplateRenderer is the seam between renderers and a template engine.
// Values reach templates under their JSON field names.
type TemplateRenderer interface {
	RenderTemplate(name string, data any) (string, error)
	RenderString(templateContent string, data any) (string, error)
}
