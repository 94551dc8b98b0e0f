package vanilla

import (
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

type themeContext struct {
	Name    string            `json:"name,omitempty"`
	Variant string            `json:"variant,omitempty"`
	CSSVars map[string]string `json:"cssVars,omitempty"`
	Style   string            `json:"style,omitempty"`
}

func (r *Renderer) resolveTheme(name, variant string) (themeContext, error) {
	if r.themes == nil {
		return themeContext{}, nil
	}
	name = strings.TrimSpace(name)
	if name == "" {
		name = r.defaultTheme
	}
	variant = strings.TrimSpace(variant)
	if variant == "" {
		variant = r.defaultVariant
	}

	selection, err := r.themes.Select(name, variant)
	if err != nil {
		return themeContext{}, fmt.Errorf("vanilla renderer: select theme %q: %w", name, err)
	}
	return buildThemeContext(selection), nil
}

// buildThemeContext turns manifest tokens into CSS custom properties. Variant
// tokens override the base manifest.
func buildThemeContext(selection *theme.Selection) themeContext {
	if selection == nil {
		return themeContext{}
	}
	ctx := themeContext{
		Name:    selection.Theme,
		Variant: selection.Variant,
	}
	if selection.Manifest == nil {
		return ctx
	}

	tokens := make(map[string]string, len(selection.Manifest.Tokens))
	for key, value := range selection.Manifest.Tokens {
		tokens[key] = value
	}
	if variant, ok := selection.Manifest.Variants[selection.Variant]; ok {
		for key, value := range variant.Tokens {
			tokens[key] = value
		}
	}
	if len(tokens) == 0 {
		return ctx
	}

	ctx.CSSVars = make(map[string]string, len(tokens))
	for key, value := range tokens {
		name := strings.TrimSpace(key)
		if name == "" {
			continue
		}
		ctx.CSSVars["--"+strings.TrimPrefix(name, "--")] = strings.TrimSpace(value)
	}
	ctx.Style = cssVarsStyle(ctx.CSSVars)
	return ctx
}

func cssVarsStyle(vars map[string]string) string {
	if len(vars) == 0 {
		return ""
	}
	keys := make([]string, 0, len(vars))
	for key := range vars {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+vars[key])
	}
	return strings.Join(parts, "; ") + ";"
}
