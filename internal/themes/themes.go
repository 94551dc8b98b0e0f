// Package themes ships the manifests the binaries can select without an
// external theme provider.
package themes

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	theme "github.com/goliatone/go-theme"
)

// DefaultTheme is used when no theme name is configured.
const DefaultTheme = "contactform"

// ErrUnknownTheme is returned for names that have no manifest.
var ErrUnknownTheme = errors.New("themes: unknown theme")

// Selector resolves a theme name and variant against a fixed set of
// manifests.
type Selector struct {
	manifests map[string]*theme.Manifest
}

var _ theme.ThemeSelector = (*Selector)(nil)

// NewSelector indexes manifests by name. Later manifests replace earlier
// ones with the same name.
func NewSelector(manifests ...*theme.Manifest) *Selector {
	s := &Selector{manifests: make(map[string]*theme.Manifest, len(manifests))}
	for _, manifest := range manifests {
		if manifest == nil || strings.TrimSpace(manifest.Name) == "" {
			continue
		}
		s.manifests[manifest.Name] = manifest
	}
	return s
}

// Builtin returns a selector over the bundled manifests.
func Builtin() *Selector {
	return NewSelector(contactformManifest())
}

// Select implements theme.ThemeSelector. An empty name selects
// DefaultTheme; an empty variant selects the base tokens.
func (s *Selector) Select(name, variant string, _ ...theme.QueryOption) (*theme.Selection, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		name = DefaultTheme
	}
	manifest, ok := s.manifests[name]
	if !ok {
		return nil, fmt.Errorf("%w %q", ErrUnknownTheme, name)
	}

	variant = strings.TrimSpace(variant)
	if variant != "" {
		if _, ok := manifest.Variants[variant]; !ok {
			return nil, fmt.Errorf("themes: theme %q has no variant %q (have %s)", name, variant, strings.Join(s.Variants(name), ", "))
		}
	}

	return &theme.Selection{
		Theme:    name,
		Variant:  variant,
		Manifest: manifest,
	}, nil
}

// Names lists the known themes in order.
func (s *Selector) Names() []string {
	names := make([]string, 0, len(s.manifests))
	for name := range s.manifests {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Variants lists the variants of a theme in order.
func (s *Selector) Variants(name string) []string {
	manifest, ok := s.manifests[name]
	if !ok {
		return nil
	}
	variants := make([]string, 0, len(manifest.Variants))
	for variant := range manifest.Variants {
		variants = append(variants, variant)
	}
	sort.Strings(variants)
	return variants
}

func contactformManifest() *theme.Manifest {
	return &theme.Manifest{
		Name:    DefaultTheme,
		Version: "1.0.0",
		Tokens: map[string]string{
			"cf-surface": "#ffffff",
			"cf-text":    "#1f2933",
			"cf-accent":  "#2f6fed",
			"cf-danger":  "#c81e1e",
			"cf-radius":  "4px",
		},
		Variants: map[string]theme.Variant{
			"dark": {
				Tokens: map[string]string{
					"cf-surface": "#111827",
					"cf-text":    "#f3f4f6",
					"cf-accent":  "#7aa2ff",
					"cf-danger":  "#f87171",
				},
			},
		},
	}
}
