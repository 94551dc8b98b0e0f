package render_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/goliatone/go-contactform/pkg/contact"
	"github.com/goliatone/go-contactform/pkg/render"
)

type namedRenderer string

func (n namedRenderer) Name() string        { return string(n) }
func (n namedRenderer) ContentType() string { return "text/plain" }
func (n namedRenderer) Render(context.Context, *contact.Form, render.RenderOptions) ([]byte, error) {
	return []byte(n), nil
}

func TestRegistry(t *testing.T) {
	registry := render.NewRegistry()
	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("tui"))

	if err := registry.Register(namedRenderer("vanilla")); err == nil {
		t.Fatalf("expected duplicate registration error")
	}
	if err := registry.Register(nil); err == nil {
		t.Fatalf("expected nil renderer error")
	}

	if diff := cmp.Diff([]string{"tui", "vanilla"}, registry.Names()); diff != "" {
		t.Fatalf("names mismatch (-want +got):\n%s", diff)
	}
	if r, err := registry.Get("tui"); err != nil || r.Name() != "tui" {
		t.Fatalf("get tui: %v, %v", r, err)
	}
	if _, err := registry.Get("preact"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}

func TestRegistry_Default(t *testing.T) {
	registry := render.NewRegistry()
	if _, err := registry.Default(); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("empty registry: expected ErrUnknownRenderer, got %v", err)
	}

	registry.MustRegister(namedRenderer("vanilla"))
	registry.MustRegister(namedRenderer("tui"))

	r, err := registry.Default()
	if err != nil || r.Name() != "vanilla" {
		t.Fatalf("expected first registered renderer as default, got %v, %v", r, err)
	}

	if err := registry.SetDefault("tui"); err != nil {
		t.Fatalf("set default: %v", err)
	}
	if r, _ := registry.Get(""); r.Name() != "tui" {
		t.Fatalf("empty lookup returned %q, want tui", r.Name())
	}
	if err := registry.SetDefault("preact"); !errors.Is(err, render.ErrUnknownRenderer) {
		t.Fatalf("expected ErrUnknownRenderer, got %v", err)
	}
}
