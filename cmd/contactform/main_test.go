package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/goliatone/go-contactform/pkg/testsupport"
)

func execute(t *testing.T, args ...string) string {
	t.Helper()
	cmd := newRootCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(append([]string{"--log-level", "error"}, args...))
	if err := cmd.ExecuteContext(testsupport.Context()); err != nil {
		t.Fatalf("execute %v: %v\nstderr: %s", args, err, errOut.String())
	}
	return out.String()
}

func TestSchemaCommand(t *testing.T) {
	jsonOut := execute(t, "schema")
	if !strings.Contains(jsonOut, `"/contact/validate"`) {
		t.Fatalf("json schema missing validate path:\n%s", jsonOut)
	}

	yamlOut := execute(t, "schema", "--format", "yaml", "--path", "/support")
	if !strings.Contains(yamlOut, "openapi: 3.0.3") || !strings.Contains(yamlOut, "/support:") {
		t.Fatalf("unexpected yaml schema:\n%s", yamlOut)
	}
}

func TestSchemaCommand_RejectsFormat(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"schema", "--format", "toml"})
	if err := cmd.ExecuteContext(testsupport.Context()); err == nil {
		t.Fatalf("expected error for unsupported format")
	}
}

func TestRenderCommand_EmptyForm(t *testing.T) {
	out := execute(t, "render")
	if !testsupport.HasText(t, out, "Contact Form") {
		t.Fatalf("expected header:\n%s", out)
	}
	if !strings.Contains(out, `data-testid="submitButton"`) {
		t.Fatalf("expected submit control")
	}
	if !strings.Contains(out, "--cf-accent") {
		t.Fatalf("expected built-in theme tokens:\n%s", out)
	}
}

func TestRenderCommand_SubmitShowsErrors(t *testing.T) {
	out := execute(t, "render", "--submit", "--first-name", "Wes", "--last-name", "Woodard", "--email", "westonwoodard28@gmail.com")
	got := testsupport.ErrorTexts(t, out)
	if len(got) != 1 || got[0] != testsupport.FirstNameError {
		t.Fatalf("expected only the first name error, got %v", got)
	}
}

func TestRenderCommand_WritesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "form.html")
	execute(t, "render", "--page", "--output", path)

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.HasPrefix(strings.TrimSpace(string(data)), "<!doctype html>") {
		t.Fatalf("expected a full page:\n%s", data)
	}
}
