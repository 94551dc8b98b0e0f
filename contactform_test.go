package contactform

import (
	"context"
	"io/fs"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/goliatone/go-contactform/pkg/renderers/vanilla"
)

func TestEmbeddedTemplatesContainsForm(t *testing.T) {
	if _, err := fs.ReadFile(EmbeddedTemplates(), "templates/contact.tmpl"); err != nil {
		t.Fatalf("expected contact template to be readable: %v", err)
	}
}

func TestAssetsFSContainsStylesheet(t *testing.T) {
	if _, err := fs.ReadFile(AssetsFS(), vanilla.StylesheetName); err != nil {
		t.Fatalf("expected stylesheet to be readable: %v", err)
	}
}

func TestRenderHTMLSubmitted(t *testing.T) {
	out, err := RenderHTML(context.Background(), FormState{
		FirstName: "Weston",
		LastName:  "Woodard",
		Email:     "westonwoodard28@gmail.com",
	}, true, RenderOptions{Action: "/contact"})
	if err != nil {
		t.Fatalf("render: %v", err)
	}
	if !strings.Contains(string(out), `data-testid="summary"`) {
		t.Fatalf("expected summary block:\n%s", out)
	}
}

func TestNewServerServesPage(t *testing.T) {
	srv, err := NewServer(context.Background())
	if err != nil {
		t.Fatalf("new server: %v", err)
	}
	rec := httptest.NewRecorder()
	srv.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/contact", nil))
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if !strings.Contains(rec.Body.String(), "/assets/"+vanilla.StylesheetName) {
		t.Fatalf("expected stylesheet link:\n%s", rec.Body.String())
	}
}
