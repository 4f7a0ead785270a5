package weberror

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/sabhaenabler/website/internal/services/web/module"
	apperrors "github.com/sabhaenabler/website/internal/services/web/platform/errors"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	"golang.org/x/text/language"
)

func TestWriteModuleErrorRendersErrorPageForNotFound(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/providers/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.NotFound("/missing"), module.Dependencies{})
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	for _, marker := range []string{`id="error-state"`, "<title>Page not found</title>", `href="/static/app.css"`} {
		if !strings.Contains(body, marker) {
			t.Fatalf("body missing marker %q: %q", marker, body)
		}
	}
}

func TestWriteModuleErrorUsesAssetBaseURL(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.NotFound("/missing"), module.Dependencies{AssetBaseURL: "https://cdn.example.com"})
	if !strings.Contains(rr.Body.String(), `href="https://cdn.example.com/static/app.css"`) {
		t.Fatalf("body missing cdn stylesheet: %q", rr.Body.String())
	}
}

func TestWriteModuleErrorLocalizesErrorPage(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.NotFound("/missing"), module.Dependencies{})
	body := rr.Body.String()
	if !strings.Contains(body, `lang="pt-BR"`) {
		t.Fatalf("body missing pt-BR lang attribute: %q", body)
	}
	if !strings.Contains(body, "Voltar para o início") {
		t.Fatalf("body missing localized back link: %q", body)
	}
}

func TestWriteModuleErrorRendersFragmentForHTMX(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/missing", nil)
	req.Header.Set("HX-Request", "true")
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, errors.New("boom"), module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if strings.Contains(strings.ToLower(body), "<html") {
		t.Fatalf("expected htmx fragment without document wrapper: %q", body)
	}
	if !strings.Contains(body, `id="error-state"`) {
		t.Fatalf("body missing error state marker: %q", body)
	}
	if strings.Contains(body, "boom") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteModuleErrorWritesPlainTextForMethodNotAllowed(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodPost, "/", nil)
	rr := httptest.NewRecorder()
	WriteModuleError(rr, req, apperrors.MethodNotAllowed("/", http.MethodGet, http.MethodHead), module.Dependencies{})
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != "GET, HEAD" {
		t.Fatalf("Allow = %q, want %q", got, "GET, HEAD")
	}
	if got := rr.Header().Get("Content-Type"); !strings.HasPrefix(got, "text/plain") {
		t.Fatalf("content-type = %q, want text/plain", got)
	}
	if body := rr.Body.String(); !strings.Contains(body, "This page can only be viewed") {
		t.Fatalf("body = %q, want localized method message", body)
	}
}

func TestMethodNotAllowedHandlerLocalizes(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodDelete, "/?lang=pt-BR", nil)
	rr := httptest.NewRecorder()
	MethodNotAllowed(module.Dependencies{}, http.MethodGet)(rr, req)
	if rr.Code != http.StatusMethodNotAllowed {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusMethodNotAllowed)
	}
	if got := rr.Header().Get("Allow"); got != http.MethodGet {
		t.Fatalf("Allow = %q, want %q", got, http.MethodGet)
	}
	if body := rr.Body.String(); !strings.Contains(body, "Esta página só pode ser visualizada") {
		t.Fatalf("body = %q, want pt-BR method message", body)
	}
}

func TestWriteModuleErrorRenderFailureHidesCause(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteModuleError(rr, httptest.NewRequest(http.MethodGet, "/", nil), apperrors.Render("/", errors.New("template exploded")), module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if !strings.Contains(body, "Something went wrong") {
		t.Fatalf("body missing server error title: %q", body)
	}
	if strings.Contains(body, "template exploded") {
		t.Fatalf("body leaked internal error text: %q", body)
	}
}

func TestWriteAppErrorCoercesClientStatusToServerError(t *testing.T) {
	t.Parallel()

	rr := httptest.NewRecorder()
	WriteAppError(rr, httptest.NewRequest(http.MethodGet, "/", nil), http.StatusTeapot, module.Dependencies{})
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
}

func TestPublicMessage(t *testing.T) {
	t.Parallel()

	loc := webi18n.Printer(language.AmericanEnglish)
	tests := []struct {
		name string
		err  error
		want string
	}{
		{name: "nil", err: nil, want: ""},
		{name: "not found", err: apperrors.NotFound("/missing"), want: "The page you are looking for does not exist."},
		{name: "render", err: apperrors.Render("/", errors.New("raw")), want: "We could not load this page. Please try again in a moment."},
		{name: "plain error", err: errors.New("db exploded"), want: "We could not load this page. Please try again in a moment."},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := PublicMessage(loc, tc.err); got != tc.want {
				t.Fatalf("PublicMessage() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestPublicMessageWithoutLocalizerUsesStatusText(t *testing.T) {
	t.Parallel()

	if got := PublicMessage(nil, apperrors.NotFound("/x")); got != http.StatusText(http.StatusNotFound) {
		t.Fatalf("PublicMessage(nil) = %q", got)
	}
}
