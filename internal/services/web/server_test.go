package web

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	module "github.com/sabhaenabler/website/internal/services/web/module"
	"github.com/sabhaenabler/website/internal/services/web/platform/httpx"
	"go.uber.org/goleak"
)

func newTestHandler(t *testing.T, cfg Config) http.Handler {
	t.Helper()
	h, err := NewHandler(cfg)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

func TestStaticStylesheetServedByWeb(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	req := httptest.NewRequest(http.MethodGet, "/static/app.css", nil)
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	if ct := rr.Header().Get("Content-Type"); !strings.Contains(ct, "text/css") {
		t.Fatalf("content-type = %q, want text/css", ct)
	}
	body := rr.Body.String()
	for _, marker := range []string{".App-header", ".features-grid", ".feature-item", ".cta-buttons", ".App-footer"} {
		if !strings.Contains(body, marker) {
			t.Fatalf("app.css missing rule %q", marker)
		}
	}
}

func TestStaticMissingAssetReturnsNotFound(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/static/missing.js", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
}

func TestRootHandlerServesLandingPage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusOK)
	}
	body := rr.Body.String()
	for _, marker := range []string{
		"<!doctype html>",
		`<html lang="en-US">`,
		`href="/static/app.css"`,
		"SabhaEnabler: Your Local Service Connection",
		"© 2025 SabhaEnabler. All rights reserved.",
	} {
		if !strings.Contains(body, marker) {
			t.Fatalf("landing page missing marker %q", marker)
		}
	}
}

func TestRootHandlerAppliesMiddleware(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/up", nil))
	if got := rr.Header().Get(httpx.RequestIDHeader); got == "" {
		t.Fatalf("expected generated %s header", httpx.RequestIDHeader)
	}

	req := httptest.NewRequest(http.MethodGet, "/up", nil)
	req.Header.Set(httpx.RequestIDHeader, "req-123")
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)
	if got := rr.Header().Get(httpx.RequestIDHeader); got != "req-123" {
		t.Fatalf("%s = %q, want %q", httpx.RequestIDHeader, got, "req-123")
	}
}

func TestRootHandlerRendersNotFoundPage(t *testing.T) {
	t.Parallel()

	h := newTestHandler(t, Config{AssetBaseURL: "https://cdn.example.com"})
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/providers", nil))
	if rr.Code != http.StatusNotFound {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusNotFound)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="error-state"`) {
		t.Fatalf("body missing error state marker")
	}
	if !strings.Contains(body, `href="https://cdn.example.com/static/app.css"`) {
		t.Fatalf("body missing asset base stylesheet")
	}
}

func TestNewHandlerServesComposedRoutes(t *testing.T) {
	t.Parallel()

	var h http.Handler
	func() {
		defer func() {
			if r := recover(); r != nil {
				t.Fatalf("NewHandler() panicked: %v", r)
			}
		}()
		h = newTestHandler(t, Config{})
	}()

	tests := []struct {
		name        string
		method      string
		target      string
		status      int
		allow       string
		contentType string
		body        string
	}{
		{name: "root write", method: http.MethodPost, target: "/", status: http.StatusMethodNotAllowed, allow: "GET, HEAD", contentType: "text/plain"},
		{name: "unknown write", method: http.MethodPost, target: "/unknown", status: http.StatusMethodNotAllowed, allow: "GET, HEAD"},
		{name: "health", method: http.MethodGet, target: "/up", status: http.StatusOK, contentType: "text/plain", body: "ok"},
		{name: "stylesheet", method: http.MethodGet, target: "/static/app.css", status: http.StatusOK, contentType: "text/css"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rr := httptest.NewRecorder()
			h.ServeHTTP(rr, httptest.NewRequest(tc.method, tc.target, nil))
			if rr.Code != tc.status {
				t.Fatalf("%s %s status = %d, want %d", tc.method, tc.target, rr.Code, tc.status)
			}
			if tc.allow != "" && rr.Header().Get("Allow") != tc.allow {
				t.Fatalf("%s %s Allow = %q, want %q", tc.method, tc.target, rr.Header().Get("Allow"), tc.allow)
			}
			if ct := rr.Header().Get("Content-Type"); !strings.HasPrefix(ct, tc.contentType) {
				t.Fatalf("%s %s content-type = %q, want %s", tc.method, tc.target, ct, tc.contentType)
			}
			if tc.body != "" && strings.TrimSpace(rr.Body.String()) != tc.body {
				t.Fatalf("%s %s body = %q, want %q", tc.method, tc.target, rr.Body.String(), tc.body)
			}
		})
	}
}

func TestServerErrorPageRendersLocalizedPage(t *testing.T) {
	t.Parallel()

	h := httpx.RecoverPanic(serverErrorPage(module.Dependencies{}))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	}))
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want %d", rr.Code, http.StatusInternalServerError)
	}
	body := rr.Body.String()
	if !strings.Contains(body, `id="error-state"`) || !strings.Contains(body, "Something went wrong") {
		t.Fatalf("body missing localized server error page: %q", body)
	}
	if strings.Contains(body, "boom") {
		t.Fatalf("body leaks panic value: %q", body)
	}
}

func TestNewServerRequiresHTTPAddr(t *testing.T) {
	t.Parallel()

	if _, err := NewServer(context.Background(), Config{HTTPAddr: "  "}); err == nil {
		t.Fatalf("expected error for blank http address")
	}
}

func TestNilServerIsSafe(t *testing.T) {
	t.Parallel()

	var s *Server
	s.Close()
	if got := s.Addr(); got != "" {
		t.Fatalf("Addr() = %q, want empty", got)
	}
	if err := s.ListenAndServe(context.Background()); err == nil {
		t.Fatalf("expected error for nil server")
	}
}

func TestListenAndServeStopsOnContextCancel(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	s, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:0"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if got := s.Addr(); got != "127.0.0.1:0" {
		t.Fatalf("Addr() = %q", got)
	}

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- s.ListenAndServe(ctx)
	}()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("ListenAndServe() error = %v", err)
		}
	case <-time.After(10 * time.Second):
		t.Fatalf("ListenAndServe() did not return after cancel")
	}
}

func TestListenAndServeReportsBindError(t *testing.T) {
	t.Parallel()

	s, err := NewServer(context.Background(), Config{HTTPAddr: "127.0.0.1:-1"})
	if err != nil {
		t.Fatalf("NewServer() error = %v", err)
	}
	if err := s.ListenAndServe(context.Background()); err == nil || !strings.Contains(err.Error(), "serve web http") {
		t.Fatalf("ListenAndServe() error = %v, want serve error", err)
	}
}
