package web

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/sabhaenabler/website/internal/platform/timeouts"
	module "github.com/sabhaenabler/website/internal/services/web/module"
	"github.com/sabhaenabler/website/internal/services/web/modules"
	apperrors "github.com/sabhaenabler/website/internal/services/web/platform/errors"
	"github.com/sabhaenabler/website/internal/services/web/platform/httpx"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	"github.com/sabhaenabler/website/internal/services/web/platform/observability"
	"github.com/sabhaenabler/website/internal/services/web/platform/weberror"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
	webstatic "github.com/sabhaenabler/website/internal/services/web/static"
	"github.com/sabhaenabler/website/internal/services/web/templates"
	"go.opentelemetry.io/otel"
)

// Config defines startup inputs for the web service.
type Config struct {
	HTTPAddr     string
	AssetBaseURL string
}

// Server hosts the web HTTP surface and lifecycle.
type Server struct {
	httpAddr   string
	httpServer *http.Server
}

// NewHandler builds a root handler from the default module registry. It fails
// when the embedded catalog cannot render every page.
func NewHandler(cfg Config) (http.Handler, error) {
	if err := webi18n.CheckCatalog(append(apperrors.Keys(), templates.ErrorPageKeys()...)...); err != nil {
		return nil, fmt.Errorf("validate catalog: %w", err)
	}
	deps := module.Dependencies{
		AssetBaseURL: strings.TrimSpace(cfg.AssetBaseURL),
	}
	h, err := modules.Compose(modules.DefaultModules(deps))
	if err != nil {
		return nil, err
	}
	rootMux := http.NewServeMux()
	rootMux.Handle(routepath.StaticPrefix, http.StripPrefix(routepath.StaticPrefix, http.FileServer(http.FS(webstatic.FS))))
	rootMux.Handle(routepath.Root, h)
	return httpx.Chain(rootMux,
		httpx.RecoverPanic(serverErrorPage(deps)),
		httpx.RequestID(),
		observability.Tracing(otel.GetTracerProvider(), otel.GetTextMapPropagator()),
		observability.RequestLogger(log.Default()),
	), nil
}

// serverErrorPage renders the localized 500 page after a recovered panic.
func serverErrorPage(deps module.Dependencies) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		weberror.WriteAppError(w, r, http.StatusInternalServerError, deps)
	})
}

// NewServer validates config and constructs a web server.
func NewServer(_ context.Context, cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, fmt.Errorf("compose web handler: %w", err)
	}
	return &Server{
		httpAddr: httpAddr,
		httpServer: &http.Server{
			Addr:              httpAddr,
			Handler:           handler,
			ReadHeaderTimeout: timeouts.ReadHeader,
		},
	}, nil
}

// Addr returns the configured listen address.
func (s *Server) Addr() string {
	if s == nil {
		return ""
	}
	return s.httpAddr
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("web server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Printf("web listening addr=%s", s.httpAddr)
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown web http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve web http: %w", err)
	}
}

// Close closes open server resources.
func (s *Server) Close() {
	if s == nil || s.httpServer == nil {
		return
	}
	_ = s.httpServer.Close()
}
