// Package public serves the unauthenticated marketing surface: the landing
// page, the health check and the fallback not-found page.
package public

import (
	"net/http"
	"strings"

	module "github.com/sabhaenabler/website/internal/services/web/module"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
)

// Module provides the root landing routes.
type Module struct {
	deps   module.Dependencies
	id     string
	prefix string
}

// New returns the public module.
func New(deps module.Dependencies) Module {
	return Module{
		deps:   deps,
		id:     "public",
		prefix: routepath.Root,
	}
}

// ID returns a stable identifier for diagnostics and startup logs.
func (m Module) ID() string {
	id := strings.TrimSpace(m.id)
	if id == "" {
		return "public"
	}
	return id
}

// Mount wires public routes under the root prefix.
func (m Module) Mount() (module.Mount, error) {
	mux := http.NewServeMux()
	registerRoutes(mux, newHandlers(m.deps))
	prefix := strings.TrimSpace(m.prefix)
	if prefix == "" {
		prefix = routepath.Root
	}
	return module.Mount{Prefix: prefix, Handler: mux}, nil
}
