package public

import (
	"net/http"

	"github.com/sabhaenabler/website/internal/services/web/platform/weberror"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
)

// rootWriteMethods are rejected on the landing page. Each gets its own
// pattern: a method-less "/{$}" would overlap "GET /{rest...}" and make the
// mux panic at registration.
var rootWriteMethods = []string{
	http.MethodPost,
	http.MethodPut,
	http.MethodPatch,
	http.MethodDelete,
}

func registerRoutes(mux *http.ServeMux, h handlers) {
	if mux == nil {
		return
	}
	root := routepath.Root + "{$}"
	mux.HandleFunc(http.MethodGet+" "+root, h.handleRoot)
	rejectWrites := weberror.MethodNotAllowed(h.deps, http.MethodGet, http.MethodHead)
	for _, method := range rootWriteMethods {
		mux.HandleFunc(method+" "+root, rejectWrites)
	}
	mux.HandleFunc(http.MethodGet+" "+routepath.Health, h.handleHealth)
	mux.HandleFunc(http.MethodGet+" "+routepath.Root+"{rest...}", h.handleNotFound)
}
