// Package httpx provides the HTTP middleware and response helpers shared by
// web modules.
package httpx

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"runtime/debug"
	"strings"

	"github.com/google/uuid"
)

const htmxHeader = "HX-Request"

// RequestIDHeader carries the correlation id on requests and responses.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen bounds ids accepted from callers; longer ids are replaced.
const maxRequestIDLen = 64

// Middleware wraps an HTTP handler.
type Middleware func(http.Handler) http.Handler

type requestIDKey struct{}

// Chain applies middleware in declaration order, so the first one listed is
// the outermost.
func Chain(handler http.Handler, middleware ...Middleware) http.Handler {
	if handler == nil {
		handler = http.NotFoundHandler()
	}
	for idx := len(middleware) - 1; idx >= 0; idx-- {
		if middleware[idx] != nil {
			handler = middleware[idx](handler)
		}
	}
	return handler
}

// RequestID assigns each request a correlation id. A well-formed incoming
// X-Request-ID is kept; anything else is replaced with a fresh UUID. The id is
// echoed on the response, set on the request header for outer middleware, and
// stored on the context.
func RequestID() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			requestID := r.Header.Get(RequestIDHeader)
			if !validRequestID(requestID) {
				requestID = uuid.NewString()
				r.Header.Set(RequestIDHeader, requestID)
			}
			w.Header().Set(RequestIDHeader, requestID)
			ctx := context.WithValue(r.Context(), requestIDKey{}, requestID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequestIDFromContext returns the id stored by RequestID, or "".
func RequestIDFromContext(ctx context.Context) string {
	if ctx == nil {
		return ""
	}
	requestID, _ := ctx.Value(requestIDKey{}).(string)
	return requestID
}

// validRequestID accepts short ids made of letters, digits, '-', '_' and '.',
// which keeps caller-supplied ids safe to log.
func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLen {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}

// RecoverPanic logs a panic with its stack and hands the request to
// fallback, which writes the visitor-facing 500. A nil fallback writes a bare
// 500. http.ErrAbortHandler is re-raised so net/http can drop the connection.
func RecoverPanic(fallback http.Handler) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				recovered := recover()
				if recovered == nil {
					return
				}
				if err, ok := recovered.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(recovered)
				}
				log.Printf(
					"panic recovered method=%s path=%s request_id=%s panic=%v stack=%s",
					r.Method,
					r.URL.Path,
					logValue(r.Header.Get(RequestIDHeader)),
					recovered,
					strings.TrimSpace(string(debug.Stack())),
				)
				if fallback == nil {
					w.WriteHeader(http.StatusInternalServerError)
					return
				}
				fallback.ServeHTTP(w, r)
			}()
			next.ServeHTTP(w, r)
		})
	}
}

func logValue(value string) string {
	if value = strings.TrimSpace(value); value == "" {
		return "-"
	}
	return value
}

// RequestContext returns r.Context() with a nil-safe fallback to context.Background().
func RequestContext(r *http.Request) context.Context {
	if r == nil {
		return context.Background()
	}
	return r.Context()
}

// IsHTMXRequest reports whether the current request came from HTMX.
func IsHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(htmxHeader), "true")
}

// WriteText writes a plain-text body that must not be sniffed as HTML.
func WriteText(w http.ResponseWriter, status int, body string) error {
	if w == nil {
		return errors.New("response writer is required")
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	_, err := io.WriteString(w, body)
	return err
}
