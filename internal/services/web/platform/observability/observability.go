// Package observability provides request logging and tracing middleware for
// the web service.
package observability

import (
	"fmt"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/sabhaenabler/website/internal/services/web/platform/httpx"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

// TracerName identifies spans started by the web service.
const TracerName = "github.com/sabhaenabler/website/internal/services/web"

type statusRecorder struct {
	http.ResponseWriter
	status int
	bytes  int
}

func (r *statusRecorder) WriteHeader(status int) {
	if r.status == 0 {
		r.status = status
	}
	r.ResponseWriter.WriteHeader(status)
}

func (r *statusRecorder) Write(body []byte) (int, error) {
	if r.status == 0 {
		r.status = http.StatusOK
	}
	n, err := r.ResponseWriter.Write(body)
	r.bytes += n
	return n, err
}

func (r *statusRecorder) Unwrap() http.ResponseWriter {
	return r.ResponseWriter
}

func (r *statusRecorder) statusCode() int {
	if r.status == 0 {
		return http.StatusOK
	}
	return r.status
}

// RequestLogger writes one key=value line per request.
func RequestLogger(logger *log.Logger) httpx.Middleware {
	if logger == nil {
		logger = log.Default()
	}
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r)

			requestID := requestIDOf(r)
			if requestID == "" {
				requestID = "-"
			}
			logger.Printf(
				"method=%s path=%s status=%d bytes=%d latency=%s request_id=%s",
				r.Method,
				r.URL.Path,
				rec.statusCode(),
				rec.bytes,
				time.Since(started).Round(time.Microsecond),
				requestID,
			)
		})
	}
}

func requestIDOf(r *http.Request) string {
	if requestID := httpx.RequestIDFromContext(r.Context()); requestID != "" {
		return requestID
	}
	return strings.TrimSpace(r.Header.Get(httpx.RequestIDHeader))
}

// Tracing starts a server span per request using the supplied provider and
// propagator. The span name carries only the method so arbitrary 404 paths
// cannot grow the set of span names; the path is an attribute. Responses with
// 5xx status mark the span as failed.
func Tracing(provider trace.TracerProvider, propagator propagation.TextMapPropagator) httpx.Middleware {
	return func(next http.Handler) http.Handler {
		if next == nil {
			next = http.NotFoundHandler()
		}
		if provider == nil {
			return next
		}
		tracer := provider.Tracer(TracerName)
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			if propagator != nil {
				ctx = propagator.Extract(ctx, propagation.HeaderCarrier(r.Header))
			}
			attrs := []attribute.KeyValue{
				attribute.String("http.request.method", r.Method),
				attribute.String("url.path", r.URL.Path),
			}
			if requestID := requestIDOf(r); requestID != "" {
				attrs = append(attrs, attribute.String("http.request.id", requestID))
			}
			ctx, span := tracer.Start(ctx, SpanName(r.Method),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(attrs...),
			)
			defer span.End()

			rec := &statusRecorder{ResponseWriter: w}
			next.ServeHTTP(rec, r.WithContext(ctx))

			status := rec.statusCode()
			span.SetAttributes(attribute.Int("http.response.status_code", status))
			if status >= http.StatusInternalServerError {
				span.SetStatus(codes.Error, fmt.Sprintf("http status %d", status))
			}
		})
	}
}

// SpanName returns the server span name for method.
func SpanName(method string) string {
	return "HTTP " + method
}
