// Package otel installs the process-wide OpenTelemetry tracer provider.
package otel

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/sabhaenabler/website/internal/platform/config"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.26.0"
)

const (
	// EnabledEnv turns tracing off when set to "false".
	EnabledEnv = config.EnvPrefix + "OTEL_ENABLED"
	// EndpointEnv is the OTLP/HTTP collector URL. Tracing stays off without it.
	EndpointEnv = config.EnvPrefix + "OTEL_ENDPOINT"
	// SampleRatioEnv is the fraction of new traces to record, from 0 to 1.
	SampleRatioEnv = config.EnvPrefix + "OTEL_SAMPLE_RATIO"
)

// Settings controls trace export.
type Settings struct {
	Enabled     bool    `env:"OTEL_ENABLED" envDefault:"true"`
	Endpoint    string  `env:"OTEL_ENDPOINT"`
	SampleRatio float64 `env:"OTEL_SAMPLE_RATIO" envDefault:"1"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := config.ParseEnv(&s); err != nil {
		return Settings{}, err
	}
	s.Endpoint = strings.TrimSpace(s.Endpoint)
	if s.SampleRatio < 0 || s.SampleRatio > 1 {
		return Settings{}, fmt.Errorf("%s must be between 0 and 1, got %v", SampleRatioEnv, s.SampleRatio)
	}
	return s, nil
}

// Active reports whether spans should be exported.
func (s Settings) Active() bool {
	return s.Enabled && s.Endpoint != ""
}

// Sampler honours the caller's sampling decision and samples new traces at
// SampleRatio.
func (s Settings) Sampler() sdktrace.Sampler {
	if s.SampleRatio >= 1 {
		return sdktrace.ParentBased(sdktrace.AlwaysSample())
	}
	return sdktrace.ParentBased(sdktrace.TraceIDRatioBased(s.SampleRatio))
}

// Setup installs a batching OTLP/HTTP tracer provider for serviceName and the
// W3C trace-context propagator. When tracing is not active no global provider
// is registered and the returned shutdown is a no-op. Callers defer shutdown
// to flush pending spans.
func Setup(ctx context.Context, serviceName string) (shutdown func(context.Context) error, err error) {
	noop := func(context.Context) error { return nil }
	if strings.TrimSpace(serviceName) == "" {
		return noop, errors.New("service name is required")
	}
	settings, err := LoadSettings()
	if err != nil {
		return noop, err
	}
	if !settings.Active() {
		return noop, nil
	}

	exporter, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpointURL(settings.Endpoint))
	if err != nil {
		return noop, fmt.Errorf("create otlp exporter: %w", err)
	}
	res, err := resource.New(ctx, resource.WithAttributes(semconv.ServiceName(serviceName)))
	if err != nil {
		return noop, fmt.Errorf("build otel resource: %w", err)
	}

	tp := sdktrace.NewTracerProvider(
		sdktrace.WithBatcher(exporter),
		sdktrace.WithResource(res),
		sdktrace.WithSampler(settings.Sampler()),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.TraceContext{})
	return tp.Shutdown, nil
}
