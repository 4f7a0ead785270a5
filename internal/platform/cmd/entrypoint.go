// Package cmd holds the startup sequence shared by the site's commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/sabhaenabler/website/internal/platform/config"
	"github.com/sabhaenabler/website/internal/platform/otel"
)

// ServiceWeb names the marketing site in traces and logs.
const ServiceWeb = "web"

const telemetryFlushTimeout = 5 * time.Second

// Load reads environment settings into a T, lets bind register flags that
// default to those values, then parses args. Flags take precedence over the
// environment. Positional arguments are rejected.
func Load[T any](fs *flag.FlagSet, args []string, bind func(*flag.FlagSet, *T)) (T, error) {
	var cfg T
	if fs == nil {
		return cfg, errors.New("flag set is required")
	}
	if err := config.ParseEnv(&cfg); err != nil {
		return cfg, err
	}
	if bind != nil {
		bind(fs, &cfg)
	}
	if args == nil {
		args = []string{}
	}
	if err := fs.Parse(args); err != nil {
		return cfg, err
	}
	if fs.NArg() > 0 {
		return cfg, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	return cfg, nil
}

// RunWithTelemetry installs tracing for service, then calls run. Pending
// spans are flushed after run returns, and run's error is returned as is.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return errors.New("service name is required")
	}
	if run == nil {
		return errors.New("run function is required")
	}
	shutdown, err := otel.Setup(ctx, service)
	if err != nil {
		return fmt.Errorf("setup telemetry: %w", err)
	}
	defer func() {
		flushCtx, cancel := context.WithTimeout(context.Background(), telemetryFlushTimeout)
		defer cancel()
		if err := shutdown(flushCtx); err != nil {
			log.Printf("%s telemetry flush: %v", service, err)
		}
	}()
	log.Printf("%s starting", service)
	return run(ctx)
}
