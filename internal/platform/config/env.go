// Package config reads process settings from the environment and maps
// startup failures to exit codes.
//
// Every variable carries the SABHAENABLER_ prefix. Struct tags name the
// variable without it: `env:"WEB_HTTP_ADDR"` reads SABHAENABLER_WEB_HTTP_ADDR.
package config

import (
	"errors"
	"fmt"

	"github.com/caarlos0/env/v11"
)

// EnvPrefix is prepended to every env tag.
const EnvPrefix = "SABHAENABLER_"

// ParseEnv fills target, a struct pointer, from prefixed environment
// variables. Unset or empty variables take their envDefault.
func ParseEnv(target any) error {
	if target == nil {
		return errors.New("config target is required")
	}
	if err := env.ParseWithOptions(target, env.Options{Prefix: EnvPrefix}); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}
