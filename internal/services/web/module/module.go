// Package module defines the feature contract used by web composition.
package module

import "net/http"

// Dependencies carries the shared inputs modules may need when mounting.
type Dependencies struct {
	// AssetBaseURL prefixes static asset URLs; empty means same origin.
	AssetBaseURL string
}

// Mount describes a module route mount.
type Mount struct {
	Prefix  string
	Handler http.Handler
}

// Module declares the minimum contract required by web composition.
type Module interface {
	ID() string
	Mount() (Mount, error)
}
