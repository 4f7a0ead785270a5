// Package routepath stores canonical HTTP paths for web modules.
package routepath

import "strings"

const (
	Root         = "/"
	Health       = "/up"
	StaticPrefix = "/static/"
	Stylesheet   = StaticPrefix + "app.css"
)

// StaticAsset returns the URL for an embedded asset, optionally served from
// an external base such as a CDN.
func StaticAsset(baseURL string, name string) string {
	name = strings.TrimLeft(strings.TrimSpace(name), "/")
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return StaticPrefix + name
	}
	return baseURL + StaticPrefix + name
}
