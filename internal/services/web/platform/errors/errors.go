// Package errors defines the failures the site can report to a visitor.
//
// Each failure carries a catalog key so error pages and plain-text replies
// are localized, and never the internal cause.
package errors

import (
	stderrors "errors"
	"fmt"
	"net/http"
	"strings"
)

// Kind classifies a site failure.
type Kind string

const (
	// KindNotFound is a request for a path the site does not serve.
	KindNotFound Kind = "not_found"
	// KindMethodNotAllowed is a request with a method the route rejects.
	KindMethodNotAllowed Kind = "method_not_allowed"
	// KindRender is a page that failed to render.
	KindRender Kind = "render"
)

// Catalog keys for visitor-facing error messages.
const (
	KeyNotFound         = "error.not_found.message"
	KeyMethodNotAllowed = "error.method_not_allowed"
	KeyServer           = "error.server.message"
)

// Keys lists every catalog key an error reply can render.
func Keys() []string {
	return []string{KeyNotFound, KeyMethodNotAllowed, KeyServer}
}

// Error is a classified site failure.
type Error struct {
	Kind Kind
	// Path is the requested URL path.
	Path string
	// Allow lists the methods the route accepts; set for KindMethodNotAllowed.
	Allow []string
	// Err is the internal cause. It is logged, never shown.
	Err error
}

func (e *Error) Error() string {
	switch {
	case e.Err != nil:
		return fmt.Sprintf("%s %s: %v", e.Kind, e.Path, e.Err)
	case e.Path != "":
		return fmt.Sprintf("%s %s", e.Kind, e.Path)
	default:
		return string(e.Kind)
	}
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NotFound reports that path is not served.
func NotFound(path string) error {
	return &Error{Kind: KindNotFound, Path: path}
}

// MethodNotAllowed reports that path accepts only the allow methods.
func MethodNotAllowed(path string, allow ...string) error {
	return &Error{Kind: KindMethodNotAllowed, Path: path, Allow: allow}
}

// Render reports that the page at path failed to render because of cause.
func Render(path string, cause error) error {
	return &Error{Kind: KindRender, Path: path, Err: cause}
}

func asError(err error) (*Error, bool) {
	var siteErr *Error
	if err == nil || !stderrors.As(err, &siteErr) || siteErr == nil {
		return nil, false
	}
	return siteErr, true
}

// LocalizationKey returns the catalog key describing err to a visitor.
// Unclassified errors map to the generic server message.
func LocalizationKey(err error) string {
	if err == nil {
		return ""
	}
	siteErr, ok := asError(err)
	if !ok {
		return KeyServer
	}
	switch siteErr.Kind {
	case KindNotFound:
		return KeyNotFound
	case KindMethodNotAllowed:
		return KeyMethodNotAllowed
	default:
		return KeyServer
	}
}

// HTTPStatus maps err to the response status code.
func HTTPStatus(err error) int {
	if err == nil {
		return http.StatusOK
	}
	siteErr, ok := asError(err)
	if !ok {
		return http.StatusInternalServerError
	}
	switch siteErr.Kind {
	case KindNotFound:
		return http.StatusNotFound
	case KindMethodNotAllowed:
		return http.StatusMethodNotAllowed
	default:
		return http.StatusInternalServerError
	}
}

// AllowHeader returns the Allow header value for a method-not-allowed
// failure, or "" for anything else.
func AllowHeader(err error) string {
	siteErr, ok := asError(err)
	if !ok || siteErr.Kind != KindMethodNotAllowed {
		return ""
	}
	return strings.Join(siteErr.Allow, ", ")
}
