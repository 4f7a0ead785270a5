// Package weberror renders shared error responses for web modules.
package weberror

import (
	"log"
	"net/http"
	"strings"

	module "github.com/sabhaenabler/website/internal/services/web/module"
	apperrors "github.com/sabhaenabler/website/internal/services/web/platform/errors"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	"github.com/sabhaenabler/website/internal/services/web/platform/pagerender"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
	webtemplates "github.com/sabhaenabler/website/internal/services/web/templates"
)

// ShouldRenderAppError reports whether status should use the error-page UX.
func ShouldRenderAppError(statusCode int) bool {
	return statusCode == http.StatusNotFound || statusCode >= http.StatusInternalServerError
}

// PublicMessage resolves a user-safe localized error message.
func PublicMessage(loc webi18n.Localizer, err error) string {
	if err == nil {
		return ""
	}
	if loc != nil {
		if key := apperrors.LocalizationKey(err); key != "" {
			if localized := strings.TrimSpace(loc.Sprintf(key)); localized != "" && localized != key {
				return localized
			}
		}
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode < http.StatusBadRequest {
		statusCode = http.StatusInternalServerError
	}
	return http.StatusText(statusCode)
}

// WriteAppError writes a localized error page for full-page and HTMX requests.
func WriteAppError(w http.ResponseWriter, r *http.Request, statusCode int, deps module.Dependencies) {
	if w == nil {
		return
	}
	if !ShouldRenderAppError(statusCode) {
		statusCode = http.StatusInternalServerError
	}

	loc, lang := webi18n.ResolveLocalizer(w, r)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:         webtemplates.ErrorPageTitle(statusCode, loc),
		Lang:          lang.String(),
		StylesheetURL: routepath.StaticAsset(deps.AssetBaseURL, "app.css"),
		StatusCode:    statusCode,
		Body:          webtemplates.ErrorState(statusCode, loc),
	})
	if err != nil {
		log.Printf("render error page: status=%d err=%v", statusCode, err)
		http.Error(w, http.StatusText(statusCode), statusCode)
	}
}

// WriteModuleError writes the response for a failed request. Not-found and
// server failures get the error page; anything else gets localized plain
// text. The internal cause is logged and never written.
func WriteModuleError(w http.ResponseWriter, r *http.Request, err error, deps module.Dependencies) {
	if w == nil {
		return
	}
	statusCode := apperrors.HTTPStatus(err)
	if statusCode >= http.StatusInternalServerError {
		log.Printf("request failed: status=%d err=%v", statusCode, err)
	}
	if ShouldRenderAppError(statusCode) {
		WriteAppError(w, r, statusCode, deps)
		return
	}
	if allow := apperrors.AllowHeader(err); allow != "" {
		w.Header().Set("Allow", allow)
	}
	loc, _ := webi18n.ResolveLocalizer(w, r)
	http.Error(w, PublicMessage(loc, err), statusCode)
}

// MethodNotAllowed returns a handler that rejects every request with 405
// and the given Allow methods.
func MethodNotAllowed(deps module.Dependencies, allow ...string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		WriteModuleError(w, r, apperrors.MethodNotAllowed(r.URL.Path, allow...), deps)
	}
}
