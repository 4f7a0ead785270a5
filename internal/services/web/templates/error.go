package templates

import (
	"net/http"

	"github.com/a-h/templ"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

const (
	errorNotFoundTitleKey   = "error.not_found.title"
	errorNotFoundMessageKey = "error.not_found.message"
	errorServerTitleKey     = "error.server.title"
	errorServerMessageKey   = "error.server.message"
	errorBackHomeKey        = "error.back_home"
)

// ErrorPageKeys lists the catalog keys an error page renders.
func ErrorPageKeys() []string {
	return []string{errorNotFoundTitleKey, errorNotFoundMessageKey, errorServerTitleKey, errorServerMessageKey, errorBackHomeKey}
}

// ErrorPageTitle returns the browser title for an error page.
func ErrorPageTitle(statusCode int, loc webi18n.Localizer) string {
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		return webi18n.T(loc, errorNotFoundTitleKey)
	}
	return webi18n.T(loc, errorServerTitleKey)
}

// ErrorState renders the localized error body for statusCode. Anything other
// than 404 is presented as a server error.
func ErrorState(statusCode int, loc webi18n.Localizer) templ.Component {
	messageKey := errorServerMessageKey
	if normalizeErrorStatus(statusCode) == http.StatusNotFound {
		messageKey = errorNotFoundMessageKey
	}
	return Component(h.Section(h.ID("error-state"), h.Class("App-section error-state"),
		h.H1(g.Text(ErrorPageTitle(statusCode, loc))),
		h.P(g.Text(webi18n.T(loc, messageKey))),
		h.P(h.A(h.Href(routepath.Root), g.Text(webi18n.T(loc, errorBackHomeKey)))),
	))
}

func normalizeErrorStatus(statusCode int) int {
	if statusCode == http.StatusNotFound {
		return http.StatusNotFound
	}
	return http.StatusInternalServerError
}
