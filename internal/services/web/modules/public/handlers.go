package public

import (
	"net/http"

	module "github.com/sabhaenabler/website/internal/services/web/module"
	apperrors "github.com/sabhaenabler/website/internal/services/web/platform/errors"
	"github.com/sabhaenabler/website/internal/services/web/platform/httpx"
	webi18n "github.com/sabhaenabler/website/internal/services/web/platform/i18n"
	"github.com/sabhaenabler/website/internal/services/web/platform/pagerender"
	"github.com/sabhaenabler/website/internal/services/web/platform/weberror"
	"github.com/sabhaenabler/website/internal/services/web/routepath"
	webtemplates "github.com/sabhaenabler/website/internal/services/web/templates"
)

const healthBody = "ok"

type handlers struct {
	deps module.Dependencies
}

func newHandlers(deps module.Dependencies) handlers {
	return handlers{deps: deps}
}

func (h handlers) handleRoot(w http.ResponseWriter, r *http.Request) {
	_, langTag := webi18n.ResolveLocalizer(w, r)
	landing := webi18n.Landing(langTag)
	err := pagerender.WritePage(w, r, pagerender.Page{
		Title:           landing.Title,
		MetaDescription: landing.MetaDescription,
		Lang:            landing.Lang,
		StylesheetURL:   h.stylesheetURL(),
		Body:            webtemplates.LandingPage(landing),
	})
	if err != nil {
		weberror.WriteModuleError(w, r, apperrors.Render(r.URL.Path, err), h.deps)
	}
}

func (h handlers) handleHealth(w http.ResponseWriter, _ *http.Request) {
	_ = httpx.WriteText(w, http.StatusOK, healthBody)
}

func (h handlers) handleNotFound(w http.ResponseWriter, r *http.Request) {
	weberror.WriteModuleError(w, r, apperrors.NotFound(r.URL.Path), h.deps)
}

func (h handlers) stylesheetURL() string {
	return routepath.StaticAsset(h.deps.AssetBaseURL, "app.css")
}
