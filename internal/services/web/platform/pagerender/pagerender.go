// Package pagerender centralizes page rendering for full-page and HTMX requests.
package pagerender

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strings"

	"github.com/a-h/templ"
	"github.com/sabhaenabler/website/internal/services/web/platform/httpx"
	webtemplates "github.com/sabhaenabler/website/internal/services/web/templates"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
)

const tracerName = "github.com/sabhaenabler/website/internal/services/web/platform/pagerender"

// Page describes one HTML response.
type Page struct {
	Title           string
	MetaDescription string
	Lang            string
	StylesheetURL   string
	StatusCode      int
	Body            templ.Component
}

type emptyComponent struct{}

func (emptyComponent) Render(context.Context, io.Writer) error {
	return nil
}

// WritePage renders page into a buffer and writes it only when rendering
// succeeds, so a failed render never leaves a partial document on the wire.
// HTMX requests receive the body fragment without the document shell.
func WritePage(w http.ResponseWriter, r *http.Request, page Page) error {
	if w == nil {
		return nil
	}
	statusCode := page.StatusCode
	if statusCode <= 0 {
		statusCode = http.StatusOK
	}
	body := page.Body
	if body == nil {
		body = emptyComponent{}
	}

	fragment := httpx.IsHTMXRequest(r)
	ctx, span := otel.Tracer(tracerName).Start(httpx.RequestContext(r), "pagerender.WritePage")
	defer span.End()
	span.SetAttributes(
		attribute.Bool("page.fragment", fragment),
		attribute.String("page.lang", strings.TrimSpace(page.Lang)),
	)

	var buf bytes.Buffer
	var err error
	if fragment {
		err = body.Render(ctx, &buf)
	} else {
		layout := webtemplates.Layout(webtemplates.LayoutOptions{
			Title:           page.Title,
			MetaDescription: page.MetaDescription,
			Lang:            page.Lang,
			StylesheetURL:   page.StylesheetURL,
		})
		err = layout.Render(templ.WithChildren(ctx, body), &buf)
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "render page")
		return err
	}

	if lang := strings.TrimSpace(page.Lang); lang != "" {
		w.Header().Set("Content-Language", lang)
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(statusCode)
	_, _ = w.Write(buf.Bytes())
	return nil
}
