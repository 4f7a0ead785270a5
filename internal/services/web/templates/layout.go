package templates

import (
	"context"
	"io"
	"strings"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// LayoutOptions configures the document shell around a page body.
type LayoutOptions struct {
	Title           string
	MetaDescription string
	Lang            string
	StylesheetURL   string
}

// Layout wraps the children component carried on the render context in a
// full HTML document.
func Layout(opts LayoutOptions) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		children := templ.GetChildren(ctx)
		return document(opts, embed(templ.ClearChildren(ctx), children)).Render(w)
	})
}

func document(opts LayoutOptions, body g.Node) g.Node {
	lang := strings.TrimSpace(opts.Lang)
	if lang == "" {
		lang = "en-US"
	}
	return h.Doctype(
		h.HTML(h.Lang(lang),
			h.Head(
				h.Meta(h.Charset("utf-8")),
				h.Meta(h.Name("viewport"), h.Content("width=device-width, initial-scale=1")),
				h.TitleEl(g.Text(opts.Title)),
				g.If(strings.TrimSpace(opts.MetaDescription) != "",
					h.Meta(h.Name("description"), h.Content(opts.MetaDescription)),
				),
				g.If(strings.TrimSpace(opts.StylesheetURL) != "",
					h.Link(h.Rel("stylesheet"), h.Href(opts.StylesheetURL)),
				),
			),
			h.Body(
				h.Main(h.ID("main"), body),
			),
		),
	)
}
