// Package templates renders the site's HTML. Element trees are built with
// gomponents and exposed to handlers as templ components.
package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to the templ rendering contract.
func Component(node g.Node) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		if node == nil {
			return nil
		}
		return node.Render(w)
	})
}

// embed renders a templ component in place inside a gomponents tree.
func embed(ctx context.Context, component templ.Component) g.Node {
	return g.NodeFunc(func(w io.Writer) error {
		if component == nil {
			return nil
		}
		return component.Render(ctx, w)
	})
}
