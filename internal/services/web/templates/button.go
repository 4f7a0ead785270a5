package templates

import (
	"strings"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"
)

// ButtonVariant selects the visual treatment of a Button.
type ButtonVariant string

const (
	ButtonPrimary   ButtonVariant = "primary"
	ButtonSecondary ButtonVariant = "secondary"
)

func (v ButtonVariant) normalized() ButtonVariant {
	switch ButtonVariant(strings.TrimSpace(string(v))) {
	case ButtonSecondary:
		return ButtonSecondary
	default:
		return ButtonPrimary
	}
}

// Button renders a presentational button. It has no action attached: no
// form, no link target, no script hook.
func Button(variant ButtonVariant, label string) g.Node {
	return h.Button(
		h.Type("button"),
		g.Attr("data-slot", "button"),
		h.Class("button "+string(variant.normalized())),
		g.Text(label),
	)
}
