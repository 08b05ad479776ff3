package partials

import (
	"strconv"

	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/templates/helpers"
)

// Spacer renders a fixed gap of size pixels in both axes.
func Spacer(size int) g.Node {
	px := strconv.Itoa(size) + "px"
	return h.Div(
		h.Class("spacer"),
		h.Aria("hidden", "true"),
		h.Style(helpers.CSSVars("--size", px)),
	)
}
