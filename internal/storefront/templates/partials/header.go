package partials

import (
	"context"

	"github.com/a-h/templ"
	"github.com/shopspring/decimal"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/httpserver/middleware"
	"finitefield.org/storefront/internal/storefront/navigation"
	"finitefield.org/storefront/internal/storefront/templates/helpers"
)

// FreeShippingThreshold is advertised in the super header.
var FreeShippingThreshold = decimal.NewFromInt(75)

// Header renders the super header and the main navigation bar. Both visual
// rows live inside a single <header> element.
func Header() templ.Component {
	return helpers.Component(HeaderNode)
}

// HeaderNode builds the header markup for the request in ctx.
func HeaderNode(ctx context.Context) g.Node {
	section := helpers.ActiveSection(ctx)
	return h.Header(
		h.Class("site-header"),
		superHeader(ctx),
		h.Div(
			h.Class("main-header"),
			h.Div(h.Class("main-header__logo"), Logo()),
			h.Nav(
				h.Class("main-header__nav"),
				h.Aria("label", "Primary"),
				g.Map(navigation.HeaderLinks(), func(l navigation.Link) g.Node {
					return navLink(l, section)
				}),
			),
		),
	)
}

func navLink(l navigation.Link, activeKey string) g.Node {
	active := l.Key == activeKey
	return h.A(
		h.Class("main-header__link"),
		h.Href(l.Href),
		h.Data("nav", l.Key),
		g.If(active, h.Aria("current", "page")),
		g.Text(l.Label),
	)
}

func superHeader(ctx context.Context) g.Node {
	env := middleware.EnvironmentFromContext(ctx)
	return h.Div(
		h.Class("super-header"),
		h.P(
			h.Class("super-header__message"),
			g.Text("Free shipping on domestic orders over "+helpers.Price(FreeShippingThreshold)+"!"),
		),
		g.If(!middleware.IsProduction(ctx),
			h.Span(h.Class("super-header__env"), h.Data("environment", env), g.Text(env)),
		),
	)
}

// Logo links back to the storefront home.
func Logo() g.Node {
	return h.A(
		h.Class("logo"),
		h.Href("/"),
		h.Span(h.Class("logo__wordmark"), g.Text("Sole&Ankle")),
	)
}
