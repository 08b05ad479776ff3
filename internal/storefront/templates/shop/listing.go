package shop

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/navigation"
	"finitefield.org/storefront/internal/storefront/templates/helpers"
	"finitefield.org/storefront/internal/storefront/templates/layout"
	"finitefield.org/storefront/internal/storefront/templates/partials"
)

// Listing renders a full page with a grid of product cards.
func Listing(data ListingData) templ.Component {
	return helpers.Component(func(ctx context.Context) g.Node {
		return layout.Page(ctx, layout.Meta{Title: data.Title},
			breadcrumbs(data.Breadcrumbs),
			h.Div(
				h.Class("shoe-index__header"),
				h.H2(h.Class("shoe-index__title"), g.Text(data.Heading)),
				sortNav(data.SortOptions()),
			),
			Grid(data.Cards),
		)
	})
}

// Grid renders product cards, or an empty-state message when there are none.
func Grid(cards []partials.ProductCardData) g.Node {
	if len(cards) == 0 {
		return h.P(h.Class("shoe-grid__empty"), g.Text("No shoes here yet. Check back soon."))
	}
	return h.Div(
		h.Class("shoe-grid"),
		g.Map(cards, func(c partials.ProductCardData) g.Node {
			return h.Div(h.Class("shoe-grid__item"), partials.ProductCardNode(c))
		}),
	)
}

func sortNav(options []SortOption) g.Node {
	return h.Nav(
		h.Class("shoe-index__sort"),
		h.Aria("label", "Sort"),
		g.Map(options, func(o SortOption) g.Node {
			return h.A(
				h.Href(o.Href),
				g.If(o.Active, h.Aria("current", "true")),
				g.Text(o.Label),
			)
		}),
	)
}

func breadcrumbs(crumbs []navigation.Crumb) g.Node {
	if len(crumbs) == 0 {
		return nil
	}
	return h.Nav(
		h.Class("breadcrumbs"),
		h.Aria("label", "Breadcrumb"),
		h.Ol(g.Map(crumbs, func(c navigation.Crumb) g.Node {
			if c.Active || c.Href == "" {
				return h.Li(h.Aria("current", "page"), g.Text(c.Label))
			}
			return h.Li(h.A(h.Href(c.Href), g.Text(c.Label)))
		})),
	)
}
