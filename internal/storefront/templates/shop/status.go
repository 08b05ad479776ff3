package shop

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/templates/helpers"
	"finitefield.org/storefront/internal/storefront/templates/layout"
)

// StatusPage renders an error page that still carries the site header.
func StatusPage(title, message string) templ.Component {
	return helpers.Component(func(ctx context.Context) g.Node {
		return layout.Page(ctx, layout.Meta{Title: title},
			h.Section(
				h.Class("status-page"),
				h.H2(h.Class("status-page__title"), g.Text(title)),
				h.P(h.Class("status-page__message"), g.Text(message)),
				h.A(h.Class("status-page__home"), h.Href("/"), g.Text("Back to all shoes")),
			),
		)
	})
}
