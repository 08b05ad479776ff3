package shop

import (
	"context"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/templates/helpers"
	"finitefield.org/storefront/internal/storefront/templates/layout"
)

// Detail renders the product page the card links to.
func Detail(data DetailData) templ.Component {
	card := data.Card
	return helpers.Component(func(ctx context.Context) g.Node {
		return layout.Page(ctx, layout.Meta{Title: card.Name, Description: data.Summary, JSONLD: data.JSONLD},
			breadcrumbs(data.Breadcrumbs),
			h.Article(
				h.Class("shoe-detail"),
				h.Data("variant", card.Variant.String()),
				h.Div(
					h.Class("shoe-detail__media"),
					h.Img(h.Class("shoe-detail__image"), h.Alt(card.Name), h.Src(card.ImageSrc)),
					g.If(card.Tag.Label != "",
						h.Div(
							h.Class("shoe-card__tag"),
							h.Style(helpers.CSSVars("--background-color", card.Tag.AccentColor)),
							g.Text(card.Tag.Label),
						),
					),
				),
				h.Div(
					h.Class("shoe-detail__summary"),
					h.H2(h.Class("shoe-detail__name"), g.Text(card.Name)),
					h.P(
						h.Class("shoe-detail__prices"),
						g.If(card.OnSale(), h.Del(h.Class("shoe-detail__price"), g.Text(card.Price))),
						g.If(!card.OnSale(), h.Span(h.Class("shoe-detail__price"), g.Text(card.Price))),
						g.If(card.SalePrice != "", h.Span(h.Class("shoe-card__sale-price"), g.Text(card.SalePrice))),
					),
					h.P(h.Class("shoe-card__colors"), g.Text(card.ColorLabel)),
					g.If(data.DescriptionHTML != "",
						h.Div(h.Class("shoe-detail__description"), g.Raw(data.DescriptionHTML)),
					),
				),
			),
		)
	})
}
