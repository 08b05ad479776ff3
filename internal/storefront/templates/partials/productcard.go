package partials

import (
	"context"
	"time"

	"github.com/a-h/templ"
	g "maragu.dev/gomponents"
	h "maragu.dev/gomponents/html"

	"finitefield.org/storefront/internal/storefront/catalog"
	"finitefield.org/storefront/internal/storefront/templates/helpers"
	"finitefield.org/storefront/internal/storefront/variant"
)

// ProductCardData is the view model for a single product card.
type ProductCardData struct {
	Href       string
	Name       string
	ImageSrc   string
	Variant    variant.Variant
	Tag        variant.Tag
	Price      string
	SalePrice  string
	ColorLabel string
}

// OnSale reports whether the original price should be struck through.
func (d ProductCardData) OnSale() bool {
	return d.Variant == variant.OnSale
}

// NewProductCardData classifies p relative to now and formats its prices.
func NewProductCardData(p catalog.Product, now time.Time) ProductCardData {
	v := p.Variant(now)
	data := ProductCardData{
		Href:       p.Href(),
		Name:       p.Name,
		ImageSrc:   p.ImageSrc,
		Variant:    v,
		Tag:        v.Tag(),
		Price:      helpers.Price(p.Price),
		ColorLabel: helpers.Pluralize("Color", p.NumOfColors),
	}
	if p.SalePrice.Valid {
		data.SalePrice = helpers.Price(p.SalePrice.Decimal)
	}
	return data
}

// ProductCard renders a link-wrapped card for the product.
func ProductCard(data ProductCardData) templ.Component {
	return helpers.Component(func(context.Context) g.Node {
		return ProductCardNode(data)
	})
}

// ProductCardNode builds the card markup.
func ProductCardNode(data ProductCardData) g.Node {
	return h.A(
		h.Class("shoe-card"),
		h.Href(data.Href),
		h.Data("variant", data.Variant.String()),
		h.Article(
			h.Class("shoe-card__wrapper"),
			h.Div(
				h.Class("shoe-card__image-wrapper"),
				h.Img(h.Class("shoe-card__image"), h.Alt(""), h.Src(data.ImageSrc), g.Attr("loading", "lazy")),
				g.If(data.Tag.Label != "", saleTag(data.Tag)),
			),
			Spacer(14),
			h.Div(
				h.Class("shoe-card__row"),
				h.H3(h.Class("shoe-card__name"), g.Text(data.Name)),
				h.Span(
					h.Class("shoe-card__price"),
					h.Style(priceStyle(data.OnSale())),
					g.Text(data.Price),
				),
			),
			Spacer(6),
			h.Div(
				h.Class("shoe-card__row"),
				h.P(h.Class("shoe-card__colors"), g.Text(data.ColorLabel)),
				g.If(data.SalePrice != "",
					h.Span(h.Class("shoe-card__sale-price"), g.Text(data.SalePrice)),
				),
			),
		),
	)
}

func saleTag(tag variant.Tag) g.Node {
	return h.Div(
		h.Class("shoe-card__tag"),
		h.Style(helpers.CSSVars("--background-color", tag.AccentColor)),
		g.Text(tag.Label),
	)
}

func priceStyle(onSale bool) string {
	if onSale {
		return helpers.CSSVars("--color", gray700, "--text-decoration", "line-through")
	}
	return helpers.CSSVars("--color", gray900, "--text-decoration", "initial")
}
