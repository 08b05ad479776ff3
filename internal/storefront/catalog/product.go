package catalog

import (
	"net/url"
	"time"

	"github.com/shopspring/decimal"

	"finitefield.org/storefront/internal/storefront/variant"
)

// Category groups products under the audience links in the header.
type Category string

const (
	CategoryMen   Category = "men"
	CategoryWomen Category = "women"
	CategoryKids  Category = "kids"
)

// Valid reports whether c is a known category. The empty category is valid
// and means "uncategorised".
func (c Category) Valid() bool {
	switch c {
	case "", CategoryMen, CategoryWomen, CategoryKids:
		return true
	default:
		return false
	}
}

// Product is a catalog entry rendered by the product card.
type Product struct {
	Slug        string
	Name        string
	ImageSrc    string
	Price       decimal.Decimal
	SalePrice   decimal.NullDecimal
	ReleaseDate time.Time
	NumOfColors int
	Category    Category
	Description string
}

// Href returns the detail page path for the product.
func (p Product) Href() string {
	return "/shoe/" + url.PathEscape(p.Slug)
}

// Variant classifies the product relative to now.
func (p Product) Variant(now time.Time) variant.Variant {
	return variant.Classify(p.SalePrice, p.ReleaseDate, now)
}

// EffectivePrice is the amount a shopper pays today.
func (p Product) EffectivePrice() decimal.Decimal {
	if p.SalePrice.Valid {
		return p.SalePrice.Decimal
	}
	return p.Price
}
