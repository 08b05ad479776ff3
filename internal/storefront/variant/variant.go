package variant

import (
	"time"

	"github.com/shopspring/decimal"
)

// RecencyWindow is how long after its release date a product counts as new.
const RecencyWindow = 30 * 24 * time.Hour

// Variant is the display classification of a product card.
type Variant int

const (
	Default Variant = iota
	OnSale
	NewRelease
)

// Palette values shared with the stylesheet.
const (
	ColorPrimary     = "hsl(340deg 65% 47%)"
	ColorSecondary   = "hsl(240deg 60% 63%)"
	ColorTransparent = "transparent"
)

// Tag is the visual badge attached to a variant.
type Tag struct {
	Label       string
	AccentColor string
}

// Classify selects the variant for a product. A sale price always wins over a
// recent release date.
func Classify(salePrice decimal.NullDecimal, releaseDate, now time.Time) Variant {
	if salePrice.Valid {
		return OnSale
	}
	if IsNewRelease(releaseDate, now) {
		return NewRelease
	}
	return Default
}

// IsNewRelease reports whether releaseDate falls inside the recency window
// ending at now. Release dates in the future are treated as new.
func IsNewRelease(releaseDate, now time.Time) bool {
	if releaseDate.IsZero() {
		return false
	}
	return now.Sub(releaseDate) < RecencyWindow
}

// Tag returns the badge for the variant.
func (v Variant) Tag() Tag {
	switch v {
	case OnSale:
		return Tag{Label: "Sale", AccentColor: ColorPrimary}
	case NewRelease:
		return Tag{Label: "Just released!", AccentColor: ColorSecondary}
	case Default:
		return Tag{Label: "", AccentColor: ColorTransparent}
	default:
		panic("variant: unknown variant")
	}
}

// String returns the kebab-case name used in markup.
func (v Variant) String() string {
	switch v {
	case OnSale:
		return "on-sale"
	case NewRelease:
		return "new-release"
	case Default:
		return "default"
	default:
		return "unknown"
	}
}
