package shop

import (
	"net/url"
	"time"

	"finitefield.org/storefront/internal/storefront/catalog"
	"finitefield.org/storefront/internal/storefront/navigation"
	"finitefield.org/storefront/internal/storefront/templates/partials"
)

// ListingData is the view model for product grid pages.
type ListingData struct {
	Title       string
	Heading     string
	Path        string
	Sort        catalog.Sort
	Cards       []partials.ProductCardData
	Breadcrumbs []navigation.Crumb
}

// SortOption is a link that re-orders the current listing.
type SortOption struct {
	Label  string
	Href   string
	Active bool
}

// BuildListing prepares cards for products. sectionKey names the header link
// the page belongs to; empty means the home page.
func BuildListing(sectionKey, path string, sort catalog.Sort, products []catalog.Product, now time.Time) ListingData {
	heading := "All Shoes"
	if l, ok := navigation.Lookup(sectionKey); ok {
		heading = l.PlainLabel()
	}
	cards := make([]partials.ProductCardData, 0, len(products))
	for _, p := range products {
		cards = append(cards, partials.NewProductCardData(p, now))
	}
	data := ListingData{
		Title:   heading,
		Heading: heading,
		Path:    path,
		Sort:    sort,
		Cards:   cards,
	}
	if sectionKey != "" {
		data.Breadcrumbs = navigation.Breadcrumbs(sectionKey, "")
	}
	return data
}

// SortOptions returns the available orderings for the listing.
func (d ListingData) SortOptions() []SortOption {
	options := []struct {
		label string
		sort  catalog.Sort
	}{
		{label: "Newest Releases", sort: catalog.SortNewest},
		{label: "Price", sort: catalog.SortPrice},
	}
	out := make([]SortOption, 0, len(options))
	for _, o := range options {
		q := url.Values{}
		q.Set("sort", string(o.sort))
		out = append(out, SortOption{
			Label:  o.label,
			Href:   d.Path + "?" + q.Encode(),
			Active: d.Sort == o.sort,
		})
	}
	return out
}

// DetailData is the view model for the product detail page.
type DetailData struct {
	Card            partials.ProductCardData
	Summary         string
	DescriptionHTML string
	Breadcrumbs     []navigation.Crumb
	JSONLD          []string
}
