package catalog

import (
	"context"
	"errors"
	"sort"
	"strings"
	"time"

	"finitefield.org/storefront/internal/storefront/variant"
)

// Service exposes catalog data to the storefront pages.
type Service interface {
	// ListProducts returns products matching the query, sorted per query.Sort.
	ListProducts(ctx context.Context, query Query) ([]Product, error)
	// Product returns a single product by slug.
	Product(ctx context.Context, slug string) (Product, error)
}

var (
	// ErrProductNotFound indicates the requested product does not exist.
	ErrProductNotFound = errors.New("product not found")
	// ErrInvalidProduct indicates a catalog record could not be accepted.
	ErrInvalidProduct = errors.New("invalid product")
)

// Section narrows a listing by display variant.
type Section string

const (
	SectionAll  Section = ""
	SectionSale Section = "sale"
	SectionNew  Section = "new"
)

// Sort controls listing order.
type Sort string

const (
	SortNewest Sort = "newest"
	SortPrice  Sort = "price"
)

// ParseSort maps a query string value to a Sort, defaulting to SortNewest.
func ParseSort(raw string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(raw))) {
	case SortPrice:
		return SortPrice
	default:
		return SortNewest
	}
}

// Query captures listing filters.
type Query struct {
	Category Category
	Section  Section
	Sort     Sort
}

func applyQuery(products []Product, query Query, now time.Time) []Product {
	out := make([]Product, 0, len(products))
	for _, p := range products {
		if query.Category != "" && p.Category != query.Category {
			continue
		}
		switch query.Section {
		case SectionSale:
			if p.Variant(now) != variant.OnSale {
				continue
			}
		case SectionNew:
			if p.Variant(now) != variant.NewRelease {
				continue
			}
		}
		out = append(out, p)
	}

	switch query.Sort {
	case SortPrice:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].EffectivePrice().LessThan(out[j].EffectivePrice())
		})
	default:
		sort.SliceStable(out, func(i, j int) bool {
			return out[i].ReleaseDate.After(out[j].ReleaseDate)
		})
	}
	return out
}

func findProduct(products []Product, slug string) (Product, error) {
	slug = strings.TrimSpace(slug)
	for _, p := range products {
		if p.Slug == slug {
			return p, nil
		}
	}
	return Product{}, ErrProductNotFound
}
