package catalog

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

var testNow = time.Date(2026, time.October, 18, 9, 0, 0, 0, time.UTC)

func fixedNow() time.Time { return testNow }

func TestDefaultSeedLoads(t *testing.T) {
	t.Parallel()

	products, err := DefaultSeed()
	require.NoError(t, err)
	require.NotEmpty(t, products)

	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.Slug)
		require.False(t, seen[p.Slug], "slug %s must be unique", p.Slug)
		seen[p.Slug] = true
		require.False(t, p.ReleaseDate.IsZero(), "release date required for %s", p.Slug)
	}
}

func TestLoadSeedParsesFields(t *testing.T) {
	t.Parallel()

	products, err := LoadSeed(strings.NewReader(`
products:
  - slug: void
    name: Void
    image_src: /img/void.jpg
    price: "170"
    sale_price: "120.5"
    release_date: "2020-01-01"
    num_of_colors: 4
    category: Men
`))
	require.NoError(t, err)
	require.Len(t, products, 1)

	p := products[0]
	require.Equal(t, "void", p.Slug)
	require.True(t, p.Price.Equal(decimal.RequireFromString("170")))
	require.True(t, p.SalePrice.Valid)
	require.True(t, p.SalePrice.Decimal.Equal(decimal.RequireFromString("120.5")))
	require.Equal(t, time.Date(2020, time.January, 1, 0, 0, 0, 0, time.UTC), p.ReleaseDate)
	require.Equal(t, CategoryMen, p.Category)
	require.Equal(t, "/shoe/void", p.Href())
}

func TestLoadSeedRejectsInvalidRecords(t *testing.T) {
	t.Parallel()

	tests := map[string]string{
		"malformed release date": `
products:
  - slug: a
    price: "10"
    release_date: "yesterday"
`,
		"negative price": `
products:
  - slug: a
    price: "-1"
    release_date: "2020-01-01"
`,
		"negative colours": `
products:
  - slug: a
    price: "1"
    release_date: "2020-01-01"
    num_of_colors: -2
`,
		"duplicate slug": `
products:
  - slug: a
    price: "1"
    release_date: "2020-01-01"
  - slug: a
    price: "2"
    release_date: "2020-01-01"
`,
		"unknown category": `
products:
  - slug: a
    price: "1"
    release_date: "2020-01-01"
    category: pets
`,
	}

	for name, body := range tests {
		body := body
		t.Run(name, func(t *testing.T) {
			t.Parallel()
			_, err := LoadSeed(strings.NewReader(body))
			require.Error(t, err)
			require.True(t, errors.Is(err, ErrInvalidProduct), "expected ErrInvalidProduct, got %v", err)
		})
	}
}

func TestStaticServiceListProducts(t *testing.T) {
	t.Parallel()

	products := []Product{
		{Slug: "old", Price: decimal.RequireFromString("90"), ReleaseDate: testNow.AddDate(-1, 0, 0), Category: CategoryMen},
		{Slug: "fresh", Price: decimal.RequireFromString("120"), ReleaseDate: testNow.AddDate(0, 0, -3), Category: CategoryWomen},
		{
			Slug:        "discounted",
			Price:       decimal.RequireFromString("100"),
			SalePrice:   decimal.NewNullDecimal(decimal.RequireFromString("75")),
			ReleaseDate: testNow.AddDate(0, 0, -1),
			Category:    CategoryMen,
		},
	}
	svc := NewStaticService(products, fixedNow)
	ctx := context.Background()

	all, err := svc.ListProducts(ctx, Query{})
	require.NoError(t, err)
	require.Equal(t, []string{"discounted", "fresh", "old"}, slugs(all))

	byPrice, err := svc.ListProducts(ctx, Query{Sort: SortPrice})
	require.NoError(t, err)
	require.Equal(t, []string{"discounted", "old", "fresh"}, slugs(byPrice))

	sale, err := svc.ListProducts(ctx, Query{Section: SectionSale})
	require.NoError(t, err)
	require.Equal(t, []string{"discounted"}, slugs(sale))

	fresh, err := svc.ListProducts(ctx, Query{Section: SectionNew})
	require.NoError(t, err)
	require.Equal(t, []string{"fresh"}, slugs(fresh), "on-sale products are not listed as new releases")

	men, err := svc.ListProducts(ctx, Query{Category: CategoryMen})
	require.NoError(t, err)
	require.Equal(t, []string{"discounted", "old"}, slugs(men))
}

func TestStaticServiceProduct(t *testing.T) {
	t.Parallel()

	svc := NewStaticService([]Product{{Slug: "void", Name: "Void"}}, fixedNow)

	p, err := svc.Product(context.Background(), "void")
	require.NoError(t, err)
	require.Equal(t, "Void", p.Name)

	_, err = svc.Product(context.Background(), "missing")
	require.ErrorIs(t, err, ErrProductNotFound)
}

func TestParseSort(t *testing.T) {
	t.Parallel()

	require.Equal(t, SortPrice, ParseSort(" Price "))
	require.Equal(t, SortNewest, ParseSort("newest"))
	require.Equal(t, SortNewest, ParseSort("bogus"))
	require.Equal(t, SortNewest, ParseSort(""))
}

func slugs(products []Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.Slug)
	}
	return out
}
