package catalog

import (
	"bytes"
	"context"
	_ "embed"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

//go:embed data/shoes.yaml
var defaultSeed []byte

var releaseDateLayouts = []string{
	time.RFC3339,
	"2006-01-02",
	"2006/01/02",
}

// StaticService serves an in-memory catalog, typically loaded from a YAML seed.
type StaticService struct {
	products []Product
	now      func() time.Time
}

// NewStaticService returns a service over the provided products. now defaults
// to time.Now and is used for the sale/new sections.
func NewStaticService(products []Product, now func() time.Time) *StaticService {
	if now == nil {
		now = time.Now
	}
	cloned := make([]Product, len(products))
	copy(cloned, products)
	return &StaticService{products: cloned, now: now}
}

// ListProducts filters and sorts the in-memory catalog.
func (s *StaticService) ListProducts(_ context.Context, query Query) ([]Product, error) {
	return applyQuery(s.products, query, s.now()), nil
}

// Product looks up a product by slug.
func (s *StaticService) Product(_ context.Context, slug string) (Product, error) {
	return findProduct(s.products, slug)
}

type seedFile struct {
	Products []seedProduct `yaml:"products"`
}

type seedProduct struct {
	Slug        string `yaml:"slug"`
	Name        string `yaml:"name"`
	ImageSrc    string `yaml:"image_src"`
	Price       string `yaml:"price"`
	SalePrice   string `yaml:"sale_price"`
	ReleaseDate string `yaml:"release_date"`
	NumOfColors int    `yaml:"num_of_colors"`
	Category    string `yaml:"category"`
	Description string `yaml:"description"`
}

// DefaultSeed parses the catalog bundled with the binary.
func DefaultSeed() ([]Product, error) {
	return LoadSeed(bytes.NewReader(defaultSeed))
}

// LoadSeedFile parses a YAML seed file from disk.
func LoadSeedFile(path string) ([]Product, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("catalog: open seed %s: %w", path, err)
	}
	defer f.Close()
	return LoadSeed(f)
}

// LoadSeed parses a YAML catalog. Records with malformed prices or release
// dates fail the whole load with ErrInvalidProduct.
func LoadSeed(r io.Reader) ([]Product, error) {
	var file seedFile
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil && err != io.EOF {
		return nil, fmt.Errorf("catalog: decode seed: %w", err)
	}

	products := make([]Product, 0, len(file.Products))
	seen := make(map[string]struct{}, len(file.Products))
	for i, raw := range file.Products {
		p, err := raw.toProduct()
		if err != nil {
			return nil, fmt.Errorf("catalog: product #%d (%q): %w", i, raw.Slug, err)
		}
		if _, dup := seen[p.Slug]; dup {
			return nil, fmt.Errorf("catalog: duplicate slug %q: %w", p.Slug, ErrInvalidProduct)
		}
		seen[p.Slug] = struct{}{}
		products = append(products, p)
	}
	return products, nil
}

func (s seedProduct) toProduct() (Product, error) {
	slug := strings.TrimSpace(s.Slug)
	if slug == "" {
		return Product{}, fmt.Errorf("%w: missing slug", ErrInvalidProduct)
	}

	price, err := parseAmount(s.Price)
	if err != nil {
		return Product{}, fmt.Errorf("%w: price: %v", ErrInvalidProduct, err)
	}

	var sale decimal.NullDecimal
	if strings.TrimSpace(s.SalePrice) != "" {
		amount, err := parseAmount(s.SalePrice)
		if err != nil {
			return Product{}, fmt.Errorf("%w: sale price: %v", ErrInvalidProduct, err)
		}
		sale = decimal.NewNullDecimal(amount)
	}

	released, err := ParseReleaseDate(s.ReleaseDate)
	if err != nil {
		return Product{}, fmt.Errorf("%w: %v", ErrInvalidProduct, err)
	}

	if s.NumOfColors < 0 {
		return Product{}, fmt.Errorf("%w: negative colour count %d", ErrInvalidProduct, s.NumOfColors)
	}

	category := Category(strings.ToLower(strings.TrimSpace(s.Category)))
	if !category.Valid() {
		return Product{}, fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, s.Category)
	}

	return Product{
		Slug:        slug,
		Name:        strings.TrimSpace(s.Name),
		ImageSrc:    strings.TrimSpace(s.ImageSrc),
		Price:       price,
		SalePrice:   sale,
		ReleaseDate: released,
		NumOfColors: s.NumOfColors,
		Category:    category,
		Description: s.Description,
	}, nil
}

func parseAmount(raw string) (decimal.Decimal, error) {
	amount, err := decimal.NewFromString(strings.TrimSpace(raw))
	if err != nil {
		return decimal.Decimal{}, err
	}
	if amount.IsNegative() {
		return decimal.Decimal{}, fmt.Errorf("negative amount %s", amount)
	}
	return amount, nil
}

// ParseReleaseDate accepts RFC3339 timestamps and plain calendar dates.
func ParseReleaseDate(raw string) (time.Time, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return time.Time{}, fmt.Errorf("missing release date")
	}
	for _, layout := range releaseDateLayouts {
		if t, err := time.Parse(layout, v); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unparseable release date %q", raw)
}
