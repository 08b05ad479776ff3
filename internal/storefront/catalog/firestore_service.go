package catalog

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

// FirestoreConfig tunes the Firestore-backed catalog.
type FirestoreConfig struct {
	Collection string
	FetchLimit int
	CacheTTL   time.Duration
	Now        func() time.Time
	Logger     *zap.Logger
}

// FirestoreService reads products from a Firestore collection keyed by slug.
type FirestoreService struct {
	client     *firestore.Client
	collection string
	fetchLimit int
	cacheTTL   time.Duration
	now        func() time.Time
	logger     *zap.Logger

	mu      sync.RWMutex
	cache   productCache
	fetchMu sync.Mutex
}

type productCache struct {
	products []Product
	expires  time.Time
}

func (c productCache) valid(now time.Time) bool {
	return c.products != nil && now.Before(c.expires)
}

type productDocument struct {
	Name        string    `firestore:"name"`
	ImageSrc    string    `firestore:"imageSrc"`
	Price       float64   `firestore:"price"`
	SalePrice   *float64  `firestore:"salePrice"`
	ReleaseDate time.Time `firestore:"releaseDate"`
	NumOfColors int       `firestore:"numOfColors"`
	Category    string    `firestore:"category"`
	Description string    `firestore:"description"`
}

// NewFirestoreService constructs a Firestore-backed catalog.
func NewFirestoreService(client *firestore.Client, cfg FirestoreConfig) *FirestoreService {
	if client == nil {
		panic("catalog: firestore client is required")
	}
	if cfg.Collection == "" {
		cfg.Collection = "products"
	}
	if cfg.FetchLimit <= 0 {
		cfg.FetchLimit = 500
	}
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 30 * time.Second
	}
	if cfg.Now == nil {
		cfg.Now = time.Now
	}
	if cfg.Logger == nil {
		cfg.Logger = zap.NewNop()
	}
	return &FirestoreService{
		client:     client,
		collection: cfg.Collection,
		fetchLimit: cfg.FetchLimit,
		cacheTTL:   cfg.CacheTTL,
		now:        cfg.Now,
		logger:     cfg.Logger,
	}
}

// ListProducts filters the cached collection snapshot.
func (s *FirestoreService) ListProducts(ctx context.Context, query Query) ([]Product, error) {
	products, err := s.loadProducts(ctx)
	if err != nil {
		return nil, err
	}
	return applyQuery(products, query, s.now()), nil
}

// Product fetches a single document by slug.
func (s *FirestoreService) Product(ctx context.Context, slug string) (Product, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" || strings.Contains(slug, "/") {
		return Product{}, ErrProductNotFound
	}
	snap, err := s.client.Collection(s.collection).Doc(slug).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return Product{}, ErrProductNotFound
		}
		return Product{}, fmt.Errorf("catalog: fetch product %s: %w", slug, err)
	}
	return decodeProduct(snap)
}

func (s *FirestoreService) loadProducts(ctx context.Context) ([]Product, error) {
	s.mu.RLock()
	if s.cache.valid(s.now()) {
		products := s.cache.products
		s.mu.RUnlock()
		return products, nil
	}
	s.mu.RUnlock()

	s.fetchMu.Lock()
	defer s.fetchMu.Unlock()

	s.mu.RLock()
	if s.cache.valid(s.now()) {
		products := s.cache.products
		s.mu.RUnlock()
		return products, nil
	}
	s.mu.RUnlock()

	products, err := s.fetchProducts(ctx)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.cache = productCache{products: products, expires: s.now().Add(s.cacheTTL)}
	s.mu.Unlock()
	return products, nil
}

func (s *FirestoreService) fetchProducts(ctx context.Context) ([]Product, error) {
	iter := s.client.Collection(s.collection).
		OrderBy("releaseDate", firestore.Desc).
		Limit(s.fetchLimit).
		Documents(ctx)
	defer iter.Stop()

	products := make([]Product, 0)
	for {
		snap, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("catalog: load products: %w", err)
		}
		p, err := decodeProduct(snap)
		if err != nil {
			s.logger.Warn("catalog: skip product document", zap.String("path", snap.Ref.Path), zap.Error(err))
			continue
		}
		products = append(products, p)
	}
	return products, nil
}

func decodeProduct(snap *firestore.DocumentSnapshot) (Product, error) {
	var doc productDocument
	if err := snap.DataTo(&doc); err != nil {
		return Product{}, fmt.Errorf("catalog: decode %s: %w", snap.Ref.ID, err)
	}
	return doc.toProduct(snap.Ref.ID)
}

func (d productDocument) toProduct(slug string) (Product, error) {
	if d.Price < 0 {
		return Product{}, fmt.Errorf("%w: negative price", ErrInvalidProduct)
	}
	if d.NumOfColors < 0 {
		return Product{}, fmt.Errorf("%w: negative colour count %d", ErrInvalidProduct, d.NumOfColors)
	}
	category := Category(strings.ToLower(strings.TrimSpace(d.Category)))
	if !category.Valid() {
		return Product{}, fmt.Errorf("%w: unknown category %q", ErrInvalidProduct, d.Category)
	}

	var sale decimal.NullDecimal
	if d.SalePrice != nil {
		if *d.SalePrice < 0 {
			return Product{}, fmt.Errorf("%w: negative sale price", ErrInvalidProduct)
		}
		sale = decimal.NewNullDecimal(decimal.NewFromFloat(*d.SalePrice))
	}

	return Product{
		Slug:        slug,
		Name:        strings.TrimSpace(d.Name),
		ImageSrc:    strings.TrimSpace(d.ImageSrc),
		Price:       decimal.NewFromFloat(d.Price),
		SalePrice:   sale,
		ReleaseDate: d.ReleaseDate,
		NumOfColors: d.NumOfColors,
		Category:    category,
		Description: d.Description,
	}, nil
}
