package testutil

import (
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"finitefield.org/storefront/internal/storefront/catalog"
	"finitefield.org/storefront/internal/storefront/httpserver"
)

// Now is the fixed clock used by test servers unless overridden.
var Now = time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)

// ServerOption customises the HTTP server configuration for tests.
type ServerOption func(*httpserver.Config)

// WithCatalog wires a custom catalog service implementation.
func WithCatalog(service catalog.Service) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Catalog = service
	}
}

// WithNow overrides the clock used for variant classification. It also
// drives the default catalog when WithCatalog is not given.
func WithNow(now time.Time) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Now = func() time.Time { return now }
	}
}

// WithEnvironment sets the environment label shown in the super header.
func WithEnvironment(env string) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Environment = env
	}
}

// WithLogger routes request logs to logger.
func WithLogger(logger *zap.Logger) ServerOption {
	return func(cfg *httpserver.Config) {
		cfg.Logger = logger
	}
}

// NewServer constructs an httptest server running the storefront stack over the
// embedded seed catalog and a fixed clock.
func NewServer(t testing.TB, opts ...ServerOption) *httptest.Server {
	t.Helper()

	cfg := httpserver.Config{
		Address:     ":0",
		Environment: "Test",
		Now:         func() time.Time { return Now },
		Logger:      zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.Catalog == nil {
		products, err := catalog.DefaultSeed()
		if err != nil {
			t.Fatalf("load seed: %v", err)
		}
		cfg.Catalog = catalog.NewStaticService(products, cfg.Now)
	}

	handler, err := httpserver.NewHandler(cfg)
	if err != nil {
		t.Fatalf("build handler: %v", err)
	}
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)
	return ts
}
