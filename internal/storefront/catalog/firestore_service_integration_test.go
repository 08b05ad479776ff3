package catalog

import (
	"context"
	"fmt"
	"os"
	"testing"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestFirestoreServiceIntegration(t *testing.T) {
	if testing.Short() {
		t.Skip("integration test skipped in short mode")
	}
	if os.Getenv("FIRESTORE_EMULATOR_HOST") == "" {
		t.Skip("FIRESTORE_EMULATOR_HOST not set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	client, err := firestore.NewClient(ctx, "storefront-test")
	require.NoError(t, err)
	t.Cleanup(func() { _ = client.Close() })

	collection := fmt.Sprintf("products_%d", time.Now().UnixNano())
	now := time.Date(2026, time.October, 18, 12, 0, 0, 0, time.UTC)
	sale := 120.0
	docs := map[string]map[string]any{
		"void": {
			"name": "Void", "imageSrc": "/void.svg", "price": 170.0, "salePrice": sale,
			"releaseDate": time.Date(2026, time.February, 11, 0, 0, 0, 0, time.UTC),
			"numOfColors": 4, "category": "men",
		},
		"tail-out": {
			"name": "Tail-Out", "imageSrc": "/tail-out.svg", "price": 165.0,
			"releaseDate": time.Date(2026, time.October, 8, 0, 0, 0, 0, time.UTC),
			"numOfColors": 2, "category": "women",
		},
		"cosmic-vibe": {
			"name": "Cosmic Vibe", "imageSrc": "/cosmic-vibe.svg", "price": 150.0,
			"releaseDate": time.Date(2026, time.June, 2, 0, 0, 0, 0, time.UTC),
			"numOfColors": 3, "category": "men",
		},
		"broken": {
			"name": "Broken", "price": -1.0,
			"releaseDate": time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
			"category": "men",
		},
	}
	for id, data := range docs {
		_, err := client.Collection(collection).Doc(id).Set(ctx, data)
		require.NoError(t, err)
	}
	t.Cleanup(func() {
		for id := range docs {
			_, _ = client.Collection(collection).Doc(id).Delete(context.Background())
		}
	})

	core, logs := observer.New(zapcore.WarnLevel)
	service := NewFirestoreService(client, FirestoreConfig{
		Collection: collection,
		CacheTTL:   time.Minute,
		Now:        func() time.Time { return now },
		Logger:     zap.New(core),
	})

	all, err := service.ListProducts(ctx, Query{})
	require.NoError(t, err)
	require.Equal(t, []string{"tail-out", "cosmic-vibe", "void"}, slugs(all))
	require.Equal(t, 1, logs.FilterMessage("catalog: skip product document").Len())

	onSale, err := service.ListProducts(ctx, Query{Section: SectionSale})
	require.NoError(t, err)
	require.Equal(t, []string{"void"}, slugs(onSale))

	fresh, err := service.ListProducts(ctx, Query{Section: SectionNew})
	require.NoError(t, err)
	require.Equal(t, []string{"tail-out"}, slugs(fresh))

	men, err := service.ListProducts(ctx, Query{Category: CategoryMen, Sort: SortPrice})
	require.NoError(t, err)
	require.Equal(t, []string{"void", "cosmic-vibe"}, slugs(men))

	p, err := service.Product(ctx, "void")
	require.NoError(t, err)
	require.Equal(t, "Void", p.Name)
	require.True(t, p.SalePrice.Valid)
	require.Equal(t, "120", p.SalePrice.Decimal.String())

	_, err = service.Product(ctx, "missing")
	require.ErrorIs(t, err, ErrProductNotFound)

	_, err = service.Product(ctx, "broken")
	require.ErrorIs(t, err, ErrInvalidProduct)

	// A document added after the first listing stays hidden until the cache expires.
	_, err = client.Collection(collection).Doc("late").Set(ctx, map[string]any{
		"name": "Late", "price": 10.0, "releaseDate": now, "numOfColors": 1,
	})
	require.NoError(t, err)
	t.Cleanup(func() { _, _ = client.Collection(collection).Doc("late").Delete(context.Background()) })

	cached, err := service.ListProducts(ctx, Query{})
	require.NoError(t, err)
	require.Len(t, cached, 3)
}
