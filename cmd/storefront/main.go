package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/spf13/pflag"
	"go.uber.org/zap"

	"finitefield.org/storefront/internal/platform/config"
	"finitefield.org/storefront/internal/platform/observability"
	"finitefield.org/storefront/internal/storefront/catalog"
	"finitefield.org/storefront/internal/storefront/httpserver"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "storefront: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	overrides, err := config.ParseFlags(os.Args[0], os.Args[1:])
	if errors.Is(err, pflag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}
	cfg, err := config.Load(config.WithOverrides(overrides))
	if err != nil {
		return err
	}

	logger, err := observability.NewLogger(cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	service, closeCatalog, err := buildCatalog(ctx, cfg.Catalog, logger)
	if err != nil {
		return err
	}
	defer closeCatalog()

	srv, err := httpserver.New(httpserver.Config{
		Address:        cfg.Server.Addr,
		Environment:    cfg.Environment,
		Catalog:        service,
		Now:            time.Now,
		Logger:         logger,
		ReadTimeout:    cfg.Server.ReadTimeout,
		WriteTimeout:   cfg.Server.WriteTimeout,
		IdleTimeout:    cfg.Server.IdleTimeout,
		RequestTimeout: cfg.Server.RequestTimeout,
	})
	if err != nil {
		return err
	}

	serveErr := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	logger.Info("storefront listening",
		zap.String("addr", cfg.Server.Addr),
		zap.String("environment", cfg.Environment),
		zap.String("catalog", cfg.Catalog.Source),
	)

	select {
	case err := <-serveErr:
		if err != nil {
			return fmt.Errorf("http server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("graceful shutdown failed: %w", err)
	}
	logger.Info("storefront stopped")
	return nil
}

func buildCatalog(ctx context.Context, cfg config.CatalogConfig, logger *zap.Logger) (catalog.Service, func(), error) {
	noop := func() {}

	switch cfg.Source {
	case config.CatalogSourceFirestore:
		client, err := firestore.NewClient(ctx, cfg.ProjectID)
		if err != nil {
			return nil, noop, fmt.Errorf("init firestore client: %w", err)
		}
		logger.Info("firestore catalog enabled",
			zap.String("project", cfg.ProjectID),
			zap.String("collection", cfg.Collection),
		)
		service := catalog.NewFirestoreService(client, catalog.FirestoreConfig{
			Collection: cfg.Collection,
			CacheTTL:   cfg.CacheTTL,
			Logger:     logger.Named("catalog"),
		})
		return service, func() { _ = client.Close() }, nil
	default:
		var (
			products []catalog.Product
			err      error
		)
		if cfg.SeedFile != "" {
			products, err = catalog.LoadSeedFile(cfg.SeedFile)
		} else {
			products, err = catalog.DefaultSeed()
		}
		if err != nil {
			return nil, noop, fmt.Errorf("load catalog seed: %w", err)
		}
		logger.Info("static catalog loaded",
			zap.Int("products", len(products)),
			zap.String("file", cfg.SeedFile),
		)
		return catalog.NewStaticService(products, time.Now), noop, nil
	}
}
