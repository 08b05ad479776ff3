package httpserver

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"finitefield.org/storefront/internal/storefront/catalog"
	custommw "finitefield.org/storefront/internal/storefront/httpserver/middleware"
	"finitefield.org/storefront/internal/storefront/httpserver/ui"
	"finitefield.org/storefront/internal/storefront/navigation"
	"finitefield.org/storefront/public"
)

const (
	defaultReadTimeout    = 10 * time.Second
	defaultWriteTimeout   = 30 * time.Second
	defaultIdleTimeout    = 60 * time.Second
	defaultRequestTimeout = 30 * time.Second
)

// Config holds runtime options for the storefront HTTP server.
type Config struct {
	Address        string
	Environment    string
	Catalog        catalog.Service
	Now            func() time.Time
	Logger         *zap.Logger
	ReadTimeout    time.Duration
	WriteTimeout   time.Duration
	IdleTimeout    time.Duration
	RequestTimeout time.Duration
}

// New constructs the HTTP server with middleware stack and embedded assets.
func New(cfg Config) (*http.Server, error) {
	handler, err := NewHandler(cfg)
	if err != nil {
		return nil, err
	}
	return &http.Server{
		Addr:         cfg.Address,
		Handler:      handler,
		ReadTimeout:  orDefault(cfg.ReadTimeout, defaultReadTimeout),
		WriteTimeout: orDefault(cfg.WriteTimeout, defaultWriteTimeout),
		IdleTimeout:  orDefault(cfg.IdleTimeout, defaultIdleTimeout),
	}, nil
}

// NewHandler builds the routed handler without binding a listener.
func NewHandler(cfg Config) (http.Handler, error) {
	if cfg.Catalog == nil {
		return nil, fmt.Errorf("httpserver: catalog service is required")
	}
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	router := chi.NewRouter()
	router.Use(chimw.RequestID)
	router.Use(chimw.RealIP)
	router.Use(custommw.Logger(logger))
	router.Use(chimw.Recoverer)
	router.Use(chimw.Timeout(orDefault(cfg.RequestTimeout, defaultRequestTimeout)))
	router.Use(chimw.Compress(5))

	staticContent, err := public.StaticFS()
	if err != nil {
		return nil, fmt.Errorf("httpserver: embed static: %w", err)
	}
	router.Handle("/public/static/*", http.StripPrefix("/public/static/", http.FileServer(http.FS(staticContent))))

	router.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		_, _ = w.Write([]byte("ok"))
	})

	handlers := ui.NewHandlers(ui.Dependencies{
		Catalog: cfg.Catalog,
		Now:     cfg.Now,
		Logger:  logger,
	})
	mountShopRoutes(router, handlers, cfg.Environment)

	return router, nil
}

func mountShopRoutes(router chi.Router, handlers *ui.Handlers, environment string) {
	router.Group(func(r chi.Router) {
		r.Use(custommw.RequestInfoMiddleware())
		r.Use(custommw.Environment(environment))

		r.Get("/", handlers.Home)
		for _, link := range navigation.HeaderLinks() {
			r.Get(link.Href, handlers.Section(link.Key))
		}
		r.Get("/shoe/{slug}", handlers.Product)
		r.NotFound(handlers.NotFound)
	})
}

func orDefault(v, fallback time.Duration) time.Duration {
	if v <= 0 {
		return fallback
	}
	return v
}
