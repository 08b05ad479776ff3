package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

const (
	defaultEnvFile             = ".env"
	defaultPort                = "8080"
	defaultReadTimeout         = 15 * time.Second
	defaultWriteTimeout        = 30 * time.Second
	defaultIdleTimeout         = 120 * time.Second
	defaultShutdownTimeout     = 10 * time.Second
	defaultRequestTimeout      = 30 * time.Second
	defaultCatalogSource       = CatalogSourceStatic
	defaultFirestoreCollection = "products"
	defaultCatalogCacheTTL     = 30 * time.Second
	defaultLogLevel            = "info"
	defaultEnvironment         = "Development"
)

// Catalog sources supported by the storefront.
const (
	CatalogSourceStatic    = "static"
	CatalogSourceFirestore = "firestore"
)

// Config captures all runtime configuration organised by concern.
type Config struct {
	Server      ServerConfig
	Catalog     CatalogConfig
	Log         LogConfig
	Environment string
}

// ServerConfig configures HTTP server parameters.
type ServerConfig struct {
	Addr            string
	ReadTimeout     time.Duration
	WriteTimeout    time.Duration
	IdleTimeout     time.Duration
	RequestTimeout  time.Duration
	ShutdownTimeout time.Duration
}

// CatalogConfig selects and tunes the product source.
type CatalogConfig struct {
	Source     string
	SeedFile   string
	ProjectID  string
	Collection string
	CacheTTL   time.Duration
}

// LogConfig controls the zap logger.
type LogConfig struct {
	Level string
}

// ValidationError is returned when configuration fields are missing or invalid.
type ValidationError struct {
	fields []string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return fmt.Sprintf("config validation failed: missing or invalid fields [%s]", strings.Join(e.fields, ", "))
}

// Fields returns a copy of the missing/invalid field list.
func (e *ValidationError) Fields() []string {
	out := make([]string, len(e.fields))
	copy(out, e.fields)
	return out
}

// Overrides carries command-line values that win over the environment.
type Overrides struct {
	Addr        string
	CatalogFile string
}

// ParseFlags reads --addr and --catalog-file from args (without the program name).
func ParseFlags(name string, args []string) (Overrides, error) {
	var o Overrides
	fs := pflag.NewFlagSet(name, pflag.ContinueOnError)
	fs.StringVar(&o.Addr, "addr", "", "HTTP listen address (overrides STOREFRONT_HTTP_ADDR)")
	fs.StringVar(&o.CatalogFile, "catalog-file", "", "YAML catalog seed (overrides STOREFRONT_CATALOG_FILE)")
	if err := fs.Parse(args); err != nil {
		return Overrides{}, fmt.Errorf("config: parse flags: %w", err)
	}
	return o, nil
}

// Option customises Load behaviour.
type Option func(*loaderOptions)

type loaderOptions struct {
	envFile      string
	envMap       map[string]string
	useSystemEnv bool
	overrides    Overrides
}

// WithEnvFile overrides the .env file path used for local overrides.
func WithEnvFile(path string) Option {
	return func(o *loaderOptions) {
		o.envFile = path
	}
}

// WithEnvMap injects an explicit key/value map for environment lookups. Values in the map
// take precedence over system environment variables.
func WithEnvMap(values map[string]string) Option {
	return func(o *loaderOptions) {
		o.envMap = values
	}
}

// WithoutSystemEnv disables reading from the process environment.
func WithoutSystemEnv() Option {
	return func(o *loaderOptions) {
		o.useSystemEnv = false
	}
}

// WithOverrides applies command-line overrides after environment lookups.
func WithOverrides(ov Overrides) Option {
	return func(o *loaderOptions) {
		o.overrides = ov
	}
}

// Load assembles the configuration from defaults, an optional .env file,
// environment variables and command-line overrides, in increasing precedence.
func Load(opts ...Option) (Config, error) {
	options := loaderOptions{
		envFile:      defaultEnvFile,
		useSystemEnv: true,
	}
	for _, opt := range opts {
		opt(&options)
	}

	dotEnvValues, err := loadDotEnv(options.envFile)
	if err != nil {
		return Config{}, err
	}

	lookup := func(key string) (string, bool) {
		if options.envMap != nil {
			if value, ok := options.envMap[key]; ok {
				return value, true
			}
		}
		if options.useSystemEnv {
			if value, ok := os.LookupEnv(key); ok {
				return value, true
			}
		}
		if value, ok := dotEnvValues[key]; ok {
			return value, true
		}
		return "", false
	}
	get := func(key, fallback string) string {
		if value, ok := lookup(key); ok && strings.TrimSpace(value) != "" {
			return strings.TrimSpace(value)
		}
		return fallback
	}

	var invalid []string
	duration := func(key string, fallback time.Duration) time.Duration {
		raw := get(key, "")
		if raw == "" {
			return fallback
		}
		d, err := time.ParseDuration(raw)
		if err != nil || d <= 0 {
			invalid = append(invalid, key)
			return fallback
		}
		return d
	}

	port := get("PORT", defaultPort)
	cfg := Config{
		Server: ServerConfig{
			Addr:            get("STOREFRONT_HTTP_ADDR", ":"+port),
			ReadTimeout:     duration("STOREFRONT_READ_TIMEOUT", defaultReadTimeout),
			WriteTimeout:    duration("STOREFRONT_WRITE_TIMEOUT", defaultWriteTimeout),
			IdleTimeout:     duration("STOREFRONT_IDLE_TIMEOUT", defaultIdleTimeout),
			RequestTimeout:  duration("STOREFRONT_REQUEST_TIMEOUT", defaultRequestTimeout),
			ShutdownTimeout: duration("STOREFRONT_SHUTDOWN_TIMEOUT", defaultShutdownTimeout),
		},
		Catalog: CatalogConfig{
			Source:     strings.ToLower(get("STOREFRONT_CATALOG_SOURCE", defaultCatalogSource)),
			SeedFile:   get("STOREFRONT_CATALOG_FILE", ""),
			ProjectID:  get("STOREFRONT_FIRESTORE_PROJECT_ID", get("GOOGLE_CLOUD_PROJECT", "")),
			Collection: get("STOREFRONT_FIRESTORE_COLLECTION", defaultFirestoreCollection),
			CacheTTL:   duration("STOREFRONT_CATALOG_CACHE_TTL", defaultCatalogCacheTTL),
		},
		Log: LogConfig{
			Level: strings.ToLower(get("STOREFRONT_LOG_LEVEL", get("LOG_LEVEL", defaultLogLevel))),
		},
		Environment: get("STOREFRONT_ENV", defaultEnvironment),
	}

	if v := strings.TrimSpace(options.overrides.Addr); v != "" {
		cfg.Server.Addr = v
	}
	if v := strings.TrimSpace(options.overrides.CatalogFile); v != "" {
		cfg.Catalog.SeedFile = v
	}

	switch cfg.Catalog.Source {
	case CatalogSourceStatic:
	case CatalogSourceFirestore:
		if cfg.Catalog.ProjectID == "" {
			invalid = append(invalid, "STOREFRONT_FIRESTORE_PROJECT_ID")
		}
	default:
		invalid = append(invalid, "STOREFRONT_CATALOG_SOURCE")
	}

	if len(invalid) > 0 {
		return Config{}, &ValidationError{fields: invalid}
	}
	return cfg, nil
}

func loadDotEnv(path string) (map[string]string, error) {
	if path == "" {
		return nil, nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		absPath = path
	}

	values, err := godotenv.Read(absPath)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("config: unable to read %s: %w", absPath, err)
	}
	return values, nil
}
