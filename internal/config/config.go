// Package config loads Fyyur's runtime configuration from the environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrMissingDatabaseURL is returned when DATABASE_URL is not set.
var ErrMissingDatabaseURL = errors.New("missing DATABASE_URL environment variable")

// Config holds application configuration.
type Config struct {
	Addr            string        `env:"FYYUR_ADDR"             envDefault:"127.0.0.1:5000"`
	DatabaseURL     string        `env:"DATABASE_URL"`
	LogLevel        string        `env:"FYYUR_LOG_LEVEL"        envDefault:"info"`
	LogFormat       string        `env:"FYYUR_LOG_FORMAT"       envDefault:"json"`
	DeletePolicy    string        `env:"FYYUR_DELETE_POLICY"    envDefault:"restrict"`
	Migrate         bool          `env:"FYYUR_MIGRATE"          envDefault:"true"`
	RateLimit       int           `env:"FYYUR_RATE_LIMIT"       envDefault:"60"`
	ShutdownTimeout time.Duration `env:"FYYUR_SHUTDOWN_TIMEOUT" envDefault:"10s"`
}

// Load reads configuration from the environment. Values from the given
// dotenv files are loaded first without overriding variables that are
// already set; missing files are ignored.
func Load(dotenvFiles ...string) (*Config, error) {
	for _, f := range dotenvFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.DatabaseURL == "" {
		return nil, ErrMissingDatabaseURL
	}
	if cfg.RateLimit < 0 {
		return nil, fmt.Errorf("FYYUR_RATE_LIMIT must not be negative, got %d", cfg.RateLimit)
	}
	return &cfg, nil
}
