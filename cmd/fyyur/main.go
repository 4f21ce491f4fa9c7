// Command fyyur runs the Fyyur venue and artist booking site.
package main

import (
	"context"
	"fmt"
	"io/fs"
	"os"

	"github.com/justestif/fyyur/internal/config"
	"github.com/justestif/fyyur/internal/db"
	"github.com/justestif/fyyur/internal/logging"
	"github.com/justestif/fyyur/internal/web"
	webfs "github.com/justestif/fyyur/web"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
	})

	policy, err := db.ParseDeletePolicy(cfg.DeletePolicy)
	if err != nil {
		return err
	}

	ctx := context.Background()

	database, err := db.New(ctx, cfg.DatabaseURL, db.WithDeletePolicy(policy))
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer database.Close()

	if cfg.Migrate {
		if err := database.Migrate(ctx); err != nil {
			return fmt.Errorf("migrating database: %w", err)
		}
		logger.Info().Msg("database schema is up to date")
	}

	// Create sub-filesystems for templates and static files
	templates, err := fs.Sub(webfs.TemplatesFS, "templates")
	if err != nil {
		return fmt.Errorf("creating templates filesystem: %w", err)
	}

	static, err := fs.Sub(webfs.StaticFS, "static")
	if err != nil {
		return fmt.Errorf("creating static filesystem: %w", err)
	}

	// Create and start server
	server, err := web.NewServer(web.ServerConfig{
		Addr:            cfg.Addr,
		TemplatesFS:     templates,
		StaticFS:        static,
		Store:           web.NewDBStore(database),
		Logger:          logger,
		RateLimit:       cfg.RateLimit,
		ShutdownTimeout: cfg.ShutdownTimeout,
	})
	if err != nil {
		return fmt.Errorf("creating server: %w", err)
	}

	logger.Info().
		Str("delete_policy", string(policy)).
		Int("rate_limit", cfg.RateLimit).
		Msg("fyyur configured")

	return server.Run()
}
