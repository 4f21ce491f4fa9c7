package web

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

const (
	// DefaultAddr is the default server address.
	DefaultAddr = "127.0.0.1:5000"

	// DefaultShutdownTimeout bounds graceful shutdown when none is configured.
	DefaultShutdownTimeout = 10 * time.Second
)

// ServerConfig holds server configuration.
type ServerConfig struct {
	Addr            string
	TemplatesFS     fs.FS
	StaticFS        fs.FS
	Store           Store
	Logger          zerolog.Logger
	RateLimit       int // write requests per minute per IP, 0 disables
	ShutdownTimeout time.Duration
	Now             func() time.Time // defaults to time.Now
	Location        *time.Location   // zone for form start times, defaults to time.Local
}

// Server is the HTTP server for the web application.
type Server struct {
	router          chi.Router
	server          *http.Server
	templates       *Templates
	handlers        *Handlers
	metrics         *Metrics
	logger          zerolog.Logger
	shutdownTimeout time.Duration
}

// NewServer creates a new web server.
func NewServer(cfg ServerConfig) (*Server, error) {
	if cfg.Store == nil {
		return nil, errors.New("server store is required")
	}
	if cfg.Addr == "" {
		cfg.Addr = DefaultAddr
	}
	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = DefaultShutdownTimeout
	}

	// Create template manager
	templates, err := NewTemplates(cfg.TemplatesFS)
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	metrics := NewMetrics()

	// Create handlers
	handlers := NewHandlers(cfg.Store, templates, metrics, cfg.Now, cfg.Location)

	// Create router
	router := chi.NewRouter()

	s := &Server{
		router:          router,
		templates:       templates,
		handlers:        handlers,
		metrics:         metrics,
		logger:          cfg.Logger,
		shutdownTimeout: cfg.ShutdownTimeout,
	}

	// Configure middleware
	s.setupMiddleware()

	// Configure routes
	s.setupRoutes(cfg.StaticFS, writeLimiter(cfg.RateLimit))

	// Create HTTP server
	s.server = &http.Server{
		Addr:         cfg.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return s, nil
}

// setupMiddleware configures middleware for the router.
func (s *Server) setupMiddleware() {
	s.router.Use(middleware.RequestID)
	s.router.Use(middleware.RealIP)
	s.router.Use(requestLogger(s.logger))
	s.router.Use(s.handlers.recoverer)
	s.router.Use(s.metrics.Middleware)
	s.router.Use(middleware.Compress(5))
}

// setupRoutes configures routes for the application.
func (s *Server) setupRoutes(staticFS fs.FS, limit func(http.Handler) http.Handler) {
	h := s.handlers

	// Static files
	if staticFS != nil {
		fileServer := http.FileServer(http.FS(staticFS))
		s.router.Handle("/static/*", http.StripPrefix("/static/", fileServer))
	}

	s.router.Handle("/metrics", s.metrics.Handler())
	s.router.Get("/healthz", h.Healthz)

	// Pages
	s.router.Get("/", h.Home)

	s.router.Route("/venues", func(r chi.Router) {
		r.Get("/", h.Venues)
		r.With(limit).Post("/search", h.SearchVenues)
		r.Get("/create", h.NewVenue)
		r.With(limit).Post("/create", h.CreateVenue)
		r.Get("/{id}", h.Venue)
		r.With(limit).Delete("/{id}", h.DeleteVenue)
		r.With(limit).Post("/{id}/delete", h.DeleteVenue)
		r.Get("/{id}/edit", h.EditVenue)
		r.With(limit).Post("/{id}/edit", h.UpdateVenue)
	})

	s.router.Route("/artists", func(r chi.Router) {
		r.Get("/", h.Artists)
		r.With(limit).Post("/search", h.SearchArtists)
		r.Get("/create", h.NewArtist)
		r.With(limit).Post("/create", h.CreateArtist)
		r.Get("/{id}", h.Artist)
		r.With(limit).Delete("/{id}", h.DeleteArtist)
		r.With(limit).Post("/{id}/delete", h.DeleteArtist)
		r.Get("/{id}/edit", h.EditArtist)
		r.With(limit).Post("/{id}/edit", h.UpdateArtist)
	})

	s.router.Route("/shows", func(r chi.Router) {
		r.Get("/", h.Shows)
		r.Get("/create", h.NewShow)
		r.With(limit).Post("/create", h.CreateShow)
	})

	s.router.NotFound(h.NotFound)
	s.router.MethodNotAllowed(h.MethodNotAllowed)
}

// Handler returns the root HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Start starts the HTTP server.
func (s *Server) Start() error {
	s.logger.Info().Str("addr", s.server.Addr).Msgf("starting server at http://%s", s.server.Addr)
	return s.server.ListenAndServe()
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// Run starts the server and handles graceful shutdown on interrupt signals.
func (s *Server) Run() error {
	// Channel to receive shutdown signals
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		if err := s.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Wait for interrupt or error
	select {
	case err := <-errCh:
		return err
	case <-stop:
		s.logger.Info().Msg("shutting down server")
	}

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), s.shutdownTimeout)
	defer cancel()

	if err := s.Shutdown(ctx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}

	s.logger.Info().Msg("server stopped")
	return nil
}
