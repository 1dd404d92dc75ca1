// Package server exposes the chat service and the fact catalog over HTTP.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/culturecoders/culturebot/internal/catalog"
	"github.com/culturecoders/culturebot/internal/chat"
	"github.com/culturecoders/culturebot/internal/model"
	"github.com/culturecoders/culturebot/internal/observability"
)

// Deps are the collaborators the API serves
type Deps struct {
	Catalog  *catalog.Catalog
	Profiles *catalog.ProfileDirectory
	Chat     *chat.Service
	Picker   catalog.Picker
	Version  string
}

// Server is the CultureBot HTTP API
type Server struct {
	deps   Deps
	cfg    model.ServerConfig
	logger *observability.Logger
	router chi.Router
}

// New builds the server and its routes
func New(deps Deps, cfg model.ServerConfig, logger *observability.Logger) *Server {
	if logger == nil {
		logger = observability.Nop()
	}
	if deps.Picker == nil {
		deps.Picker = catalog.RandomPicker{}
	}

	s := &Server{
		deps:   deps,
		cfg:    cfg,
		logger: logger.WithOperation("http"),
	}
	s.router = s.routes()
	return s
}

// Handler returns the root HTTP handler
func (s *Server) Handler() http.Handler {
	return s.router
}

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()

	r.Use(chimiddleware.RealIP)
	r.Use(Trace)
	r.Use(RequestLogger(s.logger))
	r.Use(chimiddleware.Recoverer)
	r.Use(CORS(s.cfg.AllowedOrigins))
	if s.cfg.RequestTimeout > 0 {
		r.Use(chimiddleware.Timeout(s.cfg.RequestTimeout))
	}

	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not found", r.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "method not allowed", r.Method+" "+r.URL.Path)
	})

	r.Get("/", s.handleRoot)
	r.Get("/health", s.handleHealth)
	r.Post("/chat", s.handleChat)

	r.Route("/facts", func(r chi.Router) {
		r.Get("/", s.handleFacts)
		r.Get("/random", s.handleRandomFact)
		r.Get("/country/{country}", s.handleFactsByCountry)
		r.Get("/category/{category}", s.handleFactsByCategory)
	})

	r.Get("/countries", s.handleCountries)
	r.Get("/categories", s.handleCategories)
	r.Get("/stats", s.handleStats)

	r.Get("/profiles", s.handleProfileCountries)
	r.Get("/profiles/{country}", s.handleProfile)
	r.Get("/festivals", s.handleFestivals)
	r.Get("/locations", s.handleLocations)

	return r
}

// Run serves on cfg.Addr until ctx is cancelled, then shuts down gracefully
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.cfg.Addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.cfg.Addr, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}

	serverErrors := make(chan error, 1)
	go func() {
		s.logger.Info().
			Str("addr", ln.Addr().String()).
			Bool("enrichment", s.deps.Chat.EnrichmentEnabled()).
			Msg("HTTP server listening")
		serverErrors <- srv.Serve(ln)
	}()

	select {
	case err := <-serverErrors:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve: %w", err)
	case <-ctx.Done():
		s.logger.Info().Msg("Shutdown signal received")
	}

	grace := s.cfg.GracefulShutdown
	if grace <= 0 {
		grace = 10 * time.Second
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), grace)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		s.logger.Error().Err(err).Msg("Graceful shutdown failed")
		if err := srv.Close(); err != nil {
			return fmt.Errorf("forced shutdown: %w", err)
		}
	}

	s.logger.Info().Msg("Server stopped")
	return nil
}
