// Package web serves loaded census data as a read-only JSON API.
package web

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/JonMunkholm/census/internal/census"
	"github.com/JonMunkholm/census/internal/config"
	"github.com/JonMunkholm/census/internal/web/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

type datasetKey struct {
	country census.Country
	schema  census.Schema
}

// Server is the HTTP server for the census API.
type Server struct {
	cfg      config.ServerConfig
	datasets map[datasetKey]census.Dataset
	router   *chi.Mux
	server   *http.Server
}

// NewServer creates a Server exposing the given datasets.
// A later dataset for the same country and schema replaces an earlier one.
func NewServer(cfg config.ServerConfig, datasets []census.Dataset) *Server {
	s := &Server{
		cfg:      cfg,
		datasets: make(map[datasetKey]census.Dataset, len(datasets)),
		router:   chi.NewRouter(),
	}
	for _, ds := range datasets {
		s.datasets[datasetKey{ds.Country, ds.Schema}] = ds
	}
	s.setupMiddleware()
	s.setupRoutes()
	return s
}

func (s *Server) setupMiddleware() {
	s.router.Use(chimw.RequestID)
	s.router.Use(chimw.RealIP)
	s.router.Use(middleware.Logger)
	s.router.Use(chimw.Recoverer)
	s.router.Use(securityHeaders)
}

func (s *Server) setupRoutes() {
	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api", func(r chi.Router) {
		r.Get("/countries", s.handleListCountries)
		r.Get("/census/{country}/{schema}", s.handleLoadCensus)
		r.Get("/census/{country}/{schema}/{key}", s.handleGetRecord)
	})
}

// Start begins listening for HTTP requests.
func (s *Server) Start() error {
	s.server = &http.Server{
		Addr:         s.cfg.Addr(),
		Handler:      s.router,
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
		IdleTimeout:  s.cfg.IdleTimeout,
	}
	return s.server.ListenAndServe()
}

// Shutdown gracefully stops the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.server == nil {
		return nil
	}
	return s.server.Shutdown(ctx)
}

// Router returns the underlying chi router for testing.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// securityHeaders adds security headers to all responses.
func securityHeaders(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Content-Type-Options", "nosniff")
		w.Header().Set("X-Frame-Options", "DENY")
		w.Header().Set("Referrer-Policy", "no-referrer")
		next.ServeHTTP(w, r)
	})
}

// writeJSON encodes v as JSON with the given status.
// Encoding errors are only logged since headers are already sent.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		slog.Error("json encode error", "error", err)
	}
}
