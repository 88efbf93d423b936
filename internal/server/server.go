package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
)

var (
	ReadTimeout  = 10 * time.Second
	WriteTimeout = 10 * time.Second
	IdleTimeout  = 30 * time.Second
)

// Server wraps a chi router. The recoverer keeps unexpected handler faults
// from leaking stack traces to the response body.
type Server struct {
	Port   string
	Host   string
	server *http.Server
	router chi.Router
	Logger interfaces.Logger
}

// NewServer creates a new Server instance with the specified host and port.
// The allowed origins apply router-wide; per-route middleware is supplied
// through AddRoute.
func NewServer(host, port string, allowedOrigins []string, logger interfaces.Logger) interfaces.Server {
	router := chi.NewRouter()
	router.Use(chimw.RealIP)
	router.Use(chimw.Recoverer)

	if len(allowedOrigins) > 0 {
		router.Use(cors.Handler(cors.Options{
			AllowedOrigins:   allowedOrigins,
			AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
			AllowedHeaders:   []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
			MaxAge:           300,
		}))
	}

	httpServer := &http.Server{
		Addr:         host + ":" + port,
		Handler:      router,
		ReadTimeout:  ReadTimeout,
		WriteTimeout: WriteTimeout,
		IdleTimeout:  IdleTimeout,
	}

	return &Server{
		Host:   host,
		Port:   port,
		server: httpServer,
		router: router,
		Logger: logger,
	}
}

// AddRoute registers a handler for the method and pattern, wrapped in the
// given route-level middlewares.
func (s *Server) AddRoute(method, pattern string, handler http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) error {
	if pattern == "" {
		return fmt.Errorf("route pattern cannot be empty")
	}

	var h http.Handler = handler
	for i := len(middlewares) - 1; i >= 0; i-- {
		h = middlewares[i](h)
	}

	s.router.Method(method, pattern, h)
	s.Logger.Info("Route added", "method", method, "route", pattern)
	return nil
}

// ListenAndServe starts the HTTP server and listens for incoming requests.
func (s *Server) ListenAndServe() error {
	s.Logger.Info("Starting server", "host", s.Host, "port", s.Port)
	err := s.server.ListenAndServe()
	if err != nil && err != http.ErrServerClosed {
		s.Logger.Error("Failed to start server", "error", err)
		return fmt.Errorf("failed to start server: %w", err)
	}

	return nil
}

// Shutdown stops the server, letting in-flight requests drain.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}
