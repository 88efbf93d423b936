package interfaces

import (
	"context"
	"net/http"
)

// Server interface defines the methods for a server implementation.
// Middlewares apply to the single route only; router-wide middleware is
// configured at construction.
type Server interface {
	AddRoute(method, pattern string, handler http.HandlerFunc, middlewares ...func(http.Handler) http.Handler) error
	ListenAndServe() error
	Shutdown(ctx context.Context) error
}
