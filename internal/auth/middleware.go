package auth

import (
	"context"
	"crypto/ecdsa"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/alionaterguta/cine-verse/internal/models/dto"
)

type contextKey string

// claimsContextKey is where RequireAuth stores the verified identity.
const claimsContextKey contextKey = "auth_claims"

const bearerPrefix = "Bearer "

// RequireAuth validates the Authorization bearer header and injects the
// decoded claims into the request context. The route fails closed with 401
// before any handler logic runs.
func RequireAuth(publicKey *ecdsa.PublicKey) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				unauthorized(w, "Missing bearer token")
				return
			}

			claims, err := VerifyToken(strings.TrimPrefix(header, bearerPrefix), publicKey)
			if err != nil {
				unauthorized(w, "Invalid or expired token")
				return
			}

			ctx := context.WithValue(r.Context(), claimsContextKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// CallerFromContext returns the identity RequireAuth attached, or nil on an
// unauthenticated request.
func CallerFromContext(ctx context.Context) *CustomClaims {
	claims, _ := ctx.Value(claimsContextKey).(*CustomClaims)
	return claims
}

// ContextWithCaller attaches an identity to the context. Intended for tests
// exercising handlers without the middleware.
func ContextWithCaller(ctx context.Context, claims *CustomClaims) context.Context {
	return context.WithValue(ctx, claimsContextKey, claims)
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(dto.ErrorResponse{
		Error:   "unauthorized",
		Message: message,
	})
}
