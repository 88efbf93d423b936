package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/alionaterguta/cine-verse/internal/interfaces"
	"github.com/alionaterguta/cine-verse/internal/models/dto"
	"golang.org/x/time/rate"
)

// RateLimitMiddleware rejects requests beyond the limiter's budget with 429.
// The named counter, when metrics are present, counts the rejections.
func RateLimitMiddleware(limiter *rate.Limiter, metrics interfaces.Metrics, counterName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				if metrics != nil {
					metrics.IncCounter(counterName)
				}
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusTooManyRequests)
				resp := dto.RateLimitResponse{Message: "Too many requests. Please try again later."}
				_ = json.NewEncoder(w).Encode(resp)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
