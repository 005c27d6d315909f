package middleware

import (
	"net/http"

	"golang.org/x/time/rate"

	apperrors "github.com/3leaps/gostratus/internal/errors"
)

// Throttle rejects requests above the sustained rate with a JSON 429.
//
// limit is requests per second; burst is the short-term allowance. A
// non-positive limit disables throttling entirely.
func Throttle(limit float64, burst int) func(http.Handler) http.Handler {
	if limit <= 0 {
		return func(next http.Handler) http.Handler { return next }
	}

	limiter := rate.NewLimiter(rate.Limit(limit), burst)
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				apperrors.WriteJSON(w, http.StatusTooManyRequests,
					apperrors.CodeTooManyRequests, "rate limit exceeded")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
