package middleware

import (
	"fmt"
	"net/http"

	apperrors "github.com/3leaps/gostratus/internal/errors"
)

// Recovery converts handler panics into a JSON 500 response instead of
// tearing down the connection.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				apperrors.WriteJSON(w, http.StatusInternalServerError,
					apperrors.CodeInternal, fmt.Sprintf("panic: %v", rec))
			}
		}()
		next.ServeHTTP(w, r)
	})
}
