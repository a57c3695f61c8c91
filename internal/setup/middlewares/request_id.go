package middlewares

import (
	"net/http"

	"github.com/google/uuid"
)

// RequestIdMiddleware tags every request with an id so log lines from the
// same request can be correlated.
func RequestIdMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestId := r.Header.Get("X-Request-Id")
		if requestId == "" {
			requestId = uuid.NewString()
			r.Header.Set("X-Request-Id", requestId)
		}

		w.Header().Set("X-Request-Id", requestId)

		next.ServeHTTP(w, r)
	})
}
