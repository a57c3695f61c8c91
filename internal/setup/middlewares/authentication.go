package middlewares

import (
	"net/http"
	"strings"

	"github.com/splitteam/expense-backend/internal/auth"
)

// VerifyAccessToken validates the Bearer token and exposes the caller's id
// to controllers through the UserId header.
func VerifyAccessToken(jwtManager *auth.JWTManager, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization := r.Header.Get("Authorization")
		if authorization == "" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		parts := strings.Split(authorization, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			http.Error(w, "Missing or invalid access token", http.StatusUnauthorized)
			return
		}

		claims, err := jwtManager.Validate(parts[1])
		if err != nil {
			http.Error(w, "Invalid or expired access token", http.StatusUnauthorized)
			return
		}

		r.Header.Set("UserId", claims.UserID)

		next.ServeHTTP(w, r)
	})
}
