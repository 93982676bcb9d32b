package http

import (
	"context"
	"net/http"
	"strings"
)

type contextKey string

const userIDContextKey contextKey = "user_id"

// requireAuth verifies the bearer token and injects the authenticated user id
// into the request context before the handler executes.
func (rt *Router) requireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			respondMsg(w, http.StatusUnauthorized, "Authorization header required")
			return
		}

		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			respondMsg(w, http.StatusUnauthorized, "Invalid authorization header format")
			return
		}

		claims, err := rt.tokens.ValidateToken(parts[1])
		if err != nil {
			respondMsg(w, http.StatusUnauthorized, "Invalid or expired token")
			return
		}

		ctx := context.WithValue(r.Context(), userIDContextKey, claims.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// currentUserID returns the authenticated user id, or 0 on an
// unauthenticated route.
func currentUserID(r *http.Request) int32 {
	id, _ := r.Context().Value(userIDContextKey).(int32)
	return id
}
