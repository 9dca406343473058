package http

import (
	"net/http"
	"strings"
)

// AuthMiddleware enforces a static bearer token on every request.
// An empty expected token disables authentication entirely, which is
// intended for local development and the in-process test server.
func AuthMiddleware(expectedToken string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if expectedToken == "" {
				next.ServeHTTP(w, r)
				return
			}

			header := r.Header.Get("Authorization")
			if header == "" {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing authorization header"})
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			if token == header || token != expectedToken {
				writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "invalid token"})
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}
