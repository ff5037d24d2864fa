package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/isandoval/staffdesk-be/internal/api/respond"
)

// RequireAuth creates a middleware that optionally enforces bearer-token
// authentication. The protected func is consulted on every request, so
// protection can be toggled at runtime; when it reports false the request
// passes through without any token inspection.
func RequireAuth(m *Manager, protected func() bool) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !protected() {
				next.ServeHTTP(w, r)
				return
			}

			tokenStr := bearerToken(r.Header.Get("Authorization"))
			if tokenStr == "" {
				respond.Error(w, http.StatusUnauthorized, "Missing or invalid Authorization header")
				return
			}

			claims, err := m.VerifyToken(tokenStr)
			if err != nil {
				log.Warn().Err(err).Msg("Rejected request with invalid token")
				respond.Error(w, http.StatusUnauthorized, "Invalid token")
				return
			}

			next.ServeHTTP(w, r.WithContext(WithClaims(r.Context(), claims)))
		})
	}
}

// bearerToken extracts the token from an "Authorization: Bearer <token>"
// header. Anything else yields an empty string.
func bearerToken(header string) string {
	parts := strings.Split(header, " ")
	if len(parts) != 2 || parts[0] != "Bearer" || parts[1] == "" {
		return ""
	}
	return parts[1]
}
