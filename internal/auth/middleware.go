// Package auth gates the API behind a single static bearer token. The
// service is single-user; there are no accounts, sessions, or token storage.
package auth

import (
	"crypto/subtle"
	"encoding/json"
	"net/http"
	"strings"
)

// BearerMiddleware authenticates requests against one configured token.
type BearerMiddleware struct {
	token string
}

// NewBearerMiddleware creates a BearerMiddleware for the configured token.
func NewBearerMiddleware(token string) *BearerMiddleware {
	return &BearerMiddleware{token: token}
}

// Authenticate rejects requests whose Authorization header does not carry the
// configured bearer token. Comparison is constant-time.
func (m *BearerMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			writeUnauthorized(w)
			return
		}
		plaintext := strings.TrimPrefix(authHeader, "Bearer ")
		if subtle.ConstantTimeCompare([]byte(plaintext), []byte(m.token)) != 1 {
			writeUnauthorized(w)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// writeUnauthorized writes a 401 JSON response with {"error": "unauthorized"}.
func writeUnauthorized(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
}
