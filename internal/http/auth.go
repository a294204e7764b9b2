package http

import (
	"crypto/subtle"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// WithAuth protege la superficie del puente. Con jwtSecret exige Bearer
// HS256; si no, compara el header X-API-Key contra apiKey. Con ambos vacíos
// no hay auth (solo para dev, el main lo advierte en el log).
func WithAuth(next http.Handler, apiKey, jwtSecret string) http.Handler {
	if apiKey == "" && jwtSecret == "" {
		return next
	}

	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if jwtSecret != "" {
			if !checkBearer(r, jwtSecret) {
				w.Header().Set("WWW-Authenticate", `Bearer realm="userfed"`)
				WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing bearer token")
				return
			}
			next.ServeHTTP(w, r)
			return
		}

		got := r.Header.Get("X-API-Key")
		if subtle.ConstantTimeCompare([]byte(got), []byte(apiKey)) != 1 {
			WriteError(w, http.StatusUnauthorized, "unauthorized", "invalid or missing API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func checkBearer(r *http.Request, secret string) bool {
	h := r.Header.Get("Authorization")
	if !strings.HasPrefix(h, "Bearer ") {
		return false
	}
	raw := strings.TrimSpace(strings.TrimPrefix(h, "Bearer "))

	tok, err := jwt.Parse(raw, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return []byte(secret), nil
	}, jwt.WithValidMethods([]string{"HS256"}))

	return err == nil && tok.Valid
}
