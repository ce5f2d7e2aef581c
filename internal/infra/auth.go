package infra

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/s21platform/market-chat/internal/config"
	api "github.com/s21platform/market-chat/internal/generated"
	"github.com/s21platform/market-chat/internal/model"
)

const loginPath = "/api/auth/login"

type TokenValidator interface {
	ValidateSessionToken(token string) (*model.SessionClaims, error)
}

// AuthInterceptorHTTP resolves the caller from the bearer token and stores
// its id under config.KeyUUID. Login is the only public route.
func AuthInterceptorHTTP(next http.Handler, tokens TokenValidator) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == loginPath {
			next.ServeHTTP(w, r)
			return
		}

		token, ok := strings.CutPrefix(r.Header.Get("Authorization"), "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(w, "missing bearer token")
			return
		}

		claims, err := tokens.ValidateSessionToken(strings.TrimSpace(token))
		if err != nil {
			unauthorized(w, "invalid session token")
			return
		}

		ctx := context.WithValue(r.Context(), config.KeyUUID, claims.Subject)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnauthorized)
	_ = json.NewEncoder(w).Encode(api.Error{Error: message})
}
