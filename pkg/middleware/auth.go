package middleware

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/vfg2006/castnavi-api/internal/usecases/authenticating"
	"github.com/vfg2006/castnavi-api/pkg/apiErrors"
)

type contextKey string

const (
	ContextKeyUser contextKey = "user"
)

// AdminPathPrefix delimita as rotas que exigem sessão
const AdminPathPrefix = "/v1/admin"

// AuthMiddleware valida o token apenas nas rotas administrativas. O token
// pode vir do header Authorization ou do cookie de sessão.
func AuthMiddleware(authService authenticating.Authenticator, cookieName string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !requiresAuth(r) {
				next.ServeHTTP(w, r)
				return
			}

			tokenString, ok := tokenFromRequest(r, cookieName)
			if !ok {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token de acesso é obrigatório", nil)
				return
			}

			claims, err := authService.ValidateToken(tokenString)
			if err != nil {
				if errors.Is(err, authenticating.ErrExpiredToken) {
					apiErrors.WriteError(w, apiErrors.ErrExpiredToken, "Sessão expirada", nil)
					return
				}
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Token inválido", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeyUser, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requiresAuth(r *http.Request) bool {
	if r.Method == http.MethodOptions {
		return false
	}
	return r.URL.Path == AdminPathPrefix || strings.HasPrefix(r.URL.Path, AdminPathPrefix+"/")
}

func tokenFromRequest(r *http.Request, cookieName string) (string, bool) {
	if authHeader := r.Header.Get("Authorization"); authHeader != "" {
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if tokenString == authHeader || tokenString == "" {
			return "", false
		}
		return tokenString, true
	}

	if cookieName == "" {
		return "", false
	}

	cookie, err := r.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return "", false
	}

	return cookie.Value, true
}
