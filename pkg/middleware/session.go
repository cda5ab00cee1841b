package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/heliogrid/heliogrid-web/internal/domain"
	"github.com/heliogrid/heliogrid-web/pkg/apiErrors"
)

type contextKey string

// ContextKeySession guarda as claims da sessão de demonstração no contexto
const ContextKeySession contextKey = "demo_session"

// SessionValidator valida o token da sessão de demonstração
type SessionValidator interface {
	Validate(tokenString string) (*domain.DemoClaims, error)
}

// Prefixos de rota que exigem uma sessão de demonstração ativa.
// Páginas, assets e a emissão da própria sessão permanecem públicos.
var guardedPrefixes = []string{
	"/v1/dashboard",
	"/v1/cron",
}

func isGuarded(path string) bool {
	for _, prefix := range guardedPrefixes {
		if strings.HasPrefix(path, prefix) {
			return true
		}
	}
	return false
}

// SessionMiddleware exige o token de demonstração nas rotas de dados
func SessionMiddleware(validator SessionValidator) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !isGuarded(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				apiErrors.WriteError(w, apiErrors.ErrMissingSession, "Inicie uma sessão de demonstração em /v1/demo/session", nil)
				return
			}

			tokenString := strings.TrimPrefix(authHeader, "Bearer ")
			if tokenString == authHeader {
				apiErrors.WriteError(w, apiErrors.ErrMissingSession, "Token Bearer obrigatório", nil)
				return
			}

			claims, err := validator.Validate(tokenString)
			if err != nil {
				apiErrors.WriteError(w, apiErrors.ErrInvalidToken, "Sessão de demonstração inválida ou expirada", nil)
				return
			}

			ctx := context.WithValue(r.Context(), ContextKeySession, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
