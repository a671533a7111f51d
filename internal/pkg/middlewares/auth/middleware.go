package auth

import (
	"net/http"
	"strings"

	"storefront/internal/pkg/auth"
	"storefront/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware разбирает Authorization: Bearer <token> и кладет действующего
// в контекст запроса. Без валидного токена запрос дальше не проходит.
func Middleware(log handlerLogger, parser TokenParser) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Missing or malformed Authorization header"}`))
				return
			}

			actor, err := parser.Parse(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected token")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_, _ = w.Write([]byte(`{"error":"Unauthorized","message":"Invalid or expired token"}`))
				return
			}

			ctx := auth.ActorToContext(r.Context(), actor)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
