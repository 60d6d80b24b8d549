package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
)

// TokenParser валидирует access-токен внешней подсистемы аутентификации
// и извлекает identity пользователя. Реализация — service.Service.
type TokenParser interface {
	ParseAccessToken(raw string) (models.Identity, error)
}

// AuthBearer извлекает Bearer-токен из Authorization, валидирует его и
// кладёт identity пользователя в контекст по ключу CtxIdentity.
//
// Аутентификация опциональна: отсутствие заголовка оставляет запрос
// анонимным; битый или просроченный токен тоже не валит запрос целиком —
// identity просто не появляется в контексте, решение принимает хендлер.
func AuthBearer(p TokenParser) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			auth := r.Header.Get("Authorization")

			const prefix = "Bearer "
			if strings.HasPrefix(auth, prefix) && len(auth) > len(prefix) {
				token := strings.TrimSpace(auth[len(prefix):])

				if token != "" {
					ident, err := p.ParseAccessToken(token)
					if err != nil {
						log.From(r.Context()).Warn("invalid_access_token", "err", err)
					} else {
						ctx := context.WithValue(r.Context(), CtxIdentity, ident)
						r = r.WithContext(ctx)
					}
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}
