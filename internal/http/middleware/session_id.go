package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// sessionCookie — имя cookie с ключом пользовательской сессии.
const sessionCookie = "portal_session"

// SessionID обеспечивает наличие ключа сессии:
//  1. читает cookie portal_session, если она валидна (UUID);
//  2. иначе выдаёт новый ключ и устанавливает cookie;
//  3. кладёт ключ в контекст по ключу CtxSessionID.
//
// Ключ сессии анонимен и не заменяет аутентификацию: он лишь привязывает
// состояние представления (выбор материала, фильтры, панель отзывов)
// к конкретному клиенту.
func SessionID(ttl time.Duration) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			var id string

			if c, err := r.Cookie(sessionCookie); err == nil {
				if parsed, err := uuid.Parse(c.Value); err == nil {
					id = parsed.String()
				}
			}

			if id == "" {
				id = uuid.NewString()
				http.SetCookie(w, &http.Cookie{
					Name:     sessionCookie,
					Value:    id,
					Path:     "/",
					MaxAge:   int(ttl / time.Second),
					HttpOnly: true,
					SameSite: http.SameSiteLaxMode,
				})
			}

			ctx := context.WithValue(r.Context(), CtxSessionID, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
