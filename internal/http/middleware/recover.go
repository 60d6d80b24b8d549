package middleware

import (
	"fmt"
	"log/slog"
	"net/http"

	apierrors "github.com/pribylovaa/go-learning-portal/internal/errors"
	logctx "github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/service"
)

// Recover гасит панику обработчика: факт логируется вместе с маршрутом,
// клиенту уходит унифицированный 500/internal без деталей. Ставится внешним
// мидлваром, чтобы накрывать всю цепочку.
func Recover() Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				if rec := recover(); rec != nil {
					logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelError, "panic_recovered",
						slog.String("method", r.Method),
						slog.String("path", r.URL.Path),
						slog.Any("reason", rec),
					)

					apierrors.WriteError(w, r, fmt.Errorf("middleware: panic: %w", service.ErrInternal))
				}
			}()

			next.ServeHTTP(w, r)
		})
	}
}
