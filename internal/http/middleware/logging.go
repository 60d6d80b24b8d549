package middleware

import (
	"log/slog"
	"net/http"
	"time"

	logctx "github.com/pribylovaa/go-learning-portal/internal/pkg/log"
)

// Logging кладёт request-scoped логгер (с request_id) в контекст запроса и
// по завершении обработки пишет одну итоговую запись: метод, путь, статус,
// длительность и размер ответа. Ставится после RequestID, чтобы идентификатор
// уже лежал в контексте.
func Logging(l *slog.Logger) Middleware {
	if l == nil {
		l = slog.Default()
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			reqLogger := l
			if rid := requestID(r); rid != "" {
				reqLogger = reqLogger.With(slog.String("request_id", rid))
			}
			r = r.WithContext(logctx.Into(r.Context(), reqLogger))

			sw := newStatusWriter(w)
			started := time.Now()

			next.ServeHTTP(sw, r)

			logctx.From(r.Context()).LogAttrs(r.Context(), slog.LevelInfo, "http",
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", sw.status),
				slog.Duration("dur", time.Since(started)),
				slog.Int("bytes", sw.count),
			)
		})
	}
}

// requestID достаёт идентификатор запроса: из контекста (положил RequestID),
// с откатом на заголовок, если цепочка собрана иначе.
func requestID(r *http.Request) string {
	if rid, ok := r.Context().Value(CtxRequestID).(string); ok && rid != "" {
		return rid
	}

	return r.Header.Get("X-Request-Id")
}
