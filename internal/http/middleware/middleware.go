package middleware

import (
	"context"
	"net/http"

	"github.com/pribylovaa/go-learning-portal/internal/models"
)

// Middleware — стандартный net/http мидлвар.
type Middleware func(http.Handler) http.Handler

// Chain применяет мидлвары к обработчику в порядке их перечисления.
func Chain(h http.Handler, mws ...Middleware) http.Handler {
	for i := len(mws) - 1; i >= 0; i-- {
		h = mws[i](h)
	}
	return h
}

type ctxKey string

const (
	// CtxRequestID — ключ контекста с X-Request-Id.
	CtxRequestID ctxKey = "request_id"
	// CtxIdentity — ключ контекста с identity аутентифицированного пользователя.
	CtxIdentity ctxKey = "identity"
	// CtxSessionID — ключ контекста с ключом пользовательской сессии.
	CtxSessionID ctxKey = "session_id"
)

// IdentityFrom достаёт identity пользователя из контекста запроса.
// Второе значение false — запрос анонимный.
func IdentityFrom(ctx context.Context) (models.Identity, bool) {
	ident, ok := ctx.Value(CtxIdentity).(models.Identity)
	return ident, ok
}

// SessionIDFrom достаёт ключ сессии из контекста запроса.
func SessionIDFrom(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(CtxSessionID).(string)
	return id, ok && id != ""
}

// statusWriter оборачивает ResponseWriter, чтобы перехватить статус и размер.
type statusWriter struct {
	http.ResponseWriter
	status int
	count  int
}

func (w *statusWriter) WriteHeader(code int) {
	w.status = code
	w.ResponseWriter.WriteHeader(code)
}

func (w *statusWriter) Write(p []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}

	count, err := w.ResponseWriter.Write(p)
	w.count += count
	return count, err
}

func newStatusWriter(w http.ResponseWriter) *statusWriter {
	return &statusWriter{ResponseWriter: w}
}
