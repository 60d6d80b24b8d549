package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/pribylovaa/go-learning-portal/internal/service"
	"github.com/pribylovaa/go-learning-portal/internal/session"
)

// Handlers агрегирует зависимости HTTP-слоя: сервис каталога и
// менеджер пользовательских сессий.
type Handlers struct {
	Service  *service.Service
	Sessions *session.Manager
	Now      func() time.Time
}

func New(svc *service.Service, sessions *session.Manager) *Handlers {
	return &Handlers{
		Service:  svc,
		Sessions: sessions,
		Now:      time.Now,
	}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errInvalidArgument — вспомогалка: локальная ошибка парсинга -> 400.
func errInvalidArgument() error {
	return fmt.Errorf("handlers: %w", service.ErrInvalidArgument)
}

// errUnauthenticated — запрос требует аутентификации.
func errUnauthenticated() error {
	return fmt.Errorf("handlers: %w", service.ErrUnauthenticated)
}

// errNotFound — запрошенный ресурс отсутствует.
func errNotFound() error {
	return fmt.Errorf("handlers: %w", service.ErrNotFound)
}
