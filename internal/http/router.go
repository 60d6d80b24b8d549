package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/pribylovaa/go-learning-portal/internal/http/handlers"
	"github.com/pribylovaa/go-learning-portal/internal/http/middleware"
	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/service"
	"github.com/pribylovaa/go-learning-portal/internal/session"
)

// Options — параметры сборки HTTP-роутера.
type Options struct {
	Logger     *slog.Logger
	Timeout    time.Duration
	SessionTTL time.Duration
	BasePath   string // например, "/api"; если пустой — роуты регистрируются на корне.
}

// NewRouter собирает http.Handler с chi и подключёнными middleware/роутами.
func NewRouter(svc *service.Service, sessions *session.Manager, opts Options) http.Handler {
	root := chi.NewRouter()

	// Middleware (внешний -> внутренний).
	root.Use(
		middleware.Recover(),                // безопасно ловим паники
		middleware.RequestID(),              // формируем/прокидываем X-Request-Id (до логирования!)
		middleware.Logging(opts.Logger),     // кладём request-scoped логгер в контекст и логируем
		middleware.Metrics(routePattern),    // счётчик и длительность запросов
		middleware.AuthBearer(svc),          // валидируем Bearer токен, identity — в контекст
		middleware.SessionID(opts.SessionTTL), // привязываем клиента к сессии представления
	)
	if opts.Timeout > 0 {
		root.Use(middleware.Timeout(opts.Timeout)) // общий дедлайн запроса
	}

	// Зависимости хендлеров.
	h := handlers.New(svc, sessions)

	// Регистрация маршрутов.
	if opts.BasePath != "" {
		sub := chi.NewRouter()
		registerRoutes(sub, h)
		root.Mount(opts.BasePath, sub)
		return root
	}

	registerRoutes(root, h)
	return root
}

// registerRoutes — единая точка регистрации всех REST-эндпойнтов.
func registerRoutes(r chi.Router, h *handlers.Handlers) {
	// каталог
	r.Get("/materials", h.ListMaterials)
	r.Get("/materials/{id}", h.GetMaterial)
	r.Get("/materials/{id}/assessment", h.GetAssessment)
	r.Get("/recent", h.Recent)

	// отзывы
	r.Get("/materials/{id}/reviews", h.ListReviews)
	r.Post("/materials/{id}/reviews", h.CreateReview)

	// сессия представления
	r.Get("/session/view", h.SessionView)
	r.Get("/session/notifications", h.SessionNotices)
	r.Post("/session/filter", h.SessionFilter)
	r.Post("/session/select/{id}", h.SessionSelect)
	r.Post("/session/back", h.SessionBack)
	r.Post("/session/assessment", h.SessionAssessment)
	r.Post("/session/reviews", h.SessionSubmitReview)
	r.Post("/session/reviews/reload", h.SessionReloadReviews)
}

// routePattern приводит путь запроса к шаблону chi-маршрута
// ("/materials/{id}"), чтобы метрики не раздувались значениями параметров.
func routePattern(r *http.Request) string {
	if rctx := chi.RouteContext(r.Context()); rctx != nil {
		if p := rctx.RoutePattern(); p != "" {
			return p
		}
	}

	return r.URL.Path
}

// ContextIdentity реализует session.IdentityProvider поверх контекста запроса:
// identity кладёт туда middleware.AuthBearer.
type ContextIdentity struct{}

func (ContextIdentity) CurrentUser(ctx context.Context) (models.Identity, bool) {
	return middleware.IdentityFrom(ctx)
}
