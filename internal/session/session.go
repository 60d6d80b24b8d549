// session реализует пользовательскую сессию каталога: машину состояний
// представления (список -> материал -> тест), поиск/фильтрацию коллекции
// и панель отзывов открытого материала.
//
// Инварианты:
//   - в каждый момент активно ровно одно представление (tagged union):
//     List | Detail(material) | Assessment(assessment); одновременный выбор
//     материала и теста невозможен по построению;
//   - тест достижим только из карточки материала; отсутствие теста у
//     материала — штатный no-op, не ошибка;
//   - список отзывов принадлежит открытому материалу: при смене выбора
//     прежний список отбрасывается, опоздавшие ответы отсеиваются
//     stale-guard'ом (сверка поколения и id материала).
//
// Коллабораторы (источник каталога, бэкенд отзывов, реестр тестов,
// идентификация, приёмник уведомлений) передаются интерфейсами; все
// конструкции единственного писателя: сессию защищает собственный мьютекс.
package session

import (
	"context"
	"errors"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/service"
)

var (
	// ErrNoMaterial — материал с таким id отсутствует в загруженной коллекции.
	ErrNoMaterial = errors.New("material not found")
	// ErrNotInDetail — операция доступна только из карточки материала.
	ErrNotInDetail = errors.New("not in detail view")
)

// ViewKind — вид активного представления.
type ViewKind string

const (
	ViewList       ViewKind = "list"
	ViewDetail     ViewKind = "detail"
	ViewAssessment ViewKind = "assessment"
)

// NoticeKind — тип уведомления для пользователя.
type NoticeKind string

const (
	NoticeError   NoticeKind = "error"
	NoticeWarning NoticeKind = "warning"
	NoticeSuccess NoticeKind = "success"
)

// Notice — одно уведомление (toast) для слоя отображения.
type Notice struct {
	Kind    NoticeKind
	Message string
}

// CatalogSource — источник статического каталога.
type CatalogSource interface {
	ListMaterials(ctx context.Context) ([]models.Material, error)
}

// ReviewBackend — бэкенд отзывов открытого материала.
// Отсутствие отзывов — пустой список; ошибки маппятся на сервисные sentinel'ы.
type ReviewBackend interface {
	ReviewsByMaterial(ctx context.Context, materialID string) ([]models.Review, error)
	CreateReview(ctx context.Context, in service.CreateReviewInput) (*models.Review, error)
}

// AssessmentRegistry — реестр проверочных тестов.
// Отсутствие теста у материала — service.ErrNotFound.
type AssessmentRegistry interface {
	AssessmentByMaterial(ctx context.Context, materialID string) (*models.Assessment, error)
}

// IdentityProvider — идентификация пользователя в рамках запроса.
// Реализация транспортного слоя достаёт identity из контекста запроса.
type IdentityProvider interface {
	CurrentUser(ctx context.Context) (models.Identity, bool)
}

// Notifier — внешний приёмник уведомлений (fire-and-forget).
type Notifier interface {
	Notify(kind NoticeKind, message string)
}

// RecentRecorder — фиксация просмотра материала (best-effort).
type RecentRecorder interface {
	MarkViewed(ctx context.Context, userID uuid.UUID, materialID string) error
}

// Options — зависимости и настройки сессии.
type Options struct {
	Store    *Store
	Reviews  ReviewBackend
	Registry AssessmentRegistry
	Identity IdentityProvider
	// Notifier опционален: уведомления в любом случае копятся во внутреннем
	// буфере и отдаются снапшотом.
	Notifier Notifier
	// Recent опционален: nil отключает «недавно просмотренные».
	Recent RecentRecorder
	// LoadTimeout — дедлайн фоновой загрузки отзывов.
	LoadTimeout time.Duration
	// Now — источник времени для относительных дат (по умолчанию time.Now).
	Now func() time.Time
}

// reviewPaneState — состояние панели отзывов открытого материала.
type reviewPaneState string

const (
	paneIdle       reviewPaneState = "idle"
	paneLoading    reviewPaneState = "loading"
	paneLoaded     reviewPaneState = "loaded"
	paneLoadFailed reviewPaneState = "load_failed"
)

// reviewPane — панель отзывов: состояние загрузки, список и форма.
type reviewPane struct {
	state      reviewPaneState
	reviews    []models.Review
	formText   string
	formRating int32
	submitting bool
}

// Session — состояние представления одного пользователя портала.
type Session struct {
	mu   sync.Mutex
	opts Options

	view       ViewKind
	current    *models.Material
	assessment *models.Assessment

	query    string
	category string

	pane reviewPane
	// loadGen нумерует запуски загрузки отзывов: ответ применяется, только
	// если его поколение всё ещё актуально (stale-response guard).
	loadGen uint64

	// scrollSeq растёт на каждом переходе представления: слой отображения
	// сравнивает со своим последним значением и прокручивает страницу вверх.
	scrollSeq uint64

	notices []Notice
}

// New создаёт сессию в начальном состоянии (список, фильтры сброшены).
func New(opts Options) *Session {
	if opts.LoadTimeout <= 0 {
		opts.LoadTimeout = 5 * time.Second
	}

	if opts.Now == nil {
		opts.Now = time.Now
	}

	return &Session{
		opts:     opts,
		view:     ViewList,
		category: CategoryAll,
		pane:     reviewPane{state: paneIdle},
	}
}

// notify добавляет уведомление во внутренний буфер и пробрасывает его
// во внешний приёмник, если тот задан.
func (s *Session) notify(kind NoticeKind, message string) {
	s.notices = append(s.notices, Notice{Kind: kind, Message: message})

	if s.opts.Notifier != nil {
		s.opts.Notifier.Notify(kind, message)
	}
}

// SetFilter устанавливает поисковый запрос и категорию списка.
// Фильтры — transient-состояние списка, на выбор материала не влияют.
func (s *Session) SetFilter(query, category string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.query = query
	if strings.TrimSpace(category) == "" {
		category = CategoryAll
	}
	s.category = category
}

// SelectMaterial — переход List/Detail/Assessment -> Detail(material).
//
// Побочные эффекты:
//   - прежняя панель отзывов отбрасывается, запускается свежая загрузка;
//   - просмотр фиксируется в «недавних» (best-effort, для аутентифицированных);
//   - scrollSeq увеличивается (прокрутка вверх на стороне отображения).
func (s *Session) SelectMaterial(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	m, ok := s.opts.Store.MaterialByID(id)
	if !ok {
		return ErrNoMaterial
	}

	s.view = ViewDetail
	s.current = m
	s.assessment = nil
	s.scrollSeq++

	s.beginReviewLoad(ctx, m.ID)

	if s.opts.Recent != nil {
		if ident, ok := s.opts.Identity.CurrentUser(ctx); ok {
			// Просмотр фиксируется асинхронно и не влияет на переход.
			go func(userID uuid.UUID, materialID string) {
				rctx, cancel := context.WithTimeout(context.Background(), s.opts.LoadTimeout)
				defer cancel()

				if err := s.opts.Recent.MarkViewed(rctx, userID, materialID); err != nil {
					log.From(ctx).Warn("mark_viewed_failed",
						"material_id", materialID,
						"err", err,
					)
				}
			}(ident.UserID, m.ID)
		}
	}

	return nil
}

// Back — переход Detail/Assessment -> List (минуя промежуточные состояния).
// Выбор и панель отзывов сбрасываются; из списка — no-op без прокрутки.
func (s *Session) Back() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view == ViewList {
		return
	}

	s.view = ViewList
	s.current = nil
	s.assessment = nil
	s.resetPane()
	s.scrollSeq++
}

// TakeAssessment — переход Detail(material) -> Assessment(assessment).
//
// Тест достижим только из карточки материала. Если реестр не знает теста
// для текущего материала, переход — тихий no-op (состояние не меняется):
// тест есть не у каждого материала, это не ошибка.
func (s *Session) TakeAssessment(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewDetail || s.current == nil {
		return ErrNotInDetail
	}

	a, err := s.opts.Registry.AssessmentByMaterial(ctx, s.current.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			return nil
		}

		log.From(ctx).Error("assessment_lookup_failed",
			"material_id", s.current.ID,
			"err", err,
		)
		s.notify(NoticeError, "не удалось открыть тест")
		return nil
	}

	// Выбор материала и теста взаимоисключающие.
	s.view = ViewAssessment
	s.assessment = a
	s.current = nil
	s.resetPane()
	s.scrollSeq++

	return nil
}

// resetPane отбрасывает панель отзывов и инвалидирует незавершённые загрузки.
func (s *Session) resetPane() {
	s.loadGen++
	s.pane = reviewPane{state: paneIdle}
}
