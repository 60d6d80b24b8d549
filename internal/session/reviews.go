package session

import (
	"context"
	"strings"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/service"
)

// beginReviewLoad запускает фоновую загрузку отзывов материала.
//
// Каждый запуск получает новое поколение; ответ применяется только если
// к его приходу поколение не сменилось, открыт всё тот же материал и
// сессия всё ещё в карточке. Ответ, опоздавший к чужому материалу,
// молча отбрасывается.
//
// Вызывается под s.mu.
func (s *Session) beginReviewLoad(ctx context.Context, materialID string) {
	s.loadGen++
	gen := s.loadGen
	s.pane = reviewPane{state: paneLoading}

	// Загрузка переживает породивший её запрос: контекст отвязывается,
	// логгер запроса сохраняется.
	lctx := log.Into(context.Background(), log.From(ctx))

	go s.runReviewLoad(lctx, gen, materialID)
}

func (s *Session) runReviewLoad(ctx context.Context, gen uint64, materialID string) {
	ctx, cancel := context.WithTimeout(ctx, s.opts.LoadTimeout)
	defer cancel()

	reviews, err := s.opts.Reviews.ReviewsByMaterial(ctx, materialID)

	s.mu.Lock()
	defer s.mu.Unlock()

	// Stale-response guard: сверка поколения и принадлежности ответа.
	if gen != s.loadGen || s.view != ViewDetail || s.current == nil || s.current.ID != materialID {
		return
	}

	if err != nil {
		log.From(ctx).Error("reviews_load_failed",
			"material_id", materialID,
			"err", err,
		)

		s.pane.state = paneLoadFailed
		s.pane.reviews = nil
		s.notify(NoticeError, "не удалось загрузить отзывы")
		return
	}

	s.pane.state = paneLoaded
	s.pane.reviews = reviews
}

// ReloadReviews повторяет загрузку отзывов открытого материала
// (кнопка «повторить» после неудачной загрузки).
func (s *Session) ReloadReviews(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.view != ViewDetail || s.current == nil {
		return ErrNotInDetail
	}

	s.beginReviewLoad(ctx, s.current.ID)

	return nil
}

// SubmitReview отправляет отзыв к открытому материалу.
//
// Проверки выполняются строго по порядку, до первого нарушения, без
// обращения к бэкенду:
//  1. пользователь аутентифицирован;
//  2. оценка выбрана и лежит в допустимом диапазоне;
//  3. текст после обрезки пробелов непуст.
//
// Нарушение — предупреждение пользователю, форма сохраняется. Повторная
// отправка до завершения текущей блокируется. Успешный отзыв встаёт в
// начало списка без перезапроса, форма сбрасывается; при ошибке бэкенда
// форма остаётся заполненной для повтора.
func (s *Session) SubmitReview(ctx context.Context, text string, rating int32) error {
	s.mu.Lock()

	if s.view != ViewDetail || s.current == nil {
		s.mu.Unlock()
		return ErrNotInDetail
	}

	s.pane.formText = text
	s.pane.formRating = rating

	if s.pane.submitting {
		s.mu.Unlock()
		return nil
	}

	ident, ok := s.opts.Identity.CurrentUser(ctx)
	if !ok {
		s.notify(NoticeWarning, "войдите, чтобы оставить отзыв")
		s.mu.Unlock()
		return nil
	}

	if rating < service.MinRating || rating > service.MaxRating {
		s.notify(NoticeWarning, "выберите оценку")
		s.mu.Unlock()
		return nil
	}

	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		s.notify(NoticeWarning, "отзыв не может быть пустым")
		s.mu.Unlock()
		return nil
	}

	s.pane.submitting = true
	materialID := s.current.ID
	s.mu.Unlock()

	review, err := s.opts.Reviews.CreateReview(ctx, service.CreateReviewInput{
		MaterialID: materialID,
		UserID:     ident.UserID,
		AuthorName: ident.Username,
		Text:       trimmed,
		Rating:     rating,
	})

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pane.submitting = false

	if err != nil {
		log.From(ctx).Error("review_submit_failed",
			"material_id", materialID,
			"err", err,
		)
		s.notify(NoticeError, "не удалось отправить отзыв")
		return nil
	}

	// Пока держался запрос, пользователь мог уйти с карточки: ответ чужому
	// материалу не применяется.
	if s.view != ViewDetail || s.current == nil || s.current.ID != materialID {
		return nil
	}

	s.pane.reviews = append([]models.Review{*review}, s.pane.reviews...)
	if s.pane.state != paneLoaded {
		s.pane.state = paneLoaded
	}
	s.pane.formText = ""
	s.pane.formRating = 0
	s.notify(NoticeSuccess, "отзыв добавлен")

	return nil
}

// averageRating — средняя оценка по загруженным отзывам; пока отзывов нет,
// показывается базовый рейтинг материала из каталога.
func (s *Session) averageRating() float64 {
	if s.current == nil {
		return 0
	}

	if s.pane.state == paneLoaded && len(s.pane.reviews) > 0 {
		return service.AverageRating(s.pane.reviews, s.current.Rating)
	}

	return s.current.Rating
}
