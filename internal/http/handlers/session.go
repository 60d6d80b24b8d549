package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-learning-portal/internal/errors"
	"github.com/pribylovaa/go-learning-portal/internal/http/middleware"
	"github.com/pribylovaa/go-learning-portal/internal/session"
)

// currentSession достаёт сессию клиента по ключу из контекста.
func (h *Handlers) currentSession(r *http.Request) (*session.Session, bool) {
	key, ok := middleware.SessionIDFrom(r.Context())
	if !ok {
		return nil, false
	}

	return h.Sessions.Session(key), true
}

// SessionView — GET /session/view.
// Срез состояния сессии для отрисовки; накопленные уведомления
// отдаются в нём же и очищаются.
func (h *Handlers) SessionView(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// SessionNotices — GET /session/notifications.
// Забирает накопленные уведомления, не трогая остальное состояние;
// каждое уведомление доставляется ровно один раз.
func (h *Handlers) SessionNotices(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Notices []noticeView `json:"notices"`
	}{Notices: noticesFromSession(s.DrainNotices())})
}

// sessionFilterRequest — тело POST /session/filter.
type sessionFilterRequest struct {
	Query    string `json:"query"`
	Category string `json:"category"`
}

// SessionFilter — POST /session/filter.
// Меняет поисковый запрос и категорию списка.
func (h *Handlers) SessionFilter(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in sessionFilterRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	s.SetFilter(in.Query, in.Category)
	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// SessionSelect — POST /session/select/{id}.
// Переход к карточке материала; запускает фоновую загрузку отзывов.
func (h *Handlers) SessionSelect(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := s.SelectMaterial(r.Context(), id); err != nil {
		apierrors.WriteError(w, r, errNotFound())
		return
	}

	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// SessionBack — POST /session/back.
// Возврат к списку из карточки или теста; из списка — no-op.
func (h *Handlers) SessionBack(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	s.Back()
	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// SessionAssessment — POST /session/assessment.
// Переход к тесту открытого материала; отсутствие теста — тихий no-op.
func (h *Handlers) SessionAssessment(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := s.TakeAssessment(r.Context()); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// SessionReloadReviews — POST /session/reviews/reload.
// Повтор неудавшейся загрузки отзывов открытого материала.
func (h *Handlers) SessionReloadReviews(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := s.ReloadReviews(r.Context()); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}

// sessionReviewRequest — тело POST /session/reviews.
type sessionReviewRequest struct {
	Text   string `json:"text"`
	Rating int32  `json:"rating"`
}

// SessionSubmitReview — POST /session/reviews.
// Отправка отзыва к открытому материалу через сессию: нарушения валидации
// не являются ошибками HTTP — они приходят уведомлениями в снапшоте.
func (h *Handlers) SessionSubmitReview(w http.ResponseWriter, r *http.Request) {
	s, ok := h.currentSession(r)
	if !ok {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	var in sessionReviewRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	if err := s.SubmitReview(r.Context(), in.Text, in.Rating); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	writeJSON(w, http.StatusOK, snapshotFromSession(s.Snapshot()))
}
