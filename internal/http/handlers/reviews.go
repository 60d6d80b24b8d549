package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-learning-portal/internal/errors"
	"github.com/pribylovaa/go-learning-portal/internal/http/middleware"
	"github.com/pribylovaa/go-learning-portal/internal/service"
)

// ListReviews — GET /materials/{id}/reviews.
// Отзывы материала от самого свежего к самому старому.
func (h *Handlers) ListReviews(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	reviews, err := h.Service.ReviewsByMaterial(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	now := h.Now()
	avg := 0.0
	if m, err := h.Service.MaterialByID(r.Context(), id); err == nil {
		avg = service.AverageRating(reviews, m.Rating)
	}

	writeJSON(w, http.StatusOK, struct {
		Reviews       []reviewView `json:"reviews"`
		AverageRating float64      `json:"average_rating"`
	}{
		Reviews:       reviewsFromModels(now, reviews),
		AverageRating: avg,
	})
}

// createReviewRequest — тело POST /materials/{id}/reviews.
type createReviewRequest struct {
	Text   string `json:"text"`
	Rating int32  `json:"rating"`
}

// CreateReview — POST /materials/{id}/reviews.
// Требует аутентификации; автор берётся из токена, не из тела.
func (h *Handlers) CreateReview(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	var in createReviewRequest
	if err := decodeStrict(r, &in); err != nil {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	review, err := h.Service.CreateReview(r.Context(), service.CreateReviewInput{
		MaterialID: id,
		UserID:     ident.UserID,
		AuthorName: ident.Username,
		Text:       in.Text,
		Rating:     in.Rating,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, reviewFromModel(h.Now(), *review))
}
