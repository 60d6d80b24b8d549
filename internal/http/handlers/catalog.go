package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/pribylovaa/go-learning-portal/internal/errors"
	"github.com/pribylovaa/go-learning-portal/internal/http/middleware"
	"github.com/pribylovaa/go-learning-portal/internal/session"
)

// ListMaterials — GET /materials?query=&category=.
// Отдаёт коллекцию каталога, отфильтрованную по запросу и категории,
// вместе с настроенным списком категорий для плашек фильтра.
func (h *Handlers) ListMaterials(w http.ResponseWriter, r *http.Request) {
	items, err := h.Service.ListMaterials(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	query := r.URL.Query().Get("query")
	category := r.URL.Query().Get("category")
	items = session.FilterMaterials(items, query, category)

	writeJSON(w, http.StatusOK, struct {
		Materials  []materialView `json:"materials"`
		Categories []string       `json:"categories,omitempty"`
	}{
		Materials:  materialsFromModels(items),
		Categories: h.Service.Categories(),
	})
}

// GetMaterial — GET /materials/{id}.
func (h *Handlers) GetMaterial(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	m, err := h.Service.MaterialByID(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, materialFromModel(*m))
}

// GetAssessment — GET /materials/{id}/assessment.
// Отсутствие теста у материала — 404/not_found.
func (h *Handlers) GetAssessment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		apierrors.WriteError(w, r, errInvalidArgument())
		return
	}

	a, err := h.Service.AssessmentByMaterial(r.Context(), id)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, assessmentFromModel(*a))
}

// Recent — GET /recent.
// Недавно просмотренные материалы аутентифицированного пользователя,
// от самого свежего к самому старому.
func (h *Handlers) Recent(w http.ResponseWriter, r *http.Request) {
	ident, ok := middleware.IdentityFrom(r.Context())
	if !ok {
		apierrors.WriteError(w, r, errUnauthenticated())
		return
	}

	items, err := h.Service.RecentMaterials(r.Context(), ident.UserID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, struct {
		Materials []materialView `json:"materials"`
	}{Materials: materialsFromModels(items)})
}
