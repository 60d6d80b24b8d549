package session

import (
	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/timefmt"
)

// EmptyKind — причина пустого списка (тексты заглушек различаются).
type EmptyKind string

const (
	// EmptyNone — список непуст.
	EmptyNone EmptyKind = ""
	// EmptyCatalog — коллекция загружена, но материалов нет вовсе.
	EmptyCatalog EmptyKind = "no_materials"
	// EmptyNoMatches — материалы есть, но под фильтры ничего не подошло.
	EmptyNoMatches EmptyKind = "no_matches"
)

// ReviewView — отзыв, подготовленный к отображению: дата публикации
// отформатирована относительно текущего момента.
type ReviewView struct {
	Review     models.Review
	CreatedAgo string
}

// ReviewForm — текущее содержимое формы отзыва.
type ReviewForm struct {
	Text       string
	Rating     int32
	Submitting bool
}

// Snapshot — согласованный срез состояния сессии для слоя отображения.
// Накопленные уведомления отдаются один раз и очищаются.
type Snapshot struct {
	View ViewKind

	// Список.
	Materials      []models.Material
	Query          string
	Category       string
	CatalogLoading bool
	CatalogError   string
	Empty          EmptyKind

	// Карточка материала.
	Material      *models.Material
	AverageRating float64
	Reviews       []ReviewView
	ReviewsState  string
	Form          ReviewForm

	// Тест.
	Assessment *models.Assessment

	// ScrollSeq растёт на каждом переходе представления: изменение значения —
	// сигнал прокрутить страницу вверх.
	ScrollSeq uint64

	Notices []Notice
}

// DrainNotices забирает накопленные уведомления, очищая буфер.
// Каждое уведомление доставляется ровно один раз: либо здесь,
// либо в очередном Snapshot.
func (s *Session) DrainNotices() []Notice {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := s.notices
	s.notices = nil

	return out
}

// Snapshot собирает срез состояния под блокировкой сессии.
func (s *Session) Snapshot() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	snap := Snapshot{
		View:           s.view,
		Query:          s.query,
		Category:       s.category,
		CatalogLoading: s.opts.Store.IsLoading(),
		CatalogError:   s.opts.Store.Err(),
		ScrollSeq:      s.scrollSeq,
		Notices:        s.notices,
	}
	s.notices = nil

	switch s.view {
	case ViewList:
		all := s.opts.Store.Materials()
		snap.Materials = FilterMaterials(all, s.query, s.category)

		if !snap.CatalogLoading && snap.CatalogError == "" && len(snap.Materials) == 0 {
			if len(all) == 0 {
				snap.Empty = EmptyCatalog
			} else {
				snap.Empty = EmptyNoMatches
			}
		}

	case ViewDetail:
		snap.Material = s.current
		snap.AverageRating = s.averageRating()
		snap.ReviewsState = string(s.pane.state)
		snap.Form = ReviewForm{
			Text:       s.pane.formText,
			Rating:     s.pane.formRating,
			Submitting: s.pane.submitting,
		}

		now := s.opts.Now()
		snap.Reviews = make([]ReviewView, 0, len(s.pane.reviews))
		for _, r := range s.pane.reviews {
			snap.Reviews = append(snap.Reviews, ReviewView{
				Review:     r,
				CreatedAgo: timefmt.Relative(now, r.CreatedAt),
			})
		}

	case ViewAssessment:
		snap.Assessment = s.assessment
	}

	return snap
}
