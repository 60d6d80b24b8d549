package handlers

import (
	"time"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/timefmt"
	"github.com/pribylovaa/go-learning-portal/internal/session"
)

// materialView — материал каталога в ответе API.
type materialView struct {
	ID           string  `json:"id"`
	Title        string  `json:"title"`
	Description  string  `json:"description"`
	Type         string  `json:"type"`
	Category     string  `json:"category"`
	Duration     string  `json:"duration,omitempty"`
	Rating       float64 `json:"rating"`
	ThumbnailURL string  `json:"thumbnail_url,omitempty"`
	VideoURL     string  `json:"video_url,omitempty"`
	Author       string  `json:"author,omitempty"`
	Content      string  `json:"content,omitempty"`
}

func materialFromModel(m models.Material) materialView {
	return materialView{
		ID:           m.ID,
		Title:        m.Title,
		Description:  m.Description,
		Type:         string(m.Type),
		Category:     m.Category,
		Duration:     m.Duration,
		Rating:       m.Rating,
		ThumbnailURL: m.ThumbnailURL,
		VideoURL:     m.VideoURL,
		Author:       m.Author,
		Content:      m.Content,
	}
}

func materialsFromModels(items []models.Material) []materialView {
	out := make([]materialView, 0, len(items))
	for _, m := range items {
		out = append(out, materialFromModel(m))
	}
	return out
}

// reviewView — отзыв в ответе API: машинное время плюс готовая
// относительная метка для отображения.
type reviewView struct {
	ID         int64  `json:"id"`
	MaterialID string `json:"material_id"`
	Author     string `json:"author"`
	Text       string `json:"text"`
	Rating     int32  `json:"rating"`
	CreatedAt  string `json:"created_at"`
	CreatedAgo string `json:"created_ago"`
}

func reviewFromModel(now time.Time, r models.Review) reviewView {
	return reviewView{
		ID:         r.ID,
		MaterialID: r.MaterialID,
		Author:     r.AuthorName,
		Text:       r.Text,
		Rating:     r.Rating,
		CreatedAt:  r.CreatedAt.UTC().Format(time.RFC3339),
		CreatedAgo: timefmt.Relative(now, r.CreatedAt),
	}
}

func reviewsFromModels(now time.Time, items []models.Review) []reviewView {
	out := make([]reviewView, 0, len(items))
	for _, r := range items {
		out = append(out, reviewFromModel(now, r))
	}
	return out
}

// assessmentView — проверочный тест в ответе API.
type assessmentView struct {
	ID            string `json:"id"`
	MaterialID    string `json:"material_id"`
	Title         string `json:"title"`
	QuestionCount int32  `json:"question_count"`
	PassingScore  int32  `json:"passing_score"`
	EstimatedTime string `json:"estimated_time,omitempty"`
}

func assessmentFromModel(a models.Assessment) assessmentView {
	return assessmentView{
		ID:            a.ID,
		MaterialID:    a.MaterialID,
		Title:         a.Title,
		QuestionCount: a.QuestionCount,
		PassingScore:  a.PassingScore,
		EstimatedTime: a.EstimatedTime,
	}
}

// noticeView — уведомление в ответе API.
type noticeView struct {
	Kind    string `json:"kind"`
	Message string `json:"message"`
}

func noticesFromSession(items []session.Notice) []noticeView {
	out := make([]noticeView, 0, len(items))
	for _, n := range items {
		out = append(out, noticeView{Kind: string(n.Kind), Message: n.Message})
	}
	return out
}

// snapshotView — срез состояния сессии в ответе API.
type snapshotView struct {
	View string `json:"view"`

	Materials      []materialView `json:"materials,omitempty"`
	Query          string         `json:"query"`
	Category       string         `json:"category"`
	CatalogLoading bool           `json:"catalog_loading"`
	CatalogError   string         `json:"catalog_error,omitempty"`
	Empty          string         `json:"empty,omitempty"`

	Material      *materialView `json:"material,omitempty"`
	AverageRating float64       `json:"average_rating,omitempty"`
	Reviews       []reviewView  `json:"reviews,omitempty"`
	ReviewsState  string        `json:"reviews_state,omitempty"`
	FormText      string        `json:"form_text,omitempty"`
	FormRating    int32         `json:"form_rating,omitempty"`
	Submitting    bool          `json:"submitting,omitempty"`

	Assessment *assessmentView `json:"assessment,omitempty"`

	ScrollSeq uint64       `json:"scroll_seq"`
	Notices   []noticeView `json:"notices,omitempty"`
}

func snapshotFromSession(snap session.Snapshot) snapshotView {
	out := snapshotView{
		View:           string(snap.View),
		Query:          snap.Query,
		Category:       snap.Category,
		CatalogLoading: snap.CatalogLoading,
		CatalogError:   snap.CatalogError,
		Empty:          string(snap.Empty),
		AverageRating:  snap.AverageRating,
		ReviewsState:   snap.ReviewsState,
		FormText:       snap.Form.Text,
		FormRating:     snap.Form.Rating,
		Submitting:     snap.Form.Submitting,
		ScrollSeq:      snap.ScrollSeq,
		Notices:        noticesFromSession(snap.Notices),
	}

	if len(snap.Materials) > 0 {
		out.Materials = materialsFromModels(snap.Materials)
	}

	if snap.Material != nil {
		mv := materialFromModel(*snap.Material)
		out.Material = &mv
	}

	if len(snap.Reviews) > 0 {
		out.Reviews = make([]reviewView, 0, len(snap.Reviews))
		for _, rv := range snap.Reviews {
			v := reviewFromModel(time.Time{}, rv.Review)
			v.CreatedAgo = rv.CreatedAgo
			out.Reviews = append(out.Reviews, v)
		}
	}

	if snap.Assessment != nil {
		av := assessmentFromModel(*snap.Assessment)
		out.Assessment = &av
	}

	return out
}
