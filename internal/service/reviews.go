package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// Граничные значения оценки отзыва.
const (
	MinRating = 1
	MaxRating = 5
)

// CreateReviewInput — создание отзыва к материалу.
// Всегда обязательны: MaterialID, UserID, AuthorName, Text, Rating.
type CreateReviewInput struct {
	MaterialID string
	UserID     uuid.UUID
	AuthorName string
	Text       string
	Rating     int32
}

// CreateReview — бизнес-операция создания отзыва.
//
// Валидация (в этом порядке):
//   - UserID обязателен (uuid.Nil -> ErrUnauthenticated);
//   - Rating должен лежать в [1, 5] (ноль = «оценка не выбрана») -> ErrInvalidArgument;
//   - Text и AuthorName нормализуются (TrimSpace) и не должны быть пустыми;
//   - материал должен существовать -> ErrNotFound.
//
// Поведение/ошибки:
//   - идентификатор и метка времени назначаются хранилищем, клиентские
//     значения игнорируются;
//   - ErrInternal — прочие ошибки хранилища/БД/контекста.
func (s *Service) CreateReview(ctx context.Context, in CreateReviewInput) (*models.Review, error) {
	const op = "service/reviews/CreateReview"

	lg := log.From(ctx).With(
		"op", op,
		"material_id", in.MaterialID,
		"user_id", in.UserID.String(),
	)

	// Аутентификация проверяется первой: неавторизованная отправка не должна
	// «проваливаться» в проверки оценки/текста.
	if in.UserID == uuid.Nil {
		lg.Warn("unauthenticated review submission")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if in.Rating < MinRating || in.Rating > MaxRating {
		lg.Warn("invalid argument: rating out of range", "rating", in.Rating)
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.Text = strings.TrimSpace(in.Text)
	if in.Text == "" {
		lg.Warn("invalid argument: empty text")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.AuthorName = strings.TrimSpace(in.AuthorName)
	if in.AuthorName == "" {
		lg.Warn("invalid argument: empty author name")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	in.MaterialID = strings.TrimSpace(in.MaterialID)
	if in.MaterialID == "" {
		lg.Warn("invalid argument: empty material_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	// Отзыв принадлежит ровно одному материалу: ссылка проверяется до записи.
	if _, err := s.catalog.MaterialByID(ctx, in.MaterialID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("material not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on MaterialByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	review := models.Review{
		MaterialID: in.MaterialID,
		UserID:     in.UserID,
		AuthorName: in.AuthorName,
		Text:       in.Text,
		Rating:     in.Rating,
	}

	result, err := s.reviews.CreateReview(ctx, review)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrConflict):
			lg.Warn("conflict")
			return nil, fmt.Errorf("%s: %w", op, ErrConflict)
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument from storage")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on CreateReview", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return result, nil
}

// ReviewsByMaterial — все отзывы материала, новые первыми.
//
// Валидация:
//   - materialID не должен быть пустым.
//
// Поведение/ошибки:
//   - отсутствие отзывов — пустой список, не ошибка;
//   - ErrInternal — ошибки хранилища.
func (s *Service) ReviewsByMaterial(ctx context.Context, materialID string) ([]models.Review, error) {
	const op = "service/reviews/ReviewsByMaterial"

	materialID = strings.TrimSpace(materialID)
	lg := log.From(ctx).With("op", op, "material_id", materialID)

	if materialID == "" {
		lg.Warn("invalid argument: empty material_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	items, err := s.reviews.ListByMaterial(ctx, materialID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrInvalidArgument):
			lg.Warn("invalid argument from storage")
			return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
		default:
			lg.Error("storage error on ListByMaterial", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return items, nil
}

// AverageRating — средняя оценка по загруженным отзывам, одна цифра после
// запятой; при отсутствии отзывов — базовая «авторская» оценка материала.
// Значение всегда вычисляется, нигде не хранится.
func AverageRating(reviews []models.Review, fallback float64) float64 {
	if len(reviews) == 0 {
		return fallback
	}

	var sum int64
	for _, r := range reviews {
		sum += int64(r.Rating)
	}

	avg := float64(sum) / float64(len(reviews))
	return math.Round(avg*10) / 10
}
