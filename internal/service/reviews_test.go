package service

// Тесты сервисного слоя отзывов (internal/service/reviews.go).
//
//  Проверяем:
//  - порядок валидации CreateReview: аутентификация -> оценка -> текст
//    (до первого нарушения, без обращения к хранилищу);
//  - маппинг ошибок storage -> service (NotFound / Conflict / InvalidArgument / Internal);
//  - нормализацию входа (TrimSpace текста/имени) и формируемые аргументы вызова storage;
//  - happy-path CreateReview/ReviewsByMaterial;
//  - агрегацию AverageRating (округление до одной цифры, fallback).
//
// Подготовка окружения:
//   # 1) Сгенерировать моки интерфейсов хранилищ:
//   mockgen -source=./internal/storage/storage.go -destination=./mocks/storage.go -package=mocks
//
//   # 2) Запустить тесты:
//   go test ./internal/service -v -race -count=1

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
	"github.com/pribylovaa/go-learning-portal/mocks"
)

// newServiceWithMocks — поднимает сервис с моками хранилищ.
func newServiceWithMocks(t *testing.T) (*Service, *mocks.MockCatalogStorage, *mocks.MockReviewsStorage, *mocks.MockRecentStorage, *gomock.Controller) {
	t.Helper()
	ctrl := gomock.NewController(t)
	mc := mocks.NewMockCatalogStorage(ctrl)
	mr := mocks.NewMockReviewsStorage(ctrl)
	mrec := mocks.NewMockRecentStorage(ctrl)
	s := &Service{catalog: mc, reviews: mr, recent: mrec}
	return s, mc, mr, mrec, ctrl
}

// mustMaterial — быстрый хелпер для сборки материала.
func mustMaterial(id string) *models.Material {
	return &models.Material{
		ID:       id,
		Title:    "Двоичное дерево поиска",
		Type:     models.MaterialArticle,
		Category: "algorithms",
		Rating:   4.8,
	}
}

// mustReview — быстрый хелпер для сборки отзыва.
func mustReview(id int64, materialID string, rating int32) models.Review {
	return models.Review{
		ID:         id,
		MaterialID: materialID,
		UserID:     uuid.New(),
		AuthorName: "user",
		Text:       "ok",
		Rating:     rating,
		CreatedAt:  time.Now().UTC(),
	}
}

// Валидация выполняется строго по порядку: неаутентифицированная отправка
// не должна «проваливаться» в проверку оценки, невыбранная оценка — в
// проверку текста. Хранилище при нарушениях не вызывается вовсе.
func TestService_CreateReview_ValidationOrder(t *testing.T) {
	s, _, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	// 1) нет пользователя: оценка и текст тоже невалидны, но ответ — Unauthenticated.
	_, err := s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.Nil, AuthorName: "u", Text: "   ", Rating: 0,
	})
	require.ErrorIs(t, err, ErrUnauthenticated)

	// 2) пользователь есть, оценка не выбрана (0): текст всё ещё пуст, но ответ — про оценку.
	_, err = s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.New(), AuthorName: "u", Text: "   ", Rating: 0,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// оценка вне диапазона.
	_, err = s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.New(), AuthorName: "u", Text: "ok", Rating: 6,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// 3) текст -> TrimSpace -> пусто.
	_, err = s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.New(), AuthorName: "u", Text: "  \n\t ", Rating: 4,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// имя автора -> TrimSpace -> пусто.
	_, err = s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.New(), AuthorName: "   ", Text: "ok", Rating: 4,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)

	// пустой material_id.
	_, err = s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: " ", UserID: uuid.New(), AuthorName: "u", Text: "ok", Rating: 4,
	})
	require.ErrorIs(t, err, ErrInvalidArgument)
}

// Отзыв к несуществующему материалу отклоняется до записи.
func TestService_CreateReview_MaterialNotFound(t *testing.T) {
	s, mc, _, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	mc.EXPECT().
		MaterialByID(gomock.Any(), "ghost").
		Return(nil, storage.ErrNotFound)

	_, err := s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "ghost", UserID: uuid.New(), AuthorName: "u", Text: "ok", Rating: 4,
	})
	require.ErrorIs(t, err, ErrNotFound)
}

// Маппинг: ошибки уровня хранилища должны транслироваться в сервисные.
func TestService_CreateReview_StorageErrors(t *testing.T) {
	s, mc, mr, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	in := CreateReviewInput{
		MaterialID: "binary-tree", UserID: uuid.New(), AuthorName: "u", Text: "ok", Rating: 4,
	}

	// Conflict
	mc.EXPECT().MaterialByID(gomock.Any(), in.MaterialID).Return(mustMaterial(in.MaterialID), nil)
	mr.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, storage.ErrConflict)
	_, err := s.CreateReview(context.Background(), in)
	require.ErrorIs(t, err, ErrConflict)

	// InvalidArgument
	mc.EXPECT().MaterialByID(gomock.Any(), in.MaterialID).Return(mustMaterial(in.MaterialID), nil)
	mr.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, storage.ErrInvalidArgument)
	_, err = s.CreateReview(context.Background(), in)
	require.ErrorIs(t, err, ErrInvalidArgument)

	// Internal (любая иная)
	mc.EXPECT().MaterialByID(gomock.Any(), in.MaterialID).Return(mustMaterial(in.MaterialID), nil)
	mr.EXPECT().CreateReview(gomock.Any(), gomock.Any()).Return(nil, errors.New("db down"))
	_, err = s.CreateReview(context.Background(), in)
	require.ErrorIs(t, err, ErrInternal)
}

// Happy-path: текст и имя нормализуются, ID/CreatedAt назначает хранилище.
func TestService_CreateReview_OK(t *testing.T) {
	s, mc, mr, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	userID := uuid.New()

	mc.EXPECT().
		MaterialByID(gomock.Any(), "binary-tree").
		Return(mustMaterial("binary-tree"), nil)

	mr.EXPECT().
		CreateReview(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, r models.Review) (*models.Review, error) {
			require.Equal(t, "binary-tree", r.MaterialID)
			require.Equal(t, userID, r.UserID)
			require.Equal(t, "user", r.AuthorName)
			require.Equal(t, "отличный разбор", r.Text)
			require.EqualValues(t, 5, r.Rating)
			// ID и CreatedAt входа игнорируются, их назначает хранилище.
			require.Zero(t, r.ID)
			require.True(t, r.CreatedAt.IsZero())

			r.ID = 42
			r.CreatedAt = time.Now().UTC()
			return &r, nil
		})

	got, err := s.CreateReview(context.Background(), CreateReviewInput{
		MaterialID: "binary-tree",
		UserID:     userID,
		AuthorName: "  user  ",
		Text:       "  отличный разбор  ",
		Rating:     5,
	})
	require.NoError(t, err)
	require.EqualValues(t, 42, got.ID)
	require.False(t, got.CreatedAt.IsZero())
}

// ReviewsByMaterial: пустой id -> InvalidArgument; пустой список — не ошибка.
func TestService_ReviewsByMaterial(t *testing.T) {
	s, _, mr, _, ctrl := newServiceWithMocks(t)
	defer ctrl.Finish()

	_, err := s.ReviewsByMaterial(context.Background(), "   ")
	require.ErrorIs(t, err, ErrInvalidArgument)

	mr.EXPECT().ListByMaterial(gomock.Any(), "binary-tree").Return([]models.Review{}, nil)
	got, err := s.ReviewsByMaterial(context.Background(), "binary-tree")
	require.NoError(t, err)
	require.Empty(t, got)

	mr.EXPECT().ListByMaterial(gomock.Any(), "binary-tree").Return(nil, errors.New("db down"))
	_, err = s.ReviewsByMaterial(context.Background(), "binary-tree")
	require.ErrorIs(t, err, ErrInternal)
}

// AverageRating: среднее округляется до одной цифры после запятой,
// при пустом списке возвращается базовая оценка материала.
func TestAverageRating(t *testing.T) {
	reviews := []models.Review{
		mustReview(1, "m", 5),
		mustReview(2, "m", 3),
		mustReview(3, "m", 4),
	}
	require.InDelta(t, 4.0, AverageRating(reviews, 2.5), 1e-9)

	// (5+4)/2 = 4.5
	pair := []models.Review{
		mustReview(1, "m", 5),
		mustReview(2, "m", 4),
	}
	require.InDelta(t, 4.5, AverageRating(pair, 0), 1e-9)

	// (5+4+4)/3 = 4.333... -> 4.3
	mixed := []models.Review{
		mustReview(1, "m", 5),
		mustReview(2, "m", 4),
		mustReview(3, "m", 4),
	}
	require.InDelta(t, 4.3, AverageRating(mixed, 0), 1e-9)

	// пусто -> fallback
	require.InDelta(t, 4.8, AverageRating(nil, 4.8), 1e-9)
}
