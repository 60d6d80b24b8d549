// storage определяет контракты доступа к хранилищам learning-portal.
//
// Реализации:
//   - postgres — каталог материалов и реестр тестов;
//   - mongo    — отзывы;
//   - redis    — «недавно просмотренные» материалы пользователя;
//   - minio    — обложки материалов (presigned URL).
package storage

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-learning-portal/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrInvalidArgument — неверные входные параметры запроса к хранилищу.
	ErrInvalidArgument = errors.New("invalid argument")
)

// MaterialsStorage описывает операции над сущностью models.Material.
type MaterialsStorage interface {
	// SaveMaterials сохраняет пачку материалов (upsert по id).
	// Вызывается источником статического каталога на старте процесса.
	SaveMaterials(ctx context.Context, items []models.Material) error

	// ListMaterials возвращает полную коллекцию в каноническом порядке
	// (position ASC). Пагинации нет: каталог статический и небольшой.
	ListMaterials(ctx context.Context) ([]models.Material, error)

	// MaterialByID возвращает материал по строковому идентификатору.
	// Если запись не найдена — ErrNotFound.
	MaterialByID(ctx context.Context, id string) (*models.Material, error)
}

// AssessmentsStorage описывает реестр проверочных тестов.
type AssessmentsStorage interface {
	// SaveAssessments сохраняет пачку тестов (upsert по id).
	SaveAssessments(ctx context.Context, items []models.Assessment) error

	// AssessmentByMaterialID возвращает тест, привязанный к материалу.
	// Тест есть не у каждого материала: отсутствие — ErrNotFound, вызывающая
	// сторона сама решает, ошибка это или нормальный случай.
	AssessmentByMaterialID(ctx context.Context, materialID string) (*models.Assessment, error)
}

// CatalogStorage задаёт контракт доступа к каталожному хранилищу.
type CatalogStorage interface {
	MaterialsStorage
	AssessmentsStorage
	Close()
}

// ReviewsStorage описывает операции над отзывами.
type ReviewsStorage interface {
	// CreateReview создаёт отзыв. Входной Review должен содержать
	// MaterialID, UserID, AuthorName, Text, Rating; ID и CreatedAt
	// назначаются хранилищем (числовой ID — из серверного счётчика).
	CreateReview(ctx context.Context, review models.Review) (*models.Review, error)

	// ListByMaterial возвращает все отзывы материала, новые первыми
	// (created_at DESC, id DESC).
	ListByMaterial(ctx context.Context, materialID string) ([]models.Review, error)

	// Close закрывает соединения/ресурсы хранилища.
	Close(ctx context.Context) error
}

// RecentStorage описывает список «недавно просмотренных» материалов.
type RecentStorage interface {
	// MarkViewed помещает материал в начало списка пользователя,
	// убирая дубликат и обрезая список до настроенного максимума.
	MarkViewed(ctx context.Context, userID uuid.UUID, materialID string) error

	// RecentIDs возвращает идентификаторы недавних материалов, новые первыми.
	RecentIDs(ctx context.Context, userID uuid.UUID) ([]string, error)

	// Close закрывает клиент.
	Close() error
}

// MediaStorage описывает выдачу обложек материалов.
type MediaStorage interface {
	// ThumbnailURL возвращает временный (presigned GET) URL для объекта key.
	// Если объект отсутствует — ErrNotFound.
	ThumbnailURL(ctx context.Context, key string) (string, error)
}
