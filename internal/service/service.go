// service содержит бизнес-логику learning-portal.
package service

import (
	"errors"

	"github.com/pribylovaa/go-learning-portal/internal/config"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — неверные входные параметры запроса к сервису.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrUnauthenticated — операция требует аутентифицированного пользователя.
	ErrUnauthenticated = errors.New("unauthenticated")
	// ErrInvalidToken — access-токен не прошёл проверку подписи/клеймов.
	ErrInvalidToken = errors.New("invalid token")
	// ErrTokenExpired — срок действия access-токена истёк.
	ErrTokenExpired = errors.New("token expired")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
	// ErrInternal — внутренняя ошибка (хранилище/БД/контекст и т.д.).
	ErrInternal = errors.New("internal")
)

// Service — бизнес-логика портала поверх контрактов хранилищ.
// media может быть nil: объектное хранилище обложек опционально,
// тогда материалы отдаются с ThumbnailURL «как есть».
type Service struct {
	catalog storage.CatalogStorage
	reviews storage.ReviewsStorage
	recent  storage.RecentStorage
	media   storage.MediaStorage
	cfg     config.Config
}

// New создаёт новый экземпляр Service.
func New(catalog storage.CatalogStorage, reviews storage.ReviewsStorage, recent storage.RecentStorage, media storage.MediaStorage, cfg config.Config) *Service {
	return &Service{
		catalog: catalog,
		reviews: reviews,
		recent:  recent,
		media:   media,
		cfg:     cfg,
	}
}
