package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// ListMaterials возвращает полную коллекцию каталога в каноническом порядке.
// Пагинации нет: каталог статический. Обложки с ключом в S3 резолвятся
// в presigned URL; сбой резолва одного объекта не роняет выдачу.
//
// Ошибки:
//   - ErrInternal — ошибки хранилища.
func (s *Service) ListMaterials(ctx context.Context) ([]models.Material, error) {
	const op = "service/catalog/ListMaterials"

	lg := log.From(ctx).With("op", op)

	items, err := s.catalog.ListMaterials(ctx)
	if err != nil {
		lg.Error("storage error on ListMaterials", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.resolveThumbnails(ctx, items)

	return items, nil
}

// MaterialByID возвращает материал по идентификатору.
//
// Ошибки:
//   - ErrInvalidArgument — пустой id;
//   - ErrNotFound — материал отсутствует;
//   - ErrInternal — иные ошибки хранилища.
func (s *Service) MaterialByID(ctx context.Context, id string) (*models.Material, error) {
	const op = "service/catalog/MaterialByID"

	id = strings.TrimSpace(id)
	lg := log.From(ctx).With("op", op, "id", id)

	if id == "" {
		lg.Warn("invalid argument: empty id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	m, err := s.catalog.MaterialByID(ctx, id)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("material not found")
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on MaterialByID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	one := []models.Material{*m}
	s.resolveThumbnails(ctx, one)

	return &one[0], nil
}

// SearchMaterials возвращает материалы, в title/description/category которых
// встречается подстрока query (регистронезависимо). Пустой запрос — полная
// коллекция. Порядок коллекции сохраняется.
//
// Ошибки:
//   - ErrInternal — ошибки хранилища.
func (s *Service) SearchMaterials(ctx context.Context, query string) ([]models.Material, error) {
	const op = "service/catalog/SearchMaterials"

	lg := log.From(ctx).With("op", op)

	items, err := s.catalog.ListMaterials(ctx)
	if err != nil {
		lg.Error("storage error on SearchMaterials", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	s.resolveThumbnails(ctx, items)

	return MatchMaterials(items, query), nil
}

// Categories возвращает настроенный список категорий фильтра для плашек UI.
// Список ручной и с категориями материалов не сверяется: материал с
// категорией вне списка остаётся фильтруемым, просто без собственной плашки.
func (s *Service) Categories() []string {
	return s.cfg.Catalog.Categories
}

// MatchMaterials — чистая функция подстрочного поиска по каталогу:
// регистронезависимое вхождение query в title, description или category.
// Пустой (после TrimSpace) запрос возвращает вход без фильтрации.
func MatchMaterials(items []models.Material, query string) []models.Material {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return items
	}

	out := make([]models.Material, 0, len(items))
	for _, m := range items {
		if strings.Contains(strings.ToLower(m.Title), q) ||
			strings.Contains(strings.ToLower(m.Description), q) ||
			strings.Contains(strings.ToLower(m.Category), q) {
			out = append(out, m)
		}
	}

	return out
}

// resolveThumbnails подменяет ThumbnailURL на presigned URL для материалов
// с ключом объекта в S3. При выключенном S3 — no-op; сбой одного объекта
// логируется и не влияет на остальные.
func (s *Service) resolveThumbnails(ctx context.Context, items []models.Material) {
	if s.media == nil {
		return
	}

	lg := log.From(ctx)

	for i := range items {
		if items[i].ThumbnailKey == "" {
			continue
		}

		url, err := s.media.ThumbnailURL(ctx, items[i].ThumbnailKey)
		if err != nil {
			lg.Warn("thumbnail resolve failed",
				"material_id", items[i].ID,
				"err", err,
			)
			continue
		}

		items[i].ThumbnailURL = url
	}
}
