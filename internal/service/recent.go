package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/pkg/log"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// MarkViewed отмечает материал как просмотренный пользователем
// (для списка «недавно просмотренных»).
//
// Валидация:
//   - userID обязателен (uuid.Nil -> ErrUnauthenticated);
//   - materialID не должен быть пустым и должен существовать в каталоге.
//
// Ошибки:
//   - ErrNotFound — материал отсутствует;
//   - ErrInternal — иные ошибки хранилища.
func (s *Service) MarkViewed(ctx context.Context, userID uuid.UUID, materialID string) error {
	const op = "service/recent/MarkViewed"

	materialID = strings.TrimSpace(materialID)
	lg := log.From(ctx).With("op", op, "user_id", userID.String(), "material_id", materialID)

	if userID == uuid.Nil {
		lg.Warn("unauthenticated")
		return fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	if materialID == "" {
		lg.Warn("invalid argument: empty material_id")
		return fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	if _, err := s.catalog.MaterialByID(ctx, materialID); err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			lg.Warn("material not found")
			return fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on MaterialByID", "err", err)
			return fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	if err := s.recent.MarkViewed(ctx, userID, materialID); err != nil {
		lg.Error("storage error on MarkViewed", "err", err)
		return fmt.Errorf("%s: %w", op, ErrInternal)
	}

	return nil
}

// RecentMaterials — материалы, которые пользователь недавно открывал,
// новые первыми. Идентификаторы, выпавшие из каталога, тихо пропускаются.
//
// Ошибки:
//   - ErrUnauthenticated — uuid.Nil;
//   - ErrInternal — ошибки хранилища.
func (s *Service) RecentMaterials(ctx context.Context, userID uuid.UUID) ([]models.Material, error) {
	const op = "service/recent/RecentMaterials"

	lg := log.From(ctx).With("op", op, "user_id", userID.String())

	if userID == uuid.Nil {
		lg.Warn("unauthenticated")
		return nil, fmt.Errorf("%s: %w", op, ErrUnauthenticated)
	}

	ids, err := s.recent.RecentIDs(ctx, userID)
	if err != nil {
		lg.Error("storage error on RecentIDs", "err", err)
		return nil, fmt.Errorf("%s: %w", op, ErrInternal)
	}

	items := make([]models.Material, 0, len(ids))
	for _, id := range ids {
		m, err := s.catalog.MaterialByID(ctx, id)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				continue
			}

			lg.Error("storage error on MaterialByID", "id", id, "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}

		items = append(items, *m)
	}

	s.resolveThumbnails(ctx, items)

	return items, nil
}
