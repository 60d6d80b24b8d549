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

// AssessmentByMaterial — тест, привязанный к материалу.
//
// Валидация:
//   - materialID не должен быть пустым.
//
// Поведение/ошибки:
//   - ErrNotFound — у материала нет теста; для вызывающей стороны это
//     штатный случай (переход к тесту просто не предлагается/не выполняется);
//   - ErrInternal — иные ошибки хранилища.
func (s *Service) AssessmentByMaterial(ctx context.Context, materialID string) (*models.Assessment, error) {
	const op = "service/assessments/AssessmentByMaterial"

	materialID = strings.TrimSpace(materialID)
	lg := log.From(ctx).With("op", op, "material_id", materialID)

	if materialID == "" {
		lg.Warn("invalid argument: empty material_id")
		return nil, fmt.Errorf("%s: %w", op, ErrInvalidArgument)
	}

	a, err := s.catalog.AssessmentByMaterialID(ctx, materialID)
	if err != nil {
		switch {
		case errors.Is(err, storage.ErrNotFound):
			// Не логируем как warn: тест есть не у каждого материала.
			return nil, fmt.Errorf("%s: %w", op, ErrNotFound)
		default:
			lg.Error("storage error on AssessmentByMaterialID", "err", err)
			return nil, fmt.Errorf("%s: %w", op, ErrInternal)
		}
	}

	return a, nil
}
