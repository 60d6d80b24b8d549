package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// SaveAssessments сохраняет пачку тестов с upsert по id.
// Тест привязан к материалу отношением 1:1 (material_id UNIQUE): попытка
// привязать второй тест к тому же материалу — storage.ErrConflict, ссылка
// на несуществующий материал — storage.ErrInvalidArgument.
func (s *Storage) SaveAssessments(ctx context.Context, items []models.Assessment) error {
	const op = "storage/postgres/SaveAssessments"

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
		INSERT INTO assessments (id, material_id, title, question_count, passing_score, estimated_time)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (id) DO UPDATE
		SET
		material_id = EXCLUDED.material_id,
		title = EXCLUDED.title,
		question_count = EXCLUDED.question_count,
		passing_score = EXCLUDED.passing_score,
		estimated_time = EXCLUDED.estimated_time
		`, item.ID, item.MaterialID, item.Title, item.QuestionCount,
			item.PassingScore, item.EstimatedTime)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) {
				switch pgErr.Code {
				case pgerrcode.UniqueViolation:
					return fmt.Errorf("%s: batch item %d: %w", op, i, storage.ErrConflict)
				case pgerrcode.ForeignKeyViolation:
					return fmt.Errorf("%s: batch item %d: %w", op, i, storage.ErrInvalidArgument)
				}
			}

			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}

	return nil
}

// AssessmentByMaterialID возвращает тест, привязанный к материалу.
// Отсутствие теста — нормальный случай (не у каждого материала он есть):
// возвращается storage.ErrNotFound.
func (s *Storage) AssessmentByMaterialID(ctx context.Context, materialID string) (*models.Assessment, error) {
	const op = "storage/postgres/AssessmentByMaterialID"

	var a models.Assessment
	err := s.db.QueryRow(ctx, `
	SELECT id, material_id, title, question_count, passing_score, estimated_time
	FROM assessments
	WHERE material_id = $1
	`, materialID).Scan(&a.ID, &a.MaterialID, &a.Title, &a.QuestionCount,
		&a.PassingScore, &a.EstimatedTime)

	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &a, nil
}
