package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// SaveMaterials сохраняет пачку материалов с upsert по id.
//
// Политика обновления: каталог статический и источник данных один (seed-файл),
// поэтому все отображаемые поля перезаписываются целиком значениями из пачки.
func (s *Storage) SaveMaterials(ctx context.Context, items []models.Material) error {
	const op = "storage/postgres/SaveMaterials"

	if len(items) == 0 {
		return nil
	}

	batch := &pgx.Batch{}
	for _, item := range items {
		batch.Queue(`
		INSERT INTO materials (id, title, description, type, category, duration, rating,
			thumbnail_key, thumbnail_url, video_url, author, content, position)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
		ON CONFLICT (id) DO UPDATE
		SET
		title = EXCLUDED.title,
		description = EXCLUDED.description,
		type = EXCLUDED.type,
		category = EXCLUDED.category,
		duration = EXCLUDED.duration,
		rating = EXCLUDED.rating,
		thumbnail_key = EXCLUDED.thumbnail_key,
		thumbnail_url = EXCLUDED.thumbnail_url,
		video_url = EXCLUDED.video_url,
		author = EXCLUDED.author,
		content = EXCLUDED.content,
		position = EXCLUDED.position
		`, item.ID, item.Title, item.Description, string(item.Type), item.Category,
			item.Duration, item.Rating, item.ThumbnailKey, item.ThumbnailURL,
			item.VideoURL, item.Author, item.Content, item.Position)
	}

	br := s.db.SendBatch(ctx, batch)
	defer br.Close()

	for i := 0; i < batch.Len(); i++ {
		if _, err := br.Exec(); err != nil {
			return fmt.Errorf("%s: batch item %d: %w", op, i, err)
		}
	}

	return nil
}

// ListMaterials возвращает полную коллекцию в каноническом порядке.
// Сортировка фиксирована: position ASC, id ASC.
func (s *Storage) ListMaterials(ctx context.Context) ([]models.Material, error) {
	const op = "storage/postgres/ListMaterials"

	rows, err := s.db.Query(ctx, `
	SELECT id, title, description, type, category, duration, rating,
		thumbnail_key, thumbnail_url, video_url, author, content, position
	FROM materials
	ORDER BY position ASC, id ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	var items []models.Material
	for rows.Next() {
		m, err := scanMaterial(rows)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, *m)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// MaterialByID возвращает материал по идентификатору.
// Если запись не найдена — storage.ErrNotFound.
func (s *Storage) MaterialByID(ctx context.Context, id string) (*models.Material, error) {
	const op = "storage/postgres/MaterialByID"

	rows, err := s.db.Query(ctx, `
	SELECT id, title, description, type, category, duration, rating,
		thumbnail_key, thumbnail_url, video_url, author, content, position
	FROM materials
	WHERE id = $1
	`, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer rows.Close()

	if !rows.Next() {
		if err := rows.Err(); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	m, err := scanMaterial(rows)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return m, nil
}

// scanMaterial читает одну строку выборки материалов.
func scanMaterial(rows pgx.Rows) (*models.Material, error) {
	var m models.Material
	var mtype string

	if err := rows.Scan(&m.ID, &m.Title, &m.Description, &mtype, &m.Category,
		&m.Duration, &m.Rating, &m.ThumbnailKey, &m.ThumbnailURL,
		&m.VideoURL, &m.Author, &m.Content, &m.Position); err != nil {
		return nil, err
	}

	m.Type = models.MaterialType(mtype)
	return &m, nil
}
