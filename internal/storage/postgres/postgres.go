// postgres предоставляет реализацию storage.CatalogStorage на базе PostgreSQL.
package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// Storage — адаптер PostgreSQL для каталога материалов и реестра тестов.
type Storage struct {
	db *pgxpool.Pool
}

// New создаёт и инициализирует пул соединений к PostgreSQL,
// проверяет доступность БД и гарантирует наличие схемы.
func New(ctx context.Context, dbURL string) (*Storage, error) {
	const op = "storage/postgres/New"

	config, err := pgxpool.ParseConfig(dbURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	db, err := pgxpool.NewWithConfig(ctx, config)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if err := db.Ping(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	s := &Storage{db: db}

	if err := s.ensureSchema(ctx); err != nil {
		db.Close()
		return nil, err
	}

	return s, nil
}

// Close закрывает пул соединений.
// Должен вызываться при остановке приложения.
func (s *Storage) Close() {
	s.db.Close()
}

// ensureSchema создаёт таблицы каталога, если их ещё нет.
// Каталог статический (перезаливается из seed-файла на старте),
// поэтому отдельного механизма миграций не требуется.
func (s *Storage) ensureSchema(ctx context.Context) error {
	const op = "storage/postgres/ensureSchema"

	const ddl = `
	CREATE TABLE IF NOT EXISTS materials (
		id            text PRIMARY KEY,
		title         text NOT NULL,
		description   text NOT NULL DEFAULT '',
		type          text NOT NULL,
		category      text NOT NULL DEFAULT '',
		duration      text NOT NULL DEFAULT '',
		rating        double precision NOT NULL DEFAULT 0,
		thumbnail_key text NOT NULL DEFAULT '',
		thumbnail_url text NOT NULL DEFAULT '',
		video_url     text NOT NULL DEFAULT '',
		author        text NOT NULL DEFAULT '',
		content       text NOT NULL DEFAULT '',
		position      integer NOT NULL
	);

	CREATE TABLE IF NOT EXISTS assessments (
		id             text PRIMARY KEY,
		material_id    text NOT NULL UNIQUE REFERENCES materials(id) ON DELETE CASCADE,
		title          text NOT NULL,
		question_count integer NOT NULL DEFAULT 0,
		passing_score  integer NOT NULL DEFAULT 0,
		estimated_time text NOT NULL DEFAULT ''
	);

	CREATE INDEX IF NOT EXISTS materials_position_idx ON materials (position);
	`

	if _, err := s.db.Exec(ctx, ddl); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.CatalogStorage = (*Storage)(nil)
