// redis предоставляет реализацию storage.RecentStorage на базе Redis.
//
// Список «недавно просмотренных» хранится как Redis List по ключу
// "recent:<user_id>": новые материалы в голове, дубликаты убираются,
// длина ограничена настроенным максимумом, ключ живёт с TTL.
package redis

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

const defaultPrefix = "recent:"

// RecentStorage — адаптер Redis для списка недавних материалов.
type RecentStorage struct {
	rdb    *redis.Client
	prefix string
	max    int64
	ttl    time.Duration
}

// New создаёт клиент Redis из URL (например, redis://:pass@host:6379/0)
// и проверяет соединение fail-fast.
func New(redisURL string, max int64, ttl time.Duration) (*RecentStorage, error) {
	const op = "storage/redis/New"

	opt, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	rdb := redis.NewClient(opt)

	if err := rdb.Ping(context.Background()).Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &RecentStorage{rdb: rdb, prefix: defaultPrefix, max: max, ttl: ttl}, nil
}

// Close закрывает клиент Redis.
func (s *RecentStorage) Close() error {
	return s.rdb.Close()
}

func (s *RecentStorage) key(userID uuid.UUID) string {
	return s.prefix + userID.String()
}

// MarkViewed помещает материал в голову списка пользователя.
// Дубликат удаляется (LREM), список ограничивается (LTRIM), TTL обновляется.
func (s *RecentStorage) MarkViewed(ctx context.Context, userID uuid.UUID, materialID string) error {
	const op = "storage/redis/MarkViewed"

	if userID == uuid.Nil || strings.TrimSpace(materialID) == "" {
		return fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	key := s.key(userID)

	pipe := s.rdb.TxPipeline()
	pipe.LRem(ctx, key, 0, materialID)
	pipe.LPush(ctx, key, materialID)
	pipe.LTrim(ctx, key, 0, s.max-1)
	if s.ttl > 0 {
		pipe.Expire(ctx, key, s.ttl)
	}

	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	return nil
}

// RecentIDs возвращает идентификаторы недавних материалов, новые первыми.
// Отсутствие ключа — пустой список, не ошибка.
func (s *RecentStorage) RecentIDs(ctx context.Context, userID uuid.UUID) ([]string, error) {
	const op = "storage/redis/RecentIDs"

	if userID == uuid.Nil {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	ids, err := s.rdb.LRange(ctx, s.key(userID), 0, s.max-1).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return ids, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.RecentStorage = (*RecentStorage)(nil)
