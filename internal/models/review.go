package models

import (
	"time"

	"github.com/google/uuid"
)

// Review — пользовательский отзыв (оценка + текст) к одному материалу.
//
// Важно:
//   - ID — числовой, назначается хранилищем при создании (клиент НЕ генерирует
//     идентификатор, что исключает коллизии);
//   - MaterialID — внешний ключ на Material.ID;
//   - Rating — целое 1..5;
//   - CreatedAt — метка создания (UTC), выставляется хранилищем;
//   - список отзывов материала упорядочен от новых к старым.
type Review struct {
	ID         int64
	MaterialID string
	UserID     uuid.UUID
	AuthorName string
	Text       string
	Rating     int32
	CreatedAt  time.Time
}
