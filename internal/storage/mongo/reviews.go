package mongo

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/pribylovaa/go-learning-portal/internal/models"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// parseUserID разбирает сохранённый UUID пользователя; пустая строка
// допустима для исторических документов и даёт uuid.Nil.
func parseUserID(s string) (uuid.UUID, error) {
	if s == "" {
		return uuid.Nil, nil
	}

	return uuid.Parse(s)
}

// reviewDoc — схема документа отзыва.
// _id — числовой, из серверного счётчика (см. nextReviewID): клиент никогда
// не генерирует идентификатор, что исключает коллизии.
type reviewDoc struct {
	ID         int64     `bson:"_id"`
	MaterialID string    `bson:"material_id"`
	UserID     string    `bson:"user_id"`
	AuthorName string    `bson:"author_name"`
	Text       string    `bson:"text"`
	Rating     int32     `bson:"rating"`
	CreatedAt  time.Time `bson:"created_at"`
}

func (d reviewDoc) toModel() (models.Review, error) {
	uid, err := parseUserID(d.UserID)
	if err != nil {
		return models.Review{}, err
	}

	return models.Review{
		ID:         d.ID,
		MaterialID: d.MaterialID,
		UserID:     uid,
		AuthorName: d.AuthorName,
		Text:       d.Text,
		Rating:     d.Rating,
		CreatedAt:  d.CreatedAt,
	}, nil
}

// nextReviewID атомарно выдаёт следующий числовой идентификатор отзыва
// из документа-счётчика (findOneAndUpdate c $inc и upsert).
func (m *Mongo) nextReviewID(ctx context.Context) (int64, error) {
	const op = "storage/mongo/nextReviewID"

	var out struct {
		Seq int64 `bson:"seq"`
	}

	err := m.counters.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: reviewsCollection}},
		bson.D{{Key: "$inc", Value: bson.D{{Key: "seq", Value: int64(1)}}}},
		options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After),
	).Decode(&out)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	return out.Seq, nil
}

// CreateReview создаёт отзыв:
//   - ID назначается из серверного счётчика;
//   - CreatedAt выставляется текущим временем (UTC, миллисекунды — точность
//     mongo DateTime).
func (m *Mongo) CreateReview(ctx context.Context, review models.Review) (*models.Review, error) {
	const op = "storage/mongo/CreateReview"

	if strings.TrimSpace(review.MaterialID) == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	id, err := m.nextReviewID(ctx)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC().Truncate(time.Millisecond)

	doc := reviewDoc{
		ID:         id,
		MaterialID: review.MaterialID,
		UserID:     review.UserID.String(),
		AuthorName: review.AuthorName,
		Text:       review.Text,
		Rating:     review.Rating,
		CreatedAt:  now,
	}

	if _, err := m.reviews.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	review.ID = id
	review.CreatedAt = now
	return &review, nil
}

// ListByMaterial возвращает все отзывы материала, новые первыми
// (created_at DESC, _id DESC). Пагинации нет: список отзывов одного
// материала намеренно отдаётся целиком.
func (m *Mongo) ListByMaterial(ctx context.Context, materialID string) ([]models.Review, error) {
	const op = "storage/mongo/ListByMaterial"

	if strings.TrimSpace(materialID) == "" {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	cur, err := m.reviews.Find(ctx,
		bson.D{{Key: "material_id", Value: materialID}},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}, {Key: "_id", Value: -1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var items []models.Review
	for cur.Next(ctx) {
		var doc reviewDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("%s: decode: %w", op, err)
		}

		rev, err := doc.toModel()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		items = append(items, rev)
	}

	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("%s: cursor: %w", op, err)
	}

	return items, nil
}
