// minio предоставляет реализацию storage.MediaStorage на базе MinIO/S3.
//
// Обложки материалов загружаются в бакет вне портала (контент-пайплайном);
// портал только превращает ключ объекта в временный presigned GET URL.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/pribylovaa/go-learning-portal/internal/config"
	"github.com/pribylovaa/go-learning-portal/internal/storage"
)

// MediaStorage — адаптер MinIO для обложек материалов.
type MediaStorage struct {
	client     *mclient.Client
	bucket     string
	presignTTL time.Duration
}

// New создаёт и инициализирует клиент MinIO.
// Делает endpoint-перенастройку (убирает схему), подбирает Secure по схеме
// и выполняет fail-fast-проверку доступности бакета.
func New(ctx context.Context, cfg config.S3Config) (*MediaStorage, error) {
	const op = "storage/minio/New"

	endpoint := cfg.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(cfg.RootUser, cfg.RootPassword, ""),
		Secure: secure,
	})

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, cfg.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, cfg.Bucket)
	}

	return &MediaStorage{client: client, bucket: cfg.Bucket, presignTTL: cfg.PresignTTL}, nil
}

// ThumbnailURL возвращает presigned GET URL для объекта key.
// Проверяет существование объекта: отсутствие — storage.ErrNotFound.
func (s *MediaStorage) ThumbnailURL(ctx context.Context, key string) (string, error) {
	const op = "storage/minio/ThumbnailURL"

	key = strings.TrimSpace(key)
	if key == "" {
		return "", fmt.Errorf("%s: %w", op, storage.ErrInvalidArgument)
	}

	if _, err := s.client.StatObject(ctx, s.bucket, key, mclient.StatObjectOptions{}); err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return "", fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	u, err := s.client.PresignedGetObject(ctx, s.bucket, key, s.presignTTL, url.Values{})
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.MediaStorage = (*MediaStorage)(nil)
