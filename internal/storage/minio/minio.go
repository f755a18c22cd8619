// minio предоставляет реализацию storage.Files на базе MinIO/S3.
// minio.go — конструктор клиента: нормализует endpoint, настраивает
// Secure/creds и проверяет наличие целевого бакета.
// files.go — presigned PUT для фото объявлений и документов продавцов,
// подтверждение загрузок и presigned GET для просмотра документов.
package minio

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	mclient "github.com/minio/minio-go/v7"
	"github.com/minio/minio-go/v7/pkg/credentials"

	"github.com/ruff27/banglaghar/internal/config"
	"github.com/ruff27/banglaghar/internal/storage"
)

// FilesStorage — адаптер MinIO для объектов сервиса.
type FilesStorage struct {
	s3      config.S3Config
	uploads config.UploadsConfig
	client  *mclient.Client
}

// New создаёт и инициализирует клиент MinIO с fail-fast-проверкой
// доступности бакета.
func New(ctx context.Context, s3 config.S3Config, uploads config.UploadsConfig) (*FilesStorage, error) {
	const op = "storage/minio/New"

	endpoint := s3.Endpoint
	secure := strings.HasPrefix(endpoint, "https://")

	if u, err := url.Parse(endpoint); err == nil && u.Scheme != "" {
		endpoint = u.Host
		secure = u.Scheme == "https"
	}

	client, err := mclient.New(endpoint, &mclient.Options{
		Creds:  credentials.NewStaticV4(s3.RootUser, s3.RootPassword, ""),
		Secure: secure,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	exists, err := client.BucketExists(ctx, s3.Bucket)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if !exists {
		return nil, fmt.Errorf("%s: bucket %q does not exist", op, s3.Bucket)
	}

	return &FilesStorage{s3: s3, uploads: uploads, client: client}, nil
}

// Проверка выполнения контракта верхнего уровня.
var _ storage.Files = (*FilesStorage)(nil)
