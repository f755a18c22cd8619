package minio

import (
	"context"
	"errors"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/google/uuid"
	mclient "github.com/minio/minio-go/v7"

	"github.com/ruff27/banglaghar/internal/storage"
)

// extByContentType — расширение файла по типу содержимого.
func extByContentType(contentType string) string {
	switch contentType {
	case "image/jpeg":
		return ".jpg"
	case "image/png":
		return ".png"
	case "image/webp":
		return ".webp"
	case "application/pdf":
		return ".pdf"
	default:
		return ""
	}
}

// isAllowedContentType проверяет, что тип содержимого входит в allow-list.
func isAllowedContentType(allow []string, contentType string) bool {
	for _, a := range allow {
		if a == contentType {
			return true
		}
	}

	return false
}

// presignPut — общая часть генерации presigned PUT.
func (s *FilesStorage) presignPut(ctx context.Context, key, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	u, err := s.client.PresignedPutObject(ctx, s.s3.Bucket, key, s.s3.PresignTTL)
	if err != nil {
		return nil, err
	}

	return &storage.UploadInfo{
		UploadURL: u.String(),
		Key:       key,
		Expires:   s.s3.PresignTTL,
		RequiredHeader: map[string]string{
			"Content-Type":   contentType,
			"Content-Length": fmt.Sprintf("%d", contentLength),
		},
	}, nil
}

// statUploaded проверяет факт загрузки: наличие объекта, размер и тип.
func (s *FilesStorage) statUploaded(ctx context.Context, key string, maxSize int64, allow []string) error {
	objInfo, err := s.client.StatObject(ctx, s.s3.Bucket, key, mclient.StatObjectOptions{})
	if err != nil {
		errResp := mclient.ToErrorResponse(err)
		if errResp.Code == "NoSuchKey" || errResp.StatusCode == 404 {
			return storage.ErrNotFoundObject
		}

		return err
	}

	if objInfo.Size <= 0 || objInfo.Size > maxSize {
		return storage.ErrInvalidArgument
	}

	if ct := objInfo.ContentType; ct != "" && !isAllowedContentType(allow, ct) {
		return storage.ErrInvalidArgument
	}

	return nil
}

// publicURL строит публичный URL объекта: через PublicURL конфига либо
// напрямую через endpoint и имя бакета.
func (s *FilesStorage) publicURL(key string) string {
	if s.s3.PublicURL != "" {
		return strings.TrimRight(s.s3.PublicURL, "/") + "/" + key
	}

	return strings.TrimRight(s.s3.Endpoint, "/") + "/" + s.s3.Bucket + "/" + key
}

// PhotoUploadURL генерирует presigned PUT для фото объявления.
// Ключ: "listings/<listingID>/<uuid>.<ext>".
func (s *FilesStorage) PhotoUploadURL(ctx context.Context, listingID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/PhotoUploadURL"

	if contentLength <= 0 || contentLength > s.uploads.PhotoMaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.uploads.PhotoAllowedContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	key := path.Join("listings", listingID, uuid.NewString()+extByContentType(contentType))

	info, err := s.presignPut(ctx, key, contentType, contentLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// CheckPhotoUpload подтверждает загрузку фото и возвращает публичный URL.
func (s *FilesStorage) CheckPhotoUpload(ctx context.Context, listingID, key string) (string, error) {
	const op = "storage/minio/CheckPhotoUpload"

	prefix := "listings/" + listingID + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", storage.ErrInvalidArgument
	}

	if err := s.statUploaded(ctx, key, s.uploads.PhotoMaxSizeBytes, s.uploads.PhotoAllowedContentTypes); err != nil {
		if errors.Is(err, storage.ErrNotFoundObject) || errors.Is(err, storage.ErrInvalidArgument) {
			return "", err
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return s.publicURL(key), nil
}

// GovtIDUploadURL генерирует presigned PUT для документа продавца.
// Ключ: "govt_ids/<cognitoSub>/<uuid>.<ext>".
func (s *FilesStorage) GovtIDUploadURL(ctx context.Context, cognitoSub, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "storage/minio/GovtIDUploadURL"

	if contentLength <= 0 || contentLength > s.uploads.GovtIDMaxSizeBytes {
		return nil, storage.ErrInvalidArgument
	}

	if !isAllowedContentType(s.uploads.GovtIDContentTypes, contentType) {
		return nil, storage.ErrInvalidArgument
	}

	key := path.Join("govt_ids", cognitoSub, uuid.NewString()+extByContentType(contentType))

	info, err := s.presignPut(ctx, key, contentType, contentLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return info, nil
}

// CheckGovtIDUpload подтверждает загрузку документа, возвращает
// финальный ключ объекта. Публичный URL не строится: доступ к документам
// только через короткоживущие presigned GET.
func (s *FilesStorage) CheckGovtIDUpload(ctx context.Context, cognitoSub, key string) (string, error) {
	const op = "storage/minio/CheckGovtIDUpload"

	prefix := "govt_ids/" + cognitoSub + "/"
	if !strings.HasPrefix(key, prefix) {
		return "", storage.ErrInvalidArgument
	}

	if err := s.statUploaded(ctx, key, s.uploads.GovtIDMaxSizeBytes, s.uploads.GovtIDContentTypes); err != nil {
		if errors.Is(err, storage.ErrNotFoundObject) || errors.Is(err, storage.ErrInvalidArgument) {
			return "", err
		}

		return "", fmt.Errorf("%s: %w", op, err)
	}

	return key, nil
}

// GovtIDViewURL выдаёт короткоживущий presigned GET на документ.
func (s *FilesStorage) GovtIDViewURL(ctx context.Context, key string) (string, error) {
	const op = "storage/minio/GovtIDViewURL"

	if !strings.HasPrefix(key, "govt_ids/") {
		return "", storage.ErrInvalidArgument
	}

	ttl := s.s3.PresignTTL
	if ttl > 5*time.Minute {
		ttl = 5 * time.Minute
	}

	u, err := s.client.PresignedGetObject(ctx, s.s3.Bucket, key, ttl, nil)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return u.String(), nil
}
