package storage

import (
	"context"
	"errors"
	"time"
)

var (
	// ErrNotFoundObject — объект (ключ) отсутствует в бакете.
	ErrNotFoundObject = errors.New("object not found")
	// ErrInvalidArgument — нарушены ограничения запроса (тип/размер/ключ).
	ErrInvalidArgument = errors.New("invalid argument")
)

// UploadInfo — информация для клиента о presigned PUT загрузке.
//   - UploadURL: конечный URL для PUT-запроса;
//   - Key: ключ будущего объекта в бакете;
//   - Expires: время жизни подписи;
//   - RequiredHeader: заголовки, которые клиент ОБЯЗАН передать при PUT.
type UploadInfo struct {
	UploadURL      string
	Key            string
	Expires        time.Duration
	RequiredHeader map[string]string
}

// Files — контракт генерации presigned URL и подтверждения загрузок.
type Files interface {
	// PhotoUploadURL генерирует presigned PUT для фото объявления.
	// Внутри — валидация contentType и contentLength.
	PhotoUploadURL(ctx context.Context, listingID, contentType string, contentLength int64) (*UploadInfo, error)

	// CheckPhotoUpload проверяет факт загрузки фото по ключу (наличие,
	// тип, размер) и возвращает публичный URL объекта.
	CheckPhotoUpload(ctx context.Context, listingID, key string) (publicURL string, err error)

	// GovtIDUploadURL генерирует presigned PUT для документа продавца.
	GovtIDUploadURL(ctx context.Context, cognitoSub, contentType string, contentLength int64) (*UploadInfo, error)

	// CheckGovtIDUpload проверяет факт загрузки документа и возвращает
	// финальный ключ объекта.
	CheckGovtIDUpload(ctx context.Context, cognitoSub, key string) (objectKey string, err error)

	// GovtIDViewURL выдаёт короткоживущий presigned GET на документ.
	GovtIDViewURL(ctx context.Context, key string) (string, error)
}
