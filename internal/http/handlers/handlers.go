// Package handlers содержит REST-обработчики сервиса.
package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/ruff27/banglaghar/internal/service"
	"github.com/ruff27/banglaghar/internal/storage"
)

// Handlers агрегирует зависимости (сервисный слой).
type Handlers struct {
	svc *service.Service
}

func New(svc *service.Service) *Handlers {
	return &Handlers{svc: svc}
}

// writeJSON — единый ответ JSON с нужным Content-Type.
// Ошибки выводим через apierrors.WriteError.
func writeJSON(w http.ResponseWriter, status int, value any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(value)
}

// decodeStrict — строгий JSON-декодер: запрещаем неизвестные поля.
func decodeStrict(r *http.Request, value any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(value)
}

// errBadBody — локальная ошибка разбора тела -> invalid_argument.
func errBadBody() error {
	return service.ErrInvalidArgument
}

// presignResponse — ответ на запрос presigned-загрузки.
type presignResponse struct {
	UploadURL      string            `json:"upload_url"`
	Key            string            `json:"key"`
	ExpiresSeconds uint32            `json:"expires_seconds"`
	RequiredHeader map[string]string `json:"required_headers"`
}

func presignFromInfo(info *storage.UploadInfo) presignResponse {
	return presignResponse{
		UploadURL:      info.UploadURL,
		Key:            info.Key,
		ExpiresSeconds: uint32(info.Expires.Seconds()),
		RequiredHeader: info.RequiredHeader,
	}
}
