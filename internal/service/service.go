// Package service реализует бизнес-операции маркетплейса: объявления
// с геокодированием, витрина, профили и модерация, чат, избранное и
// генерация описаний. Транспортный слой работает только с этим пакетом.
package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/jonboulle/clockwork"

	"github.com/ruff27/banglaghar/internal/ai"
	"github.com/ruff27/banglaghar/internal/geo"
	"github.com/ruff27/banglaghar/internal/notify"
	"github.com/ruff27/banglaghar/internal/storage"
)

var (
	// ErrNotFound — сущность не найдена (включая битые hex-идентификаторы).
	ErrNotFound = errors.New("not found")
	// ErrInvalidArgument — входные данные не прошли проверку.
	ErrInvalidArgument = errors.New("invalid argument")
	// ErrPermissionDenied — операция запрещена для этого пользователя.
	ErrPermissionDenied = errors.New("permission denied")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
)

// GeocodeResolver — контракт геокодера для сервисного слоя.
// nil-результат означает «координата не получена» (fail-open).
type GeocodeResolver interface {
	Resolve(ctx context.Context, addr geo.Address) *geo.Result
}

// Deps — зависимости сервиса.
type Deps struct {
	Listings  storage.Listings
	Profiles  storage.Profiles
	Chat      storage.Chat
	Wishlists storage.Wishlists
	Files     storage.Files
	Resolver  GeocodeResolver
	Notifier  notify.Notifier
	Describer ai.Describer
	Clock     clockwork.Clock

	FeaturedLimit int64
}

// Service — фасад бизнес-логики.
type Service struct {
	listings  storage.Listings
	profiles  storage.Profiles
	chat      storage.Chat
	wishlists storage.Wishlists
	files     storage.Files
	resolver  GeocodeResolver
	notifier  notify.Notifier
	describer ai.Describer
	clock     clockwork.Clock

	featuredLimit int64
}

// New создаёт сервис. Clock по умолчанию — настоящие часы.
func New(deps Deps) *Service {
	if deps.Clock == nil {
		deps.Clock = clockwork.NewRealClock()
	}

	return &Service{
		listings:      deps.Listings,
		profiles:      deps.Profiles,
		chat:          deps.Chat,
		wishlists:     deps.Wishlists,
		files:         deps.Files,
		resolver:      deps.Resolver,
		notifier:      deps.Notifier,
		describer:     deps.Describer,
		clock:         deps.Clock,
		featuredLimit: deps.FeaturedLimit,
	}
}

// mapStorageErr переводит сигнальные ошибки хранилищ в ошибки сервиса.
// Битый hex наружу неотличим от отсутствия записи.
func mapStorageErr(err error) error {
	switch {
	case errors.Is(err, storage.ErrNotFound), errors.Is(err, storage.ErrInvalidID):
		return ErrNotFound
	case errors.Is(err, storage.ErrConflict):
		return ErrConflict
	case errors.Is(err, storage.ErrNotFoundObject):
		return ErrNotFound
	case errors.Is(err, storage.ErrInvalidArgument):
		return ErrInvalidArgument
	default:
		return err
	}
}

// invalidf оборачивает ErrInvalidArgument с пояснением для клиента.
func invalidf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidArgument, fmt.Sprintf(format, args...))
}
