// Package storage описывает контракты хранилищ и их сигнальные ошибки.
package storage

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/ruff27/banglaghar/internal/models"
)

var (
	// ErrNotFound — сущность отсутствует в хранилище.
	ErrNotFound = errors.New("not found")
	// ErrInvalidID — идентификатор не является валидным ObjectID.
	ErrInvalidID = errors.New("invalid id")
	// ErrConflict — конфликт уникальности.
	ErrConflict = errors.New("conflict")
)

// Listings описывает операции над объявлениями.
type Listings interface {
	// CreateListing сохраняет новое объявление и возвращает его с
	// заполненным ID и таймстемпами.
	CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error)

	// ListingByID возвращает объявление по hex-идентификатору.
	// Битый hex и отсутствие записи — ErrInvalidID / ErrNotFound.
	ListingByID(ctx context.Context, id string) (*models.Listing, error)

	// ListListings возвращает нескрытые объявления по фильтру,
	// сортировка — сначала новые.
	ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error)

	// ListingsByCreator возвращает объявления пользователя (email),
	// сначала новые.
	ListingsByCreator(ctx context.Context, email string) ([]models.Listing, error)

	// UpdateListing применяет частичное обновление ($set по ключам fields)
	// и возвращает обновлённый документ.
	UpdateListing(ctx context.Context, id string, fields map[string]any) (*models.Listing, error)

	// DeleteListing удаляет объявление. Если записи нет — ErrNotFound.
	DeleteListing(ctx context.Context, id string) error

	// DeleteListings удаляет пакет объявлений, возвращает число удалённых.
	DeleteListings(ctx context.Context, ids []string) (int64, error)

	// AdminListListings — административная постраничная выдача.
	AdminListListings(ctx context.Context, filter models.AdminListingFilter) (*models.ListingPage, error)

	// SetHidden выставляет признак скрытия.
	SetHidden(ctx context.Context, id string, hidden bool) (*models.Listing, error)

	// AppendImage добавляет URL изображения в конец images.
	AppendImage(ctx context.Context, id string, imageURL string) (*models.Listing, error)

	// CountFeatured возвращает число объявлений на витрине,
	// исключая excludeID (пустая строка — без исключений).
	CountFeatured(ctx context.Context, excludeID string) (int64, error)

	// OldestFeatured возвращает limit объявлений витрины с самым старым
	// featuredAt (по возрастанию), исключая excludeID.
	OldestFeatured(ctx context.Context, excludeID string, limit int64) ([]models.Listing, error)

	// UnfeatureMany снимает с витрины пакет объявлений одним запросом.
	UnfeatureMany(ctx context.Context, ids []string) error

	// SetFeaturedAt выставляет (или снимает, при nil) отметку витрины.
	SetFeaturedAt(ctx context.Context, id string, at *time.Time) (*models.Listing, error)

	// CountListings возвращает счётчики для административной сводки.
	CountListings(ctx context.Context) (total, hidden, featured int64, err error)
}

// Profiles описывает операции над профилями пользователей.
type Profiles interface {
	// CreateProfile создаёт профиль. Дубликат email — ErrConflict.
	CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error)

	// ProfileByEmail возвращает профиль по email (в нижнем регистре).
	ProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error)

	// ProfileByID возвращает профиль по hex-идентификатору.
	ProfileByID(ctx context.Context, id string) (*models.UserProfile, error)

	// UpdateProfile применяет частичное обновление ($set по ключам fields)
	// и возвращает обновлённый документ.
	UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.UserProfile, error)

	// ListPendingProfiles возвращает профили со статусом pending,
	// сначала старые запросы.
	ListPendingProfiles(ctx context.Context) ([]models.UserProfile, error)

	// ListProfiles — административная постраничная выдача.
	ListProfiles(ctx context.Context, filter models.UserFilter) (*models.UserPage, error)

	// CountProfiles возвращает общее число профилей и число ожидающих
	// проверки документов.
	CountProfiles(ctx context.Context) (total, pending int64, err error)
}

// Chat описывает операции над диалогами и сообщениями.
type Chat interface {
	// ConversationByParticipants ищет диалог по отсортированной паре
	// участников и необязательной привязке к объявлению.
	ConversationByParticipants(ctx context.Context, participants []primitive.ObjectID, property *primitive.ObjectID) (*models.Conversation, error)

	// CreateConversation создаёт диалог.
	CreateConversation(ctx context.Context, conv models.Conversation) (*models.Conversation, error)

	// ConversationByID возвращает диалог по hex-идентификатору.
	ConversationByID(ctx context.Context, id string) (*models.Conversation, error)

	// ListConversations возвращает диалоги участника, последняя
	// активность первой.
	ListConversations(ctx context.Context, participant primitive.ObjectID) ([]models.Conversation, error)

	// CreateMessage сохраняет сообщение и обновляет lastMessage/updatedAt
	// диалога.
	CreateMessage(ctx context.Context, msg models.Message) (*models.Message, error)

	// ListMessages возвращает страницу сообщений диалога: выборка по
	// убыванию createdAt, элементы страницы — по возрастанию.
	ListMessages(ctx context.Context, conversationID primitive.ObjectID, page, limit int) (*models.MessagePage, error)
}

// Wishlists описывает операции над списками избранного.
type Wishlists interface {
	// AddToWishlist добавляет объявление в список пользователя
	// (создаёт список при первом обращении, дубликаты не множит).
	AddToWishlist(ctx context.Context, username string, listingID string) (*models.Wishlist, error)

	// WishlistByUsername возвращает список пользователя.
	WishlistByUsername(ctx context.Context, username string) (*models.Wishlist, error)

	// RemoveFromWishlist убирает объявление из списка.
	// Отсутствие списка или элемента — ErrNotFound.
	RemoveFromWishlist(ctx context.Context, username string, listingID string) (*models.Wishlist, error)

	// ListingsByIDs возвращает объявления по набору идентификаторов.
	ListingsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Listing, error)
}
