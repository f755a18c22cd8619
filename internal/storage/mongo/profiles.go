package mongo

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// CreateProfile создаёт профиль. Email нормализуется к нижнему регистру.
func (m *Mongo) CreateProfile(ctx context.Context, profile models.UserProfile) (*models.UserProfile, error) {
	const op = "storage/mongo/CreateProfile"

	now := toMS(time.Now())
	profile.Email = strings.ToLower(strings.TrimSpace(profile.Email))
	profile.CreatedAt = now
	profile.UpdatedAt = now

	if profile.ApprovalStatus == "" {
		profile.ApprovalStatus = models.ApprovalNotStarted
	}
	if profile.AccountStatus == "" {
		profile.AccountStatus = models.AccountActive
	}

	res, err := m.profiles.InsertOne(ctx, profile)
	if err != nil {
		if mongodriver.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrConflict)
		}

		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	profile.ID = oid
	return &profile, nil
}

// ProfileByEmail возвращает профиль по email.
func (m *Mongo) ProfileByEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	const op = "storage/mongo/ProfileByEmail"

	email = strings.ToLower(strings.TrimSpace(email))

	var profile models.UserProfile
	if err := m.profiles.FindOne(ctx, bson.D{{Key: "email", Value: email}}).Decode(&profile); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &profile, nil
}

// ProfileByID возвращает профиль по hex-идентификатору.
func (m *Mongo) ProfileByID(ctx context.Context, id string) (*models.UserProfile, error) {
	const op = "storage/mongo/ProfileByID"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var profile models.UserProfile
	if err := m.profiles.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&profile); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &profile, nil
}

// UpdateProfile применяет частичное обновление и возвращает документ
// после записи.
func (m *Mongo) UpdateProfile(ctx context.Context, id string, fields map[string]any) (*models.UserProfile, error) {
	const op = "storage/mongo/UpdateProfile"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := bson.D{{Key: "updatedAt", Value: toMS(time.Now())}}
	for k, v := range fields {
		set = append(set, bson.E{Key: k, Value: v})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var profile models.UserProfile
	err = m.profiles.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&profile)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &profile, nil
}

// ListPendingProfiles возвращает профили со статусом pending,
// сначала старые запросы (очередь модерации).
func (m *Mongo) ListPendingProfiles(ctx context.Context) ([]models.UserProfile, error) {
	const op = "storage/mongo/ListPendingProfiles"

	opts := options.Find().SetSort(bson.D{{Key: "updatedAt", Value: 1}})

	cur, err := m.profiles.Find(ctx,
		bson.D{{Key: "approvalStatus", Value: models.ApprovalPending}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.UserProfile
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// adminUserSortFields — допустимые поля сортировки; прочее — createdAt.
var adminUserSortFields = map[string]bool{
	"createdAt":      true,
	"updatedAt":      true,
	"email":          true,
	"displayName":    true,
	"approvalStatus": true,
}

// ListProfiles — постраничная административная выдача с поиском по
// email/имени и фильтром по статусу проверки.
func (m *Mongo) ListProfiles(ctx context.Context, filter models.UserFilter) (*models.UserPage, error) {
	const op = "storage/mongo/ListProfiles"

	page := filter.Page
	if page < 1 {
		page = 1
	}
	limit := filter.Limit
	if limit < 1 || limit > 100 {
		limit = 10
	}

	query := bson.D{}

	if filter.Search != "" {
		re := primitive.Regex{Pattern: filter.Search, Options: "i"}
		query = append(query, bson.E{Key: "$or", Value: bson.A{
			bson.D{{Key: "email", Value: re}},
			bson.D{{Key: "name", Value: re}},
			bson.D{{Key: "displayName", Value: re}},
		}})
	}

	if filter.Status != "" {
		query = append(query, bson.E{Key: "approvalStatus", Value: filter.Status})
	}

	total, err := m.profiles.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	sortField := filter.Sort
	if !adminUserSortFields[sortField] {
		sortField = "createdAt"
	}
	sortDir := -1
	if filter.Order == "asc" {
		sortDir = 1
	}

	opts := options.Find().
		SetSort(bson.D{{Key: sortField, Value: sortDir}}).
		SetSkip(int64(page-1) * int64(limit)).
		SetLimit(int64(limit))

	cur, err := m.profiles.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := []models.UserProfile{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.UserPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// CountProfiles возвращает общее число профилей и число ожидающих
// проверки документов.
func (m *Mongo) CountProfiles(ctx context.Context) (total, pending int64, err error) {
	const op = "storage/mongo/CountProfiles"

	total, err = m.profiles.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, 0, fmt.Errorf("%s: count total: %w", op, err)
	}

	pending, err = m.profiles.CountDocuments(ctx,
		bson.D{{Key: "approvalStatus", Value: models.ApprovalPending}})
	if err != nil {
		return 0, 0, fmt.Errorf("%s: count pending: %w", op, err)
	}

	return total, pending, nil
}
