package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// toMS — MongoDB DateTime хранит миллисекунды.
func toMS(t time.Time) time.Time { return t.UTC().Truncate(time.Millisecond) }

// oidFromHex конвертирует hex-строку в ObjectID или ErrInvalidID.
func oidFromHex(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, storage.ErrInvalidID
	}

	return oid, nil
}

// CreateListing сохраняет объявление.
func (m *Mongo) CreateListing(ctx context.Context, listing models.Listing) (*models.Listing, error) {
	const op = "storage/mongo/CreateListing"

	now := toMS(time.Now())
	listing.CreatedAt = now
	listing.UpdatedAt = now

	if listing.Images == nil {
		listing.Images = []string{}
	}

	res, err := m.listings.InsertOne(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("%s: insert: %w", op, err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return nil, fmt.Errorf("%s: inserted id type", op)
	}

	listing.ID = oid
	return &listing, nil
}

// ListingByID возвращает объявление по hex-идентификатору.
func (m *Mongo) ListingByID(ctx context.Context, id string) (*models.Listing, error) {
	const op = "storage/mongo/ListingByID"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	var listing models.Listing
	if err := m.listings.FindOne(ctx, bson.D{{Key: "_id", Value: oid}}).Decode(&listing); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &listing, nil
}

// ListListings возвращает нескрытые объявления по фильтру, сначала новые.
func (m *Mongo) ListListings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	const op = "storage/mongo/ListListings"

	query := bson.D{{Key: "isHidden", Value: bson.D{{Key: "$ne", Value: true}}}}

	if filter.District != "" {
		query = append(query, bson.E{Key: "district", Value: filter.District})
	}

	if filter.Upazila != "" {
		query = append(query, bson.E{Key: "upazila", Value: filter.Upazila})
	}

	if filter.PropertyType != "" {
		query = append(query, bson.E{Key: "propertyType", Value: filter.PropertyType})
	}

	if filter.ListingType != "" {
		query = append(query, bson.E{Key: "listingType", Value: filter.ListingType})
	}

	price := bson.D{}
	if filter.MinPrice != nil {
		price = append(price, bson.E{Key: "$gte", Value: *filter.MinPrice})
	}
	if filter.MaxPrice != nil {
		price = append(price, bson.E{Key: "$lte", Value: *filter.MaxPrice})
	}
	if len(price) > 0 {
		query = append(query, bson.E{Key: "price", Value: price})
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := m.listings.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.Listing
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// ListingsByCreator возвращает объявления пользователя, сначала новые.
func (m *Mongo) ListingsByCreator(ctx context.Context, email string) ([]models.Listing, error) {
	const op = "storage/mongo/ListingsByCreator"

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cur, err := m.listings.Find(ctx, bson.D{{Key: "createdBy", Value: email}}, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.Listing
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// UpdateListing применяет частичное обновление и возвращает документ
// после записи.
func (m *Mongo) UpdateListing(ctx context.Context, id string, fields map[string]any) (*models.Listing, error) {
	const op = "storage/mongo/UpdateListing"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	set := bson.D{{Key: "updatedAt", Value: toMS(time.Now())}}
	for k, v := range fields {
		set = append(set, bson.E{Key: k, Value: v})
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var listing models.Listing
	err = m.listings.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{{Key: "$set", Value: set}},
		opts,
	).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &listing, nil
}

// DeleteListing удаляет объявление.
func (m *Mongo) DeleteListing(ctx context.Context, id string) error {
	const op = "storage/mongo/DeleteListing"

	oid, err := oidFromHex(id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	res, err := m.listings.DeleteOne(ctx, bson.D{{Key: "_id", Value: oid}})
	if err != nil {
		return fmt.Errorf("%s: delete: %w", op, err)
	}

	if res.DeletedCount == 0 {
		return fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	return nil
}

// DeleteListings удаляет пакет объявлений. Битые идентификаторы
// пропускаются — удаляется то, что удалось распознать.
func (m *Mongo) DeleteListings(ctx context.Context, ids []string) (int64, error) {
	const op = "storage/mongo/DeleteListings"

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		if oid, err := primitive.ObjectIDFromHex(id); err == nil {
			oids = append(oids, oid)
		}
	}

	if len(oids) == 0 {
		return 0, nil
	}

	res, err := m.listings.DeleteMany(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}},
	})
	if err != nil {
		return 0, fmt.Errorf("%s: delete: %w", op, err)
	}

	return res.DeletedCount, nil
}

// adminListingSortFields — допустимые поля сортировки административной
// выдачи; всё прочее сводится к createdAt.
var adminListingSortFields = map[string]bool{
	"createdAt":  true,
	"updatedAt":  true,
	"price":      true,
	"title":      true,
	"featuredAt": true,
}

// AdminListListings — постраничная административная выдача с поиском и
// фильтрами по типу, скрытости и витрине.
func (m *Mongo) AdminListListings(ctx context.Context, filter models.AdminListingFilter) (*models.ListingPage, error) {
	const op = "storage/mongo/AdminListListings"

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
			bson.D{{Key: "title", Value: re}},
			bson.D{{Key: "district", Value: re}},
			bson.D{{Key: "cityTown", Value: re}},
			bson.D{{Key: "createdBy", Value: re}},
		}})
	}

	if filter.ListingType != "" {
		query = append(query, bson.E{Key: "listingType", Value: filter.ListingType})
	}

	if filter.PropertyType != "" {
		query = append(query, bson.E{Key: "propertyType", Value: filter.PropertyType})
	}

	if filter.IsHidden != nil {
		query = append(query, bson.E{Key: "isHidden", Value: *filter.IsHidden})
	}

	if filter.IsFeatured != nil {
		if *filter.IsFeatured {
			query = append(query, bson.E{Key: "featuredAt", Value: bson.D{{Key: "$ne", Value: nil}}})
		} else {
			query = append(query, bson.E{Key: "featuredAt", Value: nil})
		}
	}

	total, err := m.listings.CountDocuments(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: count: %w", op, err)
	}

	sortField := filter.Sort
	if !adminListingSortFields[sortField] {
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

	cur, err := m.listings.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	items := []models.Listing{}
	if err := cur.All(ctx, &items); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	totalPages := int((total + int64(limit) - 1) / int64(limit))

	return &models.ListingPage{
		Items:      items,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
	}, nil
}

// SetHidden выставляет признак скрытия.
func (m *Mongo) SetHidden(ctx context.Context, id string, hidden bool) (*models.Listing, error) {
	return m.UpdateListing(ctx, id, map[string]any{"isHidden": hidden})
}

// AppendImage добавляет URL изображения в конец images.
func (m *Mongo) AppendImage(ctx context.Context, id string, imageURL string) (*models.Listing, error) {
	const op = "storage/mongo/AppendImage"

	oid, err := oidFromHex(id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var listing models.Listing
	err = m.listings.FindOneAndUpdate(ctx,
		bson.D{{Key: "_id", Value: oid}},
		bson.D{
			{Key: "$push", Value: bson.D{{Key: "images", Value: imageURL}}},
			{Key: "$set", Value: bson.D{{Key: "updatedAt", Value: toMS(time.Now())}}},
		},
		opts,
	).Decode(&listing)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	return &listing, nil
}

// featuredFilter — объявления с непустым featuredAt, кроме excludeID.
func featuredFilter(excludeID string) (bson.D, error) {
	query := bson.D{{Key: "featuredAt", Value: bson.D{{Key: "$ne", Value: nil}}}}

	if excludeID != "" {
		oid, err := oidFromHex(excludeID)
		if err != nil {
			return nil, err
		}
		query = append(query, bson.E{Key: "_id", Value: bson.D{{Key: "$ne", Value: oid}}})
	}

	return query, nil
}

// CountFeatured возвращает число объявлений на витрине, исключая excludeID.
func (m *Mongo) CountFeatured(ctx context.Context, excludeID string) (int64, error) {
	const op = "storage/mongo/CountFeatured"

	query, err := featuredFilter(excludeID)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, err)
	}

	n, err := m.listings.CountDocuments(ctx, query)
	if err != nil {
		return 0, fmt.Errorf("%s: count: %w", op, err)
	}

	return n, nil
}

// OldestFeatured возвращает limit объявлений витрины с самым старым
// featuredAt, по возрастанию.
func (m *Mongo) OldestFeatured(ctx context.Context, excludeID string, limit int64) ([]models.Listing, error) {
	const op = "storage/mongo/OldestFeatured"

	query, err := featuredFilter(excludeID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "featuredAt", Value: 1}}).
		SetLimit(limit)

	cur, err := m.listings.Find(ctx, query, opts)
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	var out []models.Listing
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}

// UnfeatureMany снимает с витрины пакет объявлений одним запросом.
func (m *Mongo) UnfeatureMany(ctx context.Context, ids []string) error {
	const op = "storage/mongo/UnfeatureMany"

	if len(ids) == 0 {
		return nil
	}

	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := oidFromHex(id)
		if err != nil {
			return fmt.Errorf("%s: %w", op, err)
		}
		oids = append(oids, oid)
	}

	_, err := m.listings.UpdateMany(ctx,
		bson.D{{Key: "_id", Value: bson.D{{Key: "$in", Value: oids}}}},
		bson.D{{Key: "$set", Value: bson.D{{Key: "featuredAt", Value: nil}}}},
	)
	if err != nil {
		return fmt.Errorf("%s: update: %w", op, err)
	}

	return nil
}

// SetFeaturedAt выставляет (или снимает, при nil) отметку витрины.
func (m *Mongo) SetFeaturedAt(ctx context.Context, id string, at *time.Time) (*models.Listing, error) {
	const op = "storage/mongo/SetFeaturedAt"

	var value any
	if at != nil {
		value = toMS(*at)
	}

	listing, err := m.UpdateListing(ctx, id, map[string]any{"featuredAt": value})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return listing, nil
}

// CountListings возвращает счётчики для административной сводки.
func (m *Mongo) CountListings(ctx context.Context) (total, hidden, featured int64, err error) {
	const op = "storage/mongo/CountListings"

	total, err = m.listings.CountDocuments(ctx, bson.D{})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: count total: %w", op, err)
	}

	hidden, err = m.listings.CountDocuments(ctx, bson.D{{Key: "isHidden", Value: true}})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: count hidden: %w", op, err)
	}

	featured, err = m.listings.CountDocuments(ctx, bson.D{{Key: "featuredAt", Value: bson.D{{Key: "$ne", Value: nil}}}})
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%s: count featured: %w", op, err)
	}

	return total, hidden, featured, nil
}
