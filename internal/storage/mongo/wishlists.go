package mongo

import (
	"context"
	"errors"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	mongodriver "go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// AddToWishlist добавляет объявление в список пользователя.
// Список создаётся при первом обращении ($addToSet не множит дубликаты).
func (m *Mongo) AddToWishlist(ctx context.Context, username string, listingID string) (*models.Wishlist, error) {
	const op = "storage/mongo/AddToWishlist"

	oid, err := oidFromHex(listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var wl models.Wishlist
	err = m.wishlists.FindOneAndUpdate(ctx,
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "$addToSet", Value: bson.D{{Key: "items", Value: oid}}}},
		opts,
	).Decode(&wl)
	if err != nil {
		return nil, fmt.Errorf("%s: upsert: %w", op, err)
	}

	return &wl, nil
}

// WishlistByUsername возвращает список пользователя.
func (m *Mongo) WishlistByUsername(ctx context.Context, username string) (*models.Wishlist, error) {
	const op = "storage/mongo/WishlistByUsername"

	var wl models.Wishlist
	if err := m.wishlists.FindOne(ctx, bson.D{{Key: "username", Value: username}}).Decode(&wl); err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: find: %w", op, err)
	}

	return &wl, nil
}

// RemoveFromWishlist убирает объявление из списка. Отсутствие списка
// или элемента — ErrNotFound.
func (m *Mongo) RemoveFromWishlist(ctx context.Context, username string, listingID string) (*models.Wishlist, error) {
	const op = "storage/mongo/RemoveFromWishlist"

	oid, err := oidFromHex(listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.Before)

	var before models.Wishlist
	err = m.wishlists.FindOneAndUpdate(ctx,
		bson.D{{Key: "username", Value: username}},
		bson.D{{Key: "$pull", Value: bson.D{{Key: "items", Value: oid}}}},
		opts,
	).Decode(&before)
	if err != nil {
		if errors.Is(err, mongodriver.ErrNoDocuments) {
			return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
		}

		return nil, fmt.Errorf("%s: update: %w", op, err)
	}

	found := false
	after := make([]primitive.ObjectID, 0, len(before.Items))
	for _, item := range before.Items {
		if item == oid {
			found = true
			continue
		}
		after = append(after, item)
	}

	if !found {
		return nil, fmt.Errorf("%s: %w", op, storage.ErrNotFound)
	}

	before.Items = after
	return &before, nil
}

// ListingsByIDs возвращает объявления по набору идентификаторов.
func (m *Mongo) ListingsByIDs(ctx context.Context, ids []primitive.ObjectID) ([]models.Listing, error) {
	const op = "storage/mongo/ListingsByIDs"

	if len(ids) == 0 {
		return []models.Listing{}, nil
	}

	cur, err := m.listings.Find(ctx, bson.D{
		{Key: "_id", Value: bson.D{{Key: "$in", Value: ids}}},
	})
	if err != nil {
		return nil, fmt.Errorf("%s: find: %w", op, err)
	}
	defer cur.Close(ctx)

	out := []models.Listing{}
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return out, nil
}
