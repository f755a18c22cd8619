package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// AddToWishlist добавляет объявление в избранное пользователя.
// Список создаётся при первом добавлении, дубликаты не множатся.
func (s *Service) AddToWishlist(ctx context.Context, username, listingID string) (*models.Wishlist, error) {
	const op = "service/AddToWishlist"

	if username == "" {
		return nil, invalidf("username is required")
	}

	if _, err := s.listings.ListingByID(ctx, listingID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	wl, err := s.wishlists.AddToWishlist(ctx, username, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return wl, nil
}

// Wishlist возвращает объявления из избранного пользователя.
// Отсутствие списка равнозначно пустому.
func (s *Service) Wishlist(ctx context.Context, username string) ([]models.Listing, error) {
	const op = "service/Wishlist"

	wl, err := s.wishlists.WishlistByUsername(ctx, username)
	if errors.Is(err, storage.ErrNotFound) {
		return []models.Listing{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.wishlists.ListingsByIDs(ctx, wl.Items)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// RemoveFromWishlist убирает объявление из избранного.
func (s *Service) RemoveFromWishlist(ctx context.Context, username, listingID string) (*models.Wishlist, error) {
	const op = "service/RemoveFromWishlist"

	wl, err := s.wishlists.RemoveFromWishlist(ctx, username, listingID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return wl, nil
}
