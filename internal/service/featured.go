package service

import (
	"context"
	"fmt"

	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/pkg/log"
)

// FeatureListing переключает признак витрины.
//
// Снятие идемпотентно и никогда не вытесняет соседей. Повторное
// размещение уже размещённого объявления сохраняет исходный featuredAt.
// При заполненной витрине вытесняются самые старые записи одним пакетом,
// чтобы после размещения занятых слотов было не больше лимита.
//
// Последовательность count → evict → set не атомарна: параллельные
// вызовы могут кратковременно превысить лимит. Для админской ручки это
// осознанный компромисс, транзакции здесь не используются.
func (s *Service) FeatureListing(ctx context.Context, id string, featured bool) (*models.Listing, error) {
	const op = "service/FeatureListing"

	if !featured {
		listing, err := s.listings.SetFeaturedAt(ctx, id, nil)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
		}

		return listing, nil
	}

	current, err := s.listings.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	if current.IsFeatured() {
		return current, nil
	}

	count, err := s.listings.CountFeatured(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	if count >= s.featuredLimit {
		evict := count - s.featuredLimit + 1

		oldest, err := s.listings.OldestFeatured(ctx, id, evict)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		ids := make([]string, 0, len(oldest))
		for _, l := range oldest {
			ids = append(ids, l.ID.Hex())
		}

		if err := s.listings.UnfeatureMany(ctx, ids); err != nil {
			return nil, fmt.Errorf("%s: %w", op, err)
		}

		log.From(ctx).Info("featured_evicted",
			"evicted", len(ids),
			"for_listing", id)
	}

	now := s.clock.Now()

	listing, err := s.listings.SetFeaturedAt(ctx, id, &now)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return listing, nil
}
