package service

import (
	"context"
	"fmt"

	"github.com/ruff27/banglaghar/internal/models"
)

// Stats собирает сводные счётчики панели администратора.
func (s *Service) Stats(ctx context.Context) (*models.AdminStats, error) {
	const op = "service/Stats"

	users, pending, err := s.profiles.CountProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	total, hidden, featured, err := s.listings.CountListings(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return &models.AdminStats{
		TotalUsers:       users,
		PendingApprovals: pending,
		TotalListings:    total,
		HiddenListings:   hidden,
		FeaturedListings: featured,
	}, nil
}

// PendingApprovals — профили, ожидающие проверки документов
// (старые запросы первыми).
func (s *Service) PendingApprovals(ctx context.Context) ([]models.UserProfile, error) {
	const op = "service/PendingApprovals"

	items, err := s.profiles.ListPendingProfiles(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// resolveApproval переводит профиль из pending в target.
// Профиль в любом другом статусе возвращается без изменений
// (changed == false), чтобы клиент увидел текущее состояние.
func (s *Service) resolveApproval(ctx context.Context, id string, target models.ApprovalStatus) (*models.UserProfile, bool, error) {
	profile, err := s.profiles.ProfileByID(ctx, id)
	if err != nil {
		return nil, false, mapStorageErr(err)
	}

	if profile.ApprovalStatus != models.ApprovalPending {
		return profile, false, nil
	}

	updated, err := s.profiles.UpdateProfile(ctx, id, map[string]any{
		"approvalStatus": target,
	})
	if err != nil {
		return nil, false, mapStorageErr(err)
	}

	return updated, true, nil
}

// ApproveUser одобряет заявку продавца из статуса pending.
func (s *Service) ApproveUser(ctx context.Context, id string) (*models.UserProfile, bool, error) {
	const op = "service/ApproveUser"

	profile, changed, err := s.resolveApproval(ctx, id, models.ApprovalApproved)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return profile, changed, nil
}

// RejectUser отклоняет заявку продавца из статуса pending.
func (s *Service) RejectUser(ctx context.Context, id string) (*models.UserProfile, bool, error) {
	const op = "service/RejectUser"

	profile, changed, err := s.resolveApproval(ctx, id, models.ApprovalRejected)
	if err != nil {
		return nil, false, fmt.Errorf("%s: %w", op, err)
	}

	return profile, changed, nil
}

// Users — административная постраничная выдача профилей.
func (s *Service) Users(ctx context.Context, filter models.UserFilter) (*models.UserPage, error) {
	const op = "service/Users"

	page, err := s.profiles.ListProfiles(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// PatchUser применяет административные изменения профиля.
func (s *Service) PatchUser(ctx context.Context, id string, patch models.UserPatch) (*models.UserProfile, error) {
	const op = "service/PatchUser"

	fields := map[string]any{}

	if patch.IsAdmin != nil {
		fields["isAdmin"] = *patch.IsAdmin
	}

	if patch.ApprovalStatus != nil {
		if !patch.ApprovalStatus.Valid() {
			return nil, invalidf("unknown approvalStatus %q", *patch.ApprovalStatus)
		}
		fields["approvalStatus"] = *patch.ApprovalStatus
	}

	if patch.AccountStatus != nil {
		if !patch.AccountStatus.Valid() {
			return nil, invalidf("unknown accountStatus %q", *patch.AccountStatus)
		}
		fields["accountStatus"] = *patch.AccountStatus
	}

	if len(fields) == 0 {
		return nil, invalidf("nothing to update")
	}

	profile, err := s.profiles.UpdateProfile(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return profile, nil
}

// GovtIDViewURL выдаёт короткоживущую ссылку на документ пользователя.
func (s *Service) GovtIDViewURL(ctx context.Context, userID string) (string, error) {
	const op = "service/GovtIDViewURL"

	profile, err := s.profiles.ProfileByID(ctx, userID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	key := profile.GovtIDKey
	if key == "" {
		return "", fmt.Errorf("%s: %w", op, ErrNotFound)
	}

	url, err := s.files.GovtIDViewURL(ctx, key)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return url, nil
}

// AdminListings — административная постраничная выдача объявлений.
func (s *Service) AdminListings(ctx context.Context, filter models.AdminListingFilter) (*models.ListingPage, error) {
	const op = "service/AdminListings"

	page, err := s.listings.AdminListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return page, nil
}

// SetListingVisibility скрывает объявление из публичной выдачи
// или возвращает его.
func (s *Service) SetListingVisibility(ctx context.Context, id string, hidden bool) (*models.Listing, error) {
	const op = "service/SetListingVisibility"

	listing, err := s.listings.SetHidden(ctx, id, hidden)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return listing, nil
}

// DeleteListings удаляет пакет объявлений, возвращает число удалённых.
func (s *Service) DeleteListings(ctx context.Context, ids []string) (int64, error) {
	const op = "service/DeleteListings"

	if len(ids) == 0 {
		return 0, invalidf("ids are required")
	}

	deleted, err := s.listings.DeleteListings(ctx, ids)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return deleted, nil
}
