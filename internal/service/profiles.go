package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/ruff27/banglaghar/internal/auth"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// displayNameFor — значение по умолчанию: имя из токена либо локальная
// часть email.
func displayNameFor(name, email string) string {
	if strings.TrimSpace(name) != "" {
		return name
	}

	if at := strings.IndexByte(email, '@'); at > 0 {
		return email[:at]
	}

	return email
}

// MyProfile возвращает профиль владельца токена, создавая его при
// первом обращении. Расхождения cognitoSub/name с токеном лечатся,
// пустой displayName заполняется.
func (s *Service) MyProfile(ctx context.Context, claims *auth.Claims) (*models.UserProfile, error) {
	const op = "service/MyProfile"

	email := strings.ToLower(strings.TrimSpace(claims.Email))
	if email == "" {
		return nil, invalidf("token has no email claim")
	}

	profile, err := s.profiles.ProfileByEmail(ctx, email)
	if errors.Is(err, storage.ErrNotFound) {
		created, cerr := s.profiles.CreateProfile(ctx, models.UserProfile{
			Email:       email,
			CognitoSub:  claims.Sub,
			Name:        claims.Username,
			DisplayName: displayNameFor(claims.Username, email),
		})
		if cerr == nil {
			return created, nil
		}

		// Параллельный первый запрос мог успеть создать профиль.
		if errors.Is(cerr, storage.ErrConflict) {
			profile, err = s.profiles.ProfileByEmail(ctx, email)
		} else {
			return nil, fmt.Errorf("%s: %w", op, mapStorageErr(cerr))
		}
	}

	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	fields := map[string]any{}

	if claims.Sub != "" && profile.CognitoSub != claims.Sub {
		fields["cognitoSub"] = claims.Sub
	}

	if profile.Name == "" && claims.Username != "" {
		fields["name"] = claims.Username
	}

	if profile.DisplayName == "" {
		fields["displayName"] = displayNameFor(profile.Name, profile.Email)
	}

	if len(fields) == 0 {
		return profile, nil
	}

	healed, err := s.profiles.UpdateProfile(ctx, profile.ID.Hex(), fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return healed, nil
}

// ProfileForEmail возвращает существующий профиль по email без
// создания. Используется цепочкой авторизации.
func (s *Service) ProfileForEmail(ctx context.Context, email string) (*models.UserProfile, error) {
	const op = "service/ProfileForEmail"

	profile, err := s.profiles.ProfileByEmail(ctx, strings.ToLower(strings.TrimSpace(email)))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return profile, nil
}

// UpdateDisplayName меняет отображаемое имя (1–100 символов после trim).
func (s *Service) UpdateDisplayName(ctx context.Context, actor *models.UserProfile, displayName string) (*models.UserProfile, error) {
	const op = "service/UpdateDisplayName"

	trimmed := strings.TrimSpace(displayName)
	if trimmed == "" || len([]rune(trimmed)) > 100 {
		return nil, invalidf("displayName must be 1-100 characters")
	}

	profile, err := s.profiles.UpdateProfile(ctx, actor.ID.Hex(), map[string]any{
		"displayName": trimmed,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return profile, nil
}

// GovtIDUploadURL выдаёт presigned PUT для документа продавца.
func (s *Service) GovtIDUploadURL(ctx context.Context, actor *models.UserProfile, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service/GovtIDUploadURL"

	info, err := s.files.GovtIDUploadURL(ctx, actor.CognitoSub, contentType, contentLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return info, nil
}

// ConfirmGovtID подтверждает загрузку документа и переводит заявку
// продавца в статус pending.
func (s *Service) ConfirmGovtID(ctx context.Context, actor *models.UserProfile, key string) (*models.UserProfile, error) {
	const op = "service/ConfirmGovtID"

	storedKey, err := s.files.CheckGovtIDUpload(ctx, actor.CognitoSub, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	profile, err := s.profiles.UpdateProfile(ctx, actor.ID.Hex(), map[string]any{
		"govtIdKey":      storedKey,
		"govtIdUrl":      storedKey,
		"approvalStatus": models.ApprovalPending,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return profile, nil
}
