package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/ruff27/banglaghar/internal/geo"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/storage"
)

// NewListing — входные данные создания объявления.
type NewListing struct {
	Title        string
	Price        float64
	AddressLine1 string
	AddressLine2 string
	CityTown     string
	Upazila      string
	District     string
	PostalCode   string
	PropertyType models.PropertyType
	ListingType  models.ListingType
	Bedrooms     int
	Bathrooms    int
	Area         *float64
	Description  string

	Features          models.Features
	BangladeshDetails models.BangladeshDetails
}

// ListingUpdate — частичное обновление объявления; nil-поле не меняется.
type ListingUpdate struct {
	Title        *string
	Price        *float64
	AddressLine1 *string
	AddressLine2 *string
	CityTown     *string
	Upazila      *string
	District     *string
	PostalCode   *string
	PropertyType *models.PropertyType
	ListingType  *models.ListingType
	Bedrooms     *int
	Bathrooms    *int
	Area         *float64
	Description  *string

	Features          *models.Features
	BangladeshDetails *models.BangladeshDetails
}

// addressChanged — затронуто ли хотя бы одно адресное поле.
func (u ListingUpdate) addressChanged() bool {
	return u.AddressLine1 != nil || u.AddressLine2 != nil || u.Upazila != nil ||
		u.CityTown != nil || u.District != nil || u.PostalCode != nil
}

func validateNewListing(in NewListing) error {
	switch {
	case strings.TrimSpace(in.Title) == "":
		return invalidf("title is required")
	case in.Price <= 0:
		return invalidf("price must be positive")
	case strings.TrimSpace(in.AddressLine1) == "":
		return invalidf("addressLine1 is required")
	case strings.TrimSpace(in.CityTown) == "":
		return invalidf("cityTown is required")
	case strings.TrimSpace(in.Upazila) == "":
		return invalidf("upazila is required")
	case strings.TrimSpace(in.District) == "":
		return invalidf("district is required")
	case strings.TrimSpace(in.PostalCode) == "":
		return invalidf("postalCode is required")
	case !in.PropertyType.Valid():
		return invalidf("unknown propertyType %q", in.PropertyType)
	case !in.ListingType.Valid():
		return invalidf("unknown listingType %q", in.ListingType)
	}

	return nil
}

// locate геокодирует адрес; при nil-результате объявление закрепляется
// за центроидом по умолчанию с точностью "unknown" и без geocodedAddress.
func (s *Service) locate(ctx context.Context, addr geo.Address) (models.Position, string, string) {
	if res := s.resolver.Resolve(ctx, addr); res != nil {
		return models.Position{Lat: res.Lat, Lng: res.Lng}, string(res.Accuracy), res.Query
	}

	p := geo.DistrictCentroid("")

	return models.Position{Lat: p.Lat, Lng: p.Lng}, string(geo.AccuracyUnknown), ""
}

// CreateListing проверяет, геокодирует и сохраняет объявление.
// Владелец фиксируется по email профиля.
func (s *Service) CreateListing(ctx context.Context, actor *models.UserProfile, in NewListing) (*models.Listing, error) {
	const op = "service/CreateListing"

	if err := validateNewListing(in); err != nil {
		return nil, err
	}

	pos, accuracy, geocoded := s.locate(ctx, geo.Address{
		AddressLine1: in.AddressLine1,
		AddressLine2: in.AddressLine2,
		Upazila:      in.Upazila,
		CityTown:     in.CityTown,
		District:     in.District,
		PostalCode:   in.PostalCode,
	})

	listing := models.Listing{
		Title:             in.Title,
		Price:             in.Price,
		AddressLine1:      in.AddressLine1,
		AddressLine2:      in.AddressLine2,
		CityTown:          in.CityTown,
		Upazila:           in.Upazila,
		District:          in.District,
		PostalCode:        in.PostalCode,
		PropertyType:      in.PropertyType,
		ListingType:       in.ListingType,
		Bedrooms:          in.Bedrooms,
		Bathrooms:         in.Bathrooms,
		Area:              in.Area,
		Features:          in.Features,
		BangladeshDetails: in.BangladeshDetails,
		Position:          &pos,
		LocationAccuracy:  accuracy,
		GeocodedAddress:   geocoded,
		Description:       in.Description,
		Images:            []string{},
		CreatedBy:         actor.Email,
	}

	created, err := s.listings.CreateListing(ctx, listing)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return created, nil
}

// Listing возвращает объявление по идентификатору.
func (s *Service) Listing(ctx context.Context, id string) (*models.Listing, error) {
	const op = "service/Listing"

	listing, err := s.listings.ListingByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return listing, nil
}

// Listings — публичная выдача нескрытых объявлений.
func (s *Service) Listings(ctx context.Context, filter models.ListingFilter) ([]models.Listing, error) {
	const op = "service/Listings"

	items, err := s.listings.ListListings(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// MyListings — объявления пользователя, сначала новые.
func (s *Service) MyListings(ctx context.Context, actor *models.UserProfile) ([]models.Listing, error) {
	const op = "service/MyListings"

	items, err := s.listings.ListingsByCreator(ctx, actor.Email)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return items, nil
}

// ownedListing возвращает объявление, если actor — владелец или админ.
func (s *Service) ownedListing(ctx context.Context, actor *models.UserProfile, id string) (*models.Listing, error) {
	listing, err := s.listings.ListingByID(ctx, id)
	if err != nil {
		return nil, mapStorageErr(err)
	}

	if listing.CreatedBy != actor.Email && !actor.IsAdmin {
		return nil, ErrPermissionDenied
	}

	return listing, nil
}

// UpdateListing применяет частичное обновление. Адресные изменения
// запускают повторное геокодирование по объединённому адресу.
func (s *Service) UpdateListing(ctx context.Context, actor *models.UserProfile, id string, upd ListingUpdate) (*models.Listing, error) {
	const op = "service/UpdateListing"

	current, err := s.ownedListing(ctx, actor, id)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	fields := map[string]any{}

	setStr := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}

	setStr("title", upd.Title)
	setStr("addressLine1", upd.AddressLine1)
	setStr("addressLine2", upd.AddressLine2)
	setStr("cityTown", upd.CityTown)
	setStr("upazila", upd.Upazila)
	setStr("district", upd.District)
	setStr("postalCode", upd.PostalCode)
	setStr("description", upd.Description)

	if upd.Title != nil && strings.TrimSpace(*upd.Title) == "" {
		return nil, invalidf("title cannot be empty")
	}

	if upd.Price != nil {
		if *upd.Price <= 0 {
			return nil, invalidf("price must be positive")
		}
		fields["price"] = *upd.Price
	}

	if upd.PropertyType != nil {
		if !upd.PropertyType.Valid() {
			return nil, invalidf("unknown propertyType %q", *upd.PropertyType)
		}
		fields["propertyType"] = *upd.PropertyType
	}

	if upd.ListingType != nil {
		if !upd.ListingType.Valid() {
			return nil, invalidf("unknown listingType %q", *upd.ListingType)
		}
		fields["listingType"] = *upd.ListingType
	}

	if upd.Bedrooms != nil {
		fields["bedrooms"] = *upd.Bedrooms
	}
	if upd.Bathrooms != nil {
		fields["bathrooms"] = *upd.Bathrooms
	}
	if upd.Area != nil {
		fields["area"] = *upd.Area
	}
	if upd.Features != nil {
		fields["features"] = *upd.Features
	}
	if upd.BangladeshDetails != nil {
		fields["bangladeshDetails"] = *upd.BangladeshDetails
	}

	if upd.addressChanged() {
		merged := geo.Address{
			AddressLine1: pick(upd.AddressLine1, current.AddressLine1),
			AddressLine2: pick(upd.AddressLine2, current.AddressLine2),
			Upazila:      pick(upd.Upazila, current.Upazila),
			CityTown:     pick(upd.CityTown, current.CityTown),
			District:     pick(upd.District, current.District),
			PostalCode:   pick(upd.PostalCode, current.PostalCode),
		}

		pos, accuracy, geocoded := s.locate(ctx, merged)
		fields["position"] = pos
		fields["locationAccuracy"] = accuracy
		fields["geocodedAddress"] = geocoded
	}

	if len(fields) == 0 {
		return current, nil
	}

	updated, err := s.listings.UpdateListing(ctx, id, fields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return updated, nil
}

func pick(v *string, fallback string) string {
	if v != nil {
		return *v
	}

	return fallback
}

// DeleteListing удаляет объявление владельца (или любое — для админа).
func (s *Service) DeleteListing(ctx context.Context, actor *models.UserProfile, id string) error {
	const op = "service/DeleteListing"

	if _, err := s.ownedListing(ctx, actor, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	if err := s.listings.DeleteListing(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return nil
}

// PhotoUploadURL выдаёт presigned PUT для фото объявления владельца.
func (s *Service) PhotoUploadURL(ctx context.Context, actor *models.UserProfile, listingID, contentType string, contentLength int64) (*storage.UploadInfo, error) {
	const op = "service/PhotoUploadURL"

	if _, err := s.ownedListing(ctx, actor, listingID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	info, err := s.files.PhotoUploadURL(ctx, listingID, contentType, contentLength)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return info, nil
}

// ConfirmPhoto подтверждает загрузку и дописывает URL в images.
func (s *Service) ConfirmPhoto(ctx context.Context, actor *models.UserProfile, listingID, key string) (*models.Listing, error) {
	const op = "service/ConfirmPhoto"

	if _, err := s.ownedListing(ctx, actor, listingID); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	url, err := s.files.CheckPhotoUpload(ctx, listingID, key)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	listing, err := s.listings.AppendImage(ctx, listingID, url)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, mapStorageErr(err))
	}

	return listing, nil
}
