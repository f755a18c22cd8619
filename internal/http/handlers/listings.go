package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
	"github.com/ruff27/banglaghar/internal/http/middleware"
	"github.com/ruff27/banglaghar/internal/models"
	"github.com/ruff27/banglaghar/internal/service"
)

// createListingRequest — тело POST /properties.
type createListingRequest struct {
	Title        string   `json:"title"`
	Price        float64  `json:"price"`
	AddressLine1 string   `json:"addressLine1"`
	AddressLine2 string   `json:"addressLine2"`
	CityTown     string   `json:"cityTown"`
	Upazila      string   `json:"upazila"`
	District     string   `json:"district"`
	PostalCode   string   `json:"postalCode"`
	PropertyType string   `json:"propertyType"`
	ListingType  string   `json:"listingType"`
	Bedrooms     int      `json:"bedrooms"`
	Bathrooms    int      `json:"bathrooms"`
	Area         *float64 `json:"area"`
	Description  string   `json:"description"`

	Features          models.Features          `json:"features"`
	BangladeshDetails models.BangladeshDetails `json:"bangladeshDetails"`
}

// updateListingRequest — тело PUT /properties/{id}; nil-поле не меняется.
type updateListingRequest struct {
	Title        *string  `json:"title"`
	Price        *float64 `json:"price"`
	AddressLine1 *string  `json:"addressLine1"`
	AddressLine2 *string  `json:"addressLine2"`
	CityTown     *string  `json:"cityTown"`
	Upazila      *string  `json:"upazila"`
	District     *string  `json:"district"`
	PostalCode   *string  `json:"postalCode"`
	PropertyType *string  `json:"propertyType"`
	ListingType  *string  `json:"listingType"`
	Bedrooms     *int     `json:"bedrooms"`
	Bathrooms    *int     `json:"bathrooms"`
	Area         *float64 `json:"area"`
	Description  *string  `json:"description"`

	Features          *models.Features          `json:"features"`
	BangladeshDetails *models.BangladeshDetails `json:"bangladeshDetails"`
}

// presignRequest — тело запроса на presigned-загрузку.
type presignRequest struct {
	ContentType   string `json:"content_type"`
	ContentLength int64  `json:"content_length"`
}

// confirmRequest — тело подтверждения загрузки.
type confirmRequest struct {
	Key string `json:"key"`
}

// CreateListing — POST /properties.
func (h *Handlers) CreateListing(w http.ResponseWriter, r *http.Request) {
	var req createListingRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	listing, err := h.svc.CreateListing(r.Context(), middleware.ProfileFrom(r.Context()), service.NewListing{
		Title:             req.Title,
		Price:             req.Price,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		CityTown:          req.CityTown,
		Upazila:           req.Upazila,
		District:          req.District,
		PostalCode:        req.PostalCode,
		PropertyType:      models.PropertyType(req.PropertyType),
		ListingType:       models.ListingType(req.ListingType),
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		Area:              req.Area,
		Description:       req.Description,
		Features:          req.Features,
		BangladeshDetails: req.BangladeshDetails,
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, listing)
}

// ListListings — GET /properties.
func (h *Handlers) ListListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.ListingFilter{
		District:     q.Get("district"),
		Upazila:      q.Get("upazila"),
		PropertyType: q.Get("propertyType"),
		ListingType:  q.Get("listingType"),
	}

	if v := q.Get("minPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = &p
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		if p, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = &p
		}
	}

	items, err := h.svc.Listings(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// GetListing — GET /properties/{id}.
func (h *Handlers) GetListing(w http.ResponseWriter, r *http.Request) {
	listing, err := h.svc.Listing(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// UpdateListing — PUT /properties/{id}.
func (h *Handlers) UpdateListing(w http.ResponseWriter, r *http.Request) {
	var req updateListingRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	upd := service.ListingUpdate{
		Title:             req.Title,
		Price:             req.Price,
		AddressLine1:      req.AddressLine1,
		AddressLine2:      req.AddressLine2,
		CityTown:          req.CityTown,
		Upazila:           req.Upazila,
		District:          req.District,
		PostalCode:        req.PostalCode,
		Bedrooms:          req.Bedrooms,
		Bathrooms:         req.Bathrooms,
		Area:              req.Area,
		Description:       req.Description,
		Features:          req.Features,
		BangladeshDetails: req.BangladeshDetails,
	}

	if req.PropertyType != nil {
		pt := models.PropertyType(*req.PropertyType)
		upd.PropertyType = &pt
	}
	if req.ListingType != nil {
		lt := models.ListingType(*req.ListingType)
		upd.ListingType = &lt
	}

	listing, err := h.svc.UpdateListing(r.Context(), middleware.ProfileFrom(r.Context()), chi.URLParam(r, "id"), upd)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// DeleteListing — DELETE /properties/{id}.
func (h *Handlers) DeleteListing(w http.ResponseWriter, r *http.Request) {
	if err := h.svc.DeleteListing(r.Context(), middleware.ProfileFrom(r.Context()), chi.URLParam(r, "id")); err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// PhotoPresign — POST /properties/{id}/photos/presign.
func (h *Handlers) PhotoPresign(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	info, err := h.svc.PhotoUploadURL(r.Context(), middleware.ProfileFrom(r.Context()),
		chi.URLParam(r, "id"), req.ContentType, req.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromInfo(info))
}

// PhotoConfirm — POST /properties/{id}/photos/confirm.
func (h *Handlers) PhotoConfirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeStrict(r, &req); err != nil || req.Key == "" {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	listing, err := h.svc.ConfirmPhoto(r.Context(), middleware.ProfileFrom(r.Context()),
		chi.URLParam(r, "id"), req.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}
