package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
	"github.com/ruff27/banglaghar/internal/models"
)

// Stats — GET /admin/stats.
func (h *Handlers) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.svc.Stats(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, stats)
}

// PendingApprovals — GET /admin/pending-approvals.
func (h *Handlers) PendingApprovals(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.PendingApprovals(r.Context())
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// approvalResponse — результат approve/reject: профиль и признак того,
// менялся ли статус (false — заявка была не в pending).
type approvalResponse struct {
	User    *models.UserProfile `json:"user"`
	Changed bool                `json:"changed"`
}

// ApproveUser — PUT /admin/users/{id}/approve.
func (h *Handlers) ApproveUser(w http.ResponseWriter, r *http.Request) {
	profile, changed, err := h.svc.ApproveUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, approvalResponse{User: profile, Changed: changed})
}

// RejectUser — PUT /admin/users/{id}/reject.
func (h *Handlers) RejectUser(w http.ResponseWriter, r *http.Request) {
	profile, changed, err := h.svc.RejectUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, approvalResponse{User: profile, Changed: changed})
}

// usersPage — страница пользователей для фронта.
type usersPage struct {
	Users      []models.UserProfile `json:"users"`
	Total      int64                `json:"total"`
	Page       int                  `json:"page"`
	TotalPages int                  `json:"totalPages"`
}

// Users — GET /admin/users.
func (h *Handlers) Users(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.svc.Users(r.Context(), models.UserFilter{
		Page:   intQuery(q.Get("page"), 1),
		Limit:  intQuery(q.Get("limit"), 20),
		Sort:   q.Get("sort"),
		Order:  q.Get("order"),
		Search: q.Get("search"),
		Status: q.Get("status"),
	})
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, usersPage{
		Users:      page.Items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	})
}

// patchUserRequest — тело PUT /admin/users/{id}/status.
type patchUserRequest struct {
	IsAdmin        *bool   `json:"isAdmin"`
	ApprovalStatus *string `json:"approvalStatus"`
	AccountStatus  *string `json:"accountStatus"`
}

// PatchUser — PUT /admin/users/{id}/status.
func (h *Handlers) PatchUser(w http.ResponseWriter, r *http.Request) {
	var req patchUserRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	patch := models.UserPatch{IsAdmin: req.IsAdmin}
	if req.ApprovalStatus != nil {
		st := models.ApprovalStatus(*req.ApprovalStatus)
		patch.ApprovalStatus = &st
	}
	if req.AccountStatus != nil {
		st := models.AccountStatus(*req.AccountStatus)
		patch.AccountStatus = &st
	}

	profile, err := h.svc.PatchUser(r.Context(), chi.URLParam(r, "id"), patch)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GovtIDURL — GET /admin/users/{id}/govt-id-url.
func (h *Handlers) GovtIDURL(w http.ResponseWriter, r *http.Request) {
	url, err := h.svc.GovtIDViewURL(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"url": url})
}

// listingsPage — страница объявлений для фронта.
type listingsPage struct {
	Listings   []models.Listing `json:"listings"`
	Total      int64            `json:"total"`
	Page       int              `json:"page"`
	TotalPages int              `json:"totalPages"`
}

// AdminListings — GET /admin/listings.
func (h *Handlers) AdminListings(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := models.AdminListingFilter{
		Page:         intQuery(q.Get("page"), 1),
		Limit:        intQuery(q.Get("limit"), 20),
		Sort:         q.Get("sort"),
		Order:        q.Get("order"),
		Search:       q.Get("search"),
		ListingType:  q.Get("listingType"),
		PropertyType: q.Get("propertyType"),
	}

	if v := q.Get("isHidden"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsHidden = &b
		}
	}
	if v := q.Get("isFeatured"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			filter.IsFeatured = &b
		}
	}

	page, err := h.svc.AdminListings(r.Context(), filter)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listingsPage{
		Listings:   page.Items,
		Total:      page.Total,
		Page:       page.Page,
		TotalPages: page.TotalPages,
	})
}

// visibilityRequest — тело PUT /admin/listings/{id}/visibility.
type visibilityRequest struct {
	IsHidden bool `json:"isHidden"`
}

// SetVisibility — PUT /admin/listings/{id}/visibility.
func (h *Handlers) SetVisibility(w http.ResponseWriter, r *http.Request) {
	var req visibilityRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	listing, err := h.svc.SetListingVisibility(r.Context(), chi.URLParam(r, "id"), req.IsHidden)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// featureRequest — тело PUT /admin/listings/{id}/feature.
type featureRequest struct {
	Featured bool `json:"featured"`
}

// FeatureListing — PUT /admin/listings/{id}/feature: размещение на
// витрине с вытеснением самых старых при заполненном лимите.
func (h *Handlers) FeatureListing(w http.ResponseWriter, r *http.Request) {
	var req featureRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	listing, err := h.svc.FeatureListing(r.Context(), chi.URLParam(r, "id"), req.Featured)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, listing)
}

// deleteMultipleRequest — тело POST /admin/listings/delete-multiple.
type deleteMultipleRequest struct {
	IDs []string `json:"ids"`
}

// DeleteMultiple — POST /admin/listings/delete-multiple.
func (h *Handlers) DeleteMultiple(w http.ResponseWriter, r *http.Request) {
	var req deleteMultipleRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	deleted, err := h.svc.DeleteListings(r.Context(), req.IDs)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]int64{"deleted": deleted})
}

// intQuery разбирает положительный числовой query-параметр.
func intQuery(raw string, def int) int {
	if raw == "" {
		return def
	}

	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}

	return v
}
