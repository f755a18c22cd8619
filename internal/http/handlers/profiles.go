package handlers

import (
	"net/http"

	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
	"github.com/ruff27/banglaghar/internal/http/middleware"
)

// updateProfileRequest — тело PUT /profiles/me.
type updateProfileRequest struct {
	DisplayName string `json:"displayName"`
}

// Me — GET /profiles/me: профиль владельца токена, ленивое создание
// при первом обращении.
func (h *Handlers) Me(w http.ResponseWriter, r *http.Request) {
	profile, err := h.svc.MyProfile(r.Context(), middleware.ClaimsFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// UpdateMe — PUT /profiles/me.
func (h *Handlers) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	profile, err := h.svc.UpdateDisplayName(r.Context(), middleware.ProfileFrom(r.Context()), req.DisplayName)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// GovtIDPresign — POST /profiles/me/govt-id/presign.
func (h *Handlers) GovtIDPresign(w http.ResponseWriter, r *http.Request) {
	var req presignRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	info, err := h.svc.GovtIDUploadURL(r.Context(), middleware.ProfileFrom(r.Context()),
		req.ContentType, req.ContentLength)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, presignFromInfo(info))
}

// GovtIDConfirm — POST /profiles/me/govt-id/confirm: фиксирует документ
// и переводит заявку продавца в pending.
func (h *Handlers) GovtIDConfirm(w http.ResponseWriter, r *http.Request) {
	var req confirmRequest
	if err := decodeStrict(r, &req); err != nil || req.Key == "" {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	profile, err := h.svc.ConfirmGovtID(r.Context(), middleware.ProfileFrom(r.Context()), req.Key)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

// MyListings — GET /profiles/me/listings.
func (h *Handlers) MyListings(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.MyListings(r.Context(), middleware.ProfileFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}
