package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
)

// wishlistItemRequest — тело POST/DELETE для избранного.
type wishlistItemRequest struct {
	PropertyID string `json:"propertyId"`
}

// AddToWishlist — POST /users/{username}/wishlist.
func (h *Handlers) AddToWishlist(w http.ResponseWriter, r *http.Request) {
	var req wishlistItemRequest
	if err := decodeStrict(r, &req); err != nil || req.PropertyID == "" {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	wl, err := h.svc.AddToWishlist(r.Context(), chi.URLParam(r, "username"), req.PropertyID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wl)
}

// Wishlist — GET /users/{username}/wishlist: избранное с раскрытыми
// объявлениями.
func (h *Handlers) Wishlist(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Wishlist(r.Context(), chi.URLParam(r, "username"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// RemoveFromWishlist — DELETE /users/{username}/wishlist/{propertyId}.
func (h *Handlers) RemoveFromWishlist(w http.ResponseWriter, r *http.Request) {
	wl, err := h.svc.RemoveFromWishlist(r.Context(), chi.URLParam(r, "username"), chi.URLParam(r, "propertyId"))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, wl)
}
