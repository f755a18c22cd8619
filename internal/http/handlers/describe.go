package handlers

import (
	"net/http"

	"github.com/ruff27/banglaghar/internal/ai"
	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
)

// describeRequest — тело POST /generate-description.
type describeRequest struct {
	PropertyData ai.ListingFacts `json:"propertyData"`
}

// GenerateDescription — POST /generate-description.
func (h *Handlers) GenerateDescription(w http.ResponseWriter, r *http.Request) {
	var req describeRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	text, err := h.svc.GenerateDescription(r.Context(), req.PropertyData)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"description": text})
}
