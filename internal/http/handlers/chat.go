package handlers

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	apierrors "github.com/ruff27/banglaghar/internal/http/errors"
	"github.com/ruff27/banglaghar/internal/http/middleware"
	"github.com/ruff27/banglaghar/internal/models"
)

// ChatToken — GET /chat/token: подписанный token request для
// подключения клиента к realtime-каналам.
func (h *Handlers) ChatToken(w http.ResponseWriter, r *http.Request) {
	claims := middleware.ClaimsFrom(r.Context())

	token, err := h.svc.ChatToken(r.Context(), claims.Sub)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, token)
}

// startConversationRequest — тело POST /chat/conversations.
type startConversationRequest struct {
	ReceiverID string `json:"receiverId"`
	PropertyID string `json:"propertyId"`
}

// StartConversation — POST /chat/conversations: найти или создать диалог.
func (h *Handlers) StartConversation(w http.ResponseWriter, r *http.Request) {
	var req startConversationRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	conv, err := h.svc.StartConversation(r.Context(), middleware.ProfileFrom(r.Context()),
		req.ReceiverID, req.PropertyID)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, conv)
}

// Conversations — GET /chat/conversations.
func (h *Handlers) Conversations(w http.ResponseWriter, r *http.Request) {
	items, err := h.svc.Conversations(r.Context(), middleware.ProfileFrom(r.Context()))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, items)
}

// sendMessageRequest — тело POST /chat/conversations/{id}/messages.
type sendMessageRequest struct {
	Text string `json:"text"`
}

// SendMessage — POST /chat/conversations/{id}/messages.
func (h *Handlers) SendMessage(w http.ResponseWriter, r *http.Request) {
	var req sendMessageRequest
	if err := decodeStrict(r, &req); err != nil {
		apierrors.WriteError(w, r, errBadBody())
		return
	}

	msg, err := h.svc.SendMessage(r.Context(), middleware.ProfileFrom(r.Context()),
		chi.URLParam(r, "id"), req.Text)
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, msg)
}

// messagesPage — страница сообщений для фронта: выборка последних,
// элементы в хронологическом порядке.
type messagesPage struct {
	Messages      []models.Message `json:"messages"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	TotalMessages int64            `json:"totalMessages"`
}

// Messages — GET /chat/conversations/{id}/messages?page&limit.
func (h *Handlers) Messages(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	page, err := h.svc.Messages(r.Context(), middleware.ProfileFrom(r.Context()),
		chi.URLParam(r, "id"), intQuery(q.Get("page"), 1), intQuery(q.Get("limit"), 30))
	if err != nil {
		apierrors.WriteError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, messagesPage{
		Messages:      page.Items,
		CurrentPage:   page.Page,
		TotalPages:    page.TotalPages,
		TotalMessages: page.Total,
	})
}
