package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
	"github.com/memberhub/backend/internal/service"
	"github.com/memberhub/backend/pkg/auth"
)

const maxMessageLength = 5000

// MessageHandler handles contact form submission and the admin inbox.
type MessageHandler struct {
	messages service.MessageService
}

// NewMessageHandler creates a MessageHandler with the given service.
func NewMessageHandler(messages service.MessageService) *MessageHandler {
	return &MessageHandler{messages: messages}
}

// submitRequest is the expected JSON body for POST /api/contact.
type submitRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// Submit handles POST /api/contact.
// message is required, max 5000 chars; name and email are optional. Messages
// without an email get no notification when replied to.
func (h *MessageHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	if req.Message == "" {
		writeError(w, http.StatusBadRequest, "message_required")
		return
	}
	if len([]rune(req.Message)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "message_too_long")
		return
	}

	msg := &model.Message{
		Name:    req.Name,
		Email:   req.Email,
		Message: req.Message,
	}
	if err := h.messages.Submit(r.Context(), msg); err != nil {
		writeError(w, http.StatusInternalServerError, "submit_failed")
		return
	}

	writeJSON(w, http.StatusCreated, map[string]string{"id": msg.ID})
}

// AdminList handles GET /api/admin/messages (admin-gated).
func (h *MessageHandler) AdminList(w http.ResponseWriter, r *http.Request) {
	messages, err := h.messages.List(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if messages == nil {
		messages = []*model.Message{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"messages": messages})
}

type replyRequest struct {
	Content string `json:"content"`
}

// Reply handles POST /api/admin/messages/{id}/reply (admin-gated).
// The replier identity comes from the admin gate, not the request body.
func (h *MessageHandler) Reply(w http.ResponseWriter, r *http.Request) {
	var req replyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Content == "" {
		writeError(w, http.StatusBadRequest, "content_required")
		return
	}
	if len([]rune(req.Content)) > maxMessageLength {
		writeError(w, http.StatusBadRequest, "content_too_long")
		return
	}

	adminEmail := auth.AdminEmailFromContext(r.Context())
	if err := h.messages.Reply(r.Context(), r.PathValue("id"), req.Content, adminEmail); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "reply_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

type statusRequest struct {
	Status string `json:"status"`
}

// UpdateStatus handles PATCH /api/admin/messages/{id}/status (admin-gated).
func (h *MessageHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	var req statusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Status != model.MessageUnread && req.Status != model.MessageReplied {
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	if err := h.messages.UpdateStatus(r.Context(), r.PathValue("id"), req.Status); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "status_update_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Delete handles DELETE /api/admin/messages/{id} (admin-gated).
func (h *MessageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.messages.Delete(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "delete_failed")
		return
	}

	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
