package handler

import (
	"errors"
	"net/http"

	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
	"github.com/memberhub/backend/internal/service"
	"github.com/memberhub/backend/pkg/auth"
)

// NotificationHandler serves the authenticated user's notification feed. The
// UI polls these endpoints on an interval; there is no push channel.
type NotificationHandler struct {
	notifications service.NotificationService
	userRepo      repository.UserRepository
}

// NewNotificationHandler creates a NotificationHandler.
func NewNotificationHandler(notifications service.NotificationService, userRepo repository.UserRepository) *NotificationHandler {
	return &NotificationHandler{notifications: notifications, userRepo: userRepo}
}

// callerEmail resolves the authenticated caller's email. Notifications are
// addressed by email, not user id.
func (h *NotificationHandler) callerEmail(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return "", false
	}
	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found")
			return "", false
		}
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return "", false
	}
	return user.Email, true
}

// List handles GET /api/me/notifications.
func (h *NotificationHandler) List(w http.ResponseWriter, r *http.Request) {
	email, ok := h.callerEmail(w, r)
	if !ok {
		return
	}

	notifications, err := h.notifications.ListForUser(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if notifications == nil {
		notifications = []*model.Notification{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"notifications": notifications})
}

// UnreadCount handles GET /api/me/notifications/unread-count.
func (h *NotificationHandler) UnreadCount(w http.ResponseWriter, r *http.Request) {
	email, ok := h.callerEmail(w, r)
	if !ok {
		return
	}

	count, err := h.notifications.UnreadCount(r.Context(), email)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "count_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]int{"count": count})
}

// MarkRead handles PATCH /api/me/notifications/{id}/read.
func (h *NotificationHandler) MarkRead(w http.ResponseWriter, r *http.Request) {
	if _, ok := auth.UserIDFromContext(r.Context()); !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	if err := h.notifications.MarkRead(r.Context(), r.PathValue("id")); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "mark_read_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// MarkAllRead handles POST /api/me/notifications/read-all. Safe to retry.
func (h *NotificationHandler) MarkAllRead(w http.ResponseWriter, r *http.Request) {
	email, ok := h.callerEmail(w, r)
	if !ok {
		return
	}

	if err := h.notifications.MarkAllRead(r.Context(), email); err != nil {
		writeError(w, http.StatusInternalServerError, "mark_all_read_failed")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
