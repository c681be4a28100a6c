package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/memberhub/backend/internal/model"
	"github.com/memberhub/backend/internal/repository"
	"github.com/memberhub/backend/internal/service"
	"github.com/memberhub/backend/pkg/auth"
)

// MemberHandler handles the public membership application form and the admin
// member directory.
type MemberHandler struct {
	directory service.MemberDirectoryService
	deletion  service.MemberDeletionService
}

// NewMemberHandler creates a MemberHandler with the given services.
func NewMemberHandler(directory service.MemberDirectoryService, deletion service.MemberDeletionService) *MemberHandler {
	return &MemberHandler{directory: directory, deletion: deletion}
}

// sourceParam reads the ?source= query parameter. Anything other than "users"
// routes to the members collection, matching the directory's defaulting.
func sourceParam(r *http.Request) string {
	if r.URL.Query().Get("source") == model.SourceUsers {
		return model.SourceUsers
	}
	return model.SourceMembers
}

type applyRequest struct {
	Name      string `json:"name"`
	Email     string `json:"email"`
	StudentID string `json:"student_id"`
	Course    string `json:"course"`
	Year      string `json:"year"`
}

// Apply handles POST /api/members/register (public).
// name and email are required.
func (h *MemberHandler) Apply(w http.ResponseWriter, r *http.Request) {
	var req applyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		writeError(w, http.StatusBadRequest, "name_required")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}

	m := &model.Member{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		StudentID: req.StudentID,
		Course:    req.Course,
		Year:      req.Year,
	}
	if err := h.directory.Apply(r.Context(), m); err != nil {
		writeError(w, http.StatusInternalServerError, "apply_failed")
		return
	}

	writeJSON(w, http.StatusCreated, m)
}

// List handles GET /api/admin/members. Supports ?q= search over
// name/email/student id. Admin accounts are excluded from the result.
func (h *MemberHandler) List(w http.ResponseWriter, r *http.Request) {
	members, err := h.directory.List(r.Context(), model.MemberListOptions{
		Search: r.URL.Query().Get("q"),
	})
	if err != nil {
		writeError(w, http.StatusInternalServerError, "list_failed")
		return
	}

	// Return [] not null for empty lists
	if members == nil {
		members = []*model.Member{}
	}
	writeJSON(w, http.StatusOK, map[string]any{"members": members})
}

// Stats handles GET /api/admin/members/stats.
func (h *MemberHandler) Stats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.directory.Stats(r.Context())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stats_failed")
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// Approve handles POST /api/admin/members/{id}/approve?source=.
func (h *MemberHandler) Approve(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func() error {
		return h.directory.Approve(r.Context(), r.PathValue("id"), sourceParam(r))
	}, "approve_failed")
}

// Reject handles POST /api/admin/members/{id}/reject?source=.
func (h *MemberHandler) Reject(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func() error {
		return h.directory.Reject(r.Context(), r.PathValue("id"), sourceParam(r))
	}, "reject_failed")
}

type roleRequest struct {
	Role string `json:"role"`
}

// UpdateRole handles PATCH /api/admin/members/{id}/role?source=.
func (h *MemberHandler) UpdateRole(w http.ResponseWriter, r *http.Request) {
	var req roleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Role != model.RoleMember && req.Role != model.RoleAdmin {
		writeError(w, http.StatusBadRequest, "invalid_role")
		return
	}

	h.mutate(w, r, func() error {
		return h.directory.UpdateRole(r.Context(), r.PathValue("id"), req.Role, sourceParam(r))
	}, "role_update_failed")
}

// Update handles PUT /api/admin/members/{id}?source=.
func (h *MemberHandler) Update(w http.ResponseWriter, r *http.Request) {
	var upd model.MemberUpdate
	if err := json.NewDecoder(r.Body).Decode(&upd); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if strings.TrimSpace(upd.Name) == "" {
		writeError(w, http.StatusBadRequest, "name_required")
		return
	}
	switch upd.Status {
	case model.StatusActive, model.StatusPending, model.StatusInactive:
	default:
		writeError(w, http.StatusBadRequest, "invalid_status")
		return
	}

	h.mutate(w, r, func() error {
		return h.directory.Update(r.Context(), r.PathValue("id"), sourceParam(r), upd)
	}, "update_failed")
}

// Delete handles DELETE /api/admin/members/{id}?source=. For the users source
// this removes the credential record and the profile together; DeleteAccount
// does the same behind the service-level admin check.
func (h *MemberHandler) Delete(w http.ResponseWriter, r *http.Request) {
	h.mutate(w, r, func() error {
		return h.directory.Delete(r.Context(), r.PathValue("id"), sourceParam(r))
	}, "delete_failed")
}

// DeleteAccount handles DELETE /api/admin/users/{id}. It is the privileged
// delete: the service re-checks the caller's admin role itself, so the route
// sits behind authentication only. Error codes mirror the service contract.
func (h *MemberHandler) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	callerID, _ := auth.UserIDFromContext(r.Context())

	err := h.deletion.DeleteMember(r.Context(), callerID, r.PathValue("id"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, map[string]any{
			"success": true,
			"message": "Member deleted from database and authentication",
		})
	case errors.Is(err, service.ErrUnauthenticated):
		writeError(w, http.StatusUnauthorized, "unauthenticated")
	case errors.Is(err, service.ErrInvalidArgument):
		writeError(w, http.StatusBadRequest, "invalid-argument")
	case errors.Is(err, service.ErrPermissionDenied):
		writeError(w, http.StatusForbidden, "permission-denied")
	case errors.Is(err, repository.ErrNotFound):
		writeError(w, http.StatusNotFound, "not_found")
	default:
		writeError(w, http.StatusInternalServerError, "internal")
	}
}

// mutate runs a directory mutation and maps the shared error cases.
func (h *MemberHandler) mutate(w http.ResponseWriter, r *http.Request, fn func() error, failCode string) {
	if err := fn(); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, failCode)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}
