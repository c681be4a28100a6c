package handler

import (
	"errors"
	"net/http"

	"github.com/memberhub/backend/internal/repository"
	"github.com/memberhub/backend/pkg/auth"
)

// MeHandler は現在のユーザー情報を返すハンドラ
type MeHandler struct {
	userRepo repository.UserRepository
}

// NewMeHandler は MeHandler を生成する（DI: UserRepository を注入）
func NewMeHandler(userRepo repository.UserRepository) *MeHandler {
	return &MeHandler{userRepo: userRepo}
}

// Me は GET /api/me を処理する。RequireAuth の後ろに置くこと
func (h *MeHandler) Me(w http.ResponseWriter, r *http.Request) {
	userID, ok := auth.UserIDFromContext(r.Context())
	if !ok {
		writeError(w, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.userRepo.FindByID(r.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found")
			return
		}
		writeError(w, http.StatusInternalServerError, "lookup_failed")
		return
	}

	writeJSON(w, http.StatusOK, user)
}
