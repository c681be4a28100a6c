package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/memberhub/backend/internal/repository"
	"github.com/memberhub/backend/internal/service"
	"github.com/memberhub/backend/pkg/auth"
)

const minPasswordLength = 8

// AuthConfig carries session settings for the auth handler.
type AuthConfig struct {
	SessionSecret []byte
	SessionTTL    time.Duration
	// SecureCookie should be true behind HTTPS.
	SecureCookie bool
}

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	authService service.AuthService
	cfg         AuthConfig
}

// NewAuthHandler creates an AuthHandler with the given service and config.
func NewAuthHandler(authService service.AuthService, cfg AuthConfig) *AuthHandler {
	if cfg.SessionTTL == 0 {
		cfg.SessionTTL = auth.DefaultSessionTTL
	}
	return &AuthHandler{authService: authService, cfg: cfg}
}

type registerRequest struct {
	Email     string `json:"email"`
	Password  string `json:"password"`
	FullName  string `json:"full_name"`
	StudentID string `json:"student_id"`
	Course    string `json:"course"`
	Year      string `json:"year"`
}

// Register handles POST /api/auth/register.
// email, password and full_name are required; password min 8 chars.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}

	req.Email = strings.TrimSpace(req.Email)
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, http.StatusBadRequest, "email_required")
		return
	}
	if len(req.Password) < minPasswordLength {
		writeError(w, http.StatusBadRequest, "password_too_short")
		return
	}
	if strings.TrimSpace(req.FullName) == "" {
		writeError(w, http.StatusBadRequest, "full_name_required")
		return
	}

	user, err := h.authService.Register(r.Context(), service.RegisterInput{
		Email:     req.Email,
		Password:  req.Password,
		FullName:  strings.TrimSpace(req.FullName),
		StudentID: req.StudentID,
		Course:    req.Course,
		Year:      req.Year,
	})
	if err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			writeError(w, http.StatusConflict, "email_taken")
			return
		}
		writeError(w, http.StatusInternalServerError, "register_failed")
		return
	}

	if err := h.setSessionCookie(w, user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	writeJSON(w, http.StatusCreated, user)
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Login handles POST /api/auth/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "credentials_required")
		return
	}

	user, err := h.authService.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			writeError(w, http.StatusUnauthorized, "invalid_credentials")
			return
		}
		writeError(w, http.StatusInternalServerError, "login_failed")
		return
	}

	if err := h.setSessionCookie(w, user.ID); err != nil {
		writeError(w, http.StatusInternalServerError, "session_failed")
		return
	}
	writeJSON(w, http.StatusOK, user)
}

// Logout handles POST /api/auth/logout. セッションクッキーを破棄する
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, userID string) error {
	token, err := auth.CreateSessionToken(userID, h.cfg.SessionSecret, h.cfg.SessionTTL)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.SessionCookieName(),
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.cfg.SessionTTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.SecureCookie,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
