package handlers

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"

	"github.com/The0nly0ne1/MemeVotingApp/internal/application/auth"
	"github.com/The0nly0ne1/MemeVotingApp/internal/infrastructure/http/middleware"
)

// RefreshCookieName is the cookie carrying the refresh credential.
const RefreshCookieName = "refresh_token"

type AuthHandler struct {
	register   *auth.Register
	login      *auth.Login
	refresh    *auth.Refresh
	logout     *auth.Logout
	refreshTTL time.Duration
	validate   *validator.Validate
	log        zerolog.Logger
}

func NewAuthHandler(register *auth.Register, login *auth.Login, refresh *auth.Refresh, logout *auth.Logout, refreshTTL time.Duration, log zerolog.Logger) *AuthHandler {
	return &AuthHandler{
		register:   register,
		login:      login,
		refresh:    refresh,
		logout:     logout,
		refreshTTL: refreshTTL,
		validate:   validator.New(),
		log:        log,
	}
}

func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,max=64"`
		Email    string `json:"email" validate:"required,email,max=254"`
		Password string `json:"password" validate:"required,min=8,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "don't leave the fields blank")
		return
	}
	username := SanitizeUsername(body.Username)
	email := SanitizeEmail(body.Email)
	password := SanitizePassword(body.Password)
	if username == "" || email == "" || password == "" {
		writeErr(w, http.StatusBadRequest, "", "invalid field length")
		return
	}
	result, err := h.register.Execute(r.Context(), auth.RegisterInput{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		AuditLog(h.log, r, "user.register", "", false, err.Error())
		middleware.RecordAuthAttempt("register", false)
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("register failed")
		}
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.register", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("register", true)
	writeJSON(w, http.StatusCreated, map[string]interface{}{
		"id":         result.User.ID.String(),
		"username":   result.User.Username,
		"email":      result.User.Email,
		"created_at": result.User.CreatedAt,
	})
}

func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Username string `json:"username" validate:"required,max=64"`
		Password string `json:"password" validate:"required,max=128"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "invalid body")
		return
	}
	if err := h.validate.Struct(&body); err != nil {
		writeErr(w, http.StatusBadRequest, "", "enter all fields")
		return
	}
	result, err := h.login.Execute(r.Context(), auth.LoginInput{
		Username: SanitizeUsername(body.Username),
		Password: SanitizePassword(body.Password),
	})
	if err != nil {
		AuditLog(h.log, r, "user.login", "", false, err.Error())
		middleware.RecordAuthAttempt("login", false)
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("login failed")
		}
		writeDomainErr(w, err)
		return
	}
	AuditLog(h.log, r, "user.login", result.User.ID.String(), true, "")
	middleware.RecordAuthAttempt("login", true)
	h.setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
		"user": map[string]interface{}{
			"id":       result.User.ID.String(),
			"username": result.User.Username,
		},
	})
}

// Refresh rotates the session named by the refresh cookie. Every failure
// mode is a plain 403; the client learns nothing about which check tripped.
func (h *AuthHandler) Refresh(w http.ResponseWriter, r *http.Request) {
	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		writeErr(w, http.StatusForbidden, "", "missing refresh token")
		return
	}
	result, err := h.refresh.Execute(r.Context(), auth.RefreshInput{RefreshToken: cookie.Value})
	if err != nil {
		AuditLog(h.log, r, "auth.refresh", "", false, err.Error())
		middleware.RecordAuthAttempt("refresh", false)
		if code, _ := statusFor(err); code == http.StatusInternalServerError {
			h.log.Error().Err(err).Msg("refresh failed")
			writeErr(w, http.StatusInternalServerError, "", "internal error")
			return
		}
		writeErr(w, http.StatusForbidden, "", "invalid refresh token")
		return
	}
	AuditLog(h.log, r, "auth.refresh", result.UserID, true, "")
	middleware.RecordAuthAttempt("refresh", true)
	h.setRefreshCookie(w, result.RefreshToken)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"access_token": result.AccessToken,
		"expires_in":   result.ExpiresIn,
	})
}

func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	token := ""
	if cookie, err := r.Cookie(RefreshCookieName); err == nil {
		token = cookie.Value
	}
	h.clearRefreshCookie(w)
	if err := h.logout.Execute(r.Context(), token); err != nil {
		h.log.Error().Err(err).Msg("logout failed")
		writeErr(w, http.StatusInternalServerError, "", "internal error")
		return
	}
	AuditLog(h.log, r, "user.logout", "", true, "")
	writeJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *AuthHandler) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(h.refreshTTL.Seconds()),
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}

func (h *AuthHandler) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
