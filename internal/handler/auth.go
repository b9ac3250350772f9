package handler

import (
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/dewinson2/MJCL/internal/auth"
	"github.com/dewinson2/MJCL/internal/domain"
	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/metrics"
)

// SessionCookieName is the cookie carrying the admin session token
const SessionCookieName = "admin_session"

// sessionCookiePath scopes the cookie to the admin API
const sessionCookiePath = "/api/v1/admin"

// LoginRequest is the admin login body
type LoginRequest struct {
	Code string `json:"code"`
}

// LoginResponse is returned on a successful login
type LoginResponse struct {
	Message   string    `json:"message"`
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}

// AuthHandler exchanges the access code for a session
type AuthHandler struct {
	service      auth.Service
	secureCookie bool
}

// NewAuthHandler creates an auth handler. secureCookie marks the session
// cookie Secure, which production deployments behind TLS should set.
func NewAuthHandler(service auth.Service, secureCookie bool) *AuthHandler {
	return &AuthHandler{service: service, secureCookie: secureCookie}
}

// HandleLogin verifies the access code and sets the session cookie
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	fromForm := func(get formValues) { req.Code = get("code") }
	if !decodeBody(w, r, &req, fromForm, "Admin login") {
		return
	}

	sess, err := h.service.Login(r.Context(), req.Code)
	if err != nil {
		metrics.AdminLogins.WithLabelValues(metrics.ResultFailure).Inc()
		if errors.Is(err, domain.ErrUnauthorized) {
			respondError(w, http.StatusUnauthorized, ErrMsgInvalidAccessCode)
			return
		}
		logger.FromContext(r.Context()).Error("Admin login failed", "error", err)
		respondError(w, http.StatusInternalServerError, ErrMsgGenericServerError)
		return
	}
	metrics.AdminLogins.WithLabelValues(metrics.ResultSuccess).Inc()

	http.SetCookie(w, h.cookie(sess.Token, sess.ExpiresAt))
	respondJSON(w, http.StatusOK, LoginResponse{
		Message:   MsgLoggedIn,
		Token:     sess.Token,
		ExpiresAt: sess.ExpiresAt,
	})
}

// HandleLogout revokes the current session and clears the cookie
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if token := SessionToken(r); token != "" {
		if err := h.service.Logout(r.Context(), token); err != nil {
			logger.FromContext(r.Context()).Warn("Logout with invalid session", "error", err)
		}
	}

	expired := h.cookie("", time.Unix(0, 0))
	expired.MaxAge = -1
	http.SetCookie(w, expired)
	respondJSON(w, http.StatusOK, domain.Succeeded(MsgLoggedOut))
}

func (h *AuthHandler) cookie(value string, expires time.Time) *http.Cookie {
	return &http.Cookie{
		Name:     SessionCookieName,
		Value:    value,
		Path:     sessionCookiePath,
		Expires:  expires,
		HttpOnly: true,
		Secure:   h.secureCookie,
		SameSite: http.SameSiteLaxMode,
	}
}

// SessionToken extracts the session token from the Authorization bearer
// header, falling back to the session cookie.
func SessionToken(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(SessionCookieName); err == nil {
		return c.Value
	}
	return ""
}
