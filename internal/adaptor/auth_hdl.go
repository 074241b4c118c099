package adaptor

import (
	"errors"
	"net/http"

	"renovation-tracker/internal/access"
	"renovation-tracker/internal/dto/request"
	"renovation-tracker/internal/usecase"
	"renovation-tracker/pkg/metrics"
	"renovation-tracker/pkg/middleware"
	"renovation-tracker/pkg/utils"

	"go.uber.org/zap"
)

type AuthHandler struct {
	service usecase.AuthService
	view    *View
	session utils.SessionConfig
	log     *zap.Logger
}

func NewAuthHandler(service usecase.AuthService, view *View, session utils.SessionConfig, log *zap.Logger) *AuthHandler {
	return &AuthHandler{
		service: service,
		view:    view,
		session: session,
		log:     log.With(zap.String("handler", "auth")),
	}
}

// LoginPage handles GET /login
func (h *AuthHandler) LoginPage(w http.ResponseWriter, r *http.Request) {
	if h.loggedIn(r) {
		utils.Redirect(w, r, "/")
		return
	}

	h.view.Render(w, r, http.StatusOK, "login", PageData{Title: "Login"})
}

// Login handles POST /login
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	// an existing session is kept; credentials are not checked again
	if h.loggedIn(r) {
		utils.Redirect(w, r, "/")
		return
	}

	req := &request.LoginRequest{
		Username: r.PostFormValue("username"),
		Password: r.PostFormValue("password"),
	}
	meta := request.ClientMeta{
		UserAgent: r.UserAgent(),
		IPAddress: middleware.ClientIP(r),
	}

	resp, err := h.service.Login(r.Context(), req, meta)
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			utils.SetFlash(w, r, utils.FlashDanger, "Invalid username or password.")
			h.view.Render(w, r, http.StatusUnauthorized, "login", PageData{Title: "Login"})
			return
		}
		h.log.Error("Failed to login", zap.Error(err))
		h.view.InternalError(w, r)
		return
	}

	utils.SetSessionCookie(w, resp.Token, resp.ExpiresAt, h.session.CookieSecure)
	utils.RedirectWithFlash(w, r, "/customer_list", utils.FlashSuccess, "Login successful!")
}

// Throttled answers a login attempt rejected by the rate limiter.
func (h *AuthHandler) Throttled(w http.ResponseWriter, r *http.Request) {
	metrics.LoginsTotal.WithLabelValues("throttled").Inc()
	utils.SetFlash(w, r, utils.FlashWarning, "Too many login attempts. Please wait a moment and try again.")
	h.view.Render(w, r, http.StatusTooManyRequests, "login", PageData{Title: "Login"})
}

// Logout handles GET /logout
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	if token, ok := utils.GetTokenFromContext(r.Context()); ok {
		if err := h.service.Logout(r.Context(), token); err != nil {
			h.log.Error("Failed to revoke session", zap.Error(err))
		}
	}

	utils.ClearSessionCookie(w, h.session.CookieSecure)
	utils.RedirectWithFlash(w, r, "/", utils.FlashInfo, "You have been logged out.")
}

func (h *AuthHandler) loggedIn(r *http.Request) bool {
	identity, _ := h.view.identity.CurrentIdentity(r.Context())
	return access.IsAuthenticated(identity)
}
