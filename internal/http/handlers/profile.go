package handlers

import (
	"errors"
	"net/http"

	"casino_arcade/internal/http/middleware"
	"casino_arcade/internal/service"

	"github.com/gin-gonic/gin"
)

type credentials struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentials
	// битое тело равносильно пустым полям
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	user, err := h.AuthService.Register(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(c, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrUsernameTaken):
			respondError(c, http.StatusBadRequest, "username already taken")
		default:
			respondInternal(c, err, "register failed")
		}
		return
	}

	h.AuditService.LogRegister(ctx, user.ID, user.Username, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "username": user.Username})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentials
	_ = c.ShouldBindJSON(&req)

	ctx := c.Request.Context()
	user, err := h.AuthService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingCredentials):
			respondError(c, http.StatusBadRequest, "username and password are required")
		case errors.Is(err, service.ErrInvalidCredentials):
			respondError(c, http.StatusUnauthorized, "invalid username or password")
		default:
			respondInternal(c, err, "login failed")
		}
		return
	}

	// старая сессия этого браузера больше не нужна
	if sid, ok := middleware.SessionID(c); ok {
		_ = h.Sessions.Delete(ctx, sid)
	}

	sess, err := h.Sessions.Create(ctx, user.ID)
	if err != nil {
		respondInternal(c, err, "create session failed")
		return
	}
	h.setSessionCookie(c, sess.ID, int(h.SessionTTL.Seconds()))

	h.AuditService.LogLogin(ctx, user.ID, c.ClientIP(), c.Request.UserAgent())

	c.JSON(http.StatusOK, user.Snapshot())
}

func (h *Handler) Logout(c *gin.Context) {
	ctx := c.Request.Context()
	if sid, ok := middleware.SessionID(c); ok {
		if err := h.Sessions.Delete(ctx, sid); err != nil {
			respondInternal(c, err, "delete session failed")
			return
		}
	}
	if userID, ok := getUserID(c); ok {
		h.AuditService.LogLogout(ctx, userID, c.ClientIP(), c.Request.UserAgent())
	}

	h.setSessionCookie(c, "", -1)
	c.JSON(http.StatusOK, gin.H{"message": "logged out"})
}

// Текущий профиль пользователя
func (h *Handler) CurrentUser(c *gin.Context) {
	userID, ok := getUserID(c)
	if !ok {
		respondError(c, http.StatusUnauthorized, "unauthorized")
		return
	}

	user, err := h.AuthService.CurrentUser(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrUserNotFound) {
			respondError(c, http.StatusUnauthorized, "unauthorized")
			return
		}
		respondInternal(c, err, "load user failed")
		return
	}
	c.JSON(http.StatusOK, user.Snapshot())
}

func (h *Handler) setSessionCookie(c *gin.Context, value string, maxAge int) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.SessionCookie, value, maxAge, "/", "", h.CookieSecure, true)
}
