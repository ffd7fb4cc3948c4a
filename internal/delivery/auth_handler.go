package delivery

import (
	"net/http"
	"time"

	"github.com/sams408/safeon-id-vault/internal/i18n"
	"github.com/sams408/safeon-id-vault/internal/middleware"
	"github.com/sams408/safeon-id-vault/internal/usecase"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

type AuthHandler struct {
	useCase usecase.AuthUseCase
	secure  bool
	base
}

// NewAuthHandler builds the handler. secure marks the session cookie as
// HTTPS-only.
func NewAuthHandler(uc usecase.AuthUseCase, secure bool, tr *i18n.Translator, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{
		useCase: uc,
		secure:  secure,
		base:    base{tr: tr, log: logger},
	}
}

// RegisterRoutes mounts the public endpoints. Session, UpdateProfile and
// ChangePassword live behind the auth middleware and are mounted by the caller.
func (h *AuthHandler) RegisterRoutes(router gin.IRouter) {
	auth := router.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", h.Login)
		auth.POST("/logout", h.Logout)
	}
}

type registerRequest struct {
	Name            string `json:"name" binding:"required"`
	Email           string `json:"email" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type passwordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	account, err := h.useCase.Register(c.Request.Context(), req.Name, req.Email, req.Password, req.ConfirmPassword)
	if err != nil {
		h.log.Warnf("Registration failed for %s: %v", req.Email, err)
		h.fail(c, err, "account")
		return
	}

	h.log.Infof("Account registered: ID %s", account.ID)
	SuccessResponse(c, http.StatusCreated, h.t(c, "auth.registered", nil), account)
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	session, err := h.useCase.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		h.log.Warnf("Login failed for %s: %v", req.Email, err)
		h.fail(c, err, "account")
		return
	}

	maxAge := int(time.Until(session.ExpiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, session.Token, maxAge, "/", "", h.secure, true)

	SuccessResponse(c, http.StatusOK, h.t(c, "auth.loggedIn", map[string]string{"name": session.Account.Name}), session)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(middleware.TokenCookie, "", -1, "/", "", h.secure, true)
	SuccessResponse(c, http.StatusOK, h.t(c, "auth.loggedOut", nil), nil)
}

func (h *AuthHandler) Session(c *gin.Context) {
	account, err := h.useCase.Profile(c.Request.Context(), middleware.AccountID(c))
	if err != nil {
		h.fail(c, err, "account")
		return
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "auth.session", nil), account)
}

func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	var updates map[string]interface{}
	if err := c.ShouldBindJSON(&updates); err != nil {
		h.badRequest(c, err)
		return
	}

	id := middleware.AccountID(c)
	account, err := h.useCase.UpdateProfile(c.Request.Context(), id, updates)
	if err != nil {
		h.log.Warnf("Profile update failed for account %s: %v", id, err)
		h.fail(c, err, "account")
		return
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "auth.profileUpdated", nil), account)
}

func (h *AuthHandler) ChangePassword(c *gin.Context) {
	var req passwordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.badRequest(c, err)
		return
	}

	id := middleware.AccountID(c)
	if err := h.useCase.ChangePassword(c.Request.Context(), id, req.CurrentPassword, req.NewPassword, req.ConfirmPassword); err != nil {
		h.log.Warnf("Password change failed for account %s: %v", id, err)
		h.fail(c, err, "account")
		return
	}
	SuccessResponse(c, http.StatusOK, h.t(c, "auth.passwordChanged", nil), nil)
}
