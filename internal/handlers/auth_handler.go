package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"mentorhub_backend/internal/config"
	"mentorhub_backend/internal/middleware"
	"mentorhub_backend/internal/services"
	"mentorhub_backend/internal/services/dto"
)

type AuthHandler struct {
	*BaseHandler
	authService services.AuthService
	cfg         *config.Config
}

func NewAuthHandler(base *BaseHandler, authService services.AuthService, cfg *config.Config) *AuthHandler {
	return &AuthHandler{
		BaseHandler: base,
		authService: authService,
		cfg:         cfg,
	}
}

func (h *AuthHandler) Signup(c *gin.Context) {
	var req dto.SignupRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	user, err := h.authService.Signup(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "User registered",
		"user":    user,
	})
}

func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	response, err := h.authService.Login(&req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, middleware.AccessTokenCookie, response.AccessToken, h.cfg.JWT.AccessTTLHours*3600)
	h.setSessionCookie(c, middleware.RefreshTokenCookie, response.RefreshToken, h.cfg.JWT.RefreshTTLHours*3600)

	c.JSON(http.StatusOK, response)
}

func (h *AuthHandler) Logout(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.authService.Logout(userID); err != nil {
		h.HandleServiceError(c, err)
		return
	}

	h.setSessionCookie(c, middleware.AccessTokenCookie, "", -1)
	h.setSessionCookie(c, middleware.RefreshTokenCookie, "", -1)

	c.JSON(http.StatusOK, gin.H{"message": "User logged out successfully"})
}

func (h *AuthHandler) CheckAuth(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	user, err := h.authService.GetIdentity(userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"user":    user,
	})
}

// setSessionCookie writes an httpOnly cookie. Production gets
// Secure + SameSite=None so cross-site frontends can hold the session;
// anything else uses SameSite=Lax over plain HTTP.
func (h *AuthHandler) setSessionCookie(c *gin.Context, name, value string, maxAge int) {
	secure := h.cfg.IsProduction()
	if secure {
		c.SetSameSite(http.SameSiteNoneMode)
	} else {
		c.SetSameSite(http.SameSiteLaxMode)
	}
	c.SetCookie(name, value, maxAge, "/", "", secure, true)
}
