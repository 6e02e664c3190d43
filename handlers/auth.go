package handlers

import (
	"net/http"

	"counselhub/middleware"
	"counselhub/models"
	"counselhub/services/auth"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// AuthHandler exposes registration, login and session endpoints for both
// account roles.
type AuthHandler struct {
	Auth auth.AuthService
}

// Register returns a registration handler bound to the given role.
func (h *AuthHandler) Register(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.RegisterRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid registration request", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := h.Auth.Register(role, req)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusCreated, resp)
	}
}

// Login returns a login handler bound to the given role.
func (h *AuthHandler) Login(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		logger := getLogger(c)

		var req models.LoginRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			logger.Error("Invalid login request", zap.Error(err))
			utils.JSONError(c, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := h.Auth.Login(role, req.Email, req.Password)
		if err != nil {
			utils.RespondError(c, err)
			return
		}
		c.JSON(http.StatusOK, resp)
	}
}

// VerifyToken resolves the presented token to its public profile. The auth
// middleware has already validated the token, so this only needs the
// identity it stored on the context.
func (h *AuthHandler) VerifyToken(c *gin.Context) {
	id := c.GetString(middleware.CtxUserID)
	role := models.Role(c.GetString(middleware.CtxRole))

	profile, err := h.Auth.Profile(id, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"valid": true, "user": profile})
}

// Profile returns the caller's public profile.
func (h *AuthHandler) Profile(c *gin.Context) {
	id := c.GetString(middleware.CtxUserID)
	role := models.Role(c.GetString(middleware.CtxRole))

	profile, err := h.Auth.Profile(id, role)
	if err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, profile)
}

// Logout revokes the caller's current session token.
func (h *AuthHandler) Logout(c *gin.Context) {
	id := c.GetString(middleware.CtxUserID)
	role := models.Role(c.GetString(middleware.CtxRole))

	if err := h.Auth.Revoke(id, role); err != nil {
		utils.RespondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "session revoked"})
}
