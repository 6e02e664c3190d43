package middleware

import (
	"net/http"

	"counselhub/models"

	"github.com/gin-gonic/gin"
)

// RequireRole gates a route group to one account role. Must run after
// AuthRequired.
func RequireRole(role models.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetString(CtxRole) != string(role) {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"message": "Insufficient permissions."})
			return
		}
		c.Next()
	}
}
