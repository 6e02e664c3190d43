package middleware

import (
	"context"
	"net/http"
	"strings"

	clientRepo "counselhub/database/repository/client"
	counselorRepo "counselhub/database/repository/counselor"
	"counselhub/models"
	"counselhub/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

// Context keys set by AuthRequired.
const (
	CtxUserID = "userID"
	CtxRole   = "role"
	CtxEmail  = "email"
)

// AuthRequired verifies the bearer token and checks its hash against the
// account's current session token: Redis first, the account document on a
// cache miss. A revoked or superseded token fails even while its signature
// is still valid.
func AuthRequired(tokens *utils.TokenManager, clients clientRepo.ClientRepository, counselors counselorRepo.CounselorRepository) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Access denied. No token provided."})
			return
		}
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")

		identity, err := tokens.Verify(tokenString)
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}

		computedHash := utils.HashToken(tokenString)
		cacheKey := utils.AuthCachePrefix + identity.ID

		authCache := utils.GetAuthCacheClient()
		if authCache != nil {
			cachedHash, err := authCache.Get(context.Background(), cacheKey).Result()
			if err == nil {
				if cachedHash != computedHash {
					c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
					return
				}
				setIdentity(c, identity)
				c.Next()
				return
			}
			if err != redis.Nil {
				utils.GetLogger().Warn("auth cache lookup failed, falling back to database")
			}
		}

		// Cache miss: the account document is authoritative.
		storedHash, ok := lookupTokenHash(clients, counselors, identity)
		if !ok || storedHash != computedHash {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"message": "Invalid or expired token."})
			return
		}
		utils.CacheTokenHash(identity.ID, storedHash, tokens.Expiry())

		setIdentity(c, identity)
		c.Next()
	}
}

func setIdentity(c *gin.Context, identity *utils.Identity) {
	c.Set(CtxUserID, identity.ID)
	c.Set(CtxRole, identity.Role)
	c.Set(CtxEmail, identity.Email)
}

func lookupTokenHash(clients clientRepo.ClientRepository, counselors counselorRepo.CounselorRepository, identity *utils.Identity) (string, bool) {
	switch models.Role(identity.Role) {
	case models.RoleClient:
		client, err := clients.GetByID(identity.ID)
		if err != nil || client == nil {
			return "", false
		}
		return client.TokenHash, client.TokenHash != ""
	case models.RoleCounselor:
		counselor, err := counselors.GetByID(identity.ID)
		if err != nil || counselor == nil {
			return "", false
		}
		return counselor.TokenHash, counselor.TokenHash != ""
	default:
		return "", false
	}
}
