package utils

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"
)

// AuthCachePrefix namespaces token-hash entries in the auth cache.
const AuthCachePrefix = "authToken:"

var authCacheClient *redis.Client

// InitRedis connects the auth cache client. Redis being down is not fatal:
// auth falls back to database lookups when the client is nil.
func InitRedis(addr, password string, authDB int) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       authDB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := client.Ping(ctx).Err(); err != nil {
		GetLogger().Warn("Redis unavailable, auth cache disabled", zap.Error(err))
		return
	}
	authCacheClient = client
}

// GetAuthCacheClient returns the auth cache client, or nil when Redis is
// unavailable.
func GetAuthCacheClient() *redis.Client {
	return authCacheClient
}

// CacheTokenHash stores the token hash for a subject with the given TTL.
// Failures are logged and ignored; the database copy remains authoritative.
func CacheTokenHash(subjectID, tokenHash string, ttl time.Duration) {
	client := GetAuthCacheClient()
	if client == nil {
		return
	}
	ctx := context.Background()
	if err := client.Set(ctx, AuthCachePrefix+subjectID, tokenHash, ttl).Err(); err != nil {
		GetLogger().Warn("Failed to cache token hash", zap.Error(err))
	}
}

// DropTokenHash removes a subject's cached token hash.
func DropTokenHash(subjectID string) {
	client := GetAuthCacheClient()
	if client == nil {
		return
	}
	_ = client.Del(context.Background(), AuthCachePrefix+subjectID).Err()
}
