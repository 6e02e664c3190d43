package utils

import (
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the caller identity embedded in a session token.
type Identity struct {
	ID    string
	Role  string
	Email string
}

// TokenManager issues and verifies signed session tokens. The secret and
// expiry come from deployment configuration, not module state.
type TokenManager struct {
	secret []byte
	expiry time.Duration
}

func NewTokenManager(secret string, expiry time.Duration) *TokenManager {
	return &TokenManager{secret: []byte(secret), expiry: expiry}
}

// Expiry returns the configured token lifetime.
func (m *TokenManager) Expiry() time.Duration {
	return m.expiry
}

// Generate creates a signed token embedding the subject id, role and email.
func (m *TokenManager) Generate(id, role, email string) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   id,
		"role":  role,
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(m.expiry).Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secret)
}

// Verify parses the token, checks signature and expiry, and returns the
// embedded identity.
func (m *TokenManager) Verify(tokenString string) (*Identity, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid or expired token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}
	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	if sub == "" || role == "" {
		return nil, errors.New("token missing identity claims")
	}
	return &Identity{ID: sub, Role: role, Email: email}, nil
}

// HashToken computes a SHA-256 hash of the token string. Only the hash is
// persisted or cached, never the token itself.
func HashToken(token string) string {
	sum := sha256.Sum256([]byte(token))
	return hex.EncodeToString(sum[:])
}
