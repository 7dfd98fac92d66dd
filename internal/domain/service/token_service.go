package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Claims of a guardian access token. The user id travels in the standard subject
// claim; UserID is its parsed form and is never serialized.
type Claims struct {
	jwt.RegisteredClaims
	UserID uuid.UUID `json:"-"`
}

// TokenService validates bearer tokens presented to the API.
type TokenService interface {
	// GenerateToken signs a token for the user. Only local tooling and tests mint tokens;
	// production tokens come from the identity provider sharing the secret.
	GenerateToken(userID uuid.UUID, ttl time.Duration) (string, error)

	ValidateToken(tokenString string) (*Claims, error)
}
