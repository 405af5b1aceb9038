package service

import (
	"time"

	"github.com/google/uuid"
)

// Claims is the identity carried by a validated access token.
type Claims struct {
	UserID    uuid.UUID
	Roles     []string
	ExpiresAt time.Time
}

// TokenService validates bearer tokens issued by the identity provider.
type TokenService interface {
	// ValidateToken checks the signature and expiry of an access token.
	ValidateToken(tokenString string) (*Claims, error)

	// GenerateAccessToken signs a token with the shared secret; used by tooling and tests.
	GenerateAccessToken(userID uuid.UUID, roles []string, ttl time.Duration) (string, error)
}
