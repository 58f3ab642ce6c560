package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for the JWT tokens.
type Claims struct {
	UserID uint   `json:"id"`
	Type   string `json:"type,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
// Tokens are normally issued by the account service sharing the secret;
// GenerateToken exists for operators and tests.
type TokenService interface {
	// GenerateToken creates a signed access token for a user.
	GenerateToken(userID uint) (string, error)

	// ValidateToken checks the signature and expiry of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
