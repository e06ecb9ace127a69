package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token type markers embedded in the "type" claim so one token kind can
// never be replayed as the other.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims defines the custom claims carried by both token kinds.
type Claims struct {
	HospitalID uint   `json:"id"`
	LoginID    string `json:"loginId"`
	TokenType  string `json:"type"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for issuing and validating the signed
// token pair. Access and refresh tokens are signed with independent secrets
// and expire independently.
type TokenService interface {
	// GenerateTokenPair creates a new access token and refresh token
	// scoped to one hospital account.
	GenerateTokenPair(hospitalID uint, loginID string) (accessToken string, refreshToken string, err error)

	// ValidateAccessToken checks a token string against the access secret.
	ValidateAccessToken(tokenString string) (*Claims, error)

	// ValidateRefreshToken checks a token string against the refresh secret.
	ValidateRefreshToken(tokenString string) (*Claims, error)

	// HashToken returns the one-way hash under which a refresh token is
	// persisted, so the raw token is never stored.
	HashToken(token string) string
}
