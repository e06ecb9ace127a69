package middleware

import (
	"strings"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/response"
	"wardlink/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthMiddleware provides middleware for JWT authentication.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the access token and stores the caller's
// hospital identity on the request context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", err.Error())
		}

		claims, err := m.tokenSvc.ValidateAccessToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired access token")
		}

		deliverycontext.SetHospitalIdentity(c, claims.HospitalID, claims.LoginID)

		return next(c)
	}
}

// RefreshAuthenticate validates the refresh token and stores the caller's
// hospital identity plus the raw presented token, which the refresh
// usecase checks against the stored hash.
func (m *AuthMiddleware) RefreshAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		tokenString, err := bearerToken(c)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", err.Error())
		}

		claims, err := m.tokenSvc.ValidateRefreshToken(tokenString)
		if err != nil {
			return response.Unauthorized(c, "UNAUTHENTICATED", "Invalid or expired refresh token")
		}

		deliverycontext.SetHospitalIdentity(c, claims.HospitalID, claims.LoginID)
		deliverycontext.SetRefreshToken(c, tokenString)

		return next(c)
	}
}

// bearerToken extracts the token from the Authorization header.
func bearerToken(c echo.Context) (string, error) {
	authHeader := c.Request().Header.Get("Authorization")
	if authHeader == "" {
		return "", errors.New("Authorization header is missing")
	}

	tokenString := strings.TrimPrefix(authHeader, "Bearer ")
	if tokenString == authHeader || tokenString == "" {
		return "", errors.New("Invalid token format, must be Bearer token")
	}

	return tokenString, nil
}
