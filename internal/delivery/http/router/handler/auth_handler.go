// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/delivery/http/response"
	"wardlink/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for session-related handlers.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		logger: logger,
	}
}

type loginRequest struct {
	LoginID  string `json:"loginId" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type tokenPairResponse struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}

type loginResponse struct {
	tokenPairResponse
	Name string `json:"name"`
}

// Login handles the credential login request. The issued access token is
// echoed in the Authorization response header as well as the body.
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	ctx := c.Request().Context()

	hospital, err := h.uc.VerifyCredentials(ctx, req.LoginID, req.Password)
	if err != nil {
		return errors.WithStack(err)
	}

	output, err := h.uc.Login(ctx, hospital)
	if err != nil {
		return errors.WithStack(err)
	}

	c.Response().Header().Set("Authorization", "Bearer "+output.Tokens.AccessToken)

	return response.Success(c, http.StatusOK, loginResponse{
		tokenPairResponse: tokenPairResponse{
			AccessToken:  output.Tokens.AccessToken,
			RefreshToken: output.Tokens.RefreshToken,
		},
		Name: output.HospitalName,
	}, "Login successful")
}

// Refresh handles the session refresh request. The refresh middleware has
// already validated the token signature and stashed the identity and raw
// token on the context.
func (h *AuthHandler) Refresh(c echo.Context) error {
	hospitalID, ok := deliverycontext.GetHospitalID(c)
	if !ok {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing refresh identity")
	}

	rawToken := deliverycontext.GetRefreshToken(c)
	if rawToken == "" {
		return response.Unauthorized(c, "UNAUTHENTICATED", "Missing refresh token")
	}

	pair, err := h.uc.Refresh(c.Request().Context(), &usecase.RefreshInput{
		HospitalID:   hospitalID,
		RefreshToken: rawToken,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, tokenPairResponse{
		AccessToken:  pair.AccessToken,
		RefreshToken: pair.RefreshToken,
	}, "Session refreshed")
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
