// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"

	"wardlink/internal/domain/entity"
)

// --- Input DTOs ---

// RefreshInput carries the verified refresh claims together with the raw
// presented token, which is checked against the stored hash.
type RefreshInput struct {
	HospitalID   uint
	RefreshToken string
}

// --- Output DTOs ---

// TokenPair bundles a freshly issued access/refresh token pair.
type TokenPair struct {
	AccessToken  string
	RefreshToken string
}

// LoginOutput returns the generated tokens after a successful login.
type LoginOutput struct {
	Tokens       TokenPair
	HospitalName string
}

// AuthUsecase defines the interface for session-related business operations.
// This is the contract that the delivery layer (e.g., API handlers) will depend on.
type AuthUsecase interface {
	// VerifyCredentials checks loginID/password and returns the matching
	// hospital with credential hashes stripped.
	VerifyCredentials(ctx context.Context, loginID, password string) (*entity.Hospital, error)

	// Login issues a token pair for an already verified hospital and
	// stores the refresh-token hash, invalidating any prior session.
	Login(ctx context.Context, hospital *entity.Hospital) (*LoginOutput, error)

	// Refresh rotates the session: the presented refresh token must match
	// the stored hash, and the stored hash is swapped to the new token in
	// one conditional update.
	Refresh(ctx context.Context, input *RefreshInput) (*TokenPair, error)
}
