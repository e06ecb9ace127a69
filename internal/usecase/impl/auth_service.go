// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	deliverycontext "wardlink/internal/delivery/context"
	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/domain/repository"
	"wardlink/internal/domain/service"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface.
type authService struct {
	hospitalRepo repository.HospitalRepository
	hasher       service.PasswordHasher
	tokenService service.TokenService
	logger       *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	HospitalRepo repository.HospitalRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		hospitalRepo: params.HospitalRepo,
		hasher:       params.Hasher,
		tokenService: params.TokenService,
		logger:       params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// VerifyCredentials checks loginID/password against the stored account.
func (srv *authService) VerifyCredentials(ctx context.Context, loginID, password string) (*entity.Hospital, error) {
	hospital, err := srv.hospitalRepo.FindByLoginID(ctx, loginID)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			srv.log(ctx).Warn("Login attempt for unknown account", slog.String("loginID", loginID))

			return nil, errors.Wrap(domainerrors.ErrNotRegistered, "login failed")
		}

		return nil, errors.Wrap(err, "failed to find hospital by login id")
	}

	// bcrypt comparison is CPU-bound and runs outside any transaction.
	if !srv.hasher.Check(password, hospital.PasswordHash) {
		srv.log(ctx).Warn("Login attempt with wrong password", slog.String("loginID", loginID))

		return nil, errors.Wrap(domainerrors.ErrWrongPassword, "login failed")
	}

	return hospital.Sanitized(), nil
}

// Login issues a token pair for an already verified hospital. The stored
// refresh hash is overwritten unconditionally, so any refresh token issued
// by an earlier login stops working.
func (srv *authService) Login(ctx context.Context, hospital *entity.Hospital) (*usecase.LoginOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(hospital.ID, hospital.LoginID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token pair", slog.Uint64("hospitalID", uint64(hospital.ID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	refreshHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.hospitalRepo.UpdateRefreshHash(ctx, hospital.ID, refreshHash); err != nil {
		srv.log(ctx).Error("Failed to store refresh hash", slog.Uint64("hospitalID", uint64(hospital.ID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to store refresh hash during login")
	}

	srv.log(ctx).Debug("Hospital logged in", slog.Uint64("hospitalID", uint64(hospital.ID)))

	return &usecase.LoginOutput{
		Tokens: usecase.TokenPair{
			AccessToken:  accessToken,
			RefreshToken: refreshToken,
		},
		HospitalName: hospital.Name,
	}, nil
}

// Refresh rotates the session. The presented token must hash to the
// stored value, and the swap to the new hash is a conditional update so
// two concurrent refreshes of the same token cannot both win.
func (srv *authService) Refresh(ctx context.Context, input *usecase.RefreshInput) (*usecase.TokenPair, error) {
	hospital, err := srv.hospitalRepo.FindByID(ctx, input.HospitalID)
	if err != nil {
		if errors.Is(err, repository.ErrHospitalNotFound) {
			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh failed")
		}

		return nil, errors.Wrap(err, "failed to find hospital for refresh")
	}

	if hospital.CurrentRefreshHash == "" {
		srv.log(ctx).Warn("Refresh attempt with no active session", slog.Uint64("hospitalID", uint64(input.HospitalID)))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "no active session")
	}

	presentedHash := srv.tokenService.HashToken(input.RefreshToken)
	if presentedHash != hospital.CurrentRefreshHash {
		srv.log(ctx).Warn("Refresh attempt with superseded token", slog.Uint64("hospitalID", uint64(input.HospitalID)))

		return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh token superseded")
	}

	accessToken, refreshToken, err := srv.tokenService.GenerateTokenPair(hospital.ID, hospital.LoginID)
	if err != nil {
		srv.log(ctx).Error("Failed to generate token pair", slog.Uint64("hospitalID", uint64(hospital.ID)), slog.Any("error", err))

		return nil, errors.Wrap(err, "failed to generate token pair")
	}

	newHash := srv.tokenService.HashToken(refreshToken)
	if err := srv.hospitalRepo.RotateRefreshHash(ctx, hospital.ID, presentedHash, newHash); err != nil {
		if errors.Is(err, repository.ErrRefreshHashStale) {
			// A concurrent refresh or login replaced the hash between our
			// read and the conditional write. The presented token is no
			// longer current, so the caller must re-authenticate.
			srv.log(ctx).Warn("Refresh lost rotation race", slog.Uint64("hospitalID", uint64(hospital.ID)))

			return nil, errors.Wrap(domainerrors.ErrInvalidCredentials, "refresh token superseded")
		}

		return nil, errors.Wrap(err, "failed to rotate refresh hash")
	}

	srv.log(ctx).Debug("Session refreshed", slog.Uint64("hospitalID", uint64(hospital.ID)))

	return &usecase.TokenPair{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	}, nil
}
