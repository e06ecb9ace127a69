package impl

import (
	"context"
	"testing"

	"wardlink/internal/domain/entity"
	domainerrors "wardlink/internal/domain/errors"
	"wardlink/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func seedHospital(env *testEnv, loginID, password string) *entity.Hospital {
	return env.hospitals.put(&entity.Hospital{
		LoginID:      loginID,
		Name:         "Seoul General",
		PasswordHash: "hashed:" + password,
	})
}

func TestAuthService_VerifyCredentials_Success(t *testing.T) {
	env := newTestEnv()
	seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	hospital, err := srv.VerifyCredentials(context.Background(), "seoul-general", "secret-pass")

	require.NoError(t, err)
	assert.Equal(t, "Seoul General", hospital.Name)
	assert.Empty(t, hospital.PasswordHash)
	assert.Empty(t, hospital.CurrentRefreshHash)
}

func TestAuthService_VerifyCredentials_UnknownLoginID(t *testing.T) {
	env := newTestEnv()
	srv := env.authService()

	hospital, err := srv.VerifyCredentials(context.Background(), "nobody", "whatever")

	assert.Nil(t, hospital)
	assert.True(t, errors.Is(err, domainerrors.ErrNotRegistered))
}

func TestAuthService_VerifyCredentials_WrongPassword(t *testing.T) {
	env := newTestEnv()
	seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	hospital, err := srv.VerifyCredentials(context.Background(), "seoul-general", "wrong-pass")

	assert.Nil(t, hospital)
	assert.True(t, errors.Is(err, domainerrors.ErrWrongPassword))
}

func TestAuthService_Login_StoresRefreshDigest(t *testing.T) {
	env := newTestEnv()
	hospital := seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	output, err := srv.Login(context.Background(), hospital)

	require.NoError(t, err)
	assert.NotEmpty(t, output.Tokens.AccessToken)
	assert.NotEmpty(t, output.Tokens.RefreshToken)
	assert.Equal(t, "Seoul General", output.HospitalName)

	stored := env.hospitals.hospitals[hospital.ID]
	assert.Equal(t, env.tokens.HashToken(output.Tokens.RefreshToken), stored.CurrentRefreshHash)
}

func TestAuthService_Login_SupersedesPreviousSession(t *testing.T) {
	env := newTestEnv()
	hospital := seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	first, err := srv.Login(context.Background(), hospital)
	require.NoError(t, err)

	second, err := srv.Login(context.Background(), hospital)
	require.NoError(t, err)

	// The refresh token from the first login no longer matches the store.
	_, err = srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   hospital.ID,
		RefreshToken: first.Tokens.RefreshToken,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))

	// The second login's token still works.
	pair, err := srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   hospital.ID,
		RefreshToken: second.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEmpty(t, pair.AccessToken)
}

func TestAuthService_Refresh_RotatesToken(t *testing.T) {
	env := newTestEnv()
	hospital := seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	login, err := srv.Login(context.Background(), hospital)
	require.NoError(t, err)

	pair, err := srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   hospital.ID,
		RefreshToken: login.Tokens.RefreshToken,
	})
	require.NoError(t, err)
	assert.NotEqual(t, login.Tokens.RefreshToken, pair.RefreshToken)

	stored := env.hospitals.hospitals[hospital.ID]
	assert.Equal(t, env.tokens.HashToken(pair.RefreshToken), stored.CurrentRefreshHash)

	// Replaying the consumed token must fail.
	_, err = srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   hospital.ID,
		RefreshToken: login.Tokens.RefreshToken,
	})
	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Refresh_NoActiveSession(t *testing.T) {
	env := newTestEnv()
	hospital := seedHospital(env, "seoul-general", "secret-pass")
	srv := env.authService()

	_, err := srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   hospital.ID,
		RefreshToken: "never-issued",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}

func TestAuthService_Refresh_UnknownHospital(t *testing.T) {
	env := newTestEnv()
	srv := env.authService()

	_, err := srv.Refresh(context.Background(), &usecase.RefreshInput{
		HospitalID:   999,
		RefreshToken: "whatever",
	})

	assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
}
