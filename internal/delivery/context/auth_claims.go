package context

import (
	"github.com/labstack/echo/v4"
)

const (
	// KeyHospitalID is the key for the authenticated hospital's id.
	KeyHospitalID ContextKey = "hospital_id"

	// KeyLoginID is the key for the authenticated hospital's login identifier.
	KeyLoginID ContextKey = "login_id"

	// KeyRefreshToken is the key for the raw refresh token presented on
	// the refresh endpoint. Set only by the refresh middleware.
	KeyRefreshToken ContextKey = "refresh_token"
)

// SetHospitalIdentity stores the authenticated hospital's id and login id
// in echo.Context after token validation.
func SetHospitalIdentity(c echo.Context, hospitalID uint, loginID string) {
	c.Set(string(KeyHospitalID), hospitalID)
	c.Set(string(KeyLoginID), loginID)
}

// GetHospitalID extracts the authenticated hospital's id from echo.Context.
// The second return value reports whether the id was present.
func GetHospitalID(c echo.Context) (uint, bool) {
	id, ok := c.Get(string(KeyHospitalID)).(uint)

	return id, ok
}

// GetLoginID extracts the authenticated hospital's login id from echo.Context.
func GetLoginID(c echo.Context) string {
	loginID, _ := c.Get(string(KeyLoginID)).(string)

	return loginID
}

// SetRefreshToken stores the raw presented refresh token in echo.Context.
func SetRefreshToken(c echo.Context, token string) {
	c.Set(string(KeyRefreshToken), token)
}

// GetRefreshToken extracts the raw presented refresh token from echo.Context.
func GetRefreshToken(c echo.Context) string {
	token, _ := c.Get(string(KeyRefreshToken)).(string)

	return token
}
