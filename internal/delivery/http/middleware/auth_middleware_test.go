package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/service"
	mockService "megacare/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthTestContext(t *testing.T, authHeader string) echo.Context {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/api/v1/customers/me", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}

	return e.NewContext(req, httptest.NewRecorder())
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusOK)
}

func TestAuthMiddleware_MissingHeader(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "")

	// The verifier must never be called without a bearer token.
	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	verifier.AssertNotCalled(t, "VerifyIDToken", mock.Anything, mock.Anything)
}

func TestAuthMiddleware_NotBearer(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "Basic dXNlcjpwYXNz")

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_InvalidToken(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "Bearer tampered-token")

	verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "tampered-token").
		Return(nil, service.ErrTokenInvalid)

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
}

func TestAuthMiddleware_ExpiredToken(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "Bearer expired-token")

	verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "expired-token").
		Return(nil, service.ErrTokenExpired)

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusUnauthorized, appErr.HTTPCode())
	assert.Equal(t, "TOKEN_EXPIRED", appErr.ErrorCode())
}

func TestAuthMiddleware_VerifierUnavailable(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "Bearer some-token")

	verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "some-token").
		Return(nil, service.ErrVerifierUnavailable)

	err := m.Authenticate(okHandler)(c)
	require.Error(t, err)

	// Transport failures are retryable and must not read as bad credentials.
	var appErr domainerrors.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, http.StatusServiceUnavailable, appErr.HTTPCode())
}

func TestAuthMiddleware_Success(t *testing.T) {
	verifier := mockService.NewMockTokenVerifier(t)
	m := NewAuthMiddleware(verifier)

	c := newAuthTestContext(t, "Bearer good-token")

	verifier.EXPECT().
		VerifyIDToken(c.Request().Context(), "good-token").
		Return(&service.AuthUser{
			UID:    "firebase-uid-1",
			Email:  "somsak@example.com",
			LineID: "U1234567890",
		}, nil)

	err := m.Authenticate(okHandler)(c)
	require.NoError(t, err)
	assert.Equal(t, "firebase-uid-1", UID(c))
	assert.Equal(t, "U1234567890", LineID(c))
}
