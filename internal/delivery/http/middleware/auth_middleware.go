// Package middleware contains the HTTP middlewares for the application.
package middleware

import (
	"strings"

	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// Context keys under which the verified caller identity is stored.
const (
	ContextKeyUID      = "uid"
	ContextKeyLineID   = "lineID"
	ContextKeyAuthUser = "authUser"
)

// AuthMiddleware verifies the Firebase ID token carried in the Authorization
// header. Every request is verified against the identity provider; there is
// no verification cache.
type AuthMiddleware struct {
	verifier service.TokenVerifier
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(verifier service.TokenVerifier) *AuthMiddleware {
	return &AuthMiddleware{verifier: verifier}
}

// Authenticate validates the bearer token and stores the caller identity on
// the request context. Requests without a well-formed bearer token are
// rejected before any datastore access happens.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
		if authHeader == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header is missing")
		}

		idToken := strings.TrimPrefix(authHeader, "Bearer ")
		if idToken == authHeader || idToken == "" {
			return domainerrors.ErrUnauthenticated.WithDetails("Authorization header must be a Bearer token")
		}

		user, err := m.verifier.VerifyIDToken(c.Request().Context(), idToken)
		if err != nil {
			switch {
			case errors.Is(err, service.ErrTokenExpired):
				return domainerrors.ErrTokenExpired
			case errors.Is(err, service.ErrVerifierUnavailable):
				return domainerrors.ErrVerifierUnavailable
			default:
				return domainerrors.ErrUnauthenticated
			}
		}

		c.Set(ContextKeyUID, user.UID)
		c.Set(ContextKeyLineID, user.LineID)
		c.Set(ContextKeyAuthUser, user)

		return next(c)
	}
}

// UID returns the authenticated caller's Firebase UID. It is only meaningful
// after Authenticate has run.
func UID(c echo.Context) string {
	uid, _ := c.Get(ContextKeyUID).(string)
	return uid
}

// LineID returns the LINE user ID claim of the authenticated caller, or ""
// when the token carries none.
func LineID(c echo.Context) string {
	lineID, _ := c.Get(ContextKeyLineID).(string)
	return lineID
}
