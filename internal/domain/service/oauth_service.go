package service

import (
	"context"

	"github.com/pkg/errors"
)

// Sentinel errors for the LINE OAuth flow.
var (
	// ErrOAuthCodeRejected is returned when the provider refuses the
	// authorization code (wrong code, wrong redirect URI, replay).
	ErrOAuthCodeRejected = errors.New("authorization code rejected")
	// ErrOAuthTokenInvalid is returned when the provider's ID token fails
	// signature or claim verification.
	ErrOAuthTokenInvalid = errors.New("oauth id token invalid")
)

// LineProfile is the subset of the LINE ID-token claims the application uses.
type LineProfile struct {
	LineUserID  string `json:"lineUserId"`
	DisplayName string `json:"displayName,omitempty"`
	PictureURL  string `json:"pictureUrl,omitempty"`
	Email       string `json:"email,omitempty"`
}

// OAuthService exchanges a LINE Login authorization code for a verified LINE
// profile. Implementations must verify the returned ID token's signature,
// issuer and audience before trusting its claims.
type OAuthService interface {
	ExchangeCode(ctx context.Context, authorizationCode, redirectURI string) (*LineProfile, error)
}
