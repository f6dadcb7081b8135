package firebase

import (
	"context"
	"net"
	"net/url"

	"firebase.google.com/go/v4/auth"
	"github.com/pkg/errors"

	"megacare/internal/domain/service"
)

// tokenService adapts the Firebase auth client to the domain TokenVerifier
// and TokenMinter interfaces.
type tokenService struct {
	client *auth.Client
}

// NewTokenVerifier creates the ID-token verifier backed by Firebase Auth.
func NewTokenVerifier(client *auth.Client) service.TokenVerifier {
	return &tokenService{client: client}
}

// NewTokenMinter creates the custom-token minter backed by Firebase Auth.
func NewTokenMinter(client *auth.Client) service.TokenMinter {
	return &tokenService{client: client}
}

// VerifyIDToken validates a Firebase ID token and returns the caller's
// identity. Expired and malformed tokens map to the non-retryable sentinel
// errors; transport failures reaching the key server map to
// ErrVerifierUnavailable so callers can retry.
func (s *tokenService) VerifyIDToken(ctx context.Context, idToken string) (*service.AuthUser, error) {
	token, err := s.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, mapVerifyError(err)
	}

	user := &service.AuthUser{
		UID:    token.UID,
		Claims: token.Claims,
	}
	if email, ok := token.Claims["email"].(string); ok {
		user.Email = email
	}
	if lineID, ok := token.Claims["line_user_id"].(string); ok {
		user.LineID = lineID
	}

	return user, nil
}

// MintCustomToken issues a Firebase custom token for uid with the given
// developer claims.
func (s *tokenService) MintCustomToken(ctx context.Context, uid string, claims map[string]any) (string, error) {
	token, err := s.client.CustomTokenWithClaims(ctx, uid, claims)
	if err != nil {
		return "", errors.Wrap(err, "failed to mint custom token")
	}

	return token, nil
}

// mapVerifyError folds SDK errors into the domain sentinels. Anything that
// looks like a transport problem (key fetch, context cancellation) is
// retryable; everything else means the token itself is bad.
func mapVerifyError(err error) error {
	switch {
	case auth.IsIDTokenExpired(err):
		return errors.Wrap(service.ErrTokenExpired, err.Error())
	case auth.IsIDTokenRevoked(err), auth.IsUserDisabled(err):
		return errors.Wrap(service.ErrTokenInvalid, err.Error())
	}

	var urlErr *url.Error
	var netErr net.Error
	if errors.As(err, &urlErr) || errors.As(err, &netErr) ||
		errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
		return errors.Wrap(service.ErrVerifierUnavailable, err.Error())
	}

	return errors.Wrap(service.ErrTokenInvalid, err.Error())
}
