// Package service defines domain-level service interfaces implemented by the
// infra layer, plus the pure report analyzer.
package service

import (
	"context"

	"github.com/pkg/errors"
)

// Sentinel errors for token verification. The delivery layer maps these to
// 401 (non-retryable) and 503 (retryable) respectively.
var (
	// ErrTokenInvalid is returned for malformed, tampered or revoked tokens.
	ErrTokenInvalid = errors.New("token invalid")
	// ErrTokenExpired is returned for well-formed tokens past their expiry.
	ErrTokenExpired = errors.New("token expired")
	// ErrVerifierUnavailable is returned when the verifier itself cannot be
	// reached; the caller may retry with backoff.
	ErrVerifierUnavailable = errors.New("token verifier unavailable")
)

// AuthUser is the verified identity of a caller.
type AuthUser struct {
	UID    string
	Email  string
	LineID string
	Claims map[string]any
}

// TokenVerifier validates a bearer ID token against the identity provider and
// returns the caller's identity. Every request re-verifies; no result caching.
type TokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*AuthUser, error)
}

// TokenMinter issues custom sign-in tokens for a known account, used by the
// LINE login flow once the LINE identity has been resolved to a customer.
type TokenMinter interface {
	MintCustomToken(ctx context.Context, uid string, claims map[string]any) (string, error)
}
