package usecase

import (
	"context"

	"megacare/internal/domain/service"
)

// LINE login outcome values.
const (
	LineLoginSuccess              = "login_success"
	LineLoginRegistrationRequired = "registration_required"
)

// AuthUsecase defines the interface for the LINE login flow.
type AuthUsecase interface {
	// LineLogin exchanges a LINE authorization code for a verified LINE
	// profile, then either mints a Firebase custom token for the customer
	// bound to that LINE identity, or signals that registration is required.
	LineLogin(ctx context.Context, input *LineLoginInput) (*LineLoginOutput, error)
}

// LineLoginInput defines the data required for a LINE login attempt.
type LineLoginInput struct {
	AuthorizationCode string
	RedirectURI       string
}

// LineLoginOutput is the result of a LINE login attempt. FirebaseToken is set
// on login_success; LineProfile is set on registration_required.
type LineLoginOutput struct {
	Status        string               `json:"status"`
	FirebaseToken string               `json:"firebaseToken,omitempty"`
	LineProfile   *service.LineProfile `json:"lineProfile,omitempty"`
}
