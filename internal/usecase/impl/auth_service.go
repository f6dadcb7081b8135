package impl

import (
	"context"
	"log/slog"

	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/domain/service"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
)

// authService implements the AuthUsecase interface.
type authService struct {
	oauth        service.OAuthService
	minter       service.TokenMinter
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewAuthService is the constructor for authService. The OAuth service may be
// nil when LINE login is not configured.
func NewAuthService(
	oauth service.OAuthService,
	minter service.TokenMinter,
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) usecase.AuthUsecase {
	return &authService{
		oauth:        oauth,
		minter:       minter,
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// LineLogin runs the LINE login/register flow: exchange the authorization
// code, verify the ID token, then either sign in the customer bound to the
// LINE identity or signal that registration is required.
func (srv *authService) LineLogin(ctx context.Context, input *usecase.LineLoginInput) (*usecase.LineLoginOutput, error) {
	if srv.oauth == nil {
		return nil, errors.Wrap(domainerrors.ErrUnavailable, "LINE login is not configured")
	}

	profile, err := srv.oauth.ExchangeCode(ctx, input.AuthorizationCode, input.RedirectURI)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrOAuthCodeRejected):
			return nil, errors.Wrap(domainerrors.ErrLineCodeInvalid, err.Error())
		case errors.Is(err, service.ErrOAuthTokenInvalid):
			return nil, errors.Wrap(domainerrors.ErrLineTokenInvalid, err.Error())
		default:
			return nil, errors.Wrap(err, "LINE code exchange failed")
		}
	}

	customer, err := srv.customerRepo.FindByLineID(ctx, profile.LineUserID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			srv.logger.Info("No profile for LINE identity, registration required")

			return &usecase.LineLoginOutput{
				Status:      usecase.LineLoginRegistrationRequired,
				LineProfile: profile,
			}, nil
		}

		return nil, errors.Wrap(err, "failed to look up LINE identity")
	}

	// Custom claims let later requests carry the LINE identity inside the
	// verified Firebase token.
	token, err := srv.minter.MintCustomToken(ctx, customer.ID, map[string]any{
		"provider":     "line",
		"line_user_id": profile.LineUserID,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to mint sign-in token")
	}

	srv.logger.Info("LINE login succeeded", "customerID", customer.ID)

	return &usecase.LineLoginOutput{
		Status:        usecase.LineLoginSuccess,
		FirebaseToken: token,
	}, nil
}
