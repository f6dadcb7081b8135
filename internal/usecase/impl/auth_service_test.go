package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/domain/service"
	mockRepo "megacare/internal/mocks/repository"
	mockService "megacare/internal/mocks/service"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// authServiceFixtures holds all test dependencies for auth service tests.
type authServiceFixtures struct {
	service      usecase.AuthUsecase
	oauth        *mockService.MockOAuthService
	minter       *mockService.MockTokenMinter
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestAuthService(t *testing.T) authServiceFixtures {
	oauth := mockService.NewMockOAuthService(t)
	minter := mockService.NewMockTokenMinter(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuthService(oauth, minter, customerRepo, logger)

	return authServiceFixtures{
		service:      svc,
		oauth:        oauth,
		minter:       minter,
		customerRepo: customerRepo,
	}
}

func TestAuthService_LineLogin_Success(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LineLoginInput{
		AuthorizationCode: "auth-code",
		RedirectURI:       "https://liff.example.com/callback",
	}
	profile := &service.LineProfile{LineUserID: "U1234567890", DisplayName: "Somsak"}

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "auth-code", "https://liff.example.com/callback").
		Return(profile, nil)

	fx.customerRepo.EXPECT().
		FindByLineID(ctx, "U1234567890").
		Return(&entity.Customer{ID: "patient-1", LineID: "U1234567890"}, nil)

	fx.minter.EXPECT().
		MintCustomToken(ctx, "patient-1", map[string]any{
			"provider":     "line",
			"line_user_id": "U1234567890",
		}).
		Return("firebase-custom-token", nil)

	output, err := fx.service.LineLogin(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, usecase.LineLoginSuccess, output.Status)
	assert.Equal(t, "firebase-custom-token", output.FirebaseToken)
	assert.Nil(t, output.LineProfile)
}

func TestAuthService_LineLogin_RegistrationRequired(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	input := &usecase.LineLoginInput{
		AuthorizationCode: "auth-code",
		RedirectURI:       "https://liff.example.com/callback",
	}
	profile := &service.LineProfile{LineUserID: "U-new-user", DisplayName: "Malee"}

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "auth-code", "https://liff.example.com/callback").
		Return(profile, nil)

	fx.customerRepo.EXPECT().
		FindByLineID(ctx, "U-new-user").
		Return(nil, repository.ErrCustomerNotFound)

	output, err := fx.service.LineLogin(ctx, input)
	require.NoError(t, err)
	require.NotNil(t, output)
	assert.Equal(t, usecase.LineLoginRegistrationRequired, output.Status)
	assert.Empty(t, output.FirebaseToken)
	assert.Equal(t, profile, output.LineProfile)
}

func TestAuthService_LineLogin_CodeRejected(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "bad-code", "https://liff.example.com/callback").
		Return(nil, service.ErrOAuthCodeRejected)

	output, err := fx.service.LineLogin(ctx, &usecase.LineLoginInput{
		AuthorizationCode: "bad-code",
		RedirectURI:       "https://liff.example.com/callback",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLineCodeInvalid))
}

func TestAuthService_LineLogin_IDTokenInvalid(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "auth-code", "https://liff.example.com/callback").
		Return(nil, service.ErrOAuthTokenInvalid)

	output, err := fx.service.LineLogin(ctx, &usecase.LineLoginInput{
		AuthorizationCode: "auth-code",
		RedirectURI:       "https://liff.example.com/callback",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrLineTokenInvalid))
}

func TestAuthService_LineLogin_NotConfigured(t *testing.T) {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	minter := mockService.NewMockTokenMinter(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	svc := NewAuthService(nil, minter, customerRepo, logger)

	output, err := svc.LineLogin(context.Background(), &usecase.LineLoginInput{
		AuthorizationCode: "auth-code",
		RedirectURI:       "https://liff.example.com/callback",
	})
	require.Error(t, err)
	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUnavailable))
}

func TestAuthService_LineLogin_MintFailure(t *testing.T) {
	fx := createTestAuthService(t)

	ctx := context.Background()
	profile := &service.LineProfile{LineUserID: "U1234567890"}

	fx.oauth.EXPECT().
		ExchangeCode(ctx, "auth-code", "https://liff.example.com/callback").
		Return(profile, nil)

	fx.customerRepo.EXPECT().
		FindByLineID(ctx, "U1234567890").
		Return(&entity.Customer{ID: "patient-1"}, nil)

	fx.minter.EXPECT().
		MintCustomToken(ctx, "patient-1", map[string]any{
			"provider":     "line",
			"line_user_id": "U1234567890",
		}).
		Return("", errors.New("iam permission denied"))

	output, err := fx.service.LineLogin(ctx, &usecase.LineLoginInput{
		AuthorizationCode: "auth-code",
		RedirectURI:       "https://liff.example.com/callback",
	})
	require.Error(t, err)
	assert.Nil(t, output)
}
