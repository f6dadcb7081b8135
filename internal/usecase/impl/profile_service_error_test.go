package impl

import (
	"context"
	"testing"

	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestProfileService_CreateProfile_AlreadyExists(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		DisplayName: "Somsak P.",
		FirstName:   "Somsak",
		LastName:    "Prasert",
	}

	fx.customerRepo.EXPECT().
		Create(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.Customer")).
		Return(repository.ErrCustomerExists)

	customer, err := fx.service.CreateProfile(ctx, "firebase-uid-1", input)
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileExists))
}

func TestProfileService_GetProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByID(ctx, "unknown-uid").
		Return(nil, repository.ErrCustomerNotFound)

	customer, err := fx.service.GetProfile(ctx, "unknown-uid")
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_GetProfile_RepositoryFailure(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByID(ctx, "firebase-uid-1").
		Return(nil, errors.New("deadline exceeded"))

	customer, err := fx.service.GetProfile(ctx, "firebase-uid-1")
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.False(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}

func TestProfileService_UpdateProfile_NotFound(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	displayName := "New Name"

	fx.customerRepo.EXPECT().
		FindByID(ctx, "unknown-uid").
		Return(nil, repository.ErrCustomerNotFound)

	customer, err := fx.service.UpdateProfile(ctx, "unknown-uid", &usecase.UpdateProfileInput{
		DisplayName: &displayName,
	})
	require.Error(t, err)
	assert.Nil(t, customer)
	assert.True(t, errors.Is(err, domainerrors.ErrProfileNotFound))
}
