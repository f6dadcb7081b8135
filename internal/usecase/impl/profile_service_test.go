package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"megacare/internal/domain/entity"
	mockRepo "megacare/internal/mocks/repository"
	"megacare/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// profileServiceFixtures holds all test dependencies for profile service tests.
type profileServiceFixtures struct {
	service      usecase.ProfileUsecase
	customerRepo *mockRepo.MockCustomerRepository
}

func createTestProfileService(t *testing.T) profileServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewProfileService(customerRepo, logger)

	return profileServiceFixtures{
		service:      service,
		customerRepo: customerRepo,
	}
}

func TestProfileService_CreateProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		DisplayName: "Somsak P.",
		FirstName:   "Somsak",
		LastName:    "Prasert",
		DateOfBirth: time.Date(1968, 3, 14, 0, 0, 0, 0, time.UTC),
		Location:    "Bangkok",
	}

	fx.customerRepo.EXPECT().
		Create(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.Customer")).
		Return(nil)

	customer, err := fx.service.CreateProfile(ctx, "firebase-uid-1", input)
	require.NoError(t, err)
	require.NotNil(t, customer)
	assert.Equal(t, "firebase-uid-1", customer.ID)
	assert.Equal(t, "Somsak", customer.FirstName)
	assert.Equal(t, "Active", customer.Status, "status defaults to Active")
	assert.False(t, customer.SetupDate.IsZero(), "setup date is server-assigned")
}

func TestProfileService_CreateProfile_KeepsExplicitStatus(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	input := &usecase.CreateProfileInput{
		DisplayName: "Somsak P.",
		FirstName:   "Somsak",
		LastName:    "Prasert",
		Status:      "Suspended",
	}

	fx.customerRepo.EXPECT().
		Create(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.Customer")).
		Run(func(ctx context.Context, customerID string, customer *entity.Customer) {
			assert.Equal(t, "Suspended", customer.Status)
		}).
		Return(nil)

	_, err := fx.service.CreateProfile(ctx, "firebase-uid-1", input)
	require.NoError(t, err)
}

func TestProfileService_GetProfile_Success(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	expected := &entity.Customer{
		ID:          "firebase-uid-1",
		DisplayName: "Somsak P.",
		FirstName:   "Somsak",
		LastName:    "Prasert",
		Status:      "Active",
	}

	fx.customerRepo.EXPECT().
		FindByID(ctx, "firebase-uid-1").
		Return(expected, nil)

	customer, err := fx.service.GetProfile(ctx, "firebase-uid-1")
	require.NoError(t, err)
	assert.Equal(t, expected, customer)
}

func TestProfileService_UpdateProfile_MergesOnlySuppliedFields(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	location := "Chiang Mai"
	input := &usecase.UpdateProfileInput{Location: &location}

	existing := &entity.Customer{ID: "firebase-uid-1", Location: "Bangkok"}
	updated := &entity.Customer{ID: "firebase-uid-1", Location: "Chiang Mai"}

	fx.customerRepo.EXPECT().
		FindByID(ctx, "firebase-uid-1").
		Return(existing, nil).
		Once()

	fx.customerRepo.EXPECT().
		Merge(ctx, "firebase-uid-1", map[string]any{"location": "Chiang Mai"}).
		Return(nil)

	fx.customerRepo.EXPECT().
		FindByID(ctx, "firebase-uid-1").
		Return(updated, nil).
		Once()

	customer, err := fx.service.UpdateProfile(ctx, "firebase-uid-1", input)
	require.NoError(t, err)
	assert.Equal(t, "Chiang Mai", customer.Location)
}

func TestProfileService_UpdateProfile_NoFieldsSkipsMerge(t *testing.T) {
	fx := createTestProfileService(t)

	ctx := context.Background()
	existing := &entity.Customer{ID: "firebase-uid-1", Location: "Bangkok"}

	// Merge must not be called for an empty update.
	fx.customerRepo.EXPECT().
		FindByID(ctx, "firebase-uid-1").
		Return(existing, nil).
		Twice()

	customer, err := fx.service.UpdateProfile(ctx, "firebase-uid-1", &usecase.UpdateProfileInput{})
	require.NoError(t, err)
	assert.Equal(t, existing, customer)
}
