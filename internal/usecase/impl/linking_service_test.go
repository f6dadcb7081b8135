package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	mockRepo "megacare/internal/mocks/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// linkingServiceFixtures holds all test dependencies for linking service tests.
type linkingServiceFixtures struct {
	service       usecase.LinkingUsecase
	customerRepo  *mockRepo.MockCustomerRepository
	equipmentRepo *mockRepo.MockEquipmentRepository
}

func createTestLinkingService(t *testing.T) linkingServiceFixtures {
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	equipmentRepo := mockRepo.NewMockEquipmentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewLinkingService(customerRepo, equipmentRepo, logger)

	return linkingServiceFixtures{
		service:       service,
		customerRepo:  customerRepo,
		equipmentRepo: equipmentRepo,
	}
}

func TestLinkingService_GetLinkStatus_Linked(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByLineID(ctx, "U1234567890").
		Return(&entity.Customer{ID: "patient-1", LineID: "U1234567890"}, nil)

	status, err := fx.service.GetLinkStatus(ctx, "U1234567890")
	require.NoError(t, err)
	assert.True(t, status.IsLinked)
}

func TestLinkingService_GetLinkStatus_NotLinked(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()

	fx.customerRepo.EXPECT().
		FindByLineID(ctx, "U1234567890").
		Return(nil, repository.ErrCustomerNotFound)

	status, err := fx.service.GetLinkStatus(ctx, "U1234567890")
	require.NoError(t, err)
	assert.False(t, status.IsLinked)
}

func TestLinkingService_LinkAccount_Success(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()
	owner := &repository.DeviceOwner{
		Device:     &entity.Device{SerialNumber: "SN-23456789"},
		CustomerID: "patient-1",
	}

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(owner, nil)

	fx.customerRepo.EXPECT().
		LinkLineID(ctx, "patient-1", "U1234567890").
		Return(nil)

	err := fx.service.LinkAccount(ctx, "U1234567890", "SN-23456789")
	require.NoError(t, err)
}

func TestLinkingService_LinkAccount_UnknownSerial(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-MISSING").
		Return(nil, repository.ErrDeviceNotFound)

	err := fx.service.LinkAccount(ctx, "U1234567890", "SN-MISSING")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSerialNotFound))
}

func TestLinkingService_LinkAccount_AlreadyLinked(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()
	owner := &repository.DeviceOwner{
		Device:     &entity.Device{SerialNumber: "SN-23456789"},
		CustomerID: "patient-1",
	}

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(owner, nil)

	// The conditional write lost the race or the profile was claimed earlier.
	fx.customerRepo.EXPECT().
		LinkLineID(ctx, "patient-1", "U1234567890").
		Return(repository.ErrCustomerAlreadyLinked)

	err := fx.service.LinkAccount(ctx, "U1234567890", "SN-23456789")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrAlreadyLinked))
}

func TestLinkingService_LinkAccount_OwnerProfileMissing(t *testing.T) {
	fx := createTestLinkingService(t)

	ctx := context.Background()
	owner := &repository.DeviceOwner{
		Device:     &entity.Device{SerialNumber: "SN-23456789"},
		CustomerID: "patient-1",
	}

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(owner, nil)

	fx.customerRepo.EXPECT().
		LinkLineID(ctx, "patient-1", "U1234567890").
		Return(repository.ErrCustomerNotFound)

	err := fx.service.LinkAccount(ctx, "U1234567890", "SN-23456789")
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrSerialNotFound))
}
