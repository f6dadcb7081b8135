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
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// equipmentServiceFixtures holds all test dependencies for equipment service tests.
type equipmentServiceFixtures struct {
	service       usecase.EquipmentUsecase
	equipmentRepo *mockRepo.MockEquipmentRepository
}

func createTestEquipmentService(t *testing.T) equipmentServiceFixtures {
	equipmentRepo := mockRepo.NewMockEquipmentRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	service := NewEquipmentService(equipmentRepo, logger)

	return equipmentServiceFixtures{
		service:       service,
		equipmentRepo: equipmentRepo,
	}
}

func TestEquipmentService_AddDevice_Success(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()
	input := &usecase.AddDeviceInput{
		DeviceName:   "AirSense 11 AutoSet",
		SerialNumber: "SN-23456789",
		Settings:     map[string]any{"mode": "AutoSet", "minPressure": 5.0},
	}

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(nil, repository.ErrDeviceNotFound)

	fx.equipmentRepo.EXPECT().
		AddDevice(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.Device")).
		RunAndReturn(func(ctx context.Context, customerID string, device *entity.Device) (*entity.Device, error) {
			created := *device
			created.ID = "generated-id"
			return &created, nil
		})

	device, err := fx.service.AddDevice(ctx, "firebase-uid-1", input)
	require.NoError(t, err)
	require.NotNil(t, device)
	assert.Equal(t, "generated-id", device.ID)
	assert.Equal(t, "SN-23456789", device.SerialNumber)
	assert.Equal(t, entity.EquipmentStatusActive, device.Status, "status defaults to Active")
	assert.False(t, device.AddedDate.IsZero())
}

func TestEquipmentService_AddDevice_DuplicateSerial(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()
	input := &usecase.AddDeviceInput{
		DeviceName:   "AirSense 11 AutoSet",
		SerialNumber: "SN-23456789",
	}

	// The serial already belongs to another customer.
	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(&repository.DeviceOwner{
			Device:     &entity.Device{SerialNumber: "SN-23456789"},
			CustomerID: "other-customer",
		}, nil)

	device, err := fx.service.AddDevice(ctx, "firebase-uid-1", input)
	require.Error(t, err)
	assert.Nil(t, device)
	assert.True(t, errors.Is(err, domainerrors.ErrDuplicateSerial))
}

func TestEquipmentService_AddDevice_SerialLookupFailure(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()

	fx.equipmentRepo.EXPECT().
		FindDeviceBySerial(ctx, "SN-23456789").
		Return(nil, errors.New("deadline exceeded"))

	device, err := fx.service.AddDevice(ctx, "firebase-uid-1", &usecase.AddDeviceInput{
		DeviceName:   "AirSense 11 AutoSet",
		SerialNumber: "SN-23456789",
	})
	require.Error(t, err)
	assert.Nil(t, device)
	assert.False(t, errors.Is(err, domainerrors.ErrDuplicateSerial))
}

func TestEquipmentService_ListDevices_EmptyIsNotNil(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()

	fx.equipmentRepo.EXPECT().
		ListDevices(ctx, "firebase-uid-1").
		Return(nil, nil)

	devices, err := fx.service.ListDevices(ctx, "firebase-uid-1")
	require.NoError(t, err)
	assert.NotNil(t, devices)
	assert.Empty(t, devices)
}

func TestEquipmentService_AddMask_Success(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()

	fx.equipmentRepo.EXPECT().
		AddMask(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.Mask")).
		RunAndReturn(func(ctx context.Context, customerID string, mask *entity.Mask) (*entity.Mask, error) {
			created := *mask
			created.ID = "mask-id"
			return &created, nil
		})

	mask, err := fx.service.AddMask(ctx, "firebase-uid-1", &usecase.AddMaskInput{
		MaskName: "AirFit F20",
		Size:     "M",
	})
	require.NoError(t, err)
	assert.Equal(t, "mask-id", mask.ID)
	assert.Equal(t, "AirFit F20", mask.MaskName)
	assert.False(t, mask.AddedDate.IsZero())
}

func TestEquipmentService_AddAirTubing_Success(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()

	fx.equipmentRepo.EXPECT().
		AddAirTubing(ctx, "firebase-uid-1", mock.AnythingOfType("*entity.AirTubing")).
		RunAndReturn(func(ctx context.Context, customerID string, tubing *entity.AirTubing) (*entity.AirTubing, error) {
			created := *tubing
			created.ID = "tubing-id"
			return &created, nil
		})

	tubing, err := fx.service.AddAirTubing(ctx, "firebase-uid-1", &usecase.AddAirTubingInput{
		TubingName: "ClimateLineAir 11",
	})
	require.NoError(t, err)
	assert.Equal(t, "tubing-id", tubing.ID)
	assert.False(t, tubing.AddedDate.IsZero())
}

func TestEquipmentService_ListMasks_PassesThrough(t *testing.T) {
	fx := createTestEquipmentService(t)

	ctx := context.Background()
	expected := []*entity.Mask{
		{ID: "mask-1", MaskName: "AirFit F20"},
		{ID: "mask-2", MaskName: "AirFit P10"},
	}

	fx.equipmentRepo.EXPECT().
		ListMasks(ctx, "firebase-uid-1").
		Return(expected, nil)

	masks, err := fx.service.ListMasks(ctx, "firebase-uid-1")
	require.NoError(t, err)
	assert.Equal(t, expected, masks)
}
