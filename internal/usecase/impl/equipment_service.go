package impl

import (
	"context"
	"log/slog"
	"time"

	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
)

// equipmentService implements the EquipmentUsecase interface.
type equipmentService struct {
	equipmentRepo repository.EquipmentRepository
	logger        *slog.Logger
}

// NewEquipmentService is the constructor for equipmentService.
func NewEquipmentService(
	equipmentRepo repository.EquipmentRepository,
	logger *slog.Logger,
) usecase.EquipmentUsecase {
	return &equipmentService{
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// AddDevice appends a device to the customer's history. Serial numbers are
// unique system-wide, so a cross-customer lookup guards the insert.
func (srv *equipmentService) AddDevice(ctx context.Context, customerID string, input *usecase.AddDeviceInput) (*entity.Device, error) {
	srv.logger.Info("Adding device", "customerID", customerID, "serialNumber", input.SerialNumber)

	_, err := srv.equipmentRepo.FindDeviceBySerial(ctx, input.SerialNumber)
	if err == nil {
		return nil, errors.Wrap(domainerrors.ErrDuplicateSerial, "serial number already registered")
	}
	if !errors.Is(err, repository.ErrDeviceNotFound) {
		return nil, errors.Wrap(err, "failed to check serial number")
	}

	status := input.Status
	if status == "" {
		status = entity.EquipmentStatusActive
	}

	device := &entity.Device{
		DeviceName:   input.DeviceName,
		SerialNumber: input.SerialNumber,
		Status:       status,
		Settings:     input.Settings,
		AddedDate:    time.Now().UTC(),
	}

	created, err := srv.equipmentRepo.AddDevice(ctx, customerID, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add device")
	}

	return created, nil
}

// ListDevices returns the customer's device history, oldest first.
func (srv *equipmentService) ListDevices(ctx context.Context, customerID string) ([]*entity.Device, error) {
	devices, err := srv.equipmentRepo.ListDevices(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list devices")
	}
	if devices == nil {
		devices = []*entity.Device{}
	}

	return devices, nil
}

// AddMask appends a mask to the customer's history.
func (srv *equipmentService) AddMask(ctx context.Context, customerID string, input *usecase.AddMaskInput) (*entity.Mask, error) {
	srv.logger.Info("Adding mask", "customerID", customerID)

	mask := &entity.Mask{
		MaskName:  input.MaskName,
		Size:      input.Size,
		AddedDate: time.Now().UTC(),
	}

	created, err := srv.equipmentRepo.AddMask(ctx, customerID, mask)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add mask")
	}

	return created, nil
}

// ListMasks returns the customer's mask history, oldest first.
func (srv *equipmentService) ListMasks(ctx context.Context, customerID string) ([]*entity.Mask, error) {
	masks, err := srv.equipmentRepo.ListMasks(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list masks")
	}
	if masks == nil {
		masks = []*entity.Mask{}
	}

	return masks, nil
}

// AddAirTubing appends an air-tubing item to the customer's history.
func (srv *equipmentService) AddAirTubing(ctx context.Context, customerID string, input *usecase.AddAirTubingInput) (*entity.AirTubing, error) {
	srv.logger.Info("Adding air tubing", "customerID", customerID)

	tubing := &entity.AirTubing{
		TubingName: input.TubingName,
		AddedDate:  time.Now().UTC(),
	}

	created, err := srv.equipmentRepo.AddAirTubing(ctx, customerID, tubing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to add air tubing")
	}

	return created, nil
}

// ListAirTubing returns the customer's air-tubing history, oldest first.
func (srv *equipmentService) ListAirTubing(ctx context.Context, customerID string) ([]*entity.AirTubing, error) {
	items, err := srv.equipmentRepo.ListAirTubing(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list air tubing")
	}
	if items == nil {
		items = []*entity.AirTubing{}
	}

	return items, nil
}
