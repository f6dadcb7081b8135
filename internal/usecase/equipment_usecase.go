package usecase

import (
	"context"

	"megacare/internal/domain/entity"
)

// EquipmentUsecase defines the interface for the per-customer equipment
// history (devices, masks, air tubing). All items are append-only.
type EquipmentUsecase interface {
	// AddDevice appends a device after verifying the serial number is not in
	// use anywhere in the system.
	AddDevice(ctx context.Context, customerID string, input *AddDeviceInput) (*entity.Device, error)

	// ListDevices returns the customer's device history, oldest first.
	ListDevices(ctx context.Context, customerID string) ([]*entity.Device, error)

	// AddMask appends a mask to the customer's equipment history.
	AddMask(ctx context.Context, customerID string, input *AddMaskInput) (*entity.Mask, error)

	// ListMasks returns the customer's mask history, oldest first.
	ListMasks(ctx context.Context, customerID string) ([]*entity.Mask, error)

	// AddAirTubing appends an air-tubing item to the customer's equipment
	// history.
	AddAirTubing(ctx context.Context, customerID string, input *AddAirTubingInput) (*entity.AirTubing, error)

	// ListAirTubing returns the customer's air-tubing history, oldest first.
	ListAirTubing(ctx context.Context, customerID string) ([]*entity.AirTubing, error)
}

// AddDeviceInput defines the data required to register a device.
type AddDeviceInput struct {
	DeviceName   string
	SerialNumber string
	Status       string
	Settings     map[string]any
}

// AddMaskInput defines the data required to register a mask.
type AddMaskInput struct {
	MaskName string
	Size     string
}

// AddAirTubingInput defines the data required to register air tubing.
type AddAirTubingInput struct {
	TubingName string
}
