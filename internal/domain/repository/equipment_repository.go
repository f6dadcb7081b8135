package repository

import (
	"context"

	"megacare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrDeviceNotFound is returned when no device matches a serial-number lookup.
var ErrDeviceNotFound = errors.New("device not found")

// DeviceOwner pairs a device with the ID of the customer that owns it, as
// resolved by a cross-customer serial-number lookup.
type DeviceOwner struct {
	Device     *entity.Device
	CustomerID string
}

// EquipmentRepository defines the interface for the per-customer equipment
// sub-collections (devices, masks, air tubing).
type EquipmentRepository interface {
	// AddDevice appends a device to the customer's devices sub-collection and
	// returns it with its generated ID.
	AddDevice(ctx context.Context, customerID string, device *entity.Device) (*entity.Device, error)

	// ListDevices returns all devices for the customer, ascending by addedDate.
	ListDevices(ctx context.Context, customerID string) ([]*entity.Device, error)

	// FindDeviceBySerial resolves a serial number to a device and its owning
	// customer across all customers. Returns ErrDeviceNotFound when no device
	// carries the serial.
	FindDeviceBySerial(ctx context.Context, serialNumber string) (*DeviceOwner, error)

	// AddMask appends a mask to the customer's masks sub-collection.
	AddMask(ctx context.Context, customerID string, mask *entity.Mask) (*entity.Mask, error)

	// ListMasks returns all masks for the customer, ascending by addedDate.
	ListMasks(ctx context.Context, customerID string) ([]*entity.Mask, error)

	// AddAirTubing appends an air-tubing item to the customer's airTubing
	// sub-collection.
	AddAirTubing(ctx context.Context, customerID string, tubing *entity.AirTubing) (*entity.AirTubing, error)

	// ListAirTubing returns all air-tubing items for the customer, ascending by
	// addedDate.
	ListAirTubing(ctx context.Context, customerID string) ([]*entity.AirTubing, error)
}
