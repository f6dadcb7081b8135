package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"megacare/config"
	"megacare/internal/domain/entity"
	"megacare/internal/domain/repository"
)

type equipmentRepository struct {
	client      *firestore.Client
	collections config.FirestoreConfig
}

// NewEquipmentRepository creates a Firestore-backed equipment repository.
func NewEquipmentRepository(client *firestore.Client, cfg *config.Config) repository.EquipmentRepository {
	return &equipmentRepository{
		client:      client,
		collections: cfg.Firestore,
	}
}

func (r *equipmentRepository) subCollection(customerID, name string) *firestore.CollectionRef {
	return r.client.Collection(r.collections.CustomersCollection).Doc(customerID).Collection(name)
}

// AddDevice appends a device to the customer's devices sub-collection.
func (r *equipmentRepository) AddDevice(ctx context.Context, customerID string, device *entity.Device) (*entity.Device, error) {
	id := uuid.NewString()
	_, err := r.subCollection(customerID, r.collections.DevicesCollection).Doc(id).Create(ctx, device)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create device document")
	}
	device.ID = id

	return device, nil
}

// ListDevices returns all devices for the customer, ascending by addedDate.
func (r *equipmentRepository) ListDevices(ctx context.Context, customerID string) ([]*entity.Device, error) {
	iter := r.subCollection(customerID, r.collections.DevicesCollection).
		OrderBy("addedDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var devices []*entity.Device
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list devices")
		}

		var device entity.Device
		if err := snap.DataTo(&device); err != nil {
			return nil, errors.Wrap(err, "failed to decode device document")
		}
		device.ID = snap.Ref.ID
		devices = append(devices, &device)
	}

	return devices, nil
}

// FindDeviceBySerial resolves a serial number to its device and owning
// customer with a collection-group query across every customer's devices
// sub-collection. Requires a collection-group index on serialNumber.
func (r *equipmentRepository) FindDeviceBySerial(ctx context.Context, serialNumber string) (*repository.DeviceOwner, error) {
	iter := r.client.CollectionGroup(r.collections.DevicesCollection).
		Where("serialNumber", "==", serialNumber).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrDeviceNotFound
		}

		return nil, errors.Wrap(err, "failed to query device by serial number")
	}

	var device entity.Device
	if err := snap.DataTo(&device); err != nil {
		return nil, errors.Wrap(err, "failed to decode device document")
	}
	device.ID = snap.Ref.ID

	customerRef := snap.Ref.Parent.Parent
	if customerRef == nil {
		return nil, errors.New("device document has no parent customer")
	}

	return &repository.DeviceOwner{
		Device:     &device,
		CustomerID: customerRef.ID,
	}, nil
}

// AddMask appends a mask to the customer's masks sub-collection.
func (r *equipmentRepository) AddMask(ctx context.Context, customerID string, mask *entity.Mask) (*entity.Mask, error) {
	id := uuid.NewString()
	_, err := r.subCollection(customerID, r.collections.MasksCollection).Doc(id).Create(ctx, mask)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create mask document")
	}
	mask.ID = id

	return mask, nil
}

// ListMasks returns all masks for the customer, ascending by addedDate.
func (r *equipmentRepository) ListMasks(ctx context.Context, customerID string) ([]*entity.Mask, error) {
	iter := r.subCollection(customerID, r.collections.MasksCollection).
		OrderBy("addedDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var masks []*entity.Mask
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list masks")
		}

		var mask entity.Mask
		if err := snap.DataTo(&mask); err != nil {
			return nil, errors.Wrap(err, "failed to decode mask document")
		}
		mask.ID = snap.Ref.ID
		masks = append(masks, &mask)
	}

	return masks, nil
}

// AddAirTubing appends an air-tubing item to the customer's airTubing
// sub-collection.
func (r *equipmentRepository) AddAirTubing(ctx context.Context, customerID string, tubing *entity.AirTubing) (*entity.AirTubing, error) {
	id := uuid.NewString()
	_, err := r.subCollection(customerID, r.collections.AirTubingCollection).Doc(id).Create(ctx, tubing)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create air tubing document")
	}
	tubing.ID = id

	return tubing, nil
}

// ListAirTubing returns all air-tubing items for the customer, ascending by
// addedDate.
func (r *equipmentRepository) ListAirTubing(ctx context.Context, customerID string) ([]*entity.AirTubing, error) {
	iter := r.subCollection(customerID, r.collections.AirTubingCollection).
		OrderBy("addedDate", firestore.Asc).
		Documents(ctx)
	defer iter.Stop()

	var items []*entity.AirTubing
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list air tubing")
		}

		var tubing entity.AirTubing
		if err := snap.DataTo(&tubing); err != nil {
			return nil, errors.Wrap(err, "failed to decode air tubing document")
		}
		tubing.ID = snap.Ref.ID
		items = append(items, &tubing)
	}

	return items, nil
}
