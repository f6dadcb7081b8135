package impl

import (
	"context"
	"log/slog"

	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
)

// linkingService implements the LinkingUsecase interface.
type linkingService struct {
	customerRepo  repository.CustomerRepository
	equipmentRepo repository.EquipmentRepository
	logger        *slog.Logger
}

// NewLinkingService is the constructor for linkingService.
func NewLinkingService(
	customerRepo repository.CustomerRepository,
	equipmentRepo repository.EquipmentRepository,
	logger *slog.Logger,
) usecase.LinkingUsecase {
	return &linkingService{
		customerRepo:  customerRepo,
		equipmentRepo: equipmentRepo,
		logger:        logger,
	}
}

// GetLinkStatus reports whether any customer profile is bound to lineID.
func (srv *linkingService) GetLinkStatus(ctx context.Context, lineID string) (*usecase.LinkStatus, error) {
	_, err := srv.customerRepo.FindByLineID(ctx, lineID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return &usecase.LinkStatus{IsLinked: false}, nil
		}

		return nil, errors.Wrap(err, "failed to check link status")
	}

	return &usecase.LinkStatus{IsLinked: true}, nil
}

// LinkAccount binds lineID to the customer that owns the device with
// serialNumber. The bind itself is a conditional write performed by the
// repository, so concurrent callers racing for the same profile resolve to
// exactly one winner.
func (srv *linkingService) LinkAccount(ctx context.Context, lineID, serialNumber string) error {
	owner, err := srv.equipmentRepo.FindDeviceBySerial(ctx, serialNumber)
	if err != nil {
		if errors.Is(err, repository.ErrDeviceNotFound) {
			return errors.Wrap(domainerrors.ErrSerialNotFound, "serial number not found")
		}

		return errors.Wrap(err, "failed to look up serial number")
	}

	if err := srv.customerRepo.LinkLineID(ctx, owner.CustomerID, lineID); err != nil {
		switch {
		case errors.Is(err, repository.ErrCustomerAlreadyLinked):
			return errors.Wrap(domainerrors.ErrAlreadyLinked, "profile already linked")
		case errors.Is(err, repository.ErrCustomerNotFound):
			return errors.Wrap(domainerrors.ErrSerialNotFound, "owning profile missing")
		default:
			return errors.Wrap(err, "failed to link account")
		}
	}

	srv.logger.Info("Account linked", "customerID", owner.CustomerID, "serialNumber", serialNumber)

	return nil
}
