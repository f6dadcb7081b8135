// Package impl contains the application-specific business rules implementations.
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

// profileService implements the ProfileUsecase interface.
type profileService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) usecase.ProfileUsecase {
	return &profileService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// CreateProfile creates the caller's profile keyed by their UID. The setup
// date is always server-assigned.
func (srv *profileService) CreateProfile(ctx context.Context, customerID string, input *usecase.CreateProfileInput) (*entity.Customer, error) {
	srv.logger.Info("Creating customer profile", "customerID", customerID)

	status := input.Status
	if status == "" {
		status = "Active"
	}

	customer := &entity.Customer{
		LineID:          input.LineID,
		DisplayName:     input.DisplayName,
		Title:           input.Title,
		FirstName:       input.FirstName,
		LastName:        input.LastName,
		DateOfBirth:     input.DateOfBirth,
		Location:        input.Location,
		Status:          status,
		SetupDate:       time.Now().UTC(),
		AirViewNumber:   input.AirViewNumber,
		MonitoringType:  input.MonitoringType,
		AvailableData:   input.AvailableData,
		DealerPatientID: input.DealerPatientID,
	}

	if err := srv.customerRepo.Create(ctx, customerID, customer); err != nil {
		if errors.Is(err, repository.ErrCustomerExists) {
			return nil, errors.Wrap(domainerrors.ErrProfileExists, "profile already exists")
		}

		return nil, errors.Wrap(err, "failed to create profile")
	}
	customer.ID = customerID

	return customer, nil
}

// GetProfile fetches the caller's profile.
func (srv *profileService) GetProfile(ctx context.Context, customerID string) (*entity.Customer, error) {
	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to get profile")
	}

	return customer, nil
}

// UpdateProfile merges only the supplied fields into the caller's profile and
// returns the updated document. Updating a missing profile is not-found, not
// an implicit create.
func (srv *profileService) UpdateProfile(ctx context.Context, customerID string, input *usecase.UpdateProfileInput) (*entity.Customer, error) {
	srv.logger.Info("Updating customer profile", "customerID", customerID)

	if _, err := srv.customerRepo.FindByID(ctx, customerID); err != nil {
		if errors.Is(err, repository.ErrCustomerNotFound) {
			return nil, errors.Wrap(domainerrors.ErrProfileNotFound, "profile not found")
		}

		return nil, errors.Wrap(err, "failed to find profile")
	}

	fields := input.Fields()
	if len(fields) > 0 {
		if err := srv.customerRepo.Merge(ctx, customerID, fields); err != nil {
			return nil, errors.Wrap(err, "failed to merge profile")
		}
	}

	customer, err := srv.customerRepo.FindByID(ctx, customerID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to reload profile")
	}

	return customer, nil
}
