package repository

import (
	"context"

	"megacare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrClinicianNotFound is returned when no clinician document exists at the key.
var ErrClinicianNotFound = errors.New("clinician not found")

// ClinicianRepository defines the interface for clinician-document operations.
type ClinicianRepository interface {
	// FindByID retrieves the clinician document keyed by the caller's UID.
	FindByID(ctx context.Context, clinicianID string) (*entity.Clinician, error)
}
