package usecase

import (
	"context"

	"megacare/internal/domain/entity"
)

// ClinicianUsecase defines the interface for clinician views over assigned
// patients.
type ClinicianUsecase interface {
	// ListPatients returns the profiles of every patient assigned to the
	// clinician. A caller with no clinician record is not-found.
	ListPatients(ctx context.Context, clinicianID string) ([]*entity.Customer, error)

	// GetPatientReports returns recent reports for one assigned patient. A
	// patient outside the clinician's assignment list is forbidden.
	GetPatientReports(ctx context.Context, clinicianID, patientID string, limit int) ([]*entity.DailyReport, error)
}
