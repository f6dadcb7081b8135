package impl

import (
	"context"
	"log/slog"

	"megacare/config"
	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
)

// clinicianService implements the ClinicianUsecase interface.
type clinicianService struct {
	clinicianRepo repository.ClinicianRepository
	customerRepo  repository.CustomerRepository
	reportRepo    repository.ReportRepository
	limits        config.ReportsConfig
	logger        *slog.Logger
}

// NewClinicianService is the constructor for clinicianService.
func NewClinicianService(
	clinicianRepo repository.ClinicianRepository,
	customerRepo repository.CustomerRepository,
	reportRepo repository.ReportRepository,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ClinicianUsecase {
	return &clinicianService{
		clinicianRepo: clinicianRepo,
		customerRepo:  customerRepo,
		reportRepo:    reportRepo,
		limits:        cfg.Reports,
		logger:        logger,
	}
}

// ListPatients returns the profiles of every patient assigned to the
// clinician. Assignments pointing at deleted profiles are skipped rather than
// failing the whole listing.
func (srv *clinicianService) ListPatients(ctx context.Context, clinicianID string) ([]*entity.Customer, error) {
	clinician, err := srv.findClinician(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	patients := make([]*entity.Customer, 0, len(clinician.AssignedPatients))
	for _, patientID := range clinician.AssignedPatients {
		patient, err := srv.customerRepo.FindByID(ctx, patientID)
		if err != nil {
			if errors.Is(err, repository.ErrCustomerNotFound) {
				srv.logger.Warn("Assigned patient has no profile",
					"clinicianID", clinicianID, "patientID", patientID)

				continue
			}

			return nil, errors.Wrap(err, "failed to fetch assigned patient")
		}
		patients = append(patients, patient)
	}

	return patients, nil
}

// GetPatientReports returns recent reports for one assigned patient.
func (srv *clinicianService) GetPatientReports(ctx context.Context, clinicianID, patientID string, limit int) ([]*entity.DailyReport, error) {
	clinician, err := srv.findClinician(ctx, clinicianID)
	if err != nil {
		return nil, err
	}

	if !clinician.CanAccess(patientID) {
		return nil, errors.Wrap(domainerrors.ErrPatientNotAssigned, "patient not in assignment list")
	}

	if limit <= 0 {
		limit = srv.limits.DefaultLimit
	}
	if limit > srv.limits.MaxLimit {
		limit = srv.limits.MaxLimit
	}

	reports, err := srv.reportRepo.ListRecent(ctx, patientID, limit)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list patient reports")
	}
	if reports == nil {
		reports = []*entity.DailyReport{}
	}

	return reports, nil
}

func (srv *clinicianService) findClinician(ctx context.Context, clinicianID string) (*entity.Clinician, error) {
	clinician, err := srv.clinicianRepo.FindByID(ctx, clinicianID)
	if err != nil {
		if errors.Is(err, repository.ErrClinicianNotFound) {
			return nil, errors.Wrap(domainerrors.ErrClinicianNotFound, "no clinician record")
		}

		return nil, errors.Wrap(err, "failed to find clinician")
	}

	return clinician, nil
}
