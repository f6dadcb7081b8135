package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"megacare/config"
	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	mockRepo "megacare/internal/mocks/repository"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// clinicianServiceFixtures holds all test dependencies for clinician service tests.
type clinicianServiceFixtures struct {
	service       usecase.ClinicianUsecase
	clinicianRepo *mockRepo.MockClinicianRepository
	customerRepo  *mockRepo.MockCustomerRepository
	reportRepo    *mockRepo.MockReportRepository
}

func createTestClinicianService(t *testing.T) clinicianServiceFixtures {
	clinicianRepo := mockRepo.NewMockClinicianRepository(t)
	customerRepo := mockRepo.NewMockCustomerRepository(t)
	reportRepo := mockRepo.NewMockReportRepository(t)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	cfg := &config.Config{
		Reports: config.ReportsConfig{DefaultLimit: 30, MaxLimit: 100},
	}
	service := NewClinicianService(clinicianRepo, customerRepo, reportRepo, cfg, logger)

	return clinicianServiceFixtures{
		service:       service,
		clinicianRepo: clinicianRepo,
		customerRepo:  customerRepo,
		reportRepo:    reportRepo,
	}
}

func TestClinicianService_ListPatients_Success(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()
	clinician := &entity.Clinician{
		ID:               "clinician-1",
		Name:             "Dr. Anong",
		AssignedPatients: []string{"patient-1", "patient-2"},
	}

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "clinician-1").
		Return(clinician, nil)

	fx.customerRepo.EXPECT().
		FindByID(ctx, "patient-1").
		Return(&entity.Customer{ID: "patient-1", FirstName: "Somsak"}, nil)

	fx.customerRepo.EXPECT().
		FindByID(ctx, "patient-2").
		Return(&entity.Customer{ID: "patient-2", FirstName: "Malee"}, nil)

	patients, err := fx.service.ListPatients(ctx, "clinician-1")
	require.NoError(t, err)
	require.Len(t, patients, 2)
	assert.Equal(t, "patient-1", patients[0].ID)
	assert.Equal(t, "patient-2", patients[1].ID)
}

func TestClinicianService_ListPatients_SkipsMissingProfiles(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()
	clinician := &entity.Clinician{
		ID:               "clinician-1",
		AssignedPatients: []string{"patient-1", "patient-gone"},
	}

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "clinician-1").
		Return(clinician, nil)

	fx.customerRepo.EXPECT().
		FindByID(ctx, "patient-1").
		Return(&entity.Customer{ID: "patient-1"}, nil)

	fx.customerRepo.EXPECT().
		FindByID(ctx, "patient-gone").
		Return(nil, repository.ErrCustomerNotFound)

	patients, err := fx.service.ListPatients(ctx, "clinician-1")
	require.NoError(t, err)
	require.Len(t, patients, 1)
	assert.Equal(t, "patient-1", patients[0].ID)
}

func TestClinicianService_ListPatients_NoClinicianRecord(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "not-a-clinician").
		Return(nil, repository.ErrClinicianNotFound)

	patients, err := fx.service.ListPatients(ctx, "not-a-clinician")
	require.Error(t, err)
	assert.Nil(t, patients)
	assert.True(t, errors.Is(err, domainerrors.ErrClinicianNotFound))
}

func TestClinicianService_GetPatientReports_Success(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()
	clinician := &entity.Clinician{
		ID:               "clinician-1",
		AssignedPatients: []string{"patient-1"},
	}

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "clinician-1").
		Return(clinician, nil)

	fx.reportRepo.EXPECT().
		ListRecent(ctx, "patient-1", 30).
		Return([]*entity.DailyReport{{ReportDate: "2025-06-01"}}, nil)

	reports, err := fx.service.GetPatientReports(ctx, "clinician-1", "patient-1", 0)
	require.NoError(t, err)
	require.Len(t, reports, 1)
	assert.Equal(t, "2025-06-01", reports[0].ReportDate)
}

func TestClinicianService_GetPatientReports_NotAssigned(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()
	clinician := &entity.Clinician{
		ID:               "clinician-1",
		AssignedPatients: []string{"patient-1"},
	}

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "clinician-1").
		Return(clinician, nil)

	reports, err := fx.service.GetPatientReports(ctx, "clinician-1", "patient-9", 0)
	require.Error(t, err)
	assert.Nil(t, reports)
	assert.True(t, errors.Is(err, domainerrors.ErrPatientNotAssigned))
}

func TestClinicianService_GetPatientReports_ClampsLimit(t *testing.T) {
	fx := createTestClinicianService(t)

	ctx := context.Background()
	clinician := &entity.Clinician{
		ID:               "clinician-1",
		AssignedPatients: []string{"patient-1"},
	}

	fx.clinicianRepo.EXPECT().
		FindByID(ctx, "clinician-1").
		Return(clinician, nil)

	fx.reportRepo.EXPECT().
		ListRecent(ctx, "patient-1", 100).
		Return(nil, nil)

	reports, err := fx.service.GetPatientReports(ctx, "clinician-1", "patient-1", 9999)
	require.NoError(t, err)
	assert.NotNil(t, reports)
	assert.Empty(t, reports)
}
