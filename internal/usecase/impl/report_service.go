package impl

import (
	"context"
	"log/slog"
	"time"

	"megacare/config"
	"megacare/internal/domain/entity"
	domainerrors "megacare/internal/domain/errors"
	"megacare/internal/domain/repository"
	"megacare/internal/domain/service"
	"megacare/internal/usecase"

	"github.com/pkg/errors"
)

// reportService implements the ReportUsecase interface.
type reportService struct {
	reportRepo repository.ReportRepository
	analyzer   *service.ReportAnalyzer
	limits     config.ReportsConfig
	logger     *slog.Logger
}

// NewReportService is the constructor for reportService.
func NewReportService(
	reportRepo repository.ReportRepository,
	analyzer *service.ReportAnalyzer,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.ReportUsecase {
	return &reportService{
		reportRepo: reportRepo,
		analyzer:   analyzer,
		limits:     cfg.Reports,
		logger:     logger,
	}
}

// SubmitReport stores the report under its date key, overwriting any prior
// record for the same date.
func (srv *reportService) SubmitReport(ctx context.Context, customerID string, input *usecase.SubmitReportInput) (*entity.DailyReport, error) {
	if _, err := time.Parse(entity.ReportDateLayout, input.ReportDate); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "reportDate must be formatted as %s", entity.ReportDateLayout)
	}

	srv.logger.Info("Submitting daily report", "customerID", customerID, "reportDate", input.ReportDate)

	report := &entity.DailyReport{
		ReportDate:              input.ReportDate,
		UsageHours:              input.UsageHours,
		CheyneStokesRespiration: input.CheyneStokesRespiration,
		RERA:                    input.RERA,
		Leak:                    input.Leak,
		Pressure:                input.Pressure,
		EventsPerHour:           input.EventsPerHour,
		DeviceSnapshot:          input.DeviceSnapshot,
	}

	if err := srv.reportRepo.Save(ctx, customerID, report); err != nil {
		return nil, errors.Wrap(err, "failed to save report")
	}

	return report, nil
}

// ListReports returns raw reports ordered by date descending, with the limit
// defaulted and clamped per configuration.
func (srv *reportService) ListReports(ctx context.Context, customerID string, limit int) ([]*entity.DailyReport, error) {
	reports, err := srv.reportRepo.ListRecent(ctx, customerID, srv.clampLimit(limit))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list reports")
	}
	if reports == nil {
		reports = []*entity.DailyReport{}
	}

	return reports, nil
}

// GetReportDetail returns one date's report with its derived analysis.
func (srv *reportService) GetReportDetail(ctx context.Context, customerID, reportDate string) (*usecase.ReportDetail, error) {
	if _, err := time.Parse(entity.ReportDateLayout, reportDate); err != nil {
		return nil, errors.Wrapf(domainerrors.ErrValidationFailed, "report date must be formatted as %s", entity.ReportDateLayout)
	}

	report, err := srv.reportRepo.FindByDate(ctx, customerID, reportDate)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, errors.Wrapf(domainerrors.ErrReportNotFound, "no report for date %s", reportDate)
		}

		return nil, errors.Wrap(err, "failed to get report")
	}

	return srv.detail(report), nil
}

// GetLatestReportDetail returns the newest report with its derived analysis.
func (srv *reportService) GetLatestReportDetail(ctx context.Context, customerID string) (*usecase.ReportDetail, error) {
	report, err := srv.reportRepo.FindLatest(ctx, customerID)
	if err != nil {
		if errors.Is(err, repository.ErrReportNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNoReports, "no reports found")
		}

		return nil, errors.Wrap(err, "failed to get latest report")
	}

	return srv.detail(report), nil
}

func (srv *reportService) detail(report *entity.DailyReport) *usecase.ReportDetail {
	return &usecase.ReportDetail{
		RawData:          report,
		ReportAssessment: srv.analyzer.Analyze(report),
	}
}

func (srv *reportService) clampLimit(limit int) int {
	if limit <= 0 {
		return srv.limits.DefaultLimit
	}
	if limit > srv.limits.MaxLimit {
		return srv.limits.MaxLimit
	}

	return limit
}
