package usecase

import (
	"context"

	"megacare/internal/domain/entity"
)

// ReportUsecase defines the interface for daily-report submission, retrieval
// and derived analysis.
type ReportUsecase interface {
	// SubmitReport stores the report under its date key. Resubmitting the same
	// date overwrites the prior record; there is no conflict error.
	SubmitReport(ctx context.Context, customerID string, input *SubmitReportInput) (*entity.DailyReport, error)

	// ListReports returns raw reports ordered by date descending. A limit of 0
	// applies the configured default; larger limits are clamped to the
	// configured maximum.
	ListReports(ctx context.Context, customerID string, limit int) ([]*entity.DailyReport, error)

	// GetReportDetail returns the report for one date together with its
	// derived analysis.
	GetReportDetail(ctx context.Context, customerID, reportDate string) (*ReportDetail, error)

	// GetLatestReportDetail returns the newest report together with its
	// derived analysis.
	GetLatestReportDetail(ctx context.Context, customerID string) (*ReportDetail, error)
}

// SubmitReportInput defines one day's raw therapy metrics. ReportDate is an
// ISO date string and becomes the storage key.
type SubmitReportInput struct {
	ReportDate              string
	UsageHours              float64
	CheyneStokesRespiration string
	RERA                    float64
	Leak                    entity.LeakStats
	Pressure                entity.PressureStats
	EventsPerHour           entity.EventsPerHour
	DeviceSnapshot          map[string]any
}

// ReportDetail combines one raw report with its derived assessment.
type ReportDetail struct {
	RawData *entity.DailyReport `json:"rawData"`
	*entity.ReportAssessment
}
