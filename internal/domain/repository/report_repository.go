package repository

import (
	"context"

	"megacare/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrReportNotFound is returned when no report document exists for a date.
var ErrReportNotFound = errors.New("report not found")

// ReportRepository defines the interface for the per-customer dailyReports
// sub-collection. Report document IDs are ISO dates (YYYY-MM-DD), so ordering
// by document ID is ordering by date.
type ReportRepository interface {
	// Save stores the report under its date key, overwriting any prior
	// document for the same date.
	Save(ctx context.Context, customerID string, report *entity.DailyReport) error

	// FindByDate retrieves one report by its ISO date string.
	FindByDate(ctx context.Context, customerID, reportDate string) (*entity.DailyReport, error)

	// FindLatest retrieves the report with the newest date, or
	// ErrReportNotFound when the customer has no reports.
	FindLatest(ctx context.Context, customerID string) (*entity.DailyReport, error)

	// ListRecent returns up to limit reports ordered by date descending.
	ListRecent(ctx context.Context, customerID string, limit int) ([]*entity.DailyReport, error)
}
