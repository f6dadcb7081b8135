package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"megacare/config"
	"megacare/internal/domain/entity"
	"megacare/internal/domain/repository"
)

type reportRepository struct {
	client      *firestore.Client
	collections config.FirestoreConfig
}

// NewReportRepository creates a Firestore-backed daily-report repository.
func NewReportRepository(client *firestore.Client, cfg *config.Config) repository.ReportRepository {
	return &reportRepository{
		client:      client,
		collections: cfg.Firestore,
	}
}

func (r *reportRepository) reports(customerID string) *firestore.CollectionRef {
	return r.client.Collection(r.collections.CustomersCollection).
		Doc(customerID).
		Collection(r.collections.ReportsCollection)
}

// Save stores the report under its date key. Set overwrites any existing
// document, which is the required resubmission semantics.
func (r *reportRepository) Save(ctx context.Context, customerID string, report *entity.DailyReport) error {
	_, err := r.reports(customerID).Doc(report.ReportDate).Set(ctx, report)
	if err != nil {
		return errors.Wrap(err, "failed to save report document")
	}
	report.ID = report.ReportDate

	return nil
}

// FindByDate retrieves one report by its ISO date string.
func (r *reportRepository) FindByDate(ctx context.Context, customerID, reportDate string) (*entity.DailyReport, error) {
	snap, err := r.reports(customerID).Doc(reportDate).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to get report document")
	}

	return decodeReport(snap)
}

// FindLatest retrieves the newest report. Document IDs are ISO dates, so
// ordering by document ID descending is ordering by date descending.
func (r *reportRepository) FindLatest(ctx context.Context, customerID string) (*entity.DailyReport, error) {
	iter := r.reports(customerID).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(1).
		Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrReportNotFound
		}

		return nil, errors.Wrap(err, "failed to query latest report")
	}

	return decodeReport(snap)
}

// ListRecent returns up to limit reports ordered by date descending.
func (r *reportRepository) ListRecent(ctx context.Context, customerID string, limit int) ([]*entity.DailyReport, error) {
	iter := r.reports(customerID).
		OrderBy(firestore.DocumentID, firestore.Desc).
		Limit(limit).
		Documents(ctx)
	defer iter.Stop()

	var reports []*entity.DailyReport
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, errors.Wrap(err, "failed to list reports")
		}

		report, err := decodeReport(snap)
		if err != nil {
			return nil, err
		}
		reports = append(reports, report)
	}

	return reports, nil
}

func decodeReport(snap *firestore.DocumentSnapshot) (*entity.DailyReport, error) {
	var report entity.DailyReport
	if err := snap.DataTo(&report); err != nil {
		return nil, errors.Wrap(err, "failed to decode report document")
	}
	report.ID = snap.Ref.ID

	return &report, nil
}
