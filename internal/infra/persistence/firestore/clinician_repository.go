package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"

	"megacare/config"
	"megacare/internal/domain/entity"
	"megacare/internal/domain/repository"
)

type clinicianRepository struct {
	client      *firestore.Client
	collections config.FirestoreConfig
}

// NewClinicianRepository creates a Firestore-backed clinician repository.
func NewClinicianRepository(client *firestore.Client, cfg *config.Config) repository.ClinicianRepository {
	return &clinicianRepository{
		client:      client,
		collections: cfg.Firestore,
	}
}

// FindByID retrieves the clinician document keyed by the caller's UID.
func (r *clinicianRepository) FindByID(ctx context.Context, clinicianID string) (*entity.Clinician, error) {
	snap, err := r.client.Collection(r.collections.CliniciansCollection).Doc(clinicianID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrClinicianNotFound
		}

		return nil, errors.Wrap(err, "failed to get clinician document")
	}

	var clinician entity.Clinician
	if err := snap.DataTo(&clinician); err != nil {
		return nil, errors.Wrap(err, "failed to decode clinician document")
	}
	clinician.ID = snap.Ref.ID

	return &clinician, nil
}
