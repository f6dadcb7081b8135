package firestore

import (
	"context"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"megacare/config"
	"megacare/internal/domain/entity"
	"megacare/internal/domain/repository"
)

type customerRepository struct {
	client      *firestore.Client
	collections config.FirestoreConfig
}

// NewCustomerRepository creates a Firestore-backed customer repository.
func NewCustomerRepository(client *firestore.Client, cfg *config.Config) repository.CustomerRepository {
	return &customerRepository{
		client:      client,
		collections: cfg.Firestore,
	}
}

func (r *customerRepository) customers() *firestore.CollectionRef {
	return r.client.Collection(r.collections.CustomersCollection)
}

// Create persists a new customer document keyed by customerID. Firestore's
// Create precondition fails when the document already exists, which gives
// create-if-absent without a prior read.
func (r *customerRepository) Create(ctx context.Context, customerID string, customer *entity.Customer) error {
	_, err := r.customers().Doc(customerID).Create(ctx, customer)
	if err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return repository.ErrCustomerExists
		}

		return errors.Wrap(err, "failed to create customer document")
	}

	return nil
}

// FindByID retrieves the customer document at customerID.
func (r *customerRepository) FindByID(ctx context.Context, customerID string) (*entity.Customer, error) {
	snap, err := r.customers().Doc(customerID).Get(ctx)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to get customer document")
	}

	return decodeCustomer(snap)
}

// FindByLineID retrieves the customer whose lineId field equals lineID.
// The query needs a single-field index on lineId, which Firestore maintains
// by default.
func (r *customerRepository) FindByLineID(ctx context.Context, lineID string) (*entity.Customer, error) {
	iter := r.customers().Where("lineId", "==", lineID).Limit(1).Documents(ctx)
	defer iter.Stop()

	snap, err := iter.Next()
	if err != nil {
		if errors.Is(err, iterator.Done) {
			return nil, repository.ErrCustomerNotFound
		}

		return nil, errors.Wrap(err, "failed to query customer by lineId")
	}

	return decodeCustomer(snap)
}

// Merge overwrites only the supplied fields of the customer document. A Set
// with MergeAll would create a missing document, so existence is checked by
// the caller before merging.
func (r *customerRepository) Merge(ctx context.Context, customerID string, fields map[string]any) error {
	_, err := r.customers().Doc(customerID).Set(ctx, fields, firestore.MergeAll)
	if err != nil {
		return errors.Wrap(err, "failed to merge customer document")
	}

	return nil
}

// LinkLineID binds lineID to the customer document. The read and the
// conditional write run inside one Firestore transaction, so two concurrent
// callers racing for the same unbound profile cannot both succeed: the loser's
// transaction retries, sees the winner's lineId, and fails with
// ErrCustomerAlreadyLinked.
func (r *customerRepository) LinkLineID(ctx context.Context, customerID, lineID string) error {
	ref := r.customers().Doc(customerID)

	err := r.client.RunTransaction(ctx, func(ctx context.Context, tx *firestore.Transaction) error {
		snap, err := tx.Get(ref)
		if err != nil {
			if isNotFound(err) {
				return repository.ErrCustomerNotFound
			}

			return errors.Wrap(err, "failed to read customer in transaction")
		}

		if current, err := snap.DataAt("lineId"); err == nil {
			if s, ok := current.(string); ok && s != "" {
				return repository.ErrCustomerAlreadyLinked
			}
		}

		return tx.Update(ref, []firestore.Update{
			{Path: "lineId", Value: lineID},
		})
	})
	if err != nil {
		if errors.Is(err, repository.ErrCustomerAlreadyLinked) || errors.Is(err, repository.ErrCustomerNotFound) {
			return err
		}

		return errors.Wrap(err, "link transaction failed")
	}

	return nil
}

func decodeCustomer(snap *firestore.DocumentSnapshot) (*entity.Customer, error) {
	var customer entity.Customer
	if err := snap.DataTo(&customer); err != nil {
		return nil, errors.Wrap(err, "failed to decode customer document")
	}
	customer.ID = snap.Ref.ID

	return &customer, nil
}
