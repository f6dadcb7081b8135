// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"

	"megacare/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for customer persistence.
var (
	// ErrCustomerNotFound is returned when no customer document exists at the key.
	ErrCustomerNotFound = errors.New("customer not found")
	// ErrCustomerExists is returned when creating a profile that already exists.
	ErrCustomerExists = errors.New("customer already exists")
	// ErrCustomerAlreadyLinked is returned when the conditional link write finds
	// the identity field already set.
	ErrCustomerAlreadyLinked = errors.New("customer already linked")
)

// CustomerRepository defines the interface for customer-document operations.
type CustomerRepository interface {
	// Create persists a new customer document keyed by customerID. Returns
	// ErrCustomerExists when a document is already present at that key.
	Create(ctx context.Context, customerID string, customer *entity.Customer) error

	// FindByID retrieves the customer document at customerID.
	FindByID(ctx context.Context, customerID string) (*entity.Customer, error)

	// FindByLineID retrieves the customer whose lineId field equals lineID.
	FindByLineID(ctx context.Context, lineID string) (*entity.Customer, error)

	// Merge overwrites only the supplied fields of the customer document,
	// leaving absent fields untouched.
	Merge(ctx context.Context, customerID string, fields map[string]any) error

	// LinkLineID writes lineID onto the customer document as a single atomic
	// conditional write: it fails with ErrCustomerAlreadyLinked unless the
	// lineId field is currently absent or empty.
	LinkLineID(ctx context.Context, customerID, lineID string) error
}
