// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"
	"time"

	"megacare/internal/domain/entity"
)

// ProfileUsecase defines the interface for customer-profile operations. The
// customerID is always the authenticated caller's Firebase UID.
type ProfileUsecase interface {
	// CreateProfile creates the caller's profile if absent; an existing
	// profile is a conflict, not an overwrite.
	CreateProfile(ctx context.Context, customerID string, input *CreateProfileInput) (*entity.Customer, error)

	// GetProfile fetches the caller's profile; absence is a not-found error,
	// not an empty success.
	GetProfile(ctx context.Context, customerID string) (*entity.Customer, error)

	// UpdateProfile merges only the supplied fields into the caller's profile.
	UpdateProfile(ctx context.Context, customerID string, input *UpdateProfileInput) (*entity.Customer, error)
}

// CreateProfileInput defines the data required to create a customer profile.
type CreateProfileInput struct {
	LineID          string
	DisplayName     string
	Title           string
	FirstName       string
	LastName        string
	DateOfBirth     time.Time
	Location        string
	Status          string
	AirViewNumber   string
	MonitoringType  string
	AvailableData   string
	DealerPatientID string
}

// UpdateProfileInput defines a partial profile update. Nil fields are left
// untouched.
type UpdateProfileInput struct {
	DisplayName     *string
	Title           *string
	FirstName       *string
	LastName        *string
	DateOfBirth     *time.Time
	Location        *string
	Status          *string
	AirViewNumber   *string
	MonitoringType  *string
	AvailableData   *string
	DealerPatientID *string
}

// Fields returns the supplied fields as a merge map keyed by document field
// name. An empty map means there is nothing to update.
func (in *UpdateProfileInput) Fields() map[string]any {
	fields := make(map[string]any)

	setIf := func(key string, v *string) {
		if v != nil {
			fields[key] = *v
		}
	}

	setIf("displayName", in.DisplayName)
	setIf("title", in.Title)
	setIf("firstName", in.FirstName)
	setIf("lastName", in.LastName)
	setIf("location", in.Location)
	setIf("status", in.Status)
	setIf("airViewNumber", in.AirViewNumber)
	setIf("monitoringType", in.MonitoringType)
	setIf("availableData", in.AvailableData)
	setIf("dealerPatientId", in.DealerPatientID)

	if in.DateOfBirth != nil {
		fields["dob"] = *in.DateOfBirth
	}

	return fields
}
