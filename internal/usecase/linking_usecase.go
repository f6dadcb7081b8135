package usecase

import (
	"context"
)

// LinkingUsecase defines the interface for the account-linking workflow: a
// LINE identity claims a pre-provisioned customer profile by presenting the
// serial number of one of its devices.
type LinkingUsecase interface {
	// GetLinkStatus reports whether any customer profile is bound to lineID.
	GetLinkStatus(ctx context.Context, lineID string) (*LinkStatus, error)

	// LinkAccount resolves serialNumber to its owning customer and binds
	// lineID to that profile. Unknown serial is not-found; a profile that is
	// already bound is a conflict. The bind is an atomic conditional write, so
	// of two concurrent calls for the same unbound serial exactly one wins.
	LinkAccount(ctx context.Context, lineID, serialNumber string) error
}

// LinkStatus is the result of a link-status check.
type LinkStatus struct {
	IsLinked bool `json:"isLinked"`
}
