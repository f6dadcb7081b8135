// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"
)

// Customer is the primary subject whose therapy data is tracked. The document
// ID is either the Firebase UID of the account owner (self-registered
// profiles) or a dealer-derived patient ID (pre-provisioned profiles that are
// later claimed through the linking workflow).
type Customer struct {
	ID              string          `firestore:"-" json:"patientId"`
	LineID          string          `firestore:"lineId,omitempty" json:"lineId,omitempty"`
	DisplayName     string          `firestore:"displayName" json:"displayName"`
	Title           string          `firestore:"title,omitempty" json:"title,omitempty"`
	FirstName       string          `firestore:"firstName" json:"firstName"`
	LastName        string          `firestore:"lastName" json:"lastName"`
	DateOfBirth     time.Time       `firestore:"dob" json:"dob"`
	Location        string          `firestore:"location,omitempty" json:"location,omitempty"`
	Status          string          `firestore:"status" json:"status"`
	SetupDate       time.Time       `firestore:"setupDate" json:"setupDate"`
	AirViewNumber   string          `firestore:"airViewNumber,omitempty" json:"airViewNumber,omitempty"`
	MonitoringType  string          `firestore:"monitoringType,omitempty" json:"monitoringType,omitempty"`
	AvailableData   string          `firestore:"availableData,omitempty" json:"availableData,omitempty"`
	DealerPatientID string          `firestore:"dealerPatientId,omitempty" json:"dealerPatientId,omitempty"`
	Organisation    *Organisation   `firestore:"organisation,omitempty" json:"organisation,omitempty"`
	ClinicalUser    *ClinicalUser   `firestore:"clinicalUser,omitempty" json:"clinicalUser,omitempty"`
	Compliance      *Compliance     `firestore:"compliance,omitempty" json:"compliance,omitempty"`
	DataAccess      *DataAccessInfo `firestore:"dataAccess,omitempty" json:"dataAccess,omitempty"`
}

// IsLinked reports whether this profile has been claimed by a LINE identity.
func (c *Customer) IsLinked() bool {
	return c.LineID != ""
}

// Organisation is the dealer organisation a customer belongs to.
type Organisation struct {
	Name string `firestore:"name" json:"name"`
}

// ClinicalUser is the denormalized name of the clinician responsible for the
// customer, as displayed in monitoring summaries.
type ClinicalUser struct {
	Name string `firestore:"name" json:"name"`
}

// Compliance is the denormalized therapy-compliance summary kept on the
// customer document by an external ingestion process.
type Compliance struct {
	Status       string  `firestore:"status" json:"status"`
	UsagePercent float64 `firestore:"usagePercent" json:"usagePercent"`
}

// DataAccessInfo describes what monitoring data is available for the customer
// and for how long.
type DataAccessInfo struct {
	Type     string `firestore:"type" json:"type"`
	Duration string `firestore:"duration" json:"duration"`
}
