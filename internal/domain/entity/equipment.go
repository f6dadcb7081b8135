package entity

import (
	"time"
)

// Equipment status values as stored on sub-collection documents.
const (
	EquipmentStatusActive  = "Active"
	EquipmentStatusRetired = "Retired"
)

// Device is a CPAP machine in a customer's equipment history. The serial
// number is unique across the whole system, not only within one customer.
type Device struct {
	ID           string         `firestore:"-" json:"deviceId"`
	DeviceName   string         `firestore:"deviceName" json:"deviceName"`
	SerialNumber string         `firestore:"serialNumber" json:"serialNumber"`
	Status       string         `firestore:"status" json:"status"`
	Settings     map[string]any `firestore:"settings,omitempty" json:"settings,omitempty"`
	AddedDate    time.Time      `firestore:"addedDate" json:"addedDate"`
}

// Mask is a mask item in a customer's equipment history.
type Mask struct {
	ID        string    `firestore:"-" json:"maskId"`
	MaskName  string    `firestore:"maskName" json:"maskName"`
	Size      string    `firestore:"size" json:"size"`
	AddedDate time.Time `firestore:"addedDate" json:"addedDate"`
}

// AirTubing is an air-tubing item in a customer's equipment history.
type AirTubing struct {
	ID         string    `firestore:"-" json:"tubingId"`
	TubingName string    `firestore:"tubingName" json:"tubingName"`
	AddedDate  time.Time `firestore:"addedDate" json:"addedDate"`
}
