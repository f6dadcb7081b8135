package entity

// Clinician is a caller authorized to view data for a fixed set of assigned
// patients. The document ID is the clinician's Firebase UID.
type Clinician struct {
	ID               string   `firestore:"-" json:"clinicianId"`
	Name             string   `firestore:"name" json:"name"`
	Organisation     string   `firestore:"organisation,omitempty" json:"organisation,omitempty"`
	AssignedPatients []string `firestore:"assignedPatients" json:"assignedPatients"`
}

// CanAccess reports whether the clinician is authorized to view the given
// patient's data.
func (c *Clinician) CanAccess(patientID string) bool {
	for _, id := range c.AssignedPatients {
		if id == patientID {
			return true
		}
	}

	return false
}
