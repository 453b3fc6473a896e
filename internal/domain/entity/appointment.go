package entity

import "time"

// Appointment is a scheduled treatment of a patient by a therapist at a practice.
//
// PatientInsuranceNumber, PracticeInstitutionCode and FixedRemedyDiagnosisCode
// reference the central database and are not enforced by the company database.
type Appointment struct {
	ID                       int
	StartsAt                 time.Time
	EndsAt                   time.Time
	PatientInsuranceNumber   string
	TherapistID              int
	PracticeInstitutionCode  string
	FixedRemedyDiagnosisCode *string
	IndividualRemedyID       *int
}

// HasFixedRemedy reports whether the appointment references a fixed remedy.
func (a *Appointment) HasFixedRemedy() bool {
	return a.FixedRemedyDiagnosisCode != nil && *a.FixedRemedyDiagnosisCode != ""
}

// HasIndividualRemedy reports whether the appointment references an individual remedy.
func (a *Appointment) HasIndividualRemedy() bool {
	return a.IndividualRemedyID != nil
}
