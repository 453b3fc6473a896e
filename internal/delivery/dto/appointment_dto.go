package dto

import "time"

type AppointmentRequest struct {
	ID                       int       `json:"id" validate:"gt=0"`
	StartsAt                 time.Time `json:"starts_at" validate:"required"`
	EndsAt                   time.Time `json:"ends_at" validate:"required,gtfield=StartsAt"`
	PatientInsuranceNumber   string    `json:"patient_insurance_number" validate:"required"`
	TherapistID              int       `json:"therapist_id" validate:"gt=0"`
	PracticeInstitutionCode  string    `json:"practice_institution_code" validate:"required"`
	FixedRemedyDiagnosisCode *string   `json:"fixed_remedy_diagnosis_code,omitempty"`
	IndividualRemedyID       *int      `json:"individual_remedy_id,omitempty" validate:"omitempty,gt=0"`
}

type AppointmentResponse struct {
	ID                       int       `json:"id"`
	StartsAt                 time.Time `json:"starts_at"`
	EndsAt                   time.Time `json:"ends_at"`
	PatientInsuranceNumber   string    `json:"patient_insurance_number"`
	TherapistID              int       `json:"therapist_id"`
	PracticeInstitutionCode  string    `json:"practice_institution_code"`
	FixedRemedyDiagnosisCode *string   `json:"fixed_remedy_diagnosis_code,omitempty"`
	IndividualRemedyID       *int      `json:"individual_remedy_id,omitempty"`
}

type AppointmentFilter struct {
	ID                       *IntFilter       `json:"id,omitempty"`
	StartsAt                 *TimestampFilter `json:"starts_at,omitempty"`
	EndsAt                   *TimestampFilter `json:"ends_at,omitempty"`
	PatientInsuranceNumber   *StringFilter    `json:"patient_insurance_number,omitempty"`
	TherapistID              *IntFilter       `json:"therapist_id,omitempty"`
	PracticeInstitutionCode  *StringFilter    `json:"practice_institution_code,omitempty"`
	FixedRemedyDiagnosisCode *StringFilter    `json:"fixed_remedy_diagnosis_code,omitempty"`
	IndividualRemedyID       *IntFilter       `json:"individual_remedy_id,omitempty"`
}
