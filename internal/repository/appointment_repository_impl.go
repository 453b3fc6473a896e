package repository

import (
	"time"

	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type appointmentRow struct {
	ID                       int       `gorm:"column:id"`
	StartsAt                 time.Time `gorm:"column:starts_at"`
	EndsAt                   time.Time `gorm:"column:ends_at"`
	PatientInsuranceNumber   string    `gorm:"column:patient_insurance_number"`
	TherapistID              int       `gorm:"column:therapist_id"`
	PracticeInstitutionCode  string    `gorm:"column:practice_institution_code"`
	FixedRemedyDiagnosisCode *string   `gorm:"column:fixed_remedy_diagnosis_code"`
	IndividualRemedyID       *int      `gorm:"column:individual_remedy_id"`
}

func newAppointmentRow(a entity.Appointment) appointmentRow {
	row := appointmentRow{
		ID:                      a.ID,
		StartsAt:                a.StartsAt.UTC(),
		EndsAt:                  a.EndsAt.UTC(),
		PatientInsuranceNumber:  a.PatientInsuranceNumber,
		TherapistID:             a.TherapistID,
		PracticeInstitutionCode: a.PracticeInstitutionCode,
		IndividualRemedyID:      a.IndividualRemedyID,
	}
	// An empty diagnosis code is stored as "no fixed remedy".
	if a.HasFixedRemedy() {
		row.FixedRemedyDiagnosisCode = a.FixedRemedyDiagnosisCode
	}
	return row
}

func (r appointmentRow) toEntity() entity.Appointment {
	return entity.Appointment{
		ID:                       r.ID,
		StartsAt:                 r.StartsAt.UTC(),
		EndsAt:                   r.EndsAt.UTC(),
		PatientInsuranceNumber:   r.PatientInsuranceNumber,
		TherapistID:              r.TherapistID,
		PracticeInstitutionCode:  r.PracticeInstitutionCode,
		FixedRemedyDiagnosisCode: r.FixedRemedyDiagnosisCode,
		IndividualRemedyID:       r.IndividualRemedyID,
	}
}

// NewAppointmentRepository returns the appointment table of the company database.
// Therapist and individual remedy references are enforced by foreign keys;
// the central references are not.
func NewAppointmentRepository(db *gorm.DB) domainRepo.AppointmentRepository {
	return NewPostgresRepository(db, Definition[entity.Appointment, appointmentRow, int, entity.AppointmentFilter]{
		Table:     "appointment",
		KeyColumn: "id",
		Columns: []Column[appointmentRow]{
			{Name: "id", Value: func(r appointmentRow) any { return r.ID }},
			{Name: "starts_at", Value: func(r appointmentRow) any { return r.StartsAt }},
			{Name: "ends_at", Value: func(r appointmentRow) any { return r.EndsAt }},
			{Name: "patient_insurance_number", Value: func(r appointmentRow) any { return r.PatientInsuranceNumber }},
			{Name: "therapist_id", Value: func(r appointmentRow) any { return r.TherapistID }},
			{Name: "practice_institution_code", Value: func(r appointmentRow) any { return r.PracticeInstitutionCode }},
			{Name: "fixed_remedy_diagnosis_code", Value: func(r appointmentRow) any { return nullable(r.FixedRemedyDiagnosisCode) }},
			{Name: "individual_remedy_id", Value: func(r appointmentRow) any { return nullable(r.IndividualRemedyID) }},
		},
		KeyOf:    func(r appointmentRow) int { return r.ID },
		ToEntity: appointmentRow.toEntity,
		ToRow:    newAppointmentRow,
		FilterMappings: func(f *entity.AppointmentFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "id", Options: f.ID},
				{Column: "starts_at", Options: f.StartsAt},
				{Column: "ends_at", Options: f.EndsAt},
				{Column: "patient_insurance_number", Options: f.PatientInsuranceNumber},
				{Column: "therapist_id", Options: f.TherapistID},
				{Column: "practice_institution_code", Options: f.PracticeInstitutionCode},
				{Column: "fixed_remedy_diagnosis_code", Options: f.FixedRemedyDiagnosisCode},
				{Column: "individual_remedy_id", Options: f.IndividualRemedyID},
			}
		},
	})
}

// nullable turns a nil pointer into an untyped nil parameter (SQL NULL).
func nullable[T any](v *T) any {
	if v == nil {
		return nil
	}
	return *v
}
