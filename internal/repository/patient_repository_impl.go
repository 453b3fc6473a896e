package repository

import (
	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type patientRow struct {
	InsuranceNumber string `gorm:"column:insurance_number"`
	Name            string `gorm:"column:name"`
	Age             int    `gorm:"column:age"`
}

// NewPatientRepository returns the patient table of the central database.
func NewPatientRepository(db *gorm.DB) domainRepo.PatientRepository {
	return NewPostgresRepository(db, Definition[entity.Patient, patientRow, string, entity.PatientFilter]{
		Table:     "patient",
		KeyColumn: "insurance_number",
		Columns: []Column[patientRow]{
			{Name: "insurance_number", Value: func(r patientRow) any { return r.InsuranceNumber }},
			{Name: "name", Value: func(r patientRow) any { return r.Name }},
			{Name: "age", Value: func(r patientRow) any { return r.Age }},
		},
		KeyOf: func(r patientRow) string { return r.InsuranceNumber },
		ToEntity: func(r patientRow) entity.Patient {
			return entity.Patient{InsuranceNumber: r.InsuranceNumber, Name: r.Name, Age: r.Age}
		},
		ToRow: func(p entity.Patient) patientRow {
			return patientRow{InsuranceNumber: p.InsuranceNumber, Name: p.Name, Age: p.Age}
		},
		FilterMappings: func(f *entity.PatientFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "insurance_number", Options: f.InsuranceNumber},
				{Column: "name", Options: f.Name},
				{Column: "age", Options: f.Age},
			}
		},
	})
}
