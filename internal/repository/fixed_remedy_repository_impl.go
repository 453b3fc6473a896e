package repository

import (
	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type fixedRemedyRow struct {
	DiagnosisCode string `gorm:"column:diagnosis_code"`
	Name          string `gorm:"column:name"`
}

// NewFixedRemedyRepository returns the fixed_remedy table of the central database.
func NewFixedRemedyRepository(db *gorm.DB) domainRepo.FixedRemedyRepository {
	return NewPostgresRepository(db, Definition[entity.FixedRemedy, fixedRemedyRow, string, entity.FixedRemedyFilter]{
		Table:     "fixed_remedy",
		KeyColumn: "diagnosis_code",
		Columns: []Column[fixedRemedyRow]{
			{Name: "diagnosis_code", Value: func(r fixedRemedyRow) any { return r.DiagnosisCode }},
			{Name: "name", Value: func(r fixedRemedyRow) any { return r.Name }},
		},
		KeyOf: func(r fixedRemedyRow) string { return r.DiagnosisCode },
		ToEntity: func(r fixedRemedyRow) entity.FixedRemedy {
			return entity.FixedRemedy{DiagnosisCode: r.DiagnosisCode, Name: r.Name}
		},
		ToRow: func(fr entity.FixedRemedy) fixedRemedyRow {
			return fixedRemedyRow{DiagnosisCode: fr.DiagnosisCode, Name: fr.Name}
		},
		FilterMappings: func(f *entity.FixedRemedyFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "diagnosis_code", Options: f.DiagnosisCode},
				{Column: "name", Options: f.Name},
			}
		},
	})
}
