package repository

import (
	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type practiceRow struct {
	InstitutionCode string `gorm:"column:institution_code"`
	Name            string `gorm:"column:name"`
}

// NewPracticeRepository returns the practice table of the central database.
func NewPracticeRepository(db *gorm.DB) domainRepo.PracticeRepository {
	return NewPostgresRepository(db, Definition[entity.Practice, practiceRow, string, entity.PracticeFilter]{
		Table:     "practice",
		KeyColumn: "institution_code",
		Columns: []Column[practiceRow]{
			{Name: "institution_code", Value: func(r practiceRow) any { return r.InstitutionCode }},
			{Name: "name", Value: func(r practiceRow) any { return r.Name }},
		},
		KeyOf: func(r practiceRow) string { return r.InstitutionCode },
		ToEntity: func(r practiceRow) entity.Practice {
			return entity.Practice{InstitutionCode: r.InstitutionCode, Name: r.Name}
		},
		ToRow: func(p entity.Practice) practiceRow {
			return practiceRow{InstitutionCode: p.InstitutionCode, Name: p.Name}
		},
		FilterMappings: func(f *entity.PracticeFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "institution_code", Options: f.InstitutionCode},
				{Column: "name", Options: f.Name},
			}
		},
	})
}
