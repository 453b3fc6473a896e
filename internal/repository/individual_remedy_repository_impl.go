package repository

import (
	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type individualRemedyRow struct {
	ID   int    `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

// NewIndividualRemedyRepository returns the individual_remedy table of the company database.
func NewIndividualRemedyRepository(db *gorm.DB) domainRepo.IndividualRemedyRepository {
	return NewPostgresRepository(db, Definition[entity.IndividualRemedy, individualRemedyRow, int, entity.IndividualRemedyFilter]{
		Table:     "individual_remedy",
		KeyColumn: "id",
		Columns: []Column[individualRemedyRow]{
			{Name: "id", Value: func(r individualRemedyRow) any { return r.ID }},
			{Name: "name", Value: func(r individualRemedyRow) any { return r.Name }},
		},
		KeyOf: func(r individualRemedyRow) int { return r.ID },
		ToEntity: func(r individualRemedyRow) entity.IndividualRemedy {
			return entity.IndividualRemedy{ID: r.ID, Name: r.Name}
		},
		ToRow: func(ir entity.IndividualRemedy) individualRemedyRow {
			return individualRemedyRow{ID: ir.ID, Name: ir.Name}
		},
		FilterMappings: func(f *entity.IndividualRemedyFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "id", Options: f.ID},
				{Column: "name", Options: f.Name},
			}
		},
	})
}
