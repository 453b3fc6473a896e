package repository

import (
	"appointment-data-proxy/internal/domain/entity"
	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/sqlfilter"

	"gorm.io/gorm"
)

type therapistRow struct {
	ID   int    `gorm:"column:id"`
	Name string `gorm:"column:name"`
}

// NewTherapistRepository returns the therapist table of the company database.
func NewTherapistRepository(db *gorm.DB) domainRepo.TherapistRepository {
	return NewPostgresRepository(db, Definition[entity.Therapist, therapistRow, int, entity.TherapistFilter]{
		Table:     "therapist",
		KeyColumn: "id",
		Columns: []Column[therapistRow]{
			{Name: "id", Value: func(r therapistRow) any { return r.ID }},
			{Name: "name", Value: func(r therapistRow) any { return r.Name }},
		},
		KeyOf: func(r therapistRow) int { return r.ID },
		ToEntity: func(r therapistRow) entity.Therapist {
			return entity.Therapist{ID: r.ID, Name: r.Name}
		},
		ToRow: func(t entity.Therapist) therapistRow {
			return therapistRow{ID: t.ID, Name: t.Name}
		},
		FilterMappings: func(f *entity.TherapistFilter) []sqlfilter.Mapping {
			return []sqlfilter.Mapping{
				{Column: "id", Options: f.ID},
				{Column: "name", Options: f.Name},
			}
		},
	})
}
