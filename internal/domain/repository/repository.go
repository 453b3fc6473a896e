package repository

import (
	"context"
	"errors"
	"iter"

	"appointment-data-proxy/internal/domain/entity"
)

// Result kinds shared by every entity repository. A nil error is Success.
var (
	ErrNotFound           = errors.New("entity not found")
	ErrAlreadyExists      = errors.New("entity already exists")
	ErrReferenceViolation = errors.New("entity references a missing entity")
)

// Key is the natural identifier of an entity. It must be totally ordered
// because it drives keyset pagination.
type Key interface {
	~int | ~int32 | ~int64 | ~string
}

// Repository is the CRUD-plus-streaming contract every entity exposes.
type Repository[E any, K Key, F any] interface {
	Get(ctx context.Context, key K) (E, error)
	Create(ctx context.Context, e E) error
	Update(ctx context.Context, e E) error
	Delete(ctx context.Context, key K) error
	StreamAll(ctx context.Context, batchSize int, filter *F) iter.Seq2[E, error]
}

type (
	PatientRepository          = Repository[entity.Patient, string, entity.PatientFilter]
	PracticeRepository         = Repository[entity.Practice, string, entity.PracticeFilter]
	TherapistRepository        = Repository[entity.Therapist, int, entity.TherapistFilter]
	FixedRemedyRepository      = Repository[entity.FixedRemedy, string, entity.FixedRemedyFilter]
	IndividualRemedyRepository = Repository[entity.IndividualRemedy, int, entity.IndividualRemedyFilter]
	AppointmentRepository      = Repository[entity.Appointment, int, entity.AppointmentFilter]
)
