package usecase

import (
	"context"
	"errors"
	"fmt"

	"appointment-data-proxy/internal/converter"
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
	"appointment-data-proxy/internal/domain/repository"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

type AppointmentUsecase = EntityUsecase[dto.AppointmentRequest, dto.AppointmentResponse, int, dto.AppointmentFilter]

// NewAppointmentUsecase writes appointments to the company database after
// checking their central references. The company database cannot enforce
// those, and a reference deleted between the check and the write goes unnoticed.
func NewAppointmentUsecase(
	log *logrus.Logger,
	repo repository.AppointmentRepository,
	patientRepo repository.PatientRepository,
	practiceRepo repository.PracticeRepository,
	fixedRemedyRepo repository.FixedRemedyRepository,
	batchSize int,
) AppointmentUsecase {
	refs := &centralReferences{
		patients:      patientRepo,
		practices:     practiceRepo,
		fixedRemedies: fixedRemedyRepo,
	}

	return &entityUsecase[entity.Appointment, int, entity.AppointmentFilter, dto.AppointmentRequest, dto.AppointmentResponse, dto.AppointmentFilter]{
		log:  log,
		name: "appointment",
		repo: repo,
		conv: entityConverter[entity.Appointment, entity.AppointmentFilter, dto.AppointmentRequest, dto.AppointmentResponse, dto.AppointmentFilter]{
			toEntity:   converter.AppointmentToEntity,
			toResponse: converter.AppointmentToResponse,
			toFilter:   converter.AppointmentFilterToEntity,
		},
		batchSize:       batchSize,
		checkReferences: refs.check,
	}
}

type centralReferences struct {
	patients      repository.PatientRepository
	practices     repository.PracticeRepository
	fixedRemedies repository.FixedRemedyRepository
}

// check looks up every central reference concurrently.
func (c *centralReferences) check(ctx context.Context, a entity.Appointment) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		_, err := c.patients.Get(ctx, a.PatientInsuranceNumber)
		return referenceError("patient", a.PatientInsuranceNumber, err)
	})
	g.Go(func() error {
		_, err := c.practices.Get(ctx, a.PracticeInstitutionCode)
		return referenceError("practice", a.PracticeInstitutionCode, err)
	})
	if a.HasFixedRemedy() {
		g.Go(func() error {
			_, err := c.fixedRemedies.Get(ctx, *a.FixedRemedyDiagnosisCode)
			return referenceError("fixed remedy", *a.FixedRemedyDiagnosisCode, err)
		})
	}

	return g.Wait()
}

func referenceError(kind, key string, err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, repository.ErrNotFound):
		return fmt.Errorf("%w: %s %q", ErrReferenceNotFound, kind, key)
	default:
		return fmt.Errorf("failed to look up %s %q: %w", kind, key, err)
	}
}
