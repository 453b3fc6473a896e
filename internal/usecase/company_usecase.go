package usecase

import (
	"appointment-data-proxy/internal/converter"
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
	"appointment-data-proxy/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Usecases over the company database. Appointments live here too, see appointment_usecase.go.

type (
	TherapistUsecase        = EntityUsecase[dto.TherapistRequest, dto.TherapistResponse, int, dto.TherapistFilter]
	IndividualRemedyUsecase = EntityUsecase[dto.IndividualRemedyRequest, dto.IndividualRemedyResponse, int, dto.IndividualRemedyFilter]
)

func NewTherapistUsecase(log *logrus.Logger, repo repository.TherapistRepository, batchSize int) TherapistUsecase {
	return &entityUsecase[entity.Therapist, int, entity.TherapistFilter, dto.TherapistRequest, dto.TherapistResponse, dto.TherapistFilter]{
		log:  log,
		name: "therapist",
		repo: repo,
		conv: entityConverter[entity.Therapist, entity.TherapistFilter, dto.TherapistRequest, dto.TherapistResponse, dto.TherapistFilter]{
			toEntity:   converter.TherapistToEntity,
			toResponse: converter.TherapistToResponse,
			toFilter:   converter.TherapistFilterToEntity,
		},
		batchSize: batchSize,
	}
}

func NewIndividualRemedyUsecase(log *logrus.Logger, repo repository.IndividualRemedyRepository, batchSize int) IndividualRemedyUsecase {
	return &entityUsecase[entity.IndividualRemedy, int, entity.IndividualRemedyFilter, dto.IndividualRemedyRequest, dto.IndividualRemedyResponse, dto.IndividualRemedyFilter]{
		log:  log,
		name: "individual remedy",
		repo: repo,
		conv: entityConverter[entity.IndividualRemedy, entity.IndividualRemedyFilter, dto.IndividualRemedyRequest, dto.IndividualRemedyResponse, dto.IndividualRemedyFilter]{
			toEntity:   converter.IndividualRemedyToEntity,
			toResponse: converter.IndividualRemedyToResponse,
			toFilter:   converter.IndividualRemedyFilterToEntity,
		},
		batchSize: batchSize,
	}
}
