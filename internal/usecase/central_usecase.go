package usecase

import (
	"appointment-data-proxy/internal/converter"
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
	"appointment-data-proxy/internal/domain/repository"

	"github.com/sirupsen/logrus"
)

// Usecases over the central database.

type (
	PatientUsecase     = EntityUsecase[dto.PatientRequest, dto.PatientResponse, string, dto.PatientFilter]
	PracticeUsecase    = EntityUsecase[dto.PracticeRequest, dto.PracticeResponse, string, dto.PracticeFilter]
	FixedRemedyUsecase = EntityUsecase[dto.FixedRemedyRequest, dto.FixedRemedyResponse, string, dto.FixedRemedyFilter]
)

func NewPatientUsecase(log *logrus.Logger, repo repository.PatientRepository, batchSize int) PatientUsecase {
	return &entityUsecase[entity.Patient, string, entity.PatientFilter, dto.PatientRequest, dto.PatientResponse, dto.PatientFilter]{
		log:  log,
		name: "patient",
		repo: repo,
		conv: entityConverter[entity.Patient, entity.PatientFilter, dto.PatientRequest, dto.PatientResponse, dto.PatientFilter]{
			toEntity:   converter.PatientToEntity,
			toResponse: converter.PatientToResponse,
			toFilter:   converter.PatientFilterToEntity,
		},
		batchSize: batchSize,
	}
}

func NewPracticeUsecase(log *logrus.Logger, repo repository.PracticeRepository, batchSize int) PracticeUsecase {
	return &entityUsecase[entity.Practice, string, entity.PracticeFilter, dto.PracticeRequest, dto.PracticeResponse, dto.PracticeFilter]{
		log:  log,
		name: "practice",
		repo: repo,
		conv: entityConverter[entity.Practice, entity.PracticeFilter, dto.PracticeRequest, dto.PracticeResponse, dto.PracticeFilter]{
			toEntity:   converter.PracticeToEntity,
			toResponse: converter.PracticeToResponse,
			toFilter:   converter.PracticeFilterToEntity,
		},
		batchSize: batchSize,
	}
}

func NewFixedRemedyUsecase(log *logrus.Logger, repo repository.FixedRemedyRepository, batchSize int) FixedRemedyUsecase {
	return &entityUsecase[entity.FixedRemedy, string, entity.FixedRemedyFilter, dto.FixedRemedyRequest, dto.FixedRemedyResponse, dto.FixedRemedyFilter]{
		log:  log,
		name: "fixed remedy",
		repo: repo,
		conv: entityConverter[entity.FixedRemedy, entity.FixedRemedyFilter, dto.FixedRemedyRequest, dto.FixedRemedyResponse, dto.FixedRemedyFilter]{
			toEntity:   converter.FixedRemedyToEntity,
			toResponse: converter.FixedRemedyToResponse,
			toFilter:   converter.FixedRemedyFilterToEntity,
		},
		batchSize: batchSize,
	}
}
