package handler

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/usecase"
	"appointment-data-proxy/pkg/validator"

	"github.com/sirupsen/logrus"
)

type (
	PatientHandler          = EntityHandler[dto.PatientRequest, dto.PatientResponse, string, dto.PatientFilter]
	PracticeHandler         = EntityHandler[dto.PracticeRequest, dto.PracticeResponse, string, dto.PracticeFilter]
	FixedRemedyHandler      = EntityHandler[dto.FixedRemedyRequest, dto.FixedRemedyResponse, string, dto.FixedRemedyFilter]
	TherapistHandler        = EntityHandler[dto.TherapistRequest, dto.TherapistResponse, int, dto.TherapistFilter]
	IndividualRemedyHandler = EntityHandler[dto.IndividualRemedyRequest, dto.IndividualRemedyResponse, int, dto.IndividualRemedyFilter]
	AppointmentHandler      = EntityHandler[dto.AppointmentRequest, dto.AppointmentResponse, int, dto.AppointmentFilter]
)

func NewPatientHandler(uc usecase.PatientUsecase, v *validator.CustomValidator, log *logrus.Logger) *PatientHandler {
	return newEntityHandler(uc, v, log, "patient", stringKey)
}

func NewPracticeHandler(uc usecase.PracticeUsecase, v *validator.CustomValidator, log *logrus.Logger) *PracticeHandler {
	return newEntityHandler(uc, v, log, "practice", stringKey)
}

func NewFixedRemedyHandler(uc usecase.FixedRemedyUsecase, v *validator.CustomValidator, log *logrus.Logger) *FixedRemedyHandler {
	return newEntityHandler(uc, v, log, "fixed remedy", stringKey)
}

func NewTherapistHandler(uc usecase.TherapistUsecase, v *validator.CustomValidator, log *logrus.Logger) *TherapistHandler {
	return newEntityHandler(uc, v, log, "therapist", intKey)
}

func NewIndividualRemedyHandler(uc usecase.IndividualRemedyUsecase, v *validator.CustomValidator, log *logrus.Logger) *IndividualRemedyHandler {
	return newEntityHandler(uc, v, log, "individual remedy", intKey)
}

func NewAppointmentHandler(uc usecase.AppointmentUsecase, v *validator.CustomValidator, log *logrus.Logger) *AppointmentHandler {
	return newEntityHandler(uc, v, log, "appointment", intKey)
}
