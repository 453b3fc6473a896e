package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
)

// AppointmentToEntity treats an empty diagnosis code as "no fixed remedy".
func AppointmentToEntity(req *dto.AppointmentRequest) entity.Appointment {
	a := entity.Appointment{
		ID:                      req.ID,
		StartsAt:                req.StartsAt.UTC(),
		EndsAt:                  req.EndsAt.UTC(),
		PatientInsuranceNumber:  req.PatientInsuranceNumber,
		TherapistID:             req.TherapistID,
		PracticeInstitutionCode: req.PracticeInstitutionCode,
		IndividualRemedyID:      req.IndividualRemedyID,
	}
	if req.FixedRemedyDiagnosisCode != nil && *req.FixedRemedyDiagnosisCode != "" {
		a.FixedRemedyDiagnosisCode = req.FixedRemedyDiagnosisCode
	}
	return a
}

func AppointmentToResponse(a entity.Appointment) dto.AppointmentResponse {
	return dto.AppointmentResponse{
		ID:                       a.ID,
		StartsAt:                 a.StartsAt,
		EndsAt:                   a.EndsAt,
		PatientInsuranceNumber:   a.PatientInsuranceNumber,
		TherapistID:              a.TherapistID,
		PracticeInstitutionCode:  a.PracticeInstitutionCode,
		FixedRemedyDiagnosisCode: a.FixedRemedyDiagnosisCode,
		IndividualRemedyID:       a.IndividualRemedyID,
	}
}

func AppointmentFilterToEntity(f *dto.AppointmentFilter) *entity.AppointmentFilter {
	if f == nil {
		return nil
	}

	return &entity.AppointmentFilter{
		ID:                       IntFilterToOptions(f.ID),
		StartsAt:                 TimestampFilterToOptions(f.StartsAt),
		EndsAt:                   TimestampFilterToOptions(f.EndsAt),
		PatientInsuranceNumber:   StringFilterToOptions(f.PatientInsuranceNumber),
		TherapistID:              IntFilterToOptions(f.TherapistID),
		PracticeInstitutionCode:  StringFilterToOptions(f.PracticeInstitutionCode),
		FixedRemedyDiagnosisCode: StringFilterToOptions(f.FixedRemedyDiagnosisCode),
		IndividualRemedyID:       IntFilterToOptions(f.IndividualRemedyID),
	}
}
