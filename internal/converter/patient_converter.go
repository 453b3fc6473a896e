package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
)

func PatientToEntity(req *dto.PatientRequest) entity.Patient {
	return entity.Patient{
		InsuranceNumber: req.InsuranceNumber,
		Name:            req.Name,
		Age:             req.Age,
	}
}

func PatientToResponse(p entity.Patient) dto.PatientResponse {
	return dto.PatientResponse{
		InsuranceNumber: p.InsuranceNumber,
		Name:            p.Name,
		Age:             p.Age,
	}
}

func PatientFilterToEntity(f *dto.PatientFilter) *entity.PatientFilter {
	if f == nil {
		return nil
	}

	return &entity.PatientFilter{
		InsuranceNumber: StringFilterToOptions(f.InsuranceNumber),
		Name:            StringFilterToOptions(f.Name),
		Age:             IntFilterToOptions(f.Age),
	}
}
