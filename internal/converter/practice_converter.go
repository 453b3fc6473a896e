package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
)

func PracticeToEntity(req *dto.PracticeRequest) entity.Practice {
	return entity.Practice{
		InstitutionCode: req.InstitutionCode,
		Name:            req.Name,
	}
}

func PracticeToResponse(p entity.Practice) dto.PracticeResponse {
	return dto.PracticeResponse{
		InstitutionCode: p.InstitutionCode,
		Name:            p.Name,
	}
}

func PracticeFilterToEntity(f *dto.PracticeFilter) *entity.PracticeFilter {
	if f == nil {
		return nil
	}

	return &entity.PracticeFilter{
		InstitutionCode: StringFilterToOptions(f.InstitutionCode),
		Name:            StringFilterToOptions(f.Name),
	}
}
