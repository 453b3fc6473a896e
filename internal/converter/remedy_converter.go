package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
)

func FixedRemedyToEntity(req *dto.FixedRemedyRequest) entity.FixedRemedy {
	return entity.FixedRemedy{DiagnosisCode: req.DiagnosisCode, Name: req.Name}
}

func FixedRemedyToResponse(r entity.FixedRemedy) dto.FixedRemedyResponse {
	return dto.FixedRemedyResponse{DiagnosisCode: r.DiagnosisCode, Name: r.Name}
}

func FixedRemedyFilterToEntity(f *dto.FixedRemedyFilter) *entity.FixedRemedyFilter {
	if f == nil {
		return nil
	}

	return &entity.FixedRemedyFilter{
		DiagnosisCode: StringFilterToOptions(f.DiagnosisCode),
		Name:          StringFilterToOptions(f.Name),
	}
}

func IndividualRemedyToEntity(req *dto.IndividualRemedyRequest) entity.IndividualRemedy {
	return entity.IndividualRemedy{ID: req.ID, Name: req.Name}
}

func IndividualRemedyToResponse(r entity.IndividualRemedy) dto.IndividualRemedyResponse {
	return dto.IndividualRemedyResponse{ID: r.ID, Name: r.Name}
}

func IndividualRemedyFilterToEntity(f *dto.IndividualRemedyFilter) *entity.IndividualRemedyFilter {
	if f == nil {
		return nil
	}

	return &entity.IndividualRemedyFilter{
		ID:   IntFilterToOptions(f.ID),
		Name: StringFilterToOptions(f.Name),
	}
}
