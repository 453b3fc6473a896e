package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/internal/domain/entity"
)

func TherapistToEntity(req *dto.TherapistRequest) entity.Therapist {
	return entity.Therapist{ID: req.ID, Name: req.Name}
}

func TherapistToResponse(t entity.Therapist) dto.TherapistResponse {
	return dto.TherapistResponse{ID: t.ID, Name: t.Name}
}

func TherapistFilterToEntity(f *dto.TherapistFilter) *entity.TherapistFilter {
	if f == nil {
		return nil
	}

	return &entity.TherapistFilter{
		ID:   IntFilterToOptions(f.ID),
		Name: StringFilterToOptions(f.Name),
	}
}
