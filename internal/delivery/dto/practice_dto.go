package dto

type PracticeRequest struct {
	InstitutionCode string `json:"institution_code" validate:"required,max=255"`
	Name            string `json:"name" validate:"required,max=255"`
}

type PracticeResponse struct {
	InstitutionCode string `json:"institution_code"`
	Name            string `json:"name"`
}

type PracticeFilter struct {
	InstitutionCode *StringFilter `json:"institution_code,omitempty"`
	Name            *StringFilter `json:"name,omitempty"`
}
