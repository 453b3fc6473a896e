package dto

type PatientRequest struct {
	InsuranceNumber string `json:"insurance_number" validate:"required,max=255"`
	Name            string `json:"name" validate:"required,max=255"`
	Age             int    `json:"age" validate:"gte=0"`
}

type PatientResponse struct {
	InsuranceNumber string `json:"insurance_number"`
	Name            string `json:"name"`
	Age             int    `json:"age"`
}

type PatientFilter struct {
	InsuranceNumber *StringFilter `json:"insurance_number,omitempty"`
	Name            *StringFilter `json:"name,omitempty"`
	Age             *IntFilter    `json:"age,omitempty"`
}
