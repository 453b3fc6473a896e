package dto

type TherapistRequest struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required,max=255"`
}

type TherapistResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type TherapistFilter struct {
	ID   *IntFilter    `json:"id,omitempty"`
	Name *StringFilter `json:"name,omitempty"`
}
