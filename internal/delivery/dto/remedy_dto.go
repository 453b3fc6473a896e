package dto

// Fixed remedies live in the central database and are keyed by diagnosis code.

type FixedRemedyRequest struct {
	DiagnosisCode string `json:"diagnosis_code" validate:"required,max=255"`
	Name          string `json:"name" validate:"required,max=255"`
}

type FixedRemedyResponse struct {
	DiagnosisCode string `json:"diagnosis_code"`
	Name          string `json:"name"`
}

type FixedRemedyFilter struct {
	DiagnosisCode *StringFilter `json:"diagnosis_code,omitempty"`
	Name          *StringFilter `json:"name,omitempty"`
}

// Individual remedies live in the company database.

type IndividualRemedyRequest struct {
	ID   int    `json:"id" validate:"gt=0"`
	Name string `json:"name" validate:"required,max=255"`
}

type IndividualRemedyResponse struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

type IndividualRemedyFilter struct {
	ID   *IntFilter    `json:"id,omitempty"`
	Name *StringFilter `json:"name,omitempty"`
}
