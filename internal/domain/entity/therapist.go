package entity

// Therapist is a practitioner employed by the company.
type Therapist struct {
	ID   int
	Name string
}
