package entity

// Practice is a treatment location, identified by its institution code.
type Practice struct {
	InstitutionCode string
	Name            string
}
