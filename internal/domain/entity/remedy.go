package entity

// FixedRemedy is a catalogued remedy, identified by its diagnosis code.
type FixedRemedy struct {
	DiagnosisCode string
	Name          string
}

// IndividualRemedy is a company-defined remedy.
type IndividualRemedy struct {
	ID   int
	Name string
}
