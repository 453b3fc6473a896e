package entity

// Patient is a person receiving treatment, identified by their health insurance number.
type Patient struct {
	InsuranceNumber string
	Name            string
	Age             int
}
