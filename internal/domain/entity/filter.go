package entity

import "appointment-data-proxy/pkg/sqlfilter"

// Domain-level filters for streaming queries. A nil field leaves that column
// unconstrained; all present fields are ANDed.

type PatientFilter struct {
	InsuranceNumber *sqlfilter.StringOptions
	Name            *sqlfilter.StringOptions
	Age             *sqlfilter.IntOptions
}

type PracticeFilter struct {
	InstitutionCode *sqlfilter.StringOptions
	Name            *sqlfilter.StringOptions
}

type TherapistFilter struct {
	ID   *sqlfilter.IntOptions
	Name *sqlfilter.StringOptions
}

type FixedRemedyFilter struct {
	DiagnosisCode *sqlfilter.StringOptions
	Name          *sqlfilter.StringOptions
}

type IndividualRemedyFilter struct {
	ID   *sqlfilter.IntOptions
	Name *sqlfilter.StringOptions
}

type AppointmentFilter struct {
	ID                       *sqlfilter.IntOptions
	StartsAt                 *sqlfilter.TimestampOptions
	EndsAt                   *sqlfilter.TimestampOptions
	PatientInsuranceNumber   *sqlfilter.StringOptions
	TherapistID              *sqlfilter.IntOptions
	PracticeInstitutionCode  *sqlfilter.StringOptions
	FixedRemedyDiagnosisCode *sqlfilter.StringOptions
	IndividualRemedyID       *sqlfilter.IntOptions
}
