package dto

import "time"

// Column filters. Absent fields place no constraint; present fields are ANDed.

type StringFilter struct {
	Equals          *string  `json:"equals,omitempty"`
	In              []string `json:"in,omitempty"`
	NotIn           []string `json:"not_in,omitempty"`
	Contains        *string  `json:"contains,omitempty"`
	StartsWith      *string  `json:"starts_with,omitempty"`
	EndsWith        *string  `json:"ends_with,omitempty"`
	CaseInsensitive bool     `json:"case_insensitive,omitempty"`
}

type IntFilter struct {
	Equals *int  `json:"equals,omitempty"`
	In     []int `json:"in,omitempty"`
	NotIn  []int `json:"not_in,omitempty"`
	Min    *int  `json:"min,omitempty"`
	Max    *int  `json:"max,omitempty"`
}

// TimestampFilter values are RFC 3339. Before and After are inclusive.
type TimestampFilter struct {
	Equals *time.Time  `json:"equals,omitempty"`
	In     []time.Time `json:"in,omitempty"`
	NotIn  []time.Time `json:"not_in,omitempty"`
	Before *time.Time  `json:"before,omitempty"`
	After  *time.Time  `json:"after,omitempty"`
}
