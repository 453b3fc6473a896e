package sqlfilter

import "time"

// Options is a per-column predicate description. It is implemented only by
// *StringOptions, *IntOptions and *TimestampOptions.
type Options interface {
	filterOptions()
}

// StringOptions describes predicates on a text column.
// CaseInsensitive lower-cases both the column and every value.
type StringOptions struct {
	Equals          *string
	In              []string
	NotIn           []string
	Contains        *string
	StartsWith      *string
	EndsWith        *string
	CaseInsensitive bool
}

// IntOptions describes predicates on an integer column. Min and Max are inclusive.
type IntOptions struct {
	Equals *int
	In     []int
	NotIn  []int
	Min    *int
	Max    *int
}

// TimestampOptions describes predicates on a timestamp column. Before and After are inclusive.
type TimestampOptions struct {
	Equals *time.Time
	In     []time.Time
	NotIn  []time.Time
	Before *time.Time
	After  *time.Time
}

func (*StringOptions) filterOptions()    {}
func (*IntOptions) filterOptions()       {}
func (*TimestampOptions) filterOptions() {}

// Mapping binds a column to its options. A nil Options leaves the column unconstrained.
type Mapping struct {
	Column  string
	Options Options
}
