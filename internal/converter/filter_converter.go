package converter

import (
	"appointment-data-proxy/internal/delivery/dto"
	"appointment-data-proxy/pkg/sqlfilter"
)

// StringFilterToOptions converts a StringFilter DTO to column options. A nil
// filter yields nil so the column stays unconstrained.
func StringFilterToOptions(f *dto.StringFilter) *sqlfilter.StringOptions {
	if f == nil {
		return nil
	}

	return &sqlfilter.StringOptions{
		Equals:          f.Equals,
		In:              f.In,
		NotIn:           f.NotIn,
		Contains:        f.Contains,
		StartsWith:      f.StartsWith,
		EndsWith:        f.EndsWith,
		CaseInsensitive: f.CaseInsensitive,
	}
}

func IntFilterToOptions(f *dto.IntFilter) *sqlfilter.IntOptions {
	if f == nil {
		return nil
	}

	return &sqlfilter.IntOptions{
		Equals: f.Equals,
		In:     f.In,
		NotIn:  f.NotIn,
		Min:    f.Min,
		Max:    f.Max,
	}
}

func TimestampFilterToOptions(f *dto.TimestampFilter) *sqlfilter.TimestampOptions {
	if f == nil {
		return nil
	}

	return &sqlfilter.TimestampOptions{
		Equals: f.Equals,
		In:     f.In,
		NotIn:  f.NotIn,
		Before: f.Before,
		After:  f.After,
	}
}
