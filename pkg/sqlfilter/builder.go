// Package sqlfilter turns per-column filter options into a parameterized
// PostgreSQL WHERE fragment. Column names are trusted identifiers supplied by
// code; every value travels as a named parameter (@name).
package sqlfilter

import (
	"strings"
	"time"
)

// Base is the tautological fragment every built clause starts with.
const Base = "WHERE TRUE"

// Build combines mappings into one WHERE fragment and its parameters.
// Parameter names are {column}_{operator}. Clauses are ANDed in mapping order.
func Build(mappings []Mapping) (string, map[string]any) {
	b := &builder{params: make(map[string]any)}
	b.where.WriteString(Base)

	for _, m := range mappings {
		switch opts := m.Options.(type) {
		case *StringOptions:
			if opts != nil {
				b.appendString(m.Column, opts)
			}
		case *IntOptions:
			if opts != nil {
				b.appendInt(m.Column, opts)
			}
		case *TimestampOptions:
			if opts != nil {
				b.appendTimestamp(m.Column, opts)
			}
		}
	}

	return b.where.String(), b.params
}

type builder struct {
	where  strings.Builder
	params map[string]any
}

// compare appends "expr op @column_operator".
func (b *builder) compare(expr, op, column, operator string, value any) {
	name := b.bind(column, operator, value)
	b.where.WriteString(" AND " + expr + " " + op + " @" + name)
}

// member appends "expr = ANY(@column_operator)", negated when exclude is set.
func (b *builder) member(expr string, exclude bool, column, operator string, values any) {
	name := b.bind(column, operator, values)
	if exclude {
		b.where.WriteString(" AND NOT (" + expr + " = ANY(@" + name + "))")
		return
	}
	b.where.WriteString(" AND " + expr + " = ANY(@" + name + ")")
}

func (b *builder) bind(column, operator string, value any) string {
	name := column + "_" + operator
	b.params[name] = value
	return name
}

func (b *builder) appendString(column string, f *StringOptions) {
	expr := column
	norm := func(s string) string { return s }
	if f.CaseInsensitive {
		expr = "lower(" + column + ")"
		norm = strings.ToLower
	}

	if f.Equals != nil {
		b.compare(expr, "=", column, "eq", norm(*f.Equals))
	}
	if len(f.In) > 0 {
		b.member(expr, false, column, "in", mapStrings(f.In, norm))
	}
	if len(f.NotIn) > 0 {
		b.member(expr, true, column, "notin", mapStrings(f.NotIn, norm))
	}
	if f.Contains != nil {
		b.compare(expr, "LIKE", column, "contains", "%"+escapeLike(norm(*f.Contains))+"%")
	}
	if f.StartsWith != nil {
		b.compare(expr, "LIKE", column, "starts", escapeLike(norm(*f.StartsWith))+"%")
	}
	if f.EndsWith != nil {
		b.compare(expr, "LIKE", column, "ends", "%"+escapeLike(norm(*f.EndsWith)))
	}
}

func (b *builder) appendInt(column string, f *IntOptions) {
	if f.Equals != nil {
		b.compare(column, "=", column, "eq", *f.Equals)
	}
	if len(f.In) > 0 {
		b.member(column, false, column, "in", append([]int(nil), f.In...))
	}
	if len(f.NotIn) > 0 {
		b.member(column, true, column, "notin", append([]int(nil), f.NotIn...))
	}
	if f.Min != nil {
		b.compare(column, ">=", column, "min", *f.Min)
	}
	if f.Max != nil {
		b.compare(column, "<=", column, "max", *f.Max)
	}
}

func (b *builder) appendTimestamp(column string, f *TimestampOptions) {
	if f.Equals != nil {
		b.compare(column, "=", column, "eq", f.Equals.UTC())
	}
	if len(f.In) > 0 {
		b.member(column, false, column, "in", utcTimes(f.In))
	}
	if len(f.NotIn) > 0 {
		b.member(column, true, column, "notin", utcTimes(f.NotIn))
	}
	if f.After != nil {
		b.compare(column, ">=", column, "after", f.After.UTC())
	}
	if f.Before != nil {
		b.compare(column, "<=", column, "before", f.Before.UTC())
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike makes s match literally inside a LIKE pattern (default escape character).
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

func mapStrings(values []string, fn func(string) string) []string {
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = fn(v)
	}
	return out
}

func utcTimes(values []time.Time) []time.Time {
	out := make([]time.Time, len(values))
	for i, v := range values {
		out[i] = v.UTC()
	}
	return out
}
