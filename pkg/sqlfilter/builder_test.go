package sqlfilter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func ptr[T any](v T) *T { return &v }

func TestBuild_NoMappings(t *testing.T) {
	where, params := Build(nil)

	assert.Equal(t, "WHERE TRUE", where)
	assert.Empty(t, params)
}

func TestBuild_NilOptionsAreIgnored(t *testing.T) {
	var name *StringOptions
	where, params := Build([]Mapping{
		{Column: "name", Options: name},
		{Column: "age", Options: nil},
	})

	assert.Equal(t, "WHERE TRUE", where)
	assert.Empty(t, params)
}

func TestBuild_StringOperators(t *testing.T) {
	tests := []struct {
		name       string
		opts       *StringOptions
		wantWhere  string
		wantParams map[string]any
	}{
		{
			name:       "equals",
			opts:       &StringOptions{Equals: ptr("foo")},
			wantWhere:  "WHERE TRUE AND name = @name_eq",
			wantParams: map[string]any{"name_eq": "foo"},
		},
		{
			name:       "equals case insensitive",
			opts:       &StringOptions{Equals: ptr("FoO"), CaseInsensitive: true},
			wantWhere:  "WHERE TRUE AND lower(name) = @name_eq",
			wantParams: map[string]any{"name_eq": "foo"},
		},
		{
			name:       "in",
			opts:       &StringOptions{In: []string{"foo", "bar"}},
			wantWhere:  "WHERE TRUE AND name = ANY(@name_in)",
			wantParams: map[string]any{"name_in": []string{"foo", "bar"}},
		},
		{
			name:       "not in case insensitive",
			opts:       &StringOptions{NotIn: []string{"Foo", "BAR"}, CaseInsensitive: true},
			wantWhere:  "WHERE TRUE AND NOT (lower(name) = ANY(@name_notin))",
			wantParams: map[string]any{"name_notin": []string{"foo", "bar"}},
		},
		{
			name:       "contains",
			opts:       &StringOptions{Contains: ptr("foo")},
			wantWhere:  "WHERE TRUE AND name LIKE @name_contains",
			wantParams: map[string]any{"name_contains": "%foo%"},
		},
		{
			name:       "starts with",
			opts:       &StringOptions{StartsWith: ptr("foo")},
			wantWhere:  "WHERE TRUE AND name LIKE @name_starts",
			wantParams: map[string]any{"name_starts": "foo%"},
		},
		{
			name:       "ends with case insensitive",
			opts:       &StringOptions{EndsWith: ptr("BAR"), CaseInsensitive: true},
			wantWhere:  "WHERE TRUE AND lower(name) LIKE @name_ends",
			wantParams: map[string]any{"name_ends": "%bar"},
		},
		{
			name:       "like metacharacters are escaped",
			opts:       &StringOptions{Contains: ptr(`50%_off\`)},
			wantWhere:  "WHERE TRUE AND name LIKE @name_contains",
			wantParams: map[string]any{"name_contains": `%50\%\_off\\%`},
		},
		{
			name:       "empty lists contribute nothing",
			opts:       &StringOptions{In: []string{}, NotIn: nil},
			wantWhere:  "WHERE TRUE",
			wantParams: map[string]any{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			where, params := Build([]Mapping{{Column: "name", Options: tt.opts}})

			assert.Equal(t, tt.wantWhere, where)
			assert.Equal(t, tt.wantParams, params)
		})
	}
}

func TestBuild_IntRangeAndMembership(t *testing.T) {
	where, params := Build([]Mapping{{
		Column: "age",
		Options: &IntOptions{
			Equals: ptr(12),
			In:     []int{1, 2},
			NotIn:  []int{3},
			Min:    ptr(5),
			Max:    ptr(20),
		},
	}})

	assert.Equal(t,
		"WHERE TRUE AND age = @age_eq AND age = ANY(@age_in) AND NOT (age = ANY(@age_notin)) AND age >= @age_min AND age <= @age_max",
		where)
	assert.Equal(t, map[string]any{
		"age_eq":    12,
		"age_in":    []int{1, 2},
		"age_notin": []int{3},
		"age_min":   5,
		"age_max":   20,
	}, params)
}

func TestBuild_IntSingleBound(t *testing.T) {
	where, params := Build([]Mapping{{Column: "age", Options: &IntOptions{Max: ptr(123)}}})

	assert.Equal(t, "WHERE TRUE AND age <= @age_max", where)
	assert.Equal(t, map[string]any{"age_max": 123}, params)
}

func TestBuild_TimestampValuesAreUTC(t *testing.T) {
	berlin := time.FixedZone("CET", 3600)
	after := time.Date(2024, 5, 1, 9, 0, 0, 0, berlin)
	before := time.Date(2024, 5, 1, 17, 0, 0, 0, berlin)

	where, params := Build([]Mapping{{
		Column:  "starts_at",
		Options: &TimestampOptions{After: &after, Before: &before, In: []time.Time{after}},
	}})

	assert.Equal(t,
		"WHERE TRUE AND starts_at = ANY(@starts_at_in) AND starts_at >= @starts_at_after AND starts_at <= @starts_at_before",
		where)
	assert.Equal(t, time.UTC, params["starts_at_after"].(time.Time).Location())
	assert.True(t, after.Equal(params["starts_at_after"].(time.Time)))
	assert.True(t, before.Equal(params["starts_at_before"].(time.Time)))
	assert.Equal(t, time.UTC, params["starts_at_in"].([]time.Time)[0].Location())
}

func TestBuild_MultipleColumnsDoNotCollide(t *testing.T) {
	where, params := Build([]Mapping{
		{Column: "insurance_number", Options: &StringOptions{Equals: ptr("123")}},
		{Column: "name", Options: &StringOptions{Equals: ptr("John")}},
		{Column: "age", Options: &IntOptions{Equals: ptr(40)}},
	})

	assert.Equal(t,
		"WHERE TRUE AND insurance_number = @insurance_number_eq AND name = @name_eq AND age = @age_eq",
		where)
	assert.Len(t, params, 3)
	assert.Equal(t, "123", params["insurance_number_eq"])
	assert.Equal(t, "John", params["name_eq"])
	assert.Equal(t, 40, params["age_eq"])
}

func TestBuild_DoesNotAliasCallerSlices(t *testing.T) {
	in := []int{1, 2, 3}
	_, params := Build([]Mapping{{Column: "id", Options: &IntOptions{In: in}}})

	in[0] = 99
	assert.Equal(t, []int{1, 2, 3}, params["id_in"])
}
