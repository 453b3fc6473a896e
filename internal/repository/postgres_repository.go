package repository

import (
	"context"
	"errors"
	"fmt"
	"iter"
	"slices"
	"strings"
	"time"

	domainRepo "appointment-data-proxy/internal/domain/repository"
	"appointment-data-proxy/pkg/keyset"
	"appointment-data-proxy/pkg/sqlfilter"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"
	"gorm.io/gorm"
)

// PostgreSQL error codes recovered into result kinds.
const (
	sqlStateUniqueViolation     = "23505"
	sqlStateForeignKeyViolation = "23503"
)

// Named parameters used by the generated statements. The leading underscore
// keeps them apart from the {column}_{operator} names of the filter builder.
const (
	keyParam    = "_key"
	cursorParam = "_cursor"
	cutoffParam = "_cutoff"
	limitParam  = "_limit"
)

// Column maps one table column to the row field holding its value.
type Column[R any] struct {
	Name  string
	Value func(row R) any
}

// Definition declares everything the generic repository needs to know about
// one entity table. Every statement is derived from Columns.
type Definition[E any, R any, K domainRepo.Key, F any] struct {
	Table          string
	KeyColumn      string
	Columns        []Column[R]
	KeyOf          func(row R) K
	ToEntity       func(row R) E
	ToRow          func(e E) R
	FilterMappings func(filter *F) []sqlfilter.Mapping
}

type statements struct {
	selectAll string
	get       string
	insert    string
	update    string
	delete    string
	cutoff    string
}

// PostgresRepository implements domainRepo.Repository for a single table.
type PostgresRepository[E any, R any, K domainRepo.Key, F any] struct {
	db   *gorm.DB
	def  Definition[E, R, K, F]
	stmt statements
}

// NewPostgresRepository derives the SQL statements from def. It panics when
// the key column is not part of def.Columns.
func NewPostgresRepository[E any, R any, K domainRepo.Key, F any](db *gorm.DB, def Definition[E, R, K, F]) *PostgresRepository[E, R, K, F] {
	return &PostgresRepository[E, R, K, F]{
		db:   db,
		def:  def,
		stmt: buildStatements(def.Table, def.KeyColumn, columnNames(def.Columns)),
	}
}

func columnNames[R any](columns []Column[R]) []string {
	names := make([]string, len(columns))
	for i, c := range columns {
		names[i] = c.Name
	}
	return names
}

func buildStatements(table, key string, columns []string) statements {
	if !slices.Contains(columns, key) {
		panic(fmt.Sprintf("repository: key column %q missing from %s columns", key, table))
	}

	values := make([]string, len(columns))
	var assignments []string
	for i, c := range columns {
		values[i] = "@" + c
		if c != key {
			assignments = append(assignments, c+" = @"+c)
		}
	}
	if len(assignments) == 0 {
		// A key-only table still needs a valid UPDATE that reports whether the row exists.
		assignments = append(assignments, key+" = @"+key)
	}

	selectAll := fmt.Sprintf("SELECT %s FROM %s", strings.Join(columns, ", "), table)
	return statements{
		selectAll: selectAll,
		get:       fmt.Sprintf("%s WHERE %s = @%s", selectAll, key, keyParam),
		insert:    fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)", table, strings.Join(columns, ", "), strings.Join(values, ", ")),
		update:    fmt.Sprintf("UPDATE %s SET %s WHERE %s = @%s", table, strings.Join(assignments, ", "), key, key),
		delete:    fmt.Sprintf("DELETE FROM %s WHERE %s = @%s", table, key, keyParam),
		cutoff:    fmt.Sprintf("SELECT MAX(%s) FROM %s", key, table),
	}
}

func (r *PostgresRepository[E, R, K, F]) Get(ctx context.Context, key K) (E, error) {
	var zero E
	var rows []R
	err := r.db.WithContext(ctx).Raw(r.stmt.get, map[string]any{keyParam: key}).Scan(&rows).Error
	if err != nil {
		return zero, fmt.Errorf("get %s: %w", r.def.Table, err)
	}
	if len(rows) == 0 {
		return zero, domainRepo.ErrNotFound
	}
	return r.def.ToEntity(rows[0]), nil
}

func (r *PostgresRepository[E, R, K, F]) Create(ctx context.Context, e E) error {
	err := r.db.WithContext(ctx).Exec(r.stmt.insert, r.rowParams(r.def.ToRow(e))).Error
	switch sqlState(err) {
	case "":
	case sqlStateUniqueViolation:
		return domainRepo.ErrAlreadyExists
	case sqlStateForeignKeyViolation:
		return domainRepo.ErrReferenceViolation
	}
	if err != nil {
		return fmt.Errorf("create %s: %w", r.def.Table, err)
	}
	return nil
}

func (r *PostgresRepository[E, R, K, F]) Update(ctx context.Context, e E) error {
	result := r.db.WithContext(ctx).Exec(r.stmt.update, r.rowParams(r.def.ToRow(e)))
	if sqlState(result.Error) == sqlStateForeignKeyViolation {
		return domainRepo.ErrReferenceViolation
	}
	if result.Error != nil {
		return fmt.Errorf("update %s: %w", r.def.Table, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

func (r *PostgresRepository[E, R, K, F]) Delete(ctx context.Context, key K) error {
	result := r.db.WithContext(ctx).Exec(r.stmt.delete, map[string]any{keyParam: key})
	if result.Error != nil {
		return fmt.Errorf("delete %s: %w", r.def.Table, result.Error)
	}
	if result.RowsAffected == 0 {
		return domainRepo.ErrNotFound
	}
	return nil
}

// StreamAll yields every row up to the key cutoff captured at the start of
// iteration, batchSize rows per round trip, restricted by filter.
func (r *PostgresRepository[E, R, K, F]) StreamAll(ctx context.Context, batchSize int, filter *F) iter.Seq2[E, error] {
	var mappings []sqlfilter.Mapping
	if filter != nil && r.def.FilterMappings != nil {
		mappings = r.def.FilterMappings(filter)
	}
	where, params := sqlfilter.Build(mappings)

	return keyset.Stream(ctx,
		r.fetchCutoff,
		func(ctx context.Context, after *K, cutoff K, limit int) ([]R, error) {
			return r.fetchPage(ctx, where, params, after, cutoff, limit)
		},
		r.def.KeyOf,
		r.def.ToEntity,
		batchSize,
	)
}

func (r *PostgresRepository[E, R, K, F]) fetchCutoff(ctx context.Context) (*K, error) {
	var cutoff *K
	if err := r.db.WithContext(ctx).Raw(r.stmt.cutoff).Row().Scan(&cutoff); err != nil {
		return nil, fmt.Errorf("fetch %s cutoff: %w", r.def.Table, err)
	}
	return cutoff, nil
}

func (r *PostgresRepository[E, R, K, F]) fetchPage(ctx context.Context, where string, filterParams map[string]any, after *K, cutoff K, limit int) ([]R, error) {
	key := r.def.KeyColumn
	params := bindArrays(filterParams)

	var sql strings.Builder
	sql.WriteString(r.stmt.selectAll + " " + where)
	if after != nil {
		sql.WriteString(fmt.Sprintf(" AND %s > @%s", key, cursorParam))
		params[cursorParam] = *after
	}
	sql.WriteString(fmt.Sprintf(" AND %s <= @%s ORDER BY %s LIMIT @%s", key, cutoffParam, key, limitParam))
	params[cutoffParam] = cutoff
	params[limitParam] = limit

	var rows []R
	if err := r.db.WithContext(ctx).Raw(sql.String(), params).Scan(&rows).Error; err != nil {
		return nil, fmt.Errorf("fetch %s page: %w", r.def.Table, err)
	}
	return rows, nil
}

func (r *PostgresRepository[E, R, K, F]) rowParams(row R) map[string]any {
	params := make(map[string]any, len(r.def.Columns))
	for _, c := range r.def.Columns {
		params[c.Name] = c.Value(row)
	}
	return params
}

// bindArrays copies params, wrapping list values as PostgreSQL arrays so
// they bind to a single ANY(...) placeholder.
func bindArrays(params map[string]any) map[string]any {
	out := make(map[string]any, len(params)+3)
	for name, v := range params {
		switch values := v.(type) {
		case []string:
			out[name] = pgArray(values)
		case []int:
			out[name] = pgArray(values)
		case []time.Time:
			out[name] = pgArray(values)
		default:
			out[name] = v
		}
	}
	return out
}

func pgArray[T any](values []T) pgtype.Array[T] {
	return pgtype.Array[T]{
		Elements: values,
		Dims:     []pgtype.ArrayDimension{{Length: int32(len(values)), LowerBound: 1}},
		Valid:    true,
	}
}

func sqlState(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}
