// Package postgres resolves storage facade requests against PostgreSQL.
package postgres

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/storage"
)

// DB is the subset of *pgxpool.Pool the executor needs.
type DB interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Ping(ctx context.Context) error
}

var _ DB = (*pgxpool.Pool)(nil)

// Executor implements storage.Executor with parameterized SQL.
// Table and column names are checked against storage.Schema and quoted;
// values always travel as arguments.
type Executor struct {
	db DB
}

// NewExecutor wraps a connection pool.
func NewExecutor(db DB) *Executor {
	return &Executor{db: db}
}

// Ping checks the connection.
func (e *Executor) Ping(ctx context.Context) error {
	return e.db.Ping(ctx)
}

// Select runs a read request.
func (e *Executor) Select(ctx context.Context, q storage.Select) ([]storage.Row, error) {
	if err := storage.CheckSelect(q); err != nil {
		return nil, err
	}
	sql, args := buildSelect(q)

	rows, err := e.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToSelect, q.Table, mapError(err))
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToSelect, q.Table, mapError(err))
	}
	return out, nil
}

// Insert stores a row and returns it as the database wrote it.
func (e *Executor) Insert(ctx context.Context, table string, row storage.Row) (storage.Row, error) {
	values := row.Clone()
	delete(values, storage.ColumnID)
	for col := range values {
		if err := storage.CheckColumns(table, col); err != nil {
			return nil, err
		}
	}
	sql, args := buildInsert(table, values)

	rows, err := e.db.Query(ctx, sql, args...)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToInsert, table, mapError(err))
	}
	out, err := collectRows(rows)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", ErrMsgFailedToInsert, table, mapError(err))
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("%s %s: %s", ErrMsgFailedToInsert, table, ErrMsgNoRowReturned)
	}

	logger.FromContext(ctx).Debug("postgres insert", "table", table, "id", out[0][storage.ColumnID])
	return out[0], nil
}

// Update applies values to every row matching the filters.
func (e *Executor) Update(ctx context.Context, m storage.Mutate) (int64, error) {
	if err := storage.CheckMutate(m); err != nil {
		return 0, err
	}
	values := m.Values.Clone()
	delete(values, storage.ColumnID)
	if len(values) == 0 {
		return 0, fmt.Errorf("%w: update of %s without values", storage.ErrInvalidQuery, m.Table)
	}
	sql, args := buildUpdate(m.Table, values, m.Filters)

	tag, err := e.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrMsgFailedToUpdate, m.Table, mapError(err))
	}

	logger.FromContext(ctx).Debug("postgres update", "table", m.Table, "affected", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// Delete removes every row matching the filters.
func (e *Executor) Delete(ctx context.Context, m storage.Mutate) (int64, error) {
	if err := storage.CheckMutate(m); err != nil {
		return 0, err
	}
	sql, args := buildDelete(m.Table, m.Filters)

	tag, err := e.db.Exec(ctx, sql, args...)
	if err != nil {
		return 0, fmt.Errorf("%s %s: %w", ErrMsgFailedToDelete, m.Table, mapError(err))
	}

	logger.FromContext(ctx).Debug("postgres delete", "table", m.Table, "affected", tag.RowsAffected())
	return tag.RowsAffected(), nil
}

// mapError turns a unique violation into storage.ErrUniqueViolation and
// leaves everything else alone.
func mapError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == PgErrorCodeUniqueViolation {
		return fmt.Errorf("%w: %s", storage.ErrUniqueViolation, pgErr.ConstraintName)
	}
	return err
}

func collectRows(rows pgx.Rows) ([]storage.Row, error) {
	defer rows.Close()

	fields := rows.FieldDescriptions()
	out := []storage.Row{}
	for rows.Next() {
		vals, err := rows.Values()
		if err != nil {
			return nil, fmt.Errorf("%s: %w", ErrMsgFailedToReadRow, err)
		}
		r := make(storage.Row, len(fields))
		for i, f := range fields {
			r[f.Name] = vals[i]
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func ident(name string) string {
	return pgx.Identifier{name}.Sanitize()
}

// args numbers placeholders as values are appended.
type args []any

func (a *args) add(v any) string {
	*a = append(*a, v)
	return "$" + strconv.Itoa(len(*a))
}

func sortedKeys(r storage.Row) []string {
	keys := make([]string, 0, len(r))
	for k := range r {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}

func writeWhere(b *strings.Builder, a *args, filters []storage.Filter) {
	for i, f := range filters {
		if i == 0 {
			b.WriteString(" WHERE ")
		} else {
			b.WriteString(" AND ")
		}
		op := " = "
		if f.Op == storage.OpNeq {
			op = " <> "
		}
		b.WriteString(ident(f.Column))
		b.WriteString(op)
		b.WriteString(a.add(f.Value))
	}
}

func buildSelect(q storage.Select) (string, []any) {
	var b strings.Builder
	var a args

	b.WriteString("SELECT ")
	if len(q.Columns) == 0 || slices.Contains(q.Columns, storage.AllColumns) {
		b.WriteString("*")
	} else {
		cols := make([]string, len(q.Columns))
		for i, c := range q.Columns {
			cols[i] = ident(c)
		}
		b.WriteString(strings.Join(cols, ", "))
	}
	b.WriteString(" FROM ")
	b.WriteString(ident(q.Table))

	writeWhere(&b, &a, q.Filters)

	if q.Order != nil {
		b.WriteString(" ORDER BY ")
		b.WriteString(ident(q.Order.Column))
		if q.Order.Ascending {
			b.WriteString(" ASC")
		} else {
			b.WriteString(" DESC")
		}
	}
	if q.Limit > 0 {
		b.WriteString(" LIMIT ")
		b.WriteString(strconv.Itoa(q.Limit))
	}
	return b.String(), a
}

func buildInsert(table string, values storage.Row) (string, []any) {
	var a args
	keys := sortedKeys(values)
	cols := make([]string, len(keys))
	params := make([]string, len(keys))
	for i, k := range keys {
		cols[i] = ident(k)
		params[i] = a.add(values[k])
	}

	sql := "INSERT INTO " + ident(table) +
		" (" + strings.Join(cols, ", ") + ") VALUES (" + strings.Join(params, ", ") + ") RETURNING *"
	return sql, a
}

func buildUpdate(table string, values storage.Row, filters []storage.Filter) (string, []any) {
	var b strings.Builder
	var a args

	b.WriteString("UPDATE ")
	b.WriteString(ident(table))
	b.WriteString(" SET ")
	for i, k := range sortedKeys(values) {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(ident(k))
		b.WriteString(" = ")
		b.WriteString(a.add(values[k]))
	}
	writeWhere(&b, &a, filters)
	return b.String(), a
}

func buildDelete(table string, filters []storage.Filter) (string, []any) {
	var b strings.Builder
	var a args

	b.WriteString("DELETE FROM ")
	b.WriteString(ident(table))
	writeWhere(&b, &a, filters)
	return b.String(), a
}
