// Package storage is the persistence facade used by every repository.
//
// Callers build a request with a chain of table-scoped calls:
//
//	client.From(storage.TableJobs).Select("id").Eq("slug", s).Neq("id", id).Single(ctx)
//
// The chain only accumulates state. Nothing touches the backend until a
// terminal call (Single, Many, Insert, Exec), at which point the accumulated
// request is handed to an Executor. Two executors exist: the in-memory one in
// storage/memory and the PostgreSQL one in database/postgres.
package storage

import (
	"context"
)

// Row is a single record keyed by column name.
type Row map[string]any

// Clone returns a shallow copy of the row. Slice values are copied too so the
// caller cannot mutate executor-owned data through the returned row.
func (r Row) Clone() Row {
	if r == nil {
		return nil
	}
	out := make(Row, len(r))
	for k, v := range r {
		switch tv := v.(type) {
		case []string:
			out[k] = append([]string(nil), tv...)
		case []any:
			out[k] = append([]any(nil), tv...)
		default:
			out[k] = v
		}
	}
	return out
}

// Project keeps only the requested columns. An empty list or "*" keeps all.
func (r Row) Project(columns []string) Row {
	if len(columns) == 0 || (len(columns) == 1 && columns[0] == AllColumns) {
		return r.Clone()
	}
	out := make(Row, len(columns))
	for _, c := range columns {
		if v, ok := r[c]; ok {
			out[c] = v
		}
	}
	return out.Clone()
}

// Executor resolves fully built requests against a backend.
type Executor interface {
	Select(ctx context.Context, q Select) ([]Row, error)
	Insert(ctx context.Context, table string, row Row) (Row, error)
	Update(ctx context.Context, m Mutate) (int64, error)
	Delete(ctx context.Context, m Mutate) (int64, error)
}

// Client is the entry point of the facade.
type Client struct {
	exec Executor
}

// NewClient wraps an executor.
func NewClient(exec Executor) *Client {
	return &Client{exec: exec}
}

// From scopes the following calls to a table.
func (c *Client) From(table string) *Table {
	return &Table{exec: c.exec, name: table}
}

// Table is a table-scoped handle.
type Table struct {
	exec Executor
	name string
}

// Select starts a read. With no columns every column is returned.
func (t *Table) Select(columns ...string) *Query {
	if len(columns) == 0 {
		columns = []string{AllColumns}
	}
	q := &Query{exec: t.exec}
	q.state.Table = t.name
	q.state.Columns = columns
	if t.name == "" {
		q.err = invalidf("empty table name")
	}
	return q
}

// Insert stores a new row and returns it as stored (with id and timestamps).
func (t *Table) Insert(ctx context.Context, row Row) (Row, error) {
	if t.name == "" {
		return nil, invalidf("empty table name")
	}
	if len(row) == 0 {
		return nil, invalidf("insert into %s without values", t.name)
	}
	return t.exec.Insert(ctx, t.name, row)
}

// Update starts an update of the given values. Filters are mandatory.
func (t *Table) Update(values Row) *Mutation {
	m := &Mutation{exec: t.exec, kind: mutationUpdate}
	m.state.Table = t.name
	m.state.Values = values
	if len(values) == 0 {
		m.err = invalidf("update of %s without values", t.name)
	}
	return m
}

// Delete starts a delete. Filters are mandatory.
func (t *Table) Delete() *Mutation {
	m := &Mutation{exec: t.exec, kind: mutationDelete}
	m.state.Table = t.name
	return m
}
