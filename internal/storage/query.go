package storage

import (
	"context"
)

// Op is a filter operator.
type Op string

const (
	OpEq  Op = "eq"
	OpNeq Op = "neq"
)

// Filter is a single column predicate. Filters of a request are ANDed.
type Filter struct {
	Column string
	Op     Op
	Value  any
}

// Matches reports whether row satisfies the filter. A missing column never
// matches, mirroring SQL NULL comparison.
func (f Filter) Matches(row Row) bool {
	v, ok := row[f.Column]
	if !ok || v == nil {
		return false
	}
	eq := Equal(v, f.Value)
	if f.Op == OpNeq {
		return !eq
	}
	return eq
}

// Order is a single-column sort.
type Order struct {
	Column    string
	Ascending bool
}

// Select is the accumulated state of a read request.
type Select struct {
	Table   string
	Columns []string
	Filters []Filter
	Order   *Order
	// Limit of zero means no limit.
	Limit int
}

// Mutate is the accumulated state of an update or delete request.
type Mutate struct {
	Table   string
	Values  Row
	Filters []Filter
}

// Query builds a read request.
type Query struct {
	exec  Executor
	state Select
	err   error
}

// Eq adds an equality filter.
func (q *Query) Eq(column string, value any) *Query {
	return q.filter(column, OpEq, value)
}

// Neq adds an inequality filter.
func (q *Query) Neq(column string, value any) *Query {
	return q.filter(column, OpNeq, value)
}

func (q *Query) filter(column string, op Op, value any) *Query {
	if column == "" && q.err == nil {
		q.err = invalidf("%s filter without column", op)
	}
	q.state.Filters = append(q.state.Filters, Filter{Column: column, Op: op, Value: value})
	return q
}

// Order sorts the result on one column. A later call replaces an earlier one.
func (q *Query) Order(column string, ascending bool) *Query {
	if column == "" && q.err == nil {
		q.err = invalidf("order without column")
	}
	q.state.Order = &Order{Column: column, Ascending: ascending}
	return q
}

// Limit caps the number of returned rows.
func (q *Query) Limit(n int) *Query {
	if n <= 0 && q.err == nil {
		q.err = invalidf("limit must be positive, got %d", n)
	}
	q.state.Limit = n
	return q
}

// State returns a copy of the accumulated request.
func (q *Query) State() Select {
	s := q.state
	s.Columns = append([]string(nil), q.state.Columns...)
	s.Filters = append([]Filter(nil), q.state.Filters...)
	return s
}

// Many runs the request and returns every matching row. No match yields an
// empty, non-nil slice.
func (q *Query) Many(ctx context.Context) ([]Row, error) {
	if q.err != nil {
		return nil, q.err
	}
	rows, err := q.exec.Select(ctx, q.State())
	if err != nil {
		return nil, err
	}
	if rows == nil {
		rows = []Row{}
	}
	return rows, nil
}

// Single runs the request and returns the first matching row, or nil when
// nothing matches. Not matching is not an error.
func (q *Query) Single(ctx context.Context) (Row, error) {
	if q.err != nil {
		return nil, q.err
	}
	s := q.State()
	s.Limit = 1
	rows, err := q.exec.Select(ctx, s)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

type mutationKind int

const (
	mutationUpdate mutationKind = iota
	mutationDelete
)

// Mutation builds an update or delete request.
type Mutation struct {
	exec  Executor
	kind  mutationKind
	state Mutate
	err   error
}

// Eq adds an equality filter.
func (m *Mutation) Eq(column string, value any) *Mutation {
	m.state.Filters = append(m.state.Filters, Filter{Column: column, Op: OpEq, Value: value})
	return m
}

// Neq adds an inequality filter.
func (m *Mutation) Neq(column string, value any) *Mutation {
	m.state.Filters = append(m.state.Filters, Filter{Column: column, Op: OpNeq, Value: value})
	return m
}

// Exec runs the mutation and returns the number of affected rows.
func (m *Mutation) Exec(ctx context.Context) (int64, error) {
	if m.err != nil {
		return 0, m.err
	}
	if m.state.Table == "" {
		return 0, invalidf("empty table name")
	}
	if len(m.state.Filters) == 0 {
		return 0, invalidf("unfiltered mutation of %s", m.state.Table)
	}
	for _, f := range m.state.Filters {
		if f.Column == "" {
			return 0, invalidf("%s filter without column", f.Op)
		}
	}
	state := m.state
	state.Filters = append([]Filter(nil), m.state.Filters...)
	if m.kind == mutationDelete {
		return m.exec.Delete(ctx, state)
	}
	return m.exec.Update(ctx, state)
}
