// Package memory is an in-process stand-in for the hosted database, used when
// no connection credentials are configured.
//
// Unlike a write-inert demo stub, writes are applied: callers observe their
// own inserts, updates and deletes, and unique columns are enforced the same
// way the hosted schema enforces them.
package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/dewinson2/MJCL/internal/logger"
	"github.com/dewinson2/MJCL/internal/storage"
)

// Option configures an Executor.
type Option func(*Executor)

// WithoutSeed starts every table empty.
func WithoutSeed() Option {
	return func(e *Executor) { e.seed = nil }
}

// WithSeed replaces the built-in sample data, e.g. with rows from LoadSeedFile.
func WithSeed(rows map[string][]storage.Row) Option {
	return func(e *Executor) {
		e.seed = func(time.Time) map[string][]storage.Row { return rows }
	}
}

// WithClock overrides the clock used for created_at/updated_at defaults.
func WithClock(now func() time.Time) Option {
	return func(e *Executor) { e.now = now }
}

type table struct {
	rows   []storage.Row
	nextID int64
}

// Executor implements storage.Executor over in-memory tables.
type Executor struct {
	mu     sync.RWMutex
	tables map[string]*table
	now    func() time.Time
	seed   func(now time.Time) map[string][]storage.Row
}

// New creates the executor, seeded with sample data unless WithoutSeed or
// WithSeed is given.
func New(opts ...Option) *Executor {
	e := &Executor{
		tables: make(map[string]*table, len(storage.Schema)),
		now:    time.Now,
		seed:   seedRows,
	}
	for _, opt := range opts {
		opt(e)
	}
	for name := range storage.Schema {
		e.tables[name] = &table{nextID: 1}
	}
	if e.seed != nil {
		for name, rows := range e.seed(e.now()) {
			t, ok := e.tables[name]
			if !ok {
				continue
			}
			for _, r := range rows {
				t.rows = append(t.rows, r.Clone())
				if id, ok := r[storage.ColumnID].(int64); ok && id >= t.nextID {
					t.nextID = id + 1
				}
			}
			// Rows seeded without an id are numbered after the highest given one.
			for _, r := range t.rows {
				if _, ok := r[storage.ColumnID].(int64); !ok {
					r[storage.ColumnID] = t.nextID
					t.nextID++
				}
			}
		}
	}
	return e
}

// Ping always succeeds while the context is live.
func (e *Executor) Ping(ctx context.Context) error {
	return ctx.Err()
}

// Close is a no-op.
func (e *Executor) Close() {}

func (e *Executor) lookup(name string) (*table, error) {
	t, ok := e.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", storage.ErrUnknownTable, name)
	}
	return t, nil
}

// Select filters, sorts and slices a copy of the table.
func (e *Executor) Select(ctx context.Context, q storage.Select) ([]storage.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := storage.CheckSelect(q); err != nil {
		return nil, err
	}

	e.mu.RLock()
	defer e.mu.RUnlock()

	t, err := e.lookup(q.Table)
	if err != nil {
		return nil, err
	}

	matched := make([]storage.Row, 0, len(t.rows))
	for _, r := range t.rows {
		if matchesAll(r, q.Filters) {
			matched = append(matched, r)
		}
	}

	if q.Order != nil {
		col, asc := q.Order.Column, q.Order.Ascending
		sort.SliceStable(matched, func(i, j int) bool {
			c, ok := storage.Compare(matched[i][col], matched[j][col])
			if !ok {
				return false
			}
			if asc {
				return c < 0
			}
			return c > 0
		})
	}

	if q.Limit > 0 && len(matched) > q.Limit {
		matched = matched[:q.Limit]
	}

	out := make([]storage.Row, len(matched))
	for i, r := range matched {
		out[i] = r.Project(q.Columns)
	}
	return out, nil
}

// Insert assigns the next id and default timestamps, then stores the row.
func (e *Executor) Insert(ctx context.Context, tableName string, row storage.Row) (storage.Row, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	for col := range row {
		if err := storage.CheckColumns(tableName, col); err != nil {
			return nil, err
		}
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.lookup(tableName)
	if err != nil {
		return nil, err
	}

	stored := row.Clone()
	delete(stored, storage.ColumnID)
	if err := checkUnique(tableName, t, stored, -1); err != nil {
		return nil, err
	}

	now := e.now()
	stored[storage.ColumnID] = t.nextID
	if _, ok := stored[storage.ColumnCreatedAt]; !ok {
		stored[storage.ColumnCreatedAt] = now
	}
	if _, ok := stored[storage.ColumnUpdatedAt]; !ok {
		stored[storage.ColumnUpdatedAt] = now
	}
	t.nextID++
	t.rows = append(t.rows, stored)

	logger.FromContext(ctx).Debug("memory insert", "table", tableName, "id", stored[storage.ColumnID])
	return stored.Clone(), nil
}

// Update applies values to every row matching the filters.
func (e *Executor) Update(ctx context.Context, m storage.Mutate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := storage.CheckMutate(m); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.lookup(m.Table)
	if err != nil {
		return 0, err
	}

	values := m.Values.Clone()
	delete(values, storage.ColumnID)

	var targets []int
	for i, r := range t.rows {
		if matchesAll(r, m.Filters) {
			targets = append(targets, i)
		}
	}
	// A unique value can only be written to a single row.
	if len(targets) > 1 {
		for _, col := range storage.UniqueColumns[m.Table] {
			if _, ok := values[col]; ok {
				return 0, fmt.Errorf("%w: %s.%s", storage.ErrUniqueViolation, m.Table, col)
			}
		}
	}
	for _, i := range targets {
		if err := checkUnique(m.Table, t, values, i); err != nil {
			return 0, err
		}
	}
	for _, i := range targets {
		for k, v := range values {
			t.rows[i][k] = v
		}
	}

	logger.FromContext(ctx).Debug("memory update", "table", m.Table, "affected", len(targets))
	return int64(len(targets)), nil
}

// Delete removes every row matching the filters.
func (e *Executor) Delete(ctx context.Context, m storage.Mutate) (int64, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if err := storage.CheckMutate(m); err != nil {
		return 0, err
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	t, err := e.lookup(m.Table)
	if err != nil {
		return 0, err
	}

	kept := t.rows[:0]
	var removed int64
	for _, r := range t.rows {
		if matchesAll(r, m.Filters) {
			removed++
			continue
		}
		kept = append(kept, r)
	}
	t.rows = kept

	logger.FromContext(ctx).Debug("memory delete", "table", m.Table, "affected", removed)
	return removed, nil
}

func matchesAll(r storage.Row, filters []storage.Filter) bool {
	for _, f := range filters {
		if !f.Matches(r) {
			return false
		}
	}
	return true
}

// checkUnique rejects values that would duplicate a unique column of another
// row. skip is the index of the row being updated, or -1 on insert.
func checkUnique(tableName string, t *table, values storage.Row, skip int) error {
	for _, col := range storage.UniqueColumns[tableName] {
		v, ok := values[col]
		if !ok {
			continue
		}
		for i, r := range t.rows {
			if i == skip {
				continue
			}
			if storage.Equal(r[col], v) {
				return fmt.Errorf("%w: %s.%s", storage.ErrUniqueViolation, tableName, col)
			}
		}
	}
	return nil
}
