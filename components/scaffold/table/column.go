// Package table is the generic list-page engine: column configuration with
// persistence, client-side search/sort/pagination, row selection and export.
// It operates on the row set a page has already fetched — server-side paging
// of the remote dataset is the caller's concern, not the engine's.
package table

// Column describes one table column. Columns are declared once per page and
// never mutated at runtime; visibility and order are user-driven and live in
// ViewState.
type Column struct {
	key            string
	label          string
	sortable       bool
	hideable       bool
	draggable      bool
	defaultVisible bool
}

type ColumnOpt func(*Column)

// WithoutSort marks the column as not sortable (e.g. action or badge columns).
func WithoutSort() ColumnOpt {
	return func(c *Column) {
		c.sortable = false
	}
}

// Fixed marks the column as not hideable; configure-columns UIs must not offer
// a toggle for it.
func Fixed() ColumnOpt {
	return func(c *Column) {
		c.hideable = false
	}
}

// Pinned marks the column as not reorderable.
func Pinned() ColumnOpt {
	return func(c *Column) {
		c.draggable = false
	}
}

// HiddenByDefault declares the column but keeps it out of the visible set
// until the user enables it.
func HiddenByDefault() ColumnOpt {
	return func(c *Column) {
		c.defaultVisible = false
	}
}

// NewColumn builds a column descriptor. key must be unique within one table
// instance; duplicate keys are a programming error and the last declaration
// wins in lookups.
func NewColumn(key, label string, opts ...ColumnOpt) Column {
	c := Column{
		key:            key,
		label:          label,
		sortable:       true,
		hideable:       true,
		draggable:      true,
		defaultVisible: true,
	}
	for _, opt := range opts {
		opt(&c)
	}
	return c
}

func (c Column) Key() string          { return c.key }
func (c Column) Label() string        { return c.label }
func (c Column) Sortable() bool       { return c.sortable }
func (c Column) Hideable() bool       { return c.hideable }
func (c Column) Draggable() bool      { return c.draggable }
func (c Column) DefaultVisible() bool { return c.defaultVisible }

func findColumn(columns []Column, key string) (Column, bool) {
	// last declaration wins
	var (
		found Column
		ok    bool
	)
	for _, c := range columns {
		if c.key == key {
			found = c
			ok = true
		}
	}
	return found, ok
}
