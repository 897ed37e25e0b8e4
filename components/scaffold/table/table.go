package table

import (
	"context"

	"github.com/fmstack/fmstack/pkg/prefs"
)

// Table binds column declarations, a view state and the caller's value/id
// accessors into one list-page instance. It holds no rows and performs no
// I/O beyond layout persistence; pages hand it their fetched row set on every
// render.
type Table[T any] struct {
	columns    []Column
	state      *ViewState
	value      ValueFunc[T]
	id         IDFunc[T]
	filter     func(T) bool
	store      prefs.Store
	storageKey string
}

type Option[T any] func(*Table[T])

// WithStorage enables layout persistence under the given key. Two instances
// sharing a key race on last-write-wins; keys are expected to be unique per
// page.
func WithStorage[T any](store prefs.Store, key string) Option[T] {
	return func(t *Table[T]) {
		t.store = store
		t.storageKey = key
	}
}

func WithPageSize[T any](size int) Option[T] {
	return func(t *Table[T]) {
		t.state.PageSize = size
	}
}

func New[T any](columns []Column, value ValueFunc[T], id IDFunc[T], opts ...Option[T]) *Table[T] {
	t := &Table[T]{
		columns: columns,
		state:   NewViewState(columns, DefaultPageSize),
		value:   value,
		id:      id,
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

func (t *Table[T]) Columns() []Column {
	return t.columns
}

func (t *Table[T]) State() *ViewState {
	return t.state
}

func (t *Table[T]) VisibleColumns() []Column {
	return t.state.VisibleColumns(t.columns)
}

// Load merges any persisted layout into the state. Call once at mount.
func (t *Table[T]) Load(ctx context.Context) error {
	if t.store == nil || t.storageKey == "" {
		return nil
	}
	var l Layout
	found, err := prefs.GetJSON(ctx, t.store, t.storageKey, &l)
	if err != nil {
		return err
	}
	if found {
		ApplyLayout(t.state, t.columns, l)
	}
	return nil
}

// Save persists the current column layout.
func (t *Table[T]) Save(ctx context.Context) error {
	return SaveLayout(ctx, t.store, t.storageKey, t.state)
}

// SetFilter installs the caller's filter predicate (the engine holds it but
// never builds filter UI). Resets paging.
func (t *Table[T]) SetFilter(pred func(T) bool) {
	t.filter = pred
	t.state.Page = 1
}

// Matching applies filter, search and sort — the full matching set, before
// pagination. Export and select-all operate on this.
func (t *Table[T]) Matching(rows []T) []T {
	out := rows
	if t.filter != nil {
		filtered := make([]T, 0, len(out))
		for _, row := range out {
			if t.filter(row) {
				filtered = append(filtered, row)
			}
		}
		out = filtered
	}
	out = Search(out, t.VisibleColumns(), t.state.Search, t.value)
	return Sort(out, t.state.SortBy, t.state.SortDir, t.value)
}

// PageRows is the slice of Matching shown on the current page.
func (t *Table[T]) PageRows(rows []T) []T {
	return Paginate(t.Matching(rows), t.state.Page, t.state.PageSize)
}

func (t *Table[T]) PageCount(rows []T) int {
	return PageCount(len(t.Matching(rows)), t.state.PageSize)
}

func (t *Table[T]) RowID(row T) string {
	return t.id(row)
}

// SelectAllMatching selects (or clears) every row in the filtered set.
func (t *Table[T]) SelectAllMatching(rows []T, selected bool) {
	if !selected {
		t.state.SelectAll(nil, false)
		return
	}
	matching := t.Matching(rows)
	ids := make([]string, 0, len(matching))
	for _, row := range matching {
		ids = append(ids, t.id(row))
	}
	t.state.SelectAll(ids, true)
}
