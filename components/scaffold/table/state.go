package table

import "sort"

type SortDirection string

const (
	SortNone SortDirection = ""
	SortAsc  SortDirection = "asc"
	SortDesc SortDirection = "desc"
)

// Next cycles ascending → descending → unsorted.
func (d SortDirection) Next() SortDirection {
	switch d {
	case SortNone:
		return SortAsc
	case SortAsc:
		return SortDesc
	default:
		return SortNone
	}
}

// ViewState is the mutable per-instance state of one table: column order and
// hidden set (the persisted subset), plus session-local sort, page, search and
// selection.
type ViewState struct {
	Order    []string
	Hidden   map[string]bool
	SortBy   string
	SortDir  SortDirection
	Page     int
	PageSize int
	Search   string
	Selected map[string]bool
}

func NewViewState(columns []Column, pageSize int) *ViewState {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	s := &ViewState{
		Order:    make([]string, 0, len(columns)),
		Hidden:   make(map[string]bool, len(columns)),
		Page:     1,
		PageSize: pageSize,
		Selected: make(map[string]bool),
	}
	for _, c := range columns {
		s.Order = append(s.Order, c.Key())
		if !c.DefaultVisible() && c.Hideable() {
			s.Hidden[c.Key()] = true
		}
	}
	return s
}

// VisibleColumns returns the columns to render, in the state's order, skipping
// hidden ones and order entries that no longer match a declared column.
func (s *ViewState) VisibleColumns(columns []Column) []Column {
	out := make([]Column, 0, len(s.Order))
	for _, key := range s.Order {
		if s.Hidden[key] {
			continue
		}
		if c, ok := findColumn(columns, key); ok {
			out = append(out, c)
		}
	}
	return out
}

// ToggleSort advances the sort cycle for the given column and resets paging.
// Selecting a different column starts a fresh ascending sort.
func (s *ViewState) ToggleSort(columns []Column, key string) {
	c, ok := findColumn(columns, key)
	if !ok || !c.Sortable() {
		return
	}
	if s.SortBy == key {
		s.SortDir = s.SortDir.Next()
		if s.SortDir == SortNone {
			s.SortBy = ""
		}
	} else {
		s.SortBy = key
		s.SortDir = SortAsc
	}
	s.Page = 1
}

// SetSearch updates the search term and resets paging.
func (s *ViewState) SetSearch(term string) {
	if s.Search == term {
		return
	}
	s.Search = term
	s.Page = 1
}

// SetHidden hides or shows a column. Non-hideable columns stay visible.
func (s *ViewState) SetHidden(columns []Column, key string, hidden bool) {
	c, ok := findColumn(columns, key)
	if !ok {
		return
	}
	if hidden && !c.Hideable() {
		return
	}
	if hidden {
		s.Hidden[key] = true
	} else {
		delete(s.Hidden, key)
	}
}

// MoveColumn places key at position idx within the order. Non-draggable
// columns do not move.
func (s *ViewState) MoveColumn(columns []Column, key string, idx int) {
	c, ok := findColumn(columns, key)
	if !ok || !c.Draggable() {
		return
	}
	from := -1
	for i, k := range s.Order {
		if k == key {
			from = i
			break
		}
	}
	if from == -1 {
		return
	}
	if idx < 0 {
		idx = 0
	}
	if idx >= len(s.Order) {
		idx = len(s.Order) - 1
	}
	order := append(s.Order[:from:from], s.Order[from+1:]...)
	order = append(order[:idx], append([]string{key}, order[idx:]...)...)
	s.Order = order
}

// SelectRow marks or clears one row in the selection set.
func (s *ViewState) SelectRow(id string, selected bool) {
	if selected {
		s.Selected[id] = true
	} else {
		delete(s.Selected, id)
	}
}

// SelectAll replaces the selection with the given IDs (the filtered set, not
// just the visible page) or clears it.
func (s *ViewState) SelectAll(ids []string, selected bool) {
	if !selected {
		s.Selected = make(map[string]bool)
		return
	}
	for _, id := range ids {
		s.Selected[id] = true
	}
}

// SelectedIDs returns the selection in stable (sorted) order.
func (s *ViewState) SelectedIDs() []string {
	ids := make([]string, 0, len(s.Selected))
	for id := range s.Selected {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
