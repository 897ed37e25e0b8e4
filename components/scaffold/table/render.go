package table

import (
	"context"
	"fmt"
	"html"
	"io"
	"net/url"

	"github.com/a-h/templ"
)

// Props configures one rendering of a table instance. Domain-specific cell
// content comes in through the renderer hooks; everything else is generic.
type Props[T any] struct {
	Table *Table[T]
	Rows  []T
	// BasePath is the list page URL; sort/page links are built against it.
	BasePath string

	Loading      bool
	EmptyMessage string

	EnableSearch   bool
	EnableExport   bool
	ExportFileName string

	// Selectable adds a checkbox column; selection state lives in ViewState
	// and is read by caller-supplied toolbar actions.
	Selectable bool

	// RenderRow overrides the whole row: key → cell component. Takes
	// precedence over RenderCell.
	RenderRow func(row T) map[string]templ.Component
	// RenderCell overrides a single cell. Nil falls back to the stringified
	// raw value.
	RenderCell func(row T, key string) templ.Component
	// RenderActions fills the trailing actions cell.
	RenderActions func(row T) templ.Component

	// FilterTrigger is the caller's filter UI entry point; the engine only
	// holds the resulting predicate.
	FilterTrigger templ.Component
	LeftActions   []templ.Component
	RightActions  []templ.Component
}

// Render produces the table UI: toolbar, header with sort controls, rows for
// the current page and the pagination footer.
func Render[T any](props Props[T]) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		r := &renderer[T]{props: props, state: props.Table.State()}
		return r.render(ctx, w)
	})
}

type renderer[T any] struct {
	props Props[T]
	state *ViewState
}

func (r *renderer[T]) render(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, `<div class="scaffold-table">`); err != nil {
		return err
	}
	if err := r.toolbar(ctx, w); err != nil {
		return err
	}
	if err := r.table(ctx, w); err != nil {
		return err
	}
	if err := r.pagination(w); err != nil {
		return err
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func (r *renderer[T]) toolbar(ctx context.Context, w io.Writer) error {
	if _, err := io.WriteString(w, `<div class="scaffold-table__toolbar">`); err != nil {
		return err
	}
	for _, c := range r.props.LeftActions {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	if r.props.EnableSearch {
		fmt.Fprintf(w,
			`<form method="get" action="%s" class="scaffold-table__search"><input type="search" name="search" value="%s" placeholder="Search"/></form>`,
			html.EscapeString(r.props.BasePath),
			html.EscapeString(r.state.Search),
		)
	}
	if r.props.FilterTrigger != nil {
		if err := r.props.FilterTrigger.Render(ctx, w); err != nil {
			return err
		}
	}
	if r.props.EnableExport {
		fmt.Fprintf(w,
			`<a class="scaffold-table__export" href="%s" download="%s">Export</a>`,
			html.EscapeString(r.href(url.Values{"export": {"csv"}})),
			html.EscapeString(r.props.ExportFileName),
		)
	}
	for _, c := range r.props.RightActions {
		if err := c.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</div>`)
	return err
}

func (r *renderer[T]) table(ctx context.Context, w io.Writer) error {
	if r.props.Loading {
		_, err := io.WriteString(w, `<div class="scaffold-table__loading" role="status">Loading…</div>`)
		return err
	}

	visible := r.props.Table.VisibleColumns()
	pageRows := r.props.Table.PageRows(r.props.Rows)

	if len(pageRows) == 0 {
		fmt.Fprintf(w, `<div class="scaffold-table__empty">%s</div>`, html.EscapeString(r.props.EmptyMessage))
		return nil
	}

	if _, err := io.WriteString(w, `<table class="scaffold-table__table"><thead><tr>`); err != nil {
		return err
	}
	if r.props.Selectable {
		if _, err := io.WriteString(w, `<th class="scaffold-table__select-all"><input type="checkbox" name="selectAll"/></th>`); err != nil {
			return err
		}
	}
	for _, c := range visible {
		if err := r.headerCell(w, c); err != nil {
			return err
		}
	}
	if r.props.RenderActions != nil {
		if _, err := io.WriteString(w, `<th></th>`); err != nil {
			return err
		}
	}
	if _, err := io.WriteString(w, `</tr></thead><tbody>`); err != nil {
		return err
	}

	for _, row := range pageRows {
		if err := r.bodyRow(ctx, w, row, visible); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tbody></table>`)
	return err
}

func (r *renderer[T]) headerCell(w io.Writer, c Column) error {
	label := html.EscapeString(c.Label())
	if !c.Sortable() {
		_, err := fmt.Fprintf(w, `<th>%s</th>`, label)
		return err
	}

	indicator := ""
	next := SortAsc
	if r.state.SortBy == c.Key() {
		next = r.state.SortDir.Next()
		switch r.state.SortDir {
		case SortAsc:
			indicator = " ▲"
		case SortDesc:
			indicator = " ▼"
		}
	}

	// Changing the sort restarts paging; a third click clears the sort.
	overrides := url.Values{"page": nil}
	if next == SortNone {
		overrides["sort"] = nil
		overrides["dir"] = nil
	} else {
		overrides.Set("sort", c.Key())
		overrides.Set("dir", string(next))
	}
	_, err := fmt.Fprintf(w,
		`<th><a href="%s">%s%s</a></th>`,
		html.EscapeString(r.href(overrides)),
		label,
		indicator,
	)
	return err
}

func (r *renderer[T]) bodyRow(ctx context.Context, w io.Writer, row T, visible []Column) error {
	id := r.props.Table.RowID(row)
	if _, err := fmt.Fprintf(w, `<tr data-id="%s">`, html.EscapeString(id)); err != nil {
		return err
	}
	if r.props.Selectable {
		checked := ""
		if r.state.Selected[id] {
			checked = ` checked`
		}
		if _, err := fmt.Fprintf(w, `<td><input type="checkbox" name="selected" value="%s"%s/></td>`, html.EscapeString(id), checked); err != nil {
			return err
		}
	}

	var rowCells map[string]templ.Component
	if r.props.RenderRow != nil {
		rowCells = r.props.RenderRow(row)
	}
	for _, c := range visible {
		if _, err := io.WriteString(w, `<td>`); err != nil {
			return err
		}
		switch {
		case rowCells != nil:
			if cell, ok := rowCells[c.Key()]; ok && cell != nil {
				if err := cell.Render(ctx, w); err != nil {
					return err
				}
			}
		case r.props.RenderCell != nil:
			if err := r.props.RenderCell(row, c.Key()).Render(ctx, w); err != nil {
				return err
			}
		default:
			value := Stringify(r.props.Table.value(row, c.Key()))
			if _, err := io.WriteString(w, html.EscapeString(value)); err != nil {
				return err
			}
		}
		if _, err := io.WriteString(w, `</td>`); err != nil {
			return err
		}
	}

	if r.props.RenderActions != nil {
		if _, err := io.WriteString(w, `<td class="scaffold-table__actions">`); err != nil {
			return err
		}
		if err := r.props.RenderActions(row).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, `</td>`); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, `</tr>`)
	return err
}

func (r *renderer[T]) pagination(w io.Writer) error {
	if r.props.Loading {
		return nil
	}
	pages := r.props.Table.PageCount(r.props.Rows)
	if pages <= 1 {
		return nil
	}
	if _, err := fmt.Fprintf(w,
		`<nav class="scaffold-table__pagination">Page %d of %d`,
		r.state.Page, pages,
	); err != nil {
		return err
	}
	if r.state.Page > 1 {
		fmt.Fprintf(w, ` <a rel="prev" href="%s">Previous</a>`,
			html.EscapeString(r.href(url.Values{"page": {fmt.Sprint(r.state.Page - 1)}})))
	}
	if r.state.Page < pages {
		fmt.Fprintf(w, ` <a rel="next" href="%s">Next</a>`,
			html.EscapeString(r.href(url.Values{"page": {fmt.Sprint(r.state.Page + 1)}})))
	}
	_, err := io.WriteString(w, `</nav>`)
	return err
}

// href rebuilds the list URL from the current state plus overrides, so every
// control round-trips search/sort/page through the query string.
func (r *renderer[T]) href(overrides url.Values) string {
	q := url.Values{}
	if r.state.Search != "" {
		q.Set("search", r.state.Search)
	}
	if r.state.SortBy != "" {
		q.Set("sort", r.state.SortBy)
		q.Set("dir", string(r.state.SortDir))
	}
	if r.state.Page > 1 {
		q.Set("page", fmt.Sprint(r.state.Page))
	}
	for key, values := range overrides {
		q.Del(key)
		for _, v := range values {
			q.Add(key, v)
		}
	}
	encoded := q.Encode()
	if encoded == "" {
		return r.props.BasePath
	}
	return r.props.BasePath + "?" + encoded
}
