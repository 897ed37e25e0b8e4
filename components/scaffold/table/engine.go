package table

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// DefaultPageSize matches the page size the backend list endpoints return.
const DefaultPageSize = 10

// ValueFunc extracts the raw (unrendered) value of one cell. The engine never
// inspects row shape except through this function.
type ValueFunc[T any] func(row T, key string) any

// IDFunc yields the stable identifier used for selection tracking.
type IDFunc[T any] func(row T) string

// Stringify converts a cell value to the canonical string used for search and
// default export.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case fmt.Stringer:
		return t.String()
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Search keeps rows where any visible column's stringified value contains the
// term, case-insensitively. An empty term returns rows unchanged. O(rows ×
// visible columns) — fine because row counts are page-local.
func Search[T any](rows []T, visible []Column, term string, value ValueFunc[T]) []T {
	if term == "" {
		return rows
	}
	needle := strings.ToLower(term)
	out := make([]T, 0, len(rows))
	for _, row := range rows {
		for _, c := range visible {
			if strings.Contains(strings.ToLower(Stringify(value(row, c.Key()))), needle) {
				out = append(out, row)
				break
			}
		}
	}
	return out
}

// Sort returns a sorted copy of rows; the input order is preserved so that
// clearing the sort restores it. SortNone or an empty key returns rows as-is.
func Sort[T any](rows []T, key string, dir SortDirection, value ValueFunc[T]) []T {
	if key == "" || dir == SortNone {
		return rows
	}
	out := make([]T, len(rows))
	copy(out, rows)
	sort.SliceStable(out, func(i, j int) bool {
		av, bv := value(out[i], key), value(out[j], key)
		aNull, bNull := isNullish(av), isNullish(bv)
		if aNull || bNull {
			// null-ish values stay last regardless of direction
			return !aNull && bNull
		}
		cmp := Compare(av, bv)
		if dir == SortDesc {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Compare orders two raw cell values: numerically when both parse as numbers,
// otherwise case-insensitive lexicographically. Null-ish values (nil, "",
// "-") always sort last regardless of direction, which is why they compare
// as equal to each other here and larger than everything else.
func Compare(a, b any) int {
	aNull := isNullish(a)
	bNull := isNullish(b)
	switch {
	case aNull && bNull:
		return 0
	case aNull:
		return 1
	case bNull:
		return -1
	}

	as := Stringify(a)
	bs := Stringify(b)
	af, aErr := strconv.ParseFloat(strings.TrimSpace(as), 64)
	bf, bErr := strconv.ParseFloat(strings.TrimSpace(bs), 64)
	if aErr == nil && bErr == nil {
		switch {
		case af < bf:
			return -1
		case af > bf:
			return 1
		default:
			return 0
		}
	}
	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}

func isNullish(v any) bool {
	if v == nil {
		return true
	}
	s := Stringify(v)
	return s == "" || s == "-"
}

// Paginate slices the filtered/sorted set into the requested page (1-based).
// An out-of-range page yields an empty slice.
func Paginate[T any](rows []T, page, pageSize int) []T {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	start := (page - 1) * pageSize
	if start >= len(rows) {
		return nil
	}
	end := start + pageSize
	if end > len(rows) {
		end = len(rows)
	}
	return rows[start:end]
}

// PageCount is ceil(n / pageSize); zero rows produce zero pages.
func PageCount(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (n + pageSize - 1) / pageSize
}
