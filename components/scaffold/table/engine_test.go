package table

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type testRow struct {
	ID    int
	Name  string
	Price any
}

func testColumns() []Column {
	return []Column{
		NewColumn("id", "id"),
		NewColumn("name", "name"),
		NewColumn("price", "price", HiddenByDefault()),
	}
}

func testValue(row testRow, key string) any {
	switch key {
	case "id":
		return row.ID
	case "name":
		return row.Name
	case "price":
		return row.Price
	}
	return nil
}

func testID(row testRow) string {
	return Stringify(row.ID)
}

func testRows() []testRow {
	return []testRow{
		{ID: 1, Name: "Alpha", Price: 10},
		{ID: 2, Name: "Beta", Price: 2},
		{ID: 3, Name: "gamma", Price: nil},
		{ID: 4, Name: "delta", Price: "-"},
	}
}

func TestSearch_IsAFilterNotAMutation(t *testing.T) {
	t.Parallel()

	rows := testRows()
	visible := []Column{NewColumn("id", "id"), NewColumn("name", "name")}

	require.Equal(t, rows, Search(rows, visible, "", testValue))

	got := Search(rows, visible, "a", testValue)
	require.LessOrEqual(t, len(got), len(rows))
	// result preserves input order
	prev := -1
	for _, g := range got {
		idx := -1
		for i, r := range rows {
			if r.ID == g.ID {
				idx = i
			}
		}
		require.Greater(t, idx, prev)
		prev = idx
	}
}

func TestSearch_CaseInsensitiveSubstring(t *testing.T) {
	t.Parallel()

	rows := []testRow{{ID: 1, Name: "Alpha"}, {ID: 2, Name: "Beta"}}
	visible := []Column{NewColumn("id", "id"), NewColumn("name", "name")}

	got := Search(rows, visible, "alp", testValue)
	require.Len(t, got, 1)
	require.Equal(t, "Alpha", got[0].Name)
}

func TestSearch_OnlyVisibleColumns(t *testing.T) {
	t.Parallel()

	rows := testRows()
	// price column hidden: "10" must not match
	visible := []Column{NewColumn("name", "name")}
	require.Empty(t, Search(rows, visible, "10", testValue))
}

func TestSort_IsAPermutation(t *testing.T) {
	t.Parallel()

	rows := testRows()
	asc := Sort(rows, "name", SortAsc, testValue)
	require.ElementsMatch(t, rows, asc)
	require.Equal(t, testRows(), rows, "input must not be mutated")

	names := make([]string, 0, len(asc))
	for _, r := range asc {
		names = append(names, r.Name)
	}
	require.Equal(t, []string{"Alpha", "Beta", "delta", "gamma"}, names)
}

func TestSort_DescReversesAscWithoutTies(t *testing.T) {
	t.Parallel()

	rows := testRows()
	asc := Sort(rows, "name", SortAsc, testValue)
	desc := Sort(rows, "name", SortDesc, testValue)
	for i := range asc {
		require.Equal(t, asc[i], desc[len(desc)-1-i])
	}
}

func TestSort_NumericWhenBothParse(t *testing.T) {
	t.Parallel()

	rows := []testRow{
		{ID: 1, Price: "100"},
		{ID: 2, Price: "20"},
		{ID: 3, Price: "3"},
	}
	got := Sort(rows, "price", SortAsc, testValue)
	require.Equal(t, []int{3, 2, 1}, []int{got[0].ID, got[1].ID, got[2].ID})
}

func TestSort_NullishLastInBothDirections(t *testing.T) {
	t.Parallel()

	rows := testRows()
	for _, dir := range []SortDirection{SortAsc, SortDesc} {
		got := Sort(rows, "price", dir, testValue)
		require.Len(t, got, 4)
		// IDs 3 (nil) and 4 ("-") trail in either direction
		require.ElementsMatch(t, []int{3, 4}, []int{got[2].ID, got[3].ID})
	}
}

func TestSortCycle_ThirdClickRestoresOriginalOrder(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	tbl := New(cols, testValue, testID)
	rows := testRows()

	tbl.State().ToggleSort(cols, "name")
	require.Equal(t, SortAsc, tbl.State().SortDir)
	tbl.State().ToggleSort(cols, "name")
	require.Equal(t, SortDesc, tbl.State().SortDir)
	tbl.State().ToggleSort(cols, "name")
	require.Equal(t, SortNone, tbl.State().SortDir)
	require.Empty(t, tbl.State().SortBy)

	require.Equal(t, rows, tbl.Matching(rows))
}

func TestPaginate_CoversExactlyOnce(t *testing.T) {
	t.Parallel()

	rows := make([]testRow, 0, 23)
	for i := 1; i <= 23; i++ {
		rows = append(rows, testRow{ID: i})
	}

	const pageSize = 5
	pages := PageCount(len(rows), pageSize)
	require.Equal(t, 5, pages)

	var rebuilt []testRow
	for p := 1; p <= pages; p++ {
		rebuilt = append(rebuilt, Paginate(rows, p, pageSize)...)
	}
	require.Equal(t, rows, rebuilt)

	require.Empty(t, Paginate(rows, pages+1, pageSize))
	require.Zero(t, PageCount(0, pageSize))
}

func TestToggleSort_ResetsPage(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	s := NewViewState(cols, 2)
	s.Page = 3
	s.ToggleSort(cols, "name")
	require.Equal(t, 1, s.Page)

	s.Page = 3
	s.SetSearch("alp")
	require.Equal(t, 1, s.Page)
}

func TestSelectAllMatching_CoversFilteredSetNotPage(t *testing.T) {
	t.Parallel()

	cols := testColumns()
	tbl := New(cols, testValue, testID, WithPageSize[testRow](1))
	rows := testRows()

	tbl.State().SetSearch("a")
	matching := tbl.Matching(rows)
	require.Greater(t, len(matching), 1)

	tbl.SelectAllMatching(rows, true)
	require.Len(t, tbl.State().SelectedIDs(), len(matching))

	tbl.SelectAllMatching(rows, false)
	require.Empty(t, tbl.State().SelectedIDs())
}
