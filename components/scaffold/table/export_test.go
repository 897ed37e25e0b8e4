package table

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportColumns() []Column {
	return []Column{
		NewColumn("id", "id"),
		NewColumn("name", "name"),
	}
}

func exportRows() []testRow {
	return []testRow{
		{ID: 1, Name: "Alpha"},
		{ID: 2, Name: "Beta"},
	}
}

func TestExportCSV_Fidelity(t *testing.T) {
	t.Parallel()

	tbl := New(exportColumns(), testValue, testID, WithPageSize[testRow](1))
	// page size 1: export must still cover the full matching set
	var buf bytes.Buffer
	require.NoError(t, tbl.ExportCSV(&buf, exportRows()))

	require.Equal(t, "id,name\n1,Alpha\n2,Beta\n", buf.String())
}

func TestExportCSV_VisibleColumnsOnly(t *testing.T) {
	t.Parallel()

	cols := exportColumns()
	tbl := New(cols, testValue, testID)
	tbl.State().SetHidden(cols, "id", true)

	var buf bytes.Buffer
	require.NoError(t, tbl.ExportCSV(&buf, exportRows()))
	require.Equal(t, "name\nAlpha\nBeta\n", buf.String())
}

func TestExportCSV_ReflectsSearchAndSort(t *testing.T) {
	t.Parallel()

	cols := exportColumns()
	tbl := New(cols, testValue, testID)
	tbl.State().SetSearch("a")
	tbl.State().ToggleSort(cols, "name")
	tbl.State().ToggleSort(cols, "name") // descending

	var buf bytes.Buffer
	require.NoError(t, tbl.ExportCSV(&buf, exportRows()))
	require.Equal(t, "id,name\n2,Beta\n1,Alpha\n", buf.String())
}

func TestExportXLSX_MatchesCSVShape(t *testing.T) {
	t.Parallel()

	tbl := New(exportColumns(), testValue, testID)
	data, err := tbl.ExportXLSX(context.Background(), exportRows(), "Assets")
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer func() { _ = f.Close() }()

	rows, err := f.GetRows("Assets")
	require.NoError(t, err)
	require.Equal(t, [][]string{
		{"id", "name"},
		{"1", "Alpha"},
		{"2", "Beta"},
	}, rows)
}
