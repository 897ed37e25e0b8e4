package table

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/pkg/errors"

	"github.com/fmstack/fmstack/pkg/excel"
)

// ExportCSV writes the full matching (filtered/sorted, not paginated) set as
// CSV: visible columns only, labels as the header line, cell values using the
// same stringification as search.
func (t *Table[T]) ExportCSV(w io.Writer, rows []T) error {
	visible := t.VisibleColumns()
	cw := csv.NewWriter(w)

	header := make([]string, len(visible))
	for i, c := range visible {
		header[i] = c.Label()
	}
	if err := cw.Write(header); err != nil {
		return errors.Wrap(err, "failed to write CSV header")
	}

	for _, row := range t.Matching(rows) {
		record := make([]string, len(visible))
		for i, c := range visible {
			record[i] = Stringify(t.value(row, c.Key()))
		}
		if err := cw.Write(record); err != nil {
			return errors.Wrap(err, "failed to write CSV row")
		}
	}
	cw.Flush()
	return errors.Wrap(cw.Error(), "failed to flush CSV")
}

// ExportXLSX renders the same matching set as an XLSX workbook.
func (t *Table[T]) ExportXLSX(ctx context.Context, rows []T, sheetName string) ([]byte, error) {
	visible := t.VisibleColumns()

	headers := make([]string, len(visible))
	for i, c := range visible {
		headers[i] = c.Label()
	}

	matching := t.Matching(rows)
	data := make([][]any, 0, len(matching))
	for _, row := range matching {
		record := make([]any, len(visible))
		for i, c := range visible {
			record[i] = t.value(row, c.Key())
		}
		data = append(data, record)
	}

	ds := excel.NewSliceDataSource(headers, data).WithSheetName(sheetName)
	exporter := excel.NewExporter(excel.DefaultExportOptions(), excel.DefaultStyleOptions())
	return exporter.Export(ctx, ds)
}
