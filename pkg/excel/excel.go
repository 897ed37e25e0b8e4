// Package excel renders DataSources into XLSX workbooks via excelize.
package excel

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"github.com/xuri/excelize/v2"
)

const defaultSheetName = "Sheet1"

// Excel limits sheet names to 31 characters.
func truncateSheetName(name string) string {
	if name == "" {
		return defaultSheetName
	}
	if len(name) > 31 {
		return name[:31]
	}
	return name
}

type ExportOptions struct {
	IncludeHeaders bool
	DateFormat     string
}

func DefaultExportOptions() ExportOptions {
	return ExportOptions{
		IncludeHeaders: true,
		DateFormat:     "2006-01-02 15:04",
	}
}

type StyleOptions struct {
	HeaderBold   bool
	FreezeHeader bool
}

func DefaultStyleOptions() StyleOptions {
	return StyleOptions{
		HeaderBold:   true,
		FreezeHeader: true,
	}
}

type Exporter struct {
	exportOpts ExportOptions
	styleOpts  StyleOptions
}

func NewExporter(exportOpts ExportOptions, styleOpts StyleOptions) *Exporter {
	return &Exporter{
		exportOpts: exportOpts,
		styleOpts:  styleOpts,
	}
}

// Export writes the data source into a new workbook and returns the encoded
// file. The header row is written after the data pass because some sources
// only learn their column names while iterating.
func (e *Exporter) Export(ctx context.Context, ds DataSource) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := truncateSheetName(ds.SheetName())
	if sheet != defaultSheetName {
		if err := f.SetSheetName(defaultSheetName, sheet); err != nil {
			return nil, errors.Wrap(err, "failed to rename sheet")
		}
	}

	rowIdx := 1
	if e.exportOpts.IncludeHeaders {
		rowIdx = 2
	}

	err := ds.Rows(ctx, func(row []any) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		for colIdx, value := range row {
			cell, err := excelize.CoordinatesToCellName(colIdx+1, rowIdx)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheet, cell, e.normalize(value)); err != nil {
				return err
			}
		}
		rowIdx++
		return nil
	})
	if err != nil {
		return nil, err
	}

	if e.exportOpts.IncludeHeaders {
		if err := e.writeHeaders(f, sheet, ds.Headers()); err != nil {
			return nil, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, errors.Wrap(err, "failed to encode workbook")
	}
	return buf.Bytes(), nil
}

func (e *Exporter) writeHeaders(f *excelize.File, sheet string, headers []string) error {
	for colIdx, header := range headers {
		cell, err := excelize.CoordinatesToCellName(colIdx+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheet, cell, header); err != nil {
			return err
		}
	}

	if e.styleOpts.HeaderBold && len(headers) > 0 {
		styleID, err := f.NewStyle(&excelize.Style{
			Font: &excelize.Font{Bold: true},
		})
		if err != nil {
			return errors.Wrap(err, "failed to create header style")
		}
		last, err := excelize.CoordinatesToCellName(len(headers), 1)
		if err != nil {
			return err
		}
		if err := f.SetCellStyle(sheet, "A1", last, styleID); err != nil {
			return errors.Wrap(err, "failed to style header row")
		}
	}

	if e.styleOpts.FreezeHeader {
		if err := f.SetPanes(sheet, &excelize.Panes{
			Freeze:      true,
			YSplit:      1,
			TopLeftCell: "A2",
			ActivePane:  "bottomLeft",
		}); err != nil {
			return errors.Wrap(err, "failed to freeze header row")
		}
	}
	return nil
}

func (e *Exporter) normalize(value any) any {
	if t, ok := value.(time.Time); ok && e.exportOpts.DateFormat != "" {
		return t.Format(e.exportOpts.DateFormat)
	}
	return value
}
