package excel

import (
	"context"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/pkg/errors"
)

// DataSource supplies tabular data to the exporter row by row. Headers may be
// resolved lazily: the exporter reads them only after Rows has completed.
type DataSource interface {
	SheetName() string
	Headers() []string
	// Rows invokes fn for every data row in order. fn returning an error
	// aborts the iteration.
	Rows(ctx context.Context, fn func(row []any) error) error
}

// SliceDataSource exports an in-memory row set, e.g. the filtered output of a
// table instance.
type SliceDataSource struct {
	sheetName string
	headers   []string
	rows      [][]any
}

func NewSliceDataSource(headers []string, rows [][]any) *SliceDataSource {
	return &SliceDataSource{
		sheetName: defaultSheetName,
		headers:   headers,
		rows:      rows,
	}
}

func (s *SliceDataSource) WithSheetName(name string) *SliceDataSource {
	s.sheetName = truncateSheetName(name)
	return s
}

func (s *SliceDataSource) SheetName() string {
	return s.sheetName
}

func (s *SliceDataSource) Headers() []string {
	return s.headers
}

func (s *SliceDataSource) Rows(_ context.Context, fn func(row []any) error) error {
	for _, row := range s.rows {
		if err := fn(row); err != nil {
			return err
		}
	}
	return nil
}

// PgxDataSource streams a SQL result set without materialising it, for the
// server-side export endpoints that bypass the in-memory table engine.
type PgxDataSource struct {
	pool      *pgxpool.Pool
	sheetName string
	query     string
	args      []any
	headers   []string
}

var _ DataSource = (*PgxDataSource)(nil)

func NewPgxDataSource(pool *pgxpool.Pool, query string, args ...any) *PgxDataSource {
	return &PgxDataSource{
		pool:      pool,
		sheetName: defaultSheetName,
		query:     query,
		args:      args,
	}
}

func (s *PgxDataSource) WithSheetName(name string) *PgxDataSource {
	s.sheetName = truncateSheetName(name)
	return s
}

func (s *PgxDataSource) SheetName() string {
	return s.sheetName
}

// Headers returns the column names of the export query. Populated by Rows.
func (s *PgxDataSource) Headers() []string {
	return s.headers
}

func (s *PgxDataSource) Rows(ctx context.Context, fn func(row []any) error) error {
	rows, err := s.pool.Query(ctx, s.query, s.args...)
	if err != nil {
		return errors.Wrap(err, "failed to run export query")
	}
	defer rows.Close()

	fields := rows.FieldDescriptions()
	s.headers = make([]string, len(fields))
	for i, f := range fields {
		s.headers[i] = f.Name
	}

	for rows.Next() {
		values, err := rows.Values()
		if err != nil {
			return errors.Wrap(err, "failed to read export row")
		}
		if err := fn(values); err != nil {
			return err
		}
	}
	return errors.Wrap(rows.Err(), "export query iteration failed")
}
