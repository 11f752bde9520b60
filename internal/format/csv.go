package format

import (
	"encoding/csv"
	"io"
)

// CSVFormat writes the header and every row as CSV records. Nil values are
// empty fields.
type CSVFormat struct {
	columns
	w *csv.Writer
}

func NewCSVFormat(w io.Writer) *CSVFormat {
	return &CSVFormat{w: csv.NewWriter(w)}
}

func (f *CSVFormat) WriteHeader(headers []string) error {
	f.columns = headers
	return f.w.Write(headers)
}

func (f *CSVFormat) Write(line []interface{}) error {
	r, err := f.row(line)
	if err != nil {
		return err
	}
	return f.w.Write(r.cells(""))
}

func (f *CSVFormat) Close() error {
	f.w.Flush()
	return f.w.Error()
}
