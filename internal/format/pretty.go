package format

import (
	"io"

	"github.com/olekukonko/tablewriter"
)

// PrettyFormat draws the report as a table once it is closed. Nil values are
// shown as a dash.
type PrettyFormat struct {
	columns
	tw *tablewriter.Table
}

func NewPrettyFormat(w io.Writer) *PrettyFormat {
	tw := tablewriter.NewWriter(w)
	tw.SetAutoWrapText(false)
	return &PrettyFormat{tw: tw}
}

func (f *PrettyFormat) WriteHeader(headers []string) error {
	f.columns = headers
	f.tw.SetHeader(headers)
	return nil
}

func (f *PrettyFormat) Write(line []interface{}) error {
	r, err := f.row(line)
	if err != nil {
		return err
	}

	f.tw.Append(r.cells("-"))
	return nil
}

func (f *PrettyFormat) Close() error {
	f.tw.Render()
	return nil
}
