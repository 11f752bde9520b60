package format

import (
	"io"

	yaml "gopkg.in/yaml.v2"
)

// YAMLFormat writes the rows as a sequence of mappings. Rows are buffered
// until Close.
type YAMLFormat struct {
	columns
	w    io.Writer
	rows []yaml.MapSlice
}

func NewYAMLFormat(w io.Writer) *YAMLFormat {
	return &YAMLFormat{w: w}
}

func (f *YAMLFormat) Write(line []interface{}) error {
	r, err := f.row(line)
	if err != nil {
		return err
	}

	f.rows = append(f.rows, r.items())
	return nil
}

func (f *YAMLFormat) Close() error {
	out, err := yaml.Marshal(f.rows)
	if err != nil {
		return err
	}

	_, err = f.w.Write(out)
	return err
}
