package format

import (
	"encoding/json"
	"io"
)

// JSONFormat writes every row as an object on its own line.
type JSONFormat struct {
	columns
	enc *json.Encoder
}

func NewJSONFormat(w io.Writer) *JSONFormat {
	return &JSONFormat{enc: json.NewEncoder(w)}
}

func (f *JSONFormat) Write(line []interface{}) error {
	r, err := f.row(line)
	if err != nil {
		return err
	}
	return f.enc.Encode(r)
}

func (f *JSONFormat) Close() error { return nil }
