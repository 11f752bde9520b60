// Package format writes reports as rows under a header, in one of several
// output formats.
package format

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"sort"

	errors "gopkg.in/src-d/go-errors.v1"
	yaml "gopkg.in/yaml.v2"
)

var (
	// ErrUnsupportedFormat is returned when no writer exists for a format id.
	ErrUnsupportedFormat = errors.NewKind("format not supported: %v")
	// ErrRowWidth is returned when a row does not hold one value per column.
	ErrRowWidth = errors.NewKind("row has %d values for %d columns")
)

// Format writes a report. WriteHeader is called once, before any row.
type Format interface {
	WriteHeader(headers []string) error
	Write(line []interface{}) error
	Close() error
}

var formats = map[string]func(io.Writer) Format{
	"pretty": func(w io.Writer) Format { return NewPrettyFormat(w) },
	"csv":    func(w io.Writer) Format { return NewCSVFormat(w) },
	"json":   func(w io.Writer) Format { return NewJSONFormat(w) },
	"yaml":   func(w io.Writer) Format { return NewYAMLFormat(w) },
}

func NewFormat(id string, w io.Writer) (Format, error) {
	fn, ok := formats[id]
	if !ok {
		return nil, ErrUnsupportedFormat.New(id)
	}
	return fn(w), nil
}

// Names returns the ids of the supported formats.
func Names() []string {
	var names = make([]string, 0, len(formats))
	for id := range formats {
		names = append(names, id)
	}
	sort.Strings(names)
	return names
}

// columns is the header of a report. Writers embed it to key their rows.
type columns []string

func (c *columns) WriteHeader(headers []string) error {
	*c = headers
	return nil
}

func (c columns) row(line []interface{}) (row, error) {
	if len(line) != len(c) {
		return row{}, ErrRowWidth.New(len(line), len(c))
	}
	return row{keys: c, values: line}, nil
}

// row is a line of a report keyed by its columns.
type row struct {
	keys   columns
	values []interface{}
}

// cells renders every value as text, nil values as missing.
func (r row) cells(missing string) []string {
	out := make([]string, len(r.values))
	for i, v := range r.values {
		if v == nil {
			out[i] = missing
			continue
		}
		out[i] = text(v)
	}
	return out
}

// items pairs every value with its column, in column order.
func (r row) items() yaml.MapSlice {
	out := make(yaml.MapSlice, len(r.keys))
	for i, k := range r.keys {
		out[i] = yaml.MapItem{Key: k, Value: scalar(r.values[i])}
	}
	return out
}

// MarshalJSON writes the row as an object whose keys keep the column order.
func (r row) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, item := range r.items() {
		if i > 0 {
			buf.WriteByte(',')
		}

		k, err := json.Marshal(item.Key)
		if err != nil {
			return nil, err
		}

		v, err := json.Marshal(item.Value)
		if err != nil {
			return nil, err
		}

		buf.Write(k)
		buf.WriteByte(':')
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}

// scalar keeps booleans and numbers as they are and turns anything else into
// its text.
func scalar(v interface{}) interface{} {
	switch v.(type) {
	case nil, bool, int, int64, uint, uint64, float64:
		return v
	default:
		return text(v)
	}
}

func text(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return ""
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}
