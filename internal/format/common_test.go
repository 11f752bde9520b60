package format

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestNewFormat_InvalidId(t *testing.T) {
	require := require.New(t)

	f, err := NewFormat("INVALID", bytes.NewBuffer(nil))
	require.Nil(f)
	require.True(ErrUnsupportedFormat.Is(err))
}

func TestNames(t *testing.T) {
	require.Equal(t, []string{"csv", "json", "pretty", "yaml"}, Names())
}

func testNewFormat(id string, t *testing.T) {
	require := require.New(t)

	w := bytes.NewBuffer(nil)
	f, err := NewFormat(id, w)
	require.Nil(err)
	require.NotNil(f)
}

func testFormat(fs *formatSpec, writer *bytes.Buffer, t *testing.T) {
	require := require.New(t)

	err := fs.Format.WriteHeader(fs.Headers)
	require.Nil(err)
	for _, l := range fs.Lines {
		err := fs.Format.Write(l)
		require.Nil(err)
	}
	err = fs.Format.Close()
	require.Nil(err)

	require.Equal(fs.Result, writer.String())

	writer.Reset()
}

type formatSpec struct {
	Headers []string
	Lines   [][]interface{}
	Format  Format
	Result  string
}

type mode int

func (mode) String() string { return "shimmed" }

func TestRowWidth(t *testing.T) {
	for _, id := range Names() {
		t.Run(id, func(t *testing.T) {
			require := require.New(t)

			f, err := NewFormat(id, bytes.NewBuffer(nil))
			require.NoError(err)
			require.NoError(f.WriteHeader([]string{"a", "b"}))

			err = f.Write([]interface{}{"a1"})
			require.True(ErrRowWidth.Is(err), "unexpected error: %v", err)

			err = f.Write([]interface{}{"a1", "b1", "c1"})
			require.True(ErrRowWidth.Is(err), "unexpected error: %v", err)

			require.NoError(f.Write([]interface{}{"a1", nil}))
			require.NoError(f.Close())
		})
	}
}

func TestRowCells(t *testing.T) {
	require := require.New(t)

	r, err := columns{"a", "b", "c", "d"}.row([]interface{}{"x", nil, mode(0), 2})
	require.NoError(err)
	require.Equal([]string{"x", "-", "shimmed", "2"}, r.cells("-"))

	items := r.items()
	require.Len(items, 4)
	require.Equal("b", items[1].Key)
	require.Nil(items[1].Value)
	require.Equal("shimmed", items[2].Value)
	require.Equal(2, items[3].Value)
}
