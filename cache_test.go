package nodefactory

import (
	"os"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCache(t *testing.T) {
	require := require.New(t)

	c, err := NewCacheSize(2, WithLogger(quietLogger()))
	require.NoError(err)

	lib := load(t, "4.0")
	first, err := c.Get(lib)
	require.NoError(err)

	second, err := c.Get(lib)
	require.NoError(err)
	require.True(first == second)
	require.Equal(1, c.Len())

	other, err := c.Get(load(t, "4.0"))
	require.NoError(err)
	require.False(first == other)
	require.Equal(2, c.Len())

	_, err = c.Get(load(t, "4.4"))
	require.NoError(err)
	require.Equal(2, c.Len())

	c.Purge()
	require.Equal(0, c.Len())

	third, err := c.Get(lib)
	require.NoError(err)
	require.False(first == third)
}

func TestCacheErrors(t *testing.T) {
	require := require.New(t)

	c, err := NewCacheSize(4, WithLogger(quietLogger()))
	require.NoError(err)

	_, err = c.Get(nil)
	require.True(ErrNotALibrary.Is(err))

	_, err = c.Get(unhashable{})
	require.True(ErrMissingOperation.Is(err))
	require.Equal(0, c.Len())

	_, err = NewCacheSize(0)
	require.Error(err)
}

func TestCacheSizeFromEnv(t *testing.T) {
	defer os.Unsetenv(facadeCacheSizeKey)

	testCases := []struct {
		value    string
		expected int
	}{
		{"", defaultFacadeCacheSize},
		{"2", 2},
		{"10", 10},
		{"1", defaultFacadeCacheSize},
		{"0", defaultFacadeCacheSize},
		{"-3", defaultFacadeCacheSize},
		{"many", defaultFacadeCacheSize},
	}

	for _, tt := range testCases {
		t.Run(tt.value, func(t *testing.T) {
			require := require.New(t)
			require.NoError(os.Setenv(facadeCacheSizeKey, tt.value))
			require.Equal(tt.expected, facadeCacheSize())
			require.NotPanics(func() { NewCache() })
		})
	}
}

func TestCacheSmallestSize(t *testing.T) {
	require := require.New(t)

	defer os.Unsetenv(facadeCacheSizeKey)
	require.NoError(os.Setenv(facadeCacheSizeKey, "2"))

	c := NewCache(WithLogger(quietLogger()))
	for _, v := range []string{"4.0", "4.4", "4.5"} {
		_, err := c.Get(load(t, v))
		require.NoError(err)
	}
	require.Equal(2, c.Len())

	_, err := NewCacheSize(1)
	require.Error(err)
}

// unhashable cannot be used as a map key.
type unhashable struct {
	primitivesOnly
	versions []string
}
