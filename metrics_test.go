package nodefactory

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/src-d/nodefactory/ast"
	"github.com/stretchr/testify/require"
)

func TestMetrics(t *testing.T) {
	require := require.New(t)

	built := facadesBuilt.WithLabelValues("facade")
	shims := shimmedCalls.WithLabelValues("CreateClassDeclaration", ShapeDecorators.String())
	blocks := synthesizedNodes.WithLabelValues(ast.ClassStaticBlockDeclaration.String())

	beforeBuilt := testutil.ToFloat64(built)
	beforeShims := testutil.ToFloat64(shims)
	beforeBlocks := testutil.ToFloat64(blocks)

	f := facadeFor(t, "4.0")
	staticBlockClass(f)

	require.Equal(beforeBuilt+1, testutil.ToFloat64(built))
	require.Equal(beforeShims+1, testutil.ToFloat64(shims))
	require.Equal(beforeBlocks+1, testutil.ToFloat64(blocks))

	library := facadesBuilt.WithLabelValues("library")
	before := testutil.ToFloat64(library)
	facadeFor(t, "5.0")
	require.Equal(before+1, testutil.ToFloat64(library))
}

func TestCollectorsRegister(t *testing.T) {
	require := require.New(t)

	facadeFor(t, "3.9")

	r := prometheus.NewPedanticRegistry()
	for _, c := range Collectors() {
		require.NoError(r.Register(c))
	}

	families, err := r.Gather()
	require.NoError(err)

	var names []string
	for _, f := range families {
		names = append(names, f.GetName())
	}
	require.Contains(names, "nodefactory_facades_built_total")
}
