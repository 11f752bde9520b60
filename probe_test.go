package nodefactory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestProbeGenerations(t *testing.T) {
	testCases := []struct {
		version    string
		hasFactory bool
		deviations []string
	}{
		{"3.9", false, []string{
			"DecoratorsFirst",
			"MissingPrivateIdentifier",
			"MissingStaticBlock",
			"MissingAssertClause",
			"MissingSatisfies",
			"SpecifiersLackTypeOnly",
			"ImportEqualsLacksTypeOnly",
			"ImportDeclLacksAssert",
			"ExportDeclTypeOnlyLast",
			"ExportDeclLacksAssert",
			"ImportTypeLacksAssertions",
			"TypeParamLacksModifiers",
			"VariableDeclLacksExclamation",
			"ExpressionWithTypeArgsSwapped",
			"ImportClauseTypeOnlyLast",
			"UpdateOmitsOriginal",
		}},
		{"4.0", true, []string{
			"DecoratorsFirst",
			"MissingStaticBlock",
			"MissingAssertClause",
			"MissingSatisfies",
			"SpecifiersLackTypeOnly",
			"ImportEqualsLacksTypeOnly",
			"ImportDeclLacksAssert",
			"ExportDeclLacksAssert",
			"ImportTypeLacksAssertions",
			"TypeParamLacksModifiers",
		}},
		{"4.4", true, []string{
			"DecoratorsFirst",
			"StaticBlockTakesModifiers",
			"MissingAssertClause",
			"MissingSatisfies",
			"SpecifiersLackTypeOnly",
			"ImportDeclLacksAssert",
			"ExportDeclLacksAssert",
			"ImportTypeLacksAssertions",
			"TypeParamLacksModifiers",
		}},
		{"4.5", true, []string{
			"DecoratorsFirst",
			"StaticBlockTakesModifiers",
			"MissingSatisfies",
			"TypeParamLacksModifiers",
		}},
		{"4.7", true, []string{
			"DecoratorsFirst",
			"StaticBlockTakesModifiers",
			"MissingSatisfies",
		}},
		{"4.8", true, []string{"MissingSatisfies"}},
		{"5.0", true, nil},
	}

	for _, tt := range testCases {
		t.Run(tt.version, func(t *testing.T) {
			require := require.New(t)

			caps, err := Probe(load(t, tt.version))
			require.NoError(err)
			require.Equal(tt.hasFactory, caps.HasFactory)
			require.Equal(tt.deviations, caps.Deviations())
			require.Equal(tt.deviations == nil, caps.Canonical())
		})
	}
}

func TestProbeFlagsOrder(t *testing.T) {
	require := require.New(t)

	caps, err := Probe(load(t, "4.8"))
	require.NoError(err)

	flags := caps.Flags()
	require.Len(flags, len(probes)+1)
	require.Equal(Flag{"HasFactory", true}, flags[0])
	require.Equal(Flag{"UpdateOmitsOriginal", false}, flags[len(flags)-1])
}

func TestProbeIsRepeatable(t *testing.T) {
	require := require.New(t)

	lib := load(t, "4.4")
	first, err := Probe(lib)
	require.NoError(err)

	second, err := Probe(lib)
	require.NoError(err)
	require.Equal(first, second)
}

func TestProbeThroughFactoryMethod(t *testing.T) {
	require := require.New(t)

	caps, err := Probe(wrapped{primitivesOnly{}})
	require.NoError(err)
	require.True(caps.HasFactory)
	require.True(caps.MissingPrivateIdentifier)
	require.False(caps.DecoratorsFirst)
	require.False(caps.UpdateOmitsOriginal)
}

func TestProbeNotALibrary(t *testing.T) {
	testCases := []struct {
		name string
		lib  interface{}
	}{
		{"nil", nil},
		{"int", 42},
		{"empty struct", struct{}{}},
		{"factory of nothing", wrapped{struct{}{}}},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require := require.New(t)
			_, err := Probe(tt.lib)
			require.True(ErrNotALibrary.Is(err), "unexpected error: %v", err)
		})
	}
}

func TestProbeFailed(t *testing.T) {
	require := require.New(t)

	caps, err := Probe(brokenUpdate{})
	require.True(ErrProbeFailed.Is(err), "unexpected error: %v", err)
	require.Contains(err.Error(), "UpdateOmitsOriginal")
	require.Equal(Capabilities{}, caps)

	_, err = BuildFacade(brokenUpdate{}, WithLogger(quietLogger()))
	require.True(ErrProbeFailed.Is(err))
}
