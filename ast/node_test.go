package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func ident(text string) *Node {
	n := NewNode(Identifier)
	n.Text = text
	return n
}

func TestNodeFields(t *testing.T) {
	require := require.New(t)

	n := NewNode(Parameter)
	n.Set(FieldModifiers, []*Node(nil)).
		Set(FieldName, ident("x")).
		Set(FieldType, (*Node)(nil))

	require.Equal([]string{FieldModifiers, FieldName, FieldType}, n.Fields())
	require.True(n.Has(FieldType))
	require.False(n.Has(FieldInitializer))
	require.Nil(n.Child(FieldType))
	require.Equal("x", n.Child(FieldName).Text)

	n.Set(FieldName, ident("y"))
	require.Equal("y", n.Child(FieldName).Text)
	require.Len(n.Fields(), 3)

	require.Panics(func() { n.Set(FieldName, "z") })
}

func TestSameNodes(t *testing.T) {
	a := []*Node{ident("a"), ident("b")}
	b := []*Node{a[0], a[1]}

	testCases := []struct {
		name     string
		x, y     []*Node
		expected bool
	}{
		{"both nil", nil, nil, true},
		{"nil and empty", nil, []*Node{}, false},
		{"same slice", a, a, true},
		{"same elements, other array", a, b, false},
		{"prefix", a[:1], a, false},
		{"empty lists", []*Node{}, []*Node{}, true},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, SameNodes(tt.x, tt.y))
		})
	}
}

func TestSameValue(t *testing.T) {
	require := require.New(t)

	x := ident("x")
	require.True(SameValue(x, x))
	require.False(SameValue(x, ident("x")))
	require.True(SameValue(nil, (*Node)(nil)))
	require.True(SameValue((*Node)(nil), nil))
	require.True(SameValue([]*Node(nil), nil))
	require.True(SameValue(true, true))
	require.False(SameValue(true, false))
	require.False(SameValue(x, []*Node{x}))
}

func TestWalk(t *testing.T) {
	require := require.New(t)

	body := NewNode(Block).Set(FieldStatements, []*Node{
		NewNode(EmptyStatement),
		NewNode(ReturnStatement).Set(FieldExpression, ident("x")),
	})
	original := NewNode(Block)
	body.Original = original

	var kinds []Kind
	Walk(body, func(n *Node) bool {
		kinds = append(kinds, n.Kind)
		return true
	})

	require.Equal([]Kind{Block, EmptyStatement, ReturnStatement, Identifier}, kinds)
	require.Equal(1, Count(body, Identifier))
	require.Equal(4, Count(body))

	var visited int
	Walk(body, func(n *Node) bool {
		visited++
		return n.Kind != ReturnStatement
	})
	require.Equal(3, visited)

	require.False(ForEachChild(body, func(*Node) bool { return false }))
	require.True(ForEachChild(nil, func(*Node) bool { return false }))
}

func TestKindString(t *testing.T) {
	require := require.New(t)

	require.Equal("ClassStaticBlockDeclaration", ClassStaticBlockDeclaration.String())
	require.Equal("Kind(-1)", Kind(-1).String())
	require.Equal("static", StaticKeyword.TokenText())
	require.True(StaticKeyword.IsModifier())
	require.False(Decorator.IsModifier())
	require.True(NumberKeyword.IsKeywordType())
	require.True(ExternalModuleReference.IsModuleReference())
	require.False(ExternalModuleReference.IsEntityName())
}

func TestParseKind(t *testing.T) {
	require := require.New(t)

	k, ok := ParseKind("InKeyword")
	require.True(ok)
	require.Equal(InKeyword, k)

	_, ok = ParseKind("in")
	require.False(ok)
}

func TestTransformFlagsString(t *testing.T) {
	require := require.New(t)

	require.Equal("None", TransformNone.String())
	require.Equal("ES2022|ClassFields", (ContainsClassFields | ContainsES2022).String())
	require.True((ContainsClassFields | ContainsES2022).Has(ContainsClassFields))
	require.False(ContainsClassFields.Has(TransformNone))
}
