package nodefactory

import (
	"io/ioutil"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
	"github.com/src-d/nodefactory/internal/astlib"
	"github.com/stretchr/testify/require"
)

func quietLogger() logrus.FieldLogger {
	l := logrus.New()
	l.Out = ioutil.Discard
	return l
}

func load(t *testing.T, version string) interface{} {
	t.Helper()
	lib, err := astlib.Load(version)
	require.NoError(t, err)
	return lib
}

func facadeFor(t *testing.T, version string) Factory {
	t.Helper()
	f, err := BuildFacade(load(t, version), WithLogger(quietLogger()))
	require.NoError(t, err)
	return f
}

func forEachVersion(t *testing.T, fn func(t *testing.T, version string)) {
	for _, v := range astlib.Versions() {
		v := v
		t.Run(v, func(t *testing.T) { fn(t, v) })
	}
}

// latest prints every kind, whatever generation built the tree.
var latest = astlib.NewPrinter(nil, astlib.PrinterOptions{})

func constStatement(f Factory) *ast.Node {
	decl := f.CreateVariableDeclaration(
		f.CreateIdentifier("answer"),
		nil,
		f.CreateKeywordTypeNode(ast.NumberKeyword),
		f.CreateNumericLiteral("42"),
	)

	return f.CreateVariableStatement(
		[]*ast.Node{f.CreateModifier(ast.ExportKeyword)},
		f.CreateVariableDeclarationList([]*ast.Node{decl}, ast.FlagConst),
	)
}

func staticBlockClass(f Factory) *ast.Node {
	return f.CreateClassDeclaration(
		nil,
		f.CreateIdentifier("Registry"),
		nil,
		nil,
		[]*ast.Node{f.CreateClassStaticBlockDeclaration(f.CreateBlock(nil, false))},
	)
}

// primitivesOnly exposes nothing but the operations synthesized nodes are
// built on.
type primitivesOnly struct{}

func (primitivesOnly) CreateIdentifier(text string) *ast.Node {
	n := ast.NewNode(ast.Identifier)
	n.Text = text
	return n
}

func (primitivesOnly) CreateEmptyStatement() *ast.Node {
	return ast.NewNode(ast.EmptyStatement)
}

// brokenUpdate panics while being probed.
type brokenUpdate struct{ primitivesOnly }

func (brokenUpdate) CreateBlock(statements []*ast.Node, multiLine bool) *ast.Node {
	return ast.NewNode(ast.Block).Set(ast.FieldStatements, statements)
}

func (brokenUpdate) UpdateBlock(node *ast.Node, statements []*ast.Node) *ast.Node {
	panic("update not implemented")
}

// wrapped exposes its operations through a Factory method, like modern
// generations do.
type wrapped struct{ lib interface{} }

func (w wrapped) Factory() interface{} { return w.lib }
