package astlib

import (
	"sort"

	"github.com/src-d/nodefactory/ast"
	errors "gopkg.in/src-d/go-errors.v1"
)

// ErrUnknownVersion is returned when Load is asked for a generation that
// does not exist.
var ErrUnknownVersion = errors.NewKind("unknown library version %q")

// legacy39 exposes its construction operations directly on the instance.
type legacy39 struct {
	commonOps
	splitOps
	legacyModuleOps
	legacyTypeParamOps

	c *core
}

func newLegacy39() *legacy39 {
	c := &core{trackOriginal: false}
	return &legacy39{
		commonOps:          commonOps{c},
		splitOps:           splitOps{c},
		legacyModuleOps:    legacyModuleOps{c},
		legacyTypeParamOps: legacyTypeParamOps{c},
		c:                  c,
	}
}

func (l *legacy39) CreateVariableDeclaration(name, typ, initializer *ast.Node) *ast.Node {
	return l.c.variableDeclaration(name, nil, typ, initializer)
}

func (l *legacy39) CreateExpressionWithTypeArguments(typeArguments []*ast.Node, expression *ast.Node) *ast.Node {
	return l.c.expressionWithTypeArguments(expression, typeArguments)
}

func (l *legacy39) CreateImportClause(name, namedBindings *ast.Node, isTypeOnly bool) *ast.Node {
	return l.c.importClause(isTypeOnly, name, namedBindings)
}

func (l *legacy39) CreateExportDeclaration(
	decorators, modifiers []*ast.Node,
	exportClause, moduleSpecifier *ast.Node,
	isTypeOnly bool,
) *ast.Node {
	return l.c.exportDeclaration(decorators, modifiers, isTypeOnly, exportClause, moduleSpecifier, nil)
}

type factory40 struct {
	commonOps
	modernOps
	splitOps
	legacyModuleOps
	legacyTypeParamOps

	c *core
}

func newFactory40() *factory40 {
	c := &core{trackOriginal: true}
	return &factory40{
		commonOps:          commonOps{c},
		modernOps:          modernOps{c},
		splitOps:           splitOps{c},
		legacyModuleOps:    legacyModuleOps{c},
		legacyTypeParamOps: legacyTypeParamOps{c},
		c:                  c,
	}
}

func (f *factory40) CreateExportDeclaration(
	decorators, modifiers []*ast.Node,
	isTypeOnly bool,
	exportClause, moduleSpecifier *ast.Node,
) *ast.Node {
	return f.c.exportDeclaration(decorators, modifiers, isTypeOnly, exportClause, moduleSpecifier, nil)
}

type factory44 struct {
	*factory40
}

func (f *factory44) CreateImportEqualsDeclaration(
	decorators, modifiers []*ast.Node,
	isTypeOnly bool,
	name, moduleReference *ast.Node,
) *ast.Node {
	return f.c.importEquals(decorators, modifiers, isTypeOnly, name, moduleReference)
}

func (f *factory44) CreateClassStaticBlockDeclaration(
	decorators, modifiers []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return f.c.staticBlock(decorators, modifiers, body)
}

func (f *factory44) UpdateClassStaticBlockDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return f.c.updateStaticBlock(node, decorators, modifiers, body)
}

type factory45 struct {
	*factory44
	assertOps
}

func (f *factory45) CreateImportDeclaration(
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.c.importDeclaration(decorators, modifiers, importClause, moduleSpecifier, assertClause)
}

func (f *factory45) UpdateImportDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.c.updateImportDeclaration(node, decorators, modifiers, importClause, moduleSpecifier, assertClause)
}

func (f *factory45) CreateExportDeclaration(
	decorators, modifiers []*ast.Node,
	isTypeOnly bool,
	exportClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.c.exportDeclaration(decorators, modifiers, isTypeOnly, exportClause, moduleSpecifier, assertClause)
}

type factory47 struct {
	*factory45
	typeParamOps
}

type factory48 struct {
	commonOps
	modernOps
	assertOps
	typeParamOps
	mergedOps
}

func newFactory48() *factory48 {
	c := &core{trackOriginal: true}
	return &factory48{
		commonOps:    commonOps{c},
		modernOps:    modernOps{c},
		assertOps:    assertOps{c},
		typeParamOps: typeParamOps{c},
		mergedOps:    mergedOps{c},
	}
}

type factory50 struct {
	*factory48
}

func (f *factory50) CreateSatisfiesExpression(expression, typ *ast.Node) *ast.Node {
	return f.mergedOps.c.satisfies(expression, typ)
}

func (f *factory50) UpdateSatisfiesExpression(node, expression, typ *ast.Node) *ast.Node {
	return f.mergedOps.c.updateSatisfies(node, expression, typ)
}

// Module is a loaded modern generation. Its construction operations live on
// the object returned by Factory.
type Module struct {
	version string
	factory interface{}
}

// Version returns the generation the module was loaded from.
func (m *Module) Version() string { return m.version }

// Factory returns the construction object.
func (m *Module) Factory() interface{} { return m.factory }

var generations = map[string]func() interface{}{
	"3.9": func() interface{} { return newLegacy39() },
	"4.0": func() interface{} {
		return &Module{"4.0", newFactory40()}
	},
	"4.4": func() interface{} {
		return &Module{"4.4", &factory44{newFactory40()}}
	},
	"4.5": func() interface{} {
		f := &factory44{newFactory40()}
		return &Module{"4.5", &factory45{f, assertOps{f.c}}}
	},
	"4.7": func() interface{} {
		f := &factory44{newFactory40()}
		return &Module{"4.7", &factory47{&factory45{f, assertOps{f.c}}, typeParamOps{f.c}}}
	},
	"4.8": func() interface{} {
		return &Module{"4.8", newFactory48()}
	},
	"5.0": func() interface{} {
		return &Module{"5.0", &factory50{newFactory48()}}
	},
}

// Load returns a fresh instance of the given generation. Generation 3.9 is
// returned as a bare instance; later generations are returned as a *Module.
func Load(version string) (interface{}, error) {
	load, ok := generations[version]
	if !ok {
		return nil, ErrUnknownVersion.New(version)
	}
	return load(), nil
}

// MustLoad is like Load but panics on unknown versions.
func MustLoad(version string) interface{} {
	lib, err := Load(version)
	if err != nil {
		panic(err)
	}
	return lib
}

// Versions returns every known generation, oldest first.
func Versions() []string {
	var versions = make([]string, 0, len(generations))
	for v := range generations {
		versions = append(versions, v)
	}
	sort.Strings(versions)
	return versions
}

// VersionOf returns the generation of a value returned by Load or of its
// construction object.
func VersionOf(lib interface{}) (string, bool) {
	switch lib := lib.(type) {
	case *Module:
		return lib.version, true
	case *legacy39:
		return "3.9", true
	case *factory40:
		return "4.0", true
	case *factory44:
		return "4.4", true
	case *factory45:
		return "4.5", true
	case *factory47:
		return "4.7", true
	case *factory48:
		return "4.8", true
	case *factory50:
		return "5.0", true
	}
	return "", false
}
