package nodefactory

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
)

var (
	nodeType  = reflect.TypeOf((*ast.Node)(nil))
	nodesType = reflect.TypeOf([]*ast.Node(nil))
	boolType  = reflect.TypeOf(false)
	errorType = reflect.TypeOf((*error)(nil)).Elem()
)

// instance is the reflected construction object of a library.
type instance struct {
	value reflect.Value
}

func (i instance) method(name string) (reflect.Value, bool) {
	m := i.value.MethodByName(name)
	return m, m.IsValid()
}

func (i instance) has(name string) bool {
	_, ok := i.method(name)
	return ok
}

// numIn returns the number of parameters of a method, or -1 when the
// method does not exist.
func (i instance) numIn(name string) int {
	m, ok := i.method(name)
	if !ok {
		return -1
	}
	return m.Type().NumIn()
}

// in returns the type of a method parameter. Negative positions count from
// the end.
func (i instance) in(name string, pos int) reflect.Type {
	m, ok := i.method(name)
	if !ok {
		return nil
	}

	t := m.Type()
	if pos < 0 {
		pos += t.NumIn()
	}
	if pos < 0 || pos >= t.NumIn() {
		return nil
	}
	return t.In(pos)
}

// arity reports whether a method takes n parameters.
func (i instance) arity(name string, n int) bool {
	return i.numIn(name) == n
}

// arityWithList reports whether a method takes n parameters and a node list
// at the given position.
func (i instance) arityWithList(name string, n, pos int) bool {
	return i.arity(name, n) && i.in(name, pos) == nodesType
}

// call invokes a method with plain values and returns the node it builds.
func (i instance) call(name string, args ...interface{}) *ast.Node {
	m, ok := i.method(name)
	if !ok {
		return nil
	}

	in := make([]reflect.Value, len(args))
	for j, a := range args {
		in[j] = reflect.ValueOf(a)
	}

	n, _ := m.Call(in)[0].Interface().(*ast.Node)
	return n
}

type probe struct {
	name string
	flag func(*Capabilities) *bool
	run  func(instance) bool
}

// probes are independent: none of them reads another probe's result.
var probes = []probe{
	{
		"DecoratorsFirst",
		func(c *Capabilities) *bool { return &c.DecoratorsFirst },
		func(i instance) bool { return i.arity("CreateMethodDeclaration", 9) },
	},
	{
		"MissingPrivateIdentifier",
		func(c *Capabilities) *bool { return &c.MissingPrivateIdentifier },
		func(i instance) bool { return !i.has("CreatePrivateIdentifier") },
	},
	{
		"MissingStaticBlock",
		func(c *Capabilities) *bool { return &c.MissingStaticBlock },
		func(i instance) bool { return !i.has("CreateClassStaticBlockDeclaration") },
	},
	{
		"StaticBlockTakesModifiers",
		func(c *Capabilities) *bool { return &c.StaticBlockTakesModifiers },
		func(i instance) bool { return i.arity("CreateClassStaticBlockDeclaration", 3) },
	},
	{
		"MissingAssertClause",
		func(c *Capabilities) *bool { return &c.MissingAssertClause },
		func(i instance) bool { return !i.has("CreateAssertClause") },
	},
	{
		"MissingSatisfies",
		func(c *Capabilities) *bool { return &c.MissingSatisfies },
		func(i instance) bool { return !i.has("CreateSatisfiesExpression") },
	},
	{
		"SpecifiersLackTypeOnly",
		func(c *Capabilities) *bool { return &c.SpecifiersLackTypeOnly },
		func(i instance) bool { return i.arity("CreateImportSpecifier", 2) },
	},
	{
		"ImportEqualsLacksTypeOnly",
		func(c *Capabilities) *bool { return &c.ImportEqualsLacksTypeOnly },
		func(i instance) bool { return i.arityWithList("CreateImportEqualsDeclaration", 4, 1) },
	},
	{
		"ImportDeclLacksAssert",
		func(c *Capabilities) *bool { return &c.ImportDeclLacksAssert },
		func(i instance) bool { return i.arityWithList("CreateImportDeclaration", 4, 1) },
	},
	{
		"ExportDeclTypeOnlyLast",
		func(c *Capabilities) *bool { return &c.ExportDeclTypeOnlyLast },
		func(i instance) bool { return i.in("CreateExportDeclaration", -1) == boolType },
	},
	{
		"ExportDeclLacksAssert",
		func(c *Capabilities) *bool { return &c.ExportDeclLacksAssert },
		func(i instance) bool { return i.arityWithList("CreateExportDeclaration", 5, 1) },
	},
	{
		"ImportTypeLacksAssertions",
		func(c *Capabilities) *bool { return &c.ImportTypeLacksAssertions },
		func(i instance) bool { return i.arity("CreateImportTypeNode", 4) },
	},
	{
		"TypeParamLacksModifiers",
		func(c *Capabilities) *bool { return &c.TypeParamLacksModifiers },
		func(i instance) bool { return i.arity("CreateTypeParameterDeclaration", 3) },
	},
	{
		"VariableDeclLacksExclamation",
		func(c *Capabilities) *bool { return &c.VariableDeclLacksExclamation },
		func(i instance) bool { return i.arity("CreateVariableDeclaration", 3) },
	},
	{
		"ExpressionWithTypeArgsSwapped",
		func(c *Capabilities) *bool { return &c.ExpressionWithTypeArgsSwapped },
		func(i instance) bool { return i.in("CreateExpressionWithTypeArguments", 0) == nodesType },
	},
	{
		"ImportClauseTypeOnlyLast",
		func(c *Capabilities) *bool { return &c.ImportClauseTypeOnlyLast },
		func(i instance) bool {
			first := i.in("CreateImportClause", 0)
			return first != nil && first != boolType
		},
	},
	{
		"UpdateOmitsOriginal",
		func(c *Capabilities) *bool { return &c.UpdateOmitsOriginal },
		probeUpdateOmitsOriginal,
	},
}

// probeUpdateOmitsOriginal updates a block with one statement and checks
// whether the result links back to the block it replaces.
func probeUpdateOmitsOriginal(i instance) bool {
	if !i.has("CreateBlock") || !i.has("UpdateBlock") {
		return false
	}

	block := i.call("CreateBlock", []*ast.Node{}, false)
	stmt := i.call("CreateEmptyStatement")
	updated := i.call("UpdateBlock", block, []*ast.Node{stmt})
	return updated != nil && updated != block && updated.Original == nil
}

// primitives must exist in every library: synthesized nodes are built on
// top of them.
var primitives = []string{"CreateIdentifier", "CreateEmptyStatement"}

// construction returns the object the operations of lib live on and whether
// it was reached through a Factory method.
func construction(lib interface{}) (instance, bool) {
	v := reflect.ValueOf(lib)
	if m := v.MethodByName("Factory"); m.IsValid() {
		t := m.Type()
		if t.NumIn() == 0 && t.NumOut() == 1 {
			out := m.Call(nil)[0]
			if out.Kind() == reflect.Interface {
				out = out.Elem()
			}
			if out.IsValid() {
				return instance{out}, true
			}
		}
	}
	return instance{v}, false
}

// Probe classifies a library instance. It only inspects method presence
// and signatures, except for one block update used to detect whether
// updates keep track of the original node.
func Probe(lib interface{}) (Capabilities, error) {
	return probeLibrary(lib, logrus.StandardLogger())
}

func probeLibrary(lib interface{}, log logrus.FieldLogger) (caps Capabilities, err error) {
	if lib == nil {
		return caps, ErrNotALibrary.New(lib)
	}

	var inst instance
	var current = "HasFactory"
	defer func() {
		if r := recover(); r != nil {
			caps, err = Capabilities{}, ErrProbeFailed.New(current, r)
		}
	}()

	inst, caps.HasFactory = construction(lib)
	for _, name := range primitives {
		if !inst.has(name) {
			return Capabilities{}, ErrNotALibrary.New(lib)
		}
	}

	for _, p := range probes {
		current = p.name
		*p.flag(&caps) = p.run(inst)
	}

	log.WithFields(logrus.Fields{
		"library":    fmt.Sprintf("%T", lib),
		"canonical":  caps.Canonical(),
		"deviations": caps.Deviations(),
	}).Debug("library probed")

	return caps, nil
}
