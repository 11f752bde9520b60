package nodefactory

import (
	"fmt"
	"strings"

	"github.com/src-d/nodefactory/ast"
)

// record holds the canonical arguments of one call, indexed like the
// operation's parameters.
type record struct {
	op     *operation
	values []interface{}
}

func newRecord(op *operation) record {
	values := make([]interface{}, len(op.params))
	for i, p := range op.params {
		values[i] = p.zero()
	}
	return record{op, values}
}

func (r record) get(name string) interface{} {
	if i := r.op.index(name); i >= 0 {
		return r.values[i]
	}
	return nil
}

// set assigns a canonical parameter. Names the operation does not take are
// ignored.
func (r record) set(name string, v interface{}) {
	if i := r.op.index(name); i >= 0 {
		r.values[i] = v
	}
}

func (r record) modifiers() []*ast.Node {
	l, _ := r.get(paramModifiers).([]*ast.Node)
	return l
}

// tag describes an argument for logs and errors.
func tag(v interface{}) string {
	switch v := v.(type) {
	case nil:
		return "nil"
	case *ast.Node:
		if v == nil {
			return "nil"
		}
		return v.Kind.String()
	case []*ast.Node:
		return fmt.Sprintf("list[%d]", len(v))
	case ast.Kind:
		return "kind:" + v.String()
	default:
		return fmt.Sprintf("%T", v)
	}
}

func tags(args []interface{}) string {
	out := make([]string, len(args))
	for i, a := range args {
		out[i] = tag(a)
	}
	return "(" + strings.Join(out, ", ") + ")"
}

// matches reports whether the arguments can be read with the convention.
// Positions past the end of args are absent and match anything.
func (op *operation) matches(c convention, args []interface{}) bool {
	if len(args) > len(c.params) {
		return false
	}

	for i, a := range args {
		p, ok := op.param(c.params[i])
		if !ok || !p.admits(a) {
			return false
		}
	}
	return true
}

// classify returns the shape of an argument tuple. Conventions taking exactly
// len(args) parameters are tried first, in declaration order, and then those
// that take more, with trailing arguments omitted. A position that could be
// read either way never decides on its own: the arguments that follow it do.
func classify(op *operation, args []interface{}) (Shape, error) {
	all := append([]convention{op.canonical()}, op.conventions...)

	for _, c := range all {
		if len(c.params) == len(args) && op.matches(c, args) {
			return c.shape, nil
		}
	}

	for _, c := range all {
		if len(c.params) > len(args) && op.matches(c, args) {
			return c.shape, nil
		}
	}

	return 0, ErrUnsupportedCallShape.New(op.name, tags(args))
}

// fromConvention reads an argument tuple written in the given convention
// into a canonical record. Decorators are merged in front of the modifiers;
// without decorators the modifiers list is kept as it was given.
func fromConvention(op *operation, c convention, args []interface{}) record {
	rec := newRecord(op)

	var decorators []*ast.Node
	for i, a := range args {
		name := c.params[i]
		if name == paramDecorators {
			decorators, _ = a.([]*ast.Node)
			continue
		}

		if a == nil || isNilNode(a) {
			p, _ := op.param(name)
			a = p.zero()
		}
		rec.set(name, a)
	}

	if len(decorators) > 0 {
		merged := make([]*ast.Node, 0, len(decorators)+len(rec.modifiers()))
		merged = append(merged, decorators...)
		merged = append(merged, rec.modifiers()...)
		rec.set(paramModifiers, merged)
	}

	return rec
}

func isNilNode(v interface{}) bool {
	n, ok := v.(*ast.Node)
	return ok && n == nil
}

// splitModifiers partitions a modifiers list into its decorators and the
// rest, keeping the relative order of each part. Empty parts are nil, and a
// list without decorators is returned as is.
func splitModifiers(modifiers []*ast.Node) (decorators, rest []*ast.Node) {
	var found bool
	for _, m := range modifiers {
		if m != nil && m.Kind == ast.Decorator {
			found = true
			break
		}
	}

	if !found {
		return nil, modifiers
	}

	for _, m := range modifiers {
		if m != nil && m.Kind == ast.Decorator {
			decorators = append(decorators, m)
		} else {
			rest = append(rest, m)
		}
	}
	return decorators, rest
}

// toConvention writes a canonical record as an argument tuple of the given
// convention.
func toConvention(rec record, c convention) []interface{} {
	var decorators, modifiers []*ast.Node
	split := false
	for _, name := range c.params {
		if name == paramDecorators {
			decorators, modifiers = splitModifiers(rec.modifiers())
			split = true
		}
	}

	args := make([]interface{}, len(c.params))
	for i, name := range c.params {
		switch {
		case name == paramDecorators:
			args[i] = decorators
		case name == paramModifiers && split:
			args[i] = modifiers
		case rec.op.index(name) >= 0:
			args[i] = rec.get(name)
		default:
			p, _ := rec.op.param(name)
			args[i] = p.zero()
		}
	}
	return args
}

type namedValue struct {
	name  string
	value interface{}
}

// dropped returns the canonical parameters the convention has no position
// for, in canonical order, with the value the record holds for them.
func dropped(rec record, c convention) []namedValue {
	var out []namedValue
	for i, p := range rec.op.params {
		if !contains(c.params, p.name) {
			out = append(out, namedValue{p.name, rec.values[i]})
		}
	}
	return out
}

func contains(list []string, s string) bool {
	for _, e := range list {
		if e == s {
			return true
		}
	}
	return false
}

// isZero reports whether a value is the zero value of its parameter kind.
func isZero(v interface{}) bool {
	switch v := v.(type) {
	case nil:
		return true
	case *ast.Node:
		return v == nil
	case []*ast.Node:
		return v == nil
	case bool:
		return !v
	case ast.NodeFlags:
		return v == ast.FlagsNone
	case string:
		return v == ""
	}
	return false
}
