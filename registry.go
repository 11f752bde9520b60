package nodefactory

import (
	"fmt"
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
)

// Mode is how a facade serves one operation.
type Mode int

const (
	// Passthrough operations call the library unchanged.
	Passthrough Mode = iota
	// Shimmed operations call the library with its own calling convention.
	Shimmed
	// Synthesized operations build their nodes from other operations.
	Synthesized
)

func (m Mode) String() string {
	switch m {
	case Passthrough:
		return "passthrough"
	case Shimmed:
		return "shimmed"
	case Synthesized:
		return "synthesized"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

var (
	kindType   = reflect.TypeOf(ast.Unknown)
	flagsType  = reflect.TypeOf(ast.FlagsNone)
	stringType = reflect.TypeOf("")
)

// goType is the type a library method declares for the parameter.
func (p param) goType() reflect.Type {
	switch p.kind {
	case argList:
		return nodesType
	case argBool:
		return boolType
	case argTokenKind:
		return kindType
	case argFlags:
		return flagsType
	case argText:
		return stringType
	}
	return nodeType
}

// handler serves an operation given its canonical arguments.
type handler func(args []interface{}) (*ast.Node, error)

type binding struct {
	op    *operation
	mode  Mode
	shape Shape
	call  handler
}

// registry composes the bindings of a facade. It is only written while the
// facade is being built.
type registry struct {
	inst     instance
	caps     Capabilities
	log      logrus.FieldLogger
	synth    synthesizer
	bindings map[string]*binding
}

func newRegistry(inst instance, caps Capabilities, log logrus.FieldLogger) (*registry, error) {
	r := &registry{
		inst:     inst,
		caps:     caps,
		log:      log,
		synth:    synthesizer{caps},
		bindings: make(map[string]*binding, len(catalog)),
	}

	r.base()
	if err := r.overlay(); err != nil {
		return nil, err
	}
	r.shim()

	for _, op := range catalog {
		if _, ok := r.bindings[op.name]; !ok {
			return nil, ErrMissingOperation.New(op.name)
		}
	}

	return r, nil
}

// base binds every operation the library provides with its canonical
// signature.
func (r *registry) base() {
	for _, op := range catalog {
		m, ok := r.inst.method(op.name)
		if !ok {
			continue
		}

		c := op.canonical()
		if !conforms(m, op, c) {
			continue
		}

		r.bindings[op.name] = &binding{op, Passthrough, ShapeCanonical, passthrough(m, op, c)}
	}
}

// overlay synthesizes the operations the library lacks. Overlays are
// applied in order, so an overlay may depend on one applied before it.
func (r *registry) overlay() error {
	for _, o := range overlays {
		if !o.needed(r.caps) {
			continue
		}

		deps := make([]handler, len(o.deps))
		for i, name := range o.deps {
			b, ok := r.bindings[name]
			if !ok {
				return ErrMissingOperation.New(name)
			}
			deps[i] = b.call
		}

		op, _ := lookup(o.op)
		r.bindings[o.op] = &binding{op, Synthesized, ShapeCanonical, o.build(r.synth, deps)}
	}
	return nil
}

// shim binds the operations whose selected convention is a legacy one.
func (r *registry) shim() {
	for _, op := range catalog {
		c := op.selected(r.caps)
		if c.shape == ShapeCanonical {
			continue
		}

		if b, ok := r.bindings[op.name]; ok && b.mode == Synthesized {
			continue
		}

		m, ok := r.inst.method(op.name)
		if !ok || !conforms(m, op, c) {
			r.log.WithFields(logrus.Fields{
				"operation": op.name,
				"shape":     c.shape,
			}).Debug("library method does not match the selected convention")
			continue
		}

		r.bindings[op.name] = &binding{op, Shimmed, c.shape, r.shimmed(m, op, c)}
	}
}

// conforms reports whether a method takes exactly the parameters of the
// convention and returns a node, and optionally an error.
func conforms(m reflect.Value, op *operation, c convention) bool {
	t := m.Type()
	if t.NumIn() != len(c.params) {
		return false
	}

	switch t.NumOut() {
	case 1:
	case 2:
		if t.Out(1) != errorType {
			return false
		}
	default:
		return false
	}

	if t.Out(0) != nodeType {
		return false
	}

	for i, name := range c.params {
		p, ok := op.param(name)
		if !ok || t.In(i) != p.goType() {
			return false
		}
	}
	return true
}

// invoke calls a method with the argument tuple of a convention.
func invoke(m reflect.Value, op *operation, c convention, args []interface{}) (*ast.Node, error) {
	t := m.Type()
	in := make([]reflect.Value, len(args))
	for i, a := range args {
		want := t.In(i)
		if a == nil {
			in[i] = reflect.Zero(want)
			continue
		}

		v := reflect.ValueOf(a)
		if !v.Type().AssignableTo(want) {
			return nil, ErrArgumentType.New(c.params[i], op.name, a, want)
		}
		in[i] = v
	}

	out := m.Call(in)
	if len(out) == 2 && !out[1].IsNil() {
		return nil, out[1].Interface().(error)
	}

	n, _ := out[0].Interface().(*ast.Node)
	return n, nil
}

func passthrough(m reflect.Value, op *operation, c convention) handler {
	return func(args []interface{}) (*ast.Node, error) {
		return invoke(m, op, c, args)
	}
}

func (r *registry) shimmed(m reflect.Value, op *operation, c convention) handler {
	return func(args []interface{}) (*ast.Node, error) {
		rec := record{op, args}
		n, err := invoke(m, op, c, r.legacyArgs(rec, c))
		if err != nil {
			return nil, err
		}

		shimmedCalls.WithLabelValues(op.name, c.shape.String()).Inc()
		return r.restore(rec, c, n)
	}
}

// legacyArgs writes the record in the convention. When updating a node whose
// lists hold the same elements as the ones being passed, the node's own lists
// are passed instead so the library can tell nothing changed.
func (r *registry) legacyArgs(rec record, c convention) []interface{} {
	args := toConvention(rec, c)
	if rec.op.creates == "" {
		return args
	}

	node, _ := rec.get(paramNode).(*ast.Node)
	if node == nil {
		return args
	}

	for i, name := range c.params {
		l, ok := args[i].([]*ast.Node)
		if !ok {
			continue
		}

		if cur := node.List(name); cur != nil && sameElements(cur, l) {
			args[i] = cur
		}
	}
	return args
}

func sameElements(a, b []*ast.Node) bool {
	if len(a) != len(b) {
		return false
	}

	for i := range a {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

// restore gives the node built by a shim the canonical parameters its
// convention has no position for. Nodes returned unchanged by an update are
// never modified: if a lost parameter differs from the node's value the node
// is rebuilt instead.
func (r *registry) restore(rec record, c convention, n *ast.Node) (*ast.Node, error) {
	lost := dropped(rec, c)
	if len(lost) == 0 || n == nil {
		return n, nil
	}

	if rec.op.creates != "" {
		if node, _ := rec.get(paramNode).(*ast.Node); node != nil && n == node {
			if holds(node, lost) {
				return node, nil
			}
			return r.rebuild(rec, node)
		}
	}

	for _, v := range lost {
		if !isZero(v.value) {
			attach(n, v.name, v.value)
		}
	}
	return n, nil
}

// holds reports whether the node already has every given value.
func holds(n *ast.Node, values []namedValue) bool {
	for _, v := range values {
		cur, _ := n.Value(v.name)
		if !ast.SameValue(cur, v.value) {
			return false
		}
	}
	return true
}

// rebuild builds the updated node from scratch with the create operation of
// the update.
func (r *registry) rebuild(rec record, node *ast.Node) (*ast.Node, error) {
	create, ok := r.bindings[rec.op.creates]
	if !ok {
		return nil, ErrMissingOperation.New(rec.op.creates)
	}

	args := newRecord(create.op)
	for _, p := range create.op.params {
		if v := rec.get(p.name); v != nil {
			args.set(p.name, v)
		}
	}

	n, err := create.call(args.values)
	if err != nil {
		return nil, err
	}

	return r.synth.update(node, n), nil
}

// attach sets a field on a node the library has just built.
func attach(n *ast.Node, name string, v interface{}) {
	switch v := v.(type) {
	case *ast.Node:
		n.Set(name, v)
		n.TransformFlags |= v.TransformFlags
	case []*ast.Node:
		n.Set(name, v)
		for _, e := range v {
			if e != nil {
				n.TransformFlags |= e.TransformFlags
			}
		}
	case bool:
		n.Set(name, v)
	case ast.NodeFlags:
		n.Flags |= v
	}
}
