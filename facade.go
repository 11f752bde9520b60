package nodefactory

import (
	"context"
	"fmt"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
)

// normalized is implemented by facades only. It marks a Factory that must
// not be wrapped again.
type normalized interface {
	Factory
	normalized()
}

// facade serves the canonical operations on top of a library that needs
// adaptation. It is immutable once built.
type facade struct {
	caps     Capabilities
	bindings map[string]*binding
	log      logrus.FieldLogger
}

var _ normalized = (*facade)(nil)

func (*facade) normalized() {}

// BuildFacade returns a Factory for the given library instance. A facade is
// returned unchanged and a library that needs no adaptation is returned as
// is.
func BuildFacade(lib interface{}, opts ...Option) (Factory, error) {
	return BuildFacadeContext(context.Background(), lib, opts...)
}

// BuildFacadeContext is like BuildFacade but traces the build with the span
// found in ctx, if any.
func BuildFacadeContext(ctx context.Context, lib interface{}, opts ...Option) (Factory, error) {
	span, _ := opentracing.StartSpanFromContext(ctx, "nodefactory.BuildFacade",
		opentracing.Tag{Key: "library", Value: fmt.Sprintf("%T", lib)},
	)
	defer span.Finish()

	if f, ok := lib.(normalized); ok {
		span.SetTag("binding", "facade")
		return f, nil
	}

	o := newOptions(opts)
	caps, err := probeLibrary(lib, o.log)
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}

	inst, _ := construction(lib)
	if caps.Canonical() {
		if f, ok := inst.value.Interface().(Factory); ok {
			span.SetTag("binding", "library")
			facadesBuilt.WithLabelValues("library").Inc()
			return f, nil
		}
	}

	r, err := newRegistry(inst, caps, o.log)
	if err != nil {
		span.SetTag("error", true)
		return nil, err
	}

	f := &facade{caps: caps, bindings: r.bindings, log: o.log}
	o.log.WithFields(logrus.Fields{
		"library":     fmt.Sprintf("%T", lib),
		"shimmed":     f.count(Shimmed),
		"synthesized": f.count(Synthesized),
	}).Debug("facade built")

	span.SetTag("binding", "facade")
	facadesBuilt.WithLabelValues("facade").Inc()
	return f, nil
}

func (f *facade) count(m Mode) int {
	var n int
	for _, b := range f.bindings {
		if b.mode == m {
			n++
		}
	}
	return n
}

// Binding tells how a Factory serves one operation.
type Binding struct {
	Operation string
	Mode      Mode
	// Shape is the calling convention the library is called with.
	Shape Shape
}

// Bindings returns the binding of every operation of f, in catalog order.
// Every operation of a Factory that is not a facade is a passthrough.
func Bindings(f Factory) []Binding {
	fc, isFacade := f.(*facade)

	out := make([]Binding, 0, len(catalog))
	for _, op := range catalog {
		b := Binding{Operation: op.name, Mode: Passthrough, Shape: ShapeCanonical}
		if isFacade {
			if fb, ok := fc.bindings[op.name]; ok {
				b.Mode, b.Shape = fb.mode, fb.shape
			}
		}
		out = append(out, b)
	}
	return out
}

// CapabilitiesOf returns the capabilities a facade was built from. It
// returns false for a Factory that is not a facade.
func CapabilitiesOf(f Factory) (Capabilities, bool) {
	if fc, ok := f.(*facade); ok {
		return fc.caps, true
	}
	return Capabilities{}, false
}

// call dispatches canonical arguments. Untyped nils take the zero value of
// their parameter.
func (f *facade) call(name string, args []interface{}) (*ast.Node, error) {
	b, ok := f.bindings[name]
	if !ok {
		return nil, ErrMissingOperation.New(name)
	}

	for i, a := range args {
		if a == nil && i < len(b.op.params) {
			args[i] = b.op.params[i].zero()
		}
	}

	return b.call(args)
}

// must is used by the typed methods, whose arguments always have the
// right types: an error there is a bug in the facade.
func (f *facade) must(name string, args ...interface{}) *ast.Node {
	n, err := f.call(name, args)
	if err != nil {
		panic(err)
	}
	return n
}

// CreatePrivateIdentifier builds a private name. Text not starting with '#'
// is rejected with ErrInvalidPrivateName; an empty text yields an unnamed
// node.
func (f *facade) CreatePrivateIdentifier(text string) (*ast.Node, error) {
	if err := validatePrivateName(text); err != nil {
		return nil, err
	}
	return f.call("CreatePrivateIdentifier", []interface{}{text})
}
