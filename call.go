package nodefactory

import (
	"reflect"

	"github.com/sirupsen/logrus"
	"github.com/src-d/nodefactory/ast"
)

// Call invokes an operation of f by name. The arguments may follow the
// canonical signature or any legacy calling convention of the operation,
// with trailing arguments omitted. Untyped nils are accepted everywhere a
// node or a list is, and names may be given as strings: strings starting
// with '#' become private identifiers, other strings identifiers.
func Call(f Factory, name string, args ...interface{}) (*ast.Node, error) {
	op, ok := lookup(name)
	if !ok {
		return nil, ErrUnknownOperation.New(name)
	}

	shape, err := classify(op, args)
	if err != nil {
		loggerOf(f).WithFields(logrus.Fields{
			"operation": name,
			"args":      tags(args),
		}).Warn("unsupported call shape")
		return nil, err
	}

	c, _ := op.convention(shape)
	rec := fromConvention(op, c, args)
	if err := resolveNames(f, rec); err != nil {
		return nil, err
	}

	if fc, ok := f.(*facade); ok {
		if name == "CreatePrivateIdentifier" {
			return fc.CreatePrivateIdentifier(rec.values[0].(string))
		}
		return fc.call(name, rec.values)
	}

	m := reflect.ValueOf(f).MethodByName(name)
	if !m.IsValid() {
		return nil, ErrMissingOperation.New(name)
	}
	return invoke(m, op, op.canonical(), rec.values)
}

// resolveNames turns the names given as strings into identifiers built by f.
func resolveNames(f Factory, rec record) error {
	for i, p := range rec.op.params {
		text, ok := rec.values[i].(string)
		if !ok || p.kind != argName {
			continue
		}

		if nameKind(text) == ast.PrivateIdentifier {
			n, err := f.CreatePrivateIdentifier(text)
			if err != nil {
				return err
			}
			rec.values[i] = n
			continue
		}

		rec.values[i] = f.CreateIdentifier(text)
	}
	return nil
}

func loggerOf(f Factory) logrus.FieldLogger {
	if fc, ok := f.(*facade); ok && fc.log != nil {
		return fc.log
	}
	return logrus.StandardLogger()
}
