package nodefactory

import (
	"strings"

	"github.com/src-d/nodefactory/ast"
)

// synthesizedFlags are the transform flags of each kind the builder can
// synthesize, before the flags of its children are added.
var synthesizedFlags = map[ast.Kind]ast.TransformFlags{
	ast.PrivateIdentifier:            ast.ContainsClassFields,
	ast.ClassStaticBlockDeclaration:  ast.ContainsClassFields | ast.ContainsES2022,
	ast.SatisfiesExpression:          ast.ContainsTypeScript,
	ast.AssertClause:                 ast.ContainsESNext,
	ast.AssertEntry:                  ast.ContainsESNext,
	ast.ImportTypeAssertionContainer: ast.ContainsESNext,
}

// synthesizer builds nodes of kinds a library does not know from stand-in
// nodes it does know. Stand-ins are owned by the synthesizer until they are
// returned.
type synthesizer struct {
	caps Capabilities
}

// build turns a fresh stand-in into a node of the given kind. Fields are
// given as alternating names and values, in canonical order.
func (s synthesizer) build(standIn handler, args []interface{}, kind ast.Kind, fields ...interface{}) (*ast.Node, error) {
	n, err := standIn(args)
	if err != nil {
		return nil, err
	}

	n.Kind = kind
	for i := 0; i+1 < len(fields); i += 2 {
		n.Set(fields[i].(string), fields[i+1])
	}

	flags := synthesizedFlags[kind]
	ast.ForEachChild(n, func(c *ast.Node) bool {
		flags |= c.TransformFlags
		return true
	})
	n.TransformFlags = flags

	synthesizedNodes.WithLabelValues(kind.String()).Inc()
	return n, nil
}

// update links an updated node to the node it replaces, as long as the
// library does the same for its own updates.
func (s synthesizer) update(original, updated *ast.Node) *ast.Node {
	if !s.caps.UpdateOmitsOriginal {
		updated.Original = original
		updated.Pos, updated.End = original.Pos, original.End
	}
	return updated
}

// updated returns a handler for an update operation whose arguments, after
// the node, are the values of the given fields. It returns the node itself
// when no value changed, and otherwise a node built with create.
func (s synthesizer) updated(create handler, fields ...string) handler {
	return func(args []interface{}) (*ast.Node, error) {
		node := args[0].(*ast.Node)
		values := args[1:]

		same := true
		for i, name := range fields {
			cur, _ := node.Value(name)
			if !ast.SameValue(cur, values[i]) {
				same = false
				break
			}
		}

		if same {
			return node, nil
		}

		n, err := create(values)
		if err != nil {
			return nil, err
		}
		return s.update(node, n), nil
	}
}

func validatePrivateName(text string) error {
	if text != "" && !strings.HasPrefix(text, "#") {
		return ErrInvalidPrivateName.New(text)
	}
	return nil
}

// overlay is an operation the facade synthesizes when the library lacks it.
type overlay struct {
	op     string
	needed func(Capabilities) bool
	// deps are the operations the overlay is built on. They are resolved
	// when the facade is built and passed to build in the same order.
	deps  []string
	build func(s synthesizer, deps []handler) handler
}

func missingPrivateIdentifier(c Capabilities) bool { return c.MissingPrivateIdentifier }
func missingAssertClause(c Capabilities) bool      { return c.MissingAssertClause }
func missingStaticBlock(c Capabilities) bool       { return c.MissingStaticBlock }
func missingSatisfies(c Capabilities) bool         { return c.MissingSatisfies }

// overlays are ordered leaves first.
var overlays = []overlay{
	{
		op:     "CreatePrivateIdentifier",
		needed: missingPrivateIdentifier,
		deps:   []string{"CreateIdentifier"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				if err := validatePrivateName(args[0].(string)); err != nil {
					return nil, err
				}
				return s.build(deps[0], args, ast.PrivateIdentifier)
			}
		},
	},
	{
		op:     "CreateAssertEntry",
		needed: missingAssertClause,
		deps:   []string{"CreateEmptyStatement"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				return s.build(deps[0], nil, ast.AssertEntry,
					ast.FieldName, args[0],
					ast.FieldValue, args[1],
				)
			}
		},
	},
	{
		op:     "CreateAssertClause",
		needed: missingAssertClause,
		deps:   []string{"CreateEmptyStatement"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				return s.build(deps[0], nil, ast.AssertClause,
					ast.FieldElements, args[0],
					ast.FieldMultiLine, args[1],
				)
			}
		},
	},
	{
		op:     "CreateImportTypeAssertionContainer",
		needed: missingAssertClause,
		deps:   []string{"CreateEmptyStatement"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				return s.build(deps[0], nil, ast.ImportTypeAssertionContainer,
					ast.FieldAssertClause, args[0],
					ast.FieldMultiLine, args[1],
				)
			}
		},
	},
	{
		op:     "CreateClassStaticBlockDeclaration",
		needed: missingStaticBlock,
		deps:   []string{"CreateEmptyStatement"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				return s.build(deps[0], nil, ast.ClassStaticBlockDeclaration,
					ast.FieldBody, args[0],
				)
			}
		},
	},
	{
		op:     "UpdateClassStaticBlockDeclaration",
		needed: missingStaticBlock,
		deps:   []string{"CreateClassStaticBlockDeclaration"},
		build: func(s synthesizer, deps []handler) handler {
			return s.updated(deps[0], ast.FieldBody)
		},
	},
	{
		op:     "CreateSatisfiesExpression",
		needed: missingSatisfies,
		deps:   []string{"CreateEmptyStatement"},
		build: func(s synthesizer, deps []handler) handler {
			return func(args []interface{}) (*ast.Node, error) {
				return s.build(deps[0], nil, ast.SatisfiesExpression,
					ast.FieldExpression, args[0],
					ast.FieldType, args[1],
				)
			}
		},
	},
	{
		op:     "UpdateSatisfiesExpression",
		needed: missingSatisfies,
		deps:   []string{"CreateSatisfiesExpression"},
		build: func(s synthesizer, deps []handler) handler {
			return s.updated(deps[0], ast.FieldExpression, ast.FieldType)
		},
	},
}
