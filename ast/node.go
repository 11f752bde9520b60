package ast

// Child field names. A node only carries the fields its kind defines.
const (
	FieldArgument                   = "argument"
	FieldArguments                  = "arguments"
	FieldAssertClause               = "assertClause"
	FieldAssertions                 = "assertions"
	FieldAsteriskToken              = "asteriskToken"
	FieldBody                       = "body"
	FieldConstraint                 = "constraint"
	FieldDeclarationList            = "declarationList"
	FieldDeclarations               = "declarations"
	FieldDecorators                 = "decorators"
	FieldDefault                    = "default"
	FieldDotDotDotToken             = "dotDotDotToken"
	FieldElements                   = "elements"
	FieldExclamationToken           = "exclamationToken"
	FieldExportClause               = "exportClause"
	FieldExpression                 = "expression"
	FieldHeritageClauses            = "heritageClauses"
	FieldImportClause               = "importClause"
	FieldInitializer                = "initializer"
	FieldIsExportEquals             = "isExportEquals"
	FieldIsTypeOf                   = "isTypeOf"
	FieldIsTypeOnly                 = "isTypeOnly"
	FieldLeft                       = "left"
	FieldMembers                    = "members"
	FieldModifiers                  = "modifiers"
	FieldModuleReference            = "moduleReference"
	FieldModuleSpecifier            = "moduleSpecifier"
	FieldMultiLine                  = "multiLine"
	FieldName                       = "name"
	FieldNamedBindings              = "namedBindings"
	FieldParameters                 = "parameters"
	FieldPropertyName               = "propertyName"
	FieldQualifier                  = "qualifier"
	FieldQuestionToken              = "questionToken"
	FieldQuestionOrExclamationToken = "questionOrExclamationToken"
	FieldRight                      = "right"
	FieldSingleQuote                = "singleQuote"
	FieldStatements                 = "statements"
	FieldToken                      = "token"
	FieldType                       = "type"
	FieldTypeArguments              = "typeArguments"
	FieldTypeName                   = "typeName"
	FieldTypeParameters             = "typeParameters"
	FieldTypes                      = "types"
	FieldValue                      = "value"
)

// Node is a single element of a syntax tree.
//
// Children are stored as an ordered list of named fields holding a *Node, a
// []*Node or a bool. Pos, End, Flags, TransformFlags and Original are
// bookkeeping: they never take part in structural equality.
type Node struct {
	Kind Kind
	// Text is the name of identifiers and the value of literals.
	Text string

	Pos, End       int
	Flags          NodeFlags
	TransformFlags TransformFlags
	// Original links an updated node to the node it was derived from. It is
	// a back reference: walkers, printers and serializers ignore it.
	Original *Node

	fields []field
}

type field struct {
	name  string
	value interface{}
}

// NewNode returns a node of the given kind without position.
func NewNode(kind Kind) *Node {
	return &Node{Kind: kind, Pos: -1, End: -1}
}

// Set assigns a child field, replacing any previous value. Only *Node,
// []*Node and bool values are accepted; Set panics on anything else.
// Set must only be called while the node is being built by its owner.
func (n *Node) Set(name string, value interface{}) *Node {
	switch value.(type) {
	case *Node, []*Node, bool:
	default:
		panic("ast: unsupported field value type for " + name)
	}

	for i := range n.fields {
		if n.fields[i].name == name {
			n.fields[i].value = value
			return n
		}
	}

	n.fields = append(n.fields, field{name, value})
	return n
}

// Value returns the raw value of a field.
func (n *Node) Value(name string) (interface{}, bool) {
	if n == nil {
		return nil, false
	}

	for _, f := range n.fields {
		if f.name == name {
			return f.value, true
		}
	}
	return nil, false
}

// Has reports whether the node defines the field, even if it holds nil.
func (n *Node) Has(name string) bool {
	_, ok := n.Value(name)
	return ok
}

// Child returns the node stored in a field, or nil.
func (n *Node) Child(name string) *Node {
	v, _ := n.Value(name)
	c, _ := v.(*Node)
	return c
}

// List returns the node list stored in a field, or nil.
func (n *Node) List(name string) []*Node {
	v, _ := n.Value(name)
	l, _ := v.([]*Node)
	return l
}

// Bool returns the boolean stored in a field.
func (n *Node) Bool(name string) bool {
	v, _ := n.Value(name)
	b, _ := v.(bool)
	return b
}

// Fields returns the names of the node's fields in definition order.
func (n *Node) Fields() []string {
	if n == nil {
		return nil
	}

	names := make([]string, len(n.fields))
	for i, f := range n.fields {
		names[i] = f.name
	}
	return names
}

// SameNodes reports whether two lists are the very same list: same length
// and same backing array. It is the identity check update operations use to
// decide whether a node needs to be rebuilt.
func SameNodes(a, b []*Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}

	if len(a) != len(b) {
		return false
	}

	if len(a) == 0 {
		return true
	}

	return &a[0] == &b[0]
}

// SameValue reports whether two field values are identical: pointer
// identity for nodes, list identity for lists and equality for bools.
func SameValue(a, b interface{}) bool {
	switch av := a.(type) {
	case nil:
		return isNilValue(b)
	case *Node:
		bv, ok := b.(*Node)
		if !ok {
			return av == nil && isNilValue(b)
		}
		return av == bv
	case []*Node:
		bv, ok := b.([]*Node)
		if !ok {
			return av == nil && isNilValue(b)
		}
		return SameNodes(av, bv)
	case bool:
		bv, ok := b.(bool)
		return ok && av == bv
	default:
		return false
	}
}

func isNilValue(v interface{}) bool {
	switch x := v.(type) {
	case nil:
		return true
	case *Node:
		return x == nil
	case []*Node:
		return x == nil
	default:
		return false
	}
}
