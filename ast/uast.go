package ast

import (
	"github.com/bblfsh/sdk/v3/uast"
	"github.com/bblfsh/sdk/v3/uast/nodes"
)

const (
	// NS is the namespace of node types in their UAST form.
	NS = "nodefactory"

	// KeyFlags is the UAST field holding NodeFlags.
	KeyFlags = "@flags"
	// KeyTransformFlags is the UAST field holding TransformFlags.
	KeyTransformFlags = "@transformFlags"
)

// TypeName returns the UAST type of a kind, for example
// "nodefactory:Identifier".
func TypeName(k Kind) string {
	return NS + ":" + k.String()
}

func hasText(k Kind) bool {
	switch k {
	case Identifier, PrivateIdentifier, StringLiteral, NumericLiteral:
		return true
	}
	return false
}

// ToUAST converts a tree into generic UAST nodes. Nil children are omitted,
// and so is Original. The Synthesized flag is dropped since every factory
// built node carries it.
func ToUAST(n *Node) nodes.Node {
	return toUAST(n, false)
}

// toUAST converts a tree. The structural form leaves positions and transform
// flags out, and holds decorators at the head of the modifiers list the way
// the newest libraries store them.
func toUAST(n *Node, structural bool) nodes.Node {
	if n == nil {
		return nil
	}

	obj := nodes.Object{
		uast.KeyType: nodes.String(TypeName(n.Kind)),
	}

	if n.Text != "" || hasText(n.Kind) {
		obj[uast.KeyToken] = nodes.String(n.Text)
	}

	if flags := n.Flags &^ FlagSynthesized; flags != 0 {
		obj[KeyFlags] = nodes.Uint(flags)
	}

	if !structural {
		if n.Pos >= 0 && n.End >= n.Pos {
			obj[uast.KeyPos] = uast.Positions{
				uast.KeyStart: {Offset: uint32(n.Pos)},
				uast.KeyEnd:   {Offset: uint32(n.End)},
			}.ToObject()
		}

		if n.TransformFlags != TransformNone {
			obj[KeyTransformFlags] = nodes.Uint(n.TransformFlags)
		}
	}

	for _, f := range n.fields {
		switch v := f.value.(type) {
		case *Node:
			if v != nil {
				obj[f.name] = toUAST(v, structural)
			}
		case []*Node:
			if structural && f.name == FieldDecorators {
				continue
			}
			if structural && f.name == FieldModifiers {
				v = withDecorators(n.List(FieldDecorators), v)
			}
			if v != nil {
				arr := make(nodes.Array, 0, len(v))
				for _, c := range v {
					arr = append(arr, toUAST(c, structural))
				}
				obj[f.name] = arr
			}
		case bool:
			obj[f.name] = nodes.Bool(v)
		}
	}

	if structural && !n.Has(FieldModifiers) {
		if decorators := n.List(FieldDecorators); len(decorators) > 0 {
			arr := make(nodes.Array, 0, len(decorators))
			for _, c := range decorators {
				arr = append(arr, toUAST(c, structural))
			}
			obj[FieldModifiers] = arr
		}
	}

	return obj
}

func withDecorators(decorators, modifiers []*Node) []*Node {
	if len(decorators) == 0 {
		return modifiers
	}

	merged := make([]*Node, 0, len(decorators)+len(modifiers))
	merged = append(merged, decorators...)
	return append(merged, modifiers...)
}

// Hash returns a structural hash of the tree that ignores positions and
// transform flags.
func Hash(n *Node) nodes.Hash {
	return nodes.NewHasher().HashOf(toUAST(n, true))
}

// Equal reports whether two trees are structurally equal, ignoring
// positions, transform flags and original-node links. Decorators compare as
// the leading entries of the modifiers list.
func Equal(a, b *Node) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return Hash(a) == Hash(b)
}
