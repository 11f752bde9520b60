package ast

import "strings"

// NodeFlags are structural flags carried by every node.
type NodeFlags uint32

const (
	FlagsNone NodeFlags = 0
	// FlagLet marks a let declaration list.
	FlagLet NodeFlags = 1 << iota
	// FlagConst marks a const declaration list.
	FlagConst
	// FlagNamespace marks a module declaration written with `namespace`.
	FlagNamespace
	// FlagGlobalAugmentation marks a `declare global` module declaration.
	FlagGlobalAugmentation
	// FlagSynthesized marks nodes built by a factory instead of a parser.
	FlagSynthesized

	// FlagBlockScoped is the union of let and const.
	FlagBlockScoped = FlagLet | FlagConst
)

// TransformFlags tell the emitter which syntax a subtree contains and hence
// which lowering passes it needs.
type TransformFlags uint32

const (
	TransformNone TransformFlags = 0
	// ContainsTypeScript marks type-only syntax that is erased on emit.
	ContainsTypeScript TransformFlags = 1 << iota
	// ContainsES2015 marks syntax introduced by ES2015.
	ContainsES2015
	// ContainsES2022 marks syntax introduced by ES2022.
	ContainsES2022
	// ContainsESNext marks syntax not yet part of a published edition.
	ContainsESNext
	// ContainsClassFields marks class fields, private names and static blocks.
	ContainsClassFields
	// ContainsDecorators marks decorated declarations.
	ContainsDecorators
)

var transformFlagNames = []struct {
	flag TransformFlags
	name string
}{
	{ContainsTypeScript, "TypeScript"},
	{ContainsES2015, "ES2015"},
	{ContainsES2022, "ES2022"},
	{ContainsESNext, "ESNext"},
	{ContainsClassFields, "ClassFields"},
	{ContainsDecorators, "Decorators"},
}

// Has reports whether every bit of o is set in f.
func (f TransformFlags) Has(o TransformFlags) bool {
	return f&o == o && o != 0
}

func (f TransformFlags) String() string {
	if f == TransformNone {
		return "None"
	}

	var names []string
	for _, n := range transformFlagNames {
		if f&n.flag != 0 {
			names = append(names, n.name)
		}
	}
	return strings.Join(names, "|")
}
