package ast

import "fmt"

// Kind is the discriminant tag of a Node.
type Kind int

const (
	Unknown Kind = iota

	// Punctuation tokens.
	AsteriskToken
	QuestionToken
	ExclamationToken
	DotDotDotToken

	// Modifier keywords.
	AbstractKeyword
	AccessorKeyword
	AsyncKeyword
	ConstKeyword
	DeclareKeyword
	DefaultKeyword
	ExportKeyword
	InKeyword
	OutKeyword
	OverrideKeyword
	PrivateKeyword
	ProtectedKeyword
	PublicKeyword
	ReadonlyKeyword
	StaticKeyword

	// Heritage keywords.
	ExtendsKeyword
	ImplementsKeyword

	// Keyword types.
	AnyKeyword
	BooleanKeyword
	NeverKeyword
	NumberKeyword
	ObjectKeyword
	StringKeyword
	UnknownKeyword
	VoidKeyword

	// Names and literals.
	Identifier
	PrivateIdentifier
	QualifiedName
	StringLiteral
	NumericLiteral

	// Types.
	TypeReference
	TypeParameter
	ImportType
	ImportTypeAssertionContainer
	ExpressionWithTypeArguments

	// Expressions.
	CallExpression
	PropertyAccessExpression
	SatisfiesExpression
	ClassExpression

	// Statements.
	Block
	EmptyStatement
	VariableStatement
	ExpressionStatement
	ReturnStatement

	// Declarations.
	VariableDeclaration
	VariableDeclarationList
	FunctionDeclaration
	ClassDeclaration
	InterfaceDeclaration
	TypeAliasDeclaration
	EnumDeclaration
	EnumMember
	ModuleDeclaration
	ModuleBlock
	ImportEqualsDeclaration
	ExternalModuleReference
	ImportDeclaration
	ImportClause
	NamespaceImport
	NamedImports
	ImportSpecifier
	ExportAssignment
	ExportDeclaration
	NamedExports
	ExportSpecifier
	AssertClause
	AssertEntry

	// Class elements and their parts.
	Decorator
	Parameter
	PropertyDeclaration
	MethodDeclaration
	Constructor
	GetAccessor
	SetAccessor
	IndexSignature
	ClassStaticBlockDeclaration
	HeritageClause

	kindCount
)

var kindNames = [...]string{
	Unknown:                      "Unknown",
	AsteriskToken:                "AsteriskToken",
	QuestionToken:                "QuestionToken",
	ExclamationToken:             "ExclamationToken",
	DotDotDotToken:               "DotDotDotToken",
	AbstractKeyword:              "AbstractKeyword",
	AccessorKeyword:              "AccessorKeyword",
	AsyncKeyword:                 "AsyncKeyword",
	ConstKeyword:                 "ConstKeyword",
	DeclareKeyword:               "DeclareKeyword",
	DefaultKeyword:               "DefaultKeyword",
	ExportKeyword:                "ExportKeyword",
	InKeyword:                    "InKeyword",
	OutKeyword:                   "OutKeyword",
	OverrideKeyword:              "OverrideKeyword",
	PrivateKeyword:               "PrivateKeyword",
	ProtectedKeyword:             "ProtectedKeyword",
	PublicKeyword:                "PublicKeyword",
	ReadonlyKeyword:              "ReadonlyKeyword",
	StaticKeyword:                "StaticKeyword",
	ExtendsKeyword:               "ExtendsKeyword",
	ImplementsKeyword:            "ImplementsKeyword",
	AnyKeyword:                   "AnyKeyword",
	BooleanKeyword:               "BooleanKeyword",
	NeverKeyword:                 "NeverKeyword",
	NumberKeyword:                "NumberKeyword",
	ObjectKeyword:                "ObjectKeyword",
	StringKeyword:                "StringKeyword",
	UnknownKeyword:               "UnknownKeyword",
	VoidKeyword:                  "VoidKeyword",
	Identifier:                   "Identifier",
	PrivateIdentifier:            "PrivateIdentifier",
	QualifiedName:                "QualifiedName",
	StringLiteral:                "StringLiteral",
	NumericLiteral:               "NumericLiteral",
	TypeReference:                "TypeReference",
	TypeParameter:                "TypeParameter",
	ImportType:                   "ImportType",
	ImportTypeAssertionContainer: "ImportTypeAssertionContainer",
	ExpressionWithTypeArguments:  "ExpressionWithTypeArguments",
	CallExpression:               "CallExpression",
	PropertyAccessExpression:     "PropertyAccessExpression",
	SatisfiesExpression:          "SatisfiesExpression",
	ClassExpression:              "ClassExpression",
	Block:                        "Block",
	EmptyStatement:               "EmptyStatement",
	VariableStatement:            "VariableStatement",
	ExpressionStatement:          "ExpressionStatement",
	ReturnStatement:              "ReturnStatement",
	VariableDeclaration:          "VariableDeclaration",
	VariableDeclarationList:      "VariableDeclarationList",
	FunctionDeclaration:          "FunctionDeclaration",
	ClassDeclaration:             "ClassDeclaration",
	InterfaceDeclaration:         "InterfaceDeclaration",
	TypeAliasDeclaration:         "TypeAliasDeclaration",
	EnumDeclaration:              "EnumDeclaration",
	EnumMember:                   "EnumMember",
	ModuleDeclaration:            "ModuleDeclaration",
	ModuleBlock:                  "ModuleBlock",
	ImportEqualsDeclaration:      "ImportEqualsDeclaration",
	ExternalModuleReference:      "ExternalModuleReference",
	ImportDeclaration:            "ImportDeclaration",
	ImportClause:                 "ImportClause",
	NamespaceImport:              "NamespaceImport",
	NamedImports:                 "NamedImports",
	ImportSpecifier:              "ImportSpecifier",
	ExportAssignment:             "ExportAssignment",
	ExportDeclaration:            "ExportDeclaration",
	NamedExports:                 "NamedExports",
	ExportSpecifier:              "ExportSpecifier",
	AssertClause:                 "AssertClause",
	AssertEntry:                  "AssertEntry",
	Decorator:                    "Decorator",
	Parameter:                    "Parameter",
	PropertyDeclaration:          "PropertyDeclaration",
	MethodDeclaration:            "MethodDeclaration",
	Constructor:                  "Constructor",
	GetAccessor:                  "GetAccessor",
	SetAccessor:                  "SetAccessor",
	IndexSignature:               "IndexSignature",
	ClassStaticBlockDeclaration:  "ClassStaticBlockDeclaration",
	HeritageClause:               "HeritageClause",
}

func (k Kind) String() string {
	if k >= 0 && k < kindCount && kindNames[k] != "" {
		return kindNames[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// ParseKind returns the kind with the given name, as returned by String.
func ParseKind(name string) (Kind, bool) {
	for k := Unknown; k < kindCount; k++ {
		if kindNames[k] == name {
			return k, true
		}
	}
	return Unknown, false
}

var tokenText = map[Kind]string{
	AsteriskToken:     "*",
	QuestionToken:     "?",
	ExclamationToken:  "!",
	DotDotDotToken:    "...",
	AbstractKeyword:   "abstract",
	AccessorKeyword:   "accessor",
	AsyncKeyword:      "async",
	ConstKeyword:      "const",
	DeclareKeyword:    "declare",
	DefaultKeyword:    "default",
	ExportKeyword:     "export",
	InKeyword:         "in",
	OutKeyword:        "out",
	OverrideKeyword:   "override",
	PrivateKeyword:    "private",
	ProtectedKeyword:  "protected",
	PublicKeyword:     "public",
	ReadonlyKeyword:   "readonly",
	StaticKeyword:     "static",
	ExtendsKeyword:    "extends",
	ImplementsKeyword: "implements",
	AnyKeyword:        "any",
	BooleanKeyword:    "boolean",
	NeverKeyword:      "never",
	NumberKeyword:     "number",
	ObjectKeyword:     "object",
	StringKeyword:     "string",
	UnknownKeyword:    "unknown",
	VoidKeyword:       "void",
}

// TokenText returns the source text of a token or keyword kind, or an empty
// string when the kind has no fixed spelling.
func (k Kind) TokenText() string {
	return tokenText[k]
}

// IsToken reports whether k is a punctuation token.
func (k Kind) IsToken() bool {
	return k >= AsteriskToken && k <= DotDotDotToken
}

// IsModifier reports whether k can appear in a modifiers list.
func (k Kind) IsModifier() bool {
	return k >= AbstractKeyword && k <= StaticKeyword
}

// IsKeywordType reports whether k is a keyword usable as a type.
func (k Kind) IsKeywordType() bool {
	return k >= AnyKeyword && k <= VoidKeyword
}

// IsEntityName reports whether k can name an entity in a type position.
func (k Kind) IsEntityName() bool {
	return k == Identifier || k == QualifiedName
}

// IsModuleReference reports whether k can be the right hand side of an
// import-equals declaration.
func (k Kind) IsModuleReference() bool {
	return k == Identifier || k == QualifiedName || k == ExternalModuleReference
}

// IsTypeNode reports whether k is a node that can only appear in a type
// position.
func (k Kind) IsTypeNode() bool {
	switch k {
	case TypeReference, ImportType, ExpressionWithTypeArguments:
		return true
	}
	return k.IsKeywordType()
}

// IsExpression reports whether k can appear in a value position.
func (k Kind) IsExpression() bool {
	switch k {
	case Identifier, PrivateIdentifier, StringLiteral, NumericLiteral,
		CallExpression, PropertyAccessExpression, SatisfiesExpression, ClassExpression:
		return true
	}
	return false
}
