package nodefactory

import (
	"strings"

	"github.com/src-d/nodefactory/ast"
)

type argKind int

const (
	argNode argKind = iota
	argList
	// argName is a node or a string to be turned into an identifier.
	argName
	argBool
	argTokenKind
	argFlags
	argText
)

var argKindNames = [...]string{
	argNode:      "node",
	argList:      "node list",
	argName:      "name",
	argBool:      "bool",
	argTokenKind: "kind",
	argFlags:     "node flags",
	argText:      "text",
}

func (k argKind) String() string { return argKindNames[k] }

// param is a named parameter of an operation.
type param struct {
	name string
	kind argKind
	// accepts restricts the kinds of node a node or name parameter takes.
	accepts func(ast.Kind) bool
	// required parameters do not take nil.
	required bool
}

// admits reports whether v can be passed as the parameter.
func (p param) admits(v interface{}) bool {
	switch p.kind {
	case argNode, argName:
		switch v := v.(type) {
		case nil:
			return !p.required
		case *ast.Node:
			if v == nil {
				return !p.required
			}
			return p.accepts == nil || p.accepts(v.Kind)
		case string:
			return p.kind == argName && (p.accepts == nil || p.accepts(nameKind(v)))
		}
		return false
	case argList:
		switch v := v.(type) {
		case nil, []*ast.Node:
			return true
		case *ast.Node:
			return v == nil
		}
		return false
	case argBool:
		_, ok := v.(bool)
		return ok
	case argTokenKind:
		_, ok := v.(ast.Kind)
		return ok
	case argFlags:
		_, ok := v.(ast.NodeFlags)
		return ok
	case argText:
		_, ok := v.(string)
		return ok
	}
	return false
}

// zero returns the value an absent parameter takes.
func (p param) zero() interface{} {
	switch p.kind {
	case argList:
		return []*ast.Node(nil)
	case argBool:
		return false
	case argTokenKind:
		return ast.Unknown
	case argFlags:
		return ast.FlagsNone
	case argText:
		return ""
	}
	return (*ast.Node)(nil)
}

// nameKind is the kind of identifier a string name becomes.
func nameKind(text string) ast.Kind {
	if strings.HasPrefix(text, "#") {
		return ast.PrivateIdentifier
	}
	return ast.Identifier
}

// convention is a calling convention an operation had in some generation.
type convention struct {
	shape Shape
	// params are the names of the positional parameters. "decorators" is a
	// node list that is merged into "modifiers".
	params []string
	// when selects the convention for a library with the given
	// capabilities.
	when func(Capabilities) bool
}

// operation is a catalog entry: the canonical signature of a construction
// operation and the conventions it used to have.
type operation struct {
	name        string
	params      []param
	conventions []convention
	// creates is the create operation an update operation rebuilds with.
	creates string
}

// param returns the named parameter. Decorators and modifiers are node lists
// even where the canonical signature lacks them.
func (op *operation) param(name string) (param, bool) {
	for _, p := range op.params {
		if p.name == name {
			return p, true
		}
	}

	if name == paramDecorators || name == paramModifiers {
		return pList(name), true
	}
	return param{}, false
}

func (op *operation) index(name string) int {
	for i, p := range op.params {
		if p.name == name {
			return i
		}
	}
	return -1
}

// canonical returns the canonical convention of the operation.
func (op *operation) canonical() convention {
	return convention{shape: ShapeCanonical, params: names(op.params)}
}

// selected returns the convention a library with the given capabilities
// expects.
func (op *operation) selected(caps Capabilities) convention {
	for _, c := range op.conventions {
		if c.when(caps) {
			return c
		}
	}
	return op.canonical()
}

// convention returns the convention of the given shape.
func (op *operation) convention(shape Shape) (convention, bool) {
	if shape == ShapeCanonical {
		return op.canonical(), true
	}

	for _, c := range op.conventions {
		if c.shape == shape {
			return c, true
		}
	}
	return convention{}, false
}

const (
	paramDecorators = "decorators"
	paramModifiers  = "modifiers"
	paramNode       = "node"
)

func pNode(name string, accepts ...ast.Kind) param {
	p := param{name: name, kind: argNode}
	if len(accepts) > 0 {
		p.accepts = ofKind(accepts...)
	}
	return p
}

func pNodeWhere(name string, accepts func(ast.Kind) bool) param {
	return param{name: name, kind: argNode, accepts: accepts}
}

func pName(name string, accepts ...ast.Kind) param {
	p := pNode(name, accepts...)
	p.kind = argName
	return p
}

func pList(name string) param { return param{name: name, kind: argList} }
func pBool(name string) param { return param{name: name, kind: argBool} }
func pKind(name string) param { return param{name: name, kind: argTokenKind} }
func pFlags(name string) param { return param{name: name, kind: argFlags} }
func pText(name string) param { return param{name: name, kind: argText} }

func required(p param) param {
	p.required = true
	return p
}

func pTarget(kinds ...ast.Kind) param { return required(pNode(paramNode, kinds...)) }

func ofKind(kinds ...ast.Kind) func(ast.Kind) bool {
	return func(k ast.Kind) bool {
		for _, want := range kinds {
			if k == want {
				return true
			}
		}
		return false
	}
}

var (
	isType       = ast.Kind.IsTypeNode
	isExpression = ast.Kind.IsExpression
	isEntityName = ast.Kind.IsEntityName

	propertyNameKinds = []ast.Kind{ast.Identifier, ast.PrivateIdentifier, ast.StringLiteral, ast.NumericLiteral}
)

func pModifiers() param { return pList(paramModifiers) }
func pType() param { return pNodeWhere(ast.FieldType, isType) }
func pInitializer() param { return pNodeWhere(ast.FieldInitializer, isExpression) }
func pBody() param { return pNode(ast.FieldBody, ast.Block) }

func names(params []param) []string {
	out := make([]string, len(params))
	for i, p := range params {
		out[i] = p.name
	}
	return out
}

// withDecorators inserts the decorators list before the modifiers list.
func withDecorators(params []string) []string {
	var out []string
	for _, p := range params {
		if p == paramModifiers {
			out = append(out, paramDecorators)
		}
		out = append(out, p)
	}
	return out
}

func without(params []string, drop string) []string {
	var out []string
	for _, p := range params {
		if p != drop {
			out = append(out, p)
		}
	}
	return out
}

func decoratorsFirst(c Capabilities) bool { return c.DecoratorsFirst }

func decorated(name string, params ...param) *operation {
	return &operation{
		name:   name,
		params: params,
		conventions: []convention{
			{ShapeDecorators, withDecorators(names(params)), decoratorsFirst},
		},
	}
}

func stable(name string, params ...param) *operation {
	return &operation{name: name, params: params}
}

func updates(create string, op *operation) *operation {
	op.creates = create
	return op
}

var catalog = []*operation{
	stable("CreateIdentifier", pText("text")),
	stable("CreateStringLiteral", pText("text"), pBool("isSingleQuote")),
	stable("CreateNumericLiteral", pText("value")),
	stable("CreateToken", pKind("token")),
	stable("CreateModifier", pKind("kind")),
	stable("CreateKeywordTypeNode", pKind("kind")),
	stable("CreateTypeReferenceNode", pNameWhere(ast.FieldTypeName, isEntityName), pList(ast.FieldTypeArguments)),
	stable("CreateQualifiedName", pNodeWhere(ast.FieldLeft, isEntityName), pName(ast.FieldRight, ast.Identifier)),
	stable("CreateDecorator", pNode(ast.FieldExpression)),
	stable("CreateBlock", pList(ast.FieldStatements), pBool(ast.FieldMultiLine)),
	updates("CreateBlock", stable("UpdateBlock", pTarget(ast.Block), pList(ast.FieldStatements))),
	stable("CreateEmptyStatement"),
	stable("CreateExpressionStatement", pNode(ast.FieldExpression)),
	stable("CreateReturnStatement", pNode(ast.FieldExpression)),
	stable("CreateVariableStatement", pModifiers(), pNode(ast.FieldDeclarationList, ast.VariableDeclarationList)),
	stable("CreateVariableDeclarationList", pList(ast.FieldDeclarations), pFlags("flags")),
	stable("CreateCallExpression", pNode(ast.FieldExpression), pList(ast.FieldTypeArguments), pList(ast.FieldArguments)),
	stable("CreatePropertyAccessExpression", pNode(ast.FieldExpression), pName(ast.FieldName, ast.Identifier, ast.PrivateIdentifier)),
	stable("CreateNamedImports", pList(ast.FieldElements)),
	stable("CreateNamedExports", pList(ast.FieldElements)),
	stable("CreateNamespaceImport", required(pName(ast.FieldName, ast.Identifier))),
	stable("CreateExternalModuleReference", pNode(ast.FieldExpression)),
	stable("CreateModuleBlock", pList(ast.FieldStatements)),
	stable("CreateEnumMember", required(pName(ast.FieldName, propertyNameKinds...)), pInitializer()),
	stable("CreateHeritageClause", pKind(ast.FieldToken), pList(ast.FieldTypes)),

	stable("CreatePrivateIdentifier", pText("text")),

	decorated("CreateParameterDeclaration",
		pModifiers(),
		pNode(ast.FieldDotDotDotToken, ast.DotDotDotToken),
		pName(ast.FieldName, ast.Identifier),
		pNode(ast.FieldQuestionToken, ast.QuestionToken),
		pType(),
		pInitializer(),
	),
	updates("CreateParameterDeclaration", decorated("UpdateParameterDeclaration",
		pTarget(ast.Parameter),
		pModifiers(),
		pNode(ast.FieldDotDotDotToken, ast.DotDotDotToken),
		pName(ast.FieldName, ast.Identifier),
		pNode(ast.FieldQuestionToken, ast.QuestionToken),
		pType(),
		pInitializer(),
	)),
	decorated("CreatePropertyDeclaration",
		pModifiers(),
		pName(ast.FieldName, propertyNameKinds...),
		pNode(ast.FieldQuestionOrExclamationToken, ast.QuestionToken, ast.ExclamationToken),
		pType(),
		pInitializer(),
	),
	updates("CreatePropertyDeclaration", decorated("UpdatePropertyDeclaration",
		pTarget(ast.PropertyDeclaration),
		pModifiers(),
		pName(ast.FieldName, propertyNameKinds...),
		pNode(ast.FieldQuestionOrExclamationToken, ast.QuestionToken, ast.ExclamationToken),
		pType(),
		pInitializer(),
	)),
	decorated("CreateMethodDeclaration",
		pModifiers(),
		pNode(ast.FieldAsteriskToken, ast.AsteriskToken),
		pName(ast.FieldName, propertyNameKinds...),
		pNode(ast.FieldQuestionToken, ast.QuestionToken),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldParameters),
		pType(),
		pBody(),
	),
	updates("CreateMethodDeclaration", decorated("UpdateMethodDeclaration",
		pTarget(ast.MethodDeclaration),
		pModifiers(),
		pNode(ast.FieldAsteriskToken, ast.AsteriskToken),
		pName(ast.FieldName, propertyNameKinds...),
		pNode(ast.FieldQuestionToken, ast.QuestionToken),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldParameters),
		pType(),
		pBody(),
	)),
	decorated("CreateConstructorDeclaration", pModifiers(), pList(ast.FieldParameters), pBody()),
	decorated("CreateGetAccessorDeclaration",
		pModifiers(),
		pName(ast.FieldName, propertyNameKinds...),
		pList(ast.FieldParameters),
		pType(),
		pBody(),
	),
	decorated("CreateSetAccessorDeclaration",
		pModifiers(),
		pName(ast.FieldName, propertyNameKinds...),
		pList(ast.FieldParameters),
		pBody(),
	),
	decorated("CreateIndexSignature", pModifiers(), pList(ast.FieldParameters), pType()),
	decorated("CreateClassDeclaration",
		pModifiers(),
		pName(ast.FieldName, ast.Identifier),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldHeritageClauses),
		pList(ast.FieldMembers),
	),
	updates("CreateClassDeclaration", decorated("UpdateClassDeclaration",
		pTarget(ast.ClassDeclaration),
		pModifiers(),
		pName(ast.FieldName, ast.Identifier),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldHeritageClauses),
		pList(ast.FieldMembers),
	)),
	decorated("CreateClassExpression",
		pModifiers(),
		pName(ast.FieldName, ast.Identifier),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldHeritageClauses),
		pList(ast.FieldMembers),
	),
	decorated("CreateFunctionDeclaration",
		pModifiers(),
		pNode(ast.FieldAsteriskToken, ast.AsteriskToken),
		pName(ast.FieldName, ast.Identifier),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldParameters),
		pType(),
		pBody(),
	),
	decorated("CreateInterfaceDeclaration",
		pModifiers(),
		required(pName(ast.FieldName, ast.Identifier)),
		pList(ast.FieldTypeParameters),
		pList(ast.FieldHeritageClauses),
		pList(ast.FieldMembers),
	),
	decorated("CreateTypeAliasDeclaration",
		pModifiers(),
		required(pName(ast.FieldName, ast.Identifier)),
		pList(ast.FieldTypeParameters),
		pType(),
	),
	decorated("CreateEnumDeclaration",
		pModifiers(),
		required(pName(ast.FieldName, ast.Identifier)),
		pList(ast.FieldMembers),
	),
	decorated("CreateModuleDeclaration",
		pModifiers(),
		required(pName(ast.FieldName, ast.Identifier, ast.StringLiteral)),
		pNode(ast.FieldBody, ast.ModuleBlock, ast.ModuleDeclaration),
		pFlags("flags"),
	),
	decorated("CreateExportAssignment",
		pModifiers(),
		pBool(ast.FieldIsExportEquals),
		pNodeWhere(ast.FieldExpression, isExpression),
	),

	{
		name: "CreateImportEqualsDeclaration",
		params: []param{
			pModifiers(),
			pBool(ast.FieldIsTypeOnly),
			required(pName(ast.FieldName, ast.Identifier)),
			required(pNodeWhere(ast.FieldModuleReference, ast.Kind.IsModuleReference)),
		},
		conventions: []convention{
			{
				ShapeDecorators,
				[]string{paramDecorators, paramModifiers, ast.FieldIsTypeOnly, ast.FieldName, ast.FieldModuleReference},
				func(c Capabilities) bool { return c.DecoratorsFirst && !c.ImportEqualsLacksTypeOnly },
			},
			{
				ShapeDecoratorsNoTypeOnly,
				[]string{paramDecorators, paramModifiers, ast.FieldName, ast.FieldModuleReference},
				func(c Capabilities) bool { return c.DecoratorsFirst && c.ImportEqualsLacksTypeOnly },
			},
		},
	},
	importDeclaration("CreateImportDeclaration"),
	updates("CreateImportDeclaration", importDeclaration("UpdateImportDeclaration", pTarget(ast.ImportDeclaration))),
	{
		name: "CreateExportDeclaration",
		params: []param{
			pModifiers(),
			pBool(ast.FieldIsTypeOnly),
			pNode(ast.FieldExportClause, ast.NamedExports),
			pNodeWhere(ast.FieldModuleSpecifier, isExpression),
			pNode(ast.FieldAssertClause, ast.AssertClause),
		},
		conventions: []convention{
			{
				ShapeDecorators,
				[]string{paramDecorators, paramModifiers, ast.FieldIsTypeOnly, ast.FieldExportClause,
					ast.FieldModuleSpecifier, ast.FieldAssertClause},
				func(c Capabilities) bool {
					return c.DecoratorsFirst && !c.ExportDeclLacksAssert && !c.ExportDeclTypeOnlyLast
				},
			},
			{
				ShapeDecoratorsNoAssert,
				[]string{paramDecorators, paramModifiers, ast.FieldIsTypeOnly, ast.FieldExportClause,
					ast.FieldModuleSpecifier},
				func(c Capabilities) bool {
					return c.DecoratorsFirst && c.ExportDeclLacksAssert && !c.ExportDeclTypeOnlyLast
				},
			},
			{
				ShapeTypeOnlyLast,
				[]string{paramDecorators, paramModifiers, ast.FieldExportClause, ast.FieldModuleSpecifier,
					ast.FieldIsTypeOnly},
				func(c Capabilities) bool { return c.ExportDeclTypeOnlyLast },
			},
		},
	},
	{
		name: "CreateImportClause",
		params: []param{
			pBool(ast.FieldIsTypeOnly),
			pName(ast.FieldName, ast.Identifier),
			pNode(ast.FieldNamedBindings, ast.NamedImports, ast.NamespaceImport),
		},
		conventions: []convention{{
			ShapeTypeOnlyLast,
			[]string{ast.FieldName, ast.FieldNamedBindings, ast.FieldIsTypeOnly},
			func(c Capabilities) bool { return c.ImportClauseTypeOnlyLast },
		}},
	},
	specifier("CreateImportSpecifier"),
	specifier("CreateExportSpecifier"),
	{
		name: "CreateImportTypeNode",
		params: []param{
			required(pNode(ast.FieldArgument)),
			pNode(ast.FieldAssertions, ast.ImportTypeAssertionContainer),
			pNameWhere(ast.FieldQualifier, isEntityName),
			pList(ast.FieldTypeArguments),
			pBool(ast.FieldIsTypeOf),
		},
		conventions: []convention{{
			ShapeNoAssert,
			[]string{ast.FieldArgument, ast.FieldQualifier, ast.FieldTypeArguments, ast.FieldIsTypeOf},
			func(c Capabilities) bool { return c.ImportTypeLacksAssertions },
		}},
	},
	typeParameter("CreateTypeParameterDeclaration"),
	updates("CreateTypeParameterDeclaration", typeParameter("UpdateTypeParameterDeclaration", pTarget(ast.TypeParameter))),
	{
		name: "CreateVariableDeclaration",
		params: []param{
			required(pName(ast.FieldName, ast.Identifier)),
			pNode(ast.FieldExclamationToken, ast.ExclamationToken),
			pType(),
			pInitializer(),
		},
		conventions: []convention{{
			ShapeNoExclamation,
			[]string{ast.FieldName, ast.FieldType, ast.FieldInitializer},
			func(c Capabilities) bool { return c.VariableDeclLacksExclamation },
		}},
	},
	{
		name: "CreateExpressionWithTypeArguments",
		params: []param{
			required(pNodeWhere(ast.FieldExpression, func(k ast.Kind) bool {
				return k.IsExpression() || k.IsEntityName()
			})),
			pList(ast.FieldTypeArguments),
		},
		conventions: []convention{{
			ShapeSwapped,
			[]string{ast.FieldTypeArguments, ast.FieldExpression},
			func(c Capabilities) bool { return c.ExpressionWithTypeArgsSwapped },
		}},
	},
	{
		name:   "CreateClassStaticBlockDeclaration",
		params: []param{pBody()},
		conventions: []convention{{
			ShapeDecorators,
			[]string{paramDecorators, paramModifiers, ast.FieldBody},
			func(c Capabilities) bool { return c.StaticBlockTakesModifiers },
		}},
	},
	{
		name:    "UpdateClassStaticBlockDeclaration",
		creates: "CreateClassStaticBlockDeclaration",
		params:  []param{pTarget(ast.ClassStaticBlockDeclaration), pBody()},
		conventions: []convention{{
			ShapeDecorators,
			[]string{paramNode, paramDecorators, paramModifiers, ast.FieldBody},
			func(c Capabilities) bool { return c.StaticBlockTakesModifiers },
		}},
	},

	stable("CreateAssertClause", pList(ast.FieldElements), pBool(ast.FieldMultiLine)),
	stable("CreateAssertEntry",
		required(pName(ast.FieldName, ast.Identifier, ast.StringLiteral)),
		required(pNode(ast.FieldValue)),
	),
	stable("CreateImportTypeAssertionContainer",
		required(pNode(ast.FieldAssertClause, ast.AssertClause)),
		pBool(ast.FieldMultiLine),
	),
	stable("CreateSatisfiesExpression", required(pNodeWhere(ast.FieldExpression, isExpression)), required(pType())),
	updates("CreateSatisfiesExpression", stable("UpdateSatisfiesExpression",
		pTarget(ast.SatisfiesExpression),
		required(pNodeWhere(ast.FieldExpression, isExpression)),
		required(pType()),
	)),
}

func pNameWhere(n string, accepts func(ast.Kind) bool) param {
	p := pNodeWhere(n, accepts)
	p.kind = argName
	return p
}

// leading prepends extra parameters, such as the node of an update.
func leading(extra []param, params ...param) []param {
	return append(append([]param{}, extra...), params...)
}

func importDeclaration(opName string, extra ...param) *operation {
	params := leading(extra,
		pModifiers(),
		pNode(ast.FieldImportClause, ast.ImportClause),
		required(pNodeWhere(ast.FieldModuleSpecifier, isExpression)),
		pNode(ast.FieldAssertClause, ast.AssertClause),
	)

	canonical := names(params)
	return &operation{
		name:   opName,
		params: params,
		conventions: []convention{
			{
				ShapeDecorators,
				withDecorators(canonical),
				func(c Capabilities) bool { return c.DecoratorsFirst && !c.ImportDeclLacksAssert },
			},
			{
				ShapeDecoratorsNoAssert,
				without(withDecorators(canonical), ast.FieldAssertClause),
				func(c Capabilities) bool { return c.DecoratorsFirst && c.ImportDeclLacksAssert },
			},
		},
	}
}

func specifier(opName string) *operation {
	params := []param{
		pBool(ast.FieldIsTypeOnly),
		pName(ast.FieldPropertyName, ast.Identifier),
		required(pName(ast.FieldName, ast.Identifier)),
	}

	return &operation{
		name:   opName,
		params: params,
		conventions: []convention{{
			ShapeNoTypeOnly,
			without(names(params), ast.FieldIsTypeOnly),
			func(c Capabilities) bool { return c.SpecifiersLackTypeOnly },
		}},
	}
}

func typeParameter(opName string, extra ...param) *operation {
	params := leading(extra,
		pModifiers(),
		required(pName(ast.FieldName, ast.Identifier)),
		pNodeWhere(ast.FieldConstraint, isType),
		pNodeWhere(ast.FieldDefault, isType),
	)

	return &operation{
		name:   opName,
		params: params,
		conventions: []convention{{
			ShapeNoModifiers,
			without(names(params), paramModifiers),
			func(c Capabilities) bool { return c.TypeParamLacksModifiers },
		}},
	}
}

var operations = func() map[string]*operation {
	m := make(map[string]*operation, len(catalog))
	for _, op := range catalog {
		m[op.name] = op
	}
	return m
}()

func lookup(name string) (*operation, bool) {
	op, ok := operations[name]
	return op, ok
}

// Operations returns the names of every canonical operation, in catalog
// order.
func Operations() []string {
	out := make([]string, len(catalog))
	for i, op := range catalog {
		out[i] = op.name
	}
	return out
}
