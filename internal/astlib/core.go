package astlib

import (
	"fmt"
	"strings"

	"github.com/src-d/nodefactory/ast"
)

// core holds the node constructors every generation is built on. Generation
// types only differ in which constructors they expose and in the order of
// their parameters.
type core struct {
	// trackOriginal makes update operations link the new node to the one it
	// replaces and copy its range.
	trackOriginal bool
}

func (c *core) node(kind ast.Kind) *ast.Node {
	n := ast.NewNode(kind)
	n.Flags |= ast.FlagSynthesized
	return n
}

var kindTransformFlags = map[ast.Kind]ast.TransformFlags{
	ast.PrivateIdentifier:           ast.ContainsClassFields,
	ast.PropertyDeclaration:         ast.ContainsClassFields,
	ast.ClassStaticBlockDeclaration: ast.ContainsClassFields | ast.ContainsES2022,
	ast.ClassDeclaration:            ast.ContainsES2015,
	ast.ClassExpression:             ast.ContainsES2015,
	ast.Decorator:                   ast.ContainsDecorators | ast.ContainsTypeScript,
	ast.InterfaceDeclaration:        ast.ContainsTypeScript,
	ast.TypeAliasDeclaration:        ast.ContainsTypeScript,
	ast.EnumDeclaration:             ast.ContainsTypeScript,
	ast.TypeReference:               ast.ContainsTypeScript,
	ast.TypeParameter:               ast.ContainsTypeScript,
	ast.ImportType:                  ast.ContainsTypeScript,
	ast.IndexSignature:              ast.ContainsTypeScript,
	ast.SatisfiesExpression:         ast.ContainsTypeScript,
	ast.AssertClause:                ast.ContainsESNext,
	ast.AssertEntry:                 ast.ContainsESNext,
	ast.PublicKeyword:               ast.ContainsTypeScript,
	ast.PrivateKeyword:              ast.ContainsTypeScript,
	ast.ProtectedKeyword:            ast.ContainsTypeScript,
	ast.ReadonlyKeyword:             ast.ContainsTypeScript,
	ast.DeclareKeyword:              ast.ContainsTypeScript,
	ast.AbstractKeyword:             ast.ContainsTypeScript,
	ast.OverrideKeyword:             ast.ContainsTypeScript,
}

// finish computes the transform flags of a freshly built node.
func (c *core) finish(n *ast.Node) *ast.Node {
	flags := kindTransformFlags[n.Kind]
	if n.Kind.IsKeywordType() {
		flags |= ast.ContainsTypeScript
	}

	ast.ForEachChild(n, func(child *ast.Node) bool {
		flags |= child.TransformFlags
		return true
	})

	n.TransformFlags = flags
	return n
}

// update links updated to original when the generation tracks it.
func (c *core) update(updated, original *ast.Node) *ast.Node {
	if c.trackOriginal {
		updated.Original = original
		updated.Pos, updated.End = original.Pos, original.End
	}
	return updated
}

// unchanged takes alternating field names and values and reports whether
// every value is identical to the node's current one.
func unchanged(n *ast.Node, pairs ...interface{}) bool {
	for i := 0; i+1 < len(pairs); i += 2 {
		cur, _ := n.Value(pairs[i].(string))
		if !ast.SameValue(cur, pairs[i+1]) {
			return false
		}
	}
	return true
}

func (c *core) decorated(
	kind ast.Kind,
	decorators, modifiers []*ast.Node,
) *ast.Node {
	n := c.node(kind)
	if len(decorators) > 0 {
		n.Set(ast.FieldDecorators, decorators)
	}
	return n.Set(ast.FieldModifiers, modifiers)
}

func (c *core) identifier(text string) *ast.Node {
	n := c.node(ast.Identifier)
	n.Text = text
	return c.finish(n)
}

func (c *core) privateIdentifier(text string) (*ast.Node, error) {
	if text != "" && !strings.HasPrefix(text, "#") {
		return nil, fmt.Errorf("first character of private identifier must be #: %s", text)
	}

	n := c.node(ast.PrivateIdentifier)
	n.Text = text
	return c.finish(n), nil
}

func (c *core) stringLiteral(text string, singleQuote bool) *ast.Node {
	n := c.node(ast.StringLiteral)
	n.Text = text
	n.Set(ast.FieldSingleQuote, singleQuote)
	return c.finish(n)
}

func (c *core) numericLiteral(value string) *ast.Node {
	n := c.node(ast.NumericLiteral)
	n.Text = value
	return c.finish(n)
}

func (c *core) token(kind ast.Kind) *ast.Node {
	return c.finish(c.node(kind))
}

func (c *core) typeReference(typeName *ast.Node, typeArguments []*ast.Node) *ast.Node {
	n := c.node(ast.TypeReference).
		Set(ast.FieldTypeName, typeName).
		Set(ast.FieldTypeArguments, typeArguments)
	return c.finish(n)
}

func (c *core) qualifiedName(left, right *ast.Node) *ast.Node {
	n := c.node(ast.QualifiedName).
		Set(ast.FieldLeft, left).
		Set(ast.FieldRight, right)
	return c.finish(n)
}

func (c *core) decorator(expression *ast.Node) *ast.Node {
	return c.finish(c.node(ast.Decorator).Set(ast.FieldExpression, expression))
}

func (c *core) block(statements []*ast.Node, multiLine bool) *ast.Node {
	n := c.node(ast.Block).
		Set(ast.FieldStatements, statements).
		Set(ast.FieldMultiLine, multiLine)
	return c.finish(n)
}

func (c *core) updateBlock(node *ast.Node, statements []*ast.Node) *ast.Node {
	if unchanged(node, ast.FieldStatements, statements) {
		return node
	}
	return c.update(c.block(statements, node.Bool(ast.FieldMultiLine)), node)
}

func (c *core) emptyStatement() *ast.Node {
	return c.finish(c.node(ast.EmptyStatement))
}

func (c *core) expressionStatement(expression *ast.Node) *ast.Node {
	return c.finish(c.node(ast.ExpressionStatement).Set(ast.FieldExpression, expression))
}

func (c *core) returnStatement(expression *ast.Node) *ast.Node {
	return c.finish(c.node(ast.ReturnStatement).Set(ast.FieldExpression, expression))
}

func (c *core) variableStatement(modifiers []*ast.Node, declarationList *ast.Node) *ast.Node {
	n := c.node(ast.VariableStatement).
		Set(ast.FieldModifiers, modifiers).
		Set(ast.FieldDeclarationList, declarationList)
	return c.finish(n)
}

func (c *core) variableDeclarationList(declarations []*ast.Node, flags ast.NodeFlags) *ast.Node {
	n := c.node(ast.VariableDeclarationList).Set(ast.FieldDeclarations, declarations)
	n.Flags |= flags & ast.FlagBlockScoped
	return c.finish(n)
}

func (c *core) variableDeclaration(name, exclamationToken, typ, initializer *ast.Node) *ast.Node {
	n := c.node(ast.VariableDeclaration).
		Set(ast.FieldName, name).
		Set(ast.FieldExclamationToken, exclamationToken).
		Set(ast.FieldType, typ).
		Set(ast.FieldInitializer, initializer)
	return c.finish(n)
}

func (c *core) callExpression(expression *ast.Node, typeArguments, arguments []*ast.Node) *ast.Node {
	n := c.node(ast.CallExpression).
		Set(ast.FieldExpression, expression).
		Set(ast.FieldTypeArguments, typeArguments).
		Set(ast.FieldArguments, arguments)
	return c.finish(n)
}

func (c *core) propertyAccess(expression, name *ast.Node) *ast.Node {
	n := c.node(ast.PropertyAccessExpression).
		Set(ast.FieldExpression, expression).
		Set(ast.FieldName, name)
	return c.finish(n)
}

func (c *core) elements(kind ast.Kind, elements []*ast.Node) *ast.Node {
	return c.finish(c.node(kind).Set(ast.FieldElements, elements))
}

func (c *core) namespaceImport(name *ast.Node) *ast.Node {
	return c.finish(c.node(ast.NamespaceImport).Set(ast.FieldName, name))
}

func (c *core) externalModuleReference(expression *ast.Node) *ast.Node {
	return c.finish(c.node(ast.ExternalModuleReference).Set(ast.FieldExpression, expression))
}

func (c *core) moduleBlock(statements []*ast.Node) *ast.Node {
	return c.finish(c.node(ast.ModuleBlock).Set(ast.FieldStatements, statements))
}

func (c *core) enumMember(name, initializer *ast.Node) *ast.Node {
	n := c.node(ast.EnumMember).
		Set(ast.FieldName, name).
		Set(ast.FieldInitializer, initializer)
	return c.finish(n)
}

func (c *core) heritageClause(token ast.Kind, types []*ast.Node) *ast.Node {
	n := c.node(ast.HeritageClause).
		Set(ast.FieldToken, c.token(token)).
		Set(ast.FieldTypes, types)
	return c.finish(n)
}

func (c *core) expressionWithTypeArguments(expression *ast.Node, typeArguments []*ast.Node) *ast.Node {
	n := c.node(ast.ExpressionWithTypeArguments).
		Set(ast.FieldExpression, expression).
		Set(ast.FieldTypeArguments, typeArguments)
	return c.finish(n)
}

func (c *core) importClause(isTypeOnly bool, name, namedBindings *ast.Node) *ast.Node {
	n := c.node(ast.ImportClause).
		Set(ast.FieldIsTypeOnly, isTypeOnly).
		Set(ast.FieldName, name).
		Set(ast.FieldNamedBindings, namedBindings)
	return c.finish(n)
}

func (c *core) parameter(
	decorators, modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	n := c.decorated(ast.Parameter, decorators, modifiers).
		Set(ast.FieldDotDotDotToken, dotDotDotToken).
		Set(ast.FieldName, name).
		Set(ast.FieldQuestionToken, questionToken).
		Set(ast.FieldType, typ).
		Set(ast.FieldInitializer, initializer)
	return c.finish(n)
}

func (c *core) updateParameter(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldDotDotDotToken, dotDotDotToken,
		ast.FieldName, name,
		ast.FieldQuestionToken, questionToken,
		ast.FieldType, typ,
		ast.FieldInitializer, initializer,
	) {
		return node
	}

	return c.update(c.parameter(decorators, modifiers, dotDotDotToken, name, questionToken, typ, initializer), node)
}

func (c *core) property(
	decorators, modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	n := c.decorated(ast.PropertyDeclaration, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldQuestionOrExclamationToken, questionOrExclamationToken).
		Set(ast.FieldType, typ).
		Set(ast.FieldInitializer, initializer)
	return c.finish(n)
}

func (c *core) updateProperty(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldName, name,
		ast.FieldQuestionOrExclamationToken, questionOrExclamationToken,
		ast.FieldType, typ,
		ast.FieldInitializer, initializer,
	) {
		return node
	}

	return c.update(c.property(decorators, modifiers, name, questionOrExclamationToken, typ, initializer), node)
}

func (c *core) method(
	decorators, modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	n := c.decorated(ast.MethodDeclaration, decorators, modifiers).
		Set(ast.FieldAsteriskToken, asteriskToken).
		Set(ast.FieldName, name).
		Set(ast.FieldQuestionToken, questionToken).
		Set(ast.FieldTypeParameters, typeParameters).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldType, typ).
		Set(ast.FieldBody, body)
	return c.finish(n)
}

func (c *core) updateMethod(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldAsteriskToken, asteriskToken,
		ast.FieldName, name,
		ast.FieldQuestionToken, questionToken,
		ast.FieldTypeParameters, typeParameters,
		ast.FieldParameters, parameters,
		ast.FieldType, typ,
		ast.FieldBody, body,
	) {
		return node
	}

	updated := c.method(decorators, modifiers, asteriskToken, name, questionToken,
		typeParameters, parameters, typ, body)
	return c.update(updated, node)
}

func (c *core) constructor(decorators, modifiers, parameters []*ast.Node, body *ast.Node) *ast.Node {
	n := c.decorated(ast.Constructor, decorators, modifiers).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldBody, body)
	return c.finish(n)
}

func (c *core) getAccessor(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	n := c.decorated(ast.GetAccessor, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldType, typ).
		Set(ast.FieldBody, body)
	return c.finish(n)
}

func (c *core) setAccessor(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	body *ast.Node,
) *ast.Node {
	n := c.decorated(ast.SetAccessor, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldBody, body)
	return c.finish(n)
}

func (c *core) indexSignature(decorators, modifiers, parameters []*ast.Node, typ *ast.Node) *ast.Node {
	n := c.decorated(ast.IndexSignature, decorators, modifiers).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldType, typ)
	return c.finish(n)
}

func (c *core) classLike(
	kind ast.Kind,
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	n := c.decorated(kind, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldTypeParameters, typeParameters).
		Set(ast.FieldHeritageClauses, heritageClauses).
		Set(ast.FieldMembers, members)
	return c.finish(n)
}

func (c *core) updateClass(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldName, name,
		ast.FieldTypeParameters, typeParameters,
		ast.FieldHeritageClauses, heritageClauses,
		ast.FieldMembers, members,
	) {
		return node
	}

	updated := c.classLike(node.Kind, decorators, modifiers, name,
		typeParameters, heritageClauses, members)
	return c.update(updated, node)
}

func (c *core) function(
	decorators, modifiers []*ast.Node,
	asteriskToken, name *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	n := c.decorated(ast.FunctionDeclaration, decorators, modifiers).
		Set(ast.FieldAsteriskToken, asteriskToken).
		Set(ast.FieldName, name).
		Set(ast.FieldTypeParameters, typeParameters).
		Set(ast.FieldParameters, parameters).
		Set(ast.FieldType, typ).
		Set(ast.FieldBody, body)
	return c.finish(n)
}

func (c *core) typeAlias(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters []*ast.Node,
	typ *ast.Node,
) *ast.Node {
	n := c.decorated(ast.TypeAliasDeclaration, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldTypeParameters, typeParameters).
		Set(ast.FieldType, typ)
	return c.finish(n)
}

func (c *core) enum(decorators, modifiers []*ast.Node, name *ast.Node, members []*ast.Node) *ast.Node {
	n := c.decorated(ast.EnumDeclaration, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldMembers, members)
	return c.finish(n)
}

func (c *core) module(
	decorators, modifiers []*ast.Node,
	name, body *ast.Node,
	flags ast.NodeFlags,
) *ast.Node {
	n := c.decorated(ast.ModuleDeclaration, decorators, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldBody, body)
	n.Flags |= flags & (ast.FlagNamespace | ast.FlagGlobalAugmentation)
	return c.finish(n)
}

func (c *core) exportAssignment(
	decorators, modifiers []*ast.Node,
	isExportEquals bool,
	expression *ast.Node,
) *ast.Node {
	n := c.decorated(ast.ExportAssignment, decorators, modifiers).
		Set(ast.FieldIsExportEquals, isExportEquals).
		Set(ast.FieldExpression, expression)
	return c.finish(n)
}

func (c *core) importEquals(
	decorators, modifiers []*ast.Node,
	isTypeOnly bool,
	name, moduleReference *ast.Node,
) *ast.Node {
	n := c.decorated(ast.ImportEqualsDeclaration, decorators, modifiers).
		Set(ast.FieldIsTypeOnly, isTypeOnly).
		Set(ast.FieldName, name).
		Set(ast.FieldModuleReference, moduleReference)
	return c.finish(n)
}

func (c *core) importDeclaration(
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	n := c.decorated(ast.ImportDeclaration, decorators, modifiers).
		Set(ast.FieldImportClause, importClause).
		Set(ast.FieldModuleSpecifier, moduleSpecifier).
		Set(ast.FieldAssertClause, assertClause)
	return c.finish(n)
}

func (c *core) updateImportDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldImportClause, importClause,
		ast.FieldModuleSpecifier, moduleSpecifier,
		ast.FieldAssertClause, assertClause,
	) {
		return node
	}

	updated := c.importDeclaration(decorators, modifiers, importClause, moduleSpecifier, assertClause)
	return c.update(updated, node)
}

func (c *core) exportDeclaration(
	decorators, modifiers []*ast.Node,
	isTypeOnly bool,
	exportClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	n := c.decorated(ast.ExportDeclaration, decorators, modifiers).
		Set(ast.FieldIsTypeOnly, isTypeOnly).
		Set(ast.FieldExportClause, exportClause).
		Set(ast.FieldModuleSpecifier, moduleSpecifier).
		Set(ast.FieldAssertClause, assertClause)
	return c.finish(n)
}

func (c *core) specifier(kind ast.Kind, isTypeOnly bool, propertyName, name *ast.Node) *ast.Node {
	n := c.node(kind).
		Set(ast.FieldIsTypeOnly, isTypeOnly).
		Set(ast.FieldPropertyName, propertyName).
		Set(ast.FieldName, name)
	return c.finish(n)
}

func (c *core) importType(
	argument, assertions, qualifier *ast.Node,
	typeArguments []*ast.Node,
	isTypeOf bool,
) *ast.Node {
	n := c.node(ast.ImportType).
		Set(ast.FieldArgument, argument).
		Set(ast.FieldAssertions, assertions).
		Set(ast.FieldQualifier, qualifier).
		Set(ast.FieldTypeArguments, typeArguments).
		Set(ast.FieldIsTypeOf, isTypeOf)
	return c.finish(n)
}

func (c *core) typeParameter(modifiers []*ast.Node, name, constraint, defaultType *ast.Node) *ast.Node {
	n := c.node(ast.TypeParameter).
		Set(ast.FieldModifiers, modifiers).
		Set(ast.FieldName, name).
		Set(ast.FieldConstraint, constraint).
		Set(ast.FieldDefault, defaultType)
	return c.finish(n)
}

func (c *core) updateTypeParameter(
	node *ast.Node,
	modifiers []*ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	if unchanged(node,
		ast.FieldModifiers, modifiers,
		ast.FieldName, name,
		ast.FieldConstraint, constraint,
		ast.FieldDefault, defaultType,
	) {
		return node
	}

	return c.update(c.typeParameter(modifiers, name, constraint, defaultType), node)
}

func (c *core) staticBlock(decorators, modifiers []*ast.Node, body *ast.Node) *ast.Node {
	n := c.node(ast.ClassStaticBlockDeclaration)
	if len(decorators) > 0 {
		n.Set(ast.FieldDecorators, decorators)
	}
	if len(modifiers) > 0 {
		n.Set(ast.FieldModifiers, modifiers)
	}
	return c.finish(n.Set(ast.FieldBody, body))
}

func (c *core) updateStaticBlock(node *ast.Node, decorators, modifiers []*ast.Node, body *ast.Node) *ast.Node {
	if unchanged(node,
		ast.FieldDecorators, decorators,
		ast.FieldModifiers, modifiers,
		ast.FieldBody, body,
	) {
		return node
	}

	return c.update(c.staticBlock(decorators, modifiers, body), node)
}

func (c *core) assertClause(elements []*ast.Node, multiLine bool) *ast.Node {
	n := c.node(ast.AssertClause).
		Set(ast.FieldElements, elements).
		Set(ast.FieldMultiLine, multiLine)
	return c.finish(n)
}

func (c *core) assertEntry(name, value *ast.Node) *ast.Node {
	n := c.node(ast.AssertEntry).
		Set(ast.FieldName, name).
		Set(ast.FieldValue, value)
	return c.finish(n)
}

func (c *core) importTypeAssertionContainer(clause *ast.Node, multiLine bool) *ast.Node {
	n := c.node(ast.ImportTypeAssertionContainer).
		Set(ast.FieldAssertClause, clause).
		Set(ast.FieldMultiLine, multiLine)
	return c.finish(n)
}

func (c *core) satisfies(expression, typ *ast.Node) *ast.Node {
	n := c.node(ast.SatisfiesExpression).
		Set(ast.FieldExpression, expression).
		Set(ast.FieldType, typ)
	return c.finish(n)
}

func (c *core) updateSatisfies(node, expression, typ *ast.Node) *ast.Node {
	if unchanged(node, ast.FieldExpression, expression, ast.FieldType, typ) {
		return node
	}
	return c.update(c.satisfies(expression, typ), node)
}
