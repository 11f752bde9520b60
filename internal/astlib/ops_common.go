package astlib

import "github.com/src-d/nodefactory/ast"

// commonOps are the operations whose signature never changed.
type commonOps struct{ c *core }

func (o commonOps) CreateIdentifier(text string) *ast.Node {
	return o.c.identifier(text)
}

func (o commonOps) CreateStringLiteral(text string, isSingleQuote bool) *ast.Node {
	return o.c.stringLiteral(text, isSingleQuote)
}

func (o commonOps) CreateNumericLiteral(value string) *ast.Node {
	return o.c.numericLiteral(value)
}

func (o commonOps) CreateToken(kind ast.Kind) *ast.Node {
	return o.c.token(kind)
}

func (o commonOps) CreateModifier(kind ast.Kind) *ast.Node {
	return o.c.token(kind)
}

func (o commonOps) CreateKeywordTypeNode(kind ast.Kind) *ast.Node {
	return o.c.token(kind)
}

func (o commonOps) CreateTypeReferenceNode(typeName *ast.Node, typeArguments []*ast.Node) *ast.Node {
	return o.c.typeReference(typeName, typeArguments)
}

func (o commonOps) CreateQualifiedName(left, right *ast.Node) *ast.Node {
	return o.c.qualifiedName(left, right)
}

func (o commonOps) CreateDecorator(expression *ast.Node) *ast.Node {
	return o.c.decorator(expression)
}

func (o commonOps) CreateBlock(statements []*ast.Node, multiLine bool) *ast.Node {
	return o.c.block(statements, multiLine)
}

func (o commonOps) UpdateBlock(node *ast.Node, statements []*ast.Node) *ast.Node {
	return o.c.updateBlock(node, statements)
}

func (o commonOps) CreateEmptyStatement() *ast.Node {
	return o.c.emptyStatement()
}

func (o commonOps) CreateExpressionStatement(expression *ast.Node) *ast.Node {
	return o.c.expressionStatement(expression)
}

func (o commonOps) CreateReturnStatement(expression *ast.Node) *ast.Node {
	return o.c.returnStatement(expression)
}

func (o commonOps) CreateVariableStatement(modifiers []*ast.Node, declarationList *ast.Node) *ast.Node {
	return o.c.variableStatement(modifiers, declarationList)
}

func (o commonOps) CreateVariableDeclarationList(declarations []*ast.Node, flags ast.NodeFlags) *ast.Node {
	return o.c.variableDeclarationList(declarations, flags)
}

func (o commonOps) CreateCallExpression(expression *ast.Node, typeArguments, arguments []*ast.Node) *ast.Node {
	return o.c.callExpression(expression, typeArguments, arguments)
}

func (o commonOps) CreatePropertyAccessExpression(expression, name *ast.Node) *ast.Node {
	return o.c.propertyAccess(expression, name)
}

func (o commonOps) CreateNamedImports(elements []*ast.Node) *ast.Node {
	return o.c.elements(ast.NamedImports, elements)
}

func (o commonOps) CreateNamedExports(elements []*ast.Node) *ast.Node {
	return o.c.elements(ast.NamedExports, elements)
}

func (o commonOps) CreateNamespaceImport(name *ast.Node) *ast.Node {
	return o.c.namespaceImport(name)
}

func (o commonOps) CreateExternalModuleReference(expression *ast.Node) *ast.Node {
	return o.c.externalModuleReference(expression)
}

func (o commonOps) CreateModuleBlock(statements []*ast.Node) *ast.Node {
	return o.c.moduleBlock(statements)
}

func (o commonOps) CreateEnumMember(name, initializer *ast.Node) *ast.Node {
	return o.c.enumMember(name, initializer)
}

func (o commonOps) CreateHeritageClause(token ast.Kind, types []*ast.Node) *ast.Node {
	return o.c.heritageClause(token, types)
}

// modernOps are the signatures introduced together with the factory object.
type modernOps struct{ c *core }

func (o modernOps) CreatePrivateIdentifier(text string) (*ast.Node, error) {
	return o.c.privateIdentifier(text)
}

func (o modernOps) CreateVariableDeclaration(name, exclamationToken, typ, initializer *ast.Node) *ast.Node {
	return o.c.variableDeclaration(name, exclamationToken, typ, initializer)
}

func (o modernOps) CreateExpressionWithTypeArguments(expression *ast.Node, typeArguments []*ast.Node) *ast.Node {
	return o.c.expressionWithTypeArguments(expression, typeArguments)
}

func (o modernOps) CreateImportClause(isTypeOnly bool, name, namedBindings *ast.Node) *ast.Node {
	return o.c.importClause(isTypeOnly, name, namedBindings)
}

// assertOps arrived with import assertions.
type assertOps struct{ c *core }

func (o assertOps) CreateAssertClause(elements []*ast.Node, multiLine bool) *ast.Node {
	return o.c.assertClause(elements, multiLine)
}

func (o assertOps) CreateAssertEntry(name, value *ast.Node) *ast.Node {
	return o.c.assertEntry(name, value)
}

func (o assertOps) CreateImportTypeAssertionContainer(clause *ast.Node, multiLine bool) *ast.Node {
	return o.c.importTypeAssertionContainer(clause, multiLine)
}

func (o assertOps) CreateImportTypeNode(
	argument, assertions, qualifier *ast.Node,
	typeArguments []*ast.Node,
	isTypeOf bool,
) *ast.Node {
	return o.c.importType(argument, assertions, qualifier, typeArguments, isTypeOf)
}

func (o assertOps) CreateImportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node {
	return o.c.specifier(ast.ImportSpecifier, isTypeOnly, propertyName, name)
}

func (o assertOps) CreateExportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node {
	return o.c.specifier(ast.ExportSpecifier, isTypeOnly, propertyName, name)
}

// typeParamOps accept variance modifiers on type parameters.
type typeParamOps struct{ c *core }

func (o typeParamOps) CreateTypeParameterDeclaration(
	modifiers []*ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	return o.c.typeParameter(modifiers, name, constraint, defaultType)
}

func (o typeParamOps) UpdateTypeParameterDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	return o.c.updateTypeParameter(node, modifiers, name, constraint, defaultType)
}
