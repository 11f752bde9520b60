package nodefactory

import "github.com/src-d/nodefactory/ast"

func (f *facade) CreateIdentifier(text string) *ast.Node {
	return f.must("CreateIdentifier", text)
}

func (f *facade) CreateStringLiteral(text string, isSingleQuote bool) *ast.Node {
	return f.must("CreateStringLiteral", text, isSingleQuote)
}

func (f *facade) CreateNumericLiteral(value string) *ast.Node {
	return f.must("CreateNumericLiteral", value)
}

func (f *facade) CreateQualifiedName(left, right *ast.Node) *ast.Node {
	return f.must("CreateQualifiedName", left, right)
}

func (f *facade) CreateToken(kind ast.Kind) *ast.Node {
	return f.must("CreateToken", kind)
}

func (f *facade) CreateModifier(kind ast.Kind) *ast.Node {
	return f.must("CreateModifier", kind)
}

func (f *facade) CreateKeywordTypeNode(kind ast.Kind) *ast.Node {
	return f.must("CreateKeywordTypeNode", kind)
}

func (f *facade) CreateTypeReferenceNode(typeName *ast.Node, typeArguments []*ast.Node) *ast.Node {
	return f.must("CreateTypeReferenceNode", typeName, typeArguments)
}

func (f *facade) CreateTypeParameterDeclaration(
	modifiers []*ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	return f.must("CreateTypeParameterDeclaration", modifiers, name, constraint, defaultType)
}

func (f *facade) UpdateTypeParameterDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	return f.must("UpdateTypeParameterDeclaration", node, modifiers, name, constraint, defaultType)
}

func (f *facade) CreateImportTypeNode(
	argument, assertions, qualifier *ast.Node,
	typeArguments []*ast.Node,
	isTypeOf bool,
) *ast.Node {
	return f.must("CreateImportTypeNode", argument, assertions, qualifier, typeArguments, isTypeOf)
}

func (f *facade) CreateImportTypeAssertionContainer(clause *ast.Node, multiLine bool) *ast.Node {
	return f.must("CreateImportTypeAssertionContainer", clause, multiLine)
}

func (f *facade) CreateExpressionWithTypeArguments(expression *ast.Node, typeArguments []*ast.Node) *ast.Node {
	return f.must("CreateExpressionWithTypeArguments", expression, typeArguments)
}

func (f *facade) CreateCallExpression(expression *ast.Node, typeArguments, arguments []*ast.Node) *ast.Node {
	return f.must("CreateCallExpression", expression, typeArguments, arguments)
}

func (f *facade) CreatePropertyAccessExpression(expression, name *ast.Node) *ast.Node {
	return f.must("CreatePropertyAccessExpression", expression, name)
}

func (f *facade) CreateSatisfiesExpression(expression, typ *ast.Node) *ast.Node {
	return f.must("CreateSatisfiesExpression", expression, typ)
}

func (f *facade) UpdateSatisfiesExpression(node, expression, typ *ast.Node) *ast.Node {
	return f.must("UpdateSatisfiesExpression", node, expression, typ)
}

func (f *facade) CreateClassExpression(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return f.must("CreateClassExpression",
		modifiers, name, typeParameters, heritageClauses, members)
}

func (f *facade) CreateBlock(statements []*ast.Node, multiLine bool) *ast.Node {
	return f.must("CreateBlock", statements, multiLine)
}

func (f *facade) UpdateBlock(node *ast.Node, statements []*ast.Node) *ast.Node {
	return f.must("UpdateBlock", node, statements)
}

func (f *facade) CreateEmptyStatement() *ast.Node {
	return f.must("CreateEmptyStatement")
}

func (f *facade) CreateExpressionStatement(expression *ast.Node) *ast.Node {
	return f.must("CreateExpressionStatement", expression)
}

func (f *facade) CreateReturnStatement(expression *ast.Node) *ast.Node {
	return f.must("CreateReturnStatement", expression)
}

func (f *facade) CreateVariableStatement(modifiers []*ast.Node, declarationList *ast.Node) *ast.Node {
	return f.must("CreateVariableStatement", modifiers, declarationList)
}

func (f *facade) CreateVariableDeclarationList(declarations []*ast.Node, flags ast.NodeFlags) *ast.Node {
	return f.must("CreateVariableDeclarationList", declarations, flags)
}

func (f *facade) CreateVariableDeclaration(name, exclamationToken, typ, initializer *ast.Node) *ast.Node {
	return f.must("CreateVariableDeclaration", name, exclamationToken, typ, initializer)
}

func (f *facade) CreateFunctionDeclaration(
	modifiers []*ast.Node,
	asteriskToken, name *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return f.must("CreateFunctionDeclaration",
		modifiers, asteriskToken, name, typeParameters, parameters, typ, body)
}

func (f *facade) CreateClassDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return f.must("CreateClassDeclaration",
		modifiers, name, typeParameters, heritageClauses, members)
}

func (f *facade) UpdateClassDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return f.must("UpdateClassDeclaration",
		node, modifiers, name, typeParameters, heritageClauses, members)
}

func (f *facade) CreateInterfaceDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return f.must("CreateInterfaceDeclaration",
		modifiers, name, typeParameters, heritageClauses, members)
}

func (f *facade) CreateTypeAliasDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters []*ast.Node,
	typ *ast.Node,
) *ast.Node {
	return f.must("CreateTypeAliasDeclaration", modifiers, name, typeParameters, typ)
}

func (f *facade) CreateEnumDeclaration(modifiers []*ast.Node, name *ast.Node, members []*ast.Node) *ast.Node {
	return f.must("CreateEnumDeclaration", modifiers, name, members)
}

func (f *facade) CreateEnumMember(name, initializer *ast.Node) *ast.Node {
	return f.must("CreateEnumMember", name, initializer)
}

func (f *facade) CreateModuleDeclaration(modifiers []*ast.Node, name, body *ast.Node, flags ast.NodeFlags) *ast.Node {
	return f.must("CreateModuleDeclaration", modifiers, name, body, flags)
}

func (f *facade) CreateModuleBlock(statements []*ast.Node) *ast.Node {
	return f.must("CreateModuleBlock", statements)
}

func (f *facade) CreateHeritageClause(token ast.Kind, types []*ast.Node) *ast.Node {
	return f.must("CreateHeritageClause", token, types)
}

func (f *facade) CreateDecorator(expression *ast.Node) *ast.Node {
	return f.must("CreateDecorator", expression)
}

func (f *facade) CreateParameterDeclaration(
	modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return f.must("CreateParameterDeclaration",
		modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (f *facade) UpdateParameterDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return f.must("UpdateParameterDeclaration",
		node, modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (f *facade) CreatePropertyDeclaration(
	modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return f.must("CreatePropertyDeclaration",
		modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (f *facade) UpdatePropertyDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return f.must("UpdatePropertyDeclaration",
		node, modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (f *facade) CreateMethodDeclaration(
	modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return f.must("CreateMethodDeclaration",
		modifiers, asteriskToken, name, questionToken, typeParameters, parameters, typ, body)
}

func (f *facade) UpdateMethodDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return f.must("UpdateMethodDeclaration",
		node, modifiers, asteriskToken, name, questionToken, typeParameters, parameters, typ, body)
}

func (f *facade) CreateConstructorDeclaration(modifiers, parameters []*ast.Node, body *ast.Node) *ast.Node {
	return f.must("CreateConstructorDeclaration", modifiers, parameters, body)
}

func (f *facade) CreateGetAccessorDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return f.must("CreateGetAccessorDeclaration", modifiers, name, parameters, typ, body)
}

func (f *facade) CreateSetAccessorDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return f.must("CreateSetAccessorDeclaration", modifiers, name, parameters, body)
}

func (f *facade) CreateIndexSignature(modifiers, parameters []*ast.Node, typ *ast.Node) *ast.Node {
	return f.must("CreateIndexSignature", modifiers, parameters, typ)
}

func (f *facade) CreateClassStaticBlockDeclaration(body *ast.Node) *ast.Node {
	return f.must("CreateClassStaticBlockDeclaration", body)
}

func (f *facade) UpdateClassStaticBlockDeclaration(node, body *ast.Node) *ast.Node {
	return f.must("UpdateClassStaticBlockDeclaration", node, body)
}

func (f *facade) CreateImportEqualsDeclaration(
	modifiers []*ast.Node,
	isTypeOnly bool,
	name, moduleReference *ast.Node,
) *ast.Node {
	return f.must("CreateImportEqualsDeclaration", modifiers, isTypeOnly, name, moduleReference)
}

func (f *facade) CreateExternalModuleReference(expression *ast.Node) *ast.Node {
	return f.must("CreateExternalModuleReference", expression)
}

func (f *facade) CreateImportDeclaration(
	modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.must("CreateImportDeclaration", modifiers, importClause, moduleSpecifier, assertClause)
}

func (f *facade) UpdateImportDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.must("UpdateImportDeclaration",
		node, modifiers, importClause, moduleSpecifier, assertClause)
}

func (f *facade) CreateImportClause(isTypeOnly bool, name, namedBindings *ast.Node) *ast.Node {
	return f.must("CreateImportClause", isTypeOnly, name, namedBindings)
}

func (f *facade) CreateNamespaceImport(name *ast.Node) *ast.Node {
	return f.must("CreateNamespaceImport", name)
}

func (f *facade) CreateNamedImports(elements []*ast.Node) *ast.Node {
	return f.must("CreateNamedImports", elements)
}

func (f *facade) CreateImportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node {
	return f.must("CreateImportSpecifier", isTypeOnly, propertyName, name)
}

func (f *facade) CreateExportAssignment(modifiers []*ast.Node, isExportEquals bool, expression *ast.Node) *ast.Node {
	return f.must("CreateExportAssignment", modifiers, isExportEquals, expression)
}

func (f *facade) CreateExportDeclaration(
	modifiers []*ast.Node,
	isTypeOnly bool,
	exportClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return f.must("CreateExportDeclaration",
		modifiers, isTypeOnly, exportClause, moduleSpecifier, assertClause)
}

func (f *facade) CreateNamedExports(elements []*ast.Node) *ast.Node {
	return f.must("CreateNamedExports", elements)
}

func (f *facade) CreateExportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node {
	return f.must("CreateExportSpecifier", isTypeOnly, propertyName, name)
}

func (f *facade) CreateAssertClause(elements []*ast.Node, multiLine bool) *ast.Node {
	return f.must("CreateAssertClause", elements, multiLine)
}

func (f *facade) CreateAssertEntry(name, value *ast.Node) *ast.Node {
	return f.must("CreateAssertEntry", name, value)
}

