package nodefactory

import "github.com/src-d/nodefactory/ast"

// Factory is the canonical construction API. A library generation that
// needs no adaptation implements it directly and so does every facade.
type Factory interface {
	// Names and literals
	CreateIdentifier(text string) *ast.Node
	CreatePrivateIdentifier(text string) (*ast.Node, error)
	CreateStringLiteral(text string, isSingleQuote bool) *ast.Node
	CreateNumericLiteral(value string) *ast.Node
	CreateQualifiedName(left, right *ast.Node) *ast.Node

	// Tokens and types
	CreateToken(kind ast.Kind) *ast.Node
	CreateModifier(kind ast.Kind) *ast.Node
	CreateKeywordTypeNode(kind ast.Kind) *ast.Node
	CreateTypeReferenceNode(typeName *ast.Node, typeArguments []*ast.Node) *ast.Node
	CreateTypeParameterDeclaration(
		modifiers []*ast.Node,
		name, constraint, defaultType *ast.Node,
	) *ast.Node
	UpdateTypeParameterDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		name, constraint, defaultType *ast.Node,
	) *ast.Node
	CreateImportTypeNode(
		argument, assertions, qualifier *ast.Node,
		typeArguments []*ast.Node,
		isTypeOf bool,
	) *ast.Node
	CreateImportTypeAssertionContainer(clause *ast.Node, multiLine bool) *ast.Node
	CreateExpressionWithTypeArguments(expression *ast.Node, typeArguments []*ast.Node) *ast.Node

	// Expressions
	CreateCallExpression(expression *ast.Node, typeArguments, arguments []*ast.Node) *ast.Node
	CreatePropertyAccessExpression(expression, name *ast.Node) *ast.Node
	CreateSatisfiesExpression(expression, typ *ast.Node) *ast.Node
	UpdateSatisfiesExpression(node, expression, typ *ast.Node) *ast.Node
	CreateClassExpression(
		modifiers []*ast.Node,
		name *ast.Node,
		typeParameters, heritageClauses, members []*ast.Node,
	) *ast.Node

	// Statements
	CreateBlock(statements []*ast.Node, multiLine bool) *ast.Node
	UpdateBlock(node *ast.Node, statements []*ast.Node) *ast.Node
	CreateEmptyStatement() *ast.Node
	CreateExpressionStatement(expression *ast.Node) *ast.Node
	CreateReturnStatement(expression *ast.Node) *ast.Node
	CreateVariableStatement(modifiers []*ast.Node, declarationList *ast.Node) *ast.Node
	CreateVariableDeclarationList(declarations []*ast.Node, flags ast.NodeFlags) *ast.Node
	CreateVariableDeclaration(name, exclamationToken, typ, initializer *ast.Node) *ast.Node

	// Declarations
	CreateFunctionDeclaration(
		modifiers []*ast.Node,
		asteriskToken, name *ast.Node,
		typeParameters, parameters []*ast.Node,
		typ, body *ast.Node,
	) *ast.Node
	CreateClassDeclaration(
		modifiers []*ast.Node,
		name *ast.Node,
		typeParameters, heritageClauses, members []*ast.Node,
	) *ast.Node
	UpdateClassDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		name *ast.Node,
		typeParameters, heritageClauses, members []*ast.Node,
	) *ast.Node
	CreateInterfaceDeclaration(
		modifiers []*ast.Node,
		name *ast.Node,
		typeParameters, heritageClauses, members []*ast.Node,
	) *ast.Node
	CreateTypeAliasDeclaration(
		modifiers []*ast.Node,
		name *ast.Node,
		typeParameters []*ast.Node,
		typ *ast.Node,
	) *ast.Node
	CreateEnumDeclaration(modifiers []*ast.Node, name *ast.Node, members []*ast.Node) *ast.Node
	CreateEnumMember(name, initializer *ast.Node) *ast.Node
	CreateModuleDeclaration(modifiers []*ast.Node, name, body *ast.Node, flags ast.NodeFlags) *ast.Node
	CreateModuleBlock(statements []*ast.Node) *ast.Node
	CreateHeritageClause(token ast.Kind, types []*ast.Node) *ast.Node

	// Class members
	CreateDecorator(expression *ast.Node) *ast.Node
	CreateParameterDeclaration(
		modifiers []*ast.Node,
		dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
	) *ast.Node
	UpdateParameterDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
	) *ast.Node
	CreatePropertyDeclaration(
		modifiers []*ast.Node,
		name, questionOrExclamationToken, typ, initializer *ast.Node,
	) *ast.Node
	UpdatePropertyDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		name, questionOrExclamationToken, typ, initializer *ast.Node,
	) *ast.Node
	CreateMethodDeclaration(
		modifiers []*ast.Node,
		asteriskToken, name, questionToken *ast.Node,
		typeParameters, parameters []*ast.Node,
		typ, body *ast.Node,
	) *ast.Node
	UpdateMethodDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		asteriskToken, name, questionToken *ast.Node,
		typeParameters, parameters []*ast.Node,
		typ, body *ast.Node,
	) *ast.Node
	CreateConstructorDeclaration(modifiers, parameters []*ast.Node, body *ast.Node) *ast.Node
	CreateGetAccessorDeclaration(
		modifiers []*ast.Node,
		name *ast.Node,
		parameters []*ast.Node,
		typ, body *ast.Node,
	) *ast.Node
	CreateSetAccessorDeclaration(
		modifiers []*ast.Node,
		name *ast.Node,
		parameters []*ast.Node,
		body *ast.Node,
	) *ast.Node
	CreateIndexSignature(modifiers, parameters []*ast.Node, typ *ast.Node) *ast.Node
	CreateClassStaticBlockDeclaration(body *ast.Node) *ast.Node
	UpdateClassStaticBlockDeclaration(node, body *ast.Node) *ast.Node

	// Modules
	CreateImportEqualsDeclaration(
		modifiers []*ast.Node,
		isTypeOnly bool,
		name, moduleReference *ast.Node,
	) *ast.Node
	CreateExternalModuleReference(expression *ast.Node) *ast.Node
	CreateImportDeclaration(
		modifiers []*ast.Node,
		importClause, moduleSpecifier, assertClause *ast.Node,
	) *ast.Node
	UpdateImportDeclaration(
		node *ast.Node,
		modifiers []*ast.Node,
		importClause, moduleSpecifier, assertClause *ast.Node,
	) *ast.Node
	CreateImportClause(isTypeOnly bool, name, namedBindings *ast.Node) *ast.Node
	CreateNamespaceImport(name *ast.Node) *ast.Node
	CreateNamedImports(elements []*ast.Node) *ast.Node
	CreateImportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node
	CreateExportAssignment(modifiers []*ast.Node, isExportEquals bool, expression *ast.Node) *ast.Node
	CreateExportDeclaration(
		modifiers []*ast.Node,
		isTypeOnly bool,
		exportClause, moduleSpecifier, assertClause *ast.Node,
	) *ast.Node
	CreateNamedExports(elements []*ast.Node) *ast.Node
	CreateExportSpecifier(isTypeOnly bool, propertyName, name *ast.Node) *ast.Node
	CreateAssertClause(elements []*ast.Node, multiLine bool) *ast.Node
	CreateAssertEntry(name, value *ast.Node) *ast.Node
}
