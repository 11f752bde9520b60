package astlib

import "github.com/src-d/nodefactory/ast"

// mergedOps take decorators as part of the modifiers list.
type mergedOps struct{ c *core }

func (o mergedOps) CreateParameterDeclaration(
	modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.parameter(nil, modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (o mergedOps) UpdateParameterDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.updateParameter(node, nil, modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (o mergedOps) CreatePropertyDeclaration(
	modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.property(nil, modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (o mergedOps) UpdatePropertyDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.updateProperty(node, nil, modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (o mergedOps) CreateMethodDeclaration(
	modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.method(nil, modifiers, asteriskToken, name, questionToken,
		typeParameters, parameters, typ, body)
}

func (o mergedOps) UpdateMethodDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.updateMethod(node, nil, modifiers, asteriskToken, name, questionToken,
		typeParameters, parameters, typ, body)
}

func (o mergedOps) CreateConstructorDeclaration(modifiers, parameters []*ast.Node, body *ast.Node) *ast.Node {
	return o.c.constructor(nil, modifiers, parameters, body)
}

func (o mergedOps) CreateGetAccessorDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.getAccessor(nil, modifiers, name, parameters, typ, body)
}

func (o mergedOps) CreateSetAccessorDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return o.c.setAccessor(nil, modifiers, name, parameters, body)
}

func (o mergedOps) CreateIndexSignature(modifiers, parameters []*ast.Node, typ *ast.Node) *ast.Node {
	return o.c.indexSignature(nil, modifiers, parameters, typ)
}

func (o mergedOps) CreateClassDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.ClassDeclaration, nil, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o mergedOps) UpdateClassDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.updateClass(node, nil, modifiers, name, typeParameters, heritageClauses, members)
}

func (o mergedOps) CreateClassExpression(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.ClassExpression, nil, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o mergedOps) CreateFunctionDeclaration(
	modifiers []*ast.Node,
	asteriskToken, name *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.function(nil, modifiers, asteriskToken, name, typeParameters, parameters, typ, body)
}

func (o mergedOps) CreateInterfaceDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.InterfaceDeclaration, nil, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o mergedOps) CreateTypeAliasDeclaration(
	modifiers []*ast.Node,
	name *ast.Node,
	typeParameters []*ast.Node,
	typ *ast.Node,
) *ast.Node {
	return o.c.typeAlias(nil, modifiers, name, typeParameters, typ)
}

func (o mergedOps) CreateEnumDeclaration(modifiers []*ast.Node, name *ast.Node, members []*ast.Node) *ast.Node {
	return o.c.enum(nil, modifiers, name, members)
}

func (o mergedOps) CreateModuleDeclaration(
	modifiers []*ast.Node,
	name, body *ast.Node,
	flags ast.NodeFlags,
) *ast.Node {
	return o.c.module(nil, modifiers, name, body, flags)
}

func (o mergedOps) CreateExportAssignment(
	modifiers []*ast.Node,
	isExportEquals bool,
	expression *ast.Node,
) *ast.Node {
	return o.c.exportAssignment(nil, modifiers, isExportEquals, expression)
}

func (o mergedOps) CreateImportEqualsDeclaration(
	modifiers []*ast.Node,
	isTypeOnly bool,
	name, moduleReference *ast.Node,
) *ast.Node {
	return o.c.importEquals(nil, modifiers, isTypeOnly, name, moduleReference)
}

func (o mergedOps) CreateImportDeclaration(
	modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return o.c.importDeclaration(nil, modifiers, importClause, moduleSpecifier, assertClause)
}

func (o mergedOps) UpdateImportDeclaration(
	node *ast.Node,
	modifiers []*ast.Node,
	importClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return o.c.updateImportDeclaration(node, nil, modifiers, importClause, moduleSpecifier, assertClause)
}

func (o mergedOps) CreateExportDeclaration(
	modifiers []*ast.Node,
	isTypeOnly bool,
	exportClause, moduleSpecifier, assertClause *ast.Node,
) *ast.Node {
	return o.c.exportDeclaration(nil, modifiers, isTypeOnly, exportClause, moduleSpecifier, assertClause)
}

func (o mergedOps) CreateClassStaticBlockDeclaration(body *ast.Node) *ast.Node {
	return o.c.staticBlock(nil, nil, body)
}

func (o mergedOps) UpdateClassStaticBlockDeclaration(node, body *ast.Node) *ast.Node {
	return o.c.updateStaticBlock(node, nil, nil, body)
}
