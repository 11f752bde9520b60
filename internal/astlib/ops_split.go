package astlib

import "github.com/src-d/nodefactory/ast"

// splitOps take decorators and modifiers as two leading lists.
type splitOps struct{ c *core }

func (o splitOps) CreateParameterDeclaration(
	decorators, modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.parameter(decorators, modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (o splitOps) UpdateParameterDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	dotDotDotToken, name, questionToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.updateParameter(node, decorators, modifiers, dotDotDotToken, name, questionToken, typ, initializer)
}

func (o splitOps) CreatePropertyDeclaration(
	decorators, modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.property(decorators, modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (o splitOps) UpdatePropertyDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	name, questionOrExclamationToken, typ, initializer *ast.Node,
) *ast.Node {
	return o.c.updateProperty(node, decorators, modifiers, name, questionOrExclamationToken, typ, initializer)
}

func (o splitOps) CreateMethodDeclaration(
	decorators, modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.method(decorators, modifiers, asteriskToken, name, questionToken,
		typeParameters, parameters, typ, body)
}

func (o splitOps) UpdateMethodDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	asteriskToken, name, questionToken *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.updateMethod(node, decorators, modifiers, asteriskToken, name, questionToken,
		typeParameters, parameters, typ, body)
}

func (o splitOps) CreateConstructorDeclaration(
	decorators, modifiers, parameters []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return o.c.constructor(decorators, modifiers, parameters, body)
}

func (o splitOps) CreateGetAccessorDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.getAccessor(decorators, modifiers, name, parameters, typ, body)
}

func (o splitOps) CreateSetAccessorDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	parameters []*ast.Node,
	body *ast.Node,
) *ast.Node {
	return o.c.setAccessor(decorators, modifiers, name, parameters, body)
}

func (o splitOps) CreateIndexSignature(
	decorators, modifiers, parameters []*ast.Node,
	typ *ast.Node,
) *ast.Node {
	return o.c.indexSignature(decorators, modifiers, parameters, typ)
}

func (o splitOps) CreateClassDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.ClassDeclaration, decorators, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o splitOps) UpdateClassDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.updateClass(node, decorators, modifiers, name, typeParameters, heritageClauses, members)
}

func (o splitOps) CreateClassExpression(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.ClassExpression, decorators, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o splitOps) CreateFunctionDeclaration(
	decorators, modifiers []*ast.Node,
	asteriskToken, name *ast.Node,
	typeParameters, parameters []*ast.Node,
	typ, body *ast.Node,
) *ast.Node {
	return o.c.function(decorators, modifiers, asteriskToken, name, typeParameters, parameters, typ, body)
}

func (o splitOps) CreateInterfaceDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters, heritageClauses, members []*ast.Node,
) *ast.Node {
	return o.c.classLike(ast.InterfaceDeclaration, decorators, modifiers, name,
		typeParameters, heritageClauses, members)
}

func (o splitOps) CreateTypeAliasDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	typeParameters []*ast.Node,
	typ *ast.Node,
) *ast.Node {
	return o.c.typeAlias(decorators, modifiers, name, typeParameters, typ)
}

func (o splitOps) CreateEnumDeclaration(
	decorators, modifiers []*ast.Node,
	name *ast.Node,
	members []*ast.Node,
) *ast.Node {
	return o.c.enum(decorators, modifiers, name, members)
}

func (o splitOps) CreateModuleDeclaration(
	decorators, modifiers []*ast.Node,
	name, body *ast.Node,
	flags ast.NodeFlags,
) *ast.Node {
	return o.c.module(decorators, modifiers, name, body, flags)
}

func (o splitOps) CreateExportAssignment(
	decorators, modifiers []*ast.Node,
	isExportEquals bool,
	expression *ast.Node,
) *ast.Node {
	return o.c.exportAssignment(decorators, modifiers, isExportEquals, expression)
}

// legacyModuleOps predate type-only specifiers and import assertions.
type legacyModuleOps struct{ c *core }

func (o legacyModuleOps) CreateImportEqualsDeclaration(
	decorators, modifiers []*ast.Node,
	name, moduleReference *ast.Node,
) *ast.Node {
	return o.c.importEquals(decorators, modifiers, false, name, moduleReference)
}

func (o legacyModuleOps) CreateImportDeclaration(
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier *ast.Node,
) *ast.Node {
	return o.c.importDeclaration(decorators, modifiers, importClause, moduleSpecifier, nil)
}

func (o legacyModuleOps) UpdateImportDeclaration(
	node *ast.Node,
	decorators, modifiers []*ast.Node,
	importClause, moduleSpecifier *ast.Node,
) *ast.Node {
	return o.c.updateImportDeclaration(node, decorators, modifiers, importClause, moduleSpecifier,
		node.Child(ast.FieldAssertClause))
}

func (o legacyModuleOps) CreateImportSpecifier(propertyName, name *ast.Node) *ast.Node {
	return o.c.specifier(ast.ImportSpecifier, false, propertyName, name)
}

func (o legacyModuleOps) CreateExportSpecifier(propertyName, name *ast.Node) *ast.Node {
	return o.c.specifier(ast.ExportSpecifier, false, propertyName, name)
}

func (o legacyModuleOps) CreateImportTypeNode(
	argument, qualifier *ast.Node,
	typeArguments []*ast.Node,
	isTypeOf bool,
) *ast.Node {
	return o.c.importType(argument, nil, qualifier, typeArguments, isTypeOf)
}

// legacyTypeParamOps predate type parameter modifiers.
type legacyTypeParamOps struct{ c *core }

func (o legacyTypeParamOps) CreateTypeParameterDeclaration(name, constraint, defaultType *ast.Node) *ast.Node {
	return o.c.typeParameter(nil, name, constraint, defaultType)
}

func (o legacyTypeParamOps) UpdateTypeParameterDeclaration(
	node *ast.Node,
	name, constraint, defaultType *ast.Node,
) *ast.Node {
	return o.c.updateTypeParameter(node, node.List(ast.FieldModifiers), name, constraint, defaultType)
}
