package command

import (
	"sort"

	"github.com/src-d/nodefactory"
	"github.com/src-d/nodefactory/ast"
)

// examples build small trees through a facade. Every example only uses
// canonical operations, so it builds the same tree on every generation.
var examples = map[string]func(f nodefactory.Factory) []*ast.Node{
	"const": func(f nodefactory.Factory) []*ast.Node {
		decl := f.CreateVariableDeclaration(
			f.CreateIdentifier("answer"),
			nil,
			f.CreateKeywordTypeNode(ast.NumberKeyword),
			f.CreateNumericLiteral("42"),
		)

		return []*ast.Node{f.CreateVariableStatement(
			[]*ast.Node{f.CreateModifier(ast.ExportKeyword)},
			f.CreateVariableDeclarationList([]*ast.Node{decl}, ast.FlagConst),
		)}
	},
	"class": func(f nodefactory.Factory) []*ast.Node {
		count := f.CreatePropertyDeclaration(
			[]*ast.Node{f.CreateModifier(ast.PrivateKeyword)},
			f.CreateIdentifier("count"),
			nil,
			f.CreateKeywordTypeNode(ast.NumberKeyword),
			f.CreateNumericLiteral("0"),
		)

		run := f.CreateMethodDeclaration(
			[]*ast.Node{f.CreateDecorator(f.CreateIdentifier("memo"))},
			nil,
			f.CreateIdentifier("run"),
			nil,
			nil,
			nil,
			f.CreateKeywordTypeNode(ast.VoidKeyword),
			f.CreateBlock(nil, false),
		)

		return []*ast.Node{f.CreateClassDeclaration(
			[]*ast.Node{f.CreateModifier(ast.ExportKeyword)},
			f.CreateIdentifier("Counter"),
			nil,
			nil,
			[]*ast.Node{count, run},
		)}
	},
	"static-block": func(f nodefactory.Factory) []*ast.Node {
		return []*ast.Node{f.CreateClassDeclaration(
			nil,
			f.CreateIdentifier("Registry"),
			nil,
			nil,
			[]*ast.Node{f.CreateClassStaticBlockDeclaration(f.CreateBlock(nil, false))},
		)}
	},
	"imports": func(f nodefactory.Factory) []*ast.Node {
		named := f.CreateNamedImports([]*ast.Node{
			f.CreateImportSpecifier(true, nil, f.CreateIdentifier("Config")),
		})

		assert := f.CreateAssertClause([]*ast.Node{
			f.CreateAssertEntry(f.CreateIdentifier("type"), f.CreateStringLiteral("json", false)),
		}, false)

		return []*ast.Node{
			f.CreateImportDeclaration(
				nil,
				f.CreateImportClause(false, nil, named),
				f.CreateStringLiteral("./config", false),
				nil,
			),
			f.CreateImportDeclaration(
				nil,
				f.CreateImportClause(false, f.CreateIdentifier("data"), nil),
				f.CreateStringLiteral("./data.json", false),
				assert,
			),
		}
	},
	"satisfies": func(f nodefactory.Factory) []*ast.Node {
		expr := f.CreateSatisfiesExpression(
			f.CreateIdentifier("config"),
			f.CreateTypeReferenceNode(f.CreateIdentifier("Config"), nil),
		)
		return []*ast.Node{f.CreateExpressionStatement(expr)}
	},
}

// ExampleNames returns the names of the trees the print command builds.
func ExampleNames() []string {
	var names = make([]string, 0, len(examples))
	for name := range examples {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
