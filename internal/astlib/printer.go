package astlib

import (
	"strings"

	"github.com/src-d/nodefactory/ast"
)

const (
	// NewLineLF separates lines with a line feed.
	NewLineLF = "\n"
	// NewLineCRLF separates lines with a carriage return and a line feed.
	NewLineCRLF = "\r\n"

	indentUnit = "    "
)

// PrinterOptions configures a Printer.
type PrinterOptions struct {
	// NewLine is the line separator. Defaults to NewLineLF.
	NewLine string
}

// introducedIn lists the kinds a generation must be at least this recent to
// print. Kinds not listed are known by every generation.
var introducedIn = map[ast.Kind]string{
	ast.PrivateIdentifier:            "4.0",
	ast.ClassStaticBlockDeclaration:  "4.4",
	ast.AssertClause:                 "4.5",
	ast.AssertEntry:                  "4.5",
	ast.ImportTypeAssertionContainer: "4.5",
	ast.SatisfiesExpression:          "5.0",
}

// Printer renders node trees as source text the way a given generation
// would. Kinds the generation does not know are lowered: a TypeScript-only
// wrapper prints its expression, a node with text prints the text, anything
// else is left out.
type Printer struct {
	version string
	newLine string
}

// NewPrinter returns a printer for the generation of lib. Values that are
// not a known generation get a printer that knows every kind.
func NewPrinter(lib interface{}, opts PrinterOptions) *Printer {
	version, ok := VersionOf(lib)
	if !ok {
		version = latestVersion
	}

	newLine := opts.NewLine
	if newLine == "" {
		newLine = NewLineLF
	}

	return &Printer{version: version, newLine: newLine}
}

const latestVersion = "5.0"

// Supports reports whether the printer's generation knows the kind.
func (p *Printer) Supports(kind ast.Kind) bool {
	since, ok := introducedIn[kind]
	return !ok || p.version >= since
}

// Print renders a single node.
func (p *Printer) Print(n *ast.Node) string {
	return p.print(n, 0)
}

// PrintStatements renders a list of statements, one per line.
func (p *Printer) PrintStatements(statements []*ast.Node) string {
	var b strings.Builder
	for _, s := range statements {
		if text := p.print(s, 0); text != "" {
			b.WriteString(text)
			b.WriteString(p.newLine)
		}
	}
	return b.String()
}

func (p *Printer) print(n *ast.Node, depth int) string {
	if n == nil {
		return ""
	}

	if !p.Supports(n.Kind) {
		return p.lower(n, depth)
	}

	switch n.Kind {
	case ast.Identifier, ast.PrivateIdentifier, ast.NumericLiteral:
		return n.Text
	case ast.StringLiteral:
		quote := `"`
		if n.Bool(ast.FieldSingleQuote) {
			quote = "'"
		}
		return quote + strings.Replace(n.Text, quote, `\`+quote, -1) + quote
	case ast.QualifiedName:
		return p.print(n.Child(ast.FieldLeft), depth) + "." + p.print(n.Child(ast.FieldRight), depth)
	case ast.TypeReference:
		return p.print(n.Child(ast.FieldTypeName), depth) + p.typeArguments(n, depth)
	case ast.TypeParameter:
		return p.modifiers(n, depth) + p.print(n.Child(ast.FieldName), depth) +
			p.prefixed(" extends ", n.Child(ast.FieldConstraint), depth) +
			p.prefixed(" = ", n.Child(ast.FieldDefault), depth)
	case ast.ImportType:
		return p.importType(n, depth)
	case ast.ImportTypeAssertionContainer:
		return "{ assert: " + p.print(n.Child(ast.FieldAssertClause), depth) + " }"
	case ast.ExpressionWithTypeArguments:
		return p.print(n.Child(ast.FieldExpression), depth) + p.typeArguments(n, depth)
	case ast.CallExpression:
		return p.print(n.Child(ast.FieldExpression), depth) + p.typeArguments(n, depth) +
			"(" + p.join(n.List(ast.FieldArguments), ", ", depth) + ")"
	case ast.PropertyAccessExpression:
		return p.print(n.Child(ast.FieldExpression), depth) + "." + p.print(n.Child(ast.FieldName), depth)
	case ast.SatisfiesExpression:
		return p.print(n.Child(ast.FieldExpression), depth) + " satisfies " + p.print(n.Child(ast.FieldType), depth)
	case ast.Block:
		return p.block(n.List(ast.FieldStatements), depth)
	case ast.ModuleBlock:
		return p.members(n.List(ast.FieldStatements), depth)
	case ast.EmptyStatement:
		return ";"
	case ast.VariableStatement:
		return p.modifiers(n, depth) + p.print(n.Child(ast.FieldDeclarationList), depth) + ";"
	case ast.VariableDeclarationList:
		keyword := "var "
		switch {
		case n.Flags&ast.FlagConst != 0:
			keyword = "const "
		case n.Flags&ast.FlagLet != 0:
			keyword = "let "
		}
		return keyword + p.join(n.List(ast.FieldDeclarations), ", ", depth)
	case ast.VariableDeclaration:
		return p.print(n.Child(ast.FieldName), depth) + p.print(n.Child(ast.FieldExclamationToken), depth) +
			p.annotation(n, depth) + p.prefixed(" = ", n.Child(ast.FieldInitializer), depth)
	case ast.ExpressionStatement:
		return p.print(n.Child(ast.FieldExpression), depth) + ";"
	case ast.ReturnStatement:
		return "return" + p.prefixed(" ", n.Child(ast.FieldExpression), depth) + ";"
	case ast.FunctionDeclaration:
		return p.modifiers(n, depth) + "function" + p.print(n.Child(ast.FieldAsteriskToken), depth) +
			p.prefixed(" ", n.Child(ast.FieldName), depth) + p.signature(n, depth) +
			p.prefixed(" ", n.Child(ast.FieldBody), depth)
	case ast.ClassDeclaration, ast.ClassExpression:
		return p.modifiers(n, depth) + "class" + p.classLike(n, depth)
	case ast.InterfaceDeclaration:
		return p.modifiers(n, depth) + "interface" + p.classLike(n, depth)
	case ast.TypeAliasDeclaration:
		return p.modifiers(n, depth) + "type " + p.print(n.Child(ast.FieldName), depth) +
			p.typeParameters(n, depth) + " = " + p.print(n.Child(ast.FieldType), depth) + ";"
	case ast.EnumDeclaration:
		return p.modifiers(n, depth) + "enum " + p.print(n.Child(ast.FieldName), depth) + " " +
			p.enumMembers(n.List(ast.FieldMembers), depth)
	case ast.EnumMember:
		return p.print(n.Child(ast.FieldName), depth) + p.prefixed(" = ", n.Child(ast.FieldInitializer), depth)
	case ast.ModuleDeclaration:
		return p.module(n, depth)
	case ast.ImportEqualsDeclaration:
		return p.modifiers(n, depth) + "import " + p.typeOnly(n) + p.print(n.Child(ast.FieldName), depth) +
			" = " + p.print(n.Child(ast.FieldModuleReference), depth) + ";"
	case ast.ExternalModuleReference:
		return "require(" + p.print(n.Child(ast.FieldExpression), depth) + ")"
	case ast.ImportDeclaration:
		return p.importDeclaration(n, depth)
	case ast.ImportClause:
		parts := p.nonEmpty(depth, n.Child(ast.FieldName), n.Child(ast.FieldNamedBindings))
		return p.typeOnly(n) + strings.Join(parts, ", ")
	case ast.NamespaceImport:
		return "* as " + p.print(n.Child(ast.FieldName), depth)
	case ast.NamedImports, ast.NamedExports:
		elements := p.join(n.List(ast.FieldElements), ", ", depth)
		if elements == "" {
			return "{}"
		}
		return "{ " + elements + " }"
	case ast.ImportSpecifier, ast.ExportSpecifier:
		return p.typeOnly(n) + p.prefixedSuffix(n.Child(ast.FieldPropertyName), " as ", depth) +
			p.print(n.Child(ast.FieldName), depth)
	case ast.ExportAssignment:
		op := "export default "
		if n.Bool(ast.FieldIsExportEquals) {
			op = "export = "
		}
		return p.modifiers(n, depth) + op + p.print(n.Child(ast.FieldExpression), depth) + ";"
	case ast.ExportDeclaration:
		return p.exportDeclaration(n, depth)
	case ast.AssertClause:
		elements := p.join(n.List(ast.FieldElements), ", ", depth)
		if elements == "" {
			return "assert {}"
		}
		return "assert { " + elements + " }"
	case ast.AssertEntry:
		return p.print(n.Child(ast.FieldName), depth) + ": " + p.print(n.Child(ast.FieldValue), depth)
	case ast.Decorator:
		return "@" + p.print(n.Child(ast.FieldExpression), depth)
	case ast.Parameter:
		return p.modifiers(n, depth) + p.print(n.Child(ast.FieldDotDotDotToken), depth) +
			p.print(n.Child(ast.FieldName), depth) + p.print(n.Child(ast.FieldQuestionToken), depth) +
			p.annotation(n, depth) + p.prefixed(" = ", n.Child(ast.FieldInitializer), depth)
	case ast.PropertyDeclaration:
		return p.modifiers(n, depth) + p.print(n.Child(ast.FieldName), depth) +
			p.print(n.Child(ast.FieldQuestionOrExclamationToken), depth) + p.annotation(n, depth) +
			p.prefixed(" = ", n.Child(ast.FieldInitializer), depth) + ";"
	case ast.MethodDeclaration:
		return p.modifiers(n, depth) + p.print(n.Child(ast.FieldAsteriskToken), depth) +
			p.print(n.Child(ast.FieldName), depth) + p.print(n.Child(ast.FieldQuestionToken), depth) +
			p.signature(n, depth) + p.bodyOrSemicolon(n, depth)
	case ast.Constructor:
		return p.modifiers(n, depth) + "constructor(" + p.join(n.List(ast.FieldParameters), ", ", depth) + ")" +
			p.bodyOrSemicolon(n, depth)
	case ast.GetAccessor:
		return p.modifiers(n, depth) + "get " + p.print(n.Child(ast.FieldName), depth) +
			p.signature(n, depth) + p.bodyOrSemicolon(n, depth)
	case ast.SetAccessor:
		return p.modifiers(n, depth) + "set " + p.print(n.Child(ast.FieldName), depth) +
			p.signature(n, depth) + p.bodyOrSemicolon(n, depth)
	case ast.IndexSignature:
		return p.modifiers(n, depth) + "[" + p.join(n.List(ast.FieldParameters), ", ", depth) + "]" +
			p.annotation(n, depth) + ";"
	case ast.ClassStaticBlockDeclaration:
		return p.modifiers(n, depth) + "static " + p.print(n.Child(ast.FieldBody), depth)
	case ast.HeritageClause:
		return p.print(n.Child(ast.FieldToken), depth) + " " + p.join(n.List(ast.FieldTypes), ", ", depth)
	}

	if text := n.Kind.TokenText(); text != "" {
		return text
	}
	return n.Text
}

func (p *Printer) lower(n *ast.Node, depth int) string {
	if n.TransformFlags.Has(ast.ContainsTypeScript) {
		if expr := n.Child(ast.FieldExpression); expr != nil {
			return p.print(expr, depth)
		}
	}
	return n.Text
}

func (p *Printer) indent(depth int) string {
	return strings.Repeat(indentUnit, depth)
}

func (p *Printer) nonEmpty(depth int, nodes ...*ast.Node) []string {
	var out []string
	for _, n := range nodes {
		if text := p.print(n, depth); text != "" {
			out = append(out, text)
		}
	}
	return out
}

func (p *Printer) join(nodes []*ast.Node, sep string, depth int) string {
	return strings.Join(p.nonEmpty(depth, nodes...), sep)
}

func (p *Printer) prefixed(prefix string, n *ast.Node, depth int) string {
	if text := p.print(n, depth); text != "" {
		return prefix + text
	}
	return ""
}

func (p *Printer) prefixedSuffix(n *ast.Node, suffix string, depth int) string {
	if text := p.print(n, depth); text != "" {
		return text + suffix
	}
	return ""
}

// modifiers prints decorators and modifiers, each followed by a space.
func (p *Printer) modifiers(n *ast.Node, depth int) string {
	var b strings.Builder
	for _, name := range []string{ast.FieldDecorators, ast.FieldModifiers} {
		for _, text := range p.nonEmpty(depth, n.List(name)...) {
			b.WriteString(text)
			b.WriteByte(' ')
		}
	}
	return b.String()
}

func (p *Printer) typeOnly(n *ast.Node) string {
	if n.Bool(ast.FieldIsTypeOnly) {
		return "type "
	}
	return ""
}

func (p *Printer) annotation(n *ast.Node, depth int) string {
	return p.prefixed(": ", n.Child(ast.FieldType), depth)
}

func (p *Printer) typeArguments(n *ast.Node, depth int) string {
	if args := p.join(n.List(ast.FieldTypeArguments), ", ", depth); args != "" {
		return "<" + args + ">"
	}
	return ""
}

func (p *Printer) typeParameters(n *ast.Node, depth int) string {
	if params := p.join(n.List(ast.FieldTypeParameters), ", ", depth); params != "" {
		return "<" + params + ">"
	}
	return ""
}

func (p *Printer) signature(n *ast.Node, depth int) string {
	return p.typeParameters(n, depth) + "(" + p.join(n.List(ast.FieldParameters), ", ", depth) + ")" +
		p.annotation(n, depth)
}

func (p *Printer) bodyOrSemicolon(n *ast.Node, depth int) string {
	if body := p.print(n.Child(ast.FieldBody), depth); body != "" {
		return " " + body
	}
	return ";"
}

func (p *Printer) block(statements []*ast.Node, depth int) string {
	lines := p.nonEmpty(depth+1, statements...)
	if len(lines) == 0 {
		return "{ }"
	}
	return p.lines(lines, depth)
}

func (p *Printer) members(members []*ast.Node, depth int) string {
	lines := p.nonEmpty(depth+1, members...)
	if len(lines) == 0 {
		return "{" + p.newLine + p.indent(depth) + "}"
	}
	return p.lines(lines, depth)
}

func (p *Printer) enumMembers(members []*ast.Node, depth int) string {
	lines := p.nonEmpty(depth+1, members...)
	for i := range lines {
		lines[i] += ","
	}
	if len(lines) == 0 {
		return "{" + p.newLine + p.indent(depth) + "}"
	}
	return p.lines(lines, depth)
}

func (p *Printer) lines(lines []string, depth int) string {
	var b strings.Builder
	b.WriteString("{")
	for _, line := range lines {
		b.WriteString(p.newLine)
		b.WriteString(p.indent(depth + 1))
		b.WriteString(line)
	}
	b.WriteString(p.newLine)
	b.WriteString(p.indent(depth))
	b.WriteString("}")
	return b.String()
}

func (p *Printer) classLike(n *ast.Node, depth int) string {
	var b strings.Builder
	if name := p.print(n.Child(ast.FieldName), depth); name != "" {
		b.WriteString(" " + name)
	}
	b.WriteString(p.typeParameters(n, depth))
	for _, clause := range p.nonEmpty(depth, n.List(ast.FieldHeritageClauses)...) {
		b.WriteString(" " + clause)
	}
	b.WriteString(" ")
	b.WriteString(p.members(n.List(ast.FieldMembers), depth))
	return b.String()
}

func (p *Printer) module(n *ast.Node, depth int) string {
	keyword := "module "
	switch {
	case n.Flags&ast.FlagGlobalAugmentation != 0:
		keyword = ""
	case n.Flags&ast.FlagNamespace != 0:
		keyword = "namespace "
	}

	text := p.modifiers(n, depth) + keyword + p.print(n.Child(ast.FieldName), depth)
	if body := p.print(n.Child(ast.FieldBody), depth); body != "" {
		return text + " " + body
	}
	return text + ";"
}

func (p *Printer) importType(n *ast.Node, depth int) string {
	var b strings.Builder
	if n.Bool(ast.FieldIsTypeOf) {
		b.WriteString("typeof ")
	}
	b.WriteString("import(")
	b.WriteString(p.print(n.Child(ast.FieldArgument), depth))
	b.WriteString(p.prefixed(", ", n.Child(ast.FieldAssertions), depth))
	b.WriteString(")")
	b.WriteString(p.prefixed(".", n.Child(ast.FieldQualifier), depth))
	b.WriteString(p.typeArguments(n, depth))
	return b.String()
}

func (p *Printer) importDeclaration(n *ast.Node, depth int) string {
	text := p.modifiers(n, depth) + "import "
	if clause := p.print(n.Child(ast.FieldImportClause), depth); clause != "" {
		text += clause + " from "
	}
	text += p.print(n.Child(ast.FieldModuleSpecifier), depth)
	return text + p.prefixed(" ", n.Child(ast.FieldAssertClause), depth) + ";"
}

func (p *Printer) exportDeclaration(n *ast.Node, depth int) string {
	text := p.modifiers(n, depth) + "export " + p.typeOnly(n)
	clause := p.print(n.Child(ast.FieldExportClause), depth)
	if clause == "" {
		clause = "*"
	}
	text += clause + p.prefixed(" from ", n.Child(ast.FieldModuleSpecifier), depth)
	return text + p.prefixed(" ", n.Child(ast.FieldAssertClause), depth) + ";"
}
