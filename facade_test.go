package nodefactory

import (
	"context"
	"testing"

	opentracing "github.com/opentracing/opentracing-go"
	"github.com/opentracing/opentracing-go/mocktracer"
	"github.com/src-d/nodefactory/ast"
	"github.com/src-d/nodefactory/internal/astlib"
	"github.com/stretchr/testify/require"
)

func TestBuildFacadeIsIdempotent(t *testing.T) {
	forEachVersion(t, func(t *testing.T, version string) {
		require := require.New(t)

		f := facadeFor(t, version)
		again, err := BuildFacade(f)
		require.NoError(err)
		require.True(f == again)
	})
}

func TestBuildFacadePassthrough(t *testing.T) {
	require := require.New(t)

	lib := load(t, "5.0")
	f, err := BuildFacade(lib, WithLogger(quietLogger()))
	require.NoError(err)

	_, isFacade := f.(*facade)
	require.False(isFacade)
	require.True(f == lib.(*astlib.Module).Factory())

	for _, b := range Bindings(f) {
		require.Equal(Passthrough, b.Mode, b.Operation)
		require.Equal(ShapeCanonical, b.Shape, b.Operation)
	}

	_, ok := CapabilitiesOf(f)
	require.False(ok)
}

func TestBuildFacadeBindings(t *testing.T) {
	testCases := []struct {
		version string
		op      string
		mode    Mode
		shape   Shape
	}{
		{"3.9", "CreateIdentifier", Passthrough, ShapeCanonical},
		{"3.9", "CreatePrivateIdentifier", Synthesized, ShapeCanonical},
		{"3.9", "CreateVariableDeclaration", Shimmed, ShapeNoExclamation},
		{"3.9", "CreateExpressionWithTypeArguments", Shimmed, ShapeSwapped},
		{"3.9", "CreateImportClause", Shimmed, ShapeTypeOnlyLast},
		{"3.9", "CreateExportDeclaration", Shimmed, ShapeTypeOnlyLast},
		{"3.9", "UpdateClassStaticBlockDeclaration", Synthesized, ShapeCanonical},
		{"4.0", "CreatePrivateIdentifier", Passthrough, ShapeCanonical},
		{"4.0", "CreateMethodDeclaration", Shimmed, ShapeDecorators},
		{"4.0", "UpdateClassDeclaration", Shimmed, ShapeDecorators},
		{"4.0", "CreateImportEqualsDeclaration", Shimmed, ShapeDecoratorsNoTypeOnly},
		{"4.0", "CreateImportDeclaration", Shimmed, ShapeDecoratorsNoAssert},
		{"4.0", "CreateExportDeclaration", Shimmed, ShapeDecoratorsNoAssert},
		{"4.0", "CreateImportSpecifier", Shimmed, ShapeNoTypeOnly},
		{"4.0", "CreateImportTypeNode", Shimmed, ShapeNoAssert},
		{"4.0", "CreateAssertClause", Synthesized, ShapeCanonical},
		{"4.0", "CreateClassStaticBlockDeclaration", Synthesized, ShapeCanonical},
		{"4.4", "CreateImportEqualsDeclaration", Shimmed, ShapeDecorators},
		{"4.4", "CreateClassStaticBlockDeclaration", Shimmed, ShapeDecorators},
		{"4.4", "UpdateClassStaticBlockDeclaration", Shimmed, ShapeDecorators},
		{"4.5", "CreateImportDeclaration", Shimmed, ShapeDecorators},
		{"4.5", "CreateTypeParameterDeclaration", Shimmed, ShapeNoModifiers},
		{"4.5", "CreateAssertEntry", Passthrough, ShapeCanonical},
		{"4.7", "UpdateTypeParameterDeclaration", Passthrough, ShapeCanonical},
		{"4.7", "CreateSatisfiesExpression", Synthesized, ShapeCanonical},
		{"4.8", "CreateMethodDeclaration", Passthrough, ShapeCanonical},
		{"4.8", "UpdateSatisfiesExpression", Synthesized, ShapeCanonical},
	}

	for _, tt := range testCases {
		t.Run(tt.version+" "+tt.op, func(t *testing.T) {
			require := require.New(t)

			var found bool
			for _, b := range Bindings(facadeFor(t, tt.version)) {
				if b.Operation != tt.op {
					continue
				}

				found = true
				require.Equal(tt.mode, b.Mode)
				require.Equal(tt.shape, b.Shape)
			}
			require.True(found)
		})
	}
}

func TestBuildFacadeMissingOperation(t *testing.T) {
	require := require.New(t)

	_, err := BuildFacade(primitivesOnly{}, WithLogger(quietLogger()))
	require.True(ErrMissingOperation.Is(err), "unexpected error: %v", err)
	require.Contains(err.Error(), "CreateStringLiteral")
}

func TestBuildFacadeNotALibrary(t *testing.T) {
	require := require.New(t)

	_, err := BuildFacade("not a library")
	require.True(ErrNotALibrary.Is(err))
}

func TestOverlaysAreOrderedLeavesFirst(t *testing.T) {
	require := require.New(t)

	applied := make(map[string]bool)
	synthesized := make(map[string]bool)
	for _, o := range overlays {
		synthesized[o.op] = true
	}

	for _, o := range overlays {
		for _, dep := range o.deps {
			if synthesized[dep] {
				require.True(applied[dep], "%s is applied before %s", o.op, dep)
			}
		}
		applied[o.op] = true

		_, ok := lookup(o.op)
		require.True(ok, o.op)
	}
}

func TestCapabilitiesOf(t *testing.T) {
	require := require.New(t)

	caps, ok := CapabilitiesOf(facadeFor(t, "4.8"))
	require.True(ok)
	require.Equal([]string{"MissingSatisfies"}, caps.Deviations())
}

func TestPrinterRoundTrip(t *testing.T) {
	forEachVersion(t, func(t *testing.T, version string) {
		require := require.New(t)

		f := facadeFor(t, version)
		stmt := constStatement(f)

		p := astlib.NewPrinter(load(t, version), astlib.PrinterOptions{})
		require.Equal("export const answer: number = 42;", p.Print(stmt))
		require.True(ast.Equal(constStatement(facadeFor(t, "5.0")), stmt))
	})
}

type sample struct {
	name  string
	build func(f Factory) *ast.Node
}

var samples = []sample{
	{"decorated class", func(f Factory) *ast.Node {
		id := f.CreateIdentifier
		count, err := f.CreatePrivateIdentifier("#count")
		if err != nil {
			panic(err)
		}

		return f.CreateClassDeclaration(
			[]*ast.Node{f.CreateDecorator(id("sealed")), f.CreateModifier(ast.ExportKeyword)},
			id("Counter"),
			[]*ast.Node{f.CreateTypeParameterDeclaration(
				[]*ast.Node{f.CreateModifier(ast.InKeyword)}, id("T"), nil, nil,
			)},
			[]*ast.Node{f.CreateHeritageClause(ast.ExtendsKeyword, []*ast.Node{
				f.CreateExpressionWithTypeArguments(id("Base"), []*ast.Node{f.CreateTypeReferenceNode(id("T"), nil)}),
			})},
			[]*ast.Node{
				f.CreatePropertyDeclaration(
					[]*ast.Node{f.CreateModifier(ast.ReadonlyKeyword)},
					count, nil, f.CreateKeywordTypeNode(ast.NumberKeyword), f.CreateNumericLiteral("0"),
				),
				f.CreateClassStaticBlockDeclaration(f.CreateBlock(nil, false)),
				f.CreateMethodDeclaration(
					[]*ast.Node{f.CreateDecorator(id("log")), f.CreateModifier(ast.PublicKeyword)},
					nil, id("get"), nil, nil, nil, nil,
					f.CreateBlock([]*ast.Node{
						f.CreateReturnStatement(f.CreatePropertyAccessExpression(id("this"), count)),
					}, true),
				),
			},
		)
	}},
	{"import with assertions", func(f Factory) *ast.Node {
		assert := f.CreateAssertClause([]*ast.Node{
			f.CreateAssertEntry(f.CreateIdentifier("type"), f.CreateStringLiteral("json", false)),
		}, false)

		return f.CreateImportDeclaration(
			nil,
			f.CreateImportClause(false, f.CreateIdentifier("data"), nil),
			f.CreateStringLiteral("./data.json", false),
			assert,
		)
	}},
	{"type only export", func(f Factory) *ast.Node {
		return f.CreateExportDeclaration(
			nil,
			true,
			f.CreateNamedExports([]*ast.Node{
				f.CreateExportSpecifier(true, f.CreateIdentifier("a"), f.CreateIdentifier("b")),
			}),
			f.CreateStringLiteral("./b", false),
			nil,
		)
	}},
	{"type only import equals", func(f Factory) *ast.Node {
		return f.CreateImportEqualsDeclaration(
			nil,
			true,
			f.CreateIdentifier("fs"),
			f.CreateExternalModuleReference(f.CreateStringLiteral("fs", false)),
		)
	}},
	{"definite variable", func(f Factory) *ast.Node {
		decl := f.CreateVariableDeclaration(
			f.CreateIdentifier("ready"),
			f.CreateToken(ast.ExclamationToken),
			f.CreateKeywordTypeNode(ast.BooleanKeyword),
			nil,
		)
		return f.CreateVariableStatement(nil, f.CreateVariableDeclarationList([]*ast.Node{decl}, ast.FlagLet))
	}},
	{"import type alias", func(f Factory) *ast.Node {
		assertions := f.CreateImportTypeAssertionContainer(f.CreateAssertClause([]*ast.Node{
			f.CreateAssertEntry(f.CreateStringLiteral("resolution-mode", false), f.CreateStringLiteral("import", false)),
		}, false), false)

		return f.CreateTypeAliasDeclaration(
			nil,
			f.CreateIdentifier("Options"),
			nil,
			f.CreateImportTypeNode(f.CreateStringLiteral("./options", false), assertions,
				f.CreateIdentifier("Options"), nil, false),
		)
	}},
	{"satisfies", func(f Factory) *ast.Node {
		return f.CreateExpressionStatement(f.CreateSatisfiesExpression(
			f.CreateIdentifier("config"),
			f.CreateTypeReferenceNode(f.CreateIdentifier("Config"), nil),
		))
	}},
}

func TestConventionEquivalence(t *testing.T) {
	canonical := facadeFor(t, "5.0")

	for _, s := range samples {
		expected := s.build(canonical)
		text := latest.Print(expected)

		t.Run(s.name, func(t *testing.T) {
			forEachVersion(t, func(t *testing.T, version string) {
				require := require.New(t)

				n := s.build(facadeFor(t, version))
				require.Equal(text, latest.Print(n))
				require.True(ast.Equal(expected, n), latest.Print(n))
			})
		})
	}
}

func TestLegacyTupleEquivalence(t *testing.T) {
	none := []*ast.Node{}

	testCases := []struct {
		name     string
		op       string
		args     func(f Factory) []interface{}
		expected func(f Factory) *ast.Node
	}{
		{
			"parameter",
			"CreateParameterDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{none, []*ast.Node{f.CreateModifier(ast.PublicKeyword)},
					nil, "x", nil, f.CreateKeywordTypeNode(ast.StringKeyword), nil}
			},
			func(f Factory) *ast.Node {
				return f.CreateParameterDeclaration([]*ast.Node{f.CreateModifier(ast.PublicKeyword)},
					nil, f.CreateIdentifier("x"), nil, f.CreateKeywordTypeNode(ast.StringKeyword), nil)
			},
		},
		{
			"property",
			"CreatePropertyDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{none, []*ast.Node{f.CreateModifier(ast.ReadonlyKeyword)},
					"#count", nil, f.CreateKeywordTypeNode(ast.NumberKeyword), f.CreateNumericLiteral("0")}
			},
			func(f Factory) *ast.Node {
				count, err := f.CreatePrivateIdentifier("#count")
				if err != nil {
					panic(err)
				}
				return f.CreatePropertyDeclaration([]*ast.Node{f.CreateModifier(ast.ReadonlyKeyword)},
					count, nil, f.CreateKeywordTypeNode(ast.NumberKeyword), f.CreateNumericLiteral("0"))
			},
		},
		{
			"import",
			"CreateImportDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{none, nil, importClause(f), f.CreateStringLiteral("./data", false), nil}
			},
			func(f Factory) *ast.Node {
				return f.CreateImportDeclaration(nil, importClause(f), f.CreateStringLiteral("./data", false), nil)
			},
		},
		{
			"export",
			"CreateExportDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{none, nil, false, namedExports(f), f.CreateStringLiteral("./b", false), nil}
			},
			func(f Factory) *ast.Node {
				return f.CreateExportDeclaration(nil, false, namedExports(f), f.CreateStringLiteral("./b", false), nil)
			},
		},
		{
			"method update",
			"UpdateMethodDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{emptyMethod(f), none, []*ast.Node{f.CreateModifier(ast.StaticKeyword)},
					nil, f.CreateIdentifier("run"), nil, nil, nil, nil, f.CreateBlock(nil, false)}
			},
			func(f Factory) *ast.Node {
				return f.UpdateMethodDeclaration(emptyMethod(f), []*ast.Node{f.CreateModifier(ast.StaticKeyword)},
					nil, f.CreateIdentifier("run"), nil, nil, nil, nil, f.CreateBlock(nil, false))
			},
		},
		{
			"class update",
			"UpdateClassDeclaration",
			func(f Factory) []interface{} {
				return []interface{}{emptyClass(f), none, []*ast.Node{f.CreateModifier(ast.ExportKeyword)},
					f.CreateIdentifier("Counter"), nil, nil, []*ast.Node{emptyMethod(f)}}
			},
			func(f Factory) *ast.Node {
				return f.UpdateClassDeclaration(emptyClass(f), []*ast.Node{f.CreateModifier(ast.ExportKeyword)},
					f.CreateIdentifier("Counter"), nil, nil, []*ast.Node{emptyMethod(f)})
			},
		},
	}

	canonical := facadeFor(t, "5.0")

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			expected := tt.expected(canonical)

			forEachVersion(t, func(t *testing.T, version string) {
				require := require.New(t)

				f := facadeFor(t, version)
				n, err := Call(f, tt.op, tt.args(f)...)
				require.NoError(err)
				require.True(ast.Equal(expected, n), latest.Print(n))
				require.Equal(latest.Print(expected), latest.Print(n))
			})
		})
	}
}

func importClause(f Factory) *ast.Node {
	return f.CreateImportClause(false, f.CreateIdentifier("data"), nil)
}

func namedExports(f Factory) *ast.Node {
	return f.CreateNamedExports([]*ast.Node{
		f.CreateExportSpecifier(false, nil, f.CreateIdentifier("b")),
	})
}

func emptyMethod(f Factory) *ast.Node {
	return f.CreateMethodDeclaration(nil, nil, f.CreateIdentifier("run"), nil, nil, nil, nil, nil)
}

func emptyClass(f Factory) *ast.Node {
	return f.CreateClassDeclaration(nil, f.CreateIdentifier("Counter"), nil, nil, nil)
}

func TestSynthesisValidity(t *testing.T) {
	canonical := facadeFor(t, "5.0")
	legacy := facadeFor(t, "3.9")

	build := []struct {
		kind  ast.Kind
		flags ast.TransformFlags
		make  func(f Factory) *ast.Node
	}{
		{ast.PrivateIdentifier, ast.ContainsClassFields, func(f Factory) *ast.Node {
			n, err := f.CreatePrivateIdentifier("#secret")
			if err != nil {
				panic(err)
			}
			return n
		}},
		{ast.AssertEntry, ast.ContainsESNext, func(f Factory) *ast.Node {
			return f.CreateAssertEntry(f.CreateIdentifier("type"), f.CreateStringLiteral("json", false))
		}},
		{ast.AssertClause, ast.ContainsESNext, func(f Factory) *ast.Node {
			return f.CreateAssertClause(nil, true)
		}},
		{ast.ImportTypeAssertionContainer, ast.ContainsESNext, func(f Factory) *ast.Node {
			return f.CreateImportTypeAssertionContainer(f.CreateAssertClause(nil, false), false)
		}},
		{ast.ClassStaticBlockDeclaration, ast.ContainsClassFields | ast.ContainsES2022, func(f Factory) *ast.Node {
			return f.CreateClassStaticBlockDeclaration(f.CreateBlock(nil, false))
		}},
		{ast.SatisfiesExpression, ast.ContainsTypeScript, func(f Factory) *ast.Node {
			return f.CreateSatisfiesExpression(f.CreateIdentifier("x"), f.CreateKeywordTypeNode(ast.NumberKeyword))
		}},
	}

	for _, tt := range build {
		t.Run(tt.kind.String(), func(t *testing.T) {
			require := require.New(t)

			expected := tt.make(canonical)
			n := tt.make(legacy)

			require.Equal(tt.kind, n.Kind)
			require.Equal(expected.Fields(), n.Fields())
			require.True(ast.Equal(expected, n))
			require.True(n.TransformFlags.Has(tt.flags), n.TransformFlags.String())

			require.NotPanics(func() {
				ast.Walk(n, func(*ast.Node) bool { return true })
				astlib.NewPrinter(load(t, "3.9"), astlib.PrinterOptions{}).Print(n)
				latest.Print(n)
			})
		})
	}
}

func TestPrivateNameValidation(t *testing.T) {
	forEachVersion(t, func(t *testing.T, version string) {
		require := require.New(t)
		f := facadeFor(t, version)

		if _, isFacade := f.(*facade); isFacade {
			_, err := f.CreatePrivateIdentifier("count")
			require.True(ErrInvalidPrivateName.Is(err), "unexpected error: %v", err)
		} else {
			_, err := f.CreatePrivateIdentifier("count")
			require.Error(err)
		}

		n, err := f.CreatePrivateIdentifier("")
		require.NoError(err)
		require.Equal(ast.PrivateIdentifier, n.Kind)
		require.Equal("", n.Text)

		n, err = f.CreatePrivateIdentifier("#count")
		require.NoError(err)
		require.Equal("#count", n.Text)
	})
}

func TestStaticBlockScenario(t *testing.T) {
	testCases := []struct {
		version  string
		expected string
	}{
		{"3.9", "class Registry {\n}"},
		{"4.0", "class Registry {\n}"},
		{"4.4", "class Registry {\n    static { }\n}"},
		{"5.0", "class Registry {\n    static { }\n}"},
	}

	for _, tt := range testCases {
		t.Run(tt.version, func(t *testing.T) {
			require := require.New(t)

			f := facadeFor(t, tt.version)
			p := astlib.NewPrinter(load(t, tt.version), astlib.PrinterOptions{})

			var first string
			require.NotPanics(func() { first = p.Print(staticBlockClass(f)) })
			require.Equal(tt.expected, first)
			require.Equal(first, p.Print(staticBlockClass(f)))

			class := staticBlockClass(f)
			block := class.List(ast.FieldMembers)[0]
			require.Equal(ast.ClassStaticBlockDeclaration, block.Kind)
			require.Equal("static { }", latest.Print(block))
		})
	}
}

func TestSynthesizedUpdate(t *testing.T) {
	testCases := []struct {
		version       string
		trackOriginal bool
	}{
		{"3.9", false},
		{"4.0", true},
		{"4.7", true},
	}

	for _, tt := range testCases {
		t.Run(tt.version, func(t *testing.T) {
			require := require.New(t)
			f := facadeFor(t, tt.version)

			body := f.CreateBlock(nil, false)
			block := f.CreateClassStaticBlockDeclaration(body)
			block.Pos, block.End = 10, 20

			require.True(f.UpdateClassStaticBlockDeclaration(block, body) == block)

			updated := f.UpdateClassStaticBlockDeclaration(block, f.CreateBlock(nil, true))
			require.False(updated == block)
			require.Equal(ast.ClassStaticBlockDeclaration, updated.Kind)
			require.Nil(block.Original)

			if tt.trackOriginal {
				require.True(updated.Original == block)
				require.Equal(10, updated.Pos)
				require.Equal(20, updated.End)
			} else {
				require.Nil(updated.Original)
				require.Equal(-1, updated.Pos)
			}

			x, typ := f.CreateIdentifier("x"), f.CreateKeywordTypeNode(ast.NumberKeyword)
			sat := f.CreateSatisfiesExpression(x, typ)
			require.True(f.UpdateSatisfiesExpression(sat, x, typ) == sat)
			require.False(f.UpdateSatisfiesExpression(sat, f.CreateIdentifier("y"), typ) == sat)
		})
	}
}

func TestShimmedUpdate(t *testing.T) {
	forEachVersion(t, func(t *testing.T, version string) {
		require := require.New(t)
		f := facadeFor(t, version)

		clause := f.CreateImportClause(false, f.CreateIdentifier("data"), nil)
		spec := f.CreateStringLiteral("./data.json", false)
		decl := f.CreateImportDeclaration(nil, clause, spec, nil)
		decl.Pos, decl.End = 3, 30

		require.True(f.UpdateImportDeclaration(decl, nil, clause, spec, nil) == decl)

		assert := f.CreateAssertClause(nil, false)
		updated := f.UpdateImportDeclaration(decl, nil, clause, spec, assert)
		require.False(updated == decl)
		require.True(updated.Child(ast.FieldAssertClause) == assert)
		require.Nil(decl.Child(ast.FieldAssertClause))

		caps, _ := Probe(load(t, version))
		if caps.UpdateOmitsOriginal {
			require.Nil(updated.Original)
		} else {
			require.True(updated.Original == decl)
			require.Equal(3, updated.Pos)
		}

		mods := []*ast.Node{f.CreateDecorator(f.CreateIdentifier("sealed")), f.CreateModifier(ast.ExportKeyword)}
		class := f.CreateClassDeclaration(mods, f.CreateIdentifier("C"), nil, nil, nil)
		require.True(f.UpdateClassDeclaration(class, mods, f.CreateIdentifier("C"), nil, nil, nil) != class)
		name := class.Child(ast.FieldName)
		require.True(f.UpdateClassDeclaration(class, mods, name, nil, nil, nil) == class)

		param := f.CreateTypeParameterDeclaration(nil, f.CreateIdentifier("T"), nil, nil)
		in := []*ast.Node{f.CreateModifier(ast.InKeyword)}
		withIn := f.UpdateTypeParameterDeclaration(param, in, param.Child(ast.FieldName), nil, nil)
		require.False(withIn == param)
		require.Equal("in T", latest.Print(withIn))
	})
}

func TestBuildFacadeContextTraces(t *testing.T) {
	require := require.New(t)

	tracer := mocktracer.New()
	opentracing.SetGlobalTracer(tracer)
	defer opentracing.SetGlobalTracer(opentracing.NoopTracer{})

	parent := tracer.StartSpan("test")
	ctx := opentracing.ContextWithSpan(context.Background(), parent)

	_, err := BuildFacadeContext(ctx, load(t, "4.0"), WithLogger(quietLogger()))
	require.NoError(err)
	parent.Finish()

	spans := tracer.FinishedSpans()
	require.Len(spans, 2)
	require.Equal("nodefactory.BuildFacade", spans[0].OperationName)
	require.Equal("facade", spans[0].Tag("binding"))
	require.Equal(parent.Context().(mocktracer.MockSpanContext).SpanID, spans[0].ParentID)
}
