package astlib

import (
	"reflect"
	"testing"

	"github.com/src-d/nodefactory/ast"
	"github.com/stretchr/testify/require"
)

func construction(lib interface{}) interface{} {
	if m, ok := lib.(*Module); ok {
		return m.Factory()
	}
	return lib
}

func numIn(t *testing.T, lib interface{}, name string) int {
	t.Helper()
	m := reflect.ValueOf(construction(lib)).MethodByName(name)
	if !m.IsValid() {
		return -1
	}
	return m.Type().NumIn()
}

func TestVersions(t *testing.T) {
	require := require.New(t)
	require.Equal([]string{"3.9", "4.0", "4.4", "4.5", "4.7", "4.8", "5.0"}, Versions())

	for _, v := range Versions() {
		lib, err := Load(v)
		require.NoError(err)

		version, ok := VersionOf(lib)
		require.True(ok)
		require.Equal(v, version)

		version, ok = VersionOf(construction(lib))
		require.True(ok)
		require.Equal(v, version)
	}

	_, err := Load("1.0")
	require.True(ErrUnknownVersion.Is(err))
	require.Panics(func() { MustLoad("1.0") })
}

func TestLoadReturnsFreshInstances(t *testing.T) {
	require := require.New(t)
	a, b := MustLoad("5.0"), MustLoad("5.0")
	require.False(a == b)
}

func TestGenerationSignatures(t *testing.T) {
	testCases := []struct {
		method   string
		expected map[string]int
	}{
		{"CreateMethodDeclaration", map[string]int{
			"3.9": 9, "4.0": 9, "4.4": 9, "4.5": 9, "4.7": 9, "4.8": 8, "5.0": 8,
		}},
		{"CreatePrivateIdentifier", map[string]int{
			"3.9": -1, "4.0": 1, "4.8": 1,
		}},
		{"CreateClassStaticBlockDeclaration", map[string]int{
			"4.0": -1, "4.4": 3, "4.7": 3, "4.8": 1,
		}},
		{"CreateImportEqualsDeclaration", map[string]int{
			"3.9": 4, "4.0": 4, "4.4": 5, "4.5": 5, "4.8": 4,
		}},
		{"CreateImportDeclaration", map[string]int{
			"3.9": 4, "4.4": 4, "4.5": 5, "4.7": 5, "4.8": 4,
		}},
		{"CreateExportDeclaration", map[string]int{
			"3.9": 5, "4.0": 5, "4.5": 6, "4.8": 5,
		}},
		{"CreateImportSpecifier", map[string]int{
			"4.4": 2, "4.5": 3,
		}},
		{"CreateImportTypeNode", map[string]int{
			"4.4": 4, "4.5": 5,
		}},
		{"CreateTypeParameterDeclaration", map[string]int{
			"4.5": 3, "4.7": 4, "5.0": 4,
		}},
		{"CreateVariableDeclaration", map[string]int{
			"3.9": 3, "4.0": 4,
		}},
		{"CreateSatisfiesExpression", map[string]int{
			"4.8": -1, "5.0": 2,
		}},
	}

	for _, tt := range testCases {
		t.Run(tt.method, func(t *testing.T) {
			for version, expected := range tt.expected {
				require.Equal(t, expected, numIn(t, MustLoad(version), tt.method), version)
			}
		})
	}
}

func TestLegacyHasNoFactory(t *testing.T) {
	require := require.New(t)

	_, ok := reflect.TypeOf(MustLoad("3.9")).MethodByName("Factory")
	require.False(ok)

	_, ok = reflect.TypeOf(MustLoad("4.0")).MethodByName("Factory")
	require.True(ok)
}

func TestUpdateTracksOriginal(t *testing.T) {
	testCases := []struct {
		version string
		tracked bool
	}{
		{"3.9", false},
		{"4.0", true},
		{"5.0", true},
	}

	for _, tt := range testCases {
		t.Run(tt.version, func(t *testing.T) {
			require := require.New(t)

			lib := construction(MustLoad(tt.version))
			ops := reflect.ValueOf(lib)
			block := ops.MethodByName("CreateBlock").Call([]reflect.Value{
				reflect.ValueOf([]*ast.Node{}), reflect.ValueOf(false),
			})[0].Interface().(*ast.Node)
			block.Pos, block.End = 3, 7

			stmt := ops.MethodByName("CreateEmptyStatement").Call(nil)[0]
			updated := ops.MethodByName("UpdateBlock").Call([]reflect.Value{
				reflect.ValueOf(block), reflect.ValueOf([]*ast.Node{stmt.Interface().(*ast.Node)}),
			})[0].Interface().(*ast.Node)

			require.False(updated == block)
			if tt.tracked {
				require.True(updated.Original == block)
				require.Equal(3, updated.Pos)
			} else {
				require.Nil(updated.Original)
				require.Equal(-1, updated.Pos)
			}
		})
	}
}

func TestUpdateReturnsSameNodeWhenUnchanged(t *testing.T) {
	require := require.New(t)

	f := construction(MustLoad("5.0")).(*factory50)
	name := f.CreateIdentifier("C")
	members := []*ast.Node{f.CreateClassStaticBlockDeclaration(f.CreateBlock(nil, false))}
	class := f.CreateClassDeclaration(nil, name, nil, nil, members)

	require.True(class == f.UpdateClassDeclaration(class, nil, name, nil, nil, members))
	require.False(class == f.UpdateClassDeclaration(class, nil, name, nil, nil,
		append([]*ast.Node{}, members...)))

	tp := f.CreateTypeParameterDeclaration(nil, f.CreateIdentifier("T"), nil, nil)
	require.True(tp == f.UpdateTypeParameterDeclaration(tp, nil, tp.Child(ast.FieldName), nil, nil))
}

func TestLegacyDecoratorsAreStoredApart(t *testing.T) {
	require := require.New(t)

	f := construction(MustLoad("4.7")).(*factory47)
	dec := f.CreateDecorator(f.CreateIdentifier("sealed"))
	exp := f.CreateModifier(ast.ExportKeyword)

	class := f.CreateClassDeclaration([]*ast.Node{dec}, []*ast.Node{exp}, f.CreateIdentifier("C"), nil, nil, nil)
	require.Equal([]*ast.Node{dec}, class.List(ast.FieldDecorators))
	require.Equal([]*ast.Node{exp}, class.List(ast.FieldModifiers))
	require.True(class.TransformFlags.Has(ast.ContainsDecorators))

	plain := f.CreateClassDeclaration(nil, nil, f.CreateIdentifier("D"), nil, nil, nil)
	require.False(plain.Has(ast.FieldDecorators))
	require.True(plain.Has(ast.FieldModifiers))
}

func TestPrivateIdentifierValidation(t *testing.T) {
	require := require.New(t)

	f := construction(MustLoad("4.0")).(*factory40)

	n, err := f.CreatePrivateIdentifier("#secret")
	require.NoError(err)
	require.Equal(ast.PrivateIdentifier, n.Kind)
	require.True(n.TransformFlags.Has(ast.ContainsClassFields))

	n, err = f.CreatePrivateIdentifier("")
	require.NoError(err)
	require.Equal("", n.Text)

	_, err = f.CreatePrivateIdentifier("secret")
	require.Error(err)
}

func TestFlagsAreMasked(t *testing.T) {
	require := require.New(t)

	f := construction(MustLoad("5.0")).(*factory50)
	list := f.CreateVariableDeclarationList(nil, ast.FlagConst|ast.FlagNamespace)
	require.Equal(ast.FlagConst|ast.FlagSynthesized, list.Flags)

	mod := f.CreateModuleDeclaration(nil, f.CreateIdentifier("M"), nil, ast.FlagNamespace|ast.FlagLet)
	require.Equal(ast.FlagNamespace|ast.FlagSynthesized, mod.Flags)
}
