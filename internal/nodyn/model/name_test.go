package model

import (
	"fmt"
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/franklaranja/nodyn/internal/typeinfo"
)

func parseType(t *testing.T, decls, typeExpr string) types.Type {
	t.Helper()

	code := fmt.Sprintf("package p\n%s\nvar x %s\n", decls, typeExpr)
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	require.NoError(t, err)

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	return pkg.Scope().Lookup("x").Type()
}

func TestVariantName(t *testing.T) {
	tests := []struct {
		decls    string
		typeExpr string
		want     string
	}{
		{"", "int64", "Int64"},
		{"", "string", "String"},
		{"", "bool", "Bool"},
		{"type Buffer struct{}", "Buffer", "Buffer"},
		{"type Buffer struct{}", "*Buffer", "BufferRef"},
		{"type Buffer struct{}", "**Buffer", "BufferRefRef"},
		{"", "[]string", "StringSlice"},
		{"", "[4]int32", "Int32Array4"},
		{"", "[2][3]float64", "Float64Array3Array2"},
		{"", "map[string]int", "StringToIntMap"},
		{"type Buffer struct{}", "map[string][]*Buffer", "StringToBufferRefSliceMap"},
		{"type List[T any] struct{ xs []T }", "List[string]", "List"},
		{"", "error", "Error"},
		{"type small struct{}", "small", "Small"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			typ := parseType(t, tt.decls, tt.typeExpr)
			name, err := VariantName(typeinfo.TypeOf(typ))
			require.NoError(t, err)
			assert.Equal(t, tt.want, name)
		})
	}
}

func TestVariantNameUnsupported(t *testing.T) {
	tests := []struct {
		name     string
		typeExpr string
	}{
		{"AnonStruct", "struct{ x int }"},
		{"AnonInterface", "interface{ Len() int }"},
		{"Chan", "chan int"},
		{"Func", "func() error"},
		{"SliceOfAnonStruct", "[]struct{ x int }"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			typ := parseType(t, "", tt.typeExpr)
			_, err := VariantName(typeinfo.TypeOf(typ))
			assert.ErrorContains(t, err, "cannot derive a variant name")
		})
	}
}
