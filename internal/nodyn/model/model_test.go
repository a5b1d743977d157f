package model

import (
	"go/ast"
	"go/parser"
	"go/token"
	"go/types"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/tools/go/packages"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/typeinfo"
)

// parsePkg type-checks a small package and wraps it as a [codefmt.Pkger].
func parsePkg(t *testing.T, code string) (*packages.Package, codefmt.Pkger) {
	t.Helper()

	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	require.NoError(t, err)

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	tpkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	require.NoError(t, err)

	pkg := &packages.Package{
		PkgPath:   "pkg",
		Fset:      fset,
		Types:     tpkg,
		TypesInfo: info,
	}
	return pkg, codefmt.Pkg(pkg)
}

func lookupType(t *testing.T, pkg *packages.Package, name string) typeinfo.Type {
	t.Helper()
	obj := pkg.Types.Scope().Lookup(name)
	require.NotNil(t, obj)
	return typeinfo.TypeOf(obj.Type())
}

func TestBuildVariants(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int64
var b string
var c []byte
`)

	variants, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a")},
		{Type: lookupType(t, pkg, "b"), Override: "Text"},
		{Type: lookupType(t, pkg, "c")},
	})
	require.NoError(t, err)
	require.Len(t, variants, 3)

	assert.Equal(t, 0, variants[0].Index)
	assert.Equal(t, "Int64", variants[0].Name)
	assert.Equal(t, "int64", variants[0].Field)
	assert.Equal(t, "int64", variants[0].TypeString)

	assert.Equal(t, 1, variants[1].Index)
	assert.Equal(t, "Text", variants[1].Name)
	assert.Equal(t, "text", variants[1].Field)
	assert.Equal(t, "string", variants[1].TypeString)

	assert.Equal(t, 2, variants[2].Index)
	assert.Equal(t, "ByteSlice", variants[2].Name)
	assert.Equal(t, "byteSlice", variants[2].Field)
	assert.Equal(t, "[]byte", variants[2].TypeString)
}

func TestBuildVariantsDerivedCollision(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
type Buffer struct{}
var a Buffer
var b Buffer
`)

	_, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a")},
		{Type: lookupType(t, pkg, "b")},
	})
	assert.ErrorContains(t, err, `variant name "Buffer" already used`)
}

func TestBuildVariantsOverrideCollision(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int
var b string
`)

	_, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a"), Override: "Item"},
		{Type: lookupType(t, pkg, "b"), Override: "Item"},
	})
	assert.ErrorContains(t, err, `variant name "Item" already used`)
}

func TestBuildVariantsUnderivable(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a struct{ x int }
`)

	_, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a")},
	})
	assert.ErrorContains(t, err, "cannot derive a variant name")
}

func TestBuildVariantsOverridesUnderivable(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a struct{ x int }
`)

	variants, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a"), Override: "Pair"},
	})
	require.NoError(t, err)
	assert.Equal(t, "Pair", variants[0].Name)
}

func TestBuildVariantsInvalidOverride(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int
`)

	for _, name := range []string{"9lives", "foo bar", "text"} {
		_, err := BuildVariants(pkger, []WrappedType{
			{Type: lookupType(t, pkg, "a"), Override: name},
		})
		assert.ErrorContains(t, err, "is not an exported Go identifier", name)
	}
}

func TestBuildDowncasts(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int32
var b int64
`)

	variants, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a"), Intos: []typeinfo.Type{lookupType(t, pkg, "b")}},
		{Type: lookupType(t, pkg, "b")},
	})
	require.NoError(t, err)

	downcasts, err := BuildDowncasts(pkger, variants)
	require.NoError(t, err)
	require.Len(t, downcasts, 2)

	assert.Equal(t, "Int32", downcasts[0].Name)
	require.Len(t, downcasts[0].Arms, 1)
	assert.False(t, downcasts[0].Arms[0].Convert)

	// The int64 target collects its own variant plus the converted int32.
	assert.Equal(t, "Int64", downcasts[1].Name)
	require.Len(t, downcasts[1].Arms, 2)
	assert.False(t, downcasts[1].Arms[0].Convert)
	assert.True(t, downcasts[1].Arms[1].Convert)
}

func TestBuildDowncastsExtraTarget(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int32
var b float64
`)

	variants, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a"), Intos: []typeinfo.Type{lookupType(t, pkg, "b")}},
	})
	require.NoError(t, err)

	downcasts, err := BuildDowncasts(pkger, variants)
	require.NoError(t, err)
	require.Len(t, downcasts, 2)
	assert.Equal(t, "Float64", downcasts[1].Name)
	require.Len(t, downcasts[1].Arms, 1)
	assert.True(t, downcasts[1].Arms[0].Convert)
}

func TestBuildDowncastsUnderivableTarget(t *testing.T) {
	pkg, pkger := parsePkg(t, `
package p
var a int
var b struct{ x int }
`)

	variants, err := BuildVariants(pkger, []WrappedType{
		{Type: lookupType(t, pkg, "a"), Intos: []typeinfo.Type{lookupType(t, pkg, "b")}},
	})
	require.NoError(t, err)

	_, err = BuildDowncasts(pkger, variants)
	assert.ErrorContains(t, err, "cannot derive a name for Into target")
}

func TestHasInterfacePayload(t *testing.T) {
	pkg, _ := parsePkg(t, `
package p
var a error
var b int
`)

	u := &Union{
		Name: "Value",
		Variants: []*Variant{
			{Type: lookupType(t, pkg, "b")},
		},
	}
	assert.False(t, u.HasInterfacePayload())

	u.Variants = append(u.Variants, &Variant{Type: lookupType(t, pkg, "a")})
	assert.True(t, u.HasInterfacePayload())
}

func TestTagNames(t *testing.T) {
	u := &Union{Name: "Value"}
	v := &Variant{Name: "Text"}
	assert.Equal(t, "valueTag", u.TagType())
	assert.Equal(t, "valueTagText", u.TagConst(v))
	assert.Equal(t, "ValuePayload", u.PayloadConstraint())
}
