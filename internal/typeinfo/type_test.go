package typeinfo_test

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

func parse(code string) (*ast.File, *types.Info, *types.Package, error) {
	fset := token.NewFileSet()
	file, err := parser.ParseFile(fset, "p.go", code, parser.AllErrors)
	if err != nil {
		return nil, nil, nil, err
	}

	info := &types.Info{Types: make(map[ast.Expr]types.TypeAndValue)}
	pkg, err := (&types.Config{}).Check("pkg", fset, []*ast.File{file}, info)
	if err != nil {
		return nil, nil, nil, err
	}

	return file, info, pkg, nil
}

func parseType(typeExpr string) (types.Type, error) {
	_, _, pkg, err := parse(fmt.Sprintf("package p; var x %s", typeExpr))
	if err != nil {
		return nil, err
	}
	x := pkg.Scope().Lookup("x")
	return x.Type(), nil
}

func TestTypeIdentical(t *testing.T) {
	ty1, err := parseType("int")
	require.NoError(t, err)

	ty2, err := parseType("int")
	require.NoError(t, err)

	ti1 := typeinfo.TypeOf(ty1)
	ti2 := typeinfo.TypeOf(ty2)
	assert.True(t, ti1.Identical(ti2))
	assert.True(t, ti2.Identical(ti1))
}

func TestTypeOfBasic(t *testing.T) {
	ty, err := parseType("int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsBasic())
}

func TestTypeOfArray(t *testing.T) {
	ty, err := parseType("[3]int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsArray())
	assert.True(t, ti.Elem.IsBasic())
	assert.Equal(t, int64(3), ti.Len)
}

func TestTypeOfSlice(t *testing.T) {
	ty, err := parseType("[]int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsSlice())
	assert.True(t, ti.Elem.IsBasic())
}

func TestTypeOfMap(t *testing.T) {
	ty, err := parseType("map[int]string")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsMap())
	assert.True(t, ti.Key.IsBasic())
	assert.True(t, ti.Elem.IsBasic())
}

func TestTypeOfPointer(t *testing.T) {
	ty, err := parseType("*int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsPointer())
	assert.True(t, ti.Elem.IsBasic())
	assert.True(t, ti.Deref().IsBasic())
}

func TestTypeOfChan(t *testing.T) {
	ty, err := parseType("chan int")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsChan())
	assert.True(t, ti.Elem.IsBasic())
}

func TestTypeOfFunc(t *testing.T) {
	ty, err := parseType("func(int) string")
	require.NoError(t, err)

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsFunc())
}

func TestTypeOfNamed(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type myInt int
var x myInt
`)
	require.NoError(t, err)

	ty := pkg.Scope().Lookup("x").Type()

	ti := typeinfo.TypeOf(ty)
	assert.True(t, ti.IsNamed())
	assert.True(t, ti.IsBasic())
}

func TestTypeOfGeneric(t *testing.T) {
	file, info, _, err := parse(`
package p
type A[T, U any] struct{ x T; y U }
type B[U any] A[int, U]
type C A[int, int]
`)
	require.NoError(t, err)

	nthTypeExpr := func(n int) ast.Expr {
		return file.Decls[n].(*ast.GenDecl).Specs[0].(*ast.TypeSpec).Type
	}

	tyA := info.TypeOf(nthTypeExpr(0))
	assert.True(t, typeinfo.TypeOf(tyA).IsGeneric())

	tyB := info.TypeOf(nthTypeExpr(1))
	assert.True(t, typeinfo.TypeOf(tyB).IsGeneric())

	tyC := info.TypeOf(nthTypeExpr(2))
	assert.False(t, typeinfo.TypeOf(tyC).IsGeneric())
}

func TestTypeRef(t *testing.T) {
	ty, err := parseType("int")
	require.NoError(t, err)
	ti := typeinfo.TypeOf(ty)

	ref := ti.Ref()
	assert.True(t, ref.IsPointer())
	assert.True(t, ref.Elem.Identical(ti))
}

func TestInterfaceMethods(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type Shape interface {
	Area() float64
	Perimeter() float64
}
var x Shape
`)
	require.NoError(t, err)

	ti := typeinfo.TypeOf(pkg.Scope().Lookup("x").Type())
	require.True(t, ti.IsInterface())

	methods := ti.InterfaceMethods()
	require.Len(t, methods, 2)
	assert.Equal(t, "Area", methods[0].Name())
	assert.Equal(t, "Perimeter", methods[1].Name())
}

func TestInterfaceMethodsDeclarationOrder(t *testing.T) {
	// go/types sorts interface methods alphabetically; declaration order must
	// survive.
	_, _, pkg, err := parse(`
package p
type Seq interface {
	Second() int
	First() int
}
var x Seq
`)
	require.NoError(t, err)

	ti := typeinfo.TypeOf(pkg.Scope().Lookup("x").Type())
	require.True(t, ti.IsInterface())

	methods := ti.InterfaceMethods()
	require.Len(t, methods, 2)
	assert.Equal(t, "Second", methods[0].Name())
	assert.Equal(t, "First", methods[1].Name())
}

func TestImplements(t *testing.T) {
	_, _, pkg, err := parse(`
package p
type Stringer interface{ String() string }
type byValue struct{}
func (byValue) String() string { return "" }
type byPtr struct{}
func (*byPtr) String() string { return "" }
var s Stringer
var v byValue
var p byPtr
`)
	require.NoError(t, err)

	iface := typeinfo.TypeOf(pkg.Scope().Lookup("s").Type()).Interface
	require.NotNil(t, iface)

	v := typeinfo.TypeOf(pkg.Scope().Lookup("v").Type())
	assert.True(t, v.Implements(iface))
	assert.True(t, v.ImplementsPtr(iface))

	p := typeinfo.TypeOf(pkg.Scope().Lookup("p").Type())
	assert.False(t, p.Implements(iface))
	assert.True(t, p.ImplementsPtr(iface))
}
