// Package parse collects Nodyn union declarations from the typed AST of a
// package. Declarations live in files guarded by a "//go:build nodyn"
// constraint and are expressed as no-op directive calls on the nodyn package.
package parse

import (
	"fmt"
	"go/ast"
	"go/build/constraint"
	"go/types"
	"strings"

	"golang.org/x/tools/go/packages"
	"golang.org/x/tools/go/types/typeutil"
)

// IsNodynImport reports whether the import path refers to the nodyn package,
// including vendored copies.
func IsNodynImport(path string) bool {
	const vendorPart = "vendor/"
	if i := strings.LastIndex(path, vendorPart); i != -1 && (i == 0 || path[i-1] == '/') {
		path = path[i+len(vendorPart):]
	}
	return path == "github.com/franklaranja/nodyn"
}

// Parser parses an AST of the underlying package to collect union
// declarations.
type Parser struct{ pkg *packages.Package }

func (p *Parser) Pkg() *packages.Package { return p.pkg }

// New creates a new [Parser].
func New(pkg *packages.Package) (*Parser, error) {
	if pkg.Name == "" {
		return nil, fmt.Errorf("need pkg name")
	}
	if pkg.PkgPath == "" {
		return nil, fmt.Errorf("need pkg path")
	}
	if pkg.Types == nil {
		return nil, fmt.Errorf("need pkg types")
	}
	if pkg.Fset == nil {
		return nil, fmt.Errorf("need pkg fset")
	}
	if pkg.Syntax == nil {
		return nil, fmt.Errorf("need pkg syntax")
	}
	if pkg.TypesInfo == nil {
		return nil, fmt.Errorf("need pkg types info")
	}
	return &Parser{pkg: pkg}, nil
}

// GetDirective returns the name of the nodyn directive function if the call
// expression is a nodyn directive. Otherwise, it returns false.
func (p *Parser) GetDirective(call *ast.CallExpr) (string, bool) {
	callee := typeutil.Callee(p.pkg.TypesInfo, call)
	if callee == nil {
		return "", false
	}

	pkg := callee.Pkg()
	if pkg == nil {
		// Built-in functions like panic()
		return "", false
	}

	if !IsNodynImport(pkg.Path()) {
		return "", false
	}

	return callee.Name(), true
}

// IsDirective checks if the call expression is a nodyn directive with the
// given name. If name is empty, it checks if the call is any nodyn directive.
func (p *Parser) IsDirective(call *ast.CallExpr, name string) bool {
	calleeName, ok := p.GetDirective(call)
	if !ok {
		return false
	}

	if name == "" {
		return true
	}

	return calleeName == name
}

// TypeArgs returns the type arguments of an instantiated generic directive
// call, such as Define[Value] or Into[int, int64]. It returns nil if the call
// is not instantiated.
func (p *Parser) TypeArgs(call *ast.CallExpr) *types.TypeList {
	fun := ast.Unparen(call.Fun)
	switch f := fun.(type) {
	case *ast.IndexExpr:
		fun = f.X
	case *ast.IndexListExpr:
		fun = f.X
	}

	id, ok := tailIdent(fun)
	if !ok {
		return nil
	}

	inst, ok := p.pkg.TypesInfo.Instances[id]
	if !ok {
		return nil
	}
	return inst.TypeArgs
}

// NodynGoFiles returns the Go files that have a "//go:build nodyn"
// constraint.
func (p *Parser) NodynGoFiles() []*ast.File {
	var files []*ast.File
	for _, file := range p.pkg.Syntax {
		if hasGoBuildNodyn(file) {
			files = append(files, file)
		}
	}
	return files
}

// hasGoBuildNodyn checks if the file has a "//go:build nodyn" constraint.
func hasGoBuildNodyn(file *ast.File) bool {
	ok := false
	for _, group := range file.Comments {
		for _, comment := range group.List {
			if constraint.IsGoBuild(comment.Text) {
				expr, err := constraint.Parse(comment.Text)
				if err != nil {
					continue
				}
				expr.Eval(func(tag string) bool {
					if tag == "nodyn" {
						ok = true
					}
					return true
				})
			}
		}
	}
	return ok
}

// tailIdent extracts the rightmost [ast.Ident] from the expression.
//
//	foo
//	^^^
//	foo.bar.baz
//	        ^^^
func tailIdent(expr ast.Expr) (*ast.Ident, bool) {
	expr = ast.Unparen(expr)
	switch expr := expr.(type) {
	case *ast.Ident:
		return expr, true
	case *ast.SelectorExpr:
		return tailIdent(expr.Sel)
	}
	return nil, false
}
