package parse

import (
	"errors"
	"go/ast"
	"go/token"
	"strings"

	"github.com/franklaranja/nodyn/internal/codefmt"
)

// Validate checks for directive usages outside expected paths. It collects
// all errors instead of stopping at the first error.
//
// Most validation rules are implemented by the narrow parsing functions. The
// rules checked here are global: the build constraint on importing files, and
// directive calls placed anywhere but a package-level "var _ =" assignment.
func (p *Parser) Validate() error {
	var errs error
	for _, file := range p.Pkg().Syntax {
		errs = errors.Join(errs, p.validateConstraint(file))
		errs = errors.Join(errs, p.validateDirectivePlacement(file))
	}
	return errs
}

// validateConstraint checks if files importing nodyn have a
// "//go:build nodyn" constraint. Without the constraint the no-op directives
// would survive in the regular build.
func (p *Parser) validateConstraint(file *ast.File) error {
	var nodynImport *ast.ImportSpec
	for _, imp := range file.Imports {
		if IsNodynImport(strings.Trim(imp.Path.Value, `"`)) {
			nodynImport = imp
			break
		}
	}
	if nodynImport == nil {
		return nil
	}

	if hasGoBuildNodyn(file) {
		return nil
	}

	return codefmt.Errorf(p, nodynImport, `file must have "//go:build nodyn" constraint when importing nodyn`)
}

// validateDirectivePlacement checks that every Define call is a package-level
// blank assignment and that option directives appear only as arguments of a
// Define call. Directives are erased at code generation, so any other usage
// would leave dangling references in the generated file.
func (p *Parser) validateDirectivePlacement(file *ast.File) error {
	if !hasGoBuildNodyn(file) {
		return nil
	}

	allowed := make(map[token.Pos]struct{})
	for _, call := range p.FindDefines(file) {
		allowed[call.Pos()] = struct{}{}
		for _, arg := range call.Args {
			if opt, ok := ast.Unparen(arg).(*ast.CallExpr); ok {
				allowed[opt.Pos()] = struct{}{}
			}
		}
	}

	var errs error
	ast.Inspect(file, func(node ast.Node) bool {
		call, ok := node.(*ast.CallExpr)
		if !ok {
			return true
		}

		directive, ok := p.GetDirective(call)
		if !ok {
			return true
		}

		if _, ok := allowed[call.Pos()]; ok {
			return true
		}

		if directive == "Define" {
			errs = errors.Join(errs, codefmt.Errorf(p, call,
				`Define must be assigned to the blank identifier at package level: "var _ = nodyn.Define[U](...)"`))
		} else {
			errs = errors.Join(errs, codefmt.Errorf(p, call,
				"cannot use %s outside a Define call", directive))
		}
		return true
	})
	return errs
}
