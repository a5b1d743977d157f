package parse

import (
	"go/ast"
	"go/token"
	"strconv"

	"github.com/franklaranja/nodyn/internal/codefmt"
)

func needArgs0(p *Parser, call *ast.CallExpr) error {
	if len(call.Args) != 0 {
		return codefmt.Errorf(p, call, "need no parameters")
	}
	return nil
}

func needArgs1(p *Parser, call *ast.CallExpr) (ast.Expr, error) {
	if len(call.Args) != 1 {
		return nil, codefmt.Errorf(p, call, "need 1 parameter")
	}
	return call.Args[0], nil
}

// parseStringArg parses a string literal argument. Non-literal strings are
// rejected because directives are erased at code generation and cannot be
// evaluated.
func parseStringArg(p *Parser, expr ast.Expr) (string, error) {
	lit, ok := ast.Unparen(expr).(*ast.BasicLit)
	if !ok || lit.Kind != token.STRING {
		return "", codefmt.Errorf(p, expr, "%c is not a string literal", expr)
	}

	s, _ := strconv.Unquote(lit.Value)
	return s, nil
}
