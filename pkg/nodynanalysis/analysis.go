// Package nodynanalysis exposes Nodyn's validation as a go/analysis pass so
// it can run inside linters and editor integrations.
package nodynanalysis

import (
	"golang.org/x/tools/go/analysis"
	"golang.org/x/tools/go/packages"

	"github.com/franklaranja/nodyn/internal/codefmt"
	nodyninternal "github.com/franklaranja/nodyn/internal/nodyn"
)

// Analyzer validates the usage of nodyn directives in the package.
var Analyzer = &analysis.Analyzer{
	Name: "nodyn",
	Doc:  "linter for nodyn usage",
	Run:  run,
}

func run(pass *analysis.Pass) (any, error) {
	pkg := &packages.Package{
		Name:      pass.Pkg.Name(),
		PkgPath:   pass.Pkg.Path(),
		Types:     pass.Pkg,
		Fset:      pass.Fset,
		Syntax:    pass.Files,
		TypesInfo: pass.TypesInfo,
	}

	g, err := nodyninternal.New(pkg)
	if err != nil {
		return nil, err
	}

	if err := g.Build(); err != nil {
		// Unroll all errors and report them
		errs := []error{err}
		for len(errs) != 0 {
			err := errs[0]
			errs = errs[1:]

			if codeErr, ok := err.(*codefmt.CodeError); ok {
				pass.Report(analysis.Diagnostic{
					Pos:     codeErr.Pos(),
					End:     codeErr.End(),
					Message: codeErr.Unwrap().Error(),
				})
				continue
			}

			if u, ok := err.(interface{ Unwrap() []error }); ok {
				errs = append(errs, u.Unwrap()...)
			}
		}
	}

	return nil, nil
}
