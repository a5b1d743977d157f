// Package nodyninternal generates tagged union code for a package. Unions
// are declared with no-op directives in files guarded by "//go:build nodyn";
// the generated file is guarded by "//go:build !nodyn", so exactly one of
// the two is ever compiled.
package nodyninternal

import (
	"bytes"
	"errors"
	"fmt"
	"go/ast"
	"go/format"
	"go/printer"
	"go/token"
	"io"
	"path/filepath"

	"golang.org/x/tools/go/packages"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/gen"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
	"github.com/franklaranja/nodyn/internal/nodyn/parse"
)

// Nodyn generates union code for the target package. Call [Nodyn.Build] and
// then [Nodyn.Generate] to get the generated code. All potential errors are
// returned by [Nodyn.Build]. Once [Nodyn.Build] succeeds, [Nodyn.Generate]
// never fails.
type Nodyn struct {
	p   *parse.Parser
	buf *bytes.Buffer
	w   *codefmt.Writer

	unions []*model.Union
}

// New creates a new [Nodyn] for the given package. The package must have its
// Syntax, Types and TypesInfo, and it must not have any errors.
func New(pkg *packages.Package) (*Nodyn, error) {
	parser, err := parse.New(pkg)
	if err != nil {
		return nil, err
	}

	var buf bytes.Buffer
	return &Nodyn{
		p:   parser,
		buf: &buf,
		w:   codefmt.NewWriter(&buf, pkg).WithNS(codefmt.NewNS(pkg.Types.Scope())),
	}, nil
}

// Build parses the union declarations of the package. All potential errors
// are returned by this method. It must be called before [Nodyn.Generate].
func (g *Nodyn) Build() error {
	errs := g.p.Validate()

	unions, err := g.p.ParseDefines()
	errs = errors.Join(errs, err)
	if errs != nil {
		return errs
	}

	g.unions = unions
	return nil
}

// Generate generates union code for the package. It must be called after
// [Nodyn.Build] succeeds. It returns nil if the package declares no unions.
func (g *Nodyn) Generate() []byte {
	if len(g.unions) == 0 {
		return nil
	}

	g.writeUnionCode()
	g.mergeCode()
	return g.frameCode()
}

// writeUnionCode writes the generated API of each union, ordered by the
// position of its Define call.
func (g *Nodyn) writeUnionCode() {
	for _, u := range g.unions {
		g.w.Printf("// nodyn: union %s\n\n", u.Name)

		gen.WriteUnion(g.w, u)
		gen.WriteUpcasts(g.w, u)
		gen.WriteConstraint(g.w, u)
		if u.Features.TryInto {
			gen.WriteDowncasts(g.w, u)
		}
		if u.Features.Introspection {
			gen.WriteIntrospection(g.w, u)
		}
		if u.Features.IsAs {
			gen.WriteAccessors(g.w, u)
		}
		gen.WriteCapabilities(g.w, u)
		gen.WriteVec(g.w, u)
	}
}

// mergeCode copies non-directive code from the source files tagged with
// "//go:build nodyn". Define assignments and placeholder type declarations
// are erased to remove any references to the nodyn package; everything else,
// including custom methods on the union, is carried over verbatim.
func (g *Nodyn) mergeCode() {
	defines := make(map[token.Pos]struct{}, len(g.unions))
	placeholders := make(map[token.Pos]struct{}, len(g.unions))
	for _, u := range g.unions {
		defines[u.Pos] = struct{}{}
		placeholders[u.TypePos] = struct{}{}
	}

	for _, file := range g.p.NodynGoFiles() {
		name := filepath.Base(g.p.Pkg().Fset.File(file.Pos()).Name())
		first := true

		for _, decl := range file.Decls {
			gd, ok := decl.(*ast.GenDecl)
			if ok {
				switch gd.Tok {
				case token.IMPORT:
					// Skip import declarations. Required imports are
					// collected from their usage and rewritten as a single
					// import group.
					continue

				case token.TYPE:
					var specs []ast.Spec
					for _, spec := range gd.Specs {
						ts, ok := spec.(*ast.TypeSpec)
						if ok {
							if _, erase := placeholders[ts.Name.Pos()]; erase {
								continue
							}
						}
						specs = append(specs, spec)
					}
					if len(specs) == 0 {
						continue
					}
					decl = &ast.GenDecl{
						Doc:    gd.Doc,
						TokPos: gd.TokPos,
						Tok:    gd.Tok,
						Lparen: gd.Lparen,
						Specs:  specs,
						Rparen: gd.Rparen,
					}

				case token.VAR:
					var specs []ast.Spec
					for _, spec := range gd.Specs {
						val, ok := spec.(*ast.ValueSpec)
						if ok {
							spec = g.eraseDefines(val, defines)
							if spec == nil {
								continue
							}
						}
						specs = append(specs, spec)
					}
					if len(specs) == 0 {
						continue
					}
					decl = &ast.GenDecl{
						Doc:    gd.Doc,
						TokPos: gd.TokPos,
						Tok:    gd.Tok,
						Lparen: gd.Lparen,
						Specs:  specs,
						Rparen: gd.Rparen,
					}
				}
			}

			if first {
				fmt.Fprintf(g.buf, "// %s:\n\n", name)
				first = false
			}

			// Prevent import name conflicts when merging multiple files
			decl = codefmt.RewriteImports(g.w, decl)

			printer.Fprint(g.buf, g.p.Pkg().Fset, &printer.CommentedNode{
				Node:     decl,
				Comments: file.Comments,
			})
			fmt.Fprintf(g.buf, "\n\n")
		}
	}
}

// eraseDefines removes Define assignments from a value spec. It returns nil
// when nothing remains.
func (g *Nodyn) eraseDefines(spec *ast.ValueSpec, defines map[token.Pos]struct{}) ast.Spec {
	var names []*ast.Ident
	var values []ast.Expr
	for i := range spec.Names {
		if i >= len(spec.Values) {
			names = append(names, spec.Names[i])
			continue
		}

		if _, erase := defines[ast.Unparen(spec.Values[i]).Pos()]; erase {
			continue
		}
		names = append(names, spec.Names[i])
		values = append(values, spec.Values[i])
	}

	if len(names) == 0 {
		return nil
	}
	return &ast.ValueSpec{
		Doc:     spec.Doc,
		Names:   names,
		Type:    spec.Type,
		Values:  values,
		Comment: spec.Comment,
	}
}

func (g *Nodyn) frameCode() []byte {
	versionSuffix := ""
	if Version != "" {
		versionSuffix = "@" + Version
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "//go:build !nodyn\n")
	fmt.Fprintf(&buf, "// Code generated by github.com/franklaranja/nodyn%s. DO NOT EDIT.\n", versionSuffix)
	fmt.Fprintf(&buf, "package %s\n", g.p.Pkg().Name)

	if len(g.w.Imports()) != 0 {
		fmt.Fprintf(&buf, "import (\n")
		for alias, imp := range g.w.Imports() {
			// Check for remaining nodyn import
			if parse.IsNodynImport(imp.Path()) {
				fmt.Println("nodyn import remains")
			}

			if imp.HasAlias {
				fmt.Fprintf(&buf, "%s %q\n", alias, imp.Path())
			} else {
				fmt.Fprintf(&buf, "%q\n", imp.Path())
			}
		}
		fmt.Fprintf(&buf, ")\n")
	}

	_, _ = io.Copy(&buf, g.buf)
	code := buf.Bytes()

	// Apply gofmt if succeeded
	if fmtCode, err := format.Source(code); err == nil {
		code = fmtCode
	}
	return code
}
