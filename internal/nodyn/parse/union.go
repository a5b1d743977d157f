package parse

import (
	"go/ast"
	"go/token"
	"go/types"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// parsePlaceholder validates the type argument of a Define call and returns
// the union skeleton named after it. The placeholder must be a struct type
// declared in the same package as "struct{ nodyn.Union }", without type
// parameters. Its doc comment is carried onto the generated type.
func (p *Parser) parsePlaceholder(call *ast.CallExpr, t types.Type) (*model.Union, error) {
	named, ok := types.Unalias(t).(*types.Named)
	if !ok {
		return nil, codefmt.Errorf(p, call, "type argument of Define must be a defined struct type, not %t", t)
	}

	obj := named.Obj()
	if obj.Pkg() != p.pkg.Types {
		return nil, codefmt.Errorf(p, call, "%o must be declared in package %s", obj, p.pkg.Name)
	}

	if named.TypeParams().Len() != 0 {
		return nil, codefmt.Errorf(p, call, "%o cannot have type parameters", obj)
	}

	if !isPlaceholderStruct(named) {
		return nil, codefmt.Errorf(p, call, `%o must be declared as "struct{ nodyn.Union }"`, obj)
	}

	doc, typePos := p.placeholderDoc(obj)
	if !typePos.IsValid() {
		return nil, codefmt.Errorf(p, call, `%o must be declared in a file with "//go:build nodyn" constraint`, obj)
	}

	return &model.Union{
		Name:    obj.Name(),
		Doc:     doc,
		Pos:     call.Pos(),
		TypePos: typePos,
	}, nil
}

// isPlaceholderStruct reports whether the struct embeds nodyn.Union and
// nothing else.
func isPlaceholderStruct(named *types.Named) bool {
	st, ok := named.Underlying().(*types.Struct)
	if !ok {
		return false
	}

	if st.NumFields() != 1 {
		return false
	}

	field := st.Field(0)
	if !field.Embedded() {
		return false
	}

	marker, ok := types.Unalias(field.Type()).(*types.Named)
	if !ok {
		return false
	}

	mobj := marker.Obj()
	return mobj.Name() == "Union" && mobj.Pkg() != nil && IsNodynImport(mobj.Pkg().Path())
}

// placeholderDoc finds the declaration of the placeholder type in the tagged
// files and returns its doc comment lines and the position of its name. The
// position identifies the declaration to erase when merging code.
func (p *Parser) placeholderDoc(obj types.Object) ([]string, token.Pos) {
	for _, file := range p.NodynGoFiles() {
		for _, decl := range file.Decls {
			gen, ok := decl.(*ast.GenDecl)
			if !ok || gen.Tok != token.TYPE {
				continue
			}

			for _, spec := range gen.Specs {
				ts, ok := spec.(*ast.TypeSpec)
				if !ok || ts.Name.Pos() != obj.Pos() {
					continue
				}

				doc := ts.Doc
				if doc == nil && len(gen.Specs) == 1 {
					doc = gen.Doc
				}

				var lines []string
				if doc != nil {
					for _, c := range doc.List {
						lines = append(lines, c.Text)
					}
				}
				return lines, ts.Name.Pos()
			}
		}
	}
	return nil, token.NoPos
}
