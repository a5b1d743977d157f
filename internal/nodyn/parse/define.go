package parse

import (
	"cmp"
	"errors"
	"go/ast"
	"go/types"
	"slices"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
	"github.com/franklaranja/nodyn/internal/typeinfo"
)

// ParseDefines finds and parses all nodyn.Define calls in the parsed files.
// It collects all errors instead of stopping at the first error. The returned
// unions are ordered by the position of their Define call.
func (p *Parser) ParseDefines() ([]*model.Union, error) {
	var unions []*model.Union
	var errs error

	for _, file := range p.NodynGoFiles() {
		for _, call := range p.FindDefines(file) {
			u, err := p.ParseDefine(call)
			errs = errors.Join(errs, err)
			if u != nil {
				unions = append(unions, u)
			}
		}
	}

	slices.SortFunc(unions, func(a, b *model.Union) int {
		return cmp.Compare(a.Pos, b.Pos)
	})
	return unions, errs
}

// FindDefines collects package-level "var _ = nodyn.Define[U](...)"
// assignments. Define calls anywhere else are rejected by [Parser.Validate].
func (p *Parser) FindDefines(file *ast.File) []*ast.CallExpr {
	var calls []*ast.CallExpr
	for _, decl := range file.Decls {
		gen, ok := decl.(*ast.GenDecl)
		if !ok {
			continue
		}

		for _, spec := range gen.Specs {
			val, ok := spec.(*ast.ValueSpec)
			if !ok {
				continue
			}

			for i, id := range val.Names {
				if id.Name != "_" || len(val.Values) <= i {
					continue
				}

				call, ok := ast.Unparen(val.Values[i]).(*ast.CallExpr)
				if !ok || !p.IsDirective(call, "Define") {
					continue
				}

				calls = append(calls, call)
			}
		}
	}
	return calls
}

// intoSpec is an unresolved Into option. It is attached to its source variant
// after all wrapped types are known, so Into may appear before the Type
// option it refers to.
type intoSpec struct {
	from typeinfo.Type
	to   typeinfo.Type
	expr ast.Expr
}

// ParseDefine parses a single nodyn.Define call into a resolved union.
func (p *Parser) ParseDefine(call *ast.CallExpr) (*model.Union, error) {
	targs := p.TypeArgs(call)
	if targs == nil || targs.Len() != 1 {
		return nil, codefmt.Errorf(p, call, "Define needs an explicit type argument")
	}

	u, err := p.parsePlaceholder(call, targs.At(0))
	if err != nil {
		return nil, err
	}

	var (
		wrapped      []model.WrappedType
		intos        []intoSpec
		featuresSeen bool
		errs         error
	)

	for _, arg := range call.Args {
		optCall, ok := ast.Unparen(arg).(*ast.CallExpr)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "%c is not a nodyn option", arg))
			continue
		}

		directive, ok := p.GetDirective(optCall)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "%c is not a nodyn option", arg))
			continue
		}

		switch directive {
		case "Type":
			typ, err := p.parseOneTypeArg(optCall, needArgs0(p, optCall))
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if err := checkDuplicatePayload(p, wrapped, typ, optCall); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			wrapped = append(wrapped, model.WrappedType{Type: typ, Pos: optCall.Pos()})

		case "TypeNamed":
			nameExpr, err := needArgs1(p, optCall)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			name, err := parseStringArg(p, nameExpr)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if !codefmt.IsExportedName(name) {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall,
					"variant name %q is not an exported Go identifier", name))
				continue
			}
			typ, err := p.parseOneTypeArg(optCall, nil)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if err := checkDuplicatePayload(p, wrapped, typ, optCall); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			wrapped = append(wrapped, model.WrappedType{Type: typ, Override: name, Pos: optCall.Pos()})

		case "Into":
			if err := needArgs0(p, optCall); err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			targs := p.TypeArgs(optCall)
			if targs == nil || targs.Len() != 2 {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "Into needs two explicit type arguments"))
				continue
			}
			intos = append(intos, intoSpec{
				from: typeinfo.TypeOf(targs.At(0)),
				to:   typeinfo.TypeOf(targs.At(1)),
				expr: optCall,
			})

		case "Impl", "ImplPtr":
			typ, err := p.parseOneTypeArg(optCall, needArgs0(p, optCall))
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			if !typ.IsInterface() {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "%s needs an interface type, not %t", directive, typ))
				continue
			}
			if typ.Interface.NumMethods() == 0 {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "%s needs an interface with at least one method", directive))
				continue
			}
			if typ.IsGeneric() {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "%s cannot dispatch a generic interface", directive))
				continue
			}
			u.Capabilities = append(u.Capabilities, model.Capability{
				Iface: typ,
				ByPtr: directive == "ImplPtr",
				Pos:   optCall.Pos(),
			})

		case "Features":
			if featuresSeen {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "duplicate Features option"))
				continue
			}
			featuresSeen = true
			features, err := p.parseFeatures(optCall)
			if err != nil {
				errs = errors.Join(errs, err)
				continue
			}
			u.Features = features

		case "Vec":
			if u.Vec != nil {
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "duplicate Vec option"))
				continue
			}
			name := u.Name + "Vec"
			switch len(optCall.Args) {
			case 0:
			case 1:
				name, err = parseStringArg(p, optCall.Args[0])
				if err != nil {
					errs = errors.Join(errs, err)
					continue
				}
				if !codefmt.IsExportedName(name) {
					errs = errors.Join(errs, codefmt.Errorf(p, optCall,
						"Vec name %q is not an exported Go identifier", name))
					continue
				}
			default:
				errs = errors.Join(errs, codefmt.Errorf(p, optCall, "need 0 or 1 parameters"))
				continue
			}
			u.Vec = &model.Vec{Name: name, Pos: optCall.Pos()}

		default:
			errs = errors.Join(errs, codefmt.Errorf(p, optCall, "cannot use %s inside Define", directive))
		}
	}

	if !featuresSeen {
		u.Features = model.AllFeatures()
	}

	if len(wrapped) == 0 {
		errs = errors.Join(errs, codefmt.Errorf(p, call, "need at least one Type or TypeNamed option"))
	}

	// Attach Into conversions to their source variants.
	for _, into := range intos {
		found := false
		for i := range wrapped {
			if types.Identical(wrapped[i].Type.T, into.from.T) {
				wrapped[i].Intos = append(wrapped[i].Intos, into.to)
				found = true
				break
			}
		}
		if !found {
			errs = errors.Join(errs, codefmt.Errorf(p, into.expr, "Into source %t is not a variant payload", into.from))
		}
	}

	if errs != nil {
		return nil, errs
	}

	variants, err := model.BuildVariants(codefmt.Pkg(p.pkg), wrapped)
	if err != nil {
		return nil, err
	}
	u.Variants = variants

	downcasts, err := model.BuildDowncasts(codefmt.Pkg(p.pkg), variants)
	if err != nil {
		return nil, err
	}
	u.Downcasts = downcasts

	// Generated dispatch calls the method on an addressable field, so a
	// payload qualifies with either method set.
	for _, c := range u.Capabilities {
		for _, v := range u.Variants {
			if !v.Type.Implements(c.Iface.Interface) && !v.Type.ImplementsPtr(c.Iface.Interface) {
				errs = errors.Join(errs, codefmt.Errorf(p, codefmt.Pos(c.Pos),
					"payload %t does not implement %t", v.Type, c.Iface))
			}
		}
	}
	if errs != nil {
		return nil, errs
	}
	return u, nil
}

// parseOneTypeArg extracts the single type argument of an option call. argErr
// carries an argument count error from the caller to report both problems at
// once.
func (p *Parser) parseOneTypeArg(call *ast.CallExpr, argErr error) (typeinfo.Type, error) {
	targs := p.TypeArgs(call)
	if targs == nil || targs.Len() != 1 {
		name, _ := p.GetDirective(call)
		return typeinfo.Type{}, errors.Join(argErr,
			codefmt.Errorf(p, call, "%s needs an explicit type argument", name))
	}
	if argErr != nil {
		return typeinfo.Type{}, argErr
	}
	return typeinfo.TypeOf(targs.At(0)), nil
}

// parseFeatures parses the arguments of a Features option. Arguments must be
// the feature constants of the nodyn package.
func (p *Parser) parseFeatures(call *ast.CallExpr) (model.Features, error) {
	var features model.Features
	var errs error

	for _, arg := range call.Args {
		id, ok := tailIdent(arg)
		if !ok {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "%c is not a nodyn feature", arg))
			continue
		}

		obj := p.pkg.TypesInfo.ObjectOf(id)
		if obj == nil || obj.Pkg() == nil || !IsNodynImport(obj.Pkg().Path()) {
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "%c is not a nodyn feature", arg))
			continue
		}

		switch obj.Name() {
		case "TryInto":
			features.TryInto = true
		case "IsAs":
			features.IsAs = true
		case "Introspection":
			features.Introspection = true
		default:
			errs = errors.Join(errs, codefmt.Errorf(p, arg, "%c is not a nodyn feature", arg))
		}
	}

	return features, errs
}

func checkDuplicatePayload(p *Parser, wrapped []model.WrappedType, typ typeinfo.Type, call *ast.CallExpr) error {
	for _, w := range wrapped {
		if types.Identical(w.Type.T, typ.T) {
			return codefmt.Errorf(p, call, "duplicate variant type %t; already wrapped at %b", typ, w.Pos)
		}
	}
	return nil
}
