// Package model defines the data model of a tagged union between parsing and
// code generation: wrapped payload types, canonical variant names, feature
// flags, capability blocks, and the optional collection wrapper.
package model

import (
	"errors"
	"go/token"
	"go/types"
	"slices"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/typeinfo"
)

// WrappedType is one Type or TypeNamed entry of a Define call, before it is
// named and numbered.
type WrappedType struct {
	Type     typeinfo.Type
	Override string
	Intos    []typeinfo.Type
	Pos      token.Pos
}

// Variant is one resolved variant of a union. Index is the discriminant and
// follows declaration order.
type Variant struct {
	Index      int
	Name       string
	Field      string
	Type       typeinfo.Type
	TypeString string
	Intos      []typeinfo.Type
	Pos        token.Pos
}

// Capability is one Impl or ImplPtr block. Every method of the interface is
// dispatched over the variants of the union.
type Capability struct {
	Iface typeinfo.Type
	ByPtr bool
	Pos   token.Pos
}

// Named reports whether the capability targets a defined interface type. A
// named capability additionally asserts that the union implements it.
func (c Capability) Named() bool { return c.Iface.IsNamed() }

// Methods returns the methods to dispatch, in [types.Interface.Method] order.
func (c Capability) Methods() []*types.Func { return c.Iface.InterfaceMethods() }

// Features selects the optional groups of the generated API. Upcast
// constructors are not optional and always generated.
type Features struct {
	TryInto       bool
	IsAs          bool
	Introspection bool
}

// AllFeatures is the default when a Define call has no Features option.
func AllFeatures() Features {
	return Features{TryInto: true, IsAs: true, Introspection: true}
}

// Vec is a requested collection wrapper.
type Vec struct {
	Name string
	Pos  token.Pos
}

// Union is one fully parsed and resolved union declaration.
type Union struct {
	Name         string
	Doc          []string
	Pos          token.Pos
	TypePos      token.Pos
	Variants     []*Variant
	Downcasts    []Downcast
	Features     Features
	Capabilities []Capability
	Vec          *Vec
}

// Downcast is one generated TryInto method. Every variant payload is a
// downcast target; Into options add conversion arms and may add targets that
// are not payloads themselves.
type Downcast struct {
	Name string
	Type typeinfo.Type
	Arms []DowncastArm
}

// DowncastArm is one variant that satisfies a downcast target, either with
// its payload as is or through a Go conversion.
type DowncastArm struct {
	Variant *Variant
	Convert bool
}

// TagType returns the name of the unexported discriminant type, such as
// "valueTag" for union Value.
func (u *Union) TagType() string {
	return unexport(u.Name) + "Tag"
}

// TagConst returns the discriminant constant name of a variant, such as
// "valueTagText".
func (u *Union) TagConst(v *Variant) string {
	return u.TagType() + v.Name
}

// PayloadConstraint returns the name of the generated type-set constraint,
// such as "ValuePayload".
func (u *Union) PayloadConstraint() string {
	return u.Name + "Payload"
}

// HasInterfacePayload reports whether any payload is an interface type.
// Interface types cannot appear in a type-set union, so such unions get no
// generic constructor.
func (u *Union) HasInterfacePayload() bool {
	for _, v := range u.Variants {
		if v.Type.IsInterface() {
			return true
		}
	}
	return false
}

// BuildVariants zips wrapped types with canonical names in declaration order.
// Explicit names win over derived ones and must be valid exported Go
// identifiers; any name collision is an error referencing both declarations. Struct field names are derived from the
// variant names, with "tag" reserved for the discriminant.
func BuildVariants(pkger codefmt.Pkger, wrapped []WrappedType) ([]*Variant, error) {
	table := newNameTable()

	var errs []error
	for i, w := range wrapped {
		name := w.Override
		if name == "" {
			derived, err := VariantName(w.Type)
			if err != nil {
				errs = append(errs, codefmt.Errorf(pkger, codefmt.Pos(w.Pos), "%s", err.Error()))
				continue
			}
			name = derived
		} else if !codefmt.IsExportedName(name) {
			errs = append(errs, codefmt.Errorf(pkger, codefmt.Pos(w.Pos),
				"variant name %q is not an exported Go identifier", name))
			continue
		}

		v := &Variant{
			Index:      i,
			Name:       name,
			Type:       w.Type,
			TypeString: codefmt.FormatType(pkger, w.Type.T),
			Intos:      w.Intos,
			Pos:        w.Pos,
		}
		if err := table.add(pkger, v); err != nil {
			errs = append(errs, err)
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}

	variants := table.variants()

	ns := make(codefmt.NS)
	ns.Reserve("tag")
	for _, v := range variants {
		v.Field = ns.Name(unexport(v.Name))
	}
	return variants, nil
}

// BuildDowncasts resolves the downcast targets of a union: one per variant in
// declaration order, plus one per Into target that is not a payload. Targets
// added by Into need a derivable canonical name; declare such a target as a
// named variant instead when the name cannot be derived.
func BuildDowncasts(pkger codefmt.Pkger, variants []*Variant) ([]Downcast, error) {
	downcasts := make([]Downcast, 0, len(variants))
	for _, v := range variants {
		downcasts = append(downcasts, Downcast{
			Name: v.Name,
			Type: v.Type,
			Arms: []DowncastArm{{Variant: v}},
		})
	}

	var errs []error
	for _, v := range variants {
		for _, target := range v.Intos {
			i := slices.IndexFunc(downcasts, func(d Downcast) bool {
				return types.Identical(d.Type.T, target.T)
			})
			if i < 0 {
				name, err := VariantName(target)
				if err != nil {
					errs = append(errs, codefmt.Errorf(pkger, codefmt.Pos(v.Pos),
						"cannot derive a name for Into target %t; declare it as a named variant", target))
					continue
				}
				if slices.ContainsFunc(downcasts, func(d Downcast) bool { return d.Name == name }) {
					errs = append(errs, codefmt.Errorf(pkger, codefmt.Pos(v.Pos),
						"Into target %t derives the name %q which is already used", target, name))
					continue
				}
				downcasts = append(downcasts, Downcast{Name: name, Type: target})
				i = len(downcasts) - 1
			}
			downcasts[i].Arms = append(downcasts[i].Arms, DowncastArm{Variant: v, Convert: true})
		}
	}
	if len(errs) != 0 {
		return nil, errors.Join(errs...)
	}
	return downcasts, nil
}
