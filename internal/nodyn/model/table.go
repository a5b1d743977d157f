package model

import (
	"github.com/emirpasic/gods/maps/linkedhashmap"

	"github.com/franklaranja/nodyn/internal/codefmt"
)

// nameTable maps canonical variant names to variants in insertion order. It
// is scoped to a single union.
type nameTable struct {
	m *linkedhashmap.Map
}

func newNameTable() *nameTable {
	return &nameTable{m: linkedhashmap.New()}
}

// add registers a variant under its name. A collision is an error no matter
// whether the names were derived or explicit; the error references both
// declarations.
func (t *nameTable) add(pkger codefmt.Pkger, v *Variant) error {
	if prev, ok := t.m.Get(v.Name); ok {
		return codefmt.Errorf(pkger, codefmt.Pos(v.Pos),
			"variant name %q already used at %s; rename one with TypeNamed",
			v.Name, codefmt.FormatPos(pkger, prev.(*Variant).Pos))
	}
	t.m.Put(v.Name, v)
	return nil
}

// variants returns the registered variants in insertion order.
func (t *nameTable) variants() []*Variant {
	vs := make([]*Variant, 0, t.m.Size())
	t.m.Each(func(_, v any) {
		vs = append(vs, v.(*Variant))
	})
	return vs
}
