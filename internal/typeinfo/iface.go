package typeinfo

import (
	"cmp"
	"go/types"
	"slices"
)

// InterfaceMethods returns the complete method set of the interface in source
// declaration order. [types.Interface.Method] sorts methods by unique Id, so
// the methods are re-sorted by position. It returns nil if the type is not an
// interface.
func (t Type) InterfaceMethods() []*types.Func {
	if !t.IsInterface() {
		return nil
	}

	methods := make([]*types.Func, 0, t.Interface.NumMethods())
	for m := range t.Interface.Methods() {
		methods = append(methods, m)
	}
	slices.SortFunc(methods, func(a, b *types.Func) int {
		return cmp.Compare(a.Pos(), b.Pos())
	})
	return methods
}

// Implements reports whether the type implements the interface.
func (t Type) Implements(iface *types.Interface) bool {
	return types.Implements(t.T, iface)
}

// ImplementsPtr reports whether the pointer type of the type implements the
// interface.
func (t Type) ImplementsPtr(iface *types.Interface) bool {
	if t.IsPointer() || t.IsInterface() {
		return types.Implements(t.T, iface)
	}
	return types.Implements(types.NewPointer(t.T), iface)
}
