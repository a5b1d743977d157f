package gen

import (
	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// WriteVec writes the collection wrapper and its methods. The wrapper keeps
// insertion order, permits duplicates, and exposes per-variant views in
// variant declaration order.
func WriteVec(cw *codefmt.Writer, u *model.Union) {
	if u.Vec == nil {
		return
	}
	name := u.Vec.Name

	slicesPkg := cw.Import("slices", "slices")
	iterPkg := cw.Import("iter", "iter")

	cw.Printf("// %s is an ordered collection of %s values.\n", name, u.Name)
	cw.Printf("type %s struct {\n", name)
	cw.Printf("items []%s\n", u.Name)
	cw.Printf("}\n\n")

	cw.Printf("// New%s creates a %s holding the given items.\n", name, name)
	cw.Printf("func New%s(items ...%s) %s {\n", name, u.Name, name)
	cw.Printf("return %s{items: %s.Clone(items)}\n", name, slicesPkg)
	cw.Printf("}\n\n")

	cw.Printf("// Push appends items to the end.\n")
	cw.Printf("func (w *%s) Push(items ...%s) {\n", name, u.Name)
	cw.Printf("w.items = append(w.items, items...)\n")
	cw.Printf("}\n\n")

	for _, v := range u.Variants {
		cw.Printf("// Push%s appends %t payloads to the end.\n", v.Name, v.Type)
		cw.Printf("func (w *%s) Push%s(vals ...%t) {\n", name, v.Name, v.Type)
		cw.Printf("for _, v := range vals {\n")
		cw.Printf("w.items = append(w.items, %sFrom%s(v))\n", u.Name, v.Name)
		cw.Printf("}\n")
		cw.Printf("}\n\n")
	}

	cw.Printf("// Insert inserts v at index i.\n")
	cw.Printf("func (w *%s) Insert(i int, v %s) {\n", name, u.Name)
	cw.Printf("w.items = %s.Insert(w.items, i, v)\n", slicesPkg)
	cw.Printf("}\n\n")

	cw.Printf("func (w %s) Len() int {\n", name)
	cw.Printf("return len(w.items)\n")
	cw.Printf("}\n\n")

	cw.Printf("func (w %s) IsEmpty() bool {\n", name)
	cw.Printf("return len(w.items) == 0\n")
	cw.Printf("}\n\n")

	cw.Printf("// At returns the item at index i.\n")
	cw.Printf("func (w %s) At(i int) %s {\n", name, u.Name)
	cw.Printf("return w.items[i]\n")
	cw.Printf("}\n\n")

	cw.Printf("// Pop removes and returns the last item.\n")
	cw.Printf("func (w *%s) Pop() (%s, bool) {\n", name, u.Name)
	cw.Printf("if len(w.items) == 0 {\n")
	cw.Printf("var zero %s\n", u.Name)
	cw.Printf("return zero, false\n")
	cw.Printf("}\n")
	cw.Printf("v := w.items[len(w.items)-1]\n")
	cw.Printf("w.items = w.items[:len(w.items)-1]\n")
	cw.Printf("return v, true\n")
	cw.Printf("}\n\n")

	cw.Printf("// Remove removes and returns the item at index i.\n")
	cw.Printf("func (w *%s) Remove(i int) %s {\n", name, u.Name)
	cw.Printf("v := w.items[i]\n")
	cw.Printf("w.items = %s.Delete(w.items, i, i+1)\n", slicesPkg)
	cw.Printf("return v\n")
	cw.Printf("}\n\n")

	cw.Printf("// Clear removes all items.\n")
	cw.Printf("func (w *%s) Clear() {\n", name)
	cw.Printf("w.items = w.items[:0]\n")
	cw.Printf("}\n\n")

	cw.Printf("// All iterates index and item in collection order.\n")
	cw.Printf("func (w %s) All() %s.Seq2[int, %s] {\n", name, iterPkg, u.Name)
	cw.Printf("return %s.All(w.items)\n", slicesPkg)
	cw.Printf("}\n\n")

	cw.Printf("// Slice returns a copy of the items.\n")
	cw.Printf("func (w %s) Slice() []%s {\n", name, u.Name)
	cw.Printf("return %s.Clone(w.items)\n", slicesPkg)
	cw.Printf("}\n\n")

	for _, v := range u.Variants {
		cw.Printf("// Count%s returns the number of %s items.\n", v.Name, v.Name)
		cw.Printf("func (w %s) Count%s() int {\n", name, v.Name)
		cw.Printf("n := 0\n")
		cw.Printf("for i := range w.items {\n")
		cw.Printf("if w.items[i].tag == %s {\n", u.TagConst(v))
		cw.Printf("n++\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("return n\n")
		cw.Printf("}\n\n")

		cw.Printf("// Iter%s iterates pointers to the %t payloads in collection order.\n", v.Name, v.Type)
		cw.Printf("func (w %s) Iter%s() %s.Seq[*%t] {\n", name, v.Name, iterPkg, v.Type)
		cw.Printf("return func(yield func(*%t) bool) {\n", v.Type)
		cw.Printf("for i := range w.items {\n")
		cw.Printf("if w.items[i].tag != %s {\n", u.TagConst(v))
		cw.Printf("continue\n")
		cw.Printf("}\n")
		cw.Printf("if !yield(&w.items[i].%s) {\n", v.Field)
		cw.Printf("return\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("}\n\n")

		cw.Printf("// Enumerate%s iterates collection index and payload pointer for the\n", v.Name)
		cw.Printf("// %s items in collection order.\n", v.Name)
		cw.Printf("func (w %s) Enumerate%s() %s.Seq2[int, *%t] {\n", name, v.Name, iterPkg, v.Type)
		cw.Printf("return func(yield func(int, *%t) bool) {\n", v.Type)
		cw.Printf("for i := range w.items {\n")
		cw.Printf("if w.items[i].tag != %s {\n", u.TagConst(v))
		cw.Printf("continue\n")
		cw.Printf("}\n")
		cw.Printf("if !yield(i, &w.items[i].%s) {\n", v.Field)
		cw.Printf("return\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("}\n\n")

		cw.Printf("// First%s returns a pointer to the first %s payload.\n", v.Name, v.Name)
		cw.Printf("func (w %s) First%s() (*%t, bool) {\n", name, v.Name, v.Type)
		cw.Printf("for i := range w.items {\n")
		cw.Printf("if w.items[i].tag == %s {\n", u.TagConst(v))
		cw.Printf("return &w.items[i].%s, true\n", v.Field)
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("return nil, false\n")
		cw.Printf("}\n\n")

		cw.Printf("// Last%s returns a pointer to the last %s payload.\n", v.Name, v.Name)
		cw.Printf("func (w %s) Last%s() (*%t, bool) {\n", name, v.Name, v.Type)
		cw.Printf("for i := len(w.items) - 1; i >= 0; i-- {\n")
		cw.Printf("if w.items[i].tag == %s {\n", u.TagConst(v))
		cw.Printf("return &w.items[i].%s, true\n", v.Field)
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("return nil, false\n")
		cw.Printf("}\n\n")

		cw.Printf("// Any%s reports whether any item is a %s.\n", v.Name, v.Name)
		cw.Printf("func (w %s) Any%s() bool {\n", name, v.Name)
		cw.Printf("_, ok := w.First%s()\n", v.Name)
		cw.Printf("return ok\n")
		cw.Printf("}\n\n")

		cw.Printf("// All%s reports whether every item is a %s.\n", v.Name, v.Name)
		cw.Printf("func (w %s) All%s() bool {\n", name, v.Name)
		cw.Printf("for i := range w.items {\n")
		cw.Printf("if w.items[i].tag != %s {\n", u.TagConst(v))
		cw.Printf("return false\n")
		cw.Printf("}\n")
		cw.Printf("}\n")
		cw.Printf("return true\n")
		cw.Printf("}\n\n")
	}
}
