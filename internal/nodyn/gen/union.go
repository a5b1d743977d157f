// Package gen writes the generated API of a union: the tagged struct, the
// conversions, the introspection helpers, the capability dispatch methods,
// and the collection wrapper. The fragments are unformatted; the caller runs
// gofmt over the assembled file.
package gen

import (
	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// WriteUnion writes the discriminant type, its constants, and the tagged
// struct. The doc comment of the placeholder declaration is carried over.
func WriteUnion(w *codefmt.Writer, u *model.Union) {
	w.Printf("type %s uint8\n\n", u.TagType())

	w.Printf("const (\n")
	for i, v := range u.Variants {
		if i == 0 {
			w.Printf("%s %s = iota\n", u.TagConst(v), u.TagType())
		} else {
			w.Printf("%s\n", u.TagConst(v))
		}
	}
	w.Printf(")\n\n")

	for _, line := range u.Doc {
		w.Printf("%s\n", line)
	}
	w.Printf("type %s struct {\n", u.Name)
	w.Printf("tag %s\n", u.TagType())
	for _, v := range u.Variants {
		w.Printf("%s %t\n", v.Field, v.Type)
	}
	w.Printf("}\n\n")
}
