package gen

import (
	"strconv"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// WriteIntrospection writes the variant count, the payload type list, and the
// active payload type accessor. All of them report payload type strings, not
// variant names.
func WriteIntrospection(w *codefmt.Writer, u *model.Union) {
	w.Printf("// %sCount is the number of %s variants.\n", u.Name, u.Name)
	w.Printf("const %sCount = %d\n\n", u.Name, len(u.Variants))

	w.Printf("// %sTypes lists the payload type of each %s variant in declaration order.\n", u.Name, u.Name)
	w.Printf("func %sTypes() []string {\n", u.Name)
	w.Printf("return []string{")
	for i, v := range u.Variants {
		if i != 0 {
			w.Printf(", ")
		}
		w.Printf("%s", strconv.Quote(v.TypeString))
	}
	w.Printf("}\n")
	w.Printf("}\n\n")

	w.Printf("// TypeName returns the payload type of the active variant.\n")
	w.Printf("func (v %s) TypeName() string {\n", u.Name)
	w.Printf("switch v.tag {\n")
	last := u.Variants[len(u.Variants)-1]
	for _, v := range u.Variants[:len(u.Variants)-1] {
		w.Printf("case %s:\n", u.TagConst(v))
		w.Printf("return %s\n", strconv.Quote(v.TypeString))
	}
	w.Printf("default:\n")
	w.Printf("return %s\n", strconv.Quote(last.TypeString))
	w.Printf("}\n")
	w.Printf("}\n\n")
}

// WriteAccessors writes the non-consuming variant accessors: the predicates
// and the in-place payload pointers.
func WriteAccessors(w *codefmt.Writer, u *model.Union) {
	for _, v := range u.Variants {
		w.Printf("// Is%s reports whether the active variant wraps %t.\n", v.Name, v.Type)
		w.Printf("func (v %s) Is%s() bool {\n", u.Name, v.Name)
		w.Printf("return v.tag == %s\n", u.TagConst(v))
		w.Printf("}\n\n")

		w.Printf("// TryAs%s returns a pointer into the %t payload if active.\n", v.Name, v.Type)
		w.Printf("func (v *%s) TryAs%s() (*%t, bool) {\n", u.Name, v.Name, v.Type)
		w.Printf("if v.tag != %s {\n", u.TagConst(v))
		w.Printf("return nil, false\n")
		w.Printf("}\n")
		w.Printf("return &v.%s, true\n", v.Field)
		w.Printf("}\n\n")
	}
}
