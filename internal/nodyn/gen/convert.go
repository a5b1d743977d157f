package gen

import (
	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// WriteUpcasts writes one total constructor per variant. Upcasts are always
// generated; they are the only way to produce a non-zero union value.
func WriteUpcasts(w *codefmt.Writer, u *model.Union) {
	for _, v := range u.Variants {
		w.Printf("// %sFrom%s wraps v in a %s.\n", u.Name, v.Name, u.Name)
		w.Printf("func %sFrom%s(v %t) %s {\n", u.Name, v.Name, v.Type, u.Name)
		w.Printf("return %s{tag: %s, %s: v}\n", u.Name, u.TagConst(v), v.Field)
		w.Printf("}\n\n")
	}
}

// WriteConstraint writes the payload type set and the generic constructor.
// Interface payloads cannot appear in a type set, so unions wrapping one get
// no generic constructor and callers use the per-variant upcasts.
func WriteConstraint(w *codefmt.Writer, u *model.Union) {
	if u.HasInterfacePayload() {
		return
	}

	w.Printf("// %s matches the payload types of %s.\n", u.PayloadConstraint(), u.Name)
	w.Printf("type %s interface {\n", u.PayloadConstraint())
	for i, v := range u.Variants {
		if i == 0 {
			w.Printf("%t", v.Type)
		} else {
			w.Printf(" | %t", v.Type)
		}
	}
	w.Printf("\n}\n\n")

	w.Printf("// New%s wraps any payload in a %s.\n", u.Name, u.Name)
	w.Printf("func New%s[T %s](v T) %s {\n", u.Name, u.PayloadConstraint(), u.Name)
	w.Printf("switch v := any(v).(type) {\n")
	last := u.Variants[len(u.Variants)-1]
	for _, v := range u.Variants[:len(u.Variants)-1] {
		w.Printf("case %t:\n", v.Type)
		w.Printf("return %sFrom%s(v)\n", u.Name, v.Name)
	}
	w.Printf("default:\n")
	w.Printf("return %sFrom%s(v.(%t))\n", u.Name, last.Name, last.Type)
	w.Printf("}\n")
	w.Printf("}\n\n")
}

// WriteDowncasts writes the comma-ok consuming accessors. On a mismatch the
// zero payload is returned and the receiver is left as is. Into options add
// conversion arms, so one target may be satisfied by several variants.
func WriteDowncasts(w *codefmt.Writer, u *model.Union) {
	for _, d := range u.Downcasts {
		w.Printf("// TryInto%s returns the %t payload if the active variant provides one.\n", d.Name, d.Type)
		w.Printf("func (v %s) TryInto%s() (%t, bool) {\n", u.Name, d.Name, d.Type)
		if len(d.Arms) == 1 && !d.Arms[0].Convert {
			v := d.Arms[0].Variant
			w.Printf("if v.tag == %s {\n", u.TagConst(v))
			w.Printf("return v.%s, true\n", v.Field)
			w.Printf("}\n")
		} else {
			w.Printf("switch v.tag {\n")
			for _, arm := range d.Arms {
				w.Printf("case %s:\n", u.TagConst(arm.Variant))
				if arm.Convert {
					w.Printf("return %q(v.%s), true\n", d.Type, arm.Variant.Field)
				} else {
					w.Printf("return v.%s, true\n", arm.Variant.Field)
				}
			}
			w.Printf("}\n")
		}
		w.Printf("var zero %t\n", d.Type)
		w.Printf("return zero, false\n")
		w.Printf("}\n\n")
	}
}
