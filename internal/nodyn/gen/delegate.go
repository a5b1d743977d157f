package gen

import (
	"fmt"
	"go/types"
	"strconv"
	"strings"

	"github.com/franklaranja/nodyn/internal/codefmt"
	"github.com/franklaranja/nodyn/internal/nodyn/model"
)

// WriteCapabilities writes the dispatch methods of every capability block in
// declaration order. Each interface method becomes a method on the union
// switching on the discriminant and forwarding to the payload; the last
// variant occupies the default arm, so the switch is total and has no panic
// path. Payload compatibility has already been checked during parsing, so
// every forwarded call resolves.
func WriteCapabilities(w *codefmt.Writer, u *model.Union) {
	for _, c := range u.Capabilities {
		if c.Named() {
			w.Printf("// %s dispatches %t to the active payload.\n\n", u.Name, c.Iface)
		}

		for _, m := range c.Methods() {
			writeDispatch(w, u, c, m)
		}

		if !c.Named() {
			continue
		}
		if c.ByPtr {
			w.Printf("var _ %t = (*%s)(nil)\n\n", c.Iface, u.Name)
		} else {
			w.Printf("var _ %t = %s{}\n\n", c.Iface, u.Name)
		}
	}
}

func writeDispatch(w *codefmt.Writer, u *model.Union, c model.Capability, m *types.Func) {
	sig := m.Signature()

	recv := "v " + u.Name
	if c.ByPtr {
		recv = "v *" + u.Name
	}

	ns := make(codefmt.NS)
	ns.Reserve("v")

	var params, args []string
	for i := 0; i < sig.Params().Len(); i++ {
		p := sig.Params().At(i)

		name := p.Name()
		if name == "" || name == "_" {
			name = "a" + strconv.Itoa(i)
		}
		name = ns.Name(name)

		if sig.Variadic() && i == sig.Params().Len()-1 {
			elem := p.Type().(*types.Slice).Elem()
			params = append(params, w.Sprintf("%s ...%t", name, elem))
			args = append(args, name+"...")
		} else {
			params = append(params, w.Sprintf("%s %t", name, p.Type()))
			args = append(args, name)
		}
	}

	var results string
	switch sig.Results().Len() {
	case 0:
	case 1:
		results = " " + w.Sprintf("%t", sig.Results().At(0).Type())
	default:
		rs := make([]string, 0, sig.Results().Len())
		for i := 0; i < sig.Results().Len(); i++ {
			rs = append(rs, w.Sprintf("%t", sig.Results().At(i).Type()))
		}
		results = " (" + strings.Join(rs, ", ") + ")"
	}

	forward := func(v *model.Variant) string {
		call := fmt.Sprintf("v.%s.%s(%s)", v.Field, m.Name(), strings.Join(args, ", "))
		if sig.Results().Len() == 0 {
			return call
		}
		return "return " + call
	}

	w.Printf("func (%s) %s(%s)%s {\n", recv, m.Name(), strings.Join(params, ", "), results)
	w.Printf("switch v.tag {\n")
	last := u.Variants[len(u.Variants)-1]
	for _, v := range u.Variants[:len(u.Variants)-1] {
		w.Printf("case %s:\n", u.TagConst(v))
		w.Printf("%s\n", forward(v))
	}
	w.Printf("default:\n")
	w.Printf("%s\n", forward(last))
	w.Printf("}\n")
	w.Printf("}\n\n")
}
