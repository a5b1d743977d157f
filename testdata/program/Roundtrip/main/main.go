package main

import (
	"fmt"

	"example.com/Roundtrip/scalar"
)

func main() {
	v := scalar.ValueFromInt64(42)
	fmt.Println(v.TypeName())

	n, ok := v.TryIntoInt64()
	fmt.Println(n, ok)

	f, ok := v.TryIntoFloat64()
	fmt.Println(f, ok)

	s, ok := v.TryIntoText()
	fmt.Printf("%q %v\n", s, ok)

	fmt.Println(v.IsInt64(), v.IsText())

	w := scalar.NewValue("hi")
	fmt.Println(w.TypeName())
	if p, ok := w.TryAsText(); ok {
		*p += "!"
	}
	s, ok = w.TryIntoText()
	fmt.Println(s, ok)

	fmt.Println(scalar.ValueCount, scalar.ValueTypes())
}
