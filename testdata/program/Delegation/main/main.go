package main

import (
	"fmt"

	"example.com/Delegation/geom"
)

func main() {
	shapes := []geom.Any{
		geom.AnyFromCircle(geom.Circle{R: 2}),
		geom.AnyFromSquare(geom.Square{E: 3}),
	}

	for _, v := range shapes {
		fmt.Println(v.Name(), v.Area())
	}

	// The dispatched call must agree with a direct call on the payload.
	v := geom.NewAny(geom.Square{E: 4})
	fmt.Println(v.Area() == geom.Square{E: 4}.Area())

	var s geom.Shape = v
	fmt.Println(s.Name())
}
