//go:build nodyn

package geom

import "github.com/franklaranja/nodyn"

// Shape is the capability shared by all payloads.
type Shape interface {
	Name() string
	Area() float64
}

type Circle struct{ R float64 }

func (c Circle) Name() string  { return "circle" }
func (c Circle) Area() float64 { return 3 * c.R * c.R }

type Square struct{ E float64 }

func (s Square) Name() string  { return "square" }
func (s Square) Area() float64 { return s.E * s.E }

// Any is a closed set of shapes.
type Any struct{ nodyn.Union }

var _ = nodyn.Define[Any](
	nodyn.Type[Circle](),
	nodyn.Type[Square](),
	nodyn.Impl[Shape](),
)
