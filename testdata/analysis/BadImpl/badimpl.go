//go:build nodyn

package badimpl

import (
	"fmt"

	"github.com/franklaranja/nodyn"
)

type Celsius float64

func (c Celsius) String() string { return fmt.Sprintf("%g°C", float64(c)) }

type Reading struct{ nodyn.Union }

var _ = nodyn.Define[Reading](
	nodyn.Type[Celsius](),
	nodyn.Type[int](),
	nodyn.Impl[fmt.Stringer](), // want `payload int does not implement fmt\.Stringer`
)
