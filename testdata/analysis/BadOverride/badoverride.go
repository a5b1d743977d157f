//go:build nodyn

package badoverride

import "github.com/franklaranja/nodyn"

type Value struct{ nodyn.Union }

var _ = nodyn.Define[Value](
	nodyn.Type[bool](),
	nodyn.TypeNamed[int]("9lives"),  // want `variant name "9lives" is not an exported Go identifier`
	nodyn.TypeNamed[string](""),     // want `variant name "" is not an exported Go identifier`
	nodyn.TypeNamed[float64]("num"), // want `variant name "num" is not an exported Go identifier`
	nodyn.Vec(""),                   // want `Vec name "" is not an exported Go identifier`
)
