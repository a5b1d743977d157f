//go:build nodyn

package nums

import "github.com/franklaranja/nodyn"

// Num holds one numeric payload.
type Num struct{ nodyn.Union }

var _ = nodyn.Define[Num](
	nodyn.Type[int](),
	nodyn.Type[float64](),
	nodyn.Vec("Nums"),
)
