//go:build nodyn

package scalar

import "github.com/franklaranja/nodyn"

// Value holds one scalar payload.
type Value struct{ nodyn.Union }

var _ = nodyn.Define[Value](
	nodyn.Type[int64](),
	nodyn.TypeNamed[string]("Text"),
	nodyn.Into[int64, float64](),
)
