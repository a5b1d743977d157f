//go:build nodyn

package duplicatepayload

import "github.com/franklaranja/nodyn"

type Number struct{ nodyn.Union }

var _ = nodyn.Define[Number](
	nodyn.Type[int](),
	nodyn.TypeNamed[int]("Whole"), // want `duplicate variant type int; already wrapped at .*`
)
