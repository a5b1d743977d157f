//go:build nodyn

package duplicatename

import "github.com/franklaranja/nodyn"

type List[T any] struct{ xs []T }

type Registry struct{ nodyn.Union }

var _ = nodyn.Define[Registry](
	nodyn.Type[List[int]](),
	nodyn.Type[List[string]](), // want `variant name "List" already used at .*; rename one with TypeNamed`
)
