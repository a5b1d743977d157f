//go:build nodyn

package underivable

import "github.com/franklaranja/nodyn"

type Blob struct{ nodyn.Union }

var _ = nodyn.Define[Blob](
	nodyn.Type[struct{ X int }](), // want `cannot derive a variant name from struct\{X int\}; name it explicitly with TypeNamed`
)
