//go:build nodyn

package misplaced

import "github.com/franklaranja/nodyn"

type Value struct{ nodyn.Union }

var _ = nodyn.Define[Value](
	nodyn.Type[int](),
)

var stray = nodyn.Type[string]() // want `cannot use Type outside a Define call`

type Other struct{ nodyn.Union }

var def = nodyn.Define[Other]( // want `Define must be assigned to the blank identifier`
	nodyn.Type[bool](), // want `cannot use Type outside a Define call`
)
