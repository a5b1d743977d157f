package missingconstraint

import "github.com/franklaranja/nodyn" // want `file must have "//go:build nodyn" constraint when importing nodyn`

type Value struct{ nodyn.Union }

var _ = nodyn.Define[Value](
	nodyn.Type[int](),
)
