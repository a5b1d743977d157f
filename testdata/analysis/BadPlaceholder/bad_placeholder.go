//go:build nodyn

package badplaceholder

import "github.com/franklaranja/nodyn"

type NotQuite struct {
	nodyn.Union
	extra int
}

var _ = nodyn.Define[NotQuite]( // want `NotQuite must be declared as "struct\{ nodyn\.Union \}"`
	nodyn.Type[int](),
)
