//go:build nodyn

package valid

import (
	"strconv"

	"github.com/franklaranja/nodyn"
)

// Celsius is a temperature reading in degrees Celsius.
type Celsius float64

func (c Celsius) String() string {
	return strconv.FormatFloat(float64(c), 'f', 1, 64) + "C"
}

// Fahrenheit is a temperature reading in degrees Fahrenheit.
type Fahrenheit float64

func (f Fahrenheit) String() string {
	return strconv.FormatFloat(float64(f), 'f', 1, 64) + "F"
}

// Temp holds a temperature reading in either scale.
type Temp struct{ nodyn.Union }

var _ = nodyn.Define[Temp](
	nodyn.Type[Celsius](),
	nodyn.TypeNamed[Fahrenheit]("Imperial"),
	nodyn.Into[Celsius, float64](),
	nodyn.Into[Fahrenheit, float64](),
	nodyn.Impl[interface{ String() string }](),
	nodyn.Features(nodyn.TryInto, nodyn.IsAs, nodyn.Introspection),
	nodyn.Vec("Temps"),
)

// ToFahrenheit converts a Celsius reading to the Fahrenheit scale.
func ToFahrenheit(c Celsius) Fahrenheit {
	return Fahrenheit(float64(c)*9/5 + 32)
}
