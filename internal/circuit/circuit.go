// Package circuit implements the closed-form electrical calculations behind
// the voltcalc commands: Ohm's law resolution from any two known quantities,
// single- and three-phase power estimation, and voltage drop over a copper
// conductor run. All functions are pure, use float64 throughout, and return
// full-precision values; rounding for display is the caller's job via Round.
package circuit

import (
	"fmt"
	"math"

	"github.com/rotisserie/eris"
)

// ErrInsufficientInputs is returned by ResolveOhm when fewer than two of the
// four electrical quantities were supplied.
var ErrInsufficientInputs = eris.New("circuit: at least two of voltage, current, resistance and power are required")

// DomainError reports an input outside the documented domain of one of the
// calculations, e.g. a non-positive voltage or a power factor outside [0.5, 1].
type DomainError struct {
	Field  string
	Value  float64
	Reason string
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("circuit: %s=%v %s", e.Field, e.Value, e.Reason)
}

// Round rounds v to the given number of decimal places.
func Round(v float64, places int) float64 {
	pow := math.Pow(10, float64(places))
	return math.Round(v*pow) / pow
}
