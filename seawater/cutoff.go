package seawater

import (
	"fmt"
	"math"
)

// CutoffFrequency calculates the lowest frequency trapped by an isothermal
// surface duct (Jensen et al. 2011, p. 26).
//
// cWater is the sound speed in the duct in m/s, depth the duct thickness in
// meters. The result is in Hz.
func CutoffFrequency(cWater, depth float64) float64 {
	return cWater / (0.008 * math.Pow(depth, 1.5))
}

// CutoffFrequencyShallow calculates the cutoff frequency of a shallow-water
// waveguide over a homogeneous fast bottom (Jensen et al. 2011, p. 29).
//
// cWater and cBottom are sound speeds in m/s, depth the water depth in
// meters. cBottom must exceed cWater; otherwise the expression under the
// square root is non-positive and the returned error wraps
// ErrNoRealSolution.
func CutoffFrequencyShallow(cWater, cBottom, depth float64) (float64, error) {
	if cBottom <= cWater {
		return 0, fmt.Errorf("%w: bottom sound speed %g m/s does not exceed water sound speed %g m/s",
			ErrNoRealSolution, cBottom, cWater)
	}
	r := cWater / cBottom
	return cWater / (depth * math.Sqrt(1-r*r)), nil
}
