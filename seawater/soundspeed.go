package seawater

import (
	"fmt"
	"math"
)

// SoundSpeedLeroy68 calculates the speed of sound in seawater using Leroy's
// 1968 equation as given by Lurton (2002), p. 37.
//
// depth is in meters, lat in degrees. Inputs are not range-checked.
func SoundSpeedLeroy68(depth, lat float64) float64 {
	s := math.Sin(radians(lat))
	return (1.0052405*(1+5.28e-3*s*s)*depth + 2.36e-6*depth*depth + 10.196) * 1e4
}

// SoundSpeedLeroy69 calculates the speed of sound in seawater using Leroy's
// 1969 equation (Leroy 1969).
//
// depth is in meters, sal in parts per thousand, temp in degrees Celsius.
// Inputs are checked against the equation's fit bounds before anything is
// computed, temperature first, then salinity, then depth. The error wraps
// ErrOutOfRange and names the first violated bound.
func SoundSpeedLeroy69(depth, sal, temp float64) (float64, error) {
	if temp < -2 || temp > 23 {
		return 0, fmt.Errorf("%w: water temperature must be -2 < T < 23, got %g", ErrOutOfRange, temp)
	}
	if sal < 30 || sal > 40 {
		return 0, fmt.Errorf("%w: salinity must be 30 < S < 40, got %g", ErrOutOfRange, sal)
	}
	if depth < 0 || depth > 500 {
		return 0, fmt.Errorf("%w: depth must be 0 < D < 500, got %g", ErrOutOfRange, depth)
	}

	c := 1492.3 + 3*(temp-10) - 0.006*(temp-10)*(temp-10) - 0.04*(temp-18)*(temp-18)
	c += 1.2*(sal-35) - 0.01*(temp-18)*(sal-35) + depth/61
	return c, nil
}

// SoundSpeedLeroy08 calculates the speed of sound in seawater using the
// fourteen-term equation of Leroy, Robinson, and Goldsmith (2008), valid
// for all common oceanic conditions.
//
// depth is in meters, sal in parts per thousand, temp in degrees Celsius,
// lat in degrees. Inputs are not range-checked.
func SoundSpeedLeroy08(depth, sal, temp, lat float64) float64 {
	return 1402.5 + 5*temp - 5.44e-2*temp*temp + 2.1e-4*temp*temp*temp +
		1.33*sal - 1.23e-2*sal*temp + 8.7e-5*sal*temp*temp +
		1.56e-2*depth + 2.55e-7*depth*depth - 7.3e-12*depth*depth*depth +
		1.2e-6*depth*(lat-45) - 9.5e-13*temp*depth*depth*depth +
		3e-7*temp*temp*depth + 1.43e-5*sal*depth
}

// SoundSpeedMackenzie81 calculates the speed of sound in seawater using
// Mackenzie's nine-term equation (Mackenzie 1981).
//
// depth is in meters, sal in parts per thousand, temp in degrees Celsius.
// Inputs are not range-checked.
func SoundSpeedMackenzie81(depth, sal, temp float64) float64 {
	return 1448.96 + 4.591*temp - 5.304e-2*temp*temp + 2.374e-4*temp*temp*temp +
		1.340*(sal-35) + 1.630e-2*depth + 1.675e-7*depth*depth -
		1.025e-2*temp*(sal-35) - 7.139e-13*temp*depth*depth*depth
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
