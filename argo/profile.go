package argo

import (
	"math"
	"time"
)

// Point is a single measurement tuple from one cast level.
type Point struct {
	Platform string    // WMO platform number of the float
	Cycle    int       // cast number within the float's mission
	Level    int       // vertical index within the cast
	Lat      float64   // degrees north
	Lon      float64   // degrees east
	Time     time.Time // cast time, UTC

	Pressure    float64 // dbar; NaN when missing
	Temperature float64 // degrees Celsius; NaN when missing
	Salinity    float64 // PSU; NaN when missing
}

// PointSet is a flat collection of point observations in source order.
type PointSet []Point

// Profile is one cast's vertical profile. The measurement slices are
// parallel, one entry per sampled level in source order, with NaN marking
// missing readings.
type Profile struct {
	Platform string
	Cycle    int
	Lat      float64
	Lon      float64
	Time     time.Time

	Pressure    []float64
	Temperature []float64
	Salinity    []float64
}

// Levels returns the number of sampled levels.
func (p Profile) Levels() int {
	return len(p.Pressure)
}

// PresentPressureSamples counts levels with a non-missing pressure reading.
func (p Profile) PresentPressureSamples() int {
	n := 0
	for _, v := range p.Pressure {
		if !math.IsNaN(v) {
			n++
		}
	}
	return n
}
