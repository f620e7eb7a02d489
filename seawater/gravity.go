package seawater

import "math"

// Gravity calculates average gravitational acceleration at the sea surface
// for a latitude using the international gravity formula.
//
// lat is in degrees. Optional corrective terms (m/s2) are added to the raw
// result; pass none when no correction applies.
func Gravity(lat float64, corrective ...float64) float64 {
	s2 := math.Sin(radians(lat))
	s2 *= s2
	g := 9.78031 * (1 + 5.2788e-3*s2 - 2.36e-5*s2*s2)
	for _, c := range corrective {
		g += c
	}
	return g
}

// DepthFromPressureLeroy98 converts a water pressure measurement to depth
// using the relationship of Leroy and Parthiot (1998).
//
// press is in MPa relative to atmospheric pressure, lat in degrees, and the
// result in meters. The gravity term in the denominator comes from
// [Gravity] at the same latitude with no correction. Optional corrective
// terms (meters) are added to the final depth.
func DepthFromPressureLeroy98(press, lat float64, corrective ...float64) float64 {
	s2 := math.Sin(radians(lat))
	s2 *= s2
	poly := 9.72659e2*press - 2.2512e-1*press*press +
		2.279e-4*press*press*press - 1.82e-7*press*press*press*press
	d := 9.780318 * (1 + 5.2788e-3*s2 - 2.36e-5*s2*s2) * poly /
		(Gravity(lat) + 1.092e-4*press)
	for _, c := range corrective {
		d += c
	}
	return d
}
