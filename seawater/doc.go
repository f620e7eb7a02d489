// Package seawater implements published empirical equations for ocean
// acoustics: the speed of sound in seawater under four models, the
// international gravity formula, the Leroy-Parthiot pressure-to-depth
// conversion, and acoustic cutoff frequencies for ducted propagation.
//
// # Units
//
// All quantities are plain float64 values in fixed units:
//
//	depth        meters
//	pressure     MPa, relative to atmospheric
//	temperature  degrees Celsius
//	salinity     parts per thousand
//	latitude     degrees
//	sound speed  meters per second
//	gravity      meters per second squared
//	frequency    hertz
//
// Units are not enforced in the representation. Passing a value in the
// wrong unit produces a silently wrong result; the only runtime check is
// the explicit range validation in [SoundSpeedLeroy69].
//
// # Validity ranges
//
// Of the four sound-speed models, only Leroy's 1969 equation rejects
// out-of-range inputs (temperature, salinity, depth, checked in that
// order). The other three evaluate the published polynomial for whatever
// values they are given. The asymmetry follows the publications: Leroy
// 1969 documents hard bounds on its fit, the others publish wider fits
// without a comparable restriction.
//
// # Corrective terms
//
// [Gravity] and [DepthFromPressureLeroy98] accept optional corrective
// terms, added to the raw formula output. Omitting the argument means no
// correction; a zero-valued term is a valid correction and is applied
// like any other.
//
// # References
//
//	Leroy C.C. 1969, Development of simple equations for accurate and more
//	realistic calculation of the speed of sound in sea water.
//	J. Acoust. Soc. Am., 46, 216-226.
//
//	Leroy C.C. and Parthiot F. 1998, Depth-pressure relationships in the
//	oceans and seas. J. Acoust. Soc. Am., 103(3), 1346-1352.
//
//	Leroy C.C., Robinson S.P., and Goldsmith M.J. 2008, A new equation for
//	the accurate calculation of sound speed in all oceans.
//	J. Acoust. Soc. Am., 124, 2774-2782.
//
//	Lurton X. 2002, An Introduction to Underwater Acoustics, 1st ed.
//	London, Praxis Publishing, p. 37.
//
//	Mackenzie K.V. 1981, Nine-term equation for sound speed in the oceans.
//	J. Acoust. Soc. Am., 70, 807-812.
//
//	Jensen F.B., Kuperman W.A., Porter M.B., and Schmidt H. 2011,
//	Computational Ocean Acoustics, 2nd ed. Springer, pp. 26-29.
package seawater
