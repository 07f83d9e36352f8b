// Package geom provides the 2D computational geometry kernel for
// floor-plan style applications: vectors, lines, segments, simple and
// holed polygons, boolean combination, convex hulls, minimum bounding
// boxes and canonical shape fingerprints.
//
// The conventions for this package are x increases to the right, and
// y increases up the page (reverse of typical image formats). This
// convention gives meaning to clockwise and counter-clockwise.
// Coordinates are millimeters.
//
// Every function is a pure computation over its inputs: values are
// never mutated in place and no state is shared between calls, with
// the single exception of the boolean-algebra Engine which is
// constructed once and immutable afterwards.
package geom

// Zeroish is defined to merge points and avoid rounding error
// problems. The number is chosen to connect anything closer than 0.01
// (which is a convenience default for values representing
// millimeters).
var Zeroish = 1e-4

// Length is a distance in millimeters. The unit lives in the type
// only; no conversion happens inside the kernel.
type Length float64

// Area is an area in square millimeters.
type Area float64

// MinMax sorts two numbers to be in ascending order.
func MinMax(a, b float64) (float64, float64) {
	if a <= b {
		return a, b
	}
	return b, a
}

// nearZero guards divisions: true when v is too close to zero to
// divide by safely.
func nearZero(v float64) bool {
	return v < Zeroish && v > -Zeroish
}
