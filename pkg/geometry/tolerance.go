package geometry

import "math"

// Epsilon is the tolerance for every near-zero and near-equality comparison
// in the conversion pipeline.
const Epsilon = 1e-6

// NearZero reports whether |v| is within Epsilon of zero
func NearZero(v float64) bool {
	return math.Abs(v) < Epsilon
}

// Within reports whether a and b differ by at most tol, with Epsilon slack
// so values that land exactly on a threshold are not lost to rounding.
func Within(a, b, tol float64) bool {
	return math.Abs(a-b) <= tol+Epsilon
}
