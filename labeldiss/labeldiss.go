// SPDX-License-Identifier: MIT

// labeldiss.go - the strategy surface plus the discrete measures.
//
// Contract (all implementations in this package):
//   - pure: no state, no side effects, same inputs produce the same output;
//   - total: defined for every label pair of the right type;
//   - nonnegative: Diss(a, b) >= 0, and Diss(a, a) == 0 for the measures here.
//
// Engines accept any Dissimilarity; Func adapts plain functions the same way
// http.HandlerFunc adapts handlers.

package labeldiss

import "math"

// Dissimilarity scores how different two labels of type T are.
// Implementations must be pure, total and nonnegative.
type Dissimilarity[T any] interface {
	// Diss returns the dissimilarity between a and b.
	Diss(a, b T) float64
}

// Func adapts an ordinary function to the Dissimilarity interface.
type Func[T any] func(a, b T) float64

// Diss calls f(a, b).
func (f Func[T]) Diss(a, b T) float64 { return f(a, b) }

// Discrete returns the 0/1 measure over any comparable label type:
// 0 when the labels are equal, 1 otherwise.
func Discrete[T comparable]() Func[T] {
	return func(a, b T) float64 {
		if a == b {
			return 0
		}

		return 1
	}
}

// AbsDiff is the absolute difference between two scalar labels.
var AbsDiff = Func[float64](func(a, b float64) float64 {
	return math.Abs(a - b)
})

// Hamming counts positions at which two strings differ, rune-wise; the
// length difference is charged one unit per missing rune. The count is
// returned as a float64 so it composes with the rest of the catalogue.
var Hamming = Func[string](func(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}

	var mismatches float64
	for i := 0; i < n; i++ {
		if ra[i] != rb[i] {
			mismatches++
		}
	}

	return mismatches + math.Abs(float64(len(ra)-len(rb)))
})
