// SPDX-License-Identifier: MIT

// vector.go - dissimilarities over []float64 labels, backed by gonum.
//
// Contract:
//   - both labels must have the same dimension; mismatched lengths are a
//     caller precondition violation and panic inside gonum, matching the
//     fixed-dimension datasets these measures are meant for;
//   - Cosine is a dissimilarity (1 - similarity), range [0,2] for arbitrary
//     vectors, [0,1] for nonnegative ones; zero vectors get fixed fallbacks
//     so the measure stays total.

package labeldiss

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// Euclidean is the L2 distance between two vector labels.
var Euclidean = Func[[]float64](func(a, b []float64) float64 {
	return floats.Distance(a, b, 2)
})

// Manhattan is the L1 distance between two vector labels.
var Manhattan = Func[[]float64](func(a, b []float64) float64 {
	return floats.Distance(a, b, 1)
})

// Chebyshev is the L∞ distance between two vector labels.
var Chebyshev = Func[[]float64](func(a, b []float64) float64 {
	return floats.Distance(a, b, math.Inf(1))
})

// Minkowski is the Lp distance with configurable exponent P.
// P = 1 reproduces Manhattan, P = 2 Euclidean.
type Minkowski struct {
	// P is the norm exponent; must be >= 1 for a well-defined metric.
	P float64
}

// NewMinkowski returns the Lp measure.
// Panics if p < 1 (programmer error, not user data).
func NewMinkowski(p float64) Minkowski {
	if p < 1 {
		panic("labeldiss: NewMinkowski requires p >= 1")
	}

	return Minkowski{P: p}
}

// Diss returns the Lp distance between a and b.
func (m Minkowski) Diss(a, b []float64) float64 {
	return floats.Distance(a, b, m.P)
}

// Cosine is one minus the cosine similarity of the two vector labels.
// Fallbacks keep it total: two zero vectors are identical (0), a single
// zero vector is maximally different from any direction (1).
var Cosine = Func[[]float64](func(a, b []float64) float64 {
	na := floats.Norm(a, 2)
	nb := floats.Norm(b, 2)
	switch {
	case na == 0 && nb == 0:
		return 0
	case na == 0 || nb == 0:
		return 1
	}

	sim := floats.Dot(a, b) / (na * nb)
	// Clamp rounding drift so 1-sim never dips below zero.
	if sim > 1 {
		sim = 1
	} else if sim < -1 {
		sim = -1
	}

	return 1 - sim
})
