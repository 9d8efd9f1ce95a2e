// SPDX-License-Identifier: MIT

// types.go - sentinel errors, option records and shared plumbing for the
// graph edit distance engines.
//
// Error policy:
//   - configuration is validated once, at engine construction, with the
//     sentinels below; branch with errors.Is;
//   - Diss itself never returns an error and never panics on user data:
//     graph well-formedness (simple, undirected) is guaranteed upstream by
//     core, nil graphs count as empty, and every division hazard inside the
//     formulas falls back to a 0 contribution.

package ged

import (
	"errors"
	"math"

	"github.com/katalvlaran/gedist/core"
	"github.com/katalvlaran/gedist/labeldiss"
)

// Sentinel errors returned by engine constructors.
var (
	// ErrNilDissimilarity indicates a nil vertex- or edge-label strategy.
	ErrNilDissimilarity = errors.New("ged: label dissimilarity is nil")

	// ErrNonPositiveWeight indicates an exact-engine cost weight <= 0.
	ErrNonPositiveWeight = errors.New("ged: cost weights must be positive")

	// ErrCoefficientRange indicates a greedy coefficient outside [0,1].
	ErrCoefficientRange = errors.New("ged: coefficients must lie in [0,1]")

	// ErrBadNormalization indicates a normalization divisor <= 0.
	ErrBadNormalization = errors.New("ged: normalization divisor must be positive")

	// ErrNilEngine indicates a nil engine handed to a wrapper.
	ErrNilEngine = errors.New("ged: wrapped engine is nil")
)

// Engine is the common surface of every comparator in this package:
// a deterministic, pure dissimilarity over two labeled graphs.
type Engine[V, E any] interface {
	// Diss returns the edit dissimilarity between g1 and g2.
	Diss(g1, g2 *core.Graph[V, E]) float64
}

// ExactOptions carries the cost model of the exact engine: the four edit
// weights (Wvsub, Wvrep, Wesub, Werep in the literature) and the final
// divisor. All five must be positive.
type ExactOptions struct {
	// VertexSubstitution scales the vertex-label dissimilarity of every
	// mapped pair (Wvsub).
	VertexSubstitution float64

	// VertexReplacement is the fixed cost of every unmatched vertex of the
	// larger graph (Wvrep).
	VertexReplacement float64

	// EdgeSubstitution scales the edge-label dissimilarity when both mapped
	// endpoints share an edge on both sides (Wesub).
	EdgeSubstitution float64

	// EdgeReplacement is the fixed cost when exactly one side has the edge
	// (Werep).
	EdgeReplacement float64

	// Normalization divides the minimal total cost before it is returned.
	Normalization float64
}

// DefaultExactOptions returns the unit cost model: every weight 1, divisor 1.
// This is the single source of truth for exact-engine defaults.
func DefaultExactOptions() ExactOptions {
	return ExactOptions{
		VertexSubstitution: 1,
		VertexReplacement:  1,
		EdgeSubstitution:   1,
		EdgeReplacement:    1,
		Normalization:      1,
	}
}

// validate checks the option record once, at construction.
func (o ExactOptions) validate() error {
	if o.VertexSubstitution <= 0 || o.VertexReplacement <= 0 ||
		o.EdgeSubstitution <= 0 || o.EdgeReplacement <= 0 {
		return ErrNonPositiveWeight
	}
	if o.Normalization <= 0 {
		return ErrBadNormalization
	}

	return nil
}

// GreedyOptions carries the greedy engine's trade-off coefficients and its
// divisor. Alpha weighs vertex-count mismatch against substitution quality,
// Beta vertex- against edge-level cost, Gamma edge substitution against
// edge insertion/deletion.
type GreedyOptions struct {
	// Alpha must lie in [0,1].
	Alpha float64

	// Beta must lie in [0,1].
	Beta float64

	// Gamma must lie in [0,1].
	Gamma float64

	// Normalization divides the blended total before it is returned.
	Normalization float64
}

// DefaultGreedyOptions returns the balanced blend: alpha, beta and gamma at
// 0.5, divisor 1. This is the single source of truth for greedy defaults.
func DefaultGreedyOptions() GreedyOptions {
	return GreedyOptions{
		Alpha:         0.5,
		Beta:          0.5,
		Gamma:         0.5,
		Normalization: 1,
	}
}

// validate checks the option record once, at construction.
func (o GreedyOptions) validate() error {
	if o.Alpha < 0 || o.Alpha > 1 || o.Beta < 0 || o.Beta > 1 ||
		o.Gamma < 0 || o.Gamma > 1 {
		return ErrCoefficientRange
	}
	if o.Normalization <= 0 {
		return ErrBadNormalization
	}

	return nil
}

// validateStrategies rejects nil label strategies at construction time so
// Diss never has to.
func validateStrategies[V, E any](vd labeldiss.Dissimilarity[V], ed labeldiss.Dissimilarity[E]) error {
	if vd == nil || ed == nil {
		return ErrNilDissimilarity
	}

	return nil
}

// roundScale pins results to a 1e-9 grid, absorbing float accumulation noise
// so equal inputs produce bit-equal outputs.
const roundScale = 1e9

// round1e9 rounds x to the 1e-9 grid.
func round1e9(x float64) float64 {
	if math.IsInf(x, 0) || math.IsNaN(x) {
		return x
	}

	return math.Round(x*roundScale) / roundScale
}
