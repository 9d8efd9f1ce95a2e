// SPDX-License-Identifier: MIT

// greedy.go - polynomial approximate graph edit distance.
//
// Contract:
//   - Diss(g1, g2) is deterministic but approximate: no backtracking, so no
//     optimality guarantee. The gap against Exact is real and intentional;
//     callers trade optimality for polynomial time.
//   - NOT orientation-normalized: vertices of g1 are assigned in enumeration
//     order, so Diss(g1, g2) and Diss(g2, g1) may differ.
//   - Tie-break: the nearest-label scan keeps the first-seen minimum under
//     strict "<"; later equal candidates never replace an earlier winner.
//     With the sorted enumeration order this is fully reproducible.
//   - Every division in the component formulas has a defined 0 fallback
//     (empty graphs, no substituted edges, no edges at all); results are
//     never NaN.
//
// Complexity:
//   - O(order(g1)·order(g2)) for the assignment phase plus O(k²) for the
//     edge phase, k = min(order(g1), order(g2)); snapshotting is O(n²).
//
// Concurrency:
//   - All per-call state is local; one engine value is safe for concurrent
//     Diss/Evaluate calls.

package ged

import (
	"math"

	"github.com/katalvlaran/gedist/core"
	"github.com/katalvlaran/gedist/labeldiss"
)

// GreedyResult is the structured outcome of one greedy evaluation.
// Total is the blended dissimilarity; the two components are the raw,
// pre-blend cost sums the Normalizer rescales (unit-cost insertions and
// edge operations, no divisor applied).
type GreedyResult struct {
	// Total = [(1-α)·((1-β)·CN + β·((1-γ)·CE + γ·CED)) + α·CND] / divisor.
	Total float64

	// VertexComponent = Σ assignment dissimilarities + |order(g1)-order(g2)|.
	VertexComponent float64

	// EdgeComponent = Σ edge substitution dissimilarities + edge operations.
	EdgeComponent float64
}

// Greedy is the single-pass nearest-label engine. Configuration is
// immutable after construction.
type Greedy[V, E any] struct {
	vdiss labeldiss.Dissimilarity[V]
	ediss labeldiss.Dissimilarity[E]
	opts  GreedyOptions
}

// NewGreedy builds a greedy engine from the two label strategies and an
// option record (start from DefaultGreedyOptions).
//
// Errors: ErrNilDissimilarity, ErrCoefficientRange, ErrBadNormalization.
func NewGreedy[V, E any](
	vd labeldiss.Dissimilarity[V],
	ed labeldiss.Dissimilarity[E],
	opts GreedyOptions,
) (*Greedy[V, E], error) {
	if err := validateStrategies[V, E](vd, ed); err != nil {
		return nil, err
	}
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Greedy[V, E]{vdiss: vd, ediss: ed, opts: opts}, nil
}

// Diss returns the blended greedy dissimilarity, Evaluate(...).Total.
func (e *Greedy[V, E]) Diss(g1, g2 *core.Graph[V, E]) float64 {
	return e.Evaluate(g1, g2).Total
}

// Evaluate runs the greedy comparison and returns the structured result.
// The components are returned rather than cached on the engine, so the
// Normalizer (or any caller) reads them without a second call and without
// shared mutable state.
func (e *Greedy[V, E]) Evaluate(g1, g2 *core.Graph[V, E]) GreedyResult {
	a, b := newView(g1), newView(g2)
	k := min(a.n, b.n)

	// 1) Vertex assignment, no backtracking: walk g1 in enumeration order,
	//    give each vertex the nearest still-free g2 vertex.
	image := make([]int, a.n)
	for i := range image {
		image[i] = -1
	}
	taken := make([]bool, b.n)
	var subSum float64
	assigned := 0
	for i := 0; i < a.n && assigned < k; i++ {
		bestJ := -1
		var bestD float64
		for j := 0; j < b.n; j++ {
			if taken[j] {
				continue
			}
			d := e.vdiss.Diss(a.labels[i], b.labels[j])
			if bestJ < 0 || d < bestD { // strict <, first minimum wins
				bestJ, bestD = j, d
			}
		}
		image[i] = bestJ
		taken[bestJ] = true
		subSum += bestD
		assigned++
	}

	// 2) Normalized vertex terms, 0 fallbacks on empty input.
	var cn float64
	if k > 0 {
		cn = subSum / float64(k)
	}
	var cnd float64
	if a.n+b.n > 0 {
		cnd = math.Abs(float64(a.n-b.n)) / float64(a.n+b.n)
	}

	// 3) Induced edge phase over unordered pairs of assigned g1 vertices.
	var eSubSum float64
	eSubCount, eOps := 0, 0
	for i1 := 0; i1 < a.n; i1++ {
		if image[i1] < 0 {
			continue
		}
		for i2 := i1 + 1; i2 < a.n; i2++ {
			if image[i2] < 0 {
				continue
			}
			e1, ok1 := a.edge(i1, i2)
			e2, ok2 := b.edge(image[i1], image[i2])
			switch {
			case ok1 && ok2:
				eSubSum += e.ediss.Diss(e1, e2)
				eSubCount++
			case ok1 != ok2:
				eOps++
			}
		}
	}
	var ce float64
	if eSubCount > 0 {
		ce = eSubSum / float64(eSubCount)
	}
	var ced float64
	if a.m+b.m > 0 {
		ced = float64(eOps) / float64(a.m+b.m)
	}

	// 4) Blend and stabilize.
	o := e.opts
	d := (1-o.Alpha)*((1-o.Beta)*cn+o.Beta*((1-o.Gamma)*ce+o.Gamma*ced)) + o.Alpha*cnd

	return GreedyResult{
		Total:           round1e9(d / o.Normalization),
		VertexComponent: subSum + math.Abs(float64(a.n-b.n)),
		EdgeComponent:   eSubSum + float64(eOps),
	}
}
