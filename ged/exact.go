// SPDX-License-Identifier: MIT

// exact.go - exhaustive graph edit distance.
//
// Contract:
//   - Diss(g1, g2) >= 0, deterministic; symmetric in its graph arguments
//     whenever both label strategies and the weights are symmetric, because
//     the search is always oriented from the smaller-order operand into the
//     larger one regardless of argument order (g1 wins ties).
//   - Provably minimal: every injection of the smaller vertex set into the
//     larger one is enumerated and scored; nothing is pruned.
//   - Nil graphs count as empty; an empty smaller operand reduces to pure
//     vertex replacement cost.
//
// Complexity:
//   - Let k = order(gmin), n = order(gmax). The engine enumerates the
//     falling factorial n!/(n-k)! injections and scores each leaf in O(k²).
//     This is the reference computation for judging approximations; it is
//     tractable only for small graphs (a handful of vertices) and is
//     documented as such instead of being optimized away.
//
// Determinism:
//   - Branching follows the sorted enumeration order on both sides, so the
//     same operands and configuration always walk the same tree.

package ged

import (
	"math"

	"github.com/katalvlaran/gedist/core"
	"github.com/katalvlaran/gedist/labeldiss"
)

// Exact is the exhaustive engine. Configuration is immutable after
// construction; one value is safe for concurrent Diss calls.
type Exact[V, E any] struct {
	vdiss labeldiss.Dissimilarity[V]
	ediss labeldiss.Dissimilarity[E]
	opts  ExactOptions
}

// NewExact builds an exhaustive engine from the two label strategies and an
// option record (start from DefaultExactOptions).
//
// Errors: ErrNilDissimilarity, ErrNonPositiveWeight, ErrBadNormalization.
func NewExact[V, E any](
	vd labeldiss.Dissimilarity[V],
	ed labeldiss.Dissimilarity[E],
	opts ExactOptions,
) (*Exact[V, E], error) {
	// 1) Strategies first: a nil strategy can never be called.
	if err := validateStrategies[V, E](vd, ed); err != nil {
		return nil, err
	}
	// 2) Cost model: positive weights and divisor.
	if err := opts.validate(); err != nil {
		return nil, err
	}

	return &Exact[V, E]{vdiss: vd, ediss: ed, opts: opts}, nil
}

// Diss returns the minimal edit cost between g1 and g2 divided by the
// configured normalization divisor.
func (e *Exact[V, E]) Diss(g1, g2 *core.Graph[V, E]) float64 {
	// 1) Snapshot both operands once; orient the search from the smaller.
	a, b := newView(g1), newView(g2)
	if b.n < a.n {
		a, b = b, a
	}

	// 2) Run the enumeration over a single mutable assignment stack.
	r := &exactRunner[V, E]{
		a:      a,
		b:      b,
		vdiss:  e.vdiss,
		ediss:  e.ediss,
		opts:   e.opts,
		assign: make([]int, a.n),
		used:   make([]bool, b.n),
		best:   math.Inf(1),
	}
	r.descend(0)

	// 3) Normalize and stabilize.
	return round1e9(r.best / e.opts.Normalization)
}

// exactRunner holds the per-call mutable search state: the partial
// correspondence (assign, used) and the best leaf seen so far. Graph data
// stays in the two frozen views.
type exactRunner[V, E any] struct {
	a, b   *view[V, E] // a = smaller operand, b = larger
	vdiss  labeldiss.Dissimilarity[V]
	ediss  labeldiss.Dissimilarity[E]
	opts   ExactOptions
	assign []int  // assign[i] = index in b of a's i-th vertex
	used   []bool // b-side occupancy
	best   float64
}

// descend maps a's vertex at depth onto every free b vertex in turn.
// Push on enter, pop on exit; recursion depth equals order(a).
func (r *exactRunner[V, E]) descend(depth int) {
	if depth == r.a.n {
		// Base case: the correspondence is total (immediately so when a is
		// empty). Score it and keep the minimum.
		if c := r.leafCost(); c < r.best {
			r.best = c
		}

		return
	}

	for j := 0; j < r.b.n; j++ {
		if r.used[j] {
			continue
		}
		r.used[j] = true
		r.assign[depth] = j
		r.descend(depth + 1)
		r.used[j] = false
	}
}

// leafCost prices the complete correspondence currently on the stack:
// vertex substitutions, vertex replacements for the b-side surplus, and the
// induced edge costs over every mapped pair.
func (r *exactRunner[V, E]) leafCost() float64 {
	var cost float64

	// 1) Vertex substitution: label dissimilarity of every mapped pair.
	for i := 0; i < r.a.n; i++ {
		cost += r.vdiss.Diss(r.a.labels[i], r.b.labels[r.assign[i]]) * r.opts.VertexSubstitution
	}

	// 2) Vertex replacement: unmatched b vertices are insertions.
	cost += float64(r.b.n-r.a.n) * r.opts.VertexReplacement

	// 3) Induced edge costs over unordered mapped pairs.
	for i := 0; i < r.a.n; i++ {
		for j := i + 1; j < r.a.n; j++ {
			e1, ok1 := r.a.edge(i, j)
			e2, ok2 := r.b.edge(r.assign[i], r.assign[j])
			switch {
			case ok1 && ok2:
				cost += r.ediss.Diss(e1, e2) * r.opts.EdgeSubstitution
			case ok1 != ok2:
				cost += r.opts.EdgeReplacement
			}
		}
	}

	return cost
}
