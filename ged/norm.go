// SPDX-License-Identifier: MIT

// norm.go - bounded normalization of the greedy dissimilarity.
//
// Contract:
//   - Diss rescales the greedy raw components by theoretical worst-case
//     bounds derived from the operand orders alone:
//       vertex bound = max(order(g1), order(g2))
//       edge bound   = k·(k-1)/2, k = min(order(g1), order(g2))
//     and averages the two rescaled components when the edge bound is
//     positive, otherwise returns the vertex component alone. Two empty
//     graphs (vertex bound 0) yield 0.
//   - The result lies in [0,1] ONLY when the underlying label strategies
//     (and hence every substitution, insertion and deletion cost) are
//     bounded by 1. That is a caller obligation, not enforced here.

package ged

import "github.com/katalvlaran/gedist/core"

// Normalizer wraps a greedy engine and maps its raw components into a
// bounded dissimilarity.
type Normalizer[V, E any] struct {
	engine *Greedy[V, E]
}

// NewNormalizer wraps engine. Errors: ErrNilEngine.
func NewNormalizer[V, E any](engine *Greedy[V, E]) (*Normalizer[V, E], error) {
	if engine == nil {
		return nil, ErrNilEngine
	}

	return &Normalizer[V, E]{engine: engine}, nil
}

// Diss returns the bound-normalized greedy dissimilarity between g1 and g2.
func (n *Normalizer[V, E]) Diss(g1, g2 *core.Graph[V, E]) float64 {
	// 1) One structured evaluation; no side-channel state.
	res := n.engine.Evaluate(g1, g2)

	// 2) Bounds from the orders alone.
	o1, o2 := graphOrder(g1), graphOrder(g2)
	vertexBound := max(o1, o2)
	k := min(o1, o2)
	edgeBound := k * (k - 1) / 2

	// 3) Rescale with 0 fallbacks.
	if vertexBound == 0 {
		return 0
	}
	v := res.VertexComponent / float64(vertexBound)
	if edgeBound == 0 {
		return round1e9(v)
	}
	e := res.EdgeComponent / float64(edgeBound)

	return round1e9((v + e) / 2)
}

// graphOrder is the nil-tolerant order lookup engines share.
func graphOrder[V, E any](g *core.Graph[V, E]) int {
	if g == nil {
		return 0
	}

	return g.Order()
}
