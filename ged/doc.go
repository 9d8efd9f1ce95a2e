// SPDX-License-Identifier: MIT

// Package ged computes graph edit distance (GED) between labeled simple
// undirected graphs: the minimum total cost of vertex/edge substitutions
// and insertions/deletions transforming one graph into the other.
//
// Three comparators share one contract (Engine: pure, deterministic
// Diss(g1, g2) over *core.Graph[V, E]):
//
//   - Exact[V, E]: enumerates every injective vertex correspondence from
//     the smaller-order operand into the larger and returns the provably
//     minimal cost under the four-weight model (vertex/edge substitution,
//     vertex/edge replacement). Exponential; the ground truth.
//   - Greedy[V, E]: one nearest-label assignment pass without backtracking,
//     then edge costs induced by that assignment, blended by coefficients
//     alpha, beta, gamma. Polynomial; approximate by design.
//   - Normalizer[V, E]: wraps a Greedy engine and rescales its raw vertex
//     and edge components by worst-case bounds into [0,1] (given
//     unit-bounded label costs).
//
// Choosing an engine:
//
//	Exact is tractable only for small graphs. The number of enumerated
//	injections is the falling factorial n!/(n-k)! (k = smaller order,
//	n = larger), each scored in O(k²): ten vertices against ten is already
//	3.6 million leaves. Use it for ground truth, tests and calibration.
//
//	Greedy runs in O(order(g1)·order(g2)) + O(k²) and scales to the graph
//	sizes Exact cannot touch, at the price of overestimating whenever a
//	locally nearest label match is globally wrong. The two engines ship
//	together precisely so that callers can measure that gap on samples
//	before trusting the heuristic on a dataset.
//
// Label strategies: both engines charge substitution costs through the
// labeldiss.Dissimilarity strategies supplied at construction; graphs stay
// opaque label carriers. See package labeldiss for the catalogue.
//
// Determinism: enumeration follows core's sorted vertex order on both
// sides; greedy ties keep the first-seen minimum under strict "<". Equal
// inputs and configuration always produce bit-equal results (final values
// are pinned to a 1e-9 grid).
//
// Error handling: constructors validate configuration with sentinel errors
// (ErrNilDissimilarity, ErrNonPositiveWeight, ErrCoefficientRange,
// ErrBadNormalization, ErrNilEngine); branch with errors.Is. Diss never
// returns an error, never panics on user data, treats nil graphs as empty
// and resolves every internal division hazard to a 0 contribution.
//
// API reference:
//
//	NewExact(vd, ed, DefaultExactOptions())    -> *Exact, error
//	(*Exact).Diss(g1, g2)                      -> float64
//	NewGreedy(vd, ed, DefaultGreedyOptions())  -> *Greedy, error
//	(*Greedy).Diss(g1, g2)                     -> float64
//	(*Greedy).Evaluate(g1, g2)                 -> GreedyResult
//	NewNormalizer(greedy)                      -> *Normalizer, error
//	(*Normalizer).Diss(g1, g2)                 -> float64
//
// See package builder for canned test topologies and package pairwise for
// dataset-level dissimilarity matrices.
package ged
