// SPDX-License-Identifier: MIT

// Package pairwise evaluates a comparison engine over a whole dataset of
// graphs and returns the symmetric dissimilarity matrix downstream
// consumers (clustering, embedding, nearest-neighbor search) expect.
//
// The matrix is a gonum *mat.SymDense, so it plugs straight into the
// gonum/stat and mat tooling without copying.
//
// Determinism: entries are evaluated in index order over the upper
// triangle; with deterministic engines the matrix is reproducible
// element for element.
package pairwise

import (
	"errors"

	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/gedist/core"
	"github.com/katalvlaran/gedist/ged"
)

// ErrNilEngine reports a nil comparison engine.
// Usage: if errors.Is(err, ErrNilEngine) { /* construct an engine first */ }.
var ErrNilEngine = errors.New("pairwise: engine is nil")

// ErrNoGraphs reports an empty dataset; a 0×0 matrix is never useful and
// usually hides an upstream loading bug.
// Usage: if errors.Is(err, ErrNoGraphs) { /* check the dataset */ }.
var ErrNoGraphs = errors.New("pairwise: empty graph collection")

// Matrix returns the full dissimilarity matrix of the dataset:
// entry (i, j) holds engine.Diss(graphs[i], graphs[j]).
//
// Contract: engine non-nil, at least one graph; nil graphs inside the
// slice are legal and compare as empty. Only the upper triangle is
// evaluated, entry (j, i) mirrors (i, j). The diagonal is evaluated for
// real rather than assumed zero: heuristic engines may score a graph
// against itself above zero, and hiding that would misrepresent the
// engine.
//
// Complexity: n(n+1)/2 engine evaluations for n graphs.
func Matrix[V, E any](engine ged.Engine[V, E], graphs []*core.Graph[V, E]) (*mat.SymDense, error) {
	// 1) Validate once; evaluation itself cannot fail.
	if engine == nil {
		return nil, ErrNilEngine
	}
	if len(graphs) == 0 {
		return nil, ErrNoGraphs
	}

	// 2) Fill the upper triangle, diagonal included.
	n := len(graphs)
	m := mat.NewSymDense(n, nil)
	for i := 0; i < n; i++ {
		for j := i; j < n; j++ {
			m.SetSym(i, j, engine.Diss(graphs[i], graphs[j]))
		}
	}

	return m, nil
}

// NearestNeighbor returns, for each graph, the index of its closest other
// graph in the dataset and the dissimilarity to it, read off a matrix
// produced by Matrix. Ties resolve to the lower index. A one-graph
// dataset has no neighbor: index -1.
func NearestNeighbor(m *mat.SymDense) (idx []int, dist []float64) {
	n := m.SymmetricDim()
	idx = make([]int, n)
	dist = make([]float64, n)
	for i := 0; i < n; i++ {
		idx[i] = -1
		for j := 0; j < n; j++ {
			if j == i {
				continue
			}
			d := m.At(i, j)
			if idx[i] < 0 || d < dist[i] {
				idx[i], dist[i] = j, d
			}
		}
	}

	return idx, dist
}
