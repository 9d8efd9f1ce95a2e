// SPDX-License-Identifier: MIT

// view.go - index-based read-only snapshot of a graph.
//
// Every Diss call snapshots each operand exactly once through the public
// core surface (Vertices, VertexLabel, EdgeLabel) and then works purely on
// indices: label slices and a dense edge table. The recursion and the
// greedy scan therefore touch no maps, take no locks and copy no graph
// data per branch; the only per-call mutable state is the assignment stack.
//
// Cost: O(n²) time and space per snapshot, taken once, never per branch.

package ged

import "github.com/katalvlaran/gedist/core"

// edgeCell is one slot of the dense edge table.
type edgeCell[E any] struct {
	label E
	ok    bool
}

// view is the frozen, index-addressed form of one graph operand.
// ids follow the container's sorted enumeration order; cell (i, j) of the
// edge table lives at edges[i*n+j] and is stored symmetrically.
type view[V, E any] struct {
	ids    []string
	labels []V
	edges  []edgeCell[E]
	n      int // order
	m      int // size
}

// newView snapshots g. A nil graph is the empty graph.
func newView[V, E any](g *core.Graph[V, E]) *view[V, E] {
	if g == nil {
		return &view[V, E]{}
	}

	ids := g.Vertices()
	n := len(ids)
	v := &view[V, E]{
		ids:    ids,
		labels: make([]V, n),
		edges:  make([]edgeCell[E], n*n),
		n:      n,
		m:      g.Size(),
	}
	for i, id := range ids {
		v.labels[i], _ = g.VertexLabel(id)
	}
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if label, ok := g.EdgeLabel(ids[i], ids[j]); ok {
				v.edges[i*n+j] = edgeCell[E]{label: label, ok: true}
				v.edges[j*n+i] = edgeCell[E]{label: label, ok: true}
			}
		}
	}

	return v
}

// edge reports the label of edge (i, j) and whether it exists.
func (v *view[V, E]) edge(i, j int) (E, bool) {
	c := v.edges[i*v.n+j]

	return c.label, c.ok
}
