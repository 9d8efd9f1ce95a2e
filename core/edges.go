// SPDX-License-Identifier: MIT

// edges.go - edge lifecycle and queries.
//
// Invariants kept here (and nowhere else):
//   - no self-loops (ErrSelfLoop);
//   - at most one edge per unordered pair: re-adding a pair replaces its label;
//   - adjacency is stored symmetrically, size counts each pair once.

package core

import "sort"

// AddEdge inserts the undirected edge {u, v} carrying label, or replaces the
// label when the edge already exists. Both endpoints must have been added
// beforehand; a labeled container cannot invent labels for missing vertices.
//
// Errors: ErrEmptyVertexID, ErrSelfLoop, ErrVertexNotFound.
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddEdge(u, v string, label E) error {
	if u == "" || v == "" {
		return ErrEmptyVertexID
	}
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		return ErrVertexNotFound
	}
	if _, ok := g.vertices[v]; !ok {
		return ErrVertexNotFound
	}

	if _, exists := g.adj[u][v]; !exists {
		g.size++
	}
	g.adj[u][v] = label
	g.adj[v][u] = label

	return nil
}

// HasEdge reports whether the undirected edge {u, v} exists.
// Unknown endpoints simply report false.
func (g *Graph[V, E]) HasEdge(u, v string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.adj[u][v]

	return ok
}

// EdgeLabel returns the label of edge {u, v} and whether that edge exists.
func (g *Graph[V, E]) EdgeLabel(u, v string) (E, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	label, ok := g.adj[u][v]

	return label, ok
}

// Size returns the number of undirected edges.
func (g *Graph[V, E]) Size() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return g.size
}

// Edges returns every edge exactly once as {U, V, Label} with U < V,
// sorted by (U, V). The slice is a copy.
//
// Complexity: O(m log m).
func (g *Graph[V, E]) Edges() []Edge[E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	edges := make([]Edge[E], 0, g.size)
	for u, row := range g.adj {
		for v, label := range row {
			if u < v { // emit each unordered pair once
				edges = append(edges, Edge[E]{U: u, V: v, Label: label})
			}
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].U != edges[j].U {
			return edges[i].U < edges[j].U
		}

		return edges[i].V < edges[j].V
	})

	return edges
}
