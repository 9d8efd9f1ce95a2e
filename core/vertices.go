// SPDX-License-Identifier: MIT

// vertices.go - vertex lifecycle and queries.
//
// Determinism:
//   - Vertices() returns IDs sorted lexicographically ascending; every
//     comparison engine relies on this as the stable enumeration order.

package core

import "sort"

// AddVertex inserts a vertex or, if the ID is already present, replaces its
// label. Returns ErrEmptyVertexID when id is the empty string.
//
// Complexity: O(1) amortized.
func (g *Graph[V, E]) AddVertex(id string, label V) error {
	if id == "" {
		return ErrEmptyVertexID
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.vertices[id] = label
	// Bootstrap the adjacency bucket so edge methods never special-case it.
	if _, ok := g.adj[id]; !ok {
		g.adj[id] = make(map[string]E)
	}

	return nil
}

// HasVertex reports whether id names a vertex of the graph.
func (g *Graph[V, E]) HasVertex(id string) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[id]

	return ok
}

// VertexLabel returns the label attached to id and whether id exists.
func (g *Graph[V, E]) VertexLabel(id string) (V, bool) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	label, ok := g.vertices[id]

	return label, ok
}

// Vertices returns a fresh slice of all vertex IDs sorted lexicographically
// ascending. The slice is a copy; callers may keep or mutate it.
//
// Complexity: O(n log n).
func (g *Graph[V, E]) Vertices() []string {
	g.mu.RLock()
	defer g.mu.RUnlock()

	ids := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	return ids
}

// Order returns the number of vertices.
func (g *Graph[V, E]) Order() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Degree returns the number of edges incident to id.
// Returns ErrVertexNotFound for an unknown vertex.
func (g *Graph[V, E]) Degree(id string) (int, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	if _, ok := g.vertices[id]; !ok {
		return 0, ErrVertexNotFound
	}

	return len(g.adj[id]), nil
}
