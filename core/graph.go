// SPDX-License-Identifier: MIT

// graph.go - the Graph type, sentinel errors, construction and Clone.
//
// A Graph[V, E] is a finite, simple, undirected graph: string vertex IDs,
// one label of type V per vertex, one label of type E per unordered edge,
// no self-loops, at most one edge per vertex pair. The simple-graph
// invariant is enforced here, at build time, so the engines never re-check it.
//
// All methods are guarded by a single sync.RWMutex, so a Graph may be built
// from several goroutines and read concurrently afterwards. Comparison
// engines only read; mutating a graph while a comparison is running is a
// caller error.
//
// Errors:
//
//	ErrEmptyVertexID  - vertex ID is the empty string.
//	ErrVertexNotFound - an edge operation referenced a missing vertex.
//	ErrSelfLoop       - an edge with equal endpoints was rejected.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for graph construction and queries.
var (
	// ErrEmptyVertexID indicates that the provided vertex ID is empty.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")

	// ErrSelfLoop indicates an edge with equal endpoints; loops are never allowed.
	ErrSelfLoop = errors.New("core: self-loops are not allowed")
)

// Edge is one undirected labeled edge as reported by Edges.
// U and V are ordered so that U < V lexicographically.
type Edge[E any] struct {
	// U is the lexicographically smaller endpoint ID.
	U string

	// V is the lexicographically larger endpoint ID.
	V string

	// Label is the edge label.
	Label E
}

// GraphOption configures a Graph at construction time.
// The current container accepts options for forward compatibility;
// simple and undirected are not negotiable.
type GraphOption func(*graphConfig)

// graphConfig collects construction-time settings.
type graphConfig struct {
	// hint preallocates the vertex catalog.
	hint int
}

// WithOrderHint pre-sizes internal storage for about n vertices.
// Panics if n is negative (programmer error, not user data).
func WithOrderHint(n int) GraphOption {
	if n < 0 {
		panic("core: WithOrderHint requires n >= 0")
	}

	return func(c *graphConfig) { c.hint = n }
}

// Graph is a finite, simple, undirected graph with labeled vertices and edges.
//
// The zero value is not usable; construct with NewGraph. Vertex labels live
// in the vertices catalog, edge labels are stored symmetrically in adj
// (adj[u][v] and adj[v][u] hold the same label), and size counts unordered
// pairs once.
type Graph[V, E any] struct {
	mu       sync.RWMutex            // guards vertices, adj and size
	vertices map[string]V            // vertex ID -> vertex label
	adj      map[string]map[string]E // symmetric adjacency with edge labels
	size     int                     // number of unordered edges
}

// NewGraph constructs an empty Graph with the given options.
func NewGraph[V, E any](opts ...GraphOption) *Graph[V, E] {
	var cfg graphConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Graph[V, E]{
		vertices: make(map[string]V, cfg.hint),
		adj:      make(map[string]map[string]E, cfg.hint),
	}
}

// Clone returns a deep copy of the graph's structure.
// Labels are copied by value; labels containing references (slices, maps)
// share their underlying storage with the original.
func (g *Graph[V, E]) Clone() *Graph[V, E] {
	g.mu.RLock()
	defer g.mu.RUnlock()

	c := &Graph[V, E]{
		vertices: make(map[string]V, len(g.vertices)),
		adj:      make(map[string]map[string]E, len(g.adj)),
		size:     g.size,
	}
	for id, label := range g.vertices {
		c.vertices[id] = label
	}
	for u, row := range g.adj {
		dst := make(map[string]E, len(row))
		for v, label := range row {
			dst[v] = label
		}
		c.adj[u] = dst
	}

	return c
}
