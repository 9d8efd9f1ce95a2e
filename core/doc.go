// SPDX-License-Identifier: MIT

// Package core provides the labeled, thread-safe, in-memory Graph container
// that the gedist comparison engines consume.
//
// The Graph G = (V,E) is deliberately narrow:
//
//   - Simple: no self-loops (ErrSelfLoop), at most one edge per unordered
//     pair (re-adding replaces the label). Comparison engines rely on this
//     invariant and never re-validate it.
//   - Undirected: edges are unordered pairs, stored symmetrically.
//   - Labeled: one opaque label of type V per vertex and of type E per edge;
//     the container never interprets labels, only stores them.
//   - Immutable by convention once handed to an engine: engines only read.
//
// Why a dedicated container?
//
//   - Deterministic iteration: Vertices() and Edges() return sorted results,
//     which fixes the enumeration order every engine's documentation refers to.
//   - Constant-time queries: HasEdge, VertexLabel, EdgeLabel are O(1) map
//     lookups, the exact surface a comparison engine needs.
//   - Thread-safe build: a single sync.RWMutex allows concurrent
//     construction and concurrent reads afterwards.
//
// Core methods:
//
//	// Vertex lifecycle
//	AddVertex(id string, label V) error   // O(1), upsert
//	HasVertex(id string) bool             // O(1)
//	VertexLabel(id string) (V, bool)      // O(1)
//
//	// Edge lifecycle
//	AddEdge(u, v string, label E) error   // O(1), upsert
//	HasEdge(u, v string) bool             // O(1)
//	EdgeLabel(u, v string) (E, bool)      // O(1)
//
//	// Enumeration & counts
//	Vertices() []string                   // O(V·log V), sorted
//	Edges() []Edge[E]                     // O(E·log E), sorted, U < V
//	Order() int                           // O(1)
//	Size() int                            // O(1)
//	Degree(id string) (int, error)        // O(1)
//
//	// Lifecycle
//	Clone() *Graph[V, E]                  // O(V+E)
//
// Error handling: sentinel errors only (ErrEmptyVertexID, ErrVertexNotFound,
// ErrSelfLoop); branch with errors.Is. No method panics on user data.
//
// See package ged for the engines and package builder for canned topologies.
package core
