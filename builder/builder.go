// SPDX-License-Identifier: MIT

package builder

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/katalvlaran/gedist/core"
)

// ErrTooFewVertices indicates that a size parameter (n, rows, cols) is
// smaller than the minimum the requested topology needs.
// Usage: if errors.Is(err, ErrTooFewVertices) { /* fix the size */ }.
var ErrTooFewVertices = errors.New("builder: parameter too small")

// ErrNilLabelFunc indicates that a topology factory received a nil vertex
// or edge label function.
// Usage: if errors.Is(err, ErrNilLabelFunc) { /* supply a label func */ }.
var ErrNilLabelFunc = errors.New("builder: nil label function")

// ErrConstructFailed indicates that BuildGraph could not apply a
// constructor, e.g. a nil Constructor or a vertex ID collision produced by
// a custom ID scheme.
// Usage: if errors.Is(err, ErrConstructFailed) { /* inspect the wrap */ }.
var ErrConstructFailed = errors.New("builder: construction failed")

// IDFn generates a vertex identifier from its zero-based index.
// It must be pure and deterministic: the same idx always yields the same
// string, and distinct indices must yield distinct strings.
type IDFn func(idx int) string

// DefaultIDFn returns "v" plus the four-digit zero-padded decimal of idx,
// e.g. 0→"v0000", 42→"v0042". The padding keeps lexicographic ID order
// equal to construction order for up to 10000 vertices; the comparison
// engines enumerate vertices in sorted ID order, and a plain decimal
// scheme would interleave "10" between "1" and "2".
func DefaultIDFn(idx int) string {
	return fmt.Sprintf("v%04d", idx)
}

// SymbolIDFn returns the uppercase Latin letter for idx in [0..25],
// e.g. 0→"A", 25→"Z". Panics outside that range (programmer error).
func SymbolIDFn(idx int) string {
	if idx < 0 || idx > 25 {
		panic("builder: SymbolIDFn index out of [0,25]: " + strconv.Itoa(idx))
	}
	return string('A' + rune(idx))
}

// config is the resolved builder configuration. It is deliberately
// unexported: constructors are produced by the factories in this package,
// which is what keeps vertex numbering and edge emission order uniform
// across topologies.
type config struct {
	idFn IDFn
}

// Option customizes graph construction before any constructor runs.
type Option func(*config)

// WithIDScheme sets the vertex ID generator used by every constructor in
// the same BuildGraph call. Panics on nil (programmer error); topology
// validation itself never panics.
func WithIDScheme(fn IDFn) Option {
	if fn == nil {
		panic("builder: WithIDScheme(nil)")
	}
	return func(c *config) { c.idFn = fn }
}

func newConfig(opts ...Option) config {
	cfg := config{idFn: DefaultIDFn}
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}

// Constructor applies one deterministic topology to a graph under the
// resolved config. Constructors validate their parameters first and
// return sentinel errors; they never panic.
type Constructor[V, E any] func(g *core.Graph[V, E], cfg config) error

// BuildGraph creates a new core.Graph with the given graph options,
// resolves the builder configuration, and applies all constructors in
// order. The first constructor error is wrapped with "BuildGraph: " and
// returned; no partial cleanup is attempted.
//
// Determinism: the same options and constructor order always produce an
// identical graph.
//
// Complexity: Σ cost of the constructors; the wrapper itself is O(len(bopts)+len(cons)).
func BuildGraph[V, E any](gopts []core.GraphOption, bopts []Option, cons ...Constructor[V, E]) (*core.Graph[V, E], error) {
	g := core.NewGraph[V, E](gopts...)
	cfg := newConfig(bopts...)

	for i, fn := range cons {
		if fn == nil {
			return nil, fmt.Errorf("BuildGraph: nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return nil, fmt.Errorf("BuildGraph: %w", err)
		}
	}
	return g, nil
}

// ConstVertexLabel returns a vertex label function assigning lbl to every
// vertex. Convenience for fixtures where only topology matters.
func ConstVertexLabel[V any](lbl V) func(int) V {
	return func(int) V { return lbl }
}

// ConstEdgeLabel returns an edge label function assigning lbl to every
// edge.
func ConstEdgeLabel[E any](lbl E) func(int, int) E {
	return func(int, int) E { return lbl }
}
