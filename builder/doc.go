// SPDX-License-Identifier: MIT

// Package builder assembles labeled core graphs from deterministic
// topology constructors: Complete, Path, Cycle, Star and Grid.
//
// The single entry point is BuildGraph, which creates the graph, resolves
// the builder options and applies the given constructors in order:
//
//	g, err := builder.BuildGraph(nil, nil,
//	    builder.Complete(3,
//	        builder.ConstVertexLabel("atom"),
//	        builder.ConstEdgeLabel(1.0)))
//
// Vertex identifiers come from an IDFn (see WithIDScheme). The default
// scheme zero-pads indices so that lexicographic ID order, which is the
// order the comparison engines enumerate vertices in, matches
// construction order. Label functions receive the zero-based indices of
// the vertices they decorate, so positional labels (coordinates, names,
// feature vectors) need no bookkeeping on the caller's side.
//
// Determinism: equal parameters, options and constructor order always
// produce identical graphs. Constructors validate eagerly and return
// sentinel errors (ErrTooFewVertices, ErrNilLabelFunc); only option
// constructors panic, and only on programmer error.
package builder
