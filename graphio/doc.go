// SPDX-License-Identifier: MIT

// Package graphio moves labeled graphs across process boundaries.
//
// The YAML side (UnmarshalYAML, LoadYAML, MarshalYAML) defines one
// document schema for every label type: labels travel as raw YAML nodes
// and are decoded into the concrete V and E only at the call site, so
// scalar, string and vector labels all use the same files. Marshaling
// emits vertices and edges in sorted order; equal graphs serialize to
// identical bytes.
//
// The DOT side (WriteDOT) is export-only and exists for eyeballs, not
// machines: pipe it into Graphviz to look at a dataset. Parsing DOT back
// is out of scope.
//
// Error handling follows the container: semantic violations return core
// sentinels wrapped with document context, decoder failures wrap the
// yaml error, and nothing panics on user input.
package graphio
