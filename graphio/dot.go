// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/gedist/core"
)

// ErrNilWriter reports a nil destination writer.
// Usage: if errors.Is(err, ErrNilWriter) { /* pass a real writer */ }.
var ErrNilWriter = errors.New("graphio: writer is nil")

// dotWriter accumulates the first write error so the emission code reads
// straight through.
type dotWriter struct {
	w   io.Writer
	err error
}

func (d *dotWriter) printf(format string, args ...any) {
	if d.err != nil {
		return
	}
	_, d.err = fmt.Fprintf(d.w, format, args...)
}

// WriteDOT renders g in Graphviz DOT form for visual inspection:
//
//	graph "G" {
//	  "a" [label="north"];
//	  "a" -- "b" [label="1"];
//	}
//
// Vertices come first in sorted ID order, then edges in sorted pair
// order, so output is reproducible byte for byte. Labels render through
// %v and are quoted; an empty name falls back to "G". A nil graph emits
// the empty body.
func WriteDOT[V, E any](w io.Writer, name string, g *core.Graph[V, E]) error {
	if w == nil {
		return ErrNilWriter
	}
	if name == "" {
		name = "G"
	}

	d := &dotWriter{w: w}
	d.printf("graph %s {\n", strconv.Quote(name))
	if g != nil {
		for _, id := range g.Vertices() {
			lbl, _ := g.VertexLabel(id)
			d.printf("  %s [label=%s];\n", strconv.Quote(id), strconv.Quote(fmt.Sprintf("%v", lbl)))
		}
		for _, e := range g.Edges() {
			d.printf("  %s -- %s [label=%s];\n",
				strconv.Quote(e.U), strconv.Quote(e.V), strconv.Quote(fmt.Sprintf("%v", e.Label)))
		}
	}
	d.printf("}\n")

	return d.err
}
