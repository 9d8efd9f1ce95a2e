// SPDX-License-Identifier: MIT

package graphio

import (
	"errors"
	"fmt"
	"io"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/gedist/core"
)

// yamlVertex and yamlEdge carry labels as raw yaml.Node values so one
// document schema serves every label type: the node is decoded into V or
// E only once the target type is known.
type yamlVertex struct {
	ID    string    `yaml:"id"`
	Label yaml.Node `yaml:"label"`
}

type yamlEdge struct {
	From  string    `yaml:"from"`
	To    string    `yaml:"to"`
	Label yaml.Node `yaml:"label"`
}

type yamlDocument struct {
	Vertices []yamlVertex `yaml:"vertices"`
	Edges    []yamlEdge   `yaml:"edges"`
}

// outVertex, outEdge and outDocument are the typed mirror used on the
// marshal side, where labels are concrete values.
type outVertex[V any] struct {
	ID    string `yaml:"id"`
	Label V      `yaml:"label"`
}

type outEdge[E any] struct {
	From  string `yaml:"from"`
	To    string `yaml:"to"`
	Label E      `yaml:"label"`
}

type outDocument[V, E any] struct {
	Vertices []outVertex[V] `yaml:"vertices"`
	Edges    []outEdge[E]   `yaml:"edges"`
}

// UnmarshalYAML parses a graph document into a labeled graph:
//
//	vertices:
//	  - id: a
//	    label: [0.5, 1.5]
//	edges:
//	  - from: a
//	    to: b
//	    label: 2.5
//
// An absent label yields the zero value of the label type. Semantic
// violations surface as core sentinels (core.ErrSelfLoop,
// core.ErrVertexNotFound, core.ErrEmptyVertexID) wrapped with document
// context; malformed YAML and label type mismatches wrap the decoder
// error. Duplicate IDs and pairs follow the container's upsert rule.
func UnmarshalYAML[V, E any](data []byte) (*core.Graph[V, E], error) {
	var doc yamlDocument
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("graphio: parse: %w", err)
	}

	return buildGraph[V, E](doc)
}

// LoadYAML streams a graph document from r. An empty stream is an empty
// graph.
func LoadYAML[V, E any](r io.Reader) (*core.Graph[V, E], error) {
	var doc yamlDocument
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return core.NewGraph[V, E](), nil
		}
		return nil, fmt.Errorf("graphio: parse: %w", err)
	}

	return buildGraph[V, E](doc)
}

func buildGraph[V, E any](doc yamlDocument) (*core.Graph[V, E], error) {
	g := core.NewGraph[V, E](core.WithOrderHint(len(doc.Vertices)))

	// 1) Vertices first: edges may only reference known IDs.
	for _, v := range doc.Vertices {
		var lbl V
		if v.Label.Kind != 0 {
			if err := v.Label.Decode(&lbl); err != nil {
				return nil, fmt.Errorf("graphio: vertex %q label: %w", v.ID, err)
			}
		}
		if err := g.AddVertex(v.ID, lbl); err != nil {
			return nil, fmt.Errorf("graphio: vertex %q: %w", v.ID, err)
		}
	}

	// 2) Edges, with the same absent-label rule.
	for _, e := range doc.Edges {
		var lbl E
		if e.Label.Kind != 0 {
			if err := e.Label.Decode(&lbl); err != nil {
				return nil, fmt.Errorf("graphio: edge %q-%q label: %w", e.From, e.To, err)
			}
		}
		if err := g.AddEdge(e.From, e.To, lbl); err != nil {
			return nil, fmt.Errorf("graphio: edge %q-%q: %w", e.From, e.To, err)
		}
	}

	return g, nil
}

// MarshalYAML renders g as a graph document, vertices and edges in sorted
// order, so equal graphs marshal to identical bytes. A nil graph marshals
// as the empty document.
func MarshalYAML[V, E any](g *core.Graph[V, E]) ([]byte, error) {
	doc := outDocument[V, E]{}
	if g != nil {
		for _, id := range g.Vertices() {
			lbl, _ := g.VertexLabel(id)
			doc.Vertices = append(doc.Vertices, outVertex[V]{ID: id, Label: lbl})
		}
		for _, e := range g.Edges() {
			doc.Edges = append(doc.Edges, outEdge[E]{From: e.U, To: e.V, Label: e.Label})
		}
	}

	out, err := yaml.Marshal(doc)
	if err != nil {
		return nil, fmt.Errorf("graphio: marshal: %w", err)
	}

	return out, nil
}
