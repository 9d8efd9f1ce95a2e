// SPDX-License-Identifier: MIT

package builder

import (
	"fmt"

	"github.com/katalvlaran/gedist/core"
)

// Label functions receive the same zero-based vertex indices the ID scheme
// sees: vlabel(i) labels the vertex created for index i, elabel(i, j)
// labels the edge emitted between indices i and j, in emission order.

func checkLabels[V, E any](method string, vlabel func(int) V, elabel func(int, int) E) error {
	if vlabel == nil || elabel == nil {
		return fmt.Errorf("%s: %w", method, ErrNilLabelFunc)
	}
	return nil
}

func addVertices[V, E any](method string, g *core.Graph[V, E], cfg config, n int, vlabel func(int) V) error {
	for i := 0; i < n; i++ {
		if err := g.AddVertex(cfg.idFn(i), vlabel(i)); err != nil {
			return fmt.Errorf("%s: vertex %d: %w", method, i, err)
		}
	}
	return nil
}

func addEdge[V, E any](method string, g *core.Graph[V, E], cfg config, i, j int, elabel func(int, int) E) error {
	if err := g.AddEdge(cfg.idFn(i), cfg.idFn(j), elabel(i, j)); err != nil {
		return fmt.Errorf("%s: edge (%d,%d): %w", method, i, j, err)
	}
	return nil
}

// Complete builds the complete simple graph K_n on indices 0..n-1.
//
// Contract: n ≥ 1; vlabel and elabel non-nil. Edges are emitted in
// lexicographic index order (i, j) with i < j.
// Complexity: O(n) vertices + O(n²) edges.
// Errors: ErrTooFewVertices, ErrNilLabelFunc, wrapped core errors.
func Complete[V, E any](n int, vlabel func(int) V, elabel func(int, int) E) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg config) error {
		// 1) Validate parameters before touching the graph.
		if n < 1 {
			return fmt.Errorf("Complete: need n ≥ 1, got %d: %w", n, ErrTooFewVertices)
		}
		if err := checkLabels("Complete", vlabel, elabel); err != nil {
			return err
		}
		// 2) Vertices, then all index pairs.
		if err := addVertices("Complete", g, cfg, n, vlabel); err != nil {
			return err
		}
		for i := 0; i < n; i++ {
			for j := i + 1; j < n; j++ {
				if err := addEdge("Complete", g, cfg, i, j, elabel); err != nil {
					return err
				}
			}
		}
		return nil
	}
}

// Path builds the simple path P_n: edges (0,1), (1,2), ..., (n-2, n-1).
//
// Contract: n ≥ 2; vlabel and elabel non-nil.
// Complexity: O(n) vertices + O(n) edges.
// Errors: ErrTooFewVertices, ErrNilLabelFunc, wrapped core errors.
func Path[V, E any](n int, vlabel func(int) V, elabel func(int, int) E) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg config) error {
		if n < 2 {
			return fmt.Errorf("Path: need n ≥ 2, got %d: %w", n, ErrTooFewVertices)
		}
		if err := checkLabels("Path", vlabel, elabel); err != nil {
			return err
		}
		if err := addVertices("Path", g, cfg, n, vlabel); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge("Path", g, cfg, i, i+1, elabel); err != nil {
				return err
			}
		}
		return nil
	}
}

// Cycle builds the simple cycle C_n: the path edges plus the closing edge,
// for which elabel is called as elabel(n-1, 0).
//
// Contract: n ≥ 3; vlabel and elabel non-nil.
// Complexity: O(n) vertices + O(n) edges.
// Errors: ErrTooFewVertices, ErrNilLabelFunc, wrapped core errors.
func Cycle[V, E any](n int, vlabel func(int) V, elabel func(int, int) E) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg config) error {
		if n < 3 {
			return fmt.Errorf("Cycle: need n ≥ 3, got %d: %w", n, ErrTooFewVertices)
		}
		if err := checkLabels("Cycle", vlabel, elabel); err != nil {
			return err
		}
		if err := addVertices("Cycle", g, cfg, n, vlabel); err != nil {
			return err
		}
		for i := 0; i+1 < n; i++ {
			if err := addEdge("Cycle", g, cfg, i, i+1, elabel); err != nil {
				return err
			}
		}
		return addEdge("Cycle", g, cfg, n-1, 0, elabel)
	}
}

// Star builds a star: index 0 is the center, indices 1..n-1 are leaves,
// edges (0, i) in leaf order.
//
// Contract: n ≥ 2 (center plus at least one leaf); vlabel and elabel
// non-nil.
// Complexity: O(n) vertices + O(n) edges.
// Errors: ErrTooFewVertices, ErrNilLabelFunc, wrapped core errors.
func Star[V, E any](n int, vlabel func(int) V, elabel func(int, int) E) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg config) error {
		if n < 2 {
			return fmt.Errorf("Star: need n ≥ 2, got %d: %w", n, ErrTooFewVertices)
		}
		if err := checkLabels("Star", vlabel, elabel); err != nil {
			return err
		}
		if err := addVertices("Star", g, cfg, n, vlabel); err != nil {
			return err
		}
		for i := 1; i < n; i++ {
			if err := addEdge("Star", g, cfg, 0, i, elabel); err != nil {
				return err
			}
		}
		return nil
	}
}

// Grid builds a rows×cols 4-neighborhood grid. Cell (r, c) gets the flat
// index r*cols + c; edges run right then down in row-major order.
//
// Contract: rows ≥ 1 and cols ≥ 1; vlabel and elabel non-nil.
// Complexity: O(rows·cols) vertices + O(rows·cols) edges.
// Errors: ErrTooFewVertices, ErrNilLabelFunc, wrapped core errors.
func Grid[V, E any](rows, cols int, vlabel func(int) V, elabel func(int, int) E) Constructor[V, E] {
	return func(g *core.Graph[V, E], cfg config) error {
		if rows < 1 || cols < 1 {
			return fmt.Errorf("Grid: need rows ≥ 1 and cols ≥ 1, got %d×%d: %w", rows, cols, ErrTooFewVertices)
		}
		if err := checkLabels("Grid", vlabel, elabel); err != nil {
			return err
		}
		if err := addVertices("Grid", g, cfg, rows*cols, vlabel); err != nil {
			return err
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				i := r*cols + c
				if c+1 < cols {
					if err := addEdge("Grid", g, cfg, i, i+1, elabel); err != nil {
						return err
					}
				}
				if r+1 < rows {
					if err := addEdge("Grid", g, cfg, i, i+cols, elabel); err != nil {
						return err
					}
				}
			}
		}
		return nil
	}
}
