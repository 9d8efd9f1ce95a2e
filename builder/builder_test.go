// SPDX-License-Identifier: MIT

package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gedist/builder"
	"github.com/katalvlaran/gedist/core"
)

func idx(i int) int        { return i }
func pairSum(i, j int) int { return i + j }

func TestBuildGraph_Complete(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Complete(4, idx, pairSum))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 6, g.Size())
	assert.Equal(t, []string{"v0000", "v0001", "v0002", "v0003"}, g.Vertices())

	lbl, ok := g.EdgeLabel("v0001", "v0003")
	require.True(t, ok)
	assert.Equal(t, 4, lbl)

	v, ok := g.VertexLabel("v0002")
	require.True(t, ok)
	assert.Equal(t, 2, v)
}

func TestBuildGraph_Path(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Path(3, idx, pairSum))
	require.NoError(t, err)

	assert.Equal(t, 3, g.Order())
	assert.Equal(t, 2, g.Size())
	assert.True(t, g.HasEdge("v0000", "v0001"))
	assert.True(t, g.HasEdge("v0001", "v0002"))
	assert.False(t, g.HasEdge("v0000", "v0002"))
}

func TestBuildGraph_Cycle(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Cycle(4, idx, pairSum))
	require.NoError(t, err)

	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
	// Closing edge labels as elabel(n-1, 0).
	lbl, ok := g.EdgeLabel("v0003", "v0000")
	require.True(t, ok)
	assert.Equal(t, 3, lbl)
}

func TestBuildGraph_Star(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Star(5, idx, pairSum))
	require.NoError(t, err)

	assert.Equal(t, 5, g.Order())
	assert.Equal(t, 4, g.Size())
	deg, err := g.Degree("v0000")
	require.NoError(t, err)
	assert.Equal(t, 4, deg)
	for _, leaf := range []string{"v0001", "v0002", "v0003", "v0004"} {
		d, err := g.Degree(leaf)
		require.NoError(t, err)
		assert.Equal(t, 1, d)
	}
}

func TestBuildGraph_Grid(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Grid(2, 3, idx, pairSum))
	require.NoError(t, err)

	assert.Equal(t, 6, g.Order())
	assert.Equal(t, 7, g.Size())
	// Right neighbor in row 0 and down neighbor across rows.
	assert.True(t, g.HasEdge("v0000", "v0001"))
	assert.True(t, g.HasEdge("v0000", "v0003"))
	// No diagonal.
	assert.False(t, g.HasEdge("v0000", "v0004"))
}

func TestBuildGraph_Composition(t *testing.T) {
	// Path then Cycle over the same indices upserts the shared edges and
	// adds only the closing one.
	g, err := builder.BuildGraph(nil, nil,
		builder.Path(4, idx, pairSum),
		builder.Cycle(4, idx, pairSum),
	)
	require.NoError(t, err)
	assert.Equal(t, 4, g.Order())
	assert.Equal(t, 4, g.Size())
}

func TestBuildGraph_SizeValidation(t *testing.T) {
	cases := []struct {
		name string
		cons builder.Constructor[int, int]
	}{
		{"complete", builder.Complete(0, idx, pairSum)},
		{"path", builder.Path(1, idx, pairSum)},
		{"cycle", builder.Cycle(2, idx, pairSum)},
		{"star", builder.Star(1, idx, pairSum)},
		{"grid", builder.Grid(0, 3, idx, pairSum)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildGraph(nil, nil, tc.cons)
			assert.ErrorIs(t, err, builder.ErrTooFewVertices)
		})
	}
}

func TestBuildGraph_NilLabelFunc(t *testing.T) {
	_, err := builder.BuildGraph(nil, nil, builder.Complete[int, int](3, nil, nil))
	assert.ErrorIs(t, err, builder.ErrNilLabelFunc)

	_, err = builder.BuildGraph(nil, nil, builder.Path[int, int](3, idx, nil))
	assert.ErrorIs(t, err, builder.ErrNilLabelFunc)
}

func TestBuildGraph_NilConstructor(t *testing.T) {
	_, err := builder.BuildGraph[int, int](nil, nil, nil)
	assert.ErrorIs(t, err, builder.ErrConstructFailed)
}

func TestBuildGraph_IDSchemeCollision(t *testing.T) {
	// A constant scheme collapses every index onto one vertex; the first
	// edge then becomes a self-loop and core rejects it.
	collide := func(int) string { return "x" }
	_, err := builder.BuildGraph(nil,
		[]builder.Option{builder.WithIDScheme(collide)},
		builder.Complete(2, idx, pairSum),
	)
	assert.ErrorIs(t, err, core.ErrSelfLoop)
}

func TestIDSchemes(t *testing.T) {
	assert.Equal(t, "v0000", builder.DefaultIDFn(0))
	assert.Equal(t, "v0042", builder.DefaultIDFn(42))
	assert.Equal(t, "A", builder.SymbolIDFn(0))
	assert.Equal(t, "Z", builder.SymbolIDFn(25))

	assert.Panics(t, func() { builder.SymbolIDFn(26) })
	assert.Panics(t, func() { builder.WithIDScheme(nil) })
}

func TestConstLabels(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil,
		builder.Star(3, builder.ConstVertexLabel("hub"), builder.ConstEdgeLabel(2.5)),
	)
	require.NoError(t, err)

	for _, id := range g.Vertices() {
		lbl, ok := g.VertexLabel(id)
		require.True(t, ok)
		assert.Equal(t, "hub", lbl)
	}
	for _, e := range g.Edges() {
		assert.Equal(t, 2.5, e.Label)
	}
}
