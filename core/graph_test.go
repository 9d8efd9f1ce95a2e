// SPDX-License-Identifier: MIT

// Package core_test locks in the container contracts the comparison engines
// rely on: sorted enumeration, simple-graph enforcement, upsert semantics.

package core_test

import (
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gedist/core"
)

func TestGraph_VertexLifecycle(t *testing.T) {
	g := core.NewGraph[string, float64]()

	// 1) Empty IDs are rejected with the sentinel.
	require.ErrorIs(t, g.AddVertex("", "x"), core.ErrEmptyVertexID)

	// 2) A fresh vertex is stored with its label.
	require.NoError(t, g.AddVertex("a", "alpha"))
	require.True(t, g.HasVertex("a"))
	label, ok := g.VertexLabel("a")
	require.True(t, ok)
	assert.Equal(t, "alpha", label)

	// 3) Re-adding the same ID replaces the label, order stays 1.
	require.NoError(t, g.AddVertex("a", "ALPHA"))
	label, ok = g.VertexLabel("a")
	require.True(t, ok)
	assert.Equal(t, "ALPHA", label)
	assert.Equal(t, 1, g.Order())

	// 4) Unknown vertices report absence, not zero values with ok=true.
	_, ok = g.VertexLabel("zz")
	assert.False(t, ok)
	assert.False(t, g.HasVertex("zz"))
}

func TestGraph_EdgeLifecycle(t *testing.T) {
	g := core.NewGraph[string, float64]()
	require.NoError(t, g.AddVertex("a", "A"))
	require.NoError(t, g.AddVertex("b", "B"))

	// 1) Endpoint validation: empty, loop, missing.
	require.ErrorIs(t, g.AddEdge("", "b", 1), core.ErrEmptyVertexID)
	require.ErrorIs(t, g.AddEdge("a", "a", 1), core.ErrSelfLoop)
	require.ErrorIs(t, g.AddEdge("a", "zz", 1), core.ErrVertexNotFound)
	require.ErrorIs(t, g.AddEdge("zz", "b", 1), core.ErrVertexNotFound)
	assert.Equal(t, 0, g.Size())

	// 2) A valid edge is visible from both endpoint orders.
	require.NoError(t, g.AddEdge("a", "b", 2.5))
	assert.True(t, g.HasEdge("a", "b"))
	assert.True(t, g.HasEdge("b", "a"))
	lab, ok := g.EdgeLabel("b", "a")
	require.True(t, ok)
	assert.Equal(t, 2.5, lab)
	assert.Equal(t, 1, g.Size())

	// 3) Re-adding the pair (either orientation) replaces the label in place.
	require.NoError(t, g.AddEdge("b", "a", 7))
	lab, _ = g.EdgeLabel("a", "b")
	assert.Equal(t, 7.0, lab)
	assert.Equal(t, 1, g.Size(), "upsert must not create a parallel edge")

	// 4) Absent edges report ok=false.
	_, ok = g.EdgeLabel("a", "zz")
	assert.False(t, ok)
	assert.False(t, g.HasEdge("a", "zz"))
}

func TestGraph_SortedEnumeration(t *testing.T) {
	g := core.NewGraph[string, int](core.WithOrderHint(4))

	// Insert out of order on purpose; enumeration must come back sorted.
	for _, id := range []string{"d", "a", "c", "b"} {
		require.NoError(t, g.AddVertex(id, id))
	}
	require.NoError(t, g.AddEdge("c", "a", 1))
	require.NoError(t, g.AddEdge("b", "a", 2))
	require.NoError(t, g.AddEdge("d", "c", 3))

	assert.Equal(t, []string{"a", "b", "c", "d"}, g.Vertices())

	edges := g.Edges()
	require.Len(t, edges, 3)
	for i, e := range edges {
		assert.Less(t, e.U, e.V, "edge %d must be canonical (U < V)", i)
	}
	assert.Equal(t, "a", edges[0].U)
	assert.Equal(t, "b", edges[0].V)
	assert.Equal(t, "a", edges[1].U)
	assert.Equal(t, "c", edges[1].V)
	assert.Equal(t, "c", edges[2].U)
	assert.Equal(t, "d", edges[2].V)
}

func TestGraph_Degree(t *testing.T) {
	g := core.NewGraph[string, int]()
	require.NoError(t, g.AddVertex("hub", ""))
	for _, id := range []string{"x", "y", "z"} {
		require.NoError(t, g.AddVertex(id, ""))
		require.NoError(t, g.AddEdge("hub", id, 0))
	}

	d, err := g.Degree("hub")
	require.NoError(t, err)
	assert.Equal(t, 3, d)

	d, err = g.Degree("x")
	require.NoError(t, err)
	assert.Equal(t, 1, d)

	_, err = g.Degree("missing")
	require.ErrorIs(t, err, core.ErrVertexNotFound)
}

func TestGraph_CloneIsIndependent(t *testing.T) {
	g := core.NewGraph[string, float64]()
	require.NoError(t, g.AddVertex("a", "A"))
	require.NoError(t, g.AddVertex("b", "B"))
	require.NoError(t, g.AddEdge("a", "b", 1))

	c := g.Clone()
	require.Equal(t, g.Order(), c.Order())
	require.Equal(t, g.Size(), c.Size())

	// Mutating the clone must not leak into the original.
	require.NoError(t, c.AddVertex("c", "C"))
	require.NoError(t, c.AddEdge("a", "c", 9))
	require.NoError(t, c.AddEdge("a", "b", 5))

	assert.Equal(t, 2, g.Order())
	assert.Equal(t, 1, g.Size())
	lab, _ := g.EdgeLabel("a", "b")
	assert.Equal(t, 1.0, lab, "original edge label must survive clone mutation")
}

func TestGraph_OrderHintPanicsOnNegative(t *testing.T) {
	assert.Panics(t, func() { core.WithOrderHint(-1) })
	assert.NotPanics(t, func() {
		g := core.NewGraph[int, int](core.WithOrderHint(16))
		require.NoError(t, g.AddVertex("v", 1))
	})
}

// TestGraph_ConcurrentBuild exercises the RWMutex guards: many goroutines
// adding disjoint vertices and edges must produce a consistent graph.
func TestGraph_ConcurrentBuild(t *testing.T) {
	const workers = 8
	const perWorker = 50

	g := core.NewGraph[int, int]()
	require.NoError(t, g.AddVertex("root", -1))

	var wg sync.WaitGroup
	wg.Add(workers)
	for w := 0; w < workers; w++ {
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				id := fmt.Sprintf("w%d-%d", w, i)
				if err := g.AddVertex(id, w*perWorker+i); err != nil {
					t.Error(err)

					return
				}
				if err := g.AddEdge("root", id, i); err != nil {
					t.Error(err)

					return
				}
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, 1+workers*perWorker, g.Order())
	assert.Equal(t, workers*perWorker, g.Size())
	d, err := g.Degree("root")
	require.NoError(t, err)
	assert.Equal(t, workers*perWorker, d)
}
