// SPDX-License-Identifier: MIT

package ged_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/gedist/core"
	"github.com/katalvlaran/gedist/ged"
	"github.com/katalvlaran/gedist/labeldiss"
)

// All three comparators satisfy the Engine contract.
var (
	_ ged.Engine[string, string]   = (*ged.Exact[string, string])(nil)
	_ ged.Engine[string, string]   = (*ged.Greedy[string, string])(nil)
	_ ged.Engine[string, string]   = (*ged.Normalizer[string, string])(nil)
	_ ged.Engine[float64, float64] = (*ged.Exact[float64, float64])(nil)
)

const epsTest = 1e-9

// scalarGraph assembles a Graph[float64, float64] from literal maps. Map
// iteration order does not matter: the container sorts on enumeration.
func scalarGraph(t *testing.T, vertices map[string]float64, edges map[[2]string]float64) *core.Graph[float64, float64] {
	t.Helper()
	g := core.NewGraph[float64, float64]()
	for id, lbl := range vertices {
		require.NoError(t, g.AddVertex(id, lbl))
	}
	for uv, lbl := range edges {
		require.NoError(t, g.AddEdge(uv[0], uv[1], lbl))
	}
	return g
}

// stringGraph assembles a Graph[string, string] the same way.
func stringGraph(t *testing.T, vertices map[string]string, edges map[[2]string]string) *core.Graph[string, string] {
	t.Helper()
	g := core.NewGraph[string, string]()
	for id, lbl := range vertices {
		require.NoError(t, g.AddVertex(id, lbl))
	}
	for uv, lbl := range edges {
		require.NoError(t, g.AddEdge(uv[0], uv[1], lbl))
	}
	return g
}

// pairTable turns a symmetric lookup table into a label strategy. Missing
// pairs fail the test loudly instead of defaulting, except the reflexive
// d(x,x)=0 case.
func pairTable(t *testing.T, table map[[2]string]float64) labeldiss.Func[string] {
	t.Helper()
	return func(a, b string) float64 {
		if d, ok := table[[2]string{a, b}]; ok {
			return d
		}
		if d, ok := table[[2]string{b, a}]; ok {
			return d
		}
		if a == b {
			return 0
		}
		t.Fatalf("pairTable: no entry for %q-%q", a, b)
		return 0
	}
}

func mustExact[V, E any](t *testing.T, vd labeldiss.Dissimilarity[V], ed labeldiss.Dissimilarity[E], opts ged.ExactOptions) *ged.Exact[V, E] {
	t.Helper()
	e, err := ged.NewExact(vd, ed, opts)
	require.NoError(t, err)
	return e
}

func mustGreedy[V, E any](t *testing.T, vd labeldiss.Dissimilarity[V], ed labeldiss.Dissimilarity[E], opts ged.GreedyOptions) *ged.Greedy[V, E] {
	t.Helper()
	e, err := ged.NewGreedy(vd, ed, opts)
	require.NoError(t, err)
	return e
}
