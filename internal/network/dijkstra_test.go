package network

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// diamond builds
//
//	A —1— B —1— D
//	 \         /
//	  4 — C — 1
//
// plus a heavy direct A—D edge of weight 10.
func diamond(t *testing.T) *Graph {
	t.Helper()
	g := NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 1))
	require.NoError(t, g.SetEdge("B", "D", 1))
	require.NoError(t, g.SetEdge("A", "C", 4))
	require.NoError(t, g.SetEdge("C", "D", 1))
	require.NoError(t, g.SetEdge("A", "D", 10))
	return g
}

// bruteForceMin enumerates all simple paths and returns the minimum weight.
func bruteForceMin(g *Graph, from, to Code) float64 {
	best := math.Inf(1)
	seen := map[Code]bool{from: true}
	var walk func(at Code, acc float64)
	walk = func(at Code, acc float64) {
		if at == to {
			best = math.Min(best, acc)
			return
		}
		for _, n := range g.Neighbors(at) {
			if seen[n] {
				continue
			}
			seen[n] = true
			w, _ := g.Weight(at, n)
			walk(n, acc+w)
			seen[n] = false
		}
	}
	walk(from, 0)
	return best
}

func assertValidPath(t *testing.T, g *Graph, path []Code, from, to Code) {
	t.Helper()
	require.GreaterOrEqual(t, len(path), 2)
	assert.Equal(t, from, path[0])
	assert.Equal(t, to, path[len(path)-1])
	for i := 0; i+1 < len(path); i++ {
		_, ok := g.Weight(path[i], path[i+1])
		assert.True(t, ok, "%s→%s is not an edge", path[i], path[i+1])
	}
}

func TestShortestPath_Diamond(t *testing.T) {
	g := diamond(t)

	path := ShortestPath(g, "A", "D")
	assert.Equal(t, []Code{"A", "B", "D"}, path)

	total, err := TotalDistance(path, g)
	require.NoError(t, err)
	assert.Equal(t, bruteForceMin(g, "A", "D"), total)
}

func TestShortestPath_OptimalForAllPairs(t *testing.T) {
	g := diamond(t)
	for _, from := range g.Nodes() {
		for _, to := range g.Nodes() {
			if from == to {
				continue
			}
			path := ShortestPath(g, from, to)
			assertValidPath(t, g, path, from, to)
			total, err := TotalDistance(path, g)
			require.NoError(t, err)
			assert.InDelta(t, bruteForceMin(g, from, to), total, 1e-12, "%s→%s", from, to)
		}
	}
}

func TestShortestPath_DirectEdge(t *testing.T) {
	g := diamond(t)
	assert.Equal(t, []Code{"C", "D"}, ShortestPath(g, "C", "D"))
}

func TestShortestPath_Disconnected(t *testing.T) {
	g := diamond(t)
	require.NoError(t, g.SetEdge("X", "Y", 1))

	assert.Nil(t, ShortestPath(g, "A", "X"))
	assert.Nil(t, ShortestPath(g, "Y", "D"))
}

func TestShortestPath_UnknownOrSameEndpoints(t *testing.T) {
	g := diamond(t)

	assert.Nil(t, ShortestPath(g, "A", "missing"))
	assert.Nil(t, ShortestPath(g, "missing", "A"))
	assert.Nil(t, ShortestPath(g, "A", "A"))
	assert.Nil(t, ShortestPath(nil, "A", "B"))
}

func TestShortestPath_TieBreakFollowsInsertionOrder(t *testing.T) {
	// Two equally short routes S→L→T and S→R→T; L was inserted first.
	g := NewGraph()
	require.NoError(t, g.SetEdge("S", "L", 1))
	require.NoError(t, g.SetEdge("S", "R", 1))
	require.NoError(t, g.SetEdge("L", "T", 1))
	require.NoError(t, g.SetEdge("R", "T", 1))

	for i := 0; i < 20; i++ {
		assert.Equal(t, []Code{"S", "L", "T"}, ShortestPath(g, "S", "T"))
	}
}

func TestShortestPath_FractionalKilometresDecide(t *testing.T) {
	// Rounded to whole km both routes cost 2 and L would win on insertion
	// order; the unrounded weights make R shorter.
	g := NewGraph()
	require.NoError(t, g.SetEdge("S", "L", 1.4))
	require.NoError(t, g.SetEdge("L", "T", 1.4))
	require.NoError(t, g.SetEdge("S", "R", 1.2))
	require.NoError(t, g.SetEdge("R", "T", 1.2))

	path := ShortestPath(g, "S", "T")
	assert.Equal(t, []Code{"S", "R", "T"}, path)

	total, err := TotalDistance(path, g)
	require.NoError(t, err)
	assert.InDelta(t, 2.4, total, 1e-12)
}

func TestShortestPath_DoesNotMutateGraph(t *testing.T) {
	g := diamond(t)
	before := g.Adjacency()
	_ = ShortestPath(g, "A", "D")
	assert.Equal(t, before, g.Adjacency())
}
