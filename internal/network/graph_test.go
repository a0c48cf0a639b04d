package network

import (
	"encoding/json"
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGraph_SetEdgeRejectsNegative(t *testing.T) {
	g := NewGraph()
	err := g.SetEdge("A", "B", -1)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrNegativeWeight))

	err = g.SetEdge("A", "B", math.NaN())
	assert.True(t, errors.Is(err, ErrNegativeWeight))
	assert.Equal(t, 0, g.Len())
}

func TestGraph_InsertionOrder(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.SetEdge("C", "A", 1))
	require.NoError(t, g.SetEdge("C", "B", 1))
	assert.False(t, g.AddNode("A"))
	assert.True(t, g.AddNode("D"))

	assert.Equal(t, []Code{"C", "A", "B", "D"}, g.Nodes())
	assert.Equal(t, []Code{"A", "B"}, g.Neighbors("C"))
	assert.Empty(t, g.Neighbors("D"))
	assert.Empty(t, g.Neighbors("missing"))
}

func TestGraph_MarshalJSON(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.SetEdge("IST", "ESB", 350.5))
	g.AddNode("VAN")

	data, err := json.Marshal(g)
	require.NoError(t, err)
	assert.JSONEq(t, `{"IST":{"ESB":350.5},"ESB":{"IST":350.5},"VAN":{}}`, string(data))

	var nilGraph *Graph
	data, err = json.Marshal(nilGraph)
	require.NoError(t, err)
	assert.Equal(t, "null", string(data))
}

func TestGraph_AdjacencyIsACopy(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 2))

	adj := g.Adjacency()
	adj["A"]["B"] = 99
	w, _ := g.Weight("A", "B")
	assert.Equal(t, 2.0, w)
}

func TestTotalDistance(t *testing.T) {
	g := NewGraph()
	require.NoError(t, g.SetEdge("A", "B", 2))
	require.NoError(t, g.SetEdge("B", "C", 3))

	d, err := TotalDistance([]Code{"A", "B", "C"}, g)
	require.NoError(t, err)
	assert.Equal(t, 5.0, d)

	d, err = TotalDistance([]Code{"A"}, g)
	require.NoError(t, err)
	assert.Equal(t, 0.0, d)

	_, err = TotalDistance([]Code{"A", "C"}, g)
	assert.True(t, errors.Is(err, ErrNotAdjacent))
}
