package network

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
)

// Code is an airport IATA code used as a graph node id.
// It is a distinct type so airport keys cannot be mixed with other string keys.
type Code string

// Sentinel errors returned by graph operations.
var (
	// ErrNegativeWeight indicates an edge weight below zero or NaN.
	ErrNegativeWeight = errors.New("network: edge weight must be a non-negative number")

	// ErrNotAdjacent indicates two consecutive path nodes share no edge.
	ErrNotAdjacent = errors.New("network: airports are not directly connected")
)

// Graph is an undirected weighted graph keyed by airport code.
//
// Nodes remember their insertion order; every iteration (Nodes, Neighbors,
// Dijkstra tie-breaking, JSON output) follows it so results are reproducible.
// A Graph is not safe for concurrent mutation; once built it is only read.
type Graph struct {
	order []Code
	index map[Code]int
	adj   map[Code]map[Code]float64
}

// NewGraph returns an empty graph.
func NewGraph() *Graph {
	return &Graph{
		index: make(map[Code]int),
		adj:   make(map[Code]map[Code]float64),
	}
}

// AddNode inserts c if absent and reports whether it was added.
func (g *Graph) AddNode(c Code) bool {
	if _, ok := g.index[c]; ok {
		return false
	}
	g.index[c] = len(g.order)
	g.order = append(g.order, c)
	g.adj[c] = make(map[Code]float64)
	return true
}

// HasNode reports whether c is a node of g.
func (g *Graph) HasNode(c Code) bool {
	_, ok := g.index[c]
	return ok
}

// SetEdge stores the symmetric edge a—b with weight w, adding missing nodes.
// An existing edge is overwritten in both directions.
func (g *Graph) SetEdge(a, b Code, w float64) error {
	if w < 0 || math.IsNaN(w) {
		return fmt.Errorf("%w: %s—%s weight=%v", ErrNegativeWeight, a, b, w)
	}
	g.AddNode(a)
	g.AddNode(b)
	g.adj[a][b] = w
	g.adj[b][a] = w
	return nil
}

// Weight returns the weight of edge a—b.
func (g *Graph) Weight(a, b Code) (float64, bool) {
	nbrs, ok := g.adj[a]
	if !ok {
		return 0, false
	}
	w, ok := nbrs[b]
	return w, ok
}

// Nodes returns all nodes in insertion order.
func (g *Graph) Nodes() []Code {
	out := make([]Code, len(g.order))
	copy(out, g.order)
	return out
}

// Neighbors returns the neighbors of c in node insertion order.
func (g *Graph) Neighbors(c Code) []Code {
	nbrs := g.adj[c]
	out := make([]Code, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return g.index[out[i]] < g.index[out[j]] })
	return out
}

// Degree returns the number of distinct neighbors of c.
func (g *Graph) Degree(c Code) int {
	return len(g.adj[c])
}

// Len returns the number of nodes.
func (g *Graph) Len() int {
	return len(g.order)
}

// EdgeCount returns the number of undirected edges.
func (g *Graph) EdgeCount() int {
	count := 0
	for a, nbrs := range g.adj {
		for b := range nbrs {
			if g.index[a] <= g.index[b] {
				count++
			}
		}
	}
	return count
}

// Adjacency returns a deep copy of the graph as nested maps.
func (g *Graph) Adjacency() map[Code]map[Code]float64 {
	out := make(map[Code]map[Code]float64, len(g.adj))
	for a, nbrs := range g.adj {
		cp := make(map[Code]float64, len(nbrs))
		for b, w := range nbrs {
			cp[b] = w
		}
		out[a] = cp
	}
	return out
}

// MarshalJSON encodes the graph as {"IST": {"ESB": 351.2, ...}, ...}.
func (g *Graph) MarshalJSON() ([]byte, error) {
	if g == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(g.Adjacency())
}

// TotalDistance sums edge weights along path.
// Paths shorter than two nodes have zero length. A consecutive pair without
// an edge yields an error wrapping ErrNotAdjacent.
func TotalDistance(path []Code, g *Graph) (float64, error) {
	var total float64
	for i := 0; i+1 < len(path); i++ {
		w, ok := g.Weight(path[i], path[i+1])
		if !ok {
			return 0, fmt.Errorf("%w: %s→%s", ErrNotAdjacent, path[i], path[i+1])
		}
		total += w
	}
	return total, nil
}
